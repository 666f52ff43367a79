package console

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-i2p/go-rcstore/lib/config"
	"github.com/go-i2p/go-rcstore/lib/embedded"
	"github.com/go-i2p/go-rcstore/lib/rcstore"
	"github.com/stretchr/testify/assert"
	"gopkg.in/yaml.v3"
)

// openFixtureStore opens a store over a fresh resource file with content.
func openFixtureStore(t *testing.T, content string) (embedded.ResourceStore, string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "app.rc")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	store, err := embedded.NewStandardResourceStore(&config.ResourceConfig{Path: path})
	if err != nil {
		t.Fatalf("NewStandardResourceStore() failed: %v", err)
	}
	if err := store.Open(); err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store, path
}

const fixtureContent = "[database]\nhost = localhost\nport = 5432\n\n[app]\nname = demo\n\n"

func TestPrintValue(t *testing.T) {
	assert := assert.New(t)

	store, _ := openFixtureStore(t, fixtureContent)

	var out bytes.Buffer
	assert.NoError(printValue(store, "database.host", &out))
	assert.Equal("localhost\n", out.String())

	assert.Error(printValue(store, "database.nosuch", &out))
}

func TestRenderListAllSections(t *testing.T) {
	assert := assert.New(t)

	store, _ := openFixtureStore(t, fixtureContent)

	var out bytes.Buffer
	assert.NoError(renderList(store, "", &out))

	text := out.String()
	assert.Contains(text, "[app]")
	assert.Contains(text, "[database]")
	assert.Contains(text, "host = localhost")
	assert.Less(strings.Index(text, "[app]"), strings.Index(text, "[database]"),
		"sections must render in sorted order")
}

func TestRenderListSingleSection(t *testing.T) {
	assert := assert.New(t)

	store, _ := openFixtureStore(t, fixtureContent)

	var out bytes.Buffer
	assert.NoError(renderList(store, "database", &out))
	assert.Contains(out.String(), "[database]")
	assert.NotContains(out.String(), "[app]")

	err := renderList(store, "nosuch", &out)
	assert.ErrorIs(err, rcstore.ErrSectionNotFound)
}

func TestExportValuesYAML(t *testing.T) {
	assert := assert.New(t)

	store, _ := openFixtureStore(t, fixtureContent)

	var out bytes.Buffer
	assert.NoError(exportValues(store, config.ExportFormatYAML, &out))

	var decoded map[string]map[string]string
	assert.NoError(yaml.Unmarshal(out.Bytes(), &decoded))
	assert.Equal("localhost", decoded["database"]["host"])
	assert.Equal("demo", decoded["app"]["name"])
}

func TestExportValuesJSON(t *testing.T) {
	assert := assert.New(t)

	store, _ := openFixtureStore(t, fixtureContent)

	var out bytes.Buffer
	assert.NoError(exportValues(store, config.ExportFormatJSON, &out))

	var decoded map[string]map[string]string
	assert.NoError(json.Unmarshal(out.Bytes(), &decoded))
	assert.Equal("5432", decoded["database"]["port"])
}

func TestExportValuesRejectsUnknownFormat(t *testing.T) {
	store, _ := openFixtureStore(t, fixtureContent)

	var out bytes.Buffer
	if err := exportValues(store, "toml", &out); err == nil {
		t.Error("exportValues() accepted an unsupported format")
	}
	if out.Len() != 0 {
		t.Errorf("exportValues() wrote output despite failing: %q", out.String())
	}
}

func TestRunExportWritesFile(t *testing.T) {
	assert := assert.New(t)

	store, _ := openFixtureStore(t, fixtureContent)
	out := filepath.Join(t.TempDir(), "export.json")

	var fallback bytes.Buffer
	assert.NoError(runExport(store, config.ExportFormatJSON, out, &fallback))
	assert.Zero(fallback.Len(), "a file export must not also write to the fallback writer")

	data, err := os.ReadFile(out)
	assert.NoError(err)

	var decoded map[string]map[string]string
	assert.NoError(json.Unmarshal(data, &decoded))
	assert.Equal("localhost", decoded["database"]["host"])
}

func TestRunExportRejectedFormatLeavesNoFile(t *testing.T) {
	store, _ := openFixtureStore(t, fixtureContent)
	out := filepath.Join(t.TempDir(), "export.toml")

	var fallback bytes.Buffer
	if err := runExport(store, "toml", out, &fallback); err == nil {
		t.Fatal("runExport() accepted an unsupported format")
	}
	if _, err := os.Stat(out); !os.IsNotExist(err) {
		t.Errorf("a rejected export must not create %s", out)
	}
}

func TestEvalShellLine(t *testing.T) {
	assert := assert.New(t)

	store, path := openFixtureStore(t, fixtureContent)

	var out bytes.Buffer
	quit, err := evalShellLine(store, "get database.host", &out)
	assert.False(quit)
	assert.NoError(err)
	assert.Equal("localhost\n", out.String())

	// Values keep their spaces: everything after the key is the value.
	out.Reset()
	_, err = evalShellLine(store, "set app.motd hello wide world", &out)
	assert.NoError(err)

	motd, err := store.GetValue("app.motd")
	assert.NoError(err)
	assert.Equal("hello wide world", motd)

	data, err := os.ReadFile(path)
	assert.NoError(err)
	assert.Contains(string(data), "motd = hello wide world\n")

	_, err = evalShellLine(store, "del app.motd", &out)
	assert.NoError(err)
	_, err = store.GetValue("app.motd")
	assert.ErrorIs(err, rcstore.ErrKeyNotFound)

	out.Reset()
	_, err = evalShellLine(store, "keys database", &out)
	assert.NoError(err)
	assert.Equal("host\nport\n", out.String())

	out.Reset()
	_, err = evalShellLine(store, "path", &out)
	assert.NoError(err)
	assert.Equal(path+"\n", out.String())

	quit, err = evalShellLine(store, "quit", &out)
	assert.True(quit)
	assert.NoError(err)
}

func TestEvalShellLineErrors(t *testing.T) {
	assert := assert.New(t)

	store, _ := openFixtureStore(t, fixtureContent)
	var out bytes.Buffer

	_, err := evalShellLine(store, "get", &out)
	assert.Error(err, "get without a key must fail")

	_, err = evalShellLine(store, "set app.only_key", &out)
	assert.Error(err, "set without a value must fail")

	_, err = evalShellLine(store, "frobnicate", &out)
	assert.Error(err, "unknown commands must fail")

	quit, err := evalShellLine(store, "   ", &out)
	assert.False(quit)
	assert.NoError(err, "blank lines are ignored")
}

func TestEvalShellLineDumpTo(t *testing.T) {
	assert := assert.New(t)

	store, _ := openFixtureStore(t, fixtureContent)
	copyPath := filepath.Join(t.TempDir(), "copy.rc")

	var out bytes.Buffer
	_, err := evalShellLine(store, "dump "+copyPath, &out)
	assert.NoError(err)
	assert.FileExists(copyPath)
}

func TestRootCommandWiring(t *testing.T) {
	want := map[string]bool{
		"get": false, "set": false, "del": false, "dump": false,
		"list": false, "export": false, "shell": false,
	}

	for _, cmd := range rootCmd.Commands() {
		if _, ok := want[cmd.Name()]; ok {
			want[cmd.Name()] = true
		}
	}

	for name, found := range want {
		if !found {
			t.Errorf("subcommand %q is not registered on the root command", name)
		}
	}

	if rootCmd.PersistentFlags().Lookup("file") == nil {
		t.Error("--file persistent flag is not registered")
	}
	if rootCmd.PersistentFlags().Lookup("config") == nil {
		t.Error("--config persistent flag is not registered")
	}
}
