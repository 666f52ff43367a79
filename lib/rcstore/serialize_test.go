package rcstore

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDumpWritesSortedOutput(t *testing.T) {
	assert := assert.New(t)

	path := writeFixture(t, "[zeta]\nz = 26\na = 1\n\n[alpha]\nk = v\n")
	s := New()
	assert.NoError(s.Load(path))
	assert.NoError(s.Dump())

	data, err := os.ReadFile(path)
	assert.NoError(err)

	want := "[alpha]\nk = v\n\n[zeta]\na = 1\nz = 26\n\n"
	assert.Equal(want, string(data), "Dump() output must be sorted by section and key")
}

func TestDumpIsIdempotent(t *testing.T) {
	assert := assert.New(t)

	path := writeFixture(t, sampleResource)
	s := New()
	assert.NoError(s.Load(path))

	assert.NoError(s.Dump())
	first, err := os.ReadFile(path)
	assert.NoError(err)

	assert.NoError(s.Dump())
	second, err := os.ReadFile(path)
	assert.NoError(err)

	assert.Equal(string(first), string(second), "consecutive dumps must be byte-identical")
}

func TestDumpRoundTrip(t *testing.T) {
	assert := assert.New(t)

	path := writeFixture(t, sampleResource)
	s := New()
	assert.NoError(s.Load(path))
	assert.NoError(s.Dump())

	reloaded := New()
	assert.NoError(reloaded.Load(path))
	assert.Equal(s.Snapshot(), reloaded.Snapshot(), "a dumped file must parse back to the same contents")
}

func TestDumpUnnamedSectionRoundTrips(t *testing.T) {
	assert := assert.New(t)

	path := writeFixture(t, "orphan = 1\n")
	s := New()
	assert.NoError(s.Load(path))
	assert.NoError(s.Dump())

	data, err := os.ReadFile(path)
	assert.NoError(err)
	assert.Equal("[]\norphan = 1\n\n", string(data), "the unnamed section must serialize as a bare header")

	reloaded := New()
	assert.NoError(reloaded.Load(path))
	v, err := reloaded.Get(".orphan")
	assert.NoError(err)
	assert.Equal("1", v)
}

func TestDumpToLeavesBackingFileAlone(t *testing.T) {
	assert := assert.New(t)

	path := writeFixture(t, "[s]\nk = v\n")
	s := New()
	assert.NoError(s.Load(path))

	other := filepath.Join(t.TempDir(), "copy.rc")
	assert.NoError(s.DumpTo(" " + other + " "))

	data, err := os.ReadFile(other)
	assert.NoError(err)
	assert.Equal("[s]\nk = v\n\n", string(data))

	// The store stays bound to its original file.
	assert.Equal(path, s.Path())
	assert.NoError(s.Set("s.k2", "v2"))

	data, err = os.ReadFile(other)
	assert.NoError(err)
	assert.NotContains(string(data), "k2", "mutations must keep dumping to the original path")
}

func TestDumpWithoutPathFails(t *testing.T) {
	s := New()
	if err := s.Dump(); !errors.Is(err, ErrFileWrite) {
		t.Errorf("Dump() on an unloaded store: err = %v, want ErrFileWrite", err)
	}
}

func TestSetPersistsImmediately(t *testing.T) {
	assert := assert.New(t)

	path := writeFixture(t, sampleResource)
	s := New()
	assert.NoError(s.Load(path))

	assert.NoError(s.Set("database.pool", "10"))

	data, err := os.ReadFile(path)
	assert.NoError(err)
	assert.Contains(string(data), "pool = 10\n", "Set() must rewrite the backing file")
}

func TestSetCreatesSection(t *testing.T) {
	assert := assert.New(t)

	s := New()
	assert.NoError(s.Load(writeFixture(t, sampleResource)))

	assert.NoError(s.Set("cache.ttl", "30"))

	ttl, err := s.Get("cache.ttl")
	assert.NoError(err)
	assert.Equal("30", ttl)
	assert.Contains(s.Sections(), "cache")
}

func TestSetStoresValueVerbatim(t *testing.T) {
	assert := assert.New(t)

	path := writeFixture(t, sampleResource)
	s := New()
	assert.NoError(s.Load(path))

	assert.NoError(s.Set("app.motd", "  padded  "))

	v, err := s.Get("app.motd")
	assert.NoError(err)
	assert.Equal("  padded  ", v, "Set() must not trim the value")

	// The padding does not survive a reload: the parser trims values.
	reloaded := New()
	assert.NoError(reloaded.Load(path))
	v, err = reloaded.Get("app.motd")
	assert.NoError(err)
	assert.Equal("padded", v)
}

func TestDeletePrunesEmptySection(t *testing.T) {
	assert := assert.New(t)

	path := writeFixture(t, "[solo]\nonly = 1\n\n[keep]\nk = v\n")
	s := New()
	assert.NoError(s.Load(path))

	assert.NoError(s.Delete("solo.only"))

	assert.Equal([]string{"keep"}, s.Sections())

	// The pruned section is gone entirely: lookups fail at the section, not
	// the key.
	_, err := s.Get("solo.only")
	assert.ErrorIs(err, ErrSectionNotFound)

	data, err := os.ReadFile(path)
	assert.NoError(err)
	assert.NotContains(string(data), "[solo]", "an emptied section must not be written as a bare header")
}

func TestDeleteMissesLeaveFileUntouched(t *testing.T) {
	assert := assert.New(t)

	path := writeFixture(t, sampleResource)
	s := New()
	assert.NoError(s.Load(path))

	err := s.Delete("nosuch.k")
	assert.ErrorIs(err, ErrSectionNotFound)

	err = s.Delete("database.nosuch")
	assert.ErrorIs(err, ErrKeyNotFound)

	assert.Equal(5, s.Len(), "a failed Delete must not change the store")

	data, err := os.ReadFile(path)
	assert.NoError(err)
	assert.Equal(sampleResource, string(data), "a failed Delete must not rewrite the backing file")
}

func TestMutationKeptWhenDumpFails(t *testing.T) {
	assert := assert.New(t)

	dir := filepath.Join(t.TempDir(), "nested")
	assert.NoError(os.Mkdir(dir, 0o755))
	path := filepath.Join(dir, "app.rc")
	assert.NoError(os.WriteFile(path, []byte(sampleResource), 0o644))

	s := New()
	assert.NoError(s.Load(path))

	// Removing the directory makes the backing file unwritable.
	assert.NoError(os.RemoveAll(dir))

	err := s.Set("app.retries", "3")
	assert.ErrorIs(err, ErrFileWrite, "Set() must surface the failed dump")

	// The in-memory update is kept; the store and the file have diverged.
	v, getErr := s.Get("app.retries")
	assert.NoError(getErr)
	assert.Equal("3", v)
}

func TestSerializeEmptyStore(t *testing.T) {
	var buf bytes.Buffer
	if err := serializeTo(&buf, nil); err != nil {
		t.Fatalf("serializeTo() failed: %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("serializeTo() wrote %q for an empty store, want no output", buf.String())
	}
}
