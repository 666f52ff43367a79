package console

import (
	"encoding/json"
	"io"
	"os"

	"github.com/go-i2p/go-rcstore/lib/config"
	"github.com/go-i2p/go-rcstore/lib/embedded"
	"github.com/samber/oops"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var (
	exportFormat string
	exportOut    string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the resource data as YAML or JSON",
	Long: `export writes the whole resource store as a two-level mapping of
sections to their key-value entries, for consumption by tools that do not
speak the resource file format.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		format := exportFormat
		if format == "" {
			format = config.NewToolConfigFromViper().Export.Format
		}
		return runExport(store, format, exportOut, cmd.OutOrStdout())
	},
}

func init() {
	exportCmd.Flags().StringVar(&exportFormat, "format", "",
		"export encoding, yaml or json (default from export.format)")
	exportCmd.Flags().StringVar(&exportOut, "out", "",
		"write to this file instead of stdout")
	rootCmd.AddCommand(exportCmd)
}

// runExport encodes the store to the file at path, or to fallback when path
// is empty. The format is checked before the output file is created, so a
// rejected format leaves no file behind.
func runExport(store embedded.ResourceStore, format, path string, fallback io.Writer) error {
	if err := checkExportFormat(format); err != nil {
		return err
	}
	if path == "" {
		return exportValues(store, format, fallback)
	}
	f, err := os.Create(path)
	if err != nil {
		return oops.Errorf("creating export file: %w", err)
	}
	defer f.Close()
	return exportValues(store, format, f)
}

// checkExportFormat rejects encodings exportValues cannot produce.
func checkExportFormat(format string) error {
	if !config.ValidExportFormat(format) {
		return oops.Errorf("unsupported export format %q (supported: %s, %s)",
			format, config.ExportFormatYAML, config.ExportFormatJSON)
	}
	return nil
}

// exportValues encodes the store's contents to out in the given format.
func exportValues(store embedded.ResourceStore, format string, out io.Writer) error {
	if err := checkExportFormat(format); err != nil {
		return err
	}

	snapshot := store.Snapshot()

	switch format {
	case config.ExportFormatJSON:
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(snapshot)
	default:
		enc := yaml.NewEncoder(out)
		defer enc.Close()
		return enc.Encode(snapshot)
	}
}
