package config

// Export format names accepted by the console's export command.
const (
	ExportFormatYAML = "yaml"
	ExportFormatJSON = "json"
)

// export command options
type ExportConfig struct {
	// Format selects the serialization used by the export command
	Format string
}

// default settings for export
var DefaultExportConfig = ExportConfig{
	Format: ExportFormatYAML,
}

// ValidExportFormat reports whether format names a supported export encoding.
func ValidExportFormat(format string) bool {
	return format == ExportFormatYAML || format == ExportFormatJSON
}
