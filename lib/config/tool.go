package config

// tool.config options
type ToolConfig struct {
	// resource file configuration
	Resource *ResourceConfig
	// export command configuration
	Export *ExportConfig
}

// defaults for the tool
var defaultToolConfig = &ToolConfig{
	Resource: &DefaultResourceConfig,
	Export:   &DefaultExportConfig,
}

func DefaultToolConfig() *ToolConfig {
	return defaultToolConfig
}

var ToolConfigProperties = DefaultToolConfig()
