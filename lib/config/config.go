package config

import (
	"os"
	"path/filepath"

	"github.com/go-i2p/go-rcstore/lib/util"
	"github.com/go-i2p/logger"
	"github.com/spf13/viper"
)

var (
	CfgFile string
	log     = logger.GetGoI2PLogger()
)

const GORCSTORE_BASE_DIR = ".go-rcstore"

func InitConfig() {
	if CfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(CfgFile)
	} else {
		// Set up viper to use the default config path $HOME/.go-rcstore/
		viper.AddConfigPath(BuildRCStoreDirPath())
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	// Load defaults
	setDefaults()

	// handle config file creating it if needed
	handleConfigFile()

	// Update ToolConfigProperties
	UpdateToolConfig()
}

func setDefaults() {
	// Resource file defaults
	viper.SetDefault("resource.path", DefaultResourceConfig.Path)
	viper.SetDefault("resource.create_missing", DefaultResourceConfig.CreateMissing)

	// Export defaults
	viper.SetDefault("export.format", DefaultExportConfig.Format)
}

// NewToolConfigFromViper creates a new ToolConfig from current viper settings.
// This is the preferred way to get config instead of using the global
// ToolConfigProperties.
func NewToolConfigFromViper() *ToolConfig {
	return &ToolConfig{
		Resource: &ResourceConfig{
			Path:          viper.GetString("resource.path"),
			CreateMissing: viper.GetBool("resource.create_missing"),
		},
		Export: &ExportConfig{
			Format: viper.GetString("export.format"),
		},
	}
}

// UpdateToolConfig updates the global ToolConfigProperties from viper settings
// DEPRECATED: Use NewToolConfigFromViper() instead to avoid global state mutation
func UpdateToolConfig() {
	ToolConfigProperties.Resource = &ResourceConfig{
		Path:          viper.GetString("resource.path"),
		CreateMissing: viper.GetBool("resource.create_missing"),
	}

	ToolConfigProperties.Export = &ExportConfig{
		Format: viper.GetString("export.format"),
	}
}

func createDefaultConfig(defaultConfigDir string) {
	defaultConfigFile := filepath.Join(defaultConfigDir, "config.yaml")
	// Ensure directory exists
	if err := os.MkdirAll(defaultConfigDir, 0o755); err != nil {
		log.Fatalf("Could not create config directory: %s", err)
	}

	// Write current config file. Viper has not resolved a config file on
	// this path, so the destination must be spelled out.
	if err := viper.WriteConfigAs(defaultConfigFile); err != nil {
		log.Fatalf("Could not write default config file: %s", err)
	}

	log.Debugf("Created default configuration at: %s", defaultConfigFile)
}

func handleConfigFile() {
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			if CfgFile != "" {
				log.Fatalf("Config file %s is not found: %s", CfgFile, err)
			} else {
				createDefaultConfig(BuildRCStoreDirPath())
			}
		} else {
			log.Fatalf("Error reading config file: %s", err)
		}
	} else {
		log.Debugf("Using config file: %s", viper.ConfigFileUsed())
	}
}

func BuildRCStoreDirPath() string {
	return filepath.Join(util.UserHome(), GORCSTORE_BASE_DIR)
}
