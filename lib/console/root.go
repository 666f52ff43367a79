package console

import (
	"github.com/go-i2p/go-rcstore/lib/config"
	"github.com/go-i2p/go-rcstore/lib/embedded"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// rootCmd is the base command. Every subcommand operates on the resource
// file named by --file, falling back to the resource.path configuration key.
var rootCmd = &cobra.Command{
	Use:   "rcstore",
	Short: "Manage sectioned resource files",
	Long: `rcstore reads and writes sectioned key-value resource files.

Values are addressed with composite keys of the form section.key, split at
the first dot. Every mutation rewrites the resource file immediately.`,
	SilenceUsage: true,
}

func init() {
	cobra.OnInitialize(config.InitConfig)

	rootCmd.PersistentFlags().StringVar(&config.CfgFile, "config", "",
		"tool config file (default $HOME/.go-rcstore/config.yaml)")
	rootCmd.PersistentFlags().StringP("file", "f", "",
		"resource file to operate on (overrides resource.path)")

	if err := viper.BindPFlag("resource.path", rootCmd.PersistentFlags().Lookup("file")); err != nil {
		log.WithError(err).Error("unable to bind --file flag")
	}
}

// Execute runs the console command tree and returns its error, if any.
func Execute() error {
	return rootCmd.Execute()
}

// openStore opens the configured resource store for one command invocation.
func openStore() (embedded.ResourceStore, error) {
	cfg := config.NewToolConfigFromViper()

	store, err := embedded.NewStandardResourceStore(cfg.Resource)
	if err != nil {
		return nil, err
	}
	if err := store.Open(); err != nil {
		return nil, err
	}
	return store, nil
}
