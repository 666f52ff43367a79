package console

import (
	"fmt"
	"io"

	"github.com/go-i2p/go-rcstore/lib/embedded"
	"github.com/spf13/cobra"
)

var getCmd = &cobra.Command{
	Use:   "get SECTION.KEY",
	Short: "Print the value stored under a composite key",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()
		return printValue(store, args[0], cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(getCmd)
}

// printValue writes the value stored under key to out.
func printValue(store embedded.ResourceStore, key string, out io.Writer) error {
	value, err := store.GetValue(key)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, value)
	return err
}
