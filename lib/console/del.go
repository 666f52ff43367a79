package console

import (
	"github.com/spf13/cobra"
)

var delCmd = &cobra.Command{
	Use:     "del SECTION.KEY",
	Aliases: []string{"delete", "rm"},
	Short:   "Remove an entry and persist the change",
	Long: `del removes the entry under SECTION.KEY and rewrites the resource
file. A section left empty by the removal is dropped entirely.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()
		return store.DeleteValue(args[0])
	},
}

func init() {
	rootCmd.AddCommand(delCmd)
}
