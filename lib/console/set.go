package console

import (
	"github.com/spf13/cobra"
)

var setCmd = &cobra.Command{
	Use:   "set SECTION.KEY VALUE",
	Short: "Store a value under a composite key and persist it",
	Long: `set stores VALUE under SECTION.KEY, creating the section as needed,
and rewrites the resource file before returning. The value is stored exactly
as given; surrounding whitespace is trimmed again on the next load.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()
		return store.SetValue(args[0], args[1])
	},
}

func init() {
	rootCmd.AddCommand(setCmd)
}
