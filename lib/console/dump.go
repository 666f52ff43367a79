package console

import (
	"github.com/spf13/cobra"
)

var dumpTo string

var dumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Rewrite the resource file in normalized form",
	Long: `dump re-serializes the resource file: sections and keys sorted,
comments removed, whitespace normalized. With --to the normalized output
goes to another file and the resource file is left alone.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		if dumpTo != "" {
			return store.DumpValuesTo(dumpTo)
		}
		return store.DumpValues()
	},
}

func init() {
	dumpCmd.Flags().StringVar(&dumpTo, "to", "", "write to this path instead of the resource file")
	rootCmd.AddCommand(dumpCmd)
}
