package console

import (
	"fmt"
	"io"
	"sort"

	"github.com/charmbracelet/lipgloss"
	"github.com/go-i2p/go-rcstore/lib/embedded"
	"github.com/go-i2p/go-rcstore/lib/rcstore"
	"github.com/samber/oops"
	"github.com/spf13/cobra"
)

var (
	sectionStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	keyStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	sepStyle     = lipgloss.NewStyle().Faint(true)
)

var listCmd = &cobra.Command{
	Use:   "list [SECTION]",
	Short: "List sections and their entries",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		section := ""
		if len(args) > 0 {
			section = args[0]
		}
		return renderList(store, section, cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}

// renderList writes the store's sections and entries to out, limited to one
// section when section is non-empty.
func renderList(store embedded.ResourceStore, section string, out io.Writer) error {
	snapshot := store.Snapshot()

	if section != "" {
		entries, ok := snapshot[section]
		if !ok {
			return oops.Wrapf(rcstore.ErrSectionNotFound, "list %s", section)
		}
		snapshot = map[string]map[string]string{section: entries}
	}

	names := make([]string, 0, len(snapshot))
	for name := range snapshot {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		fmt.Fprintln(out, sectionStyle.Render("["+name+"]"))

		entries := snapshot[name]
		keys := make([]string, 0, len(entries))
		for k := range entries {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		for _, k := range keys {
			fmt.Fprintf(out, "  %s %s %s\n", keyStyle.Render(k), sepStyle.Render("="), entries[k])
		}
		fmt.Fprintln(out)
	}
	return nil
}
