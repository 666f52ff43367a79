package console

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-i2p/go-rcstore/lib/embedded"
	"github.com/go-i2p/go-rcstore/lib/util"
	"github.com/go-i2p/go-rcstore/lib/util/signals"
	"github.com/samber/oops"
	"github.com/spf13/cobra"
)

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Interactive console over the resource file",
	Long: `shell opens the resource file once and reads commands from stdin.

SIGHUP reloads the resource file from disk, picking up edits made by other
processes. SIGINT and SIGTERM dump the store one final time and exit.`,
	Args: cobra.NoArgs,
	RunE: runShell,
}

func init() {
	rootCmd.AddCommand(shellCmd)
}

func runShell(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	util.RegisterCloser(store)

	go signals.Handle()
	reloadID := signals.RegisterReloadHandler(func() {
		if err := store.Reload(); err != nil {
			log.WithError(err).Error("resource reload failed")
		}
	})
	signals.RegisterPreShutdownHandler(func() {
		// Last-chance persist in case an earlier automatic dump failed.
		if err := store.DumpValues(); err != nil {
			log.WithError(err).Error("final dump failed")
		}
	})
	signals.RegisterInterruptHandler(func() {
		util.CloseAll()
		os.Exit(0)
	})
	defer func() {
		signals.DeregisterReloadHandler(reloadID)
		signals.StopHandle()
		util.CloseAll()
	}()

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "resource store shell on %s\n", store.Path())
	fmt.Fprintln(out, `type "help" for commands, "quit" to exit`)

	scanner := bufio.NewScanner(cmd.InOrStdin())
	for {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			break
		}
		quit, err := evalShellLine(store, scanner.Text(), out)
		if err != nil {
			fmt.Fprintln(out, "error:", err)
		}
		if quit {
			break
		}
	}
	return scanner.Err()
}

// evalShellLine executes one console line against the store. It reports
// whether the shell should exit and any command error.
func evalShellLine(store embedded.ResourceStore, line string, out io.Writer) (quit bool, err error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return false, nil
	}

	// Values may contain spaces, so split off at most the command and key;
	// whatever follows the key is the verbatim value.
	fields := strings.SplitN(line, " ", 3)
	command := fields[0]

	switch command {
	case "get":
		if len(fields) < 2 {
			return false, oops.Errorf("usage: get SECTION.KEY")
		}
		return false, printValue(store, fields[1], out)
	case "set":
		if len(fields) < 3 {
			return false, oops.Errorf("usage: set SECTION.KEY VALUE")
		}
		return false, store.SetValue(fields[1], fields[2])
	case "del":
		if len(fields) < 2 {
			return false, oops.Errorf("usage: del SECTION.KEY")
		}
		return false, store.DeleteValue(fields[1])
	case "keys":
		if len(fields) < 2 {
			return false, oops.Errorf("usage: keys SECTION")
		}
		keys, err := store.Keys(fields[1])
		if err != nil {
			return false, err
		}
		for _, k := range keys {
			fmt.Fprintln(out, k)
		}
		return false, nil
	case "list":
		section := ""
		if len(fields) > 1 {
			section = fields[1]
		}
		return false, renderList(store, section, out)
	case "dump":
		if len(fields) > 1 {
			return false, store.DumpValuesTo(fields[1])
		}
		return false, store.DumpValues()
	case "reload":
		return false, store.Reload()
	case "path":
		fmt.Fprintln(out, store.Path())
		return false, nil
	case "help":
		printShellHelp(out)
		return false, nil
	case "quit", "exit":
		return true, nil
	default:
		return false, oops.Errorf("unknown command %q (try \"help\")", command)
	}
}

func printShellHelp(out io.Writer) {
	fmt.Fprintln(out, "commands:")
	fmt.Fprintln(out, "  get SECTION.KEY         print one value")
	fmt.Fprintln(out, "  set SECTION.KEY VALUE   store a value (VALUE may contain spaces)")
	fmt.Fprintln(out, "  del SECTION.KEY         remove an entry")
	fmt.Fprintln(out, "  keys SECTION            list the keys of one section")
	fmt.Fprintln(out, "  list [SECTION]          list sections and entries")
	fmt.Fprintln(out, "  dump [PATH]             rewrite the resource file (or a copy at PATH)")
	fmt.Fprintln(out, "  reload                  re-read the resource file from disk")
	fmt.Fprintln(out, "  path                    print the resource file path")
	fmt.Fprintln(out, "  quit                    leave the shell")
}
