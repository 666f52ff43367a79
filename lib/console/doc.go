// Package console implements the rcstore command line interface.
//
// One-shot commands (get, set, del, dump, list, export) open the resource
// store through the embedded facade, perform a single operation, and close
// it. The shell command keeps the store open for an interactive session and
// wires the process signals: SIGHUP reloads the resource file, SIGINT and
// SIGTERM perform a final dump before exiting.
//
// The resource file is selected by the --file flag, falling back to the
// resource.path key of the tool configuration. All commands exit non-zero
// on failure; the error message distinguishes missing files, missing
// sections and missing keys.
package console
