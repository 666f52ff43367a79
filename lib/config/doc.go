// Package config provides configuration management for the go-rcstore tool.
//
// # Configuration vs Resource Data
//
// Two different files are in play and they must not be confused:
//
// The tool configuration is a YAML file read through viper, by default
// $HOME/.go-rcstore/config.yaml. It configures the tool itself: which
// resource file to operate on (resource.path), whether a missing resource
// file is created on open (resource.create_missing), and the default export
// encoding (export.format). A missing configuration file is created with
// defaults on first run; an explicitly requested one (--config) must exist.
//
// The resource file is the sectioned key-value data the tool manages. It is
// read and written by lib/rcstore, never by viper, and its path is whatever
// resource.path or the --file flag says.
//
// Viper keys use the same dotted section.key shape as composite resource
// keys, so overrides read naturally: resource.path, export.format.
package config
