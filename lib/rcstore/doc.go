// Package rcstore implements an embeddable key-value store backed by a
// sectioned resource file (an INI-style text format).
//
// The store manages a single backing file of the form:
//
//	[section]
//	key = value
//	key2 = value2
//
//	[section2]
//	...
//
// Lines starting with ';' are treated as comments and skipped on load; the
// writer never emits them, so comments do not survive a load-mutate-dump
// cycle. Values are plain text; numeric or boolean interpretation is left to
// the caller.
//
// # Composite Keys
//
// Every accessor addresses entries with a composite key of the form
// "section.key", split at the first '.' only, so the key portion may itself
// contain dots ("bootstrap.reseed.url" names key "reseed.url" in section
// "bootstrap"). A composite key without a dot is tolerated: the whole input
// names the section and the key portion is empty, with a warning emitted to
// the log.
//
// # Persistence
//
// Set and Delete re-serialize the whole store to the backing file
// immediately and report the serialization result. Dump can also be invoked
// directly. Sections and keys are written in lexicographic order, so dumping
// twice without an intervening mutation produces byte-identical files. When
// a dump fails the in-memory mutation is kept; memory and disk may diverge
// until the next successful Dump.
//
// # Thread Safety
//
// Store is safe for concurrent use: a read-write mutex serializes every
// public operation. All I/O is synchronous on the caller's goroutine.
//
// # Usage Example
//
//	store := rcstore.New()
//	if err := store.Load("/path/to/app.config"); err != nil {
//	    log.Fatal(err)
//	}
//
//	port, err := store.Get("db.port")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Mutations persist to the backing file before returning.
//	if err := store.Set("db.port", "5433"); err != nil {
//	    log.Printf("update not persisted: %v", err)
//	}
package rcstore
