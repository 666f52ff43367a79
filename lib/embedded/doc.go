// Package embedded provides a reusable interface for embedding a resource
// store into Go applications.
//
// This package wraps lib/rcstore with structured lifecycle management: a
// host application configures the store once, opens it, and then reads and
// writes values without caring about file creation, reload semantics, or
// state tracking. The console commands are built on this same facade.
//
// # Basic Usage
//
//	cfg := config.DefaultToolConfig().Resource
//	store, err := embedded.NewStandardResourceStore(cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	if err := store.Open(); err != nil {
//	    log.Fatal(err)
//	}
//	defer store.Close()
//
//	value, err := store.GetValue("database.host")
//
// # Lifecycle
//
// The embedded store follows a strict lifecycle:
//  1. Create with NewStandardResourceStore() (configures from the given config)
//  2. Open with Open() (creates the backing file first when CreateMissing is set)
//  3. Access with GetValue(), SetValue(), DeleteValue(), DumpValues()
//  4. Re-read external edits with Reload()
//  5. Cleanup with Close()
//
// # Thread Safety
//
// All methods are thread-safe and can be called concurrently. The facade
// guards its lifecycle state with a sync.RWMutex, and the underlying
// rcstore.Store serializes its own operations.
package embedded
