package rcstore

import "errors"

// Errors returned by Store operations. Callers should match them with
// errors.Is; operations wrap these sentinels with per-call context.
var (
	// ErrFileOpen is returned by Load when the resource file cannot be
	// opened for reading.
	ErrFileOpen = errors.New("unable to open resource file")

	// ErrFileWrite is returned by Dump (and by Set/Delete, which dump
	// implicitly) when the backing file cannot be opened or written.
	ErrFileWrite = errors.New("unable to write resource file")

	// ErrStoreNotLoaded is returned by accessors and mutators invoked
	// before a resource file has been loaded.
	ErrStoreNotLoaded = errors.New("no resource file has been loaded yet")

	// ErrSectionNotFound is returned when a composite key names a section
	// that does not exist in the store.
	ErrSectionNotFound = errors.New("section not found")

	// ErrKeyNotFound is returned when a composite key names a key that does
	// not exist within its section.
	ErrKeyNotFound = errors.New("key not found")
)
