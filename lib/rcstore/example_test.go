package rcstore_test

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/go-i2p/go-rcstore/lib/rcstore"
)

// Example demonstrates the basic lifecycle: load a resource file, read and
// update values, and let mutations persist back to the file.
func Example() {
	dir, err := os.MkdirTemp("", "rcstore-example")
	if err != nil {
		log.Fatal(err)
	}
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, "app.rc")
	contents := "[database]\nhost = localhost\nport = 5432\n\n[app]\nname = demo\n\n"
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		log.Fatal(err)
	}

	store := rcstore.New()
	if err := store.Load(path); err != nil {
		log.Fatal(err)
	}

	host, err := store.Get("database.host")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println("database host:", host)

	// Mutations persist to the backing file as they happen, so a later
	// Load sees them without an explicit Dump.
	if err := store.Set("app.retries", "3"); err != nil {
		log.Fatal(err)
	}
	if err := store.Delete("database.port"); err != nil {
		log.Fatal(err)
	}

	retries, err := store.Get("app.retries")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println("app retries:", retries)

	for _, section := range store.Sections() {
		fmt.Println("section:", section)
	}

	// Output:
	// database host: localhost
	// app retries: 3
	// section: app
	// section: database
}
