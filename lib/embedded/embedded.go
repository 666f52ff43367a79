package embedded

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/go-i2p/go-rcstore/lib/config"
	"github.com/go-i2p/go-rcstore/lib/rcstore"
	"github.com/go-i2p/go-rcstore/lib/util"
	"github.com/go-i2p/logger"
)

var log = logger.GetGoI2PLogger()

// ResourceStore defines the interface for an embeddable resource store
// instance. It allows programmatic control of the store lifecycle for
// applications that embed resource file handling rather than shelling out
// to the console tool.
type ResourceStore interface {
	// Configure initializes the store with the provided configuration.
	// Must be called before Open(). Returns error if the configuration is
	// nil or if the store is already configured.
	Configure(cfg *config.ResourceConfig) error

	// Open binds the store to the configured resource file and loads it.
	// When CreateMissing is set, a missing file is created empty first.
	Open() error

	// Reload re-reads the resource file from disk, replacing in-memory
	// contents with whatever the file holds now.
	Reload() error

	// Close discards loaded data and returns the store to its unconfigured
	// state. The backing file is left as the last dump wrote it.
	Close() error

	// GetValue looks up a value by composite "section.key".
	GetValue(key string) (string, error)

	// SetValue stores a value by composite "section.key" and persists.
	SetValue(key, value string) error

	// DeleteValue removes an entry by composite "section.key" and persists.
	DeleteValue(key string) error

	// DumpValues rewrites the backing resource file from memory.
	DumpValues() error

	// DumpValuesTo writes current contents to another path without
	// rebinding the store.
	DumpValuesTo(path string) error

	// Sections lists section names in lexicographic order.
	Sections() []string

	// Keys lists the keys of one section in lexicographic order.
	Keys(section string) ([]string, error)

	// Snapshot returns a deep copy of all loaded data.
	Snapshot() map[string]map[string]string

	// Path returns the configured resource file path.
	Path() string

	// IsOpen reports whether Open() has succeeded.
	IsOpen() bool

	// IsConfigured reports whether the store has a configuration.
	IsConfigured() bool
}

var _ ResourceStore = (*StandardResourceStore)(nil)

// StandardResourceStore is the standard implementation of ResourceStore.
// It wraps an rcstore.Store and manages its lifecycle with proper
// thread-safety and error handling.
type StandardResourceStore struct {
	// store is the underlying resource store instance
	store *rcstore.Store

	// cfg stores the resource configuration
	cfg *config.ResourceConfig

	// mu protects concurrent access to lifecycle state
	mu sync.RWMutex

	// configured tracks whether Configure() has been called successfully
	configured bool

	// opened tracks whether the resource file is currently loaded
	opened bool
}

// NewStandardResourceStore creates a new embedded resource store and
// configures it from cfg. The store must still be opened with Open()
// before values can be accessed.
//
// Returns error if the configuration is nil.
func NewStandardResourceStore(cfg *config.ResourceConfig) (*StandardResourceStore, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}

	log.WithFields(logger.Fields{
		"at":     "NewStandardResourceStore",
		"phase":  "initialization",
		"reason": "creating embedded resource store",
	}).Debug("creating new standard resource store")

	s := &StandardResourceStore{}
	if err := s.Configure(cfg); err != nil {
		return nil, err
	}
	return s, nil
}

// Configure initializes the store with the provided configuration.
// This method creates the underlying store instance but does not load it.
func (s *StandardResourceStore) Configure(cfg *config.ResourceConfig) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.configured {
		return fmt.Errorf("store is already configured")
	}

	if s.opened {
		return fmt.Errorf("cannot reconfigure an open store")
	}

	if cfg == nil {
		return fmt.Errorf("configuration cannot be nil")
	}

	log.WithFields(logger.Fields{
		"at":             "StandardResourceStore.Configure",
		"phase":          "configuration",
		"resource_path":  cfg.Path,
		"create_missing": cfg.CreateMissing,
	}).Info("configuring embedded resource store")

	s.store = rcstore.New()
	s.cfg = cfg
	s.configured = true

	return nil
}

// Open binds the store to the configured resource file and loads its
// contents. A missing file is created empty first when CreateMissing is
// set; otherwise the load fails with rcstore.ErrFileOpen.
func (s *StandardResourceStore) Open() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.configured {
		return fmt.Errorf("store must be configured before opening")
	}

	if s.opened {
		return fmt.Errorf("store is already open")
	}

	log.WithFields(logger.Fields{
		"at":            "StandardResourceStore.Open",
		"phase":         "open",
		"resource_path": s.cfg.Path,
	}).Info("opening embedded resource store")

	if s.cfg.CreateMissing && !util.CheckFileExists(s.cfg.Path) {
		if err := createEmptyResource(s.cfg.Path); err != nil {
			log.WithError(err).WithFields(logger.Fields{
				"at":            "StandardResourceStore.Open",
				"phase":         "open",
				"reason":        "create missing resource file failed",
				"resource_path": s.cfg.Path,
			}).Error("failed to create resource file")
			return fmt.Errorf("failed to create resource file: %w", err)
		}
	}

	if err := s.store.Load(s.cfg.Path); err != nil {
		log.WithError(err).WithFields(logger.Fields{
			"at":     "StandardResourceStore.Open",
			"phase":  "open",
			"reason": "initial load failed",
		}).Error("failed to load resource file")
		return fmt.Errorf("failed to load resource file: %w", err)
	}

	s.opened = true

	log.WithFields(logger.Fields{
		"at":            "StandardResourceStore.Open",
		"phase":         "open",
		"resource_path": s.cfg.Path,
	}).Info("embedded resource store opened")

	return nil
}

// createEmptyResource writes a zero-length resource file at path, creating
// parent directories as needed.
func createEmptyResource(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	log.WithFields(logger.Fields{
		"at":            "embedded.createEmptyResource",
		"resource_path": path,
	}).Debug("creating empty resource file")

	return os.WriteFile(path, nil, 0o644)
}

// Reload re-reads the resource file from disk. Use this to pick up edits
// made by other processes; any in-memory state that was never persisted is
// discarded.
func (s *StandardResourceStore) Reload() error {
	s.mu.RLock()
	store, cfg, opened := s.store, s.cfg, s.opened
	s.mu.RUnlock()

	if !opened {
		return fmt.Errorf("store is not open")
	}

	log.WithFields(logger.Fields{
		"at":            "StandardResourceStore.Reload",
		"phase":         "reload",
		"resource_path": cfg.Path,
	}).Info("reloading resource store from disk")

	if err := store.Load(cfg.Path); err != nil {
		log.WithError(err).WithFields(logger.Fields{
			"at":     "StandardResourceStore.Reload",
			"phase":  "reload",
			"reason": "load failed",
		}).Error("failed to reload resource file")
		return fmt.Errorf("failed to reload resource file: %w", err)
	}

	return nil
}

// Close discards loaded data and returns the store to its unconfigured
// state. Mutations are persisted as they happen, so Close writes nothing.
// Safe to call on a store that never opened.
func (s *StandardResourceStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.opened {
		log.WithFields(logger.Fields{
			"at":     "StandardResourceStore.Close",
			"phase":  "cleanup",
			"reason": "store is not open",
		}).Debug("close called on a store that is not open")
		return nil
	}

	log.WithFields(logger.Fields{
		"at":            "StandardResourceStore.Close",
		"phase":         "cleanup",
		"resource_path": s.cfg.Path,
	}).Info("closing embedded resource store")

	s.store.Reset()
	s.store = nil
	s.opened = false
	s.configured = false

	return nil
}

// openedStore returns the underlying store when the facade is open.
func (s *StandardResourceStore) openedStore() (*rcstore.Store, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.opened || s.store == nil {
		return nil, fmt.Errorf("store is not open")
	}
	return s.store, nil
}

// GetValue looks up a value by composite "section.key".
func (s *StandardResourceStore) GetValue(key string) (string, error) {
	store, err := s.openedStore()
	if err != nil {
		return "", err
	}
	return store.Get(key)
}

// SetValue stores a value by composite "section.key" and persists the store
// to the backing file.
func (s *StandardResourceStore) SetValue(key, value string) error {
	store, err := s.openedStore()
	if err != nil {
		return err
	}
	return store.Set(key, value)
}

// DeleteValue removes an entry by composite "section.key" and persists the
// store to the backing file.
func (s *StandardResourceStore) DeleteValue(key string) error {
	store, err := s.openedStore()
	if err != nil {
		return err
	}
	return store.Delete(key)
}

// DumpValues rewrites the backing resource file from current contents.
func (s *StandardResourceStore) DumpValues() error {
	store, err := s.openedStore()
	if err != nil {
		return err
	}
	return store.Dump()
}

// DumpValuesTo writes current contents to another path, leaving the backing
// file and the store's binding untouched.
func (s *StandardResourceStore) DumpValuesTo(path string) error {
	store, err := s.openedStore()
	if err != nil {
		return err
	}
	return store.DumpTo(path)
}

// Sections lists section names in lexicographic order. A store that is not
// open yields an empty slice.
func (s *StandardResourceStore) Sections() []string {
	store, err := s.openedStore()
	if err != nil {
		return nil
	}
	return store.Sections()
}

// Keys lists the keys of one section in lexicographic order.
func (s *StandardResourceStore) Keys(section string) ([]string, error) {
	store, err := s.openedStore()
	if err != nil {
		return nil, err
	}
	return store.Keys(section)
}

// Snapshot returns a deep copy of all loaded data. A store that is not open
// yields an empty map.
func (s *StandardResourceStore) Snapshot() map[string]map[string]string {
	store, err := s.openedStore()
	if err != nil {
		return map[string]map[string]string{}
	}
	return store.Snapshot()
}

// Path returns the configured resource file path, or the empty string for
// an unconfigured store.
func (s *StandardResourceStore) Path() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.cfg == nil {
		return ""
	}
	return s.cfg.Path
}

// IsOpen returns true if the resource file is currently loaded.
func (s *StandardResourceStore) IsOpen() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.opened
}

// IsConfigured returns true if the store has been configured.
func (s *StandardResourceStore) IsConfigured() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.configured
}
