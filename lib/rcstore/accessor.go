package rcstore

import (
	"sort"

	"github.com/go-i2p/logger"
	"github.com/samber/oops"
)

// Get looks up the value stored under the composite key "section.key".
// The key is trimmed of surrounding whitespace before the lookup. It fails
// with ErrStoreNotLoaded when no resource data is loaded, ErrSectionNotFound
// when the section does not exist and ErrKeyNotFound when the section exists
// but lacks the key.
func (s *Store) Get(key string) (string, error) {
	key = trimValue(key)

	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(s.sections) == 0 {
		log.WithFields(logger.Fields{
			"at":     "(Store) Get",
			"key":    key,
			"reason": "no resource file loaded",
		}).Error("get before load")
		return "", oops.Wrapf(ErrStoreNotLoaded, "get %q", key)
	}

	section, entryKey := splitKey(key)

	entries, ok := s.sections[section]
	if !ok {
		log.WithFields(logger.Fields{
			"at":      "(Store) Get",
			"section": section,
			"key":     entryKey,
		}).Error("section not found")
		return "", oops.Wrapf(ErrSectionNotFound, "get %q: no section %q", key, section)
	}

	value, ok := entries[entryKey]
	if !ok {
		log.WithFields(logger.Fields{
			"at":      "(Store) Get",
			"section": section,
			"key":     entryKey,
		}).Error("key not found in section")
		return "", oops.Wrapf(ErrKeyNotFound, "get %q: no key %q in section %q", key, entryKey, section)
	}

	log.WithFields(logger.Fields{
		"at":      "(Store) Get",
		"section": section,
		"key":     entryKey,
	}).Debug("resource entry read")
	return value, nil
}

// Sections returns the names of all sections in lexicographic order.
// An unloaded store yields an empty slice.
func (s *Store) Sections() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, 0, len(s.sections))
	for name := range s.sections {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Keys returns the keys of the named section in lexicographic order. The
// section name is trimmed of surrounding whitespace before the lookup.
func (s *Store) Keys(section string) ([]string, error) {
	section = trimValue(section)

	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(s.sections) == 0 {
		return nil, oops.Wrapf(ErrStoreNotLoaded, "keys of %q", section)
	}

	entries, ok := s.sections[section]
	if !ok {
		log.WithFields(logger.Fields{
			"at":      "(Store) Keys",
			"section": section,
		}).Error("section not found")
		return nil, oops.Wrapf(ErrSectionNotFound, "keys of %q", section)
	}

	keys := make([]string, 0, len(entries))
	for k := range entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys, nil
}

// Snapshot returns a deep copy of the loaded sections. Mutating the returned
// map does not affect the store. An unloaded store yields an empty map.
func (s *Store) Snapshot() map[string]map[string]string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snapshot := make(map[string]map[string]string, len(s.sections))
	for name, entries := range s.sections {
		copied := make(map[string]string, len(entries))
		for k, v := range entries {
			copied[k] = v
		}
		snapshot[name] = copied
	}
	return snapshot
}
