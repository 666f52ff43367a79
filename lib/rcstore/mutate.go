package rcstore

import (
	"github.com/go-i2p/logger"
	"github.com/samber/oops"
)

// Set stores value under the composite key "section.key", creating the
// section if needed, and persists the store to the backing file. The key is
// trimmed of surrounding whitespace; the value is stored exactly as given.
// When persisting fails the in-memory update is kept and the write error is
// returned, so the store and the backing file diverge until the next
// successful dump.
func (s *Store) Set(key, value string) error {
	key = trimValue(key)

	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.sections) == 0 {
		log.WithFields(logger.Fields{
			"at":     "(Store) Set",
			"key":    key,
			"reason": "no resource file loaded",
		}).Error("set before load")
		return oops.Wrapf(ErrStoreNotLoaded, "set %q", key)
	}

	section, entryKey := splitKey(key)

	if s.sections[section] == nil {
		s.sections[section] = make(map[string]string)
	}
	s.sections[section][entryKey] = value

	log.WithFields(logger.Fields{
		"at":      "(Store) Set",
		"section": section,
		"key":     entryKey,
	}).Debug("resource entry updated")

	return s.dumpLocked(s.path)
}

// Delete removes the entry under the composite key "section.key" and
// persists the store to the backing file. A section left empty by the
// removal is dropped entirely, so it does not reappear as a bare header in
// the dumped file. Like Set, a failed dump leaves the in-memory removal in
// place and returns the write error.
func (s *Store) Delete(key string) error {
	key = trimValue(key)

	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.sections) == 0 {
		log.WithFields(logger.Fields{
			"at":     "(Store) Delete",
			"key":    key,
			"reason": "no resource file loaded",
		}).Error("delete before load")
		return oops.Wrapf(ErrStoreNotLoaded, "delete %q", key)
	}

	section, entryKey := splitKey(key)

	entries, ok := s.sections[section]
	if !ok {
		log.WithFields(logger.Fields{
			"at":      "(Store) Delete",
			"section": section,
			"key":     entryKey,
		}).Error("section not found")
		return oops.Wrapf(ErrSectionNotFound, "delete %q: no section %q", key, section)
	}

	if _, ok := entries[entryKey]; !ok {
		log.WithFields(logger.Fields{
			"at":      "(Store) Delete",
			"section": section,
			"key":     entryKey,
		}).Error("key not found in section")
		return oops.Wrapf(ErrKeyNotFound, "delete %q: no key %q in section %q", key, entryKey, section)
	}

	delete(entries, entryKey)
	if len(entries) == 0 {
		delete(s.sections, section)
	}

	log.WithFields(logger.Fields{
		"at":      "(Store) Delete",
		"section": section,
		"key":     entryKey,
	}).Debug("resource entry removed")

	return s.dumpLocked(s.path)
}
