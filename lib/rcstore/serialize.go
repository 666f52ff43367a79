package rcstore

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/go-i2p/logger"
	"github.com/samber/oops"
)

// Dump rewrites the backing resource file from the store's current contents.
// The file is truncated and rewritten in full: sections in lexicographic
// order, each as a "[name]" header followed by its "key = value" lines in
// key order and one blank separator line. Dumping an identical store twice
// produces byte-identical files.
func (s *Store) Dump() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dumpLocked(s.path)
}

// DumpTo writes the store's contents to path in the same format Dump uses,
// without rebinding the store. The backing file and any later automatic
// dumps are unaffected. The path is trimmed of surrounding whitespace.
func (s *Store) DumpTo(path string) error {
	path = trimValue(path)

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dumpLocked(path)
}

// dumpLocked writes every section to the file at path. Callers must hold mu.
func (s *Store) dumpLocked(path string) error {
	f, err := os.Create(path)
	if err != nil {
		log.WithError(err).WithFields(logger.Fields{
			"at":            "(Store) Dump",
			"resource_path": path,
			"reason":        "open for writing failed",
		}).Error("unable to open resource file for writing")
		return oops.Wrapf(ErrFileWrite, "dumping to %s: %s", path, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	if err := serializeTo(w, s.sections); err != nil {
		log.WithError(err).WithFields(logger.Fields{
			"at":            "(Store) Dump",
			"resource_path": path,
			"reason":        "write failed mid-file",
		}).Error("unable to write resource file")
		return oops.Wrapf(ErrFileWrite, "dumping to %s: %s", path, err)
	}
	if err := w.Flush(); err != nil {
		log.WithError(err).WithFields(logger.Fields{
			"at":            "(Store) Dump",
			"resource_path": path,
			"reason":        "flush failed",
		}).Error("unable to write resource file")
		return oops.Wrapf(ErrFileWrite, "dumping to %s: %s", path, err)
	}

	log.WithFields(logger.Fields{
		"at":            "(Store) Dump",
		"resource_path": path,
		"sections":      len(s.sections),
		"entries":       countEntries(s.sections),
	}).Debug("resource store persisted")
	return nil
}

// serializeTo writes sections to w in the resource file format. Section
// names and keys are sorted so the output is deterministic regardless of
// map iteration order.
func serializeTo(w io.Writer, sections map[string]map[string]string) error {
	names := make([]string, 0, len(sections))
	for name := range sections {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if _, err := fmt.Fprintf(w, "[%s]\n", name); err != nil {
			return err
		}

		entries := sections[name]
		keys := make([]string, 0, len(entries))
		for k := range entries {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		for _, k := range keys {
			if _, err := fmt.Fprintf(w, "%s = %s\n", k, entries[k]); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}
	return nil
}
