package rcstore

import (
	"bufio"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/go-i2p/logger"
	"github.com/samber/oops"
)

// Store is an in-memory view of a sectioned resource file. It is created
// empty and unloaded; Load binds it to a backing file and populates it.
// Mutations persist to the backing file immediately.
type Store struct {
	// path is the backing resource file, set by the most recent successful Load
	path string

	// sections maps section name to that section's key-value entries
	sections map[string]map[string]string

	// mu serializes every public operation on the store
	mu sync.RWMutex
}

// New creates an empty, unloaded Store. Accessors and mutators fail with
// ErrStoreNotLoaded until a Load succeeds.
func New() *Store {
	log.Debug("creating new resource store")
	return &Store{}
}

// Load reads the resource file at path and replaces the store's contents
// with the parsed sections. The path is trimmed of surrounding whitespace
// before use. On failure the previous contents and backing path are left
// untouched. Loading a new file discards any mutations that were not
// persisted since the previous Load.
func (s *Store) Load(path string) error {
	path = trimValue(path)

	s.mu.Lock()
	defer s.mu.Unlock()

	log.WithFields(logger.Fields{
		"at":            "(Store) Load",
		"resource_path": path,
	}).Debug("loading resource file")

	f, err := os.Open(path)
	if err != nil {
		log.WithError(err).WithFields(logger.Fields{
			"at":            "(Store) Load",
			"resource_path": path,
			"reason":        "open for reading failed",
		}).Error("unable to open resource file")
		return oops.Wrapf(ErrFileOpen, "loading %s: %s", path, err)
	}
	defer f.Close()

	sections, err := parseSections(f)
	if err != nil {
		log.WithError(err).WithFields(logger.Fields{
			"at":            "(Store) Load",
			"resource_path": path,
			"reason":        "read failed mid-file",
		}).Error("unable to read resource file")
		return oops.Wrapf(ErrFileOpen, "reading %s: %s", path, err)
	}

	s.path = path
	s.sections = sections

	log.WithFields(logger.Fields{
		"at":            "(Store) Load",
		"resource_path": path,
		"sections":      len(sections),
		"entries":       countEntries(sections),
	}).Info("resource file successfully loaded")
	return nil
}

// parseSections reads r line by line, with no limit on line length, and
// builds the section map. Lines are classified on their raw text, in order:
//
//   - empty lines and lines starting with ';' are skipped
//   - "[name]" lines (first byte '[', last byte ']') open section "name";
//     entries seen before any such line belong to the unnamed "" section
//   - lines containing '=' split at the first '=' into a key and value,
//     both trimmed, stored into the current section (later wins)
//   - anything else is silently ignored
func parseSections(r io.Reader) (map[string]map[string]string, error) {
	sections := make(map[string]map[string]string)
	current := ""

	reader := bufio.NewReader(r)
	for {
		raw, err := reader.ReadString('\n')
		if err != nil && err != io.EOF {
			return nil, err
		}
		if raw != "" {
			line := strings.TrimSuffix(raw, "\n")
			line = strings.TrimSuffix(line, "\r")
			switch {
			case line == "" || line[0] == ';':
				// comment or blank
			case len(line) >= 2 && line[0] == '[' && line[len(line)-1] == ']':
				current = line[1 : len(line)-1]
			default:
				i := strings.IndexByte(line, '=')
				if i < 0 {
					// not a key-value line, ignored
					break
				}
				key := trimValue(line[:i])
				value := trimValue(line[i+1:])
				if sections[current] == nil {
					sections[current] = make(map[string]string)
				}
				sections[current][key] = value
			}
		}
		if err == io.EOF {
			return sections, nil
		}
	}
}

// countEntries returns the total number of key-value pairs across sections.
func countEntries(sections map[string]map[string]string) int {
	n := 0
	for _, entries := range sections {
		n += len(entries)
	}
	return n
}

// Loaded reports whether the store holds resource data, i.e. a Load has
// succeeded and yielded at least one entry. This is the same precondition
// Get, Set and Delete enforce: loading an empty resource file leaves the
// store unloaded for their purposes.
func (s *Store) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sections) > 0
}

// Path returns the backing resource file path set by the most recent
// successful Load, or the empty string if no Load has succeeded.
func (s *Store) Path() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.path
}

// Len returns the total number of key-value entries across all sections.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return countEntries(s.sections)
}

// Reset discards all loaded data and unbinds the backing path, returning the
// store to its initial unloaded state. The backing file is not touched.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	log.WithFields(logger.Fields{
		"at":            "(Store) Reset",
		"resource_path": s.path,
	}).Debug("resetting resource store")

	s.path = ""
	s.sections = nil
}
