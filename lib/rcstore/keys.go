package rcstore

import (
	"strings"

	"github.com/go-i2p/logger"
)

// trimValue removes leading and trailing spaces and tabs from s, then strips
// any trailing newlines left in the result. It is applied to every key and
// value read from a resource file and to the path and key arguments of every
// public operation before further processing.
func trimValue(s string) string {
	s = strings.Trim(s, " \t")
	s = strings.TrimRight(s, "\n")
	return s
}

// splitKey splits a composite key at the first '.' into its section and key
// components. The key component may contain further dots; only the first one
// separates. A composite key without a dot is malformed but tolerated: the
// whole input names the section, the key component is empty, and a warning
// is logged. Operations continue with the empty key rather than failing.
func splitKey(composite string) (section, key string) {
	i := strings.IndexByte(composite, '.')
	if i < 0 {
		log.WithFields(logger.Fields{
			"at":     "rcstore.splitKey",
			"key":    composite,
			"reason": "missing '.' separator",
		}).Warn("malformed composite key, using empty key component")
		return composite, ""
	}
	return composite[:i], composite[i+1:]
}
