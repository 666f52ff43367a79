package util

import "os"

// CheckFileExists reports whether fpath exists on disk, file or directory.
// Callers that need to tell the two apart must stat on their own.
func CheckFileExists(fpath string) bool {
	_, err := os.Stat(fpath)
	return err == nil
}
