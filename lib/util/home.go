package util

import (
	"os"
)

// UserHome returns the current user's home directory.
// Falls back to $HOME (or USERPROFILE on Windows) if os.UserHomeDir fails,
// and as a last resort uses the current working directory rather than
// panicking, which keeps the tool usable in containers where $HOME is unset.
func UserHome() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		if home := os.Getenv("HOME"); home != "" {
			log.WithError(err).Warn("os.UserHomeDir failed, falling back to $HOME")
			return home
		}
		if home := os.Getenv("USERPROFILE"); home != "" {
			log.WithError(err).Warn("os.UserHomeDir failed, falling back to USERPROFILE")
			return home
		}
		// The config directory ends up relative to wherever the process was
		// started. Better than failing during package initialization.
		if wd, wdErr := os.Getwd(); wdErr == nil {
			log.WithError(err).Warn("os.UserHomeDir and $HOME unavailable; falling back to working directory")
			return wd
		}
		panic("go-rcstore: unable to determine home directory; set $HOME environment variable")
	}

	return homeDir
}
