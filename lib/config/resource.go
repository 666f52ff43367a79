package config

import (
	"path/filepath"
)

// resource file options
type ResourceConfig struct {
	// Path is the resource file operated on when no explicit path is given
	Path string
	// CreateMissing writes an empty resource file on open when Path does not
	// exist yet, instead of failing the open
	CreateMissing bool
}

func defaultResourcePath() string {
	return filepath.Join(BuildRCStoreDirPath(), "resources.rc")
}

// default settings for the resource file
var DefaultResourceConfig = ResourceConfig{
	Path:          defaultResourcePath(),
	CreateMissing: true,
}
