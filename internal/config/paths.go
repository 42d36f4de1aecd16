// ABOUTME: Standard filesystem paths for gridwalk configuration
// ABOUTME: Resolves ~/.gridwalk/ for the user config directory

package config

import (
	"os"
	"path/filepath"
)

const globalDirName = ".gridwalk"

// GlobalDir returns the user-global config directory (~/.gridwalk/).
func GlobalDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", globalDirName)
	}
	return filepath.Join(home, globalDirName)
}

// DefaultFile returns the path of the config file read when -config is not given.
func DefaultFile() string {
	return filepath.Join(GlobalDir(), "config.yaml")
}
