// File: discovery.go
// Title: Configuration File Discovery
// Description: Locates the ion configuration file in the conventional
//              places, preferring an explicit path over XDG and home
//              directory locations.

package config

import (
	"os"
	"path/filepath"
)

// candidateNames are the file names probed in each search directory,
// in order of preference.
var candidateNames = []string{
	"ion.toml",
	"ion.yaml",
	"ion.yml",
}

// Discover searches for a configuration file in the conventional
// locations and loads the first one found. When no file exists the
// built-in defaults are returned.
//
// Search order:
//  1. $ION_CONFIG (explicit path, must exist)
//  2. $XDG_CONFIG_HOME/ion/ or ~/.config/ion/
//  3. ~/.ion.toml
func Discover() (*Config, error) {
	if path, ok := os.LookupEnv(EnvPrefix + "CONFIG"); ok && path != "" {
		return Load(path)
	}

	for _, dir := range searchDirs() {
		for _, name := range candidateNames {
			path := filepath.Join(dir, name)
			if _, err := os.Stat(path); err == nil {
				return Load(path)
			}
		}
	}

	home, err := os.UserHomeDir()
	if err == nil {
		path := filepath.Join(home, ".ion.toml")
		if _, err := os.Stat(path); err == nil {
			return Load(path)
		}
	}

	cfg := Default()
	cfg.applyEnvOverrides()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// searchDirs returns the configuration directories to probe
func searchDirs() []string {
	var dirs []string

	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		dirs = append(dirs, filepath.Join(xdg, "ion"))
	} else if home, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs, filepath.Join(home, ".config", "ion"))
	}

	return dirs
}
