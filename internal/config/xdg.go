// Package config provides XDG path helpers.
package config

import (
	"os"
	"path/filepath"
)

const appName = "wordhelp"

// XDGConfigHome returns the XDG config home or a default fallback.
func XDGConfigHome() string {
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "."
	}
	return filepath.Join(home, ".config")
}

// XDGDataHome returns the XDG data home or a default fallback.
func XDGDataHome() string {
	if v := os.Getenv("XDG_DATA_HOME"); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "."
	}
	return filepath.Join(home, ".local", "share")
}

// DefaultWordListDir returns the shared directory searched for word lists.
func DefaultWordListDir() string {
	return filepath.Join(XDGDataHome(), appName, "wordlists")
}

// DefaultConfigPath returns the default TOML config path.
func DefaultConfigPath() string {
	return filepath.Join(XDGConfigHome(), appName, "config.toml")
}

// WordListCandidates lists the locations checked for a word list, in order.
// Absolute paths are returned as-is.
func WordListCandidates(path string) []string {
	if path == "" {
		return nil
	}
	if filepath.IsAbs(path) {
		return []string{path}
	}
	return []string{path, filepath.Join(DefaultWordListDir(), path)}
}

// ResolveWordListPath returns the first existing candidate for path. When none
// exists the path is returned unchanged so the caller reports the original name.
func ResolveWordListPath(path string) string {
	for _, candidate := range WordListCandidates(path) {
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}
	return path
}
