package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// DetectConfigPath walks up from the current working directory looking for a
// tabglide.json, then falls back to the user config directory. Returns the
// first path that exists, or an error if none does.
func DetectConfigPath() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("getting working directory: %w", err)
	}

	for {
		candidate := filepath.Join(dir, ConfigFileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	if user := UserConfigPath(); user != "" {
		if _, err := os.Stat(user); err == nil {
			return user, nil
		}
	}

	return "", fmt.Errorf("%s not found in any parent directory or user config", ConfigFileName)
}

// UserConfigPath returns the per-user config location
// (e.g. ~/.config/tabglide/tabglide.json), or "" if it cannot be resolved.
func UserConfigPath() string {
	base, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(base, "tabglide", ConfigFileName)
}
