// Package globalconfig loads resolve-parent-paths configuration.
// The global file lives at ~/.config/parentpaths/config.yaml and a
// project may add a .parentpaths.yaml in any ancestor directory.
package globalconfig

import (
	"os"
	"path/filepath"
)

const (
	// ConfigDirName is the name of the config directory under ~/.config.
	ConfigDirName = "parentpaths"
	// ConfigFileName is the name of the global config file.
	ConfigFileName = "config.yaml"
	// LocalConfigFileName is the project config file found by walking upward.
	LocalConfigFileName = ".parentpaths.yaml"
)

// GetConfigDir returns the config directory path (~/.config/parentpaths).
// Respects XDG_CONFIG_HOME if set.
func GetConfigDir() (string, error) {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, ConfigDirName), nil
}

// GetConfigPath returns the full path to the global config file.
func GetConfigPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, ConfigFileName), nil
}
