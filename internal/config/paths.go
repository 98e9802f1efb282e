package config

import (
	"os"
	"path/filepath"
)

// ConfigPathEnv overrides the config file location.
const ConfigPathEnv = "CHATPROXY_CONFIG"

// ConfigPath returns the path to the config file.
// CHATPROXY_CONFIG wins; otherwise ~/.chatproxy/config.toml.
// Returns "" when no home directory is available (e.g. inside a function sandbox).
func ConfigPath() string {
	if p := os.Getenv(ConfigPathEnv); p != "" {
		return p
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".chatproxy", "config.toml")
}
