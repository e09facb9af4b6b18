package config

import (
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Load loads configuration from ~/.config/reqdeck/config.yaml. A missing
// or unreadable file yields the defaults.
func Load() Config {
	cfg := DefaultConfig()

	home, err := os.UserHomeDir()
	if err != nil {
		return cfg
	}

	return loadFrom(filepath.Join(home, ".config", "reqdeck", "config.yaml"))
}

func loadFrom(path string) Config {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg
	}

	// default_timeout is written as a duration string ("10s"), which
	// yaml cannot decode into time.Duration directly.
	var raw struct {
		DataDir        string `yaml:"data_dir"`
		DefaultTimeout string `yaml:"default_timeout"`
		Theme          string `yaml:"theme"`
	}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return cfg
	}

	if raw.DataDir != "" {
		cfg.DataDir = raw.DataDir
	}
	if raw.Theme != "" {
		cfg.Theme = raw.Theme
	}
	if d, err := time.ParseDuration(raw.DefaultTimeout); err == nil && d > 0 {
		cfg.DefaultTimeout = d
	}
	return cfg
}
