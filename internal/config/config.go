package config

import (
	"os"
	"path/filepath"
	"time"
)

// Config holds the application configuration.
type Config struct {
	DataDir        string        `yaml:"data_dir"`
	DefaultTimeout time.Duration `yaml:"default_timeout"`
	Theme          string        `yaml:"theme"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		DataDir:        defaultDataDir(),
		DefaultTimeout: 30 * time.Second,
		Theme:          "catppuccin-mocha",
	}
}

// DBPath returns the path of the SQLite database file inside the data
// directory.
func (c Config) DBPath() string {
	return filepath.Join(c.DataDir, "reqdeck.db")
}

func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".local", "share", "reqdeck")
}
