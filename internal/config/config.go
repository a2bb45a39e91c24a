// Package config provides configuration loading for the regexlite command.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds all configuration for the regexlite command.
type Config struct {
	Grep GrepConfig `toml:"grep"`
	Log  LogConfig  `toml:"log"`
}

// GrepConfig contains the defaults of the grep command. Flags given on the
// command line override them.
type GrepConfig struct {
	IgnoreCase  bool `toml:"ignore_case"`
	LineNumbers bool `toml:"line_numbers"`
	Jobs        int  `toml:"jobs"`
	Prefilter   bool `toml:"prefilter"`
	// MaxLineBytes bounds a single input line; longer lines are an error.
	MaxLineBytes int `toml:"max_line_bytes"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	Level string `toml:"level"`
}

// Default configuration values.
var Default = Config{
	Grep: GrepConfig{
		IgnoreCase:   false,
		LineNumbers:  false,
		Jobs:         4,
		Prefilter:    true,
		MaxLineBytes: 1 << 20,
	},
	Log: LogConfig{
		Level: "info",
	},
}

// ErrNotFound is returned when an explicitly named config file is missing.
var ErrNotFound = errors.New("config file not found")

// configPaths returns the list of paths to search for config files.
func configPaths() []string {
	paths := []string{"./regexlite.toml"}

	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "regexlite", "config.toml"))
	}

	return paths
}

// Load loads configuration from a file or discovers it automatically.
// If configFile is empty, it searches standard locations.
// Returns the default config if no file is found.
func Load(configFile string) (*Config, error) {
	cfg := Default

	var path string
	if configFile != "" {
		path = configFile
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
	} else {
		for _, p := range configPaths() {
			if _, err := os.Stat(p); err == nil {
				path = p
				break
			}
		}
	}

	if path == "" {
		return &cfg, nil
	}

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("parsing config %s: unknown key %q", path, undecoded[0].String())
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}

	return &cfg, nil
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	if c.Grep.Jobs < 1 {
		return fmt.Errorf("grep.jobs must be at least 1, got %d", c.Grep.Jobs)
	}
	if c.Grep.MaxLineBytes < 1 {
		return fmt.Errorf("grep.max_line_bytes must be positive, got %d", c.Grep.MaxLineBytes)
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level must be one of debug, info, warn, error; got %q", c.Log.Level)
	}
	return nil
}
