// Package config handles configuration loading and defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/Makepad-fr/tada/internal/logging"
	"github.com/Makepad-fr/tada/internal/store"
)

// Default values.
const (
	DefaultBackend   = store.BackendJSON
	DefaultLogLevel  = "warn"
	DefaultLogFormat = "text"

	ProjectFileName = ".tada.toml"
	UserFileName    = "config.toml"
)

// Config holds the full configuration for tada.
type Config struct {
	// Backend is one of store.Backends().
	Backend string `toml:"backend"`
	// DataPath is the JSON file or SQLite database. Empty means the backend default.
	DataPath string `toml:"data_path"`

	LogLevel  string `toml:"log_level"`
	LogFormat string `toml:"log_format"`

	// Group splits `ls` output into pending and done sections.
	Group bool `toml:"group"`

	// File is the config file that was read, if any.
	File string `toml:"-"`
}

// Default returns a config with every field at its default.
func Default() *Config {
	return &Config{
		Backend:   DefaultBackend,
		LogLevel:  DefaultLogLevel,
		LogFormat: DefaultLogFormat,
	}
}

// Load loads configuration from multiple sources in priority order:
// 1. Defaults
// 2. Config file: explicit path, else $TADA_CONFIG, else ./.tada.toml,
//    else <user config dir>/tada/config.toml
// 3. Environment variables
//
// CLI flags are applied afterwards by the caller via Override.
func Load(explicitPath string) (*Config, error) {
	cfg := Default()

	path := explicitPath
	if path == "" {
		path = os.Getenv("TADA_CONFIG")
	}
	mustExist := path != ""
	if path == "" {
		path = findConfigFile()
	}
	if path != "" {
		if err := loadConfigFile(cfg, path, mustExist); err != nil {
			return nil, fmt.Errorf("loading config file %s: %w", path, err)
		}
	}

	loadFromEnv(cfg)
	return cfg, nil
}

func findConfigFile() string {
	if _, err := os.Stat(ProjectFileName); err == nil {
		return ProjectFileName
	}
	if dir, err := os.UserConfigDir(); err == nil {
		p := filepath.Join(dir, "tada", UserFileName)
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

func loadConfigFile(cfg *Config, path string, mustExist bool) error {
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		if !mustExist && errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return fmt.Errorf("unknown keys: %s", strings.Join(keys, ", "))
	}
	cfg.File = path
	return nil
}

// loadFromEnv overrides config from environment variables.
func loadFromEnv(cfg *Config) {
	if v := os.Getenv("TADA_BACKEND"); v != "" {
		cfg.Backend = v
	}
	if v := os.Getenv("TADA_DATA"); v != "" {
		cfg.DataPath = v
	}
	if v := os.Getenv("TADA_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("TADA_LOG_FORMAT"); v != "" {
		cfg.LogFormat = v
	}
}

// Overrides carries values set explicitly on the command line.
// Nil fields leave the config untouched.
type Overrides struct {
	Backend   *string
	DataPath  *string
	LogLevel  *string
	LogFormat *string
	Group     *bool
}

// Override applies CLI flag values; they win over every other source.
func (c *Config) Override(o Overrides) {
	if o.Backend != nil {
		c.Backend = *o.Backend
	}
	if o.DataPath != nil {
		c.DataPath = *o.DataPath
	}
	if o.LogLevel != nil {
		c.LogLevel = *o.LogLevel
	}
	if o.LogFormat != nil {
		c.LogFormat = *o.LogFormat
	}
	if o.Group != nil {
		c.Group = *o.Group
	}
}

// Validate checks enumerated fields.
func (c *Config) Validate() error {
	c.Backend = strings.ToLower(strings.TrimSpace(c.Backend))
	if !slices.Contains(store.Backends(), c.Backend) {
		return fmt.Errorf("backend %q: want one of %s", c.Backend, strings.Join(store.Backends(), ", "))
	}
	if !logging.ValidLevel(c.LogLevel) {
		return fmt.Errorf("log_level %q: want debug, info, warn or error", c.LogLevel)
	}
	if !logging.ValidFormat(c.LogFormat) {
		return fmt.Errorf("log_format %q: want text, json or logfmt", c.LogFormat)
	}
	return nil
}

// ResolvedDataPath is DataPath, or the backend's default file name.
func (c *Config) ResolvedDataPath() string {
	if c.DataPath != "" {
		return c.DataPath
	}
	return store.DefaultPath(c.Backend)
}
