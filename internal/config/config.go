// Package config resolves todo configuration from defaults and an optional TOML file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// FileName is the project config file looked up in the working directory.
const FileName = ".todo.toml"

// Default values
const (
	DefaultDBPath    = "sqlite.db"
	DefaultLogLevel  = "warn"
	DefaultLogFormat = "text"
)

// Config represents the todo configuration
type Config struct {
	DBPath    string `toml:"db_path"`
	LogLevel  string `toml:"log_level"`  // debug, info, warn, error
	LogFormat string `toml:"log_format"` // text, json, logfmt
}

// Default returns a Config populated with default values.
func Default() *Config {
	return &Config{
		DBPath:    DefaultDBPath,
		LogLevel:  DefaultLogLevel,
		LogFormat: DefaultLogFormat,
	}
}

// Load reads .todo.toml from dir on top of the defaults.
// A missing file is not an error.
func Load(dir string) (*Config, error) {
	cfg := Default()
	if err := decodeFile(cfg, filepath.Join(dir, FileName)); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, err
	}
	return cfg, nil
}

// LoadFile reads an explicitly named config file on top of the defaults.
// Unlike Load, a missing file is an error.
func LoadFile(path string) (*Config, error) {
	cfg := Default()
	if err := decodeFile(cfg, path); err != nil {
		return nil, err
	}
	return cfg, nil
}

func decodeFile(cfg *Config, path string) error {
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return err
		}
		return fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("unknown key %q in config %s", undecoded[0].String(), path)
	}
	return nil
}
