// Package config loads CLI defaults from a YAML or TOML file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// EnvPath names the environment variable that overrides the config path.
const EnvPath = "TABFMT_CONFIG"

// Config holds defaults that flags override.
type Config struct {
	// Output format (table, csv, json, ...)
	Format string `yaml:"format,omitempty" toml:"format"`

	// Table border style (rounded, ascii, heavy, double, none)
	Border string `yaml:"border,omitempty" toml:"border"`

	// Decimal places for humanized numbers; nil means the library default
	Precision *int `yaml:"precision,omitempty" toml:"precision"`

	// Color mode (auto, always, never)
	Color string `yaml:"color,omitempty" toml:"color"`
}

// configPathFunc can be overridden in tests.
var configPathFunc = defaultConfigPath

// SetConfigPathFunc sets the config path function for testing.
// Returns the original function so it can be restored.
func SetConfigPathFunc(fn func() (string, error)) func() (string, error) {
	orig := configPathFunc
	configPathFunc = fn
	return orig
}

// defaultConfigPath returns $TABFMT_CONFIG or ~/.config/tabfmt/config.yaml.
func defaultConfigPath() (string, error) {
	if p := os.Getenv(EnvPath); p != "" {
		return p, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "tabfmt", "config.yaml"), nil
}

// DefaultConfigPath returns the path Load reads when none is given.
func DefaultConfigPath() (string, error) {
	return configPathFunc()
}

// Load reads the config at path, or the default path when path is empty. A
// missing default file yields an empty config; a missing explicit file is an
// error.
func Load(path string) (*Config, error) {
	if path != "" {
		return LoadFromPath(path)
	}
	p, err := DefaultConfigPath()
	if err != nil {
		return &Config{}, nil
	}
	cfg, err := LoadFromPath(p)
	if os.IsNotExist(err) {
		return &Config{}, nil
	}
	return cfg, err
}

// LoadFromPath parses a config file. Files ending in .toml are TOML,
// everything else YAML.
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		if _, err := toml.Decode(string(data), &cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
		return &cfg, nil
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return &cfg, nil
}
