// Package config loads CLI settings from defaults, an optional TOML file and
// PFN_* environment variables, in that order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/russellbanks/package-family-name/internal/batch"
)

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "PFN_"

// Config holds CLI settings.
type Config struct {
	Output      string `koanf:"output"`
	Verbose     bool   `koanf:"verbose"`
	Interactive bool   `koanf:"interactive"`

	// Source is the config file that was loaded, if any.
	Source string `koanf:"-"`
}

var defaults = map[string]interface{}{
	"output":      string(batch.FormatText),
	"verbose":     false,
	"interactive": true,
}

// DefaultPaths returns the config file locations tried when no path is given.
func DefaultPaths(homeDir string) []string {
	var paths []string
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		paths = append(paths, filepath.Join(xdg, "pfn", "config.toml"))
	} else if homeDir != "" {
		paths = append(paths, filepath.Join(homeDir, ".config", "pfn", "config.toml"))
	}
	if homeDir != "" {
		paths = append(paths, filepath.Join(homeDir, ".pfn.toml"))
	}
	return paths
}

// Load reads the configuration. An explicit path must exist; otherwise the
// first existing file from DefaultPaths is used, and having none is fine.
func Load(path, homeDir string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults, "."), nil); err != nil {
		return nil, fmt.Errorf("error loading defaults: %w", err)
	}

	source := ""
	if path != "" {
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, fmt.Errorf("error loading config %s: %w", path, err)
		}
		source = path
	} else {
		for _, p := range DefaultPaths(homeDir) {
			if _, err := os.Stat(p); errors.Is(err, os.ErrNotExist) {
				continue
			}
			if err := k.Load(file.Provider(p), toml.Parser()); err != nil {
				return nil, fmt.Errorf("error loading config %s: %w", p, err)
			}
			source = p
			break
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil); err != nil {
		return nil, fmt.Errorf("error loading environment: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}
	cfg.Source = source

	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks values that cannot be expressed in the struct types.
func Validate(cfg *Config) error {
	f, err := batch.ParseOutputFormat(cfg.Output)
	if err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	cfg.Output = string(f)
	return nil
}
