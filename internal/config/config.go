// Package config loads qrtermd settings from TOML config files.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Config holds the qrtermd daemon settings.
type Config struct {
	Listen       string `koanf:"listen"`         // SSH listen address
	HostKey      string `koanf:"host_key"`       // path to the host key, generated if missing
	Level        string `koanf:"level"`          // error-correction level: low, medium, high, highest
	MaxDataBytes int    `koanf:"max_data_bytes"` // reject session data larger than this
}

// Default returns the built-in settings used when no config file is present.
func Default() *Config {
	return &Config{
		Listen:       ":2222",
		HostKey:      "host_key",
		Level:        "medium",
		MaxDataBytes: 2048,
	}
}

// Load reads config files in order of priority (last wins) and returns the
// merged settings. Missing files are skipped; a file that exists but does not
// parse is an error.
func Load() (*Config, error) {
	return loadFrom(configPaths())
}

func loadFrom(paths []string) (*Config, error) {
	k := koanf.New(".")

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, fmt.Errorf("load %s: %w", path, err)
			}
		}
	}

	cfg := Default()
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func configPaths() []string {
	paths := []string{}

	// 1. ~/.config/qrterm/config.toml
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "qrterm", "config.toml"))
	}

	// 2. ./config.toml (pwd, highest priority)
	paths = append(paths, "config.toml")

	return paths
}
