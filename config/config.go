// Package config loads the diagnostics configuration of observables from
// files and the environment.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// ErrUnsupportedFormat is returned by Load for file extensions other than
// .json, .yaml and .yml.
var ErrUnsupportedFormat = errors.New("unsupported config format")

const defaultObserver = "noop"

// Config names an observable in diagnostics and selects the observer that
// receives them. Observer is resolved through observability.GetObserver.
type Config struct {
	Name     string `json:"name,omitempty" yaml:"name,omitempty" env:"OBSERVABLE_NAME"`
	Observer string `json:"observer,omitempty" yaml:"observer,omitempty" env:"OBSERVABLE_OBSERVER"`
}

// DefaultConfig returns a Config that discards diagnostics.
func DefaultConfig() Config {
	return Config{Observer: defaultObserver}
}

// Merge applies non-zero values from source into c.
func (c *Config) Merge(source *Config) {
	if source.Name != "" {
		c.Name = source.Name
	}
	if source.Observer != "" {
		c.Observer = source.Observer
	}
}

// Load reads a JSON or YAML config file, chosen by extension, and merges it
// with defaults.
func Load(filename string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var loaded Config
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".json", "":
		err = json.Unmarshal(data, &loaded)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &loaded)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.Merge(&loaded)
	return &cfg, nil
}

// FromEnv merges OBSERVABLE_NAME and OBSERVABLE_OBSERVER over c.
func (c *Config) FromEnv() error {
	var loaded Config
	if err := env.Parse(&loaded); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	c.Merge(&loaded)
	return nil
}
