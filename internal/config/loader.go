package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Default returns the configuration used when no file is present.
func Default() *Config {
	c := &Config{}
	applyDefaults(c)

	return c
}

// LoadFile loads and parses a YAML configuration file from the given path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	return Parse(data)
}

// LoadOptional loads path, falling back to Default when it does not exist.
func LoadOptional(path string) (*Config, error) {
	c, err := LoadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}

	return c, err
}

// Parse parses YAML data into a Config.
func Parse(data []byte) (*Config, error) {
	var c Config

	err := yaml.Unmarshal(data, &c)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	applyDefaults(&c)

	if err := Validate(&c); err != nil {
		return nil, err
	}

	return &c, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(c *Config) {
	if c.Version == "" {
		c.Version = DefaultVersion
	}

	if c.Output.Suffix == "" {
		c.Output.Suffix = DefaultSuffix
	}

	if c.RuntimeImport == "" {
		c.RuntimeImport = DefaultRuntimeImport
	}

	if c.BridgeImport == "" {
		c.BridgeImport = DefaultBridgeImport
	}
}

// Validate checks values that defaults cannot repair.
func Validate(c *Config) error {
	var errs []error

	if c.Version != DefaultVersion {
		errs = append(errs, fmt.Errorf("unsupported config version %q", c.Version))
	}

	if !strings.HasSuffix(c.Output.Suffix, ".go") {
		errs = append(errs, fmt.Errorf("output suffix %q must end in .go", c.Output.Suffix))
	}

	if strings.HasSuffix(c.Output.Suffix, "_test.go") {
		errs = append(errs, fmt.Errorf("output suffix %q would produce a test file", c.Output.Suffix))
	}

	for _, m := range c.Models {
		if strings.ContainsAny(m, ". /") {
			errs = append(errs, fmt.Errorf("model %q must be a bare type name", m))
		}
	}

	return errors.Join(errs...)
}

// Marshal serializes a Config to YAML.
func Marshal(c *Config) ([]byte, error) {
	return yaml.Marshal(c)
}

// WriteFile writes a Config to the given path.
func WriteFile(c *Config, path string) error {
	data, err := Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file %s: %w", path, err)
	}

	return nil
}
