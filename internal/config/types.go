package config

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"ordantic/internal/common"
)

// DefaultFilename is the configuration file looked up in the working directory.
const DefaultFilename = "ordantic.yaml"

// Defaults.
const (
	DefaultVersion       = "1"
	DefaultSuffix        = "_ordantic.go"
	DefaultRuntimeImport = "ordantic"
	DefaultBridgeImport  = "ordantic/bridge"
)

// Config is the root of ordantic.yaml.
type Config struct {
	Version string `yaml:"version"`
	// Packages are go/packages patterns to scan.
	Packages StringOrArray `yaml:"packages,omitempty"`
	// Models are type names processed even without the directive.
	Models StringOrArray `yaml:"models,omitempty"`
	Output Output        `yaml:"output"`
	// RuntimeImport is the import path of the runtime support package.
	RuntimeImport string `yaml:"runtime_import,omitempty"`
	// BridgeImport is the import path of the embedding bridge.
	BridgeImport string `yaml:"bridge_import,omitempty"`
	// Register emits bridge registration for every model.
	Register *bool `yaml:"register,omitempty"`
}

// Output controls where generated files go.
type Output struct {
	// Suffix is appended to the package name to form the file name.
	Suffix string `yaml:"suffix,omitempty"`
	// Dir overrides the output directory; empty writes next to the package.
	Dir string `yaml:"dir,omitempty"`
}

// RegisterModels reports whether bridge registration is emitted.
func (c *Config) RegisterModels() bool {
	return c.Register == nil || *c.Register
}

// StringOrArray accepts either a single string or a list of strings.
type StringOrArray []string

// UnmarshalYAML implements custom YAML unmarshaling for StringOrArray.
func (s *StringOrArray) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var str string

		err := node.Decode(&str)
		if err != nil {
			return err
		}

		if str != "" {
			*s = StringOrArray{str}
		} else {
			*s = StringOrArray{}
		}

		return nil

	case yaml.SequenceNode:
		var arr []string

		err := node.Decode(&arr)
		if err != nil {
			return err
		}

		*s = arr

		return nil

	default:
		return fmt.Errorf("expected string or array, got %v", node.Kind)
	}
}

// MarshalYAML outputs a single string if length is 1, otherwise an array.
func (s StringOrArray) MarshalYAML() (any, error) {
	if len(s) == 1 {
		return s[0], nil
	}

	return []string(s), nil
}

// First returns the first element or empty string if empty.
func (s StringOrArray) First() string {
	if v, ok := common.First(s); ok {
		return v
	}

	return ""
}

// IsEmpty returns true if the array is empty.
func (s StringOrArray) IsEmpty() bool {
	return common.IsEmpty(s)
}
