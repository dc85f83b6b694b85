// Package config loads the ordantic.yaml generator configuration.
//
// Example:
//
//	version: "1"
//	packages: [./models]
//	models: [Legacy]        # selected even without the directive
//	output:
//	  suffix: _ordantic.go
//	register: true
//
// Command-line flags override file values; see cmd/ordantic.
package config
