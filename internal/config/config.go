// Package config loads CLI defaults for the forthic command from a YAML
// file, the way the rest of the ecosystem pack configures its tools.
package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds CLI-wide defaults. Any field left unset in the YAML file
// keeps its zero value, which the CLI layer treats as "use the built-in
// default" (UTC timezone, no remote transport).
type Config struct {
	Timezone string `yaml:"timezone"`

	// RemoteAddress is a gRPC "host:port" target. When set, newInterpreter
	// dials it and registers a Remote word named RemoteWordName that
	// delegates execution to RemoteMethod on that connection.
	RemoteAddress  string `yaml:"remote_address"`
	RemoteMethod   string `yaml:"remote_method"`
	RemoteWordName string `yaml:"remote_word_name"`

	Verbose bool `yaml:"verbose"`
}

// Default returns a Config with the interpreter's built-in defaults.
func Default() *Config {
	return &Config{
		Timezone:       "UTC",
		RemoteWordName: "REMOTE",
	}
}

// Load reads and parses a YAML config file at path. A missing file is not
// an error: callers get Default() back so --config is optional.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
