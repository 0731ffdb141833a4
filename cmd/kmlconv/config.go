package main

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds defaults read from the --config file. Command line flags
// take precedence.
type Config struct {
	Indent        *int   `yaml:"indent,omitempty"`
	Minify        bool   `yaml:"minify,omitempty"`
	Declaration   *bool  `yaml:"declaration,omitempty"`
	Fast          bool   `yaml:"fast,omitempty"`
	InspectFormat string `yaml:"inspect_format,omitempty"`
}

// LoadConfig reads and parses the YAML configuration file at path.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var c Config
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, err
	}

	return &c, nil
}
