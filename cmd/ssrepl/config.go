package main

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the settings of ssrepl, read from a YAML file.
type Config struct {
	// Prompt is the prompt for interactive input.
	Prompt string `yaml:"prompt,omitempty"`

	// Trace is the trace level [Debug|Info|Error].
	Trace string `yaml:"trace,omitempty"`

	// Autoclear tells whether the stack is cleared after each input.
	// Defaults to true.
	Autoclear *bool `yaml:"autoclear,omitempty"`

	// Prelude lists files to be evaluated before the first input. Paths
	// are relative to the directory of the configuration file.
	Prelude []string `yaml:"prelude,omitempty"`
}

const defaultPrompt = "ss> "

// DefaultConfig returns the settings used without a configuration file.
func DefaultConfig() *Config {
	on := true
	return &Config{
		Prompt:    defaultPrompt,
		Trace:     "Info",
		Autoclear: &on,
	}
}

// LoadConfig reads and parses a YAML configuration file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return ParseConfig(data, path)
}

// ParseConfig parses configuration content from bytes. Settings missing from
// data are taken from DefaultConfig.
func ParseConfig(data []byte, path string) (*Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if cfg.Prompt == "" {
		cfg.Prompt = defaultPrompt
	}
	if cfg.Autoclear == nil {
		on := true
		cfg.Autoclear = &on
	}
	for i, p := range cfg.Prelude {
		if p == "" {
			return nil, fmt.Errorf("%s: prelude[%d]: empty path", path, i)
		}
		if !filepath.IsAbs(p) {
			cfg.Prelude[i] = filepath.Join(filepath.Dir(path), p)
		}
	}
	return cfg, nil
}
