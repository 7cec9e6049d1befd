package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the main configuration structure
type Config struct {
	Mutate  MutateConfig  `yaml:"mutate"`
	Fuzzing FuzzingConfig `yaml:"fuzzing"`
	Log     LogConfig     `yaml:"log"`
}

// MutateConfig holds the mutation engine settings
type MutateConfig struct {
	MaxFileSize     int    `yaml:"max_file_size"`     // Hard ceiling on buffer size
	MutationsPerRun int    `yaml:"mutations_per_run"` // Max stacked mutations per input
	OnlyPrintable   bool   `yaml:"only_printable"`    // Constrain written bytes to printable ASCII
	Dictionary      string `yaml:"dictionary"`        // Path to an AFL-style token file, optional
}

// FuzzingConfig holds the run-loop settings
type FuzzingConfig struct {
	Seed       int64  `yaml:"seed"`       // Random seed, 0 means use current time
	Iterations int    `yaml:"iterations"` // Number of inputs to produce, 0 means run forever
	InputDir   string `yaml:"input"`      // Corpus directory
	OutputDir  string `yaml:"output"`     // Where interesting inputs are written
}

// LogConfig holds logging configuration
type LogConfig struct {
	Directory string `yaml:"directory"`
	Level     string `yaml:"level"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Mutate: MutateConfig{
			MaxFileSize:     1024 * 1024, // 1MB
			MutationsPerRun: 6,
			OnlyPrintable:   false,
		},
		Fuzzing: FuzzingConfig{
			Seed:       0,
			Iterations: 0,
		},
		Log: LogConfig{
			Directory: "logs",
			Level:     "info",
		},
	}
}

// LoadConfig loads configuration from the specified YAML file, applying
// defaults for anything the file leaves unset.
func LoadConfig(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Mutate.MaxFileSize < 1 {
		return fmt.Errorf("mutate.max_file_size must be at least 1, got %d", c.Mutate.MaxFileSize)
	}

	if c.Mutate.MutationsPerRun < 0 {
		return fmt.Errorf("mutate.mutations_per_run must not be negative, got %d", c.Mutate.MutationsPerRun)
	}

	if c.Fuzzing.Iterations < 0 {
		return fmt.Errorf("fuzzing.iterations must not be negative, got %d", c.Fuzzing.Iterations)
	}

	return nil
}
