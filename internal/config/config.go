// Package config provides configuration loading for pagesim.
// Values come from built-in defaults, an optional YAML file and PAGESIM_* environment variables, in that order.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	util "github.com/bietkhonhungvandi212/pagesim/internal/utils"
	"gopkg.in/yaml.v3"
)

// DemoReference is the reference string loaded by `pagesim demo`.
const DemoReference = "Chrome Gmail YouTube Chrome Gmail Docs Chrome Gmail YouTube"

// Config contains all pagesim settings.
type Config struct {
	Simulation SimulationConfig `json:"simulation" yaml:"simulation"`
	Output     OutputConfig     `json:"output" yaml:"output"`
	Logging    LoggingConfig    `json:"logging" yaml:"logging"`
}

// SimulationConfig holds the defaults used when a flag is not given.
type SimulationConfig struct {
	// Frames is the capacity used by `run` and `demo`.
	Frames int `json:"frames" yaml:"frames"`

	// MaxFrames is the upper bound of the benchmark sweep.
	MaxFrames int `json:"max_frames" yaml:"max_frames"`

	// Workers bounds how many capacities the sweep simulates at once. 1 runs sequentially.
	Workers int `json:"workers" yaml:"workers"`

	DemoReference string `json:"demo_reference" yaml:"demo_reference"`
}

type OutputConfig struct {
	// Color highlights fault rows and benchmark winners.
	Color bool `json:"color" yaml:"color"`
	JSON  bool `json:"json" yaml:"json"`
}

type LoggingConfig struct {
	// Level is one of "debug", "info" (default), "warn" or "error".
	Level string `json:"level" yaml:"level"`
}

// Default returns a Config with the same defaults the interactive simulator starts with.
func Default() *Config {
	return &Config{
		Simulation: SimulationConfig{
			Frames:        3,
			MaxFrames:     10,
			Workers:       1,
			DemoReference: DemoReference,
		},
		Output: OutputConfig{
			Color: true,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load resolves the configuration. An empty path falls back to $PAGESIM_CONFIG;
// with neither set only defaults and environment overrides apply.
func Load(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv("PAGESIM_CONFIG")
	}

	config := Default()
	if path != "" {
		fileConfig, err := LoadFromFile(path)
		if err != nil {
			return nil, fmt.Errorf("loading config file: %w", err)
		}
		config = fileConfig
	}

	applyEnvOverrides(config)

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// LoadFromFile loads configuration from a specific YAML file on top of the defaults.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	config := Default()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}
	return config, nil
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	var errs []error
	if c.Simulation.Frames <= 0 {
		errs = append(errs, fmt.Errorf("simulation.frames=%d: %w", c.Simulation.Frames, util.ErrInvalidFrames))
	}
	if c.Simulation.MaxFrames <= 0 {
		errs = append(errs, fmt.Errorf("simulation.max_frames=%d: %w", c.Simulation.MaxFrames, util.ErrInvalidMaxFrames))
	}
	if c.Simulation.Workers <= 0 {
		errs = append(errs, fmt.Errorf("simulation.workers=%d: %w", c.Simulation.Workers, util.ErrInvalidWorkers))
	}

	validLevels := map[string]bool{"": true, "debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[c.Logging.Level] {
		errs = append(errs, fmt.Errorf("logging.level=%q (valid: debug, info, warn, error): %w", c.Logging.Level, util.ErrInvalidLogLevel))
	}
	return errors.Join(errs...)
}

// Marshal renders the configuration as YAML.
func (c *Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

// applyEnvOverrides applies environment variable overrides to the config.
// Unparseable numbers are ignored.
func applyEnvOverrides(config *Config) {
	if v := os.Getenv("PAGESIM_FRAMES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			config.Simulation.Frames = n
		}
	}
	if v := os.Getenv("PAGESIM_MAX_FRAMES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			config.Simulation.MaxFrames = n
		}
	}
	if v := os.Getenv("PAGESIM_WORKERS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			config.Simulation.Workers = n
		}
	}
	if v := os.Getenv("PAGESIM_NO_COLOR"); v == "true" || v == "1" {
		config.Output.Color = false
	}
	if v := os.Getenv("PAGESIM_LOG_LEVEL"); v != "" {
		config.Logging.Level = v
	}
}
