// Package config loads default run parameters (offsets, SA schedule,
// iteration counts) from an optional YAML file, so cmd/latticewire does
// not need a flag for every knob every sequencer/optimizer/driver
// exposes. CLI flags always override a loaded file's values.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config mirrors the tunable knobs of sequencer.Options, optimizer.Options,
// driver.Options, and IRRAOptions that a user might want to fix once in
// a file rather than repeat as flags every invocation.
type Config struct {
	MaxOffset        int     `yaml:"max_offset"`
	AllowShortCircuit bool   `yaml:"allow_short_circuit"`
	Seed             int64   `yaml:"seed"`
	OptimizerK       int     `yaml:"optimizer_k"`
	OptimizerRounds  int     `yaml:"optimizer_rounds"`
	StartTemperature float64 `yaml:"start_temperature"`
	Alpha            float64 `yaml:"alpha"`
	DriverIterations int     `yaml:"driver_iterations"`
}

// Default returns the module-wide default configuration, matching the
// defaults each package's own DefaultOptions already declares.
func Default() Config {
	return Config{
		MaxOffset:        20,
		AllowShortCircuit: false,
		Seed:             1,
		OptimizerK:       2,
		OptimizerRounds:  50,
		StartTemperature: 5,
		Alpha:            0.99,
		DriverIterations: 10,
	}
}

// Load reads a YAML config file at path, overlaying it onto Default().
// A missing file is not an error: Default() is returned unchanged, since
// a config file is an optional convenience, not a required input.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}
