// Package config loads the optional turing.yaml configuration file.
//
// The file is decoded into a generic map first and then into Config with
// mapstructure, so numbers written as strings ("500") are accepted.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// DefaultPath is looked up in the working directory when no --config flag is given.
const DefaultPath = "turing.yaml"

// ErrInvalidConfig wraps every decoding and validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds settings shared by all commands. Flags override file values.
type Config struct {
	LogLevel string `mapstructure:"log_level" validate:"omitempty,oneof=debug info warn warning error"`
	Program  string `mapstructure:"program"`
	MaxSteps int    `mapstructure:"max_steps" validate:"gte=0"`
	Color    bool   `mapstructure:"color"`
	Banner   bool   `mapstructure:"banner"`
	Port     int    `mapstructure:"port" validate:"gte=0,lte=65535"`
	// Trace is a file receiving every log record as JSON.
	Trace string `mapstructure:"trace"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		LogLevel: "info",
		Program:  "oscillator",
		MaxSteps: 10000,
		Color:    true,
		Banner:   true,
		Port:     8080,
	}
}

var validate = validator.New()

// Load reads path on top of Default. A missing file is not an error when
// optional is true.
func Load(path string, optional bool) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if optional && errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	return Parse(data, cfg)
}

// Parse decodes YAML data on top of base and validates the result.
func Parse(data []byte, base Config) (Config, error) {
	raw := map[string]any{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return base, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	cfg := base
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &cfg,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
	})
	if err != nil {
		return base, fmt.Errorf("failed to create config decoder: %w", err)
	}
	if err := decoder.Decode(raw); err != nil {
		return base, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	if err := cfg.Validate(); err != nil {
		return base, err
	}
	return cfg, nil
}

// Validate checks field constraints.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}
