// Package config handles settings shared by the command-line tools.
package config

import (
	"os"

	"github.com/pkg/errors"
	"github.com/unixpickle/model3d/model3d"
	"github.com/unixpickle/shape-euler/euler"
	"gopkg.in/yaml.v3"
)

// Config holds all tool settings.
type Config struct {
	// Integral is either "surface" or "volume".
	Integral string `yaml:"integral"`

	// Concurrency is the number of Goroutines used to compute moments,
	// or 0 to use GOMAXPROCS.
	Concurrency int `yaml:"concurrency"`

	Plane   PlaneConfig   `yaml:"plane"`
	Logging LoggingConfig `yaml:"logging"`
}

// PlaneConfig describes a cutting plane.
type PlaneConfig struct {
	Normal [3]float64 `yaml:"normal"`
	Offset float64    `yaml:"offset"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// Default returns a Config with the default settings.
func Default() *Config {
	return &Config{
		Integral: "volume",
		Plane: PlaneConfig{
			Normal: [3]float64{0, 0, 1},
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load reads a YAML file on top of the default settings.
//
// If path is empty, the defaults are returned.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "load config")
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrap(err, "load config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "load config")
	}
	return cfg, nil
}

// Validate checks that the settings are usable.
func (c *Config) Validate() error {
	if _, err := c.IntegralKind(); err != nil {
		return err
	}
	if c.Concurrency < 0 {
		return errors.Errorf("negative concurrency: %d", c.Concurrency)
	}
	if c.Plane.Normal == [3]float64{} {
		return errors.New("plane normal must be non-zero")
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return errors.Errorf("unknown log level: %q", c.Logging.Level)
	}
	return nil
}

// IntegralKind gets the configured integral.
func (c *Config) IntegralKind() (euler.IntegralKind, error) {
	return euler.ParseIntegralKind(c.Integral)
}

// CuttingPlane gets the configured plane.
func (c *Config) CuttingPlane() euler.Plane {
	n := c.Plane.Normal
	return euler.Plane{
		Normal: model3d.XYZ(n[0], n[1], n[2]),
		Offset: c.Plane.Offset,
	}
}
