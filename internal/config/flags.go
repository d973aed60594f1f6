package config

import (
	"flag"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Flags holds command-line overrides for a Config.
//
// Empty or negative values mean the setting was not given.
type Flags struct {
	ConfigPath  string
	Integral    string
	Concurrency int
	LogLevel    string
	LogFile     string
	Normal      string
	Offset      string
}

// AddFlags registers the common flags with fs.
//
// If plane is true, flags for the cutting plane are registered as well.
func (f *Flags) AddFlags(fs *flag.FlagSet, plane bool) {
	fs.StringVar(&f.ConfigPath, "config", "", "path to a YAML config file")
	fs.StringVar(&f.Integral, "integral", "", "integral kind: surface or volume")
	fs.IntVar(&f.Concurrency, "concurrency", -1, "number of Goroutines (0 for GOMAXPROCS)")
	fs.StringVar(&f.LogLevel, "log-level", "", "log level: debug, info, warn, or error")
	fs.StringVar(&f.LogFile, "log-file", "", "optional path of a rotated log file")
	if plane {
		fs.StringVar(&f.Normal, "normal", "", "cutting plane normal as x,y,z")
		fs.StringVar(&f.Offset, "offset", "", "cutting plane offset along the normal")
	}
}

// Load reads the config file (if any) and applies the flag overrides.
func (f *Flags) Load() (*Config, error) {
	cfg, err := Load(f.ConfigPath)
	if err != nil {
		return nil, err
	}
	if f.Integral != "" {
		cfg.Integral = f.Integral
	}
	if f.Concurrency >= 0 {
		cfg.Concurrency = f.Concurrency
	}
	if f.LogLevel != "" {
		cfg.Logging.Level = f.LogLevel
	}
	if f.LogFile != "" {
		cfg.Logging.File = f.LogFile
	}
	if f.Normal != "" {
		parts := strings.Split(f.Normal, ",")
		if len(parts) != 3 {
			return nil, errors.Errorf("normal should have 3 components: %s", f.Normal)
		}
		for i, p := range parts {
			cfg.Plane.Normal[i], err = strconv.ParseFloat(strings.TrimSpace(p), 64)
			if err != nil {
				return nil, errors.Wrap(err, "parse normal")
			}
		}
	}
	if f.Offset != "" {
		cfg.Plane.Offset, err = strconv.ParseFloat(f.Offset, 64)
		if err != nil {
			return nil, errors.Wrap(err, "parse offset")
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
