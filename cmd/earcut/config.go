package main

import (
	"log/slog"
	"os"

	"github.com/osuushi/earcut/advanced"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Defaults for the command line flags. Flags given explicitly win.
type config struct {
	HashThreshold int     `yaml:"hash_threshold"`
	StrictHoles   bool    `yaml:"strict_holes"`
	Scale         float64 `yaml:"scale"`
	LogLevel      string  `yaml:"log_level"`
}

func defaultConfig() config {
	return config{
		HashThreshold: advanced.DefaultHashThreshold,
		LogLevel:      "warn",
	}
}

func loadConfig(path string) (config, error) {
	cfg := defaultConfig()
	f, err := os.Open(path)
	if err != nil {
		return cfg, errors.Wrap(err, "opening config")
	}
	defer f.Close()

	decoder := yaml.NewDecoder(f)
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		return cfg, errors.Wrapf(err, "parsing config %q", path)
	}
	return cfg, nil
}

// Apply the flags the user set. Zero values mean the flag was not given.
func (c *config) override() {
	if *hashThreshold != 0 {
		c.HashThreshold = *hashThreshold
	}
	if *strictHoles {
		c.StrictHoles = true
	}
	if *scale != 0 {
		c.Scale = *scale
	}
	if *logLevel != "" {
		c.LogLevel = *logLevel
	}
}

func (c *config) level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return level, errors.Wrapf(err, "invalid log level %q", c.LogLevel)
	}
	return level, nil
}
