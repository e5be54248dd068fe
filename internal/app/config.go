package app

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is read from the working directory when no path is given.
const DefaultConfigFile = "aoc.yaml"

// Config holds runtime options shared by all binaries.
type Config struct {
	Inputs   string      `yaml:"inputs"`   // directory holding dayNN.txt
	Manifest string      `yaml:"manifest"` // path of days.hcl
	Log      LogConfig   `yaml:"log"`
	Check    CheckConfig `yaml:"check"`
}

// LogConfig configures the zap logger.
type LogConfig struct {
	Level    string `yaml:"level"`    // debug, info, warn, error
	Encoding string `yaml:"encoding"` // console, json
}

// CheckConfig configures `aoc check`.
type CheckConfig struct {
	Timeout  time.Duration `yaml:"timeout"`
	Parallel int           `yaml:"parallel"`
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() Config {
	return Config{
		Inputs:   "inputs",
		Manifest: "days.hcl",
		Log: LogConfig{
			Level:    "info",
			Encoding: "console",
		},
		Check: CheckConfig{
			Timeout:  time.Minute,
			Parallel: 4,
		},
	}
}

// LoadConfig reads path over the defaults. A missing file is not an error
// unless it was asked for explicitly.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	explicit := path != ""
	if !explicit {
		path = DefaultConfigFile
	}

	b, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) && !explicit {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects values the binaries cannot use.
func (c Config) Validate() error {
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log.level %q", c.Log.Level)
	}
	switch c.Log.Encoding {
	case "console", "json":
	default:
		return fmt.Errorf("invalid log.encoding %q", c.Log.Encoding)
	}
	if c.Check.Parallel <= 0 {
		return fmt.Errorf("check.parallel must be positive, got %d", c.Check.Parallel)
	}
	if c.Check.Timeout <= 0 {
		return fmt.Errorf("check.timeout must be positive, got %s", c.Check.Timeout)
	}
	return nil
}

// InputPath returns the conventional input file for day.
func (c Config) InputPath(day int) string {
	return filepath.Join(c.Inputs, fmt.Sprintf("day%02d.txt", day))
}
