// Package config loads the gridsearch command configuration from flags,
// falling back to GRIDSEARCH_* environment variables.
package config

import (
	"errors"
	"fmt"

	"github.com/namsral/flag"
	"github.com/rs/zerolog"
)

// ErrNoProblems is returned by Load when no problem file was named.
var ErrNoProblems = errors.New("config: no problem files given")

type Config struct {
	LogLevel string
	// Level is LogLevel parsed by Load.
	Level   zerolog.Level
	Workers int
	Render  bool
	// Problems lists the YAML problem files named after the flags.
	Problems []string
}

// Load parses args. Every flag may also be set through the environment,
// e.g. GRIDSEARCH_LOG_LEVEL=debug.
func (c *Config) Load(args []string) error {
	fs := flag.NewFlagSetWithEnvPrefix("gridsearch", "GRIDSEARCH", flag.ContinueOnError)
	fs.StringVar(&c.LogLevel, "log-level", "info", "zerolog level: trace, debug, info, warn, error, disabled")
	fs.IntVar(&c.Workers, "workers", 4, "problems solved concurrently, and probes per parallel threshold round")
	fs.BoolVar(&c.Render, "render", false, "log a rendering of each grid and its answer route")
	if err := fs.Parse(args); err != nil {
		return err
	}
	c.Problems = fs.Args()
	if c.Workers < 1 {
		return fmt.Errorf("config: workers must be at least 1, got %d", c.Workers)
	}
	lvl, err := parseLevel(c.LogLevel)
	if err != nil {
		return err
	}
	c.Level = lvl
	if len(c.Problems) == 0 {
		return ErrNoProblems
	}
	return nil
}

func parseLevel(s string) (zerolog.Level, error) {
	lvl, err := zerolog.ParseLevel(s)
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("config: log level %q: %w", s, err)
	}
	return lvl, nil
}
