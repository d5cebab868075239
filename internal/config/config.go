// Package config provides configuration for the chess rules core.
package config

import (
	"fmt"
	"io"
	"os"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Verbosity levels understood by the game facade.
const (
	Silent     = 0 // nothing
	Results    = 1 // game results
	Commentary = 2 // running commentary of every move
)

// Config holds all configuration for games built on the rules core.
type Config struct {
	// Rules holds board geometry and draw limits
	Rules RuleConfig

	Verbosity int // 0=nothing, 1=game results, 2=running commentary

	// LogFile receives diagnostic output
	LogFile io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Rules:     *NewRuleConfig(),
		Verbosity: Results,
		LogFile:   os.Stderr,
	}
}

// SetLogFile sets the diagnostic output stream.
func (c *Config) SetLogFile(w io.Writer) {
	c.LogFile = w
}

// Validate checks the whole configuration.
func (c *Config) Validate() error {
	if err := c.Rules.Validate(); err != nil {
		return err
	}
	if c.Verbosity < Silent || c.Verbosity > Commentary {
		return fmt.Errorf("verbosity %d: %w", c.Verbosity, errors.ErrInvalidConfig)
	}
	return nil
}

// Logf writes a diagnostic line when the configured verbosity is at least level.
func (c *Config) Logf(level int, format string, args ...interface{}) {
	if c.LogFile == nil || c.Verbosity < level {
		return
	}
	fmt.Fprintf(c.LogFile, format, args...)
}
