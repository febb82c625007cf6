// Package meta implements the engine that picks how a compiled pattern is
// matched.
//
// Every pattern is compiled to a Thompson NFA. On top of it the engine may
// use one of two shortcuts found by literal analysis:
//   - UseLiteral: the pattern denotes a small finite set of strings, so a
//     match is a set lookup
//   - UsePrefilter: every accepted input contains one of a few required
//     literals, so inputs without them are rejected before NFA simulation
//
// Shortcuts never change results: the answer is always the NFA's answer.
package meta

import "errors"

// ErrInvalidConfig is wrapped by every *ConfigError.
var ErrInvalidConfig = errors.New("invalid config")

// Config controls meta-engine behavior.
//
// Example:
//
//	config := meta.DefaultConfig()
//	config.EnablePrefilter = false // always run the NFA
//	engine, err := meta.CompileWithConfig("a.*b", config)
type Config struct {
	// EnableLiteral enables the exact-set shortcut for finite patterns.
	// Default: true
	EnableLiteral bool

	// EnablePrefilter enables required-literal prefiltering.
	// Default: true
	EnablePrefilter bool

	// MaxLiterals caps the exact and required sets extracted from a pattern.
	// Default: 64
	MaxLiterals int

	// MinLiteralLen is the shortest required literal worth prefiltering on.
	// Default: 1
	MinLiteralLen int
}

// DefaultConfig returns a configuration with all shortcuts enabled.
func DefaultConfig() Config {
	return Config{
		EnableLiteral:   true,
		EnablePrefilter: true,
		MaxLiterals:     64,
		MinLiteralLen:   1,
	}
}

// Validate checks if the configuration is valid.
//
// Valid ranges:
//   - MaxLiterals: 1 to 1,000
//   - MinLiteralLen: 1 to 64
func (c Config) Validate() error {
	if c.EnableLiteral || c.EnablePrefilter {
		if c.MaxLiterals < 1 || c.MaxLiterals > 1_000 {
			return &ConfigError{
				Field:   "MaxLiterals",
				Message: "must be between 1 and 1,000",
			}
		}
	}
	if c.EnablePrefilter {
		if c.MinLiteralLen < 1 || c.MinLiteralLen > 64 {
			return &ConfigError{
				Field:   "MinLiteralLen",
				Message: "must be between 1 and 64",
			}
		}
	}
	return nil
}

// ConfigError represents an invalid configuration parameter.
type ConfigError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	return "minire: invalid config: " + e.Field + ": " + e.Message
}

// Unwrap returns ErrInvalidConfig.
func (e *ConfigError) Unwrap() error {
	return ErrInvalidConfig
}
