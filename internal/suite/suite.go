// Package suite loads and runs pattern test suites.
//
// A suite lists patterns, whether each should compile, and inputs with their
// expected whole-input match result. Suites are YAML or TOML files:
//
//	cases:
//	  - pattern: "pens?"
//	    inputs:
//	      - {input: "pen", match: true}
//	      - {input: "pens?", match: false}
//	  - pattern: "a||b"
//	    valid: false
package suite

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Suite errors
var (
	// ErrUnknownFormat indicates a file extension with no decoder
	ErrUnknownFormat = errors.New("unknown suite format")

	// ErrInvalidSuite indicates a suite that decoded but makes no sense
	ErrInvalidSuite = errors.New("invalid suite")
)

// Format is a suite file encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// Suite is a list of cases.
type Suite struct {
	Cases []Case `yaml:"cases" toml:"cases"`
}

// Case is one pattern with its expectations.
type Case struct {
	// Name labels the case in reports. Defaults to the pattern.
	Name    string `yaml:"name" toml:"name"`
	Pattern string `yaml:"pattern" toml:"pattern"`

	// Valid is whether the pattern should compile. Defaults to true.
	Valid *bool `yaml:"valid" toml:"valid"`

	Inputs []Input `yaml:"inputs" toml:"inputs"`
}

// Input is an input with its expected match result.
type Input struct {
	Input string `yaml:"input" toml:"input"`
	Match bool   `yaml:"match" toml:"match"`
}

// ExpectValid reports whether the case expects the pattern to compile.
func (c *Case) ExpectValid() bool {
	return c.Valid == nil || *c.Valid
}

// FormatFromPath picks a format by file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, filepath.Ext(path))
	}
}

// Load reads and decodes the suite at path.
func Load(path string) (*Suite, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read suite: %w", err)
	}

	s, err := Decode(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Decode decodes a suite in the given format, applies defaults and
// validates it.
func Decode(data []byte, format Format) (*Suite, error) {
	var s Suite
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &s); err != nil {
			return nil, fmt.Errorf("failed to parse suite: %w", err)
		}
	case FormatTOML:
		if _, err := toml.Decode(string(data), &s); err != nil {
			return nil, fmt.Errorf("failed to parse suite: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	s.applyDefaults()

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

func (s *Suite) applyDefaults() {
	for i := range s.Cases {
		if s.Cases[i].Name == "" {
			s.Cases[i].Name = s.Cases[i].Pattern
		}
	}
}

// Validate rejects suites with no cases and invalid-pattern cases that
// list inputs.
func (s *Suite) Validate() error {
	if len(s.Cases) == 0 {
		return fmt.Errorf("%w: no cases", ErrInvalidSuite)
	}
	for i := range s.Cases {
		c := &s.Cases[i]
		if !c.ExpectValid() && len(c.Inputs) > 0 {
			return fmt.Errorf("%w: case %d (%s): invalid pattern cannot have inputs", ErrInvalidSuite, i, c.Name)
		}
	}
	return nil
}
