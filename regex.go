// Package minire provides a small regular expression engine built on
// Thompson's construction.
//
// The pattern language has letters, the wildcard '.', grouping with
// parentheses, alternation '|', and the postfix operators '*', '+' and '?'.
// A backslash makes the next character a literal letter. Concatenation is
// implicit. Matching is whole-input: a pattern matches an input only if it
// accepts all of it, start to end.
//
// Basic usage:
//
//	re, err := minire.Compile(`.+@.+\.com?`)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(re.MatchString("hi@gmail.com")) // true
//	fmt.Println(re.MatchString("hi@.com"))      // false
//
// Invalid patterns never panic in Compile; the returned error wraps
// syntax.ErrInvalidPattern and carries a *syntax.Error describing the failure.
//
// Performance characteristics:
//   - Matching is O(len(input) * states) time and O(states) memory
//   - Patterns denoting a small finite language are matched by set lookup
//   - Patterns with required literals reject most non-matching inputs with a
//     substring search before the NFA runs
package minire

import (
	"github.com/coregx/minire/meta"
)

// Config controls how patterns are compiled. See meta.Config.
type Config = meta.Config

// Regex represents a compiled pattern.
//
// A Regex is safe to use concurrently from multiple goroutines.
//
// Example:
//
//	re := minire.MustCompile(`pens?`)
//	if re.MatchString("pens") {
//	    println("matched!")
//	}
type Regex struct {
	engine  *meta.Engine
	pattern string
}

// Compile compiles a pattern.
//
// Returns an error if the pattern is invalid. The error unwraps to a
// *syntax.Error and to syntax.ErrInvalidPattern.
//
// Example:
//
//	re, err := minire.Compile(`a(bb)*|b`)
//	if err != nil {
//	    log.Fatal(err)
//	}
func Compile(pattern string) (*Regex, error) {
	return CompileWithConfig(pattern, meta.DefaultConfig())
}

// MustCompile compiles a pattern and panics if it fails.
//
// This is useful for patterns known to be valid at compile time.
//
// Example:
//
//	var emailRegex = minire.MustCompile(`.+@.+\.com`)
func MustCompile(pattern string) *Regex {
	re, err := Compile(pattern)
	if err != nil {
		panic("minire: Compile(`" + pattern + "`): " + err.Error())
	}
	return re
}

// CompileWithConfig compiles a pattern with custom configuration.
//
// Example:
//
//	config := minire.DefaultConfig()
//	config.EnablePrefilter = false // always simulate the NFA
//	re, err := minire.CompileWithConfig(".+@.+", config)
func CompileWithConfig(pattern string, config Config) (*Regex, error) {
	engine, err := meta.CompileWithConfig(pattern, config)
	if err != nil {
		return nil, err
	}

	return &Regex{
		engine:  engine,
		pattern: pattern,
	}, nil
}

// DefaultConfig returns the default configuration for compilation.
//
// Users can customize this and pass to CompileWithConfig.
func DefaultConfig() Config {
	return meta.DefaultConfig()
}

// MatchString compiles pattern and reports whether it matches s.
// More complicated queries need to use Compile and the Regex methods.
func MatchString(pattern, s string) (bool, error) {
	re, err := Compile(pattern)
	if err != nil {
		return false, err
	}
	return re.MatchString(s), nil
}

// Match reports whether the pattern matches all of b.
//
// Example:
//
//	re := minire.MustCompile(`a+b`)
//	re.Match([]byte("aaab")) // true
//	re.Match([]byte("aaabc")) // false
func (r *Regex) Match(b []byte) bool {
	return r.engine.IsMatch(b)
}

// MatchString reports whether the pattern matches all of s.
func (r *Regex) MatchString(s string) bool {
	return r.engine.IsMatchString(s)
}

// String returns the source text used to compile the pattern.
func (r *Regex) String() string {
	return r.pattern
}

// Strategy returns the matching strategy chosen at compile time.
func (r *Regex) Strategy() meta.Strategy {
	return r.engine.Strategy()
}

// Engine returns the underlying meta engine, for introspection.
func (r *Regex) Engine() *meta.Engine {
	return r.engine
}

// Stats returns execution statistics.
func (r *Regex) Stats() meta.Stats {
	return r.engine.Stats()
}

// ResetStats resets execution statistics to zero.
func (r *Regex) ResetStats() {
	r.engine.ResetStats()
}
