// Package prefilter rejects inputs that cannot match before the NFA runs.
//
// A prefilter is built from a pattern's required literals: every accepted
// input contains at least one of them. An input containing none of them is
// rejected without simulating the automaton, which turns the common no-match
// case into a single substring scan.
//
// Example usage:
//
//	info := literal.New(literal.DefaultConfig()).Analyze(postfix)
//	pf, err := prefilter.NewBuilder(info.Required).Build()
//	if err == nil && pf != nil && !pf.IsMatch(input) {
//	    return false // no required literal, no match
//	}
package prefilter

import (
	"bytes"

	"github.com/coregx/minire/literal"
)

// Prefilter finds occurrences of a pattern's required literals.
type Prefilter interface {
	// IsMatch reports whether any literal occurs in haystack.
	IsMatch(haystack []byte) bool

	// Literals returns the number of literals searched for.
	Literals() int

	// Kind names the implementation, for diagnostics.
	Kind() string
}

// Builder selects a prefilter implementation for a required-literal set.
//
// Selection:
//  1. No literals, or literals shorter than MinLen → nil (no prefilter)
//  2. One literal → Memmem
//  3. Several literals → AhoCorasick
type Builder struct {
	required *literal.Seq
	minLen   int
}

// NewBuilder creates a builder for the given required literals.
func NewBuilder(required *literal.Seq) *Builder {
	return &Builder{required: required, minLen: 1}
}

// WithMinLen sets the shortest literal worth searching for. Sets
// containing a shorter literal get no prefilter.
func (b *Builder) WithMinLen(n int) *Builder {
	b.minLen = n
	return b
}

// Build returns the prefilter, or nil when the literals are not useful.
func (b *Builder) Build() (Prefilter, error) {
	if b.required.IsEmpty() || b.required.MinLen() < b.minLen || b.required.MinLen() == 0 {
		return nil, nil
	}
	if b.required.Len() == 1 {
		return newMemmem(b.required.Get(0).Bytes), nil
	}
	return newAhoCorasick(b.required)
}

// Memmem searches for a single literal.
type Memmem struct {
	needle []byte
}

func newMemmem(needle []byte) *Memmem {
	n := make([]byte, len(needle))
	copy(n, needle)
	return &Memmem{needle: n}
}

// IsMatch implements Prefilter.
func (p *Memmem) IsMatch(haystack []byte) bool {
	return bytes.Contains(haystack, p.needle)
}

// Literals implements Prefilter.
func (p *Memmem) Literals() int { return 1 }

// Kind implements Prefilter.
func (p *Memmem) Kind() string { return "memmem" }
