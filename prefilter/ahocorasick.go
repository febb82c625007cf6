package prefilter

import (
	"fmt"

	"github.com/coregx/ahocorasick"

	"github.com/coregx/minire/literal"
)

// AhoCorasick searches for any of several literals in one pass.
type AhoCorasick struct {
	automaton *ahocorasick.Automaton
	count     int
}

func newAhoCorasick(lits *literal.Seq) (*AhoCorasick, error) {
	builder := ahocorasick.NewBuilder()
	for i := 0; i < lits.Len(); i++ {
		builder.AddPattern(lits.Get(i).Bytes)
	}
	auto, err := builder.Build()
	if err != nil {
		return nil, fmt.Errorf("prefilter: build aho-corasick over %d literals: %w", lits.Len(), err)
	}
	return &AhoCorasick{automaton: auto, count: lits.Len()}, nil
}

// IsMatch implements Prefilter.
func (p *AhoCorasick) IsMatch(haystack []byte) bool {
	return p.automaton.IsMatch(haystack)
}

// Literals implements Prefilter.
func (p *AhoCorasick) Literals() int { return p.count }

// Kind implements Prefilter.
func (p *AhoCorasick) Kind() string { return "aho-corasick" }
