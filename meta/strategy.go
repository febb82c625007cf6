package meta

import (
	"fmt"

	"github.com/coregx/minire/literal"
	"github.com/coregx/minire/nfa"
)

// Strategy is how an Engine decides matches.
type Strategy int

const (
	// UseNFA simulates the NFA on every input.
	UseNFA Strategy = iota

	// UseLiteral looks the input up in the pattern's finite language.
	UseLiteral

	// UsePrefilter rejects inputs lacking every required literal, then
	// simulates the NFA on the rest.
	UsePrefilter
)

// String returns a human-readable representation of the strategy
func (s Strategy) String() string {
	switch s {
	case UseNFA:
		return "UseNFA"
	case UseLiteral:
		return "UseLiteral"
	case UsePrefilter:
		return "UsePrefilter"
	default:
		return fmt.Sprintf("Unknown(%d)", s)
	}
}

// SelectStrategy picks a strategy from literal analysis.
//
// A finite language wins over a prefilter: a set lookup needs no NFA at
// all. The NFA is still compiled for every pattern so that callers can
// inspect it.
func SelectStrategy(_ *nfa.NFA, info literal.Info, config Config) Strategy {
	if config.EnableLiteral && !info.Exact.IsEmpty() {
		return UseLiteral
	}
	if config.EnablePrefilter && !info.Required.IsEmpty() && info.Required.MinLen() >= config.MinLiteralLen {
		return UsePrefilter
	}
	return UseNFA
}
