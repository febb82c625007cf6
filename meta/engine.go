package meta

import (
	"fmt"
	"sync/atomic"
	"unicode/utf8"

	"github.com/coregx/minire/literal"
	"github.com/coregx/minire/nfa"
	"github.com/coregx/minire/prefilter"
	"github.com/coregx/minire/syntax"
)

// Engine decides whole-input matches for one compiled pattern.
//
// An Engine is safe for concurrent use: simulation buffers come from an
// internal pool and statistics are updated atomically.
type Engine struct {
	nfa       *nfa.NFA
	strategy  Strategy
	info      literal.Info
	exact     map[string]struct{}
	prefilter prefilter.Prefilter
	pool      *matcherPool
	config    Config

	stats stats
}

// Stats tracks how an engine answered its queries.
type Stats struct {
	// NFASearches counts inputs decided by NFA simulation.
	NFASearches uint64

	// LiteralSearches counts inputs decided by exact-set lookup.
	LiteralSearches uint64

	// PrefilterRejects counts inputs rejected by the prefilter alone.
	PrefilterRejects uint64
}

type stats struct {
	nfaSearches      atomic.Uint64
	literalSearches  atomic.Uint64
	prefilterRejects atomic.Uint64
}

// Compile compiles pattern with the default configuration.
func Compile(pattern string) (*Engine, error) {
	return CompileWithConfig(pattern, DefaultConfig())
}

// CompileWithConfig compiles pattern with a custom configuration.
//
// Invalid patterns yield an *nfa.CompileError wrapping the *syntax.Error.
func CompileWithConfig(pattern string, config Config) (*Engine, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	postfix, err := syntax.Parse(pattern)
	if err != nil {
		return nil, &nfa.CompileError{Pattern: pattern, Err: err}
	}
	return newEngine(postfix, config)
}

func newEngine(postfix []syntax.Token, config Config) (*Engine, error) {
	n := nfa.NewCompiler().CompilePostfix(postfix)

	info := literal.New(literal.ExtractorConfig{MaxLiterals: config.MaxLiterals}).Analyze(postfix)

	strategy := UseNFA
	// The NFA reads an invalid byte as U+FFFD, which byte comparison cannot
	// reproduce; such patterns always simulate.
	if !hasReplacementChar(postfix) {
		strategy = SelectStrategy(n, info, config)
	}

	e := &Engine{
		nfa:      n,
		strategy: strategy,
		info:     info,
		pool:     newMatcherPool(n),
		config:   config,
	}

	switch strategy {
	case UseLiteral:
		e.exact = make(map[string]struct{}, info.Exact.Len())
		for i := 0; i < info.Exact.Len(); i++ {
			e.exact[string(info.Exact.Get(i).Bytes)] = struct{}{}
		}
	case UsePrefilter:
		pf, err := prefilter.NewBuilder(info.Required).WithMinLen(config.MinLiteralLen).Build()
		if err != nil {
			return nil, fmt.Errorf("meta: build prefilter: %w", err)
		}
		if pf == nil {
			e.strategy = UseNFA
		} else {
			e.prefilter = pf
		}
	}

	return e, nil
}

func hasReplacementChar(postfix []syntax.Token) bool {
	for _, tok := range postfix {
		if tok.Kind == syntax.KindLetter && tok.Char == utf8.RuneError {
			return true
		}
	}
	return false
}

// IsMatch reports whether the pattern accepts exactly input.
func (e *Engine) IsMatch(input []byte) bool {
	switch e.strategy {
	case UseLiteral:
		e.stats.literalSearches.Add(1)
		_, ok := e.exact[string(input)]
		return ok
	case UsePrefilter:
		if !e.prefilter.IsMatch(input) {
			e.stats.prefilterRejects.Add(1)
			return false
		}
	}

	e.stats.nfaSearches.Add(1)
	m := e.pool.get()
	defer e.pool.put(m)
	return m.IsMatch(input)
}

// IsMatchString is like IsMatch but takes a string.
func (e *Engine) IsMatchString(input string) bool {
	return e.IsMatch([]byte(input))
}

// Strategy returns the strategy chosen at compile time.
func (e *Engine) Strategy() Strategy {
	return e.strategy
}

// NFA returns the compiled automaton.
func (e *Engine) NFA() *nfa.NFA {
	return e.nfa
}

// Literals returns what literal analysis learned about the pattern.
func (e *Engine) Literals() literal.Info {
	return e.info
}

// Prefilter returns the prefilter in use, or nil unless the strategy is
// UsePrefilter.
func (e *Engine) Prefilter() prefilter.Prefilter {
	return e.prefilter
}

// Config returns the configuration the engine was compiled with.
func (e *Engine) Config() Config {
	return e.config
}

// Stats returns a snapshot of execution statistics.
func (e *Engine) Stats() Stats {
	return Stats{
		NFASearches:      e.stats.nfaSearches.Load(),
		LiteralSearches:  e.stats.literalSearches.Load(),
		PrefilterRejects: e.stats.prefilterRejects.Load(),
	}
}

// ResetStats resets execution statistics to zero.
func (e *Engine) ResetStats() {
	e.stats.nfaSearches.Store(0)
	e.stats.literalSearches.Store(0)
	e.stats.prefilterRejects.Store(0)
}
