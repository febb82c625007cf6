package literal

import (
	"fmt"
	"unicode/utf8"

	"github.com/coregx/minire/syntax"
)

// ExtractorConfig limits literal extraction.
type ExtractorConfig struct {
	// MaxLiterals caps the size of any exact or required set. Larger sets
	// are dropped to "unknown", which is always safe.
	// Default: 64
	MaxLiterals int
}

// DefaultConfig returns the default extraction limits.
func DefaultConfig() ExtractorConfig {
	return ExtractorConfig{
		MaxLiterals: 64,
	}
}

// Info is what extraction learned about a pattern or sub-pattern.
type Info struct {
	// Exact is the complete language of the pattern when it is finite and
	// small, otherwise nil. It may contain the empty literal.
	Exact *Seq

	// Required holds literals such that every accepted input contains at
	// least one of them, or nil if no such set is known. It never contains
	// the empty literal.
	Required *Seq
}

// Extractor analyzes postfix token streams.
type Extractor struct {
	config ExtractorConfig
}

// New creates an extractor with the given configuration.
func New(config ExtractorConfig) *Extractor {
	if config.MaxLiterals <= 0 {
		config.MaxLiterals = DefaultConfig().MaxLiterals
	}
	return &Extractor{config: config}
}

// Analyze walks postfix, which must come from syntax.ToPostfix, with the
// same stack discipline as Thompson construction and returns the Info of
// the whole pattern. Empty postfix yields the zero Info.
//
// Per operator:
//
//	c      Exact {c}            Required {c}
//	.      Exact ∞              Required none
//	AB     Exact A×B            Required Exact, else the stronger of A, B
//	A|B    Exact A∪B            Required A∪B when both are known and it fits
//	A?     Exact A∪{""}         Required none
//	A*     Exact ∞              Required none
//	A+     Exact ∞              Required A
func (e *Extractor) Analyze(postfix []syntax.Token) Info {
	var stack []Info
	pop := func() Info {
		if len(stack) == 0 {
			panic("literal: postfix stack underflow")
		}
		in := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		return in
	}

	for _, tok := range postfix {
		switch tok.Kind {
		case syntax.KindLetter:
			stack = append(stack, letterInfo(tok.Char))
		case syntax.KindWildcard:
			stack = append(stack, Info{})
		case syntax.KindConcat:
			second := pop()
			first := pop()
			stack = append(stack, e.concat(first, second))
		case syntax.KindUnion:
			a := pop()
			b := pop()
			stack = append(stack, e.union(b, a))
		case syntax.KindOptional:
			stack = append(stack, e.optional(pop()))
		case syntax.KindKleene:
			pop()
			stack = append(stack, Info{})
		case syntax.KindPositive:
			f := pop()
			stack = append(stack, Info{Required: f.Required})
		default:
			panic(fmt.Sprintf("literal: unexpected %v in postfix", tok))
		}
	}

	if len(stack) == 0 {
		return Info{}
	}
	out := stack[len(stack)-1]
	out.Exact.SetComplete(true)
	out.Required.SetComplete(false)
	return out
}

func letterInfo(c rune) Info {
	b := utf8.AppendRune(nil, c)
	return Info{
		Exact:    NewSeq(NewLiteral(b, true)),
		Required: NewSeq(NewLiteral(b, false)),
	}
}

func (e *Extractor) concat(first, second Info) Info {
	exact := Cross(first.Exact, second.Exact, e.config.MaxLiterals)
	if req := requiredFromExact(exact); req != nil {
		return Info{Exact: exact, Required: req}
	}
	return Info{Exact: exact, Required: stronger(first.Required, second.Required)}
}

func (e *Extractor) union(a, b Info) Info {
	exact := Union(a.Exact, b.Exact)
	if exact.Len() > e.config.MaxLiterals {
		exact = nil
	}
	req := Union(a.Required, b.Required)
	if req.Len() > e.config.MaxLiterals {
		req = nil
	}
	req.Minimize()
	return Info{Exact: exact, Required: req}
}

func (e *Extractor) optional(f Info) Info {
	exact := Union(f.Exact, NewSeq(NewLiteral([]byte{}, true)))
	if exact.Len() > e.config.MaxLiterals {
		exact = nil
	}
	return Info{Exact: exact}
}

// requiredFromExact turns a finite language into a required set. A
// language containing the empty string requires nothing.
func requiredFromExact(exact *Seq) *Seq {
	if exact.IsEmpty() || exact.MinLen() == 0 {
		return nil
	}
	req := exact.Clone()
	req.Minimize()
	return req
}

// stronger picks the required set that rejects more inputs: the one whose
// shortest literal is longer, then the one with fewer literals.
func stronger(a, b *Seq) *Seq {
	switch {
	case a.IsEmpty():
		return b
	case b.IsEmpty():
		return a
	case a.MinLen() != b.MinLen():
		if a.MinLen() > b.MinLen() {
			return a
		}
		return b
	case b.Len() < a.Len():
		return b
	default:
		return a
	}
}
