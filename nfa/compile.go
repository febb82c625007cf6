package nfa

import (
	"fmt"

	"github.com/coregx/minire/syntax"
)

// fragment is a partially built sub-automaton. Its out state has no
// outgoing transitions yet.
type fragment struct {
	start StateID
	out   StateID
}

// Compiler turns validated postfix token streams into Thompson NFAs.
// A Compiler may be reused but not shared between goroutines.
type Compiler struct {
	builder *Builder
	stack   []fragment
}

// NewCompiler creates a new NFA compiler
func NewCompiler() *Compiler {
	return &Compiler{}
}

// Compile parses, validates and compiles a pattern.
// An invalid pattern yields a *CompileError wrapping the *syntax.Error.
func (c *Compiler) Compile(pattern string) (*NFA, error) {
	postfix, err := syntax.Parse(pattern)
	if err != nil {
		return nil, &CompileError{
			Pattern: pattern,
			Err:     err,
		}
	}
	return c.CompilePostfix(postfix), nil
}

// Compile compiles pattern with a fresh Compiler.
func Compile(pattern string) (*NFA, error) {
	return NewCompiler().Compile(pattern)
}

// CompilePostfix runs Thompson construction over postfix, which must come
// from syntax.ToPostfix. Malformed postfix is a programming error and
// panics.
//
// Empty postfix compiles to an automaton that matches nothing.
func (c *Compiler) CompilePostfix(postfix []syntax.Token) *NFA {
	// every token allocates at most two states
	c.builder = NewBuilderWithCapacity(2*len(postfix) + 1)
	c.stack = c.stack[:0]

	if len(postfix) == 0 {
		c.builder.SetStart(c.builder.AddState())
		return c.build()
	}

	for _, tok := range postfix {
		switch tok.Kind {
		case syntax.KindLetter:
			c.push(c.single(Letter(tok.Char)))
		case syntax.KindWildcard:
			c.push(c.single(Wildcard))
		case syntax.KindConcat:
			second := c.pop()
			first := c.pop()
			c.push(c.concat(first, second))
		case syntax.KindUnion:
			a := c.pop()
			b := c.pop()
			c.push(c.union(a, b))
		case syntax.KindKleene:
			c.push(c.quantifier(c.pop(), true, true))
		case syntax.KindPositive:
			c.push(c.quantifier(c.pop(), true, false))
		case syntax.KindOptional:
			c.push(c.quantifier(c.pop(), false, true))
		default:
			panic(fmt.Sprintf("nfa: unexpected %v in postfix", tok))
		}
	}

	if len(c.stack) != 1 {
		panic(fmt.Sprintf("nfa: postfix left %d fragments, want 1", len(c.stack)))
	}
	final := c.stack[0]
	c.must(c.builder.SetAccepting(final.out, true))
	c.builder.SetStart(final.start)
	return c.build()
}

func (c *Compiler) build() *NFA {
	n, err := c.builder.Build()
	c.must(err)
	c.builder = nil
	return n
}

// must panics on builder errors; they can only come from a compiler bug.
func (c *Compiler) must(err error) {
	if err != nil {
		panic(&CompileError{Err: err})
	}
}

func (c *Compiler) push(f fragment) {
	c.stack = append(c.stack, f)
}

func (c *Compiler) pop() fragment {
	if len(c.stack) == 0 {
		panic("nfa: fragment stack underflow")
	}
	f := c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
	return f
}

func (c *Compiler) epsilon(from, to StateID) {
	c.must(c.builder.AddTransition(from, Epsilon, to))
}

// single compiles a one-character fragment: start --label--> out.
func (c *Compiler) single(label Label) fragment {
	start := c.builder.AddState()
	out := c.builder.AddState()
	c.must(c.builder.AddTransition(start, label, out))
	return fragment{start: start, out: out}
}

// concat links first.out to second.start.
func (c *Compiler) concat(first, second fragment) fragment {
	c.epsilon(first.out, second.start)
	return fragment{start: first.start, out: second.out}
}

// union forks from a new start into both fragments and joins them at a
// new out.
func (c *Compiler) union(a, b fragment) fragment {
	start := c.builder.AddState()
	out := c.builder.AddState()
	c.epsilon(start, a.start)
	c.epsilon(start, b.start)
	c.epsilon(a.out, out)
	c.epsilon(b.out, out)
	return fragment{start: start, out: out}
}

// quantifier wraps f between a new start and out. repeat adds the
// f.out -> f.start back edge; optional adds the start -> out skip edge.
//
//	*  repeat, optional
//	+  repeat
//	?  optional
func (c *Compiler) quantifier(f fragment, repeat, optional bool) fragment {
	start := c.builder.AddState()
	out := c.builder.AddState()
	c.epsilon(start, f.start)
	c.epsilon(f.out, out)
	if optional {
		c.epsilon(start, out)
	}
	if repeat {
		c.epsilon(f.out, f.start)
	}
	return fragment{start: start, out: out}
}
