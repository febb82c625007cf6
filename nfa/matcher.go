package nfa

import (
	"unicode/utf8"

	"github.com/coregx/minire/internal/conv"
	"github.com/coregx/minire/internal/sparse"
)

// Matcher simulates an NFA against whole inputs.
//
// The simulation explores (position, state) pairs breadth first from
// (0, start). Because every edge either keeps the position (epsilon) or
// advances it by one, a FIFO worklist drains all pairs at position i before
// any pair at i+1. The matcher exploits that: it keeps one sparse set per
// position (curr and next), and a set doubles as the visited set and the
// FIFO queue for its position. Each pair is therefore expanded at most once
// and a match costs O(len(input) * states) time with O(states) memory,
// however many epsilon cycles '*' and '+' introduced.
//
// A Matcher is not safe for concurrent use; the NFA it reads is.
type Matcher struct {
	nfa  *NFA
	curr *sparse.SparseSet
	next *sparse.SparseSet
}

// NewMatcher creates a matcher with buffers sized for n.
func NewMatcher(n *NFA) *Matcher {
	size := conv.IntToUint32(n.States())
	return &Matcher{
		nfa:  n,
		curr: sparse.NewSparseSet(size),
		next: sparse.NewSparseSet(size),
	}
}

// IsMatchString is like IsMatch but takes a string.
func (m *Matcher) IsMatchString(input string) bool {
	return m.IsMatch([]byte(input))
}

// IsMatch reports whether the NFA accepts exactly input, start to end.
//
// Characters are the UTF-8 encoded runes of input. Invalid bytes are each
// treated as one utf8.RuneError character.
func (m *Matcher) IsMatch(input []byte) bool {
	states := m.nfa.states
	if len(states) == 0 {
		return false
	}

	m.curr.Clear()
	m.curr.Insert(uint32(m.nfa.start))

	pos := 0
	for {
		atEnd := pos >= len(input)
		var r rune
		size := 0
		if !atEnd {
			r, size = utf8.DecodeRune(input[pos:])
		}

		m.next.Clear()
		// curr grows while walked: epsilon targets join this position's queue
		for i := 0; i < m.curr.Len(); i++ {
			s := &states[m.curr.At(i)]
			if atEnd && s.accepting {
				return true
			}
			for _, t := range s.transitions {
				switch t.Label.Kind {
				case LabelEpsilon:
					m.curr.Insert(uint32(t.Next))
				case LabelWildcard:
					if !atEnd {
						m.next.Insert(uint32(t.Next))
					}
				case LabelLetter:
					if !atEnd && t.Label.Char == r {
						m.next.Insert(uint32(t.Next))
					}
				}
			}
		}

		if atEnd || m.next.IsEmpty() {
			return false
		}
		pos += size
		m.curr, m.next = m.next, m.curr
	}
}
