// Package literal extracts literal byte sequences from postfix token streams.
//
// The extracted literals drive two shortcuts in the meta engine:
//   - an exact set, when a pattern denotes a finite language (e.g. /cat|dog/),
//     lets a match be decided by set membership alone
//   - a required set, when every accepted input must contain one of a few
//     literals (e.g. "@" for /.+@.+/), lets a prefilter reject inputs before
//     the NFA runs
//
// A nil *Seq stands for "unknown or infinite".
package literal

import (
	"bytes"
	"sort"
	"strconv"
	"strings"
)

// Literal is a byte sequence extracted from a pattern.
// Complete is true when the literal is itself a whole accepted input, false
// when it is only known to occur somewhere inside every accepted input.
type Literal struct {
	Bytes    []byte
	Complete bool
}

// NewLiteral creates a new Literal from the given byte sequence and completeness flag.
func NewLiteral(b []byte, complete bool) Literal {
	return Literal{
		Bytes:    b,
		Complete: complete,
	}
}

// Len returns the length of the literal in bytes.
func (l Literal) Len() int {
	return len(l.Bytes)
}

// String returns a string representation of the literal for debugging purposes.
// Format: "literal{bytes, complete=true/false}"
func (l Literal) String() string {
	complete := "false"
	if l.Complete {
		complete = "true"
	}
	return "literal{" + string(l.Bytes) + ", complete=" + complete + "}"
}

// Seq is a set of alternative literals.
//
// Example:
//
//	seq := literal.NewSeq(
//	    literal.NewLiteral([]byte("foo"), true),
//	    literal.NewLiteral([]byte("bar"), true),
//	)
//	fmt.Println(seq.Len()) // Output: 2
type Seq struct {
	literals []Literal
}

// NewSeq creates a new sequence from the given literals.
func NewSeq(lits ...Literal) *Seq {
	return &Seq{
		literals: lits,
	}
}

// Len returns the number of literals in the sequence.
func (s *Seq) Len() int {
	if s == nil {
		return 0
	}
	return len(s.literals)
}

// Get returns the literal at the specified index.
// Panics if index is out of bounds.
func (s *Seq) Get(i int) Literal {
	return s.literals[i]
}

// IsEmpty returns true if the sequence has no literals.
func (s *Seq) IsEmpty() bool {
	return s == nil || len(s.literals) == 0
}

// Clone returns a deep copy of the sequence.
func (s *Seq) Clone() *Seq {
	if s == nil {
		return nil
	}

	cloned := make([]Literal, len(s.literals))
	for i, lit := range s.literals {
		bytesCopy := make([]byte, len(lit.Bytes))
		copy(bytesCopy, lit.Bytes)
		cloned[i] = Literal{
			Bytes:    bytesCopy,
			Complete: lit.Complete,
		}
	}

	return &Seq{literals: cloned}
}

// MinLen returns the length of the shortest literal, or 0 for an empty sequence.
func (s *Seq) MinLen() int {
	if s.IsEmpty() {
		return 0
	}
	minLen := len(s.literals[0].Bytes)
	for _, lit := range s.literals[1:] {
		if len(lit.Bytes) < minLen {
			minLen = len(lit.Bytes)
		}
	}
	return minLen
}

// SetComplete sets the Complete flag on every literal.
func (s *Seq) SetComplete(complete bool) {
	if s == nil {
		return
	}
	for i := range s.literals {
		s.literals[i].Complete = complete
	}
}

// Dedup removes duplicate literals, keeping the first occurrence.
func (s *Seq) Dedup() {
	if s.IsEmpty() {
		return
	}
	seen := make(map[string]struct{}, len(s.literals))
	kept := s.literals[:0]
	for _, lit := range s.literals {
		if _, ok := seen[string(lit.Bytes)]; ok {
			continue
		}
		seen[string(lit.Bytes)] = struct{}{}
		kept = append(kept, lit)
	}
	s.literals = kept
}

// Minimize removes literals made redundant for substring search.
//
// A literal L is redundant if a shorter kept literal S occurs inside L: any
// input containing L also contains S. Of ["x@y", "@"] only "@" remains.
// Literals are left sorted by length, shortest first.
func (s *Seq) Minimize() {
	if s.IsEmpty() {
		return
	}

	sort.SliceStable(s.literals, func(i, j int) bool {
		return len(s.literals[i].Bytes) < len(s.literals[j].Bytes)
	})

	kept := make([]Literal, 0, len(s.literals))
	for _, current := range s.literals {
		redundant := false
		for _, k := range kept {
			if bytes.Contains(current.Bytes, k.Bytes) {
				redundant = true
				break
			}
		}
		if !redundant {
			kept = append(kept, current)
		}
	}

	s.literals = kept
}

// Union returns the literals of a followed by those of b, without
// duplicates. Either side being nil (unknown) makes the result nil.
func Union(a, b *Seq) *Seq {
	if a == nil || b == nil {
		return nil
	}
	lits := make([]Literal, 0, len(a.literals)+len(b.literals))
	lits = append(lits, a.Clone().literals...)
	lits = append(lits, b.Clone().literals...)
	out := &Seq{literals: lits}
	out.Dedup()
	return out
}

// Cross returns every concatenation of a literal of a with a literal of b.
// It returns nil if either side is nil or the product would exceed limit
// literals.
func Cross(a, b *Seq, limit int) *Seq {
	if a == nil || b == nil {
		return nil
	}
	if len(a.literals)*len(b.literals) > limit {
		return nil
	}
	lits := make([]Literal, 0, len(a.literals)*len(b.literals))
	for _, x := range a.literals {
		for _, y := range b.literals {
			joined := make([]byte, 0, len(x.Bytes)+len(y.Bytes))
			joined = append(joined, x.Bytes...)
			joined = append(joined, y.Bytes...)
			lits = append(lits, Literal{Bytes: joined, Complete: x.Complete && y.Complete})
		}
	}
	out := &Seq{literals: lits}
	out.Dedup()
	return out
}

// String renders the sequence as a bracketed list of quoted literals.
// A nil sequence renders as "∞".
func (s *Seq) String() string {
	if s == nil {
		return "∞"
	}
	parts := make([]string, len(s.literals))
	for i, lit := range s.literals {
		parts[i] = strconv.Quote(string(lit.Bytes))
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
