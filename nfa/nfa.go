package nfa

import (
	"fmt"
	"strings"
)

// StateID indexes a state in an NFA's state arena.
type StateID uint32

// InvalidState represents an invalid/uninitialized state ID
const InvalidState StateID = 0xFFFFFFFF

// MaxTransitions is the most outgoing transitions a state may have.
// Thompson construction never needs more than two.
const MaxTransitions = 2

// LabelKind identifies what a transition consumes.
type LabelKind uint8

const (
	// LabelNone marks an unset transition. None survive a successful build.
	LabelNone LabelKind = iota

	// LabelLetter consumes exactly Label.Char.
	LabelLetter

	// LabelWildcard consumes any single character.
	LabelWildcard

	// LabelEpsilon consumes nothing.
	LabelEpsilon
)

// String returns a human-readable representation of the LabelKind
func (k LabelKind) String() string {
	switch k {
	case LabelNone:
		return "None"
	case LabelLetter:
		return "Letter"
	case LabelWildcard:
		return "Wildcard"
	case LabelEpsilon:
		return "Epsilon"
	default:
		return fmt.Sprintf("Unknown(%d)", k)
	}
}

// Label is the condition attached to a transition.
// Char is meaningful only for LabelLetter.
type Label struct {
	Kind LabelKind
	Char rune
}

// Labels for the variants that carry no payload.
var (
	Epsilon  = Label{Kind: LabelEpsilon}
	Wildcard = Label{Kind: LabelWildcard}
)

// Letter returns a label consuming exactly c.
func Letter(c rune) Label {
	return Label{Kind: LabelLetter, Char: c}
}

// String renders the label the way it appears on graph edges.
func (l Label) String() string {
	switch l.Kind {
	case LabelLetter:
		return fmt.Sprintf("%q", l.Char)
	case LabelWildcard:
		return "."
	case LabelEpsilon:
		return "ε"
	default:
		return l.Kind.String()
	}
}

// Transition is a labeled edge to another state of the same NFA.
type Transition struct {
	Label Label
	Next  StateID
}

// State is a node of the automaton.
type State struct {
	id          StateID
	transitions []Transition
	accepting   bool
}

// ID returns the state's index in the arena
func (s *State) ID() StateID {
	return s.id
}

// Transitions returns the outgoing transitions, at most MaxTransitions.
// The slice must not be modified.
func (s *State) Transitions() []Transition {
	return s.transitions
}

// IsAccepting returns true if reaching this state at the end of input is a match
func (s *State) IsAccepting() bool {
	return s.accepting
}

// String returns a human-readable representation of the state
func (s *State) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "State(%d", s.id)
	if s.accepting {
		sb.WriteString(", Accept")
	}
	for _, t := range s.transitions {
		fmt.Fprintf(&sb, ", %s -> %d", t.Label, t.Next)
	}
	sb.WriteByte(')')
	return sb.String()
}

// NFA is a compiled Thompson automaton: an arena of states referenced by
// index and a designated start state.
//
// An NFA is immutable once built and is safe to share between goroutines.
// Each match needs its own Matcher.
type NFA struct {
	states []State
	start  StateID
}

// Start returns the starting state ID of the NFA
func (n *NFA) Start() StateID {
	return n.start
}

// State returns the state with the given ID.
// Returns nil if the ID is invalid.
func (n *NFA) State(id StateID) *State {
	if id == InvalidState || int(id) >= len(n.states) {
		return nil
	}
	return &n.states[id]
}

// IsAccepting returns true if the given state is an accepting state
func (n *NFA) IsAccepting(id StateID) bool {
	if s := n.State(id); s != nil {
		return s.accepting
	}
	return false
}

// States returns the total number of states in the NFA
func (n *NFA) States() int {
	return len(n.states)
}

// Accepting returns the IDs of all accepting states in index order.
func (n *NFA) Accepting() []StateID {
	var ids []StateID
	for i := range n.states {
		if n.states[i].accepting {
			ids = append(ids, n.states[i].id)
		}
	}
	return ids
}

// IsMatch reports whether the automaton accepts the whole of input.
// It allocates a fresh Matcher; use a Matcher directly to reuse buffers.
func (n *NFA) IsMatch(input string) bool {
	return NewMatcher(n).IsMatchString(input)
}

// String returns a human-readable representation of the NFA
func (n *NFA) String() string {
	return fmt.Sprintf("NFA{states: %d, start: %d}", len(n.states), n.start)
}

// Dump returns one line per state, for debugging and the CLI.
func (n *NFA) Dump() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "start: %d\n", n.start)
	for i := range n.states {
		sb.WriteString(n.states[i].String())
		sb.WriteByte('\n')
	}
	return sb.String()
}
