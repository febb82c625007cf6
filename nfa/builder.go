package nfa

import (
	"fmt"

	"github.com/coregx/minire/internal/conv"
)

// Builder constructs NFAs incrementally using a low-level API.
// States are appended to an arena and never renumbered, so an ID stays
// valid for the lifetime of the builder and the NFA it produces.
type Builder struct {
	states []State
	start  StateID
}

// NewBuilder creates a new NFA builder with default capacity
func NewBuilder() *Builder {
	return NewBuilderWithCapacity(16)
}

// NewBuilderWithCapacity creates a new NFA builder with specified initial capacity
func NewBuilderWithCapacity(capacity int) *Builder {
	return &Builder{
		states: make([]State, 0, capacity),
		start:  InvalidState,
	}
}

// AddState appends a state with no transitions and returns its ID
func (b *Builder) AddState() StateID {
	id := StateID(conv.IntToUint32(len(b.states)))
	b.states = append(b.states, State{id: id})
	return id
}

// AddTransition adds an edge from one state to another.
// A state holds at most MaxTransitions edges; adding more is an error,
// as is a LabelNone edge.
func (b *Builder) AddTransition(from StateID, label Label, to StateID) error {
	if int(from) >= len(b.states) {
		return &BuildError{Message: "state ID out of bounds", StateID: from, Err: ErrInvalidState}
	}
	if label.Kind == LabelNone {
		return &BuildError{Message: "transition has no label", StateID: from}
	}

	s := &b.states[from]
	if len(s.transitions) >= MaxTransitions {
		return &BuildError{
			Message: fmt.Sprintf("cannot add transition to %d", to),
			StateID: from,
			Err:     ErrTooManyTransitions,
		}
	}
	if s.transitions == nil {
		s.transitions = make([]Transition, 0, MaxTransitions)
	}
	s.transitions = append(s.transitions, Transition{Label: label, Next: to})
	return nil
}

// SetAccepting marks or unmarks a state as accepting
func (b *Builder) SetAccepting(id StateID, accepting bool) error {
	if int(id) >= len(b.states) {
		return &BuildError{Message: "state ID out of bounds", StateID: id, Err: ErrInvalidState}
	}
	b.states[id].accepting = accepting
	return nil
}

// SetStart sets the starting state for the NFA
func (b *Builder) SetStart(start StateID) {
	b.start = start
}

// States returns the current number of states
func (b *Builder) States() int {
	return len(b.states)
}

// Validate checks that the NFA is well-formed:
// - Start state is valid
// - All transition targets point to valid states
// - No state exceeds MaxTransitions or carries an unset label
func (b *Builder) Validate() error {
	if b.start == InvalidState {
		return &BuildError{Message: "start state not set", StateID: InvalidState}
	}
	if int(b.start) >= len(b.states) {
		return &BuildError{
			Message: "start state out of bounds",
			StateID: b.start,
			Err:     ErrInvalidState,
		}
	}

	for i := range b.states {
		s := &b.states[i]
		if len(s.transitions) > MaxTransitions {
			return &BuildError{
				Message: fmt.Sprintf("%d transitions", len(s.transitions)),
				StateID: s.id,
				Err:     ErrTooManyTransitions,
			}
		}
		for j, t := range s.transitions {
			if t.Label.Kind == LabelNone {
				return &BuildError{
					Message: fmt.Sprintf("transition %d has no label", j),
					StateID: s.id,
				}
			}
			if int(t.Next) >= len(b.states) {
				return &BuildError{
					Message: fmt.Sprintf("invalid transition %d target %d", j, t.Next),
					StateID: s.id,
					Err:     ErrInvalidState,
				}
			}
		}
	}

	return nil
}

// Build finalizes and returns the constructed NFA.
// The builder must not be used afterwards.
func (b *Builder) Build() (*NFA, error) {
	if err := b.Validate(); err != nil {
		return nil, err
	}

	nfa := &NFA{
		states: b.states,
		start:  b.start,
	}
	b.states = nil
	b.start = InvalidState
	return nfa, nil
}
