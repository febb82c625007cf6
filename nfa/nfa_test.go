package nfa

import (
	"strings"
	"testing"
)

func TestLabelString(t *testing.T) {
	tests := []struct {
		label Label
		want  string
	}{
		{Letter('x'), "'x'"},
		{Wildcard, "."},
		{Epsilon, "ε"},
		{Label{}, "None"},
	}

	for _, tt := range tests {
		if got := tt.label.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestLabelKindString(t *testing.T) {
	if got := LabelKind(42).String(); got != "Unknown(42)" {
		t.Errorf("String() = %q", got)
	}
}

func TestStateString(t *testing.T) {
	n := mustCompile(t, "ab")
	tests := []struct {
		id   StateID
		want string
	}{
		{0, "State(0, 'a' -> 1)"},
		{1, "State(1, ε -> 2)"},
		{3, "State(3, Accept)"},
	}

	for _, tt := range tests {
		if got := n.State(tt.id).String(); got != tt.want {
			t.Errorf("State(%d).String() = %q, want %q", tt.id, got, tt.want)
		}
	}
}

func TestNFAString(t *testing.T) {
	n := mustCompile(t, "ab")
	if got, want := n.String(), "NFA{states: 4, start: 0}"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}

	dump := n.Dump()
	if !strings.HasPrefix(dump, "start: 0\n") {
		t.Errorf("Dump() should start with the start state:\n%s", dump)
	}
	if strings.Count(dump, "State(") != 4 {
		t.Errorf("Dump() should list every state:\n%s", dump)
	}
}
