package nfa

import (
	"bytes"
	"strings"
	"testing"
)

func TestWriteDOT(t *testing.T) {
	n := mustCompile(t, "a|.")

	var buf bytes.Buffer
	if err := WriteDOT(&buf, n); err != nil {
		t.Fatalf("WriteDOT: %v", err)
	}
	out := buf.String()

	wantLines := []string{
		"digraph NFA {",
		`q0 -> q1 [label="'a'"];`,
		`q2 -> q3 [label="."];`,
		`[label="ε"]`,
		"q5 [shape=doublecircle];",
		"_start -> q4;",
	}
	for _, want := range wantLines {
		if !strings.Contains(out, want) {
			t.Errorf("DOT output missing %q:\n%s", want, out)
		}
	}
	if strings.Count(out, "doublecircle") != 1 {
		t.Errorf("want exactly one accepting node:\n%s", out)
	}
}
