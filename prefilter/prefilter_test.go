package prefilter

import (
	"testing"

	"github.com/coregx/minire/literal"
)

func required(lits ...string) *literal.Seq {
	s := literal.NewSeq()
	for _, l := range lits {
		s = literal.Union(s, literal.NewSeq(literal.NewLiteral([]byte(l), false)))
	}
	return s
}

func TestBuilder_Selection(t *testing.T) {
	tests := []struct {
		name     string
		lits     *literal.Seq
		minLen   int
		wantKind string // "" means no prefilter
	}{
		{"unknown", nil, 1, ""},
		{"empty", literal.NewSeq(), 1, ""},
		{"single literal", required("@"), 1, "memmem"},
		{"several literals", required("foo", "bar"), 1, "aho-corasick"},
		{"too short", required("ab", "c"), 2, ""},
		{"empty literal", required(""), 0, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pf, err := NewBuilder(tt.lits).WithMinLen(tt.minLen).Build()
			if err != nil {
				t.Fatalf("Build: %v", err)
			}
			if tt.wantKind == "" {
				if pf != nil {
					t.Errorf("got %s prefilter, want none", pf.Kind())
				}
				return
			}
			if pf == nil {
				t.Fatalf("got no prefilter, want %s", tt.wantKind)
			}
			if pf.Kind() != tt.wantKind {
				t.Errorf("Kind() = %q, want %q", pf.Kind(), tt.wantKind)
			}
			if pf.Literals() != tt.lits.Len() {
				t.Errorf("Literals() = %d, want %d", pf.Literals(), tt.lits.Len())
			}
		})
	}
}

func TestPrefilter_IsMatch(t *testing.T) {
	tests := []struct {
		name     string
		lits     *literal.Seq
		haystack string
		want     bool
	}{
		{"memmem hit", required("@"), "hi@mail", true},
		{"memmem miss", required("@"), "himail", false},
		{"memmem empty haystack", required("@"), "", false},
		{"memmem multibyte", required("é"), "caf\u00e9", true},
		{"aho hit first", required("foo", "bar"), "xxbarfoo", true},
		{"aho hit last", required("foo", "bar"), "xxxxfoo", true},
		{"aho miss", required("foo", "bar"), "fobaz", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pf, err := NewBuilder(tt.lits).Build()
			if err != nil || pf == nil {
				t.Fatalf("Build: %v, %v", pf, err)
			}
			if got := pf.IsMatch([]byte(tt.haystack)); got != tt.want {
				t.Errorf("IsMatch(%q) = %v, want %v", tt.haystack, got, tt.want)
			}
		})
	}
}
