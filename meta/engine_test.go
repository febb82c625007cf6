package meta

import (
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/coregx/minire/nfa"
	"github.com/coregx/minire/syntax"
)

func TestStrategySelection(t *testing.T) {
	noLiteral := DefaultConfig()
	noLiteral.EnableLiteral = false

	nfaOnly := DefaultConfig()
	nfaOnly.EnableLiteral = false
	nfaOnly.EnablePrefilter = false

	longLiterals := DefaultConfig()
	longLiterals.MinLiteralLen = 2

	tests := []struct {
		name    string
		pattern string
		config  Config
		want    Strategy
	}{
		{"single letter", "a", DefaultConfig(), UseLiteral},
		{"alternation", "cat|dog", DefaultConfig(), UseLiteral},
		{"optional", "colou?r", DefaultConfig(), UseLiteral},
		{"kleene", "a*", DefaultConfig(), UseNFA},
		{"wildcard", ".", DefaultConfig(), UseNFA},
		{"email", ".+@.+", DefaultConfig(), UsePrefilter},
		{"positive group", "(ab)+", DefaultConfig(), UsePrefilter},
		{"literal disabled", "cat|dog", noLiteral, UsePrefilter},
		{"shortcuts disabled", "cat|dog", nfaOnly, UseNFA},
		{"required too short", ".+@.+", longLiterals, UseNFA},
		{"replacement char", "a�", DefaultConfig(), UseNFA},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, err := CompileWithConfig(tt.pattern, tt.config)
			if err != nil {
				t.Fatalf("CompileWithConfig(%q) error: %v", tt.pattern, err)
			}
			if got := e.Strategy(); got != tt.want {
				t.Errorf("Strategy() = %v, want %v", got, tt.want)
			}
			if (e.Prefilter() != nil) != (e.Strategy() == UsePrefilter) {
				t.Errorf("Prefilter() = %v with strategy %v", e.Prefilter(), e.Strategy())
			}
		})
	}
}

func TestStrategyString(t *testing.T) {
	tests := []struct {
		s    Strategy
		want string
	}{
		{UseNFA, "UseNFA"},
		{UseLiteral, "UseLiteral"},
		{UsePrefilter, "UsePrefilter"},
		{Strategy(42), "Unknown(42)"},
	}
	for _, tt := range tests {
		if got := tt.s.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestCompileInvalid(t *testing.T) {
	_, err := Compile("a|")
	if err == nil {
		t.Fatal("expected error")
	}
	var ce *nfa.CompileError
	if !errors.As(err, &ce) {
		t.Fatalf("error %T is not *nfa.CompileError", err)
	}
	if !errors.Is(err, syntax.ErrInvalidPattern) {
		t.Error("error does not wrap syntax.ErrInvalidPattern")
	}
}

// TestEngineAgreesWithNFA checks that every strategy gives the answer of
// plain NFA simulation.
func TestEngineAgreesWithNFA(t *testing.T) {
	patterns := []string{
		"a", "abc", "cat|dog", "colou?r", "a*", "a+b", "(ab)+", ".+@.+",
		`.+@.+\.com?`, "x*yz*", "(abc|ab).", "a(bb)*|b", "é+", "a�",
		"(a|b)(c|d)(e|f)",
	}
	inputs := []string{
		"", "a", "b", "ab", "abc", "abab", "cat", "dog", "cats", "color",
		"colour", "colouur", "aaab", "x@y", "me@site.co", "me@site.com",
		"y", "xxyzz", "abcd", "abd", "abb", "abbbb", "éé", "a�",
		"a\xff", "\xff", "ace", "bdf", "acf", "xyz@",
	}

	configs := map[string]Config{"default": DefaultConfig()}
	noLiteral := DefaultConfig()
	noLiteral.EnableLiteral = false
	configs["no literal"] = noLiteral

	for name, config := range configs {
		for _, p := range patterns {
			e, err := CompileWithConfig(p, config)
			if err != nil {
				t.Fatalf("CompileWithConfig(%q) error: %v", p, err)
			}
			ref, err := nfa.Compile(p)
			if err != nil {
				t.Fatalf("nfa.Compile(%q) error: %v", p, err)
			}
			for _, in := range inputs {
				want := ref.IsMatch(in)
				if got := e.IsMatchString(in); got != want {
					t.Errorf("%s: %q (%v) on %q = %v, want %v", name, p, e.Strategy(), in, got, want)
				}
			}
		}
	}
}

func TestEngineStats(t *testing.T) {
	lit, err := Compile("cat|dog")
	if err != nil {
		t.Fatal(err)
	}
	lit.IsMatchString("cat")
	lit.IsMatchString("cow")
	if got := lit.Stats(); got.LiteralSearches != 2 || got.NFASearches != 0 {
		t.Errorf("literal Stats() = %+v", got)
	}

	pf, err := Compile(".+@.+")
	if err != nil {
		t.Fatal(err)
	}
	pf.IsMatchString("nope")
	pf.IsMatchString("a@b")
	pf.IsMatchString("@b")
	got := pf.Stats()
	if got.PrefilterRejects != 1 || got.NFASearches != 2 {
		t.Errorf("prefilter Stats() = %+v", got)
	}

	pf.ResetStats()
	if got := pf.Stats(); got != (Stats{}) {
		t.Errorf("after ResetStats() = %+v", got)
	}
}

func TestEngineConcurrent(t *testing.T) {
	e, err := Compile("(a|b)*abb")
	if err != nil {
		t.Fatal(err)
	}
	if e.Strategy() != UsePrefilter {
		t.Fatalf("Strategy() = %v, want UsePrefilter", e.Strategy())
	}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				if !e.IsMatchString("babaabb") {
					t.Error("expected match on babaabb")
					return
				}
				if e.IsMatchString("babaab") {
					t.Error("unexpected match on babaab")
					return
				}
			}
		}()
	}
	wg.Wait()

	if got := e.Stats().NFASearches + e.Stats().PrefilterRejects; got != 8*200*2 {
		t.Errorf("searches = %d, want %d", got, 8*200*2)
	}
}

func TestEngineAccessors(t *testing.T) {
	e, err := Compile("ab")
	if err != nil {
		t.Fatal(err)
	}
	if e.NFA().States() != 4 {
		t.Errorf("NFA().States() = %d, want 4", e.NFA().States())
	}
	if got := e.Literals().Exact.String(); got != `["ab"]` {
		t.Errorf("Literals().Exact = %s", got)
	}
	if e.Config() != DefaultConfig() {
		t.Errorf("Config() = %+v", e.Config())
	}
}

func TestCompileManyAlternatives(t *testing.T) {
	const n = 5000
	alts := make([]string, n)
	for i := range alts {
		alts[i] = string(rune(0x4E00 + i))
	}

	start := time.Now()
	e, err := Compile(strings.Join(alts, "|"))
	if err != nil {
		t.Fatal(err)
	}
	if elapsed := time.Since(start); elapsed > 5*time.Second {
		t.Errorf("Compile took %v", elapsed)
	}

	if e.Strategy() != UseNFA {
		t.Errorf("Strategy() = %v, want UseNFA", e.Strategy())
	}
	if !e.IsMatchString(alts[n-1]) || !e.IsMatchString(alts[0]) {
		t.Error("expected match on an alternative")
	}
	if e.IsMatchString(alts[0] + alts[1]) {
		t.Error("unexpected match on two alternatives")
	}
}
