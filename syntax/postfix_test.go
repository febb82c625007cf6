package syntax

import (
	"errors"
	"testing"
)

func TestParse_Valid(t *testing.T) {
	tests := []struct {
		pattern string
		want    string
	}{
		{"a", "a"},
		{".", "."},
		{"ab", "a b ·"},
		{"abc", "a b · c ·"},
		{"a|b", "a b |"},
		{"a|b|c", "a b | c |"},
		{"ab|c", "a b · c |"},
		{"a|bc", "a b c · |"},
		{"ab*", "a b * ·"},
		{"a*b", "a * b ·"},
		{"pens?", "p e · n · s ? ·"},
		{"a(bb)*|b", "a b b · * · b |"},
		{"(a|b)c", "a b | c ·"},
		{"((a))", "a"},
		{"a**", "a * *"},
		{`.+@.+\.com?`, `. + @ · . + · \. · c · o · m ? ·`},
		{`\(`, `\(`},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			postfix, err := Parse(tt.pattern)
			if err != nil {
				t.Fatalf("Parse(%q) unexpected error: %v", tt.pattern, err)
			}
			if got := FormatTokens(postfix); got != tt.want {
				t.Errorf("Parse(%q) = %q, want %q", tt.pattern, got, tt.want)
			}
			for _, tok := range postfix {
				if tok.Kind == KindOpenParen || tok.Kind == KindCloseParen {
					t.Errorf("postfix contains %v", tok)
				}
			}
		})
	}
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		pattern string
		code    ErrorCode
	}{
		{"", ErrNotSingleExpression},
		{`\`, ErrNotSingleExpression},
		{"(", ErrUnmatchedOpenParen},
		{"(a", ErrUnmatchedOpenParen},
		{")", ErrUnmatchedCloseParen},
		{"a)", ErrUnmatchedCloseParen},
		{"())", ErrGroupNotSingleExpression},
		{"()", ErrGroupNotSingleExpression},
		{"(a|)b", ErrGroupNotSingleExpression},
		{"a|", ErrNotSingleExpression},
		{"|a", ErrMissingOperand},
		{"a||b", ErrNotSingleExpression},
		{"+", ErrMissingOperand},
		{"*", ErrMissingOperand},
		{"?", ErrMissingOperand},
		{"|", ErrMissingOperand},
		{"(*a)", ErrMissingOperand},
		{`a\|b`, ErrNotSingleExpression},
		{`a||\|b`, ErrMissingOperand},
		{`a||\(b`, ErrMissingOperand},
		{`(a||\|b)`, ErrMissingOperand},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			postfix, err := Parse(tt.pattern)
			if err == nil {
				t.Fatalf("Parse(%q) = %v, want error", tt.pattern, FormatTokens(postfix))
			}
			if postfix != nil {
				t.Errorf("Parse(%q) returned partial postfix", tt.pattern)
			}
			if !errors.Is(err, ErrInvalidPattern) {
				t.Errorf("error %v does not wrap ErrInvalidPattern", err)
			}
			var se *Error
			if !errors.As(err, &se) {
				t.Fatalf("error %T is not *Error", err)
			}
			if se.Code != tt.code {
				t.Errorf("Code = %v, want %v", se.Code, tt.code)
			}
			if se.Pattern != tt.pattern {
				t.Errorf("Pattern = %q, want %q", se.Pattern, tt.pattern)
			}
		})
	}
}

func TestError_Error(t *testing.T) {
	err := &Error{Code: ErrUnmatchedCloseParen, Pattern: "a)", Pos: 1}
	want := `invalid pattern "a)": unmatched ')' (token 1)`
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestToPostfix_ErrorPosition(t *testing.T) {
	// tokens: a · b ), so the close paren is token 3
	_, err := ToPostfix(Tokenize("ab)"))
	var se *Error
	if !errors.As(err, &se) {
		t.Fatalf("expected *Error, got %v", err)
	}
	if se.Pos != 3 {
		t.Errorf("Pos = %d, want 3", se.Pos)
	}
}

func TestToPostfix_StarvedOperator(t *testing.T) {
	// a | | \| b: the count balances, but the first Union is emitted with one
	// operand when the second Union arrives at token 2.
	tokens := Tokenize(`a||\|b`)
	if got := FormatTokens(tokens); got != `a | | \| b` {
		t.Fatalf("Tokenize() = %q", got)
	}
	_, err := ToPostfix(tokens)
	var se *Error
	if !errors.As(err, &se) {
		t.Fatalf("expected *Error, got %v", err)
	}
	if se.Code != ErrMissingOperand || se.Pos != 2 {
		t.Errorf("got %v at %d, want %v at 2", se.Code, se.Pos, ErrMissingOperand)
	}
}

// TestParse_PostfixIsEvaluable checks that every accepted postfix stream
// reduces to exactly one operand without underflow.
func TestParse_PostfixIsEvaluable(t *testing.T) {
	patterns := []string{
		"a", "a|b|c", "a(bb)*|b", `.+@.+\.com?`, "((a|b)*c)+", `a||\|b`,
		`a||\(b`, `\|\|`, `a|\(`, `(a)|\|b`, "a**?+", `\(\)`,
	}
	for _, p := range patterns {
		postfix, err := Parse(p)
		if err != nil {
			continue
		}
		depth := 0
		for _, tok := range postfix {
			need := tok.Kind.Operands()
			if depth < need {
				t.Fatalf("Parse(%q) = %s underflows at %v", p, FormatTokens(postfix), tok)
			}
			depth -= need
			depth++
		}
		if depth != 1 {
			t.Errorf("Parse(%q) = %s leaves %d operands", p, FormatTokens(postfix), depth)
		}
	}
}
