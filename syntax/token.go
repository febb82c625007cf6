// Package syntax turns pattern strings into validated postfix token streams.
//
// The supported syntax is deliberately small: literal characters, the
// wildcard '.', union '|', the quantifiers '*', '+' and '?', grouping
// parentheses and backslash escaping. Concatenation is implicit in the
// pattern and made explicit by Tokenize.
//
// Parse runs the whole front end:
//
//	postfix, err := syntax.Parse(`a(bb)*|b`)
//	if err != nil {
//	    // err is a *syntax.Error
//	}
//	fmt.Println(syntax.FormatTokens(postfix)) // a b b · * · b |
package syntax

import (
	"fmt"
	"strings"
)

// Kind identifies the variant of a Token.
type Kind uint8

const (
	// KindLetter matches exactly the character in Token.Char.
	KindLetter Kind = iota

	// KindWildcard matches any single character.
	KindWildcard

	// KindOpenParen opens a group. Never appears in postfix output.
	KindOpenParen

	// KindCloseParen closes a group. Never appears in postfix output.
	KindCloseParen

	// KindConcat is the implicit binary concatenation operator.
	KindConcat

	// KindUnion is the binary alternation operator '|'.
	KindUnion

	// KindKleene is the unary zero-or-more operator '*'.
	KindKleene

	// KindPositive is the unary one-or-more operator '+'.
	KindPositive

	// KindOptional is the unary zero-or-one operator '?'.
	KindOptional
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindLetter:
		return "Letter"
	case KindWildcard:
		return "Wildcard"
	case KindOpenParen:
		return "OpenParen"
	case KindCloseParen:
		return "CloseParen"
	case KindConcat:
		return "Concat"
	case KindUnion:
		return "Union"
	case KindKleene:
		return "Kleene"
	case KindPositive:
		return "Positive"
	case KindOptional:
		return "Optional"
	default:
		return fmt.Sprintf("Unknown(%d)", k)
	}
}

// Token is a single lexical unit of a pattern.
// Char is meaningful only for KindLetter.
type Token struct {
	Kind Kind
	Char rune
}

// Token values for the variants that carry no payload.
var (
	Wildcard   = Token{Kind: KindWildcard}
	OpenParen  = Token{Kind: KindOpenParen}
	CloseParen = Token{Kind: KindCloseParen}
	Concat     = Token{Kind: KindConcat}
	Union      = Token{Kind: KindUnion}
	Kleene     = Token{Kind: KindKleene}
	Positive   = Token{Kind: KindPositive}
	Optional   = Token{Kind: KindOptional}
)

// Letter returns a token matching exactly c.
func Letter(c rune) Token {
	return Token{Kind: KindLetter, Char: c}
}

// IsOperator reports whether the token is a unary or binary operator.
func (t Token) IsOperator() bool {
	switch t.Kind {
	case KindConcat, KindUnion, KindKleene, KindPositive, KindOptional:
		return true
	}
	return false
}

// String returns a debug representation, e.g. Letter('a') or Union.
func (t Token) String() string {
	if t.Kind == KindLetter {
		return fmt.Sprintf("Letter(%q)", t.Char)
	}
	return t.Kind.String()
}

// Symbol returns the token as it would be written in a pattern, with
// Concat rendered as '·'. Letters that collide with operators are escaped.
func (t Token) Symbol() string {
	switch t.Kind {
	case KindLetter:
		if isReserved(t.Char) {
			return `\` + string(t.Char)
		}
		return string(t.Char)
	case KindWildcard:
		return "."
	case KindOpenParen:
		return "("
	case KindCloseParen:
		return ")"
	case KindConcat:
		return "·"
	case KindUnion:
		return "|"
	case KindKleene:
		return "*"
	case KindPositive:
		return "+"
	case KindOptional:
		return "?"
	default:
		return "?" + t.Kind.String()
	}
}

// FormatTokens renders tokens by Symbol, separated by spaces.
func FormatTokens(tokens []Token) string {
	var sb strings.Builder
	for i, t := range tokens {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(t.Symbol())
	}
	return sb.String()
}

// Associativity of a binary operator. Every operator in this grammar is
// left-associative; Right exists so the tie-break rule reads naturally.
type Associativity uint8

const (
	Left Associativity = iota
	Right
)

// maxPrecedence is the rank of every token absent from the operator table,
// so operands never block popping.
const maxPrecedence = 4

// Precedence returns the rank and associativity of the token kind.
// Higher ranks bind tighter.
func (k Kind) Precedence() (uint8, Associativity) {
	switch k {
	case KindKleene, KindPositive, KindOptional, KindWildcard:
		return 3, Left
	case KindConcat:
		return 2, Left
	case KindUnion:
		return 1, Left
	default:
		return maxPrecedence, Left
	}
}

// bindsBefore reports whether an operator of kind top already on the stack
// must be emitted before pushing incoming.
func bindsBefore(top, incoming Kind) bool {
	p, _ := top.Precedence()
	q, assoc := incoming.Precedence()
	return p > q || (p == q && assoc == Left)
}

// Operands returns how many operands an operator consumes: 2 for Concat and
// Union, 1 for quantifiers, 0 for everything else.
func (k Kind) Operands() int {
	switch k {
	case KindConcat, KindUnion:
		return 2
	case KindKleene, KindPositive, KindOptional:
		return 1
	default:
		return 0
	}
}

// countDelta is the change in assembled units when a token is emitted.
func countDelta(k Kind) int {
	switch k {
	case KindLetter, KindWildcard, KindCloseParen:
		return 1
	case KindConcat, KindUnion:
		return -1
	default:
		return 0
	}
}
