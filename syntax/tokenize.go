package syntax

// Characters with special meaning when unescaped.
const (
	escapeChar     = '\\'
	openChar       = '('
	closeChar      = ')'
	unionChar      = '|'
	kleeneChar     = '*'
	optionalChar   = '?'
	positiveChar   = '+'
	wildcardChar   = '.'
	reservedChars  = `\()|*?+.`
	nonGroupingOps = "|*?+"
)

func isReserved(c rune) bool {
	for _, r := range reservedChars {
		if c == r {
			return true
		}
	}
	return false
}

// isNonGrouping reports whether c never starts a new operand.
func isNonGrouping(c rune) bool {
	for _, r := range nonGroupingOps {
		if c == r {
			return true
		}
	}
	return false
}

// isTwoOperand reports whether c always expects an operand after it.
func isTwoOperand(c rune) bool {
	return c == unionChar
}

// Tokenize converts a pattern into tokens, inserting Concat between
// adjacent operands. It never fails: structural errors are left for
// ToPostfix.
//
// Implicit concatenation is decided on raw characters, so an escaped '|'
// or '(' still suppresses the Concat that would follow it. A trailing
// unconsumed backslash produces no token.
func Tokenize(pattern string) []Token {
	chars := []rune(pattern)
	tokens := make([]Token, 0, 2*len(chars))

	escaped := false
	for i, c := range chars {
		if i > 0 &&
			!escaped &&
			!isTwoOperand(chars[i-1]) &&
			!isNonGrouping(c) &&
			chars[i-1] != openChar &&
			c != closeChar {
			tokens = append(tokens, Concat)
		}

		if escaped {
			tokens = append(tokens, Letter(c))
			escaped = false
			continue
		}

		switch c {
		case escapeChar:
			escaped = true
		case openChar:
			tokens = append(tokens, OpenParen)
		case closeChar:
			tokens = append(tokens, CloseParen)
		case unionChar:
			tokens = append(tokens, Union)
		case kleeneChar:
			tokens = append(tokens, Kleene)
		case optionalChar:
			tokens = append(tokens, Optional)
		case positiveChar:
			tokens = append(tokens, Positive)
		case wildcardChar:
			tokens = append(tokens, Wildcard)
		default:
			tokens = append(tokens, Letter(c))
		}
	}

	return tokens
}
