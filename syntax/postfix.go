package syntax

// ToPostfix reorders tokens into postfix form with a shunting-yard pass and
// proves along the way that they form exactly one well-formed expression.
//
// The proof tracks count, the number of complete operands assembled at the
// current group depth. Operands add one, binary operators consume two and
// produce one, quantifiers consume and produce one. Entering a group saves
// the count; leaving it requires the group to have reduced to exactly one
// operand, restores the count and adds the group as one operand.
//
// Alongside count, depth tracks the operand stack a postfix evaluator would
// hold. An escaped '|' or '(' suppresses the Concat after it, which can
// leave count balanced while an operator lacks operands, as in `a||\|b`.
// Such streams are rejected with ErrMissingOperand at the first starved
// operator, unless the count check reports a failure of its own.
//
// The returned error is an *Error with an empty Pattern; Parse fills it in.
func ToPostfix(tokens []Token) ([]Token, error) {
	operators := make([]Token, 0, len(tokens)/2+1)
	postfix := make([]Token, 0, len(tokens))

	count := 0
	var saved []int

	depth := 0
	starved := -1

	emit := func(t Token, pos int) {
		postfix = append(postfix, t)
		count += countDelta(t.Kind)

		if !t.IsOperator() {
			depth++
			return
		}
		need := t.Kind.Operands()
		if depth < need {
			if starved < 0 {
				starved = pos
			}
			depth = need
		}
		depth -= need - 1
	}

	for pos, tok := range tokens {
		switch tok.Kind {
		case KindOpenParen:
			saved = append(saved, count)
			count = 0
			operators = append(operators, tok)

		case KindCloseParen:
			if len(saved) == 0 {
				return nil, &Error{Code: ErrUnmatchedCloseParen, Pos: pos}
			}
			for len(operators) > 0 && operators[len(operators)-1].Kind != KindOpenParen {
				emit(operators[len(operators)-1], pos)
				operators = operators[:len(operators)-1]
			}
			if count != 1 {
				return nil, &Error{Code: ErrGroupNotSingleExpression, Pos: pos}
			}
			// the open paren is on top: every open pushed one saved count
			operators = operators[:len(operators)-1]

			count = saved[len(saved)-1]
			saved = saved[:len(saved)-1]
			count += countDelta(KindCloseParen)

		case KindUnion, KindConcat, KindKleene, KindPositive, KindOptional:
			if count <= 0 {
				return nil, &Error{Code: ErrMissingOperand, Pos: pos}
			}
			for len(operators) > 0 {
				top := operators[len(operators)-1]
				if top.Kind == KindOpenParen || !bindsBefore(top.Kind, tok.Kind) {
					break
				}
				emit(top, pos)
				operators = operators[:len(operators)-1]
			}
			operators = append(operators, tok)

		case KindLetter, KindWildcard:
			emit(tok, pos)
		}
	}

	for len(operators) > 0 {
		emit(operators[len(operators)-1], len(tokens))
		operators = operators[:len(operators)-1]
	}

	if len(saved) > 0 {
		return nil, &Error{Code: ErrUnmatchedOpenParen, Pos: len(tokens)}
	}
	if count != 1 {
		return nil, &Error{Code: ErrNotSingleExpression, Pos: len(tokens)}
	}
	if starved >= 0 {
		return nil, &Error{Code: ErrMissingOperand, Pos: starved}
	}
	if depth != 1 {
		return nil, &Error{Code: ErrNotSingleExpression, Pos: len(tokens)}
	}

	return postfix, nil
}

// Parse tokenizes and validates pattern, returning its postfix form.
// Any failure is returned as an *Error.
func Parse(pattern string) ([]Token, error) {
	postfix, err := ToPostfix(Tokenize(pattern))
	if err != nil {
		if se, ok := err.(*Error); ok {
			se.Pattern = pattern
		}
		return nil, err
	}
	return postfix, nil
}
