package parser

// parseExpression parses either a boolean or a numerical expression,
// depending on the first token. A numerical expression may be followed by a
// comparison and further conditions, as in `x = a < b && c;`.
func (p *Parser) parseExpression(at *Node) *Node {
	tok := p.peek()
	if isBooleanOperator(tok.Type) || isBooleanValue(tok) {
		return p.parseBooleanExpression(at)
	}
	if tok.Type == TokenLParen && p.parenthesizedCondition() {
		return p.parseBooleanExpression(at)
	}

	at = p.parseNumericalExpression(at)

	if tok, err := p.cursor.peek(); err == nil && isComparisonOperator(tok.Type) {
		at = p.tree.append(at, p.next())
		at = p.parseNumericalExpression(at)
	}
	return p.parseConnective(at)
}

// parseNumericalExpression parses an operand or a parenthesised numerical
// expression, optionally followed by an operator and another numerical
// expression. There are no precedence levels.
func (p *Parser) parseNumericalExpression(at *Node) *Node {
	if p.peek().Type == TokenLParen {
		at = p.tree.append(at, p.next())
		at = p.parseNumericalExpression(at)
		at = p.tree.append(at, p.expect(TokenRParen, "expected ')'"))
	} else {
		at = p.parseNumericalOperand(at)
	}

	if tok, err := p.cursor.peek(); err == nil && isNumericalOperator(tok.Type) {
		at = p.tree.append(at, p.next())
		return p.parseNumericalExpression(at)
	}
	return at
}

func (p *Parser) parseNumericalOperand(at *Node) *Node {
	tok := p.next()

	switch {
	case isNumericLiteral(tok.Type), tok.Type == TokenChar:
		return p.tree.append(at, tok)
	case tok.Type == TokenIdentifier:
		at = p.tree.append(at, tok)
		if next, err := p.cursor.peek(); err == nil {
			switch next.Type {
			case TokenLBracket:
				at = p.parseIndex(at)
			case TokenLParen:
				at = p.parseArguments(at)
			}
		}
		return at
	}

	p.errorf(ErrCategory, tok, "expected a numerical operand, found %s", tok)
	return nil
}

// parseIndex parses `[ numerical-expression ]` after an array name.
func (p *Parser) parseIndex(at *Node) *Node {
	at = p.tree.append(at, p.expect(TokenLBracket, "expected '['"))
	at = p.parseNumericalExpression(at)
	return p.tree.append(at, p.expect(TokenRBracket, "incomplete bracket: expected ']'"))
}

// parseArguments parses the parenthesised argument list of a call.
func (p *Parser) parseArguments(at *Node) *Node {
	at = p.tree.append(at, p.expect(TokenLParen, "expected '('"))

	if p.peek().Type != TokenRParen {
		at = p.parseExpression(at)
		for p.peek().Type == TokenComma {
			at = p.tree.append(at, p.next())
			at = p.parseExpression(at)
		}
	}

	return p.tree.append(at, p.expect(TokenRParen, "expected ')' after arguments"))
}

// parseBooleanExpression parses a condition: a negation, a boolean name, call
// or array element optionally joined to further conditions, a parenthesised
// condition, or a comparison of two numerical expressions.
func (p *Parser) parseBooleanExpression(at *Node) *Node {
	tok := p.peek()

	switch {
	case tok.Type == TokenBoolNot:
		at = p.tree.append(at, p.next())
		return p.parseBooleanExpression(at)
	case tok.Type == TokenIdentifier:
		ident := p.next()
		follow, err := p.cursor.peek()
		switch {
		case err == nil && (follow.Type == TokenLParen || follow.Type == TokenLBracket):
			p.cursor.rewind(1)
			return p.parseOperandCondition(at)
		case err == nil && startsComparisonOperand(follow.Type):
			// the name is the left operand of a comparison.
			p.cursor.rewind(1)
			return p.parseComparison(at)
		}
		at = p.tree.append(at, ident)
		return p.parseConnective(at)
	case tok.Type == TokenLParen && !p.parenthesizedOperand():
		at = p.tree.append(at, p.next())
		at = p.parseBooleanExpression(at)
		at = p.tree.append(at, p.expect(TokenRParen, "expected ')'"))
		return p.parseConnective(at)
	}

	return p.parseComparison(at)
}

// parseComparison parses `numerical cmp numerical` and any conditions joined
// to it.
func (p *Parser) parseComparison(at *Node) *Node {
	return p.parseComparisonTail(p.parseNumericalExpression(at))
}

// parseOperandCondition parses a condition led by a call or an array element.
// Without a following operator the operand is a condition on its own, as in
// `if (is_digit(c))`.
func (p *Parser) parseOperandCondition(at *Node) *Node {
	at = p.parseNumericalOperand(at)

	tok, err := p.cursor.peek()
	if err != nil || !(isNumericalOperator(tok.Type) || isComparisonOperator(tok.Type)) {
		return p.parseConnective(at)
	}
	if isNumericalOperator(tok.Type) {
		at = p.tree.append(at, p.next())
		at = p.parseNumericalExpression(at)
	}
	return p.parseComparisonTail(at)
}

func (p *Parser) parseComparisonTail(at *Node) *Node {
	op := p.next()
	if !isComparisonOperator(op.Type) {
		p.errorf(ErrCategory, op, "expected a comparison operator, found %s", op)
	}
	at = p.tree.append(at, op)
	at = p.parseNumericalExpression(at)

	return p.parseConnective(at)
}

func (p *Parser) parseConnective(at *Node) *Node {
	if tok, err := p.cursor.peek(); err == nil && isConnective(tok.Type) {
		at = p.tree.append(at, p.next())
		return p.parseBooleanExpression(at)
	}
	return at
}

// startsComparisonOperand reports whether a name followed by a token of type
// typ is the left operand of a comparison rather than a boolean name.
func startsComparisonOperand(typ TokenType) bool {
	return isNumericalOperator(typ) || isComparisonOperator(typ)
}

// parenthesizedOperand reports whether the parenthesis at the cursor encloses
// a numerical operand, i.e. whether its matching closing parenthesis is
// followed by an arithmetic or comparison operator.
func (p *Parser) parenthesizedOperand() bool {
	depth := 0
	for i := 0; ; i++ {
		tok, ok := p.cursor.lookahead(i)
		if !ok || tok.Type == TokenEOF {
			return false
		}
		switch tok.Type {
		case TokenLParen:
			depth++
		case TokenRParen:
			depth--
			if depth == 0 {
				follow, ok := p.cursor.lookahead(i + 1)
				return ok && (isNumericalOperator(follow.Type) || isComparisonOperator(follow.Type))
			}
		}
	}
}

// parenthesizedCondition reports whether the parenthesis at the cursor
// encloses a condition, i.e. a comparison, a connective or a negation that is
// not itself the operand of arithmetic.
func (p *Parser) parenthesizedCondition() bool {
	if p.parenthesizedOperand() {
		return false
	}

	depth := 0
	for i := 0; ; i++ {
		tok, ok := p.cursor.lookahead(i)
		if !ok || tok.Type == TokenEOF {
			return false
		}
		switch {
		case tok.Type == TokenLParen:
			depth++
		case tok.Type == TokenRParen:
			depth--
			if depth == 0 {
				return false
			}
		case isComparisonOperator(tok.Type), isConnective(tok.Type), tok.Type == TokenBoolNot:
			return true
		}
	}
}
