package parser

// parseSelectionStatement parses
//
//	if ( condition ) body [ else body ]
//
// An else is only valid directly after the body of an if.
func (p *Parser) parseSelectionStatement(at *Node) *Node {
	kw := p.next()
	if kw.Is("else") {
		p.errorf(ErrStructural, kw, "'else' without a matching 'if'")
	}
	p.logger.Printf("if statement at line %d", kw.Line)

	at = p.tree.append(at, kw)
	at = p.parseCondition(at, "if")
	at = p.parseBody(at)

	if tok, err := p.cursor.peek(); err == nil && tok.Is("else") {
		at = p.tree.append(at, p.next())
		at = p.parseBody(at)
	}

	return at
}

// parseCondition parses a parenthesised boolean expression.
func (p *Parser) parseCondition(at *Node, kw string) *Node {
	at = p.tree.append(at, p.expect(TokenLParen, "expected '(' after "+kw))
	at = p.parseBooleanExpression(at)
	return p.tree.append(at, p.expect(TokenRParen, "expected ')' after "+kw+" condition"))
}

// parseIterationStatement parses
//
//	while ( condition ) body
//	for ( [assignment] ; [condition] ; [assignment] ) body
func (p *Parser) parseIterationStatement(at *Node) *Node {
	kw := p.next()
	p.logger.Printf("%s statement at line %d", kw.Text, kw.Line)

	at = p.tree.append(at, kw)
	if kw.Is("while") {
		at = p.parseCondition(at, "while")
		return p.parseBody(at)
	}

	at = p.tree.append(at, p.expect(TokenLParen, "expected '(' after for"))
	if p.peek().Type != TokenSemicolon {
		at = p.parseAssignmentClause(at)
	}
	at = p.tree.append(at, p.expect(TokenSemicolon, "missing ';' after for initialization"))
	if p.peek().Type != TokenSemicolon {
		at = p.parseBooleanExpression(at)
	}
	at = p.tree.append(at, p.expect(TokenSemicolon, "missing ';' after for condition"))
	if p.peek().Type != TokenRParen {
		at = p.parseAssignmentClause(at)
	}
	at = p.tree.append(at, p.expect(TokenRParen, "expected ')' after for clauses"))
	return p.parseBody(at)
}

// parsePrintfStatement parses
//
//	printf ( "format" { , expression } ) ;
func (p *Parser) parsePrintfStatement(at *Node) *Node {
	at = p.tree.append(at, p.next())
	at = p.tree.append(at, p.expect(TokenLParen, "expected '(' after printf"))

	format := p.next()
	if format.Type != TokenString {
		p.errorf(ErrCategory, format, "expected a string literal as printf format, got %s", format)
	}
	at = p.tree.append(at, format)

	for p.peek().Type == TokenComma {
		at = p.tree.append(at, p.next())
		at = p.parseExpression(at)
	}

	at = p.tree.append(at, p.expect(TokenRParen, "expected ')' after printf arguments"))
	return p.tree.append(at, p.expect(TokenSemicolon, "missing ';'"))
}

// parseReturnStatement parses `return [expression] ;`.
func (p *Parser) parseReturnStatement(at *Node) *Node {
	at = p.tree.append(at, p.next())
	if p.peek().Type != TokenSemicolon {
		at = p.parseExpression(at)
	}
	return p.tree.append(at, p.expect(TokenSemicolon, "missing ';'"))
}

// parseAssignmentStatement parses an assignment or a procedure call, both
// terminated by a semicolon.
func (p *Parser) parseAssignmentStatement(at *Node) *Node {
	if lookahead, ok := p.cursor.lookahead(1); ok && lookahead.Type == TokenLParen {
		at = p.tree.append(at, p.next())
		at = p.parseArguments(at)
	} else {
		at = p.parseAssignmentClause(at)
	}
	return p.tree.append(at, p.expect(TokenSemicolon, "missing ';'"))
}

// parseAssignmentClause parses `name [ '[' index ']' ] = value` without a
// terminator, as used by assignment statements and for loops.
func (p *Parser) parseAssignmentClause(at *Node) *Node {
	target := p.next()
	if target.Type != TokenIdentifier {
		p.errorf(ErrCategory, target, "expected identifier in assignment, got %s", target)
	}
	at = p.tree.append(at, target)

	if p.peek().Type == TokenLBracket {
		at = p.parseIndex(at)
	}

	at = p.tree.append(at, p.expect(TokenAssign, "expected '=' in assignment to "+target.Text))

	if p.peek().Type == TokenString {
		return p.tree.append(at, p.next())
	}
	return p.parseExpression(at)
}
