package parser

// parseCompoundStatement parses statements up to the closing brace, which is
// left for the caller to consume.
func (p *Parser) parseCompoundStatement(at *Node) *Node {
	for {
		tok := p.peek()
		switch tok.Type {
		case TokenRBrace:
			return at
		case TokenEOF:
			p.errorf(ErrEndOfInput, tok, "expected '}' at the end of compound statement, got %s", tok)
		}
		at = p.parseStatement(at)
	}
}

func (p *Parser) parseStatement(at *Node) *Node {
	tok := p.peek()

	switch {
	case isDataType(tok):
		p.logger.Printf("declaration statement at line %d", tok.Line)
		return p.parseDeclaratorList(p.tree.append(at, p.next()))
	case tok.Is("if"), tok.Is("else"):
		return p.parseSelectionStatement(at)
	case tok.Is("for"), tok.Is("while"):
		return p.parseIterationStatement(at)
	case tok.Is("printf"):
		return p.parsePrintfStatement(at)
	case tok.Is("return"):
		return p.parseReturnStatement(at)
	case tok.Type == TokenIdentifier:
		return p.parseAssignmentStatement(at)
	case tok.Type == TokenEOF:
		p.errorf(ErrEndOfInput, tok, "expected a statement, got %s", tok)
	}

	p.errorf(ErrCategory, tok, "unrecognized statement beginning with %s", tok)
	return nil
}

// parseBody parses the body of a selection or iteration statement: either a
// braced compound statement or a single statement.
func (p *Parser) parseBody(at *Node) *Node {
	if p.peek().Type != TokenLBrace {
		return p.parseStatement(at)
	}

	at = p.tree.append(at, p.next())
	at = p.parseCompoundStatement(at)
	return p.tree.append(at, p.expect(TokenRBrace, "expected '}' to close block"))
}
