package parser

import "strconv"

// parseDeclaratorList parses the declarators and the terminating semicolon
// that follow the type node at. Scalars and arrays may be mixed:
//
//	int a, b[5], c;
//
// The separating commas are consumed but not added to the tree.
func (p *Parser) parseDeclaratorList(at *Node) *Node {
	for {
		name := p.next()
		if name.Type != TokenIdentifier {
			p.errorf(ErrCategory, name, "expected identifier in declaration, got %s", name)
		}
		p.checkNotReserved(name, "a variable name")
		at = p.tree.append(at, name)

		tok, err := p.cursor.advance()
		if err != nil {
			break
		}
		if tok.Type == TokenLBracket {
			at = p.parseArraySize(p.tree.append(at, tok))
			if tok, err = p.cursor.advance(); err != nil {
				break
			}
		}
		if tok.Type != TokenComma {
			p.cursor.rewind(1)
			break
		}
	}

	return p.tree.append(at, p.expect(TokenSemicolon, "missing ';'"))
}

// parseArraySize parses the size and closing bracket of an array declarator.
// The size is either a name or a literal greater than zero.
func (p *Parser) parseArraySize(at *Node) *Node {
	size := p.next()
	switch {
	case size.Type == TokenIdentifier:
		p.checkNotReserved(size, "an array size")
	case !isPositiveLiteral(size):
		p.errorf(ErrSemantic, size, "array declaration size must be a positive integer, got %s", size)
	}
	at = p.tree.append(at, size)

	return p.tree.append(at, p.expect(TokenRBracket, "incomplete bracket: expected ']'"))
}

func isPositiveLiteral(tok Token) bool {
	if !isNumericLiteral(tok.Type) {
		return false
	}
	base := 10
	if tok.Type == TokenHexDigit {
		base = 0
	}
	n, err := strconv.ParseInt(tok.Text, base, 64)
	return err == nil && n > 0
}
