package parser

import (
	"fmt"
	"io"
	"log"
)

// Parser turns a token sequence into a concrete syntax tree. A Parser is
// good for a single call to Parse.
type Parser struct {
	name   string
	cursor *tokenCursor
	tree   treeBuilder
	logger *log.Logger
}

func NewParser(name string, tokens []Token) *Parser {
	return &Parser{
		name:   name,
		cursor: newTokenCursor(tokens),
		logger: log.New(io.Discard, "parser ", log.Lshortfile),
	}
}

func (p *Parser) SetLogOutput(w io.Writer) {
	p.logger.SetOutput(w)
}

// Parse builds the tree. On error, no tree is returned and err is an *Error.
func (p *Parser) Parse() (root *Node, err error) {
	defer p.recover(&err)
	p.parseProgram()
	return p.tree.root, nil
}

// Parse parses tokens as a complete program.
func Parse(name string, tokens []Token) (*Node, error) {
	return NewParser(name, tokens).Parse()
}

// ParseSource tokenizes source and parses the result.
func ParseSource(name, source string) (*Node, error) {
	tokens, err := Tokenize(name, source)
	if err != nil {
		return nil, err
	}
	return Parse(name, tokens)
}

func (p *Parser) recover(errp *error) {
	e := recover()
	if e != nil {
		// only parse errors are reported; runtime errors and misuse of the
		// cursor or tree builder are rethrown
		err, ok := e.(*Error)
		if !ok {
			panic(e)
		}
		*errp = err
	}
}

func (p *Parser) fail(kind ErrorKind, status int, tok Token, fmtstr string, args ...interface{}) {
	panic(&Error{
		Name:   p.name,
		Kind:   kind,
		Line:   tok.Line,
		Token:  tok,
		Msg:    fmt.Sprintf(fmtstr, args...),
		Status: status,
	})
}

func (p *Parser) errorf(kind ErrorKind, tok Token, fmtstr string, args ...interface{}) {
	p.fail(kind, StatusSyntax, tok, fmtstr, args...)
}

func (p *Parser) endOfInput(fmtstr string, args ...interface{}) {
	p.errorf(ErrEndOfInput, p.cursor.last(), fmtstr, args...)
}

func (p *Parser) peek() Token {
	tok, err := p.cursor.peek()
	if err != nil {
		p.endOfInput("%v", err)
	}
	return tok
}

func (p *Parser) next() Token {
	tok, err := p.cursor.advance()
	if err != nil {
		p.endOfInput("%v", err)
	}
	return tok
}

// expect consumes the next token and requires it to be of type typ. what
// describes the expectation, e.g. "missing ';'".
func (p *Parser) expect(typ TokenType, what string) Token {
	tok, err := p.cursor.advance()
	if err != nil {
		p.endOfInput("%s at end of input", what)
	}
	if tok.Type != typ {
		kind := ErrStructural
		if tok.Type == TokenEOF {
			kind = ErrEndOfInput
		}
		p.errorf(kind, tok, "%s, got %s", what, tok)
	}
	return tok
}

func (p *Parser) checkNotReserved(tok Token, use string) {
	if IsReserved(tok.Text) {
		p.errorf(ErrSemantic, tok, "reserved word %q cannot be used for %s", tok.Text, use)
	}
}

// parseProgram reads global declarations, procedures and functions until the
// input is exhausted. Each construct opens a subtree below the last node of
// the one before it.
func (p *Parser) parseProgram() {
	var at *Node

	for !p.cursor.done() {
		tok := p.next()

		switch {
		case isDataType(tok):
			p.logger.Printf("global declaration at line %d", tok.Line)
			at = p.parseDeclaratorList(p.tree.open(at, tok))
		case tok.Is("procedure"):
			at = p.parseProcedure(at)
		case tok.Is("function"):
			at = p.parseFunction(at)
		default:
			p.errorf(ErrStructural, tok, "invalid syntax in global scope: %s", tok)
		}
	}
}

func (p *Parser) parseProcedure(at *Node) *Node {
	name := p.next()
	if name.Type != TokenIdentifier {
		p.errorf(ErrCategory, name, "expected an identifier for the procedure name, got %s", name)
	}
	p.logger.Printf("procedure %s at line %d", name.Text, name.Line)

	sig := p.tree.open(at, name)
	return p.parseRoutine(sig, "procedure")
}

func (p *Parser) parseFunction(at *Node) *Node {
	returnType := p.next()
	if !isDataType(returnType) && !returnType.Is("void") {
		p.fail(ErrCategory, StatusReturnType, returnType, "expected a return type for the function, got %s", returnType)
	}

	name := p.next()
	if name.Type != TokenIdentifier {
		p.fail(ErrCategory, StatusFunctionName, name, "expected an identifier for the function name, got %s", name)
	}
	p.logger.Printf("function %s at line %d", name.Text, name.Line)

	head := p.tree.open(at, returnType)
	sig := p.tree.append(head, name)
	return p.parseRoutine(sig, "function")
}

// parseRoutine parses everything after the name of a procedure or function.
// Parameters end up as the first child of sig.
func (p *Parser) parseRoutine(sig *Node, kind string) *Node {
	at := p.tree.append(sig, p.expect(TokenLParen, fmt.Sprintf("expected '(' after %s name", kind)))

	if p.peek().Is("void") {
		at = p.tree.append(at, p.next())
	} else if params := p.parseParameterList(); params != nil {
		p.tree.graft(sig, params)
	}

	at = p.tree.append(at, p.expect(TokenRParen, "expected ')' after parameter list"))
	at = p.tree.append(at, p.expect(TokenLBrace, fmt.Sprintf("expected '{' to start the %s body", kind)))
	at = p.parseCompoundStatement(at)
	return p.tree.append(at, p.expect(TokenRBrace, fmt.Sprintf("expected '}' to end the %s", kind)))
}

// parseParameterList parses `type name {, type name}` up to, but not
// including, the closing parenthesis. The pairs are returned as a detached
// chain; commas are not part of it.
func (p *Parser) parseParameterList() *Node {
	if p.peek().Type == TokenRParen {
		return nil
	}

	var head, tail *Node

	for {
		typ := p.next()
		if !isDataType(typ) {
			p.errorf(ErrCategory, typ, "expected a data type in parameter list, got %s", typ)
		}

		name := p.next()
		if name.Type != TokenIdentifier {
			p.errorf(ErrCategory, name, "expected an identifier for parameter name, got %s", name)
		}
		p.checkNotReserved(name, "a parameter name")

		typeNode := &Node{Token: typ, Sibling: &Node{Token: name}}
		if head == nil {
			head = typeNode
		} else {
			tail.Sibling = typeNode
		}
		tail = typeNode.Sibling

		if p.peek().Type != TokenComma {
			break
		}
		p.next()
	}

	return head
}
