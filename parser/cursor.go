package parser

import "errors"

var errEndOfInput = errors.New("unexpected end of input")

// tokenCursor is a forward-only view over a token slice. rewind only undoes a
// fixed amount of lookahead taken by the grammar rule that calls it.
type tokenCursor struct {
	tokens []Token
	pos    int
}

func newTokenCursor(tokens []Token) *tokenCursor {
	return &tokenCursor{tokens: tokens}
}

func (c *tokenCursor) peek() (Token, error) {
	if c.pos >= len(c.tokens) {
		return Token{}, errEndOfInput
	}
	return c.tokens[c.pos], nil
}

func (c *tokenCursor) advance() (Token, error) {
	tok, err := c.peek()
	if err != nil {
		return tok, err
	}
	c.pos++
	return tok, nil
}

func (c *tokenCursor) rewind(n int) {
	if n < 0 || n > c.pos {
		panic(errors.New("token cursor rewound past start of input"))
	}
	c.pos -= n
}

// lookahead returns the token i positions past the current one.
func (c *tokenCursor) lookahead(i int) (Token, bool) {
	if c.pos+i >= len(c.tokens) {
		return Token{}, false
	}
	return c.tokens[c.pos+i], true
}

// last returns the most recently consumed token, or the final token if the
// cursor has not moved yet.
func (c *tokenCursor) last() Token {
	switch {
	case len(c.tokens) == 0:
		return Token{Type: TokenEOF}
	case c.pos == 0:
		return c.tokens[0]
	}
	return c.tokens[c.pos-1]
}

func (c *tokenCursor) done() bool {
	return c.pos >= len(c.tokens) || c.tokens[c.pos].Type == TokenEOF
}
