package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenCursor(t *testing.T) {
	tokens := []Token{
		{Type: TokenIdentifier, Text: "int", Line: 1},
		{Type: TokenIdentifier, Text: "x", Line: 1},
		{Type: TokenSemicolon, Text: ";", Line: 2},
	}
	c := newTokenCursor(tokens)

	tok, err := c.peek()
	require.NoError(t, err)
	assert.Equal(t, "int", tok.Text)

	tok, err = c.advance()
	require.NoError(t, err)
	assert.Equal(t, "int", tok.Text)

	tok, err = c.advance()
	require.NoError(t, err)
	assert.Equal(t, "x", tok.Text)
	assert.Equal(t, "x", c.last().Text)

	c.rewind(2)
	tok, err = c.peek()
	require.NoError(t, err)
	assert.Equal(t, "int", tok.Text)

	la, ok := c.lookahead(2)
	require.True(t, ok)
	assert.Equal(t, TokenSemicolon, la.Type)
	_, ok = c.lookahead(3)
	assert.False(t, ok)

	for i := 0; i < 3; i++ {
		_, err = c.advance()
		require.NoError(t, err)
	}
	assert.True(t, c.done())

	_, err = c.peek()
	assert.ErrorIs(t, err, errEndOfInput)
	_, err = c.advance()
	assert.ErrorIs(t, err, errEndOfInput)
	assert.Equal(t, 2, c.last().Line)

	assert.Panics(t, func() { c.rewind(4) })
}

func TestTokenCursorDoneAtEOF(t *testing.T) {
	c := newTokenCursor([]Token{{Type: TokenIdentifier, Text: "x"}, {Type: TokenEOF}})
	assert.False(t, c.done())
	_, err := c.advance()
	require.NoError(t, err)
	assert.True(t, c.done())

	empty := newTokenCursor(nil)
	assert.True(t, empty.done())
	assert.Equal(t, TokenEOF, empty.last().Type)
}
