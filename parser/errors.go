package parser

import "fmt"

// ErrorKind classifies why a parse was aborted.
type ErrorKind int

const (
	// ErrLexical is reported by Tokenize for text that forms no token.
	ErrLexical ErrorKind = iota + 1
	// ErrStructural means expected punctuation or a keyword is missing.
	ErrStructural
	// ErrCategory means a token of the wrong kind was found, e.g. a number
	// where an identifier is required.
	ErrCategory
	// ErrSemantic covers the inline checks: reserved words used as declared
	// names and invalid array sizes.
	ErrSemantic
	// ErrEndOfInput means the tokens ran out in the middle of a construct.
	ErrEndOfInput
)

func (k ErrorKind) String() string {
	switch k {
	case ErrLexical:
		return "lexical error"
	case ErrStructural:
		return "syntax error"
	case ErrCategory:
		return "unexpected token"
	case ErrSemantic:
		return "invalid declaration"
	case ErrEndOfInput:
		return "unexpected end of input"
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// Exit statuses carried by Error. Most failures use StatusSyntax; the
// function heading uses its own values so that a bad return type and a bad
// function name can be told apart.
const (
	StatusSyntax       = 1
	StatusReturnType   = 10
	StatusFunctionName = 20
)

// Error describes the first violation found in the input. Parsing stops at
// the first Error; there is no recovery.
type Error struct {
	Name   string // source name, may be empty
	Kind   ErrorKind
	Line   int
	Token  Token // offending token; the last token read at end of input
	Msg    string
	Status int
}

func (e *Error) Error() string {
	if e.Name == "" {
		return fmt.Sprintf("line %d: %s", e.Line, e.Msg)
	}
	return fmt.Sprintf("%s:%d: %s", e.Name, e.Line, e.Msg)
}
