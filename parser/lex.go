package parser

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Token is a single lexical unit handed to the parser. Keywords are not
// classified separately: they are identifiers that are recognised by value.
type Token struct {
	Type TokenType
	Text string
	Line int
}

func (t Token) String() string {
	switch {
	case t.Type == TokenEOF:
		return "EOF"
	case t.Type == TokenError:
		return t.Text
	}
	return fmt.Sprintf("%q", t.Text)
}

// Is reports whether t is the identifier word.
func (t Token) Is(word string) bool {
	return t.Type == TokenIdentifier && t.Text == word
}

type TokenType int

const (
	TokenError TokenType = iota
	TokenEOF
	TokenIdentifier
	TokenWholeNumber
	TokenInteger
	TokenDigit
	TokenHexDigit
	TokenString
	TokenChar
	TokenLParen
	TokenRParen
	TokenLBrace
	TokenRBrace
	TokenLBracket
	TokenRBracket
	TokenComma
	TokenSemicolon
	TokenAssign
	TokenPlus
	TokenMinus
	TokenAsterisk
	TokenSlash
	TokenModulo
	TokenLess
	TokenGreater
	TokenLessEqual
	TokenGreaterEqual
	TokenBoolEqual
	TokenBoolNotEqual
	TokenBoolAnd
	TokenBoolOr
	TokenBoolNot
)

var tokenTypeNames = map[TokenType]string{
	TokenError:        "error",
	TokenEOF:          "EOF",
	TokenIdentifier:   "identifier",
	TokenWholeNumber:  "whole number",
	TokenInteger:      "integer",
	TokenDigit:        "digit",
	TokenHexDigit:     "hex digit",
	TokenString:       "string",
	TokenChar:         "character",
	TokenLParen:       "'('",
	TokenRParen:       "')'",
	TokenLBrace:       "'{'",
	TokenRBrace:       "'}'",
	TokenLBracket:     "'['",
	TokenRBracket:     "']'",
	TokenComma:        "','",
	TokenSemicolon:    "';'",
	TokenAssign:       "'='",
	TokenPlus:         "'+'",
	TokenMinus:        "'-'",
	TokenAsterisk:     "'*'",
	TokenSlash:        "'/'",
	TokenModulo:       "'%'",
	TokenLess:         "'<'",
	TokenGreater:      "'>'",
	TokenLessEqual:    "'<='",
	TokenGreaterEqual: "'>='",
	TokenBoolEqual:    "'=='",
	TokenBoolNotEqual: "'!='",
	TokenBoolAnd:      "'&&'",
	TokenBoolOr:       "'||'",
	TokenBoolNot:      "'!'",
}

func (typ TokenType) String() string {
	if name, ok := tokenTypeNames[typ]; ok {
		return name
	}
	return fmt.Sprintf("TokenType(%d)", int(typ))
}

const eof = -1

type stateFn func(*lexer) stateFn

type lexer struct {
	name     string
	input    string
	state    stateFn
	pos      int
	start    int
	width    int
	lastType TokenType
	lastText string
	items    chan Token
}

func (l *lexer) next() rune {
	if l.pos >= len(l.input) {
		l.width = 0
		return eof
	}
	r, w := utf8.DecodeRuneInString(l.input[l.pos:])
	l.width = w
	l.pos += l.width
	return r
}

func (l *lexer) peek() rune {
	r := l.next()
	l.backup()
	return r
}

func (l *lexer) backup() {
	l.pos -= l.width
}

func (l *lexer) lineNumber() int {
	return 1 + strings.Count(l.input[:l.start], "\n")
}

func (l *lexer) emit(t TokenType) {
	l.items <- Token{Type: t, Text: l.input[l.start:l.pos], Line: l.lineNumber()}
	l.lastType = t
	l.lastText = l.input[l.start:l.pos]
	l.start = l.pos
}

func (l *lexer) ignore() {
	l.start = l.pos
}

func (l *lexer) acceptRun(valid string) {
	for strings.IndexRune(valid, l.next()) >= 0 {
	}
	l.backup()
}

func (l *lexer) errorf(format string, args ...interface{}) stateFn {
	l.items <- Token{Type: TokenError, Text: fmt.Sprintf(format, args...), Line: l.lineNumber()}
	return nil
}

func (l *lexer) nextItem() Token {
	return <-l.items
}

func lex(name, input string) *lexer {
	l := &lexer{
		name:     name,
		input:    input,
		items:    make(chan Token),
		lastType: TokenError,
	}
	go l.run()
	return l
}

func (l *lexer) run() {
	for l.state = lexText; l.state != nil; {
		l.state = l.state(l)
	}
}

// Tokenize splits source into tokens, terminated by a single TokenEOF.
func Tokenize(name, source string) ([]Token, error) {
	l := lex(name, source)

	var tokens []Token
	for {
		tok := l.nextItem()
		switch tok.Type {
		case TokenError:
			return nil, &Error{
				Name:   name,
				Kind:   ErrLexical,
				Line:   tok.Line,
				Token:  tok,
				Msg:    tok.Text,
				Status: StatusSyntax,
			}
		case TokenEOF:
			return append(tokens, tok), nil
		}
		tokens = append(tokens, tok)
	}
}

const (
	decimalDigits = "0123456789"
	hexDigits     = "0123456789abcdefABCDEF"
	identChars    = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ_"
)

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || r == '_'
}

// endsOperand reports whether the token typ/text can end an operand, in which
// case a following '-' is a binary minus rather than the sign of a literal.
// Keywords such as return cannot, except for the boolean values.
func endsOperand(typ TokenType, text string) bool {
	switch typ {
	case TokenIdentifier:
		return !IsReserved(text) || text == "TRUE" || text == "FALSE"
	case TokenWholeNumber, TokenInteger, TokenDigit, TokenHexDigit,
		TokenChar, TokenString, TokenRParen, TokenRBracket:
		return true
	}
	return false
}

func lexText(l *lexer) stateFn {
	r := l.peek()
	switch {
	case r == ' ' || r == '\n' || r == '\r' || r == '\t':
		l.acceptRun("\r\n\t ")
		l.ignore()
		return lexText
	case isDigit(r):
		return lexNumber
	case isLetter(r):
		return lexIdentifier
	case r == '"':
		return lexString
	case r == '\'':
		return lexChar
	case r == '-':
		l.next()
		if isDigit(l.peek()) && !endsOperand(l.lastType, l.lastText) {
			l.acceptRun(decimalDigits)
			l.emit(TokenInteger)
			return lexText
		}
		l.emit(TokenMinus)
		return lexText
	case r == '/':
		l.next()
		switch l.peek() {
		case '/':
			return lexLineComment
		case '*':
			return lexBlockComment
		}
		l.emit(TokenSlash)
		return lexText
	case r == '=' || r == '!' || r == '<' || r == '>':
		return lexRelationalOperator
	case r == '&' || r == '|':
		return lexLogicalOperator
	case r == eof:
		l.emit(TokenEOF)
		return nil
	}

	if typ, ok := singleCharTokens[r]; ok {
		l.next()
		l.emit(typ)
		return lexText
	}

	return l.errorf("unknown token: %q", r)
}

var singleCharTokens = map[rune]TokenType{
	'(': TokenLParen,
	')': TokenRParen,
	'{': TokenLBrace,
	'}': TokenRBrace,
	'[': TokenLBracket,
	']': TokenRBracket,
	',': TokenComma,
	';': TokenSemicolon,
	'+': TokenPlus,
	'*': TokenAsterisk,
	'%': TokenModulo,
}

func lexNumber(l *lexer) stateFn {
	if l.next() == '0' && (l.peek() == 'x' || l.peek() == 'X') {
		l.next()
		if strings.IndexRune(hexDigits, l.peek()) < 0 {
			return l.errorf("invalid hex literal %q", l.input[l.start:l.pos])
		}
		l.acceptRun(hexDigits)
		l.emit(TokenHexDigit)
		return lexText
	}
	l.acceptRun(decimalDigits)
	if isLetter(l.peek()) {
		return l.errorf("invalid number %q", l.input[l.start:l.pos+1])
	}
	l.emit(TokenWholeNumber)
	return lexText
}

func lexIdentifier(l *lexer) stateFn {
	l.acceptRun(identChars)
	l.emit(TokenIdentifier)
	return lexText
}

func lexRelationalOperator(l *lexer) stateFn {
	r := l.next()
	equals := l.peek() == '='
	if equals {
		l.next()
	}
	switch {
	case r == '=' && equals:
		l.emit(TokenBoolEqual)
	case r == '=':
		l.emit(TokenAssign)
	case r == '!' && equals:
		l.emit(TokenBoolNotEqual)
	case r == '!':
		l.emit(TokenBoolNot)
	case r == '<' && equals:
		l.emit(TokenLessEqual)
	case r == '<':
		l.emit(TokenLess)
	case r == '>' && equals:
		l.emit(TokenGreaterEqual)
	default:
		l.emit(TokenGreater)
	}
	return lexText
}

func lexLogicalOperator(l *lexer) stateFn {
	r := l.next()
	if l.peek() != r {
		return l.errorf("unexpected %c, expected %c%c", r, r, r)
	}
	l.next()
	if r == '&' {
		l.emit(TokenBoolAnd)
	} else {
		l.emit(TokenBoolOr)
	}
	return lexText
}

func lexString(l *lexer) stateFn {
	l.next()
	for {
		switch l.next() {
		case '\\':
			if r := l.next(); r == eof || r == '\n' {
				return l.errorf("unterminated string literal")
			}
		case '"':
			l.emit(TokenString)
			return lexText
		case eof, '\n':
			return l.errorf("unterminated string literal")
		}
	}
}

func lexChar(l *lexer) stateFn {
	l.next()
	switch r := l.next(); r {
	case '\\':
		if r := l.next(); r == eof || r == '\n' {
			return l.errorf("unterminated character literal")
		}
	case eof, '\n', '\'':
		return l.errorf("invalid character literal")
	}
	if l.next() != '\'' {
		return l.errorf("unterminated character literal")
	}
	l.emit(TokenChar)
	return lexText
}

func lexLineComment(l *lexer) stateFn {
	for r := l.next(); r != eof && r != '\n'; r = l.next() {
	}
	l.ignore()
	return lexText
}

func lexBlockComment(l *lexer) stateFn {
	l.next()
	for {
		switch l.next() {
		case '*':
			if l.peek() == '/' {
				l.next()
				l.ignore()
				return lexText
			}
		case eof:
			return l.errorf("unterminated comment")
		}
	}
}
