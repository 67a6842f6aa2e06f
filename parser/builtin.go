package parser

var reservedWords = map[string]bool{
	"char":      true,
	"int":       true,
	"bool":      true,
	"void":      true,
	"function":  true,
	"procedure": true,
	"main":      true,
	"return":    true,
	"printf":    true,
	"getchar":   true,
	"if":        true,
	"else":      true,
	"for":       true,
	"while":     true,
	"TRUE":      true,
	"FALSE":     true,
}

var dataTypes = map[string]bool{
	"char": true,
	"int":  true,
	"bool": true,
}

// IsReserved reports whether word may not be used as a declared name.
func IsReserved(word string) bool {
	return reservedWords[word]
}

// ReservedWords returns the reserved words in no particular order.
func ReservedWords() []string {
	words := make([]string, 0, len(reservedWords))
	for w := range reservedWords {
		words = append(words, w)
	}
	return words
}

func isDataType(tok Token) bool {
	return tok.Type == TokenIdentifier && dataTypes[tok.Text]
}

func isBooleanValue(tok Token) bool {
	if tok.Type != TokenIdentifier {
		return false
	}
	switch tok.Text {
	case "TRUE", "FALSE", "true", "false":
		return true
	}
	return false
}

func isBooleanOperator(typ TokenType) bool {
	return typ == TokenBoolAnd ||
		typ == TokenBoolOr ||
		typ == TokenBoolNot ||
		typ == TokenBoolEqual ||
		typ == TokenBoolNotEqual
}

// isConnective reports whether typ joins two conditions.
func isConnective(typ TokenType) bool {
	return typ == TokenBoolAnd || typ == TokenBoolOr
}

func isNumericalOperator(typ TokenType) bool {
	return typ == TokenPlus ||
		typ == TokenMinus ||
		typ == TokenAsterisk ||
		typ == TokenSlash ||
		typ == TokenModulo
}

func isComparisonOperator(typ TokenType) bool {
	return typ == TokenLess ||
		typ == TokenGreater ||
		typ == TokenLessEqual ||
		typ == TokenGreaterEqual ||
		typ == TokenBoolEqual ||
		typ == TokenBoolNotEqual
}

func isNumericLiteral(typ TokenType) bool {
	return typ == TokenWholeNumber ||
		typ == TokenInteger ||
		typ == TokenDigit ||
		typ == TokenHexDigit
}
