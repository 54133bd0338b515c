package tokenizer

import (
	"errors"
	"fmt"
)

// Sentinel errors
var (
	ErrUnrecognizedCharacter = errors.New("unrecognized character")
	ErrUnterminatedString    = errors.New("unterminated string")
	ErrMalformedNumber       = errors.New("malformed numeric literal")
)

// TokenType represents the type of a token
type TokenType int

const (
	// Literals and words
	NUMBER TokenType = iota
	STRING
	IDENTIFIER
	KEYWORD

	// Arithmetic operators
	OP_ADD // +
	OP_SUB // -
	OP_MUL // *
	OP_DIV // /

	// Comparison operators
	OP_EQ  // ==
	OP_NEQ // !=
	OP_LT  // <
	OP_GT  // >
	OP_LTE // <=
	OP_GTE // >=
)

// String returns the string representation of TokenType
func (t TokenType) String() string {
	switch t {
	case NUMBER:
		return "NUMBER"
	case STRING:
		return "STRING"
	case IDENTIFIER:
		return "IDENTIFIER"
	case KEYWORD:
		return "KEYWORD"
	case OP_ADD:
		return "OP_ADD"
	case OP_SUB:
		return "OP_SUB"
	case OP_MUL:
		return "OP_MUL"
	case OP_DIV:
		return "OP_DIV"
	case OP_EQ:
		return "OP_EQ"
	case OP_NEQ:
		return "OP_NEQ"
	case OP_LT:
		return "OP_LT"
	case OP_GT:
		return "OP_GT"
	case OP_LTE:
		return "OP_LTE"
	case OP_GTE:
		return "OP_GTE"
	default:
		return "UNKNOWN"
	}
}

// Position represents a position in the source code
type Position struct {
	Line   int // 1-based
	Column int // 0-based rune index within the trimmed line
}

// Token represents a token. Tokens are immutable once created and are only
// ever produced by the tokenizer.
type Token struct {
	Type     TokenType
	Value    string  // literal text; uppercased keyword name for KEYWORD
	Number   float64 // parsed value, set only when Type is NUMBER
	Position Position
}

// String returns the string representation of Token
func (t Token) String() string {
	return fmt.Sprintf("%s %q L%d:C%d", t.Type, t.Value, t.Position.Line, t.Position.Column)
}
