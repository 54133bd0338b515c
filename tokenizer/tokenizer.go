// Package tokenizer turns SentryData rule source into a token stream.
//
// Scanning is line oriented: strings never span lines, and a `//` comment is
// only recognized when it is the first content on a line. Lexical problems
// never abort the scan; they are reported as diagnostics and scanning resumes
// with the next character.
package tokenizer

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/sentrydata/sentrydata"
)

// keywords is the fixed reserved-word set. Matching is case-insensitive;
// the uppercased name is what a KEYWORD token carries.
var keywords = map[string]struct{}{
	"AND": {}, "OR": {}, "NOT": {},
	"IF": {}, "THEN": {}, "ELSE": {}, "ENDIF": {},
	"DELETE": {}, "MODIFY": {}, "EXTRACT": {}, "FILTER": {},
	"LOAD": {}, "SAVE": {},
	"DUP": {}, "DROP": {}, "SWAP": {}, "PRINT": {},
}

// Two-character operators are matched before one-character operators, so
// "<=" never lexes as OP_LT followed by a stray '='.
var twoCharOperators = map[string]TokenType{
	"==": OP_EQ,
	"!=": OP_NEQ,
	"<=": OP_LTE,
	">=": OP_GTE,
}

var oneCharOperators = map[rune]TokenType{
	'+': OP_ADD,
	'-': OP_SUB,
	'*': OP_MUL,
	'/': OP_DIV,
	'<': OP_LT,
	'>': OP_GT,
}

// Tokenizer scans SentryData source text, one line at a time.
type Tokenizer struct {
	input string
}

// New creates a Tokenizer for the given source text.
func New(input string) *Tokenizer {
	return &Tokenizer{input: input}
}

// Tokenize is a convenience wrapper around New(source).Tokenize().
func Tokenize(source string) ([]Token, []sentrydata.Diagnostic) {
	return New(source).Tokenize()
}

// Tokenize scans the whole input and returns the token sequence together
// with every lexical diagnostic found along the way.
func (t *Tokenizer) Tokenize() ([]Token, []sentrydata.Diagnostic) {
	var (
		tokens []Token
		diags  []sentrydata.Diagnostic
	)

	for i, raw := range strings.Split(t.input, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, "//") {
			continue
		}

		s := &lineScanner{line: []rune(line), lineNum: i + 1}
		lineTokens, lineDiags := s.scan()
		tokens = append(tokens, lineTokens...)
		diags = append(diags, lineDiags...)
	}

	return tokens, diags
}

// lineScanner is a single forward pass over one trimmed source line.
type lineScanner struct {
	line    []rune
	lineNum int
	pos     int
}

func (s *lineScanner) scan() ([]Token, []sentrydata.Diagnostic) {
	var (
		tokens []Token
		diags  []sentrydata.Diagnostic
	)

	for s.pos < len(s.line) {
		ch := s.line[s.pos]

		switch {
		case unicode.IsSpace(ch):
			s.pos++
		case unicode.IsDigit(ch):
			token, err := s.scanNumber()
			if err != nil {
				diags = append(diags, s.lexical(err))
				continue
			}
			tokens = append(tokens, token)
		case ch == '"':
			token, err := s.scanString()
			if err != nil {
				diags = append(diags, s.lexical(err))
				continue
			}
			tokens = append(tokens, token)
		case unicode.IsLetter(ch) || ch == '_':
			tokens = append(tokens, s.scanWord())
		default:
			token, ok := s.scanOperator()
			if !ok {
				diags = append(diags, s.lexical(fmt.Errorf("%w: %q", ErrUnrecognizedCharacter, string(ch))))
				s.pos++
				continue
			}
			tokens = append(tokens, token)
		}
	}

	return tokens, diags
}

// scanNumber greedily consumes digits and decimal points. Text with more
// than one decimal point survives the scan but fails the float parse, which
// is reported as a recoverable diagnostic rather than a fault.
func (s *lineScanner) scanNumber() (Token, error) {
	start := s.pos

	for s.pos < len(s.line) && (unicode.IsDigit(s.line[s.pos]) || s.line[s.pos] == '.') {
		s.pos++
	}

	text := string(s.line[start:s.pos])

	value, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return Token{}, fmt.Errorf("%w: %q", ErrMalformedNumber, text)
	}

	return Token{
		Type:     NUMBER,
		Value:    text,
		Number:   value,
		Position: s.position(start),
	}, nil
}

// scanString consumes characters verbatim up to the closing quote on the
// same line. There is no escape-sequence support.
func (s *lineScanner) scanString() (Token, error) {
	start := s.pos
	s.pos++ // opening quote

	for s.pos < len(s.line) && s.line[s.pos] != '"' {
		s.pos++
	}

	if s.pos >= len(s.line) {
		return Token{}, ErrUnterminatedString
	}

	value := string(s.line[start+1 : s.pos])
	s.pos++ // closing quote

	return Token{
		Type:     STRING,
		Value:    value,
		Position: s.position(start),
	}, nil
}

func (s *lineScanner) scanWord() Token {
	start := s.pos

	for s.pos < len(s.line) && (unicode.IsLetter(s.line[s.pos]) || unicode.IsDigit(s.line[s.pos]) || s.line[s.pos] == '_') {
		s.pos++
	}

	word := string(s.line[start:s.pos])

	upper := strings.ToUpper(word)
	if _, ok := keywords[upper]; ok {
		return Token{Type: KEYWORD, Value: upper, Position: s.position(start)}
	}

	return Token{Type: IDENTIFIER, Value: word, Position: s.position(start)}
}

func (s *lineScanner) scanOperator() (Token, bool) {
	if s.pos+1 < len(s.line) {
		two := string(s.line[s.pos : s.pos+2])
		if tokenType, ok := twoCharOperators[two]; ok {
			token := Token{Type: tokenType, Value: two, Position: s.position(s.pos)}
			s.pos += 2

			return token, true
		}
	}

	if tokenType, ok := oneCharOperators[s.line[s.pos]]; ok {
		token := Token{Type: tokenType, Value: string(s.line[s.pos]), Position: s.position(s.pos)}
		s.pos++

		return token, true
	}

	return Token{}, false
}

func (s *lineScanner) position(column int) Position {
	return Position{Line: s.lineNum, Column: column}
}

func (s *lineScanner) lexical(err error) sentrydata.Diagnostic {
	return sentrydata.Diagnostic{
		Line:     s.lineNum,
		Category: sentrydata.LEXICAL,
		Err:      err,
	}
}
