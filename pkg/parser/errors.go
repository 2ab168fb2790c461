package parser

import (
	"fmt"

	"github.com/graphstack-labs/graphadmin/pkg/token"
)

// LexError represents a malformed token, such as an unterminated
// backtick-quoted identifier.
type LexError struct {
	Pos     token.Position
	Message string
}

func (e *LexError) Error() string {
	return fmt.Sprintf("lexical error at line %d, column %d: %s", e.Pos.Line, e.Pos.Column, e.Message)
}

// SyntaxError represents a grammar violation with position information
// and, where useful, a hint about the expected token.
type SyntaxError struct {
	Pos      token.Position
	Message  string
	Expected string
}

func (e *SyntaxError) Error() string {
	if e.Expected != "" {
		return fmt.Sprintf("syntax error at line %d, column %d: %s (expected %s)", e.Pos.Line, e.Pos.Column, e.Message, e.Expected)
	}
	return fmt.Sprintf("syntax error at line %d, column %d: %s", e.Pos.Line, e.Pos.Column, e.Message)
}

// Common error messages
const (
	errUnexpectedToken    = "unexpected token %s"
	errUnterminatedQuote  = "unterminated backtick-quoted identifier"
	errUnterminatedString = "unterminated string literal"
)
