package dhcpd

import (
	"errors"
	"fmt"
)

// Parser errors. The lexer reports position-carrying typed errors instead,
// since a token stream has no positions left to point at.
var (
	// ErrMissingBrace reports a host declaration whose name is not
	// followed by "{".
	ErrMissingBrace = errors.New("missing open brace")

	// ErrUnexpectedEOF reports a token stream that ends inside a host
	// block or declaration.
	ErrUnexpectedEOF = errors.New("unexpected end of configuration")
)

// QuoteError reports a quote character opened in the middle of a bare word.
type QuoteError struct {
	Line int
	Col  int
}

func (e *QuoteError) Error() string {
	return fmt.Sprintf("line %d, column %d: quote must start a new token", e.Line, e.Col)
}

// AfterQuoteError reports an illegal character immediately following a
// closing quote; only whitespace, ",", ";", or "#" may follow.
type AfterQuoteError struct {
	Line int
	Col  int
	Char rune
}

func (e *AfterQuoteError) Error() string {
	return fmt.Sprintf("line %d, column %d: unexpected %q after closing quote", e.Line, e.Col, e.Char)
}

// UnterminatedQuoteError reports input ending inside a quoted string. Line
// and Col point at the position where input ran out.
type UnterminatedQuoteError struct {
	Line int
	Col  int
}

func (e *UnterminatedQuoteError) Error() string {
	return fmt.Sprintf("line %d, column %d: unterminated quoted string", e.Line, e.Col)
}
