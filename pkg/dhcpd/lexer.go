// Package dhcpd lexes and parses the host-declaration subset of the ISC
// dhcpd.conf dialect: whitespace-insensitive, "#" comments to end of line,
// bare words lowercased, quoted strings case-preserved, statements terminated
// by ";", and "host <name> { ... }" blocks of key/value statements.
//
// The package is pure text processing: it consumes a character stream or a
// token slice once, left to right, holds no state between calls, and issues
// no I/O beyond reading the stream it is handed.
package dhcpd

import (
	"bufio"
	"errors"
	"io"
	"strings"
	"unicode"
)

// lexState enumerates the tokenizer's states. Each state has one transition
// method on *lexer so its legal inputs are testable in isolation.
type lexState uint8

const (
	stateNormal lexState = iota
	stateComment
	stateSingleQuote
	stateDoubleQuote
	statePostQuote
)

type lexer struct {
	buf    strings.Builder
	tokens []string
	state  lexState
	line   int
	col    int
}

// Tokenize lexes a configuration stream into a flat token sequence. Bare
// words are lowercased; quoted strings keep their case; "," and ";" are
// emitted as single-character tokens. Malformed quoting fails with a typed
// error carrying line and column.
func Tokenize(r io.Reader) ([]string, error) {
	l := &lexer{state: stateNormal, line: 1, col: 1}
	br := bufio.NewReader(r)

	for {
		ch, _, err := br.ReadRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return l.finish()
			}
			return nil, err
		}
		if err := l.step(ch); err != nil {
			return nil, err
		}
		if ch == '\n' {
			l.line++
			l.col = 1
		} else {
			l.col++
		}
	}
}

// step dispatches one character to the transition method for the current
// state.
func (l *lexer) step(ch rune) error {
	switch l.state {
	case stateNormal:
		return l.lexNormal(ch)
	case stateComment:
		l.lexComment(ch)
		return nil
	case stateSingleQuote:
		l.lexQuote(ch, '\'')
		return nil
	case stateDoubleQuote:
		l.lexQuote(ch, '"')
		return nil
	case statePostQuote:
		return l.lexPostQuote(ch)
	}
	return nil
}

func (l *lexer) lexNormal(ch rune) error {
	switch {
	case unicode.IsSpace(ch):
		l.flush()
	case ch == ',' || ch == ';':
		l.flush()
		l.tokens = append(l.tokens, string(ch))
	case ch == '#':
		l.flush()
		l.state = stateComment
	case ch == '\'' || ch == '"':
		if l.buf.Len() > 0 {
			return &QuoteError{Line: l.line, Col: l.col}
		}
		if ch == '\'' {
			l.state = stateSingleQuote
		} else {
			l.state = stateDoubleQuote
		}
	default:
		l.buf.WriteRune(unicode.ToLower(ch))
	}
	return nil
}

func (l *lexer) lexComment(ch rune) {
	if ch == '\n' {
		l.state = stateNormal
	}
}

// lexQuote accumulates quoted text verbatim until the matching quote
// character, which emits the buffer (an empty quoted string is still a
// token) and enters the post-quote state.
func (l *lexer) lexQuote(ch, quote rune) {
	if ch == quote {
		l.tokens = append(l.tokens, l.buf.String())
		l.buf.Reset()
		l.state = statePostQuote
		return
	}
	l.buf.WriteRune(ch)
}

func (l *lexer) lexPostQuote(ch rune) error {
	switch {
	case unicode.IsSpace(ch):
		l.state = stateNormal
	case ch == ',' || ch == ';':
		l.tokens = append(l.tokens, string(ch))
		l.state = stateNormal
	case ch == '#':
		l.state = stateComment
	default:
		return &AfterQuoteError{Line: l.line, Col: l.col, Char: ch}
	}
	return nil
}

// flush emits the pending word buffer as a token, if non-empty.
func (l *lexer) flush() {
	if l.buf.Len() > 0 {
		l.tokens = append(l.tokens, l.buf.String())
		l.buf.Reset()
	}
}

// finish handles end of input: a pending word is flushed, an open quoted
// string is an error, anything else is fine.
func (l *lexer) finish() ([]string, error) {
	switch l.state {
	case stateSingleQuote, stateDoubleQuote:
		return nil, &UnterminatedQuoteError{Line: l.line, Col: l.col}
	default:
		l.flush()
		return l.tokens, nil
	}
}
