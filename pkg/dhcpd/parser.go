package dhcpd

import (
	"fmt"
	"io"
)

// HostRecord maps a statement key to its space-joined value within one host
// block. Keys prefixed by "hardware" or "option" are compound, e.g.
// "hardware ethernet". Later duplicate keys overwrite earlier ones.
type HostRecord map[string]string

// parseState enumerates the parser's states.
type parseState uint8

const (
	stateSeekHost parseState = iota
	stateExpectName
	stateInBody
)

// compound statement keys formed by joining two tokens with a space.
var compoundKeys = map[string]bool{
	"hardware": true,
	"option":   true,
}

type parser struct {
	tokens []string
	pos    int
	state  parseState
	hosts  map[string]HostRecord
	name   string
}

// Parse extracts host blocks from a token sequence produced by Tokenize.
// Tokens outside "host <name> { ... }" blocks are ignored; a duplicate
// hostname overwrites the earlier record. A hostname not followed by "{"
// fails with ErrMissingBrace; running out of tokens inside a declaration
// fails with ErrUnexpectedEOF.
func Parse(tokens []string) (map[string]HostRecord, error) {
	p := &parser{tokens: tokens, hosts: make(map[string]HostRecord)}

	for p.pos < len(p.tokens) {
		var err error
		switch p.state {
		case stateSeekHost:
			p.seekHost()
		case stateExpectName:
			err = p.expectName()
		case stateInBody:
			err = p.statement()
		}
		if err != nil {
			return nil, err
		}
	}

	switch p.state {
	case stateExpectName:
		return nil, fmt.Errorf("%w: host keyword with no name", ErrUnexpectedEOF)
	case stateInBody:
		return nil, fmt.Errorf("%w: host block %q is not closed", ErrUnexpectedEOF, p.name)
	}
	return p.hosts, nil
}

// ParseReader composes Tokenize and Parse over a configuration stream.
func ParseReader(r io.Reader) (map[string]HostRecord, error) {
	tokens, err := Tokenize(r)
	if err != nil {
		return nil, err
	}
	return Parse(tokens)
}

// seekHost discards tokens until the "host" keyword.
func (p *parser) seekHost() {
	for p.pos < len(p.tokens) {
		tok := p.next()
		if tok == "host" {
			p.state = stateExpectName
			return
		}
	}
}

// expectName consumes the hostname and its opening brace.
func (p *parser) expectName() error {
	p.name = p.next()
	p.hosts[p.name] = make(HostRecord)

	if p.pos >= len(p.tokens) {
		return fmt.Errorf("%w: host %q has no block", ErrUnexpectedEOF, p.name)
	}
	if tok := p.next(); tok != "{" {
		return fmt.Errorf("%w: host %q followed by %q", ErrMissingBrace, p.name, tok)
	}
	p.state = stateInBody
	return nil
}

// statement consumes one "key value...;" statement, an empty ";", or the
// closing "}" of the current block.
func (p *parser) statement() error {
	key := p.next()
	switch key {
	case "}":
		p.state = stateSeekHost
		return nil
	case ";":
		return nil
	}

	if compoundKeys[key] {
		if p.pos >= len(p.tokens) {
			return fmt.Errorf("%w: %q key in host %q", ErrUnexpectedEOF, key, p.name)
		}
		key = key + " " + p.next()
	}

	value := ""
	for {
		if p.pos >= len(p.tokens) {
			return fmt.Errorf("%w: statement %q in host %q has no terminator", ErrUnexpectedEOF, key, p.name)
		}
		tok := p.next()
		if tok == ";" {
			break
		}
		if value != "" {
			value += " "
		}
		value += tok
	}
	p.hosts[p.name][key] = value
	return nil
}

func (p *parser) next() string {
	tok := p.tokens[p.pos]
	p.pos++
	return tok
}
