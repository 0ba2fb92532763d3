package parser

import (
	"fmt"

	"github.com/canpacis/bir/lexer"
	"github.com/canpacis/bir/token"
)

// DefaultMaxDepth bounds the recursion of a single parse.
const DefaultMaxDepth = 512

type Option func(*Parser)

// WithMaxDepth sets the nesting limit. Values below 1 keep the default.
func WithMaxDepth(n int) Option {
	return func(p *Parser) {
		if n > 0 {
			p.maxDepth = n
		}
	}
}

// Ambiguity notes a place where the input has a second derivation besides
// the one the parser kept.
type Ambiguity struct {
	Position token.Position `json:"position"`
	Reason   string         `json:"reason"`
}

func (a Ambiguity) String() string {
	return fmt.Sprintf("%s: %s", a.Position, a.Reason)
}

// Parser is a recursive descent parser over the full token slice of one
// input. Alternatives are tried in order; a failed alternative rewinds the
// cursor with restore.
type Parser struct {
	tokens []token.Token
	pos    int
	// lexErr is set when the token slice stops early at an ILLEGAL token.
	lexErr error

	maxDepth int
	depth    int
	// noCall holds the token indices of Callers that must stop before
	// their call suffix, leaving the argument list to the enclosing call.
	noCall map[int]bool
	// lastCaller is the token index of the most recently finished Caller.
	lastCaller int

	furthest    *SyntaxError
	fatal       error
	ambiguities []Ambiguity
}

func New(l *lexer.Lexer, opts ...Option) *Parser {
	p := &Parser{
		maxDepth: DefaultMaxDepth,
		noCall:   map[int]bool{},
	}
	for _, opt := range opts {
		opt(p)
	}

	for {
		tok, err := l.NextToken()
		p.tokens = append(p.tokens, tok)
		if err != nil {
			p.lexErr = err
			break
		}
		if tok.Type == token.EOF {
			break
		}
	}
	return p
}

// Ambiguities returns the notes collected by ParseProgram.
func (p *Parser) Ambiguities() []Ambiguity {
	return p.ambiguities
}

func (p *Parser) curToken() token.Token {
	return p.tokens[p.pos]
}

func (p *Parser) peekToken() token.Token {
	return p.tokenAt(1)
}

// tokenAt looks n tokens ahead, stopping at the last token.
func (p *Parser) tokenAt(n int) token.Token {
	if p.pos+n < len(p.tokens) {
		return p.tokens[p.pos+n]
	}
	return p.tokens[len(p.tokens)-1]
}

func (p *Parser) nextToken() token.Token {
	tok := p.tokens[p.pos]
	if p.pos < len(p.tokens)-1 {
		p.pos++
	}
	return tok
}

func (p *Parser) curTokenIs(t token.TokenType) bool {
	return p.curToken().Type == t
}

func (p *Parser) peekTokenIs(t token.TokenType) bool {
	return p.peekToken().Type == t
}

// expectCur consumes the current token if it has type t.
func (p *Parser) expectCur(t token.TokenType) (token.Token, error) {
	if !p.curTokenIs(t) {
		return token.Token{}, p.unexpected(t.String())
	}
	return p.nextToken(), nil
}

// requireSpace fails unless whitespace precedes the current token.
func (p *Parser) requireSpace() error {
	if !p.curToken().Spaced {
		return p.unexpected("whitespace")
	}
	return nil
}

// expectSpaced is expectCur for a token that must follow whitespace.
func (p *Parser) expectSpaced(t token.TokenType) (token.Token, error) {
	if err := p.requireSpace(); err != nil {
		return token.Token{}, err
	}
	return p.expectCur(t)
}

type mark struct {
	pos   int
	notes int
}

func (p *Parser) save() mark {
	return mark{pos: p.pos, notes: len(p.ambiguities)}
}

// restore rewinds the cursor and drops the notes of the abandoned attempt.
func (p *Parser) restore(m mark) {
	p.pos = m.pos
	p.ambiguities = p.ambiguities[:m.notes]
}

// unexpected builds the error for the current token and keeps it if it is
// the furthest failure seen so far. On a tie the expectations are merged.
func (p *Parser) unexpected(expected ...string) error {
	tok := p.curToken()
	err := &SyntaxError{Pos: tok.Pos, Got: tok, Expected: expected, index: p.pos}
	switch {
	case p.furthest == nil || err.index > p.furthest.index:
		p.furthest = err
	case err.index == p.furthest.index:
		p.furthest.expect(expected...)
	}
	return err
}

func (p *Parser) enter() error {
	if p.fatal != nil {
		return p.fatal
	}
	p.depth++
	if p.depth > p.maxDepth {
		tok := p.curToken()
		p.fatal = &SyntaxError{
			Pos:   tok.Pos,
			Got:   tok,
			Msg:   fmt.Sprintf("maximum nesting depth %d exceeded", p.maxDepth),
			index: p.pos,
		}
		return p.fatal
	}
	return nil
}

func (p *Parser) leave() {
	p.depth--
}

// tight reports whether the braces opened at index open and closed just
// before the cursor hug their content, the only way a grouping {Expression}
// is written.
func (p *Parser) tight(open int) bool {
	return !p.tokens[open+1].Spaced && !p.tokens[p.pos-1].Spaced
}

func (p *Parser) ambiguous(pos token.Position, reason string) {
	p.ambiguities = append(p.ambiguities, Ambiguity{Position: pos, Reason: reason})
}

// err picks the error reported to the caller: a depth overflow beats
// everything, and a failure on the ILLEGAL token is the lexer's error.
func (p *Parser) err() error {
	if p.fatal != nil {
		return p.fatal
	}
	if p.furthest == nil {
		return fmt.Errorf("parse failed")
	}
	if p.lexErr != nil && p.furthest.Got.Type == token.ILLEGAL {
		return p.lexErr
	}
	return p.furthest
}
