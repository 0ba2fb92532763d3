package lexer

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	plexer "github.com/alecthomas/participle/v2/lexer"

	"github.com/canpacis/bir/token"
)

// Rules are tried in order and the first match wins, so the literal forms
// must stay ahead of Identifier and Symbol (a leading '-' belongs to the
// literal) and Comment must stay ahead of the bare '#'.
var definition = plexer.MustStateful(plexer.Rules{
	"Root": {
		{Name: "WhiteSpace", Pattern: `[ \t\n\r]+`},
		{Name: "NumberLiteral", Pattern: `-?[0-9]+(?:\.[0-9]+)?`},
		{Name: "BinaryLiteral", Pattern: `-?@b[01]+`},
		{Name: "HexLiteral", Pattern: `-?@x[0-9a-fA-F]+`},
		{Name: "OctalLiteral", Pattern: `-?@o[0-7]+`},
		{Name: "Comment", Pattern: `#[^\n]*`},
		{Name: "ConditionSign", Pattern: `!?(?:&&|\|\||<=|>=|<|>|==)`},
		{Name: "StringLiteral", Pattern: `"(?:[^\n\\"]|\\["\\ntbfr])*"`},
		{Name: "Identifier", Pattern: `-?[a-zA-Z_][a-zA-Z_0-9]*`},
		{Name: "Symbol", Pattern: `[.:,(){}\[\]+\-*/?^'%&=]`},
	},
})

var (
	ruleTypes = definition.Symbols()
	kinds     = map[plexer.TokenType]token.TokenType{
		ruleTypes["NumberLiteral"]: token.INT,
		ruleTypes["BinaryLiteral"]: token.BINARY,
		ruleTypes["HexLiteral"]:    token.HEX,
		ruleTypes["OctalLiteral"]:  token.OCTAL,
		ruleTypes["Comment"]:       token.COMMENT,
		ruleTypes["ConditionSign"]: token.COND,
		ruleTypes["StringLiteral"]: token.STRING,
	}
	whitespaceType = ruleTypes["WhiteSpace"]
	identType      = ruleTypes["Identifier"]
	symbolType     = ruleTypes["Symbol"]
)

// Error is a lexical failure: no rule matches the input at Pos.
type Error struct {
	Pos  token.Position
	Text string
	Msg  string
}

func (e *Error) Error() string {
	return fmt.Sprintf("invalid syntax at line %d col %d: %s", e.Pos.Line, e.Pos.Col, e.Message())
}

// Message is the error without its position.
func (e *Error) Message() string {
	if e.Text == "" {
		return e.Msg
	}
	return fmt.Sprintf("%s %q", e.Msg, e.Text)
}

type Lexer struct {
	input string
	lex   plexer.Lexer
	pos   token.Position // position of the next unread rune
	// consumed is the byte offset of pos
	consumed int
	err      error
}

func New(input string) *Lexer {
	l := &Lexer{
		input: input,
		pos:   token.Position{Line: 1, Col: 1},
	}
	l.lex, l.err = definition.LexString("", input)
	return l
}

// NextToken returns the next significant token. Whitespace is skipped but
// recorded on the returned token as Spaced. Once an error is returned every
// further call returns the same error.
func (l *Lexer) NextToken() (token.Token, error) {
	if l.err != nil {
		return token.Token{Type: token.ILLEGAL, Pos: l.pos}, l.err
	}

	spaced := false
	for {
		raw, err := l.lex.Next()
		if err != nil {
			l.err = l.illegal("Unexpected character")
			return token.Token{Type: token.ILLEGAL, Pos: l.pos}, l.err
		}
		if raw.EOF() {
			return token.Token{Type: token.EOF, Pos: l.pos, Spaced: spaced}, nil
		}

		pos := l.pos
		l.advance(raw.Value)
		if raw.Type == whitespaceType {
			spaced = true
			continue
		}

		tok := token.Token{Literal: raw.Value, Pos: pos, Spaced: spaced}
		switch raw.Type {
		case identType:
			tok.Type = token.LookupIdent(raw.Value)
		case symbolType:
			tok.Type = token.LookupSymbol(raw.Value)
		default:
			tok.Type = kinds[raw.Type]
		}

		if err := decode(&tok); err != nil {
			l.pos = pos
			l.err = &Error{Pos: pos, Text: raw.Value, Msg: err.Error()}
			return token.Token{Type: token.ILLEGAL, Pos: pos}, l.err
		}
		return tok, nil
	}
}

// Tokenize lexes the whole input. The last token is always EOF.
func Tokenize(input string) ([]token.Token, error) {
	l := New(input)
	tokens := []token.Token{}
	for {
		tok, err := l.NextToken()
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
		if tok.Type == token.EOF {
			return tokens, nil
		}
	}
}

func (l *Lexer) advance(span string) {
	l.consumed += len(span)
	for _, r := range span {
		if r == '\n' {
			l.pos.Line++
			l.pos.Col = 1
		} else {
			l.pos.Col++
		}
	}
}

func (l *Lexer) illegal(msg string) *Error {
	text := ""
	if l.consumed < len(l.input) {
		r, _ := utf8.DecodeRuneInString(l.input[l.consumed:])
		text = string(r)
	}
	return &Error{Pos: l.pos, Text: text, Msg: msg}
}

func decode(tok *token.Token) error {
	switch tok.Type {
	case token.INT:
		return decodeInt(tok, 10)
	case token.BINARY:
		return decodeInt(tok, 2)
	case token.HEX:
		return decodeInt(tok, 16)
	case token.OCTAL:
		return decodeInt(tok, 8)
	case token.STRING:
		if !utf8.ValidString(tok.Literal) {
			return fmt.Errorf("invalid UTF-8 in string literal")
		}
		s, err := strconv.Unquote(tok.Literal)
		if err != nil {
			return fmt.Errorf("malformed string literal")
		}
		tok.Value = s
	}
	return nil
}

// decodeInt keeps only the integer part of a decimal literal; explicit-base
// literals carry a two-character "@b"/"@x"/"@o" prefix after the sign.
func decodeInt(tok *token.Token, base int) error {
	digits, sign := tok.Literal, ""
	if strings.HasPrefix(digits, "-") {
		digits, sign = digits[1:], "-"
	}
	if base == 10 {
		if i := strings.IndexByte(digits, '.'); i >= 0 {
			digits = digits[:i]
		}
	} else {
		digits = digits[2:]
	}

	value, err := strconv.ParseInt(sign+digits, base, 64)
	if err != nil {
		return fmt.Errorf("integer literal out of range")
	}
	tok.Value = value
	return nil
}
