package token

import (
	"fmt"
	"strconv"
)

type TokenType int

const (
	ILLEGAL TokenType = iota
	EOF
	COMMENT

	literal_beg
	// Identifiers + literals
	IDENT  // foo, -foo
	INT    // 42, -7, 1.5
	BINARY // @b101
	HEX    // @x1F
	OCTAL  // @o17
	STRING // "abc"
	literal_end

	operator_beg
	// Operators and delimiters
	PERIOD   // .
	COLON    // :
	COMMA    // ,
	LPAREN   // (
	RPAREN   // )
	LBRACE   // {
	RBRACE   // }
	LBRACK   // [
	RBRACK   // ]
	ADD      // +
	SUB      // -
	MUL      // *
	QUO      // /
	QUESTION // ?
	CARET    // ^
	APOS     // '
	REM      // %
	AND      // &
	ASSIGN   // =
	POUND    // #
	COND     // && || < > <= >= == and their ! forms
	operator_end

	keyword_beg
	USE
	CONST
	LET
	INIT
	RETURN
	THROW
	DEBUGGER
	IMPLEMENTS
	IF
	ELIF
	ELSE
	SWITCH
	DEFAULT
	FOR
	WHILE
	AS
	CASE
	LOG
	READ
	WRITE
	DELETE
	keyword_end
)

// Names are the ones diagnostics print ("Unexpected RightParens token").
var tokens = [...]string{
	ILLEGAL: "ILLEGAL",
	EOF:     "EOF",
	COMMENT: "Comment",

	IDENT:  "Identifier",
	INT:    "NumberLiteral",
	BINARY: "BinaryLiteral",
	HEX:    "HexLiteral",
	OCTAL:  "OctalLiteral",
	STRING: "StringLiteral",

	PERIOD:   "Dot",
	COLON:    "Colon",
	COMMA:    "Comma",
	LPAREN:   "LeftParens",
	RPAREN:   "RightParens",
	LBRACE:   "LeftCurlyBrackets",
	RBRACE:   "RightCurlyBrackets",
	LBRACK:   "LeftBrackets",
	RBRACK:   "RightBrackets",
	ADD:      "Plus",
	SUB:      "Minus",
	MUL:      "Multiplier",
	QUO:      "Divider",
	QUESTION: "QuestionMark",
	CARET:    "Caret",
	APOS:     "Apostrophe",
	REM:      "Percent",
	AND:      "Ampersand",
	ASSIGN:   "EqualsTo",
	POUND:    "Pound",
	COND:     "ConditionSign",

	USE:        "Use",
	CONST:      "Const",
	LET:        "Let",
	INIT:       "Init",
	RETURN:     "Return",
	THROW:      "Throw",
	DEBUGGER:   "Debugger",
	IMPLEMENTS: "Implements",
	IF:         "If",
	ELIF:       "Elif",
	ELSE:       "Else",
	SWITCH:     "Switch",
	DEFAULT:    "Default",
	FOR:        "For",
	WHILE:      "While",
	AS:         "As",
	CASE:       "Case",
	LOG:        "Log",
	READ:       "Read",
	WRITE:      "Write",
	DELETE:     "Delete",
}

var symbols = map[string]TokenType{
	".": PERIOD,
	":": COLON,
	",": COMMA,
	"(": LPAREN,
	")": RPAREN,
	"{": LBRACE,
	"}": RBRACE,
	"[": LBRACK,
	"]": RBRACK,
	"+": ADD,
	"-": SUB,
	"*": MUL,
	"/": QUO,
	"?": QUESTION,
	"^": CARET,
	"'": APOS,
	"%": REM,
	"&": AND,
	"=": ASSIGN,
	"#": POUND,
}

var keywords = map[string]TokenType{
	"use":        USE,
	"const":      CONST,
	"let":        LET,
	"init":       INIT,
	"return":     RETURN,
	"throw":      THROW,
	"debugger":   DEBUGGER,
	"implements": IMPLEMENTS,
	"if":         IF,
	"elif":       ELIF,
	"else":       ELSE,
	"switch":     SWITCH,
	"default":    DEFAULT,
	"for":        FOR,
	"while":      WHILE,
	"as":         AS,
	"case":       CASE,
	"log":        LOG,
	"Read":       READ,
	"Write":      WRITE,
	"Delete":     DELETE,
}

// LookupIdent classifies an identifier-shaped word. Only an exact match is a
// keyword, so "-Read" stays an identifier.
func LookupIdent(ident string) TokenType {
	if tok, ok := keywords[ident]; ok {
		return tok
	}
	return IDENT
}

// LookupSymbol returns the type of a single punctuation symbol, or ILLEGAL.
func LookupSymbol(sym string) TokenType {
	if tok, ok := symbols[sym]; ok {
		return tok
	}
	return ILLEGAL
}

// Position is a 1-based line/column pair.
type Position struct {
	Line uint32 `json:"line"`
	Col  uint32 `json:"col"`
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Col)
}

type Token struct {
	Type    TokenType
	Literal string
	// Value holds the decoded literal: int64 for numbers, string for strings.
	Value  any
	Pos    Position
	Spaced bool // whitespace precedes the token
}

func (t Token) IsLiteral() bool {
	return literal_beg < t.Type && t.Type < literal_end
}

func (t Token) IsNumber() bool {
	return t.Type == INT || t.Type == BINARY || t.Type == HEX || t.Type == OCTAL
}

func (t Token) IsKeyword() bool {
	return keyword_beg < t.Type && t.Type < keyword_end
}

func (t Token) IsMutater() bool {
	return t.Type == READ || t.Type == WRITE || t.Type == DELETE
}

func (t Token) String() string {
	return t.Type.String()
}

func (tokenType TokenType) String() string {
	s := ""
	if 0 <= tokenType && tokenType < TokenType(len(tokens)) {
		s = tokens[tokenType]
	}

	if s == "" {
		s = "token(" + strconv.Itoa(int(tokenType)) + ")"
	}

	return s
}
