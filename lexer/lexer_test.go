package lexer

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/canpacis/bir/token"
)

type Test struct {
	expectedType    token.TokenType
	expectedLiteral string
}

func checkInput(t *testing.T, input string, tests []Test) {
	t.Helper()
	l := New(input)

	for i, tt := range tests {
		tok, err := l.NextToken()
		require.NoError(t, err, "tests[%d]", i)
		require.Equalf(t, tt.expectedType, tok.Type, "tests[%d] - tokentype wrong", i)
		require.Equalf(t, tt.expectedLiteral, tok.Literal, "tests[%d] - literal wrong", i)
	}
}

func TestNextToken(t *testing.T) {
	input := `use "std"
# counter
let -x = @b101 + 3.5
inc [n] { init { n = 0 } n++ }
if a !<= b { [Read x, y] } elif c == d { } else { }
foo:bar(1, "two")'{2}^x log % y * z / w
a implements b { [1] }
for xs as x { return x } while x > 0 { throw "e" }
switch x { case 1 { } default { } }
`

	tests := []Test{
		{token.USE, "use"},
		{token.STRING, `"std"`},
		{token.COMMENT, "# counter"},
		{token.LET, "let"},
		{token.IDENT, "-x"},
		{token.ASSIGN, "="},
		{token.BINARY, "@b101"},
		{token.ADD, "+"},
		{token.INT, "3.5"},
		{token.IDENT, "inc"},
		{token.LBRACK, "["},
		{token.IDENT, "n"},
		{token.RBRACK, "]"},
		{token.LBRACE, "{"},
		{token.INIT, "init"},
		{token.LBRACE, "{"},
		{token.IDENT, "n"},
		{token.ASSIGN, "="},
		{token.INT, "0"},
		{token.RBRACE, "}"},
		{token.IDENT, "n"},
		{token.ADD, "+"},
		{token.ADD, "+"},
		{token.RBRACE, "}"},
		{token.IF, "if"},
		{token.IDENT, "a"},
		{token.COND, "!<="},
		{token.IDENT, "b"},
		{token.LBRACE, "{"},
		{token.LBRACK, "["},
		{token.READ, "Read"},
		{token.IDENT, "x"},
		{token.COMMA, ","},
		{token.IDENT, "y"},
		{token.RBRACK, "]"},
		{token.RBRACE, "}"},
		{token.ELIF, "elif"},
		{token.IDENT, "c"},
		{token.COND, "=="},
		{token.IDENT, "d"},
		{token.LBRACE, "{"},
		{token.RBRACE, "}"},
		{token.ELSE, "else"},
		{token.LBRACE, "{"},
		{token.RBRACE, "}"},
		{token.IDENT, "foo"},
		{token.COLON, ":"},
		{token.IDENT, "bar"},
		{token.LPAREN, "("},
		{token.INT, "1"},
		{token.COMMA, ","},
		{token.STRING, `"two"`},
		{token.RPAREN, ")"},
		{token.APOS, "'"},
		{token.LBRACE, "{"},
		{token.INT, "2"},
		{token.RBRACE, "}"},
		{token.CARET, "^"},
		{token.IDENT, "x"},
		{token.LOG, "log"},
		{token.REM, "%"},
		{token.IDENT, "y"},
		{token.MUL, "*"},
		{token.IDENT, "z"},
		{token.QUO, "/"},
		{token.IDENT, "w"},
		{token.IDENT, "a"},
		{token.IMPLEMENTS, "implements"},
		{token.IDENT, "b"},
		{token.LBRACE, "{"},
		{token.LBRACK, "["},
		{token.INT, "1"},
		{token.RBRACK, "]"},
		{token.RBRACE, "}"},
		{token.FOR, "for"},
		{token.IDENT, "xs"},
		{token.AS, "as"},
		{token.IDENT, "x"},
		{token.LBRACE, "{"},
		{token.RETURN, "return"},
		{token.IDENT, "x"},
		{token.RBRACE, "}"},
		{token.WHILE, "while"},
		{token.IDENT, "x"},
		{token.COND, ">"},
		{token.INT, "0"},
		{token.LBRACE, "{"},
		{token.THROW, "throw"},
		{token.STRING, `"e"`},
		{token.RBRACE, "}"},
		{token.SWITCH, "switch"},
		{token.IDENT, "x"},
		{token.LBRACE, "{"},
		{token.CASE, "case"},
		{token.INT, "1"},
		{token.LBRACE, "{"},
		{token.RBRACE, "}"},
		{token.DEFAULT, "default"},
		{token.LBRACE, "{"},
		{token.RBRACE, "}"},
		{token.RBRACE, "}"},
		{token.EOF, ""},
	}

	checkInput(t, input, tests)
}

func TestIntegerValues(t *testing.T) {
	tests := []struct {
		input    string
		kind     token.TokenType
		expected int64
	}{
		{"42", token.INT, 42},
		{"-7", token.INT, -7},
		{"3.99", token.INT, 3},
		{"@b101", token.BINARY, 5},
		{"@x1F", token.HEX, 31},
		{"@xff", token.HEX, 255},
		{"@o17", token.OCTAL, 15},
		{"-@x10", token.HEX, -16},
		{"-@b11", token.BINARY, -3},
		{"-@o7", token.OCTAL, -7},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			tokens, err := Tokenize(tt.input)
			require.NoError(t, err)
			require.Len(t, tokens, 2)
			require.Equal(t, tt.kind, tokens[0].Type)
			require.True(t, tokens[0].IsNumber())
			require.Equal(t, tt.expected, tokens[0].Value)
		})
	}
}

func TestStringValues(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{`""`, ""},
		{`"plain"`, "plain"},
		{`"a\"b"`, `a"b`},
		{`"back\\slash"`, `back\slash`},
		{`"tab\tnew\nline"`, "tab\tnew\nline"},
		{`"\b\f\r"`, "\b\f\r"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			tokens, err := Tokenize(tt.input)
			require.NoError(t, err)
			require.Equal(t, token.STRING, tokens[0].Type)
			require.Equal(t, tt.expected, tokens[0].Value)
		})
	}
}

func TestPositions(t *testing.T) {
	input := "let x = 1\n\n  # note\n\tfoo(x)"
	tokens, err := Tokenize(input)
	require.NoError(t, err)

	expected := []struct {
		literal string
		pos     token.Position
		spaced  bool
	}{
		{"let", token.Position{Line: 1, Col: 1}, false},
		{"x", token.Position{Line: 1, Col: 5}, true},
		{"=", token.Position{Line: 1, Col: 7}, true},
		{"1", token.Position{Line: 1, Col: 9}, true},
		{"# note", token.Position{Line: 3, Col: 3}, true},
		{"foo", token.Position{Line: 4, Col: 2}, true},
		{"(", token.Position{Line: 4, Col: 5}, false},
		{"x", token.Position{Line: 4, Col: 6}, false},
		{")", token.Position{Line: 4, Col: 7}, false},
		{"", token.Position{Line: 4, Col: 8}, false},
	}

	require.Len(t, tokens, len(expected))
	for i, exp := range expected {
		require.Equalf(t, exp.literal, tokens[i].Literal, "tokens[%d]", i)
		require.Equalf(t, exp.pos, tokens[i].Pos, "tokens[%d] position", i)
		require.Equalf(t, exp.spaced, tokens[i].Spaced, "tokens[%d] spaced", i)
	}
}

func TestKeywords(t *testing.T) {
	tests := []struct {
		input    string
		expected token.TokenType
	}{
		{"debugger", token.DEBUGGER},
		{"Read", token.READ},
		{"Write", token.WRITE},
		{"Delete", token.DELETE},
		{"read", token.IDENT},
		{"-Read", token.IDENT},
		{"lets", token.IDENT},
		{"_let", token.IDENT},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			tokens, err := Tokenize(tt.input)
			require.NoError(t, err)
			require.Equal(t, tt.expected, tokens[0].Type)
		})
	}
}

func TestMinusBinding(t *testing.T) {
	tokens, err := Tokenize("a-1 a - 1 a -b")
	require.NoError(t, err)

	var got []string
	for _, tok := range tokens {
		got = append(got, tok.Type.String()+" "+tok.Literal)
	}
	require.Equal(t, []string{
		"Identifier a",
		"NumberLiteral -1",
		"Identifier a",
		"Minus -",
		"NumberLiteral 1",
		"Identifier a",
		"Identifier -b",
		"EOF ",
	}, got)
}

func TestCommentShadowsPound(t *testing.T) {
	tokens, err := Tokenize("#\nx # trailing")
	require.NoError(t, err)
	require.Equal(t, token.COMMENT, tokens[0].Type)
	require.Equal(t, "#", tokens[0].Literal)
	require.Equal(t, token.COMMENT, tokens[2].Type)
	require.Equal(t, "# trailing", tokens[2].Literal)
	for _, tok := range tokens {
		require.NotEqual(t, token.POUND, tok.Type)
	}
}

func TestLexErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		pos   token.Position
		text  string
		msg   string
	}{
		{"unterminated string", `let x = "abc`, token.Position{Line: 1, Col: 9}, `"`, "Unexpected character"},
		{"unknown symbol", "x = 1\ny = $", token.Position{Line: 2, Col: 5}, "$", "Unexpected character"},
		{"string across lines", "\"a\nb\"", token.Position{Line: 1, Col: 1}, `"`, "Unexpected character"},
		{"out of range", "let x = 99999999999999999999", token.Position{Line: 1, Col: 9}, "99999999999999999999", "integer literal out of range"},
		{"invalid utf-8 in string", "let s = \"a\xffb\"", token.Position{Line: 1, Col: 9}, "\"a\xffb\"", "invalid UTF-8 in string literal"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Tokenize(tt.input)
			require.Error(t, err)

			var le *Error
			require.True(t, errors.As(err, &le))
			require.Equal(t, tt.pos, le.Pos)
			require.Equal(t, tt.text, le.Text)
			require.Equal(t, tt.msg, le.Msg)
		})
	}
}

func TestErrorIsSticky(t *testing.T) {
	l := New("a ~ b")
	tok, err := l.NextToken()
	require.NoError(t, err)
	require.Equal(t, "a", tok.Literal)

	_, first := l.NextToken()
	require.Error(t, first)
	tok, second := l.NextToken()
	require.Same(t, first, second)
	require.Equal(t, token.ILLEGAL, tok.Type)
}
