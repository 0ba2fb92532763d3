package parser

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/canpacis/bir/lexer"
	"github.com/canpacis/bir/token"
)

// SyntaxError is raised at the first token no alternative could consume.
type SyntaxError struct {
	Pos      token.Position
	Got      token.Token
	Expected []string
	// Msg replaces the "Unexpected ..." text when set.
	Msg string

	index int
}

func (e *SyntaxError) expect(expected ...string) {
	for _, exp := range expected {
		if !slices.Contains(e.Expected, exp) {
			e.Expected = append(e.Expected, exp)
		}
	}
}

// Message is the human-readable part of the error, without position and
// expectations.
func (e *SyntaxError) Message() string {
	switch {
	case e.Msg != "":
		return e.Msg
	case e.Got.Type == token.EOF:
		return "Unexpected end of input"
	default:
		return fmt.Sprintf("Unexpected %s token: %q", e.Got.Type, e.Got.Literal)
	}
}

func (e *SyntaxError) Error() string {
	msg := fmt.Sprintf("Syntax error at line %d col %d: %s", e.Pos.Line, e.Pos.Col, e.Message())
	if len(e.Expected) == 0 {
		return msg
	}
	return msg + ". Instead, I was expecting to see one of the following: " + strings.Join(e.Expected, ", ")
}

// Diagnostic is the structured form of a parse failure.
type Diagnostic struct {
	Message  string         `json:"message"`
	Position token.Position `json:"position"`
}

// Diagnose maps a failure returned by the parser or the lexer. Errors of any
// other kind keep their text up to the expectation clause and have no
// position.
func Diagnose(err error) Diagnostic {
	var se *SyntaxError
	if errors.As(err, &se) {
		return Diagnostic{Message: se.Message(), Position: se.Pos}
	}

	var le *lexer.Error
	if errors.As(err, &le) {
		return Diagnostic{Message: le.Message(), Position: le.Pos}
	}

	msg, _, _ := strings.Cut(err.Error(), ". Instead")
	return Diagnostic{Message: msg}
}
