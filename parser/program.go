package parser

import (
	"github.com/canpacis/bir/ast"
	"github.com/canpacis/bir/lexer"
	"github.com/canpacis/bir/token"
)

// Result is a successful parse.
type Result struct {
	Program     *ast.Program
	Ambiguities []Ambiguity
}

// Ambiguous reports whether part of the input had more than one derivation.
func (r *Result) Ambiguous() bool {
	return len(r.Ambiguities) > 0
}

// Parse lexes and parses src.
func Parse(src string, opts ...Option) (*Result, error) {
	p := New(lexer.New(src), opts...)
	program, err := p.ParseProgram()
	if err != nil {
		return nil, err
	}
	return &Result{Program: program, Ambiguities: p.Ambiguities()}, nil
}

// ParseProgram parses (use "source")* Main* up to the end of input. It stops
// at the first error; no partial program is returned.
func (p *Parser) ParseProgram() (*ast.Program, error) {
	program := ast.NewProgram()

	for p.curTokenIs(token.USE) {
		use, err := p.parseUse()
		if err != nil {
			return nil, p.err()
		}
		program.Imports = append(program.Imports, use)
	}

	for !p.curTokenIs(token.EOF) {
		node, err := p.parseMain()
		if err != nil {
			return nil, p.err()
		}
		program.Program = append(program.Program, node)
	}

	if p.fatal != nil {
		return nil, p.fatal
	}
	return program, nil
}

func (p *Parser) parseUse() (*ast.Use, error) {
	kw := p.nextToken()
	src, err := p.expectSpaced(token.STRING)
	if err != nil {
		return nil, err
	}
	if !p.curTokenIs(token.EOF) && !p.curToken().Spaced {
		return nil, p.unexpected("whitespace")
	}
	return &ast.Use{Source: stringLiteral(src), Position: kw.Pos}, nil
}
