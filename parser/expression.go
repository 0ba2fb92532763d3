package parser

import (
	"strings"

	"github.com/canpacis/bir/ast"
	"github.com/canpacis/bir/token"
)

var arithmetics = map[token.TokenType]ast.ArithmeticType{
	token.ADD:   ast.Addition,
	token.SUB:   ast.Subtraction,
	token.MUL:   ast.Multiplication,
	token.QUO:   ast.Division,
	token.CARET: ast.Exponent,
	token.APOS:  ast.Root,
	token.REM:   ast.Modulus,
}

// operandStart lists what may begin a SubExpression.
var operandStart = []string{
	token.INT.String(),
	token.BINARY.String(),
	token.HEX.String(),
	token.OCTAL.String(),
	token.STRING.String(),
	token.IDENT.String(),
	token.LBRACK.String(),
	token.LBRACE.String(),
}

// parseExpression parses the lowest level: an Arithmetic optionally
// followed by condition signs, nesting to the left.
func (p *Parser) parseExpression() (ast.Expression, error) {
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()

	left, err := p.parseArithmetic()
	if err != nil {
		return nil, err
	}

	for p.curTokenIs(token.COND) {
		sign := p.nextToken()
		typ, _ := ast.ConditionTypeOf(sign.Literal)
		right, err := p.parseArithmetic()
		if err != nil {
			return nil, err
		}
		left = &ast.Condition{Type: typ, Left: left, Right: right, Position: left.Pos()}
	}
	return left, nil
}

func (p *Parser) parseArithmetic() (ast.Expression, error) {
	left, err := p.parseMultDiv()
	if err != nil {
		return nil, err
	}

	for p.curTokenIs(token.ADD) || p.curTokenIs(token.SUB) {
		typ := arithmetics[p.nextToken().Type]
		right, err := p.parseMultDiv()
		if err != nil {
			return nil, err
		}
		left = &ast.Arithmetic{Type: typ, Left: left, Right: right, Position: left.Pos()}
	}
	return left, nil
}

func (p *Parser) parseMultDiv() (ast.Expression, error) {
	left, err := p.parseExponent()
	if err != nil {
		return nil, err
	}

	for p.curTokenIs(token.MUL) || p.curTokenIs(token.QUO) {
		typ := arithmetics[p.nextToken().Type]
		right, err := p.parseExponent()
		if err != nil {
			return nil, err
		}
		left = &ast.Arithmetic{Type: typ, Left: left, Right: right, Position: left.Pos()}
	}
	return left, nil
}

// parseExponent handles ^ ' % and the postfix log. They nest to the right.
func (p *Parser) parseExponent() (ast.Expression, error) {
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()

	left, err := p.parseCaller()
	if err != nil {
		return nil, err
	}

	switch p.curToken().Type {
	case token.CARET, token.APOS, token.REM:
		typ := arithmetics[p.nextToken().Type]
		right, err := p.parseExponent()
		if err != nil {
			return nil, err
		}
		return &ast.Arithmetic{Type: typ, Left: left, Right: right, Position: left.Pos()}, nil
	case token.LOG:
		p.nextToken()
		return &ast.Arithmetic{Type: ast.Log10, Left: left, Right: ast.DefaultRight(), Position: left.Pos()}, nil
	}
	return left, nil
}

// parseCaller parses an operand and the calls applied to it, left to right:
// foo(1)(2) is a call of foo(1).
func (p *Parser) parseCaller() (ast.Expression, error) {
	start := p.pos
	left, err := p.parseScopeMutater()
	if err != nil {
		return nil, err
	}

	for !p.noCall[start] && (p.curTokenIs(token.COLON) || p.curTokenIs(token.LPAREN)) {
		call, err := p.parseCall(left)
		if err != nil {
			if p.fatal != nil {
				return nil, p.fatal
			}
			break
		}
		left = call
	}
	p.lastCaller = start
	return left, nil
}

// parseCall parses ":verb"* "(" arguments ")" after name. Verbs may contain
// calls of their own. When the last verb swallowed the argument list, the
// verbs are parsed again with the last Caller of that verb left bare, until
// an argument list remains for name. On failure the cursor is left where
// it was.
func (p *Parser) parseCall(name ast.Expression) (*ast.BlockCall, error) {
	m := p.save()
	var bare []int
	defer func() {
		for _, i := range bare {
			delete(p.noCall, i)
		}
	}()

	for {
		verbs, err := p.parseVerbs()
		if err != nil {
			p.restore(m)
			return nil, err
		}

		if p.curTokenIs(token.LPAREN) {
			args, err := p.parseArguments()
			if err != nil {
				p.restore(m)
				return nil, err
			}
			if len(verbs) > 0 && p.curTokenIs(token.LPAREN) {
				p.ambiguous(p.curToken().Pos, "argument list after a call with verbs may also close the last verb")
			}
			return &ast.BlockCall{Name: name, Verbs: verbs, Arguments: args, Position: name.Pos()}, nil
		}

		err = p.unexpected(token.COLON.String(), token.LPAREN.String())
		last := p.lastCaller
		p.restore(m)
		if len(verbs) == 0 || p.noCall[last] {
			return nil, err
		}
		p.noCall[last] = true
		bare = append(bare, last)
	}
}

// parseVerbs parses ":Expression"*.
func (p *Parser) parseVerbs() ([]ast.Expression, error) {
	verbs := []ast.Expression{}
	for p.curTokenIs(token.COLON) {
		p.nextToken()
		verb, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		verbs = append(verbs, verb)
	}
	return verbs, nil
}

// parseArguments parses "(" list? ")". An empty list is an empty slice.
func (p *Parser) parseArguments() ([]ast.Expression, error) {
	if _, err := p.expectCur(token.LPAREN); err != nil {
		return nil, err
	}
	if p.curTokenIs(token.RPAREN) {
		p.nextToken()
		return []ast.Expression{}, nil
	}
	return p.parseList(token.RPAREN)
}

// parseList parses one or more comma separated expressions and the closing
// token.
func (p *Parser) parseList(end token.TokenType) ([]ast.Expression, error) {
	list := []ast.Expression{}
	for {
		exp, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		list = append(list, exp)

		if !p.curTokenIs(token.COMMA) {
			break
		}
		p.nextToken()
	}

	if !p.curTokenIs(end) {
		return nil, p.unexpected(token.COMMA.String(), end.String())
	}
	p.nextToken()
	return list, nil
}

// parseScopeMutater parses "[" Read|Write|Delete arguments? "]" and falls
// back to a SubExpression.
func (p *Parser) parseScopeMutater() (ast.Expression, error) {
	if !p.curTokenIs(token.LBRACK) || !p.peekToken().IsMutater() {
		return p.parseSubExpression()
	}

	open := p.nextToken()
	kw := p.nextToken()
	sm := &ast.ScopeMutater{
		Mutater:  &ast.Identifier{Value: kw.Literal, Position: kw.Pos},
		Position: open.Pos,
	}
	if p.curTokenIs(token.RBRACK) {
		p.nextToken()
		return sm, nil
	}
	if err := p.requireSpace(); err != nil {
		return nil, err
	}

	args, err := p.parseList(token.RBRACK)
	if err != nil {
		return nil, err
	}
	sm.Arguments = args
	return sm, nil
}

func (p *Parser) parseSubExpression() (ast.Expression, error) {
	tok := p.curToken()
	switch {
	case tok.IsNumber():
		p.nextToken()
		return &ast.IntLiteral{Value: tok.Value.(int64), Position: tok.Pos}, nil
	case tok.Type == token.STRING:
		p.nextToken()
		return stringLiteral(tok), nil
	case tok.Type == token.IDENT:
		p.nextToken()
		return reference(tok), nil
	case tok.Type == token.LBRACK:
		return p.parseArrayLiteral()
	case tok.Type == token.LBRACE:
		return p.parseGrouping()
	}
	return nil, p.unexpected(operandStart...)
}

func (p *Parser) parseArrayLiteral() (ast.Expression, error) {
	open, err := p.expectCur(token.LBRACK)
	if err != nil {
		return nil, err
	}

	array := &ast.ArrayLiteral{Values: []ast.Expression{}, Position: open.Pos}
	if p.curTokenIs(token.RBRACK) {
		p.nextToken()
		return array, nil
	}

	values, err := p.parseList(token.RBRACK)
	if err != nil {
		return nil, err
	}
	array.Values = values
	return array, nil
}

// parseGrouping parses "{" Expression "}". The group leaves no node of
// its own.
func (p *Parser) parseGrouping() (ast.Expression, error) {
	if _, err := p.expectCur(token.LBRACE); err != nil {
		return nil, err
	}
	exp, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expectCur(token.RBRACE); err != nil {
		return nil, err
	}
	return exp, nil
}

func stringLiteral(tok token.Token) *ast.StringLiteral {
	return &ast.StringLiteral{Value: tok.Value.(string), Position: tok.Pos}
}

func identifier(tok token.Token) *ast.Identifier {
	value, negative := strings.CutPrefix(tok.Literal, "-")
	return &ast.Identifier{Value: value, Negative: negative, Position: tok.Pos}
}

func reference(tok token.Token) *ast.Reference {
	value, negative := strings.CutPrefix(tok.Literal, "-")
	return &ast.Reference{Value: value, Negative: negative, Position: tok.Pos}
}
