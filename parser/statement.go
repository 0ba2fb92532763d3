package parser

import (
	"github.com/canpacis/bir/ast"
	"github.com/canpacis/bir/token"
)

var quantities = map[token.TokenType]ast.QuantityType{
	token.ADD: ast.Add,
	token.SUB: ast.Subtract,
	token.MUL: ast.Multiply,
	token.QUO: ast.Divide,
}

// parseMain parses one statement, comment or Caller expression.
func (p *Parser) parseMain() (ast.Node, error) {
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()

	switch p.curToken().Type {
	case token.COMMENT:
		tok := p.nextToken()
		return &ast.Comment{Value: tok.Literal, Position: tok.Pos}, nil
	case token.CONST, token.LET:
		return p.parseVariableDeclaration()
	case token.FOR:
		return p.parseForStatement()
	case token.SWITCH:
		return p.parseSwitchStatement()
	case token.WHILE:
		return p.parseWhileStatement()
	case token.IF:
		return p.parseIfStatement()
	case token.RETURN:
		return p.parseReturnStatement()
	case token.THROW:
		return p.parseThrowStatement()
	case token.IDENT:
		return p.parseIdentStatement()
	}
	return p.parseCaller()
}

// parseIdentStatement dispatches on what follows a leading identifier.
func (p *Parser) parseIdentStatement() (ast.Node, error) {
	switch {
	case p.peekTokenIs(token.IMPLEMENTS):
		return p.parseImplementsDeclaration()
	case p.peekTokenIs(token.ASSIGN):
		return p.parseAssignStatement()
	}

	if typ, ok := p.quantityOperator(); ok {
		return p.parseQuantityModifier(typ)
	}

	decl, committed, err := p.parseBlockDeclaration()
	if committed || p.fatal != nil {
		if err != nil {
			return nil, err
		}
		return decl, nil
	}
	return p.parseCaller()
}

// quantityOperator reports whether the identifier is followed by ++ or --
// (touching the identifier and each other) or by one of += -= *= /=
// (the two symbols touching).
func (p *Parser) quantityOperator() (ast.QuantityType, bool) {
	op, next := p.tokenAt(1), p.tokenAt(2)
	if next.Spaced {
		return "", false
	}
	switch {
	case next.Type == token.ASSIGN:
		typ, ok := quantities[op.Type]
		return typ, ok
	case op.Spaced || op.Type != next.Type:
		return "", false
	case op.Type == token.ADD:
		return ast.Increment, true
	case op.Type == token.SUB:
		return ast.Decrement, true
	}
	return "", false
}

func (p *Parser) parseQuantityModifier(typ ast.QuantityType) (*ast.QuantityModifier, error) {
	target := reference(p.nextToken())
	p.nextToken()
	p.nextToken()

	qm := &ast.QuantityModifier{Type: typ, Statement: target, Position: target.Position}
	if typ == ast.Increment || typ == ast.Decrement {
		return qm, nil
	}

	right, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	qm.Right = right
	return qm, nil
}

func (p *Parser) parseAssignStatement() (*ast.AssignStatement, error) {
	target := reference(p.nextToken())
	if _, err := p.expectCur(token.ASSIGN); err != nil {
		return nil, err
	}
	right, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	return &ast.AssignStatement{Left: target, Right: right, Position: target.Position}, nil
}

func (p *Parser) parseVariableDeclaration() (*ast.VariableDeclaration, error) {
	kw := p.nextToken()
	name, err := p.expectSpaced(token.IDENT)
	if err != nil {
		return nil, err
	}
	if _, err := p.expectCur(token.ASSIGN); err != nil {
		return nil, err
	}
	right, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	return &ast.VariableDeclaration{
		Kind:     ast.DeclarationKind(kw.Literal),
		Left:     identifier(name),
		Right:    right,
		Position: kw.Pos,
	}, nil
}

// parseBlockDeclaration tries name:verbs [arguments] { body }. Up to the
// "{" that opens the body nothing is consumed on failure; from there on the
// declaration is committed and its errors are final.
func (p *Parser) parseBlockDeclaration() (*ast.BlockDeclaration, bool, error) {
	m := p.save()
	name := identifier(p.nextToken())

	verbs, err := p.parseVerbs()
	if err != nil {
		p.restore(m)
		return nil, false, err
	}
	if !p.curTokenIs(token.LBRACK) || !p.curToken().Spaced {
		err := p.unexpected(token.COLON.String(), token.LBRACK.String())
		p.restore(m)
		return nil, false, err
	}
	p.nextToken()

	var args []ast.Expression
	if p.curTokenIs(token.RBRACK) {
		p.nextToken()
	} else if args, err = p.parseList(token.RBRACK); err != nil {
		p.restore(m)
		return nil, false, err
	}
	if !p.curTokenIs(token.LBRACE) {
		err := p.unexpected(token.LBRACE.String())
		p.restore(m)
		return nil, false, err
	}

	open := p.pos
	body, err := p.parseBlockContent()
	if err != nil {
		return nil, true, err
	}
	if len(verbs) == 0 && body.Init == nil && len(body.Program) == 1 && p.tight(open) {
		if _, ok := body.Program[0].(ast.Expression); ok {
			p.ambiguous(name.Position, "block declaration body may also be read as a grouped expression")
		}
	}
	return &ast.BlockDeclaration{
		Name:      name,
		Verbs:     verbs,
		Arguments: args,
		Body:      body,
		Position:  name.Position,
	}, true, nil
}

// parseImplementsDeclaration parses name implements other, with an optional
// { "string" } or { [array] } populate payload.
func (p *Parser) parseImplementsDeclaration() (*ast.ImplementsDeclaration, error) {
	name := identifier(p.nextToken())
	p.nextToken()
	impl, err := p.expectCur(token.IDENT)
	if err != nil {
		return nil, err
	}

	decl := &ast.ImplementsDeclaration{
		Name:       name,
		Implements: identifier(impl),
		Position:   name.Position,
	}
	if p.curTokenIs(token.LBRACE) && p.curToken().Spaced {
		m := p.save()
		if populate, err := p.parsePopulate(); err == nil {
			decl.Populate = populate
			if p.tight(m.pos) {
				p.ambiguous(name.Position, "populate payload may also be read as a grouped expression")
			}
		} else {
			p.restore(m)
		}
	}
	return decl, nil
}

func (p *Parser) parsePopulate() (ast.Expression, error) {
	p.nextToken()

	var populate ast.Expression
	switch {
	case p.curTokenIs(token.STRING):
		populate = stringLiteral(p.nextToken())
	case p.curTokenIs(token.LBRACK):
		array, err := p.parseArrayLiteral()
		if err != nil {
			return nil, err
		}
		populate = array
	default:
		return nil, p.unexpected(token.STRING.String(), token.LBRACK.String())
	}

	if _, err := p.expectCur(token.RBRACE); err != nil {
		return nil, err
	}
	return populate, nil
}

func (p *Parser) parseForStatement() (*ast.ForStatement, error) {
	kw := p.nextToken()
	if err := p.requireSpace(); err != nil {
		return nil, err
	}
	exp, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expectSpaced(token.AS); err != nil {
		return nil, err
	}
	placeholder, err := p.expectSpaced(token.IDENT)
	if err != nil {
		return nil, err
	}
	body, err := p.parseCodeBlock()
	if err != nil {
		return nil, err
	}
	return &ast.ForStatement{
		Statement:   exp,
		Placeholder: identifier(placeholder).Value,
		Body:        body,
		Position:    kw.Pos,
	}, nil
}

func (p *Parser) parseWhileStatement() (*ast.WhileStatement, error) {
	kw := p.nextToken()
	exp, body, err := p.parseGuardedBlock()
	if err != nil {
		return nil, err
	}
	return &ast.WhileStatement{Statement: exp, Body: body, Position: kw.Pos}, nil
}

func (p *Parser) parseIfStatement() (*ast.IfStatement, error) {
	kw := p.nextToken()
	cond, body, err := p.parseGuardedBlock()
	if err != nil {
		return nil, err
	}

	stmt := &ast.IfStatement{Condition: cond, Body: body, Elifs: []*ast.Elif{}, Position: kw.Pos}
	for p.curTokenIs(token.ELIF) {
		p.nextToken()
		cond, body, err := p.parseGuardedBlock()
		if err != nil {
			return nil, err
		}
		stmt.Elifs = append(stmt.Elifs, &ast.Elif{Condition: cond, Body: body})
	}

	if p.curTokenIs(token.ELSE) {
		p.nextToken()
		if stmt.Else, err = p.parseCodeBlock(); err != nil {
			return nil, err
		}
	}
	return stmt, nil
}

func (p *Parser) parseSwitchStatement() (*ast.SwitchStatement, error) {
	kw := p.nextToken()
	if err := p.requireSpace(); err != nil {
		return nil, err
	}
	cond, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expectCur(token.LBRACE); err != nil {
		return nil, err
	}

	stmt := &ast.SwitchStatement{Condition: cond, Cases: []*ast.SwitchCase{}, Position: kw.Pos}
	for p.curTokenIs(token.CASE) {
		p.nextToken()
		exp, body, err := p.parseGuardedBlock()
		if err != nil {
			return nil, err
		}
		stmt.Cases = append(stmt.Cases, &ast.SwitchCase{Case: exp, Body: body})
	}

	if p.curTokenIs(token.DEFAULT) {
		p.nextToken()
		body, err := p.parseCodeBlock()
		if err != nil {
			return nil, err
		}
		stmt.Default = &ast.SwitchDefault{Body: body}
	}

	if !p.curTokenIs(token.RBRACE) {
		if stmt.Default != nil {
			return nil, p.unexpected(token.RBRACE.String())
		}
		return nil, p.unexpected(token.CASE.String(), token.DEFAULT.String(), token.RBRACE.String())
	}
	p.nextToken()
	return stmt, nil
}

func (p *Parser) parseReturnStatement() (*ast.ReturnStatement, error) {
	kw := p.nextToken()
	exp, err := p.parseSpacedExpression()
	if err != nil {
		return nil, err
	}
	return &ast.ReturnStatement{Expression: exp, Position: kw.Pos}, nil
}

func (p *Parser) parseThrowStatement() (*ast.ThrowStatement, error) {
	kw := p.nextToken()
	exp, err := p.parseSpacedExpression()
	if err != nil {
		return nil, err
	}
	return &ast.ThrowStatement{Expression: exp, Position: kw.Pos}, nil
}

// parseSpacedExpression parses an Expression that must be separated from
// the keyword before it.
func (p *Parser) parseSpacedExpression() (ast.Expression, error) {
	if err := p.requireSpace(); err != nil {
		return nil, err
	}
	return p.parseExpression()
}

// parseGuardedBlock parses the " Expression { ... }" tail shared by while,
// if, elif and case.
func (p *Parser) parseGuardedBlock() (ast.Expression, []ast.Node, error) {
	exp, err := p.parseSpacedExpression()
	if err != nil {
		return nil, nil, err
	}
	body, err := p.parseCodeBlock()
	if err != nil {
		return nil, nil, err
	}
	return exp, body, nil
}

// parseCodeBlock parses "{" Main* "}".
func (p *Parser) parseCodeBlock() ([]ast.Node, error) {
	if _, err := p.expectCur(token.LBRACE); err != nil {
		return nil, err
	}
	return p.parseBody()
}

// parseBlockContent parses "{" (init { Main* })? Main* "}".
func (p *Parser) parseBlockContent() (*ast.BlockContent, error) {
	if _, err := p.expectCur(token.LBRACE); err != nil {
		return nil, err
	}

	content := &ast.BlockContent{}
	if p.curTokenIs(token.INIT) {
		p.nextToken()
		init, err := p.parseCodeBlock()
		if err != nil {
			return nil, err
		}
		content.Init = init
	}

	program, err := p.parseBody()
	if err != nil {
		return nil, err
	}
	content.Program = program
	return content, nil
}

// parseBody parses Main* up to and including the closing "}".
func (p *Parser) parseBody() ([]ast.Node, error) {
	body := []ast.Node{}
	for !p.curTokenIs(token.RBRACE) {
		if p.curTokenIs(token.EOF) {
			return nil, p.unexpected(token.RBRACE.String())
		}
		node, err := p.parseMain()
		if err != nil {
			return nil, err
		}
		body = append(body, node)
	}
	p.nextToken()
	return body, nil
}
