package ast

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/canpacis/bir/token"
)

func pos(line, col uint32) token.Position {
	return token.Position{Line: line, Col: col}
}

func ref(value string, line, col uint32) *Reference {
	return &Reference{Value: value, Position: pos(line, col)}
}

func ident(value string, line, col uint32) *Identifier {
	return &Identifier{Value: value, Position: pos(line, col)}
}

func TestString(t *testing.T) {
	tests := []struct {
		name     string
		node     Node
		expected string
	}{
		{"negative reference", &Reference{Value: "x", Negative: true}, "-x"},
		{"string escapes", &StringLiteral{Value: "a\"b"}, `"a\"b"`},
		{"empty array", &ArrayLiteral{}, "[]"},
		{
			"log10 hides its right operand",
			&Arithmetic{Type: Log10, Left: ref("x", 1, 1), Right: DefaultRight()},
			"(x log)",
		},
		{
			"negated condition",
			&Condition{Type: Nor, Left: ref("a", 1, 1), Right: ref("b", 1, 7)},
			"(a !|| b)",
		},
		{
			"mutater without arguments",
			&ScopeMutater{Mutater: ident("Read", 1, 2)},
			"[Read]",
		},
		{
			"block declaration with init",
			&BlockDeclaration{
				Name:      ident("f", 1, 1),
				Arguments: []Expression{ref("a", 1, 4)},
				Body: &BlockContent{
					Init:    []Node{},
					Program: []Node{&Comment{Value: "# c"}},
				},
			},
			"f [a] { init { }; # c }",
		},
		{
			"switch with only a default",
			&SwitchStatement{Condition: ref("x", 1, 8), Default: &SwitchDefault{}},
			"switch x { default { } }",
		},
		{
			"divide",
			&QuantityModifier{Type: Divide, Statement: ref("x", 1, 1), Right: &IntLiteral{Value: 2}},
			"x /= 2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, tt.node.String())
		})
	}
}

func TestProgramString(t *testing.T) {
	p := NewProgram()
	p.Imports = append(p.Imports, &Use{Source: &StringLiteral{Value: "std"}})
	p.Program = append(p.Program,
		&VariableDeclaration{Kind: Const, Left: ident("x", 2, 7), Right: &IntLiteral{Value: 1}},
		&ReturnStatement{Expression: ref("x", 3, 8)},
	)
	require.Equal(t, "use \"std\"\nconst x = 1\nreturn x", p.String())
}

func TestConditionSigns(t *testing.T) {
	for sign, typ := range conditionSigns {
		got, ok := ConditionTypeOf(sign)
		require.True(t, ok)
		require.Equal(t, typ, got)
		require.Equal(t, sign, typ.Sign())
	}

	_, ok := ConditionTypeOf("=<")
	require.False(t, ok)
}

func TestOperators(t *testing.T) {
	require.Equal(t, "'", Root.Operator())
	require.Equal(t, "log", Log10.Operator())
	require.Equal(t, "%", Modulus.Operator())
	require.Equal(t, "++", Increment.Operator())
	require.Equal(t, "*=", Multiply.Operator())
}

func TestMarshalJSON(t *testing.T) {
	tests := []struct {
		name     string
		node     any
		expected string
	}{
		{
			"empty program",
			&Program{},
			`{"imports":[],"program":[]}`,
		},
		{
			"use",
			&Use{Source: &StringLiteral{Value: "io", Position: pos(1, 5)}, Position: pos(1, 1)},
			`{"source":{"operation":"primitive","type":"string","value":"io","position":{"line":1,"col":5}},"position":{"line":1,"col":1}}`,
		},
		{
			"identifier",
			&Identifier{Value: "v", Negative: true, Position: pos(1, 5)},
			`{"operation":"identifier","negative":true,"value":"v","position":{"line":1,"col":5}}`,
		},
		{
			"array values are never null",
			&ArrayLiteral{Position: pos(1, 9)},
			`{"operation":"primitive","type":"array","values":[],"position":{"line":1,"col":9}}`,
		},
		{
			"log10",
			&Arithmetic{Type: Log10, Left: ref("x", 1, 9), Right: DefaultRight(), Position: pos(1, 9)},
			`{"operation":"arithmetic","type":"log10",
			  "left":{"operation":"reference","negative":false,"value":"x","position":{"line":1,"col":9}},
			  "right":{"operation":"primitive","type":"int","value":0,"position":{"line":0,"col":0}},
			  "position":{"line":1,"col":9}}`,
		},
		{
			"condition",
			&Condition{Type: LessThan, Left: ref("a", 1, 4), Right: &IntLiteral{Value: 1, Position: pos(1, 8)}, Position: pos(1, 4)},
			`{"operation":"condition","type":"less_than",
			  "left":{"operation":"reference","negative":false,"value":"a","position":{"line":1,"col":4}},
			  "right":{"operation":"primitive","type":"int","value":1,"position":{"line":1,"col":8}},
			  "position":{"line":1,"col":4}}`,
		},
		{
			"block call lists are never null",
			&BlockCall{Name: ref("f", 1, 1), Position: pos(1, 1)},
			`{"operation":"block_call",
			  "name":{"operation":"reference","negative":false,"value":"f","position":{"line":1,"col":1}},
			  "verbs":[],"arguments":[],"position":{"line":1,"col":1}}`,
		},
		{
			"mutater without arguments",
			&ScopeMutater{Mutater: ident("Delete", 1, 2), Position: pos(1, 1)},
			`{"operation":"scope_mutater_expression",
			  "mutater":{"operation":"identifier","negative":false,"value":"Delete","position":{"line":1,"col":2}},
			  "arguments":null,"position":{"line":1,"col":1}}`,
		},
		{
			"block declaration",
			&BlockDeclaration{Name: ident("f", 1, 1), Body: &BlockContent{}, Position: pos(1, 1)},
			`{"operation":"block_declaration",
			  "name":{"operation":"identifier","negative":false,"value":"f","position":{"line":1,"col":1}},
			  "verbs":[],"arguments":null,"body":{"init":null,"program":[]},
			  "position":{"line":1,"col":1},"implementing":false,"initialized":false}`,
		},
		{
			"implements",
			&ImplementsDeclaration{Name: ident("a", 1, 1), Implements: ident("b", 1, 14), Position: pos(1, 1)},
			`{"operation":"block_declaration",
			  "name":{"operation":"identifier","negative":false,"value":"a","position":{"line":1,"col":1}},
			  "implements":{"operation":"identifier","negative":false,"value":"b","position":{"line":1,"col":14}},
			  "position":{"line":1,"col":1},"implementing":true,"populate":null,"initialized":false}`,
		},
		{
			"switch",
			&SwitchStatement{
				Condition: ref("x", 1, 8),
				Cases:     []*SwitchCase{{Case: &IntLiteral{Value: 1, Position: pos(1, 17)}}},
				Position:  pos(1, 1),
			},
			`{"operation":"switch_statement",
			  "condition":{"operation":"reference","negative":false,"value":"x","position":{"line":1,"col":8}},
			  "cases":[{"case":{"operation":"primitive","type":"int","value":1,"position":{"line":1,"col":17}},"body":[]}],
			  "default":null,"position":{"line":1,"col":1}}`,
		},
		{
			"if",
			&IfStatement{Condition: ref("a", 1, 4), Else: []Node{}, Position: pos(1, 1)},
			`{"operation":"if_statement",
			  "condition":{"operation":"reference","negative":false,"value":"a","position":{"line":1,"col":4}},
			  "body":[],"elifs":[],"else":[],"position":{"line":1,"col":1}}`,
		},
		{
			"throw",
			&ThrowStatement{Expression: &StringLiteral{Value: "e", Position: pos(1, 7)}, Position: pos(1, 1)},
			`{"operation":"throw_statement",
			  "expression":{"operation":"primitive","type":"string","value":"e","position":{"line":1,"col":7}},
			  "position":{"line":1,"col":1}}`,
		},
		{
			"increment has no right",
			&QuantityModifier{Type: Increment, Statement: ref("i", 1, 1), Position: pos(1, 1)},
			`{"operation":"quantity_modifier_statement","type":"increment",
			  "statement":{"operation":"reference","negative":false,"value":"i","position":{"line":1,"col":1}},
			  "position":{"line":1,"col":1}}`,
		},
		{
			"comment",
			&Comment{Value: "# hi", Position: pos(2, 3)},
			`{"operation":"comment","value":"# hi","position":{"line":2,"col":3}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := json.Marshal(tt.node)
			require.NoError(t, err)
			require.JSONEq(t, tt.expected, string(out))
		})
	}
}

func TestInspect(t *testing.T) {
	// f:v [a] { init { let c = 0 } if c < a { c++ } else { return [c, "x"] } }
	decl := &BlockDeclaration{
		Name:      ident("f", 1, 1),
		Verbs:     []Expression{ref("v", 1, 3)},
		Arguments: []Expression{ref("a", 1, 6)},
		Body: &BlockContent{
			Init: []Node{
				&VariableDeclaration{Kind: Let, Left: ident("c", 1, 23), Right: &IntLiteral{Value: 0}},
			},
			Program: []Node{
				&IfStatement{
					Condition: &Condition{Type: LessThan, Left: ref("c", 1, 35), Right: ref("a", 1, 39)},
					Body:      []Node{&QuantityModifier{Type: Increment, Statement: ref("c", 1, 43)}},
					Else: []Node{&ReturnStatement{Expression: &ArrayLiteral{Values: []Expression{
						ref("c", 1, 64),
						&StringLiteral{Value: "x"},
					}}}},
				},
			},
		},
	}

	var kinds []string
	Inspect(decl, func(n Node) bool {
		switch n.(type) {
		case *Identifier:
			kinds = append(kinds, "ident")
		case *Reference:
			kinds = append(kinds, "ref")
		case *IfStatement:
			kinds = append(kinds, "if")
		case *ReturnStatement:
			kinds = append(kinds, "return")
		}
		return true
	})
	require.Equal(t, []string{
		"ident", "ref", "ref",
		"ident",
		"if", "ref", "ref", "ref",
		"return", "ref",
	}, kinds)

	p := NewProgram()
	p.Program = append(p.Program, decl)
	require.Equal(t, 17, Count(p))
}

func TestInspectSkipsChildren(t *testing.T) {
	p := NewProgram()
	p.Imports = append(p.Imports, &Use{Source: &StringLiteral{Value: "std"}})
	p.Program = append(p.Program,
		&WhileStatement{
			Statement: ref("x", 1, 7),
			Body:      []Node{&AssignStatement{Left: ref("x", 1, 11), Right: &IntLiteral{Value: 1}}},
		},
		&Comment{Value: "#"},
	)

	var seen []string
	InspectProgram(p, func(n Node) bool {
		seen = append(seen, n.String())
		_, loop := n.(*WhileStatement)
		return !loop
	})
	require.Equal(t, []string{`"std"`, "while x { x = 1 }", "#"}, seen)
}
