package ast

import (
	"encoding/json"

	"github.com/canpacis/bir/token"
)

// The JSON form is the wire shape consumed by the Bir engine: every node
// carries an "operation" tag and a "position". Lists that the grammar always
// produces are emitted as [] when empty; optional parts are emitted as null.

func orEmpty[T any](list []T) []T {
	if list == nil {
		return []T{}
	}
	return list
}

func (p *Program) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Imports []*Use `json:"imports"`
		Program []Node `json:"program"`
	}{orEmpty(p.Imports), orEmpty(p.Program)})
}

func (u *Use) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Source   *StringLiteral `json:"source"`
		Position token.Position `json:"position"`
	}{u.Source, u.Position})
}

func (il *IntLiteral) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Operation string         `json:"operation"`
		Type      string         `json:"type"`
		Value     int64          `json:"value"`
		Position  token.Position `json:"position"`
	}{"primitive", "int", il.Value, il.Position})
}

func (sl *StringLiteral) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Operation string         `json:"operation"`
		Type      string         `json:"type"`
		Value     string         `json:"value"`
		Position  token.Position `json:"position"`
	}{"primitive", "string", sl.Value, sl.Position})
}

func (al *ArrayLiteral) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Operation string         `json:"operation"`
		Type      string         `json:"type"`
		Values    []Expression   `json:"values"`
		Position  token.Position `json:"position"`
	}{"primitive", "array", orEmpty(al.Values), al.Position})
}

type name struct {
	Operation string         `json:"operation"`
	Negative  bool           `json:"negative"`
	Value     string         `json:"value"`
	Position  token.Position `json:"position"`
}

func (i *Identifier) MarshalJSON() ([]byte, error) {
	return json.Marshal(name{"identifier", i.Negative, i.Value, i.Position})
}

func (r *Reference) MarshalJSON() ([]byte, error) {
	return json.Marshal(name{"reference", r.Negative, r.Value, r.Position})
}

type binary struct {
	Operation string         `json:"operation"`
	Type      string         `json:"type"`
	Left      Expression     `json:"left"`
	Right     Expression     `json:"right"`
	Position  token.Position `json:"position"`
}

func (c *Condition) MarshalJSON() ([]byte, error) {
	return json.Marshal(binary{"condition", string(c.Type), c.Left, c.Right, c.Position})
}

func (a *Arithmetic) MarshalJSON() ([]byte, error) {
	return json.Marshal(binary{"arithmetic", string(a.Type), a.Left, a.Right, a.Position})
}

func (bc *BlockCall) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Operation string         `json:"operation"`
		Name      Expression     `json:"name"`
		Verbs     []Expression   `json:"verbs"`
		Arguments []Expression   `json:"arguments"`
		Position  token.Position `json:"position"`
	}{"block_call", bc.Name, orEmpty(bc.Verbs), orEmpty(bc.Arguments), bc.Position})
}

func (sm *ScopeMutater) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Operation string         `json:"operation"`
		Mutater   *Identifier    `json:"mutater"`
		Arguments []Expression   `json:"arguments"`
		Position  token.Position `json:"position"`
	}{"scope_mutater_expression", sm.Mutater, sm.Arguments, sm.Position})
}

func (vd *VariableDeclaration) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Operation string         `json:"operation"`
		Kind      string         `json:"kind"`
		Left      *Identifier    `json:"left"`
		Right     Expression     `json:"right"`
		Position  token.Position `json:"position"`
	}{"variable_declaration", string(vd.Kind), vd.Left, vd.Right, vd.Position})
}

func (bc *BlockContent) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Init    []Node `json:"init"`
		Program []Node `json:"program"`
	}{bc.Init, orEmpty(bc.Program)})
}

func (bd *BlockDeclaration) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Operation    string         `json:"operation"`
		Name         *Identifier    `json:"name"`
		Verbs        []Expression   `json:"verbs"`
		Arguments    []Expression   `json:"arguments"`
		Body         *BlockContent  `json:"body"`
		Position     token.Position `json:"position"`
		Implementing bool           `json:"implementing"`
		Initialized  bool           `json:"initialized"`
	}{"block_declaration", bd.Name, orEmpty(bd.Verbs), bd.Arguments, bd.Body, bd.Position, false, false})
}

func (id *ImplementsDeclaration) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Operation    string         `json:"operation"`
		Name         *Identifier    `json:"name"`
		Implements   *Identifier    `json:"implements"`
		Position     token.Position `json:"position"`
		Implementing bool           `json:"implementing"`
		Populate     Expression     `json:"populate"`
		Initialized  bool           `json:"initialized"`
	}{"block_declaration", id.Name, id.Implements, id.Position, true, id.Populate, false})
}

func (fs *ForStatement) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Operation   string         `json:"operation"`
		Statement   Expression     `json:"statement"`
		Placeholder string         `json:"placeholder"`
		Body        []Node         `json:"body"`
		Position    token.Position `json:"position"`
	}{"for_statement", fs.Statement, fs.Placeholder, orEmpty(fs.Body), fs.Position})
}

func (ws *WhileStatement) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Operation string         `json:"operation"`
		Statement Expression     `json:"statement"`
		Body      []Node         `json:"body"`
		Position  token.Position `json:"position"`
	}{"while_statement", ws.Statement, orEmpty(ws.Body), ws.Position})
}

func (e *Elif) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Condition Expression `json:"condition"`
		Body      []Node     `json:"body"`
	}{e.Condition, orEmpty(e.Body)})
}

func (is *IfStatement) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Operation string         `json:"operation"`
		Condition Expression     `json:"condition"`
		Body      []Node         `json:"body"`
		Elifs     []*Elif        `json:"elifs"`
		Else      []Node         `json:"else"`
		Position  token.Position `json:"position"`
	}{"if_statement", is.Condition, orEmpty(is.Body), orEmpty(is.Elifs), is.Else, is.Position})
}

func (sc *SwitchCase) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Case Expression `json:"case"`
		Body []Node     `json:"body"`
	}{sc.Case, orEmpty(sc.Body)})
}

func (sd *SwitchDefault) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Body []Node `json:"body"`
	}{orEmpty(sd.Body)})
}

func (ss *SwitchStatement) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Operation string         `json:"operation"`
		Condition Expression     `json:"condition"`
		Cases     []*SwitchCase  `json:"cases"`
		Default   *SwitchDefault `json:"default"`
		Position  token.Position `json:"position"`
	}{"switch_statement", ss.Condition, orEmpty(ss.Cases), ss.Default, ss.Position})
}

type unary struct {
	Operation  string         `json:"operation"`
	Expression Expression     `json:"expression"`
	Position   token.Position `json:"position"`
}

func (rs *ReturnStatement) MarshalJSON() ([]byte, error) {
	return json.Marshal(unary{"return_statement", rs.Expression, rs.Position})
}

func (ts *ThrowStatement) MarshalJSON() ([]byte, error) {
	return json.Marshal(unary{"throw_statement", ts.Expression, ts.Position})
}

func (as *AssignStatement) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Operation string         `json:"operation"`
		Left      *Reference     `json:"left"`
		Right     Expression     `json:"right"`
		Position  token.Position `json:"position"`
	}{"assign_statement", as.Left, as.Right, as.Position})
}

func (qm *QuantityModifier) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Operation string         `json:"operation"`
		Type      string         `json:"type"`
		Statement *Reference     `json:"statement"`
		Right     Expression     `json:"right,omitempty"`
		Position  token.Position `json:"position"`
	}{"quantity_modifier_statement", string(qm.Type), qm.Statement, qm.Right, qm.Position})
}

func (c *Comment) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Operation string         `json:"operation"`
		Value     string         `json:"value"`
		Position  token.Position `json:"position"`
	}{"comment", c.Value, c.Position})
}
