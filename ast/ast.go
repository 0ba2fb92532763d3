package ast

import (
	"bytes"
	"strconv"
	"strings"

	"github.com/canpacis/bir/token"
)

// The base Node interface
type Node interface {
	Pos() token.Position
	String() string
	Accept(v Visitor)
}

// All statement nodes implement this
type Statement interface {
	Node
	statementNode()
}

// All expression nodes implement this
type Expression interface {
	Node
	expressionNode()
}

type Program struct {
	Imports []*Use
	Program []Node
}

// NewProgram returns the empty program, the result of parsing nothing.
func NewProgram() *Program {
	return &Program{
		Imports: []*Use{},
		Program: []Node{},
	}
}

func (p *Program) String() string {
	parts := []string{}
	for _, u := range p.Imports {
		parts = append(parts, u.String())
	}
	for _, n := range p.Program {
		parts = append(parts, n.String())
	}
	return strings.Join(parts, "\n")
}

type Use struct {
	Source   *StringLiteral
	Position token.Position
}

func (u *Use) Pos() token.Position { return u.Position }
func (u *Use) String() string      { return "use " + u.Source.String() }

func printList[T Node](list []T) string {
	parts := make([]string, 0, len(list))
	for _, n := range list {
		parts = append(parts, n.String())
	}
	return strings.Join(parts, ", ")
}

func printBody(body []Node) string {
	if len(body) == 0 {
		return "{ }"
	}
	parts := make([]string, 0, len(body))
	for _, n := range body {
		parts = append(parts, n.String())
	}
	return "{ " + strings.Join(parts, "; ") + " }"
}

func printVerbs(verbs []Expression) string {
	var out bytes.Buffer
	for _, v := range verbs {
		out.WriteString(":")
		out.WriteString(v.String())
	}
	return out.String()
}

// Expressions
type IntLiteral struct {
	Value    int64
	Position token.Position
}

func (il *IntLiteral) expressionNode()     {}
func (il *IntLiteral) Pos() token.Position { return il.Position }
func (il *IntLiteral) String() string      { return strconv.FormatInt(il.Value, 10) }

type StringLiteral struct {
	Value    string
	Position token.Position
}

func (sl *StringLiteral) expressionNode()     {}
func (sl *StringLiteral) Pos() token.Position { return sl.Position }
func (sl *StringLiteral) String() string      { return strconv.Quote(sl.Value) }

type ArrayLiteral struct {
	Values   []Expression
	Position token.Position
}

func (al *ArrayLiteral) expressionNode()     {}
func (al *ArrayLiteral) Pos() token.Position { return al.Position }
func (al *ArrayLiteral) String() string      { return "[" + printList(al.Values) + "]" }

// Identifier names a declaration. A leading '-' in the source is kept as
// Negative and stripped from Value.
type Identifier struct {
	Value    string
	Negative bool
	Position token.Position
}

func (i *Identifier) Pos() token.Position { return i.Position }
func (i *Identifier) String() string {
	if i.Negative {
		return "-" + i.Value
	}
	return i.Value
}

// Reference is a variable read; it is also the only mutatable target.
type Reference struct {
	Value    string
	Negative bool
	Position token.Position
}

func (r *Reference) expressionNode()     {}
func (r *Reference) Pos() token.Position { return r.Position }
func (r *Reference) String() string {
	if r.Negative {
		return "-" + r.Value
	}
	return r.Value
}

type Condition struct {
	Type     ConditionType
	Left     Expression
	Right    Expression
	Position token.Position
}

func (c *Condition) expressionNode()     {}
func (c *Condition) Pos() token.Position { return c.Position }
func (c *Condition) String() string {
	var out bytes.Buffer

	out.WriteString("(")
	out.WriteString(c.Left.String())
	out.WriteString(" " + c.Type.Sign() + " ")
	out.WriteString(c.Right.String())
	out.WriteString(")")

	return out.String()
}

type Arithmetic struct {
	Type     ArithmeticType
	Left     Expression
	Right    Expression
	Position token.Position
}

func (a *Arithmetic) expressionNode()     {}
func (a *Arithmetic) Pos() token.Position { return a.Position }
func (a *Arithmetic) String() string {
	var out bytes.Buffer

	out.WriteString("(")
	out.WriteString(a.Left.String())
	out.WriteString(" " + a.Type.Operator())
	if a.Type != Log10 {
		out.WriteString(" ")
		out.WriteString(a.Right.String())
	}
	out.WriteString(")")

	return out.String()
}

// DefaultRight is the operand of the unary log10 form.
func DefaultRight() *IntLiteral {
	return &IntLiteral{Value: 0, Position: token.Position{Line: 0, Col: 0}}
}

type BlockCall struct {
	Name      Expression
	Verbs     []Expression
	Arguments []Expression
	Position  token.Position
}

func (bc *BlockCall) expressionNode()     {}
func (bc *BlockCall) Pos() token.Position { return bc.Position }
func (bc *BlockCall) String() string {
	return bc.Name.String() + printVerbs(bc.Verbs) + "(" + printList(bc.Arguments) + ")"
}

// ScopeMutater is a bracketed [Read ...], [Write ...] or [Delete ...].
// Arguments is nil when none were written.
type ScopeMutater struct {
	Mutater   *Identifier
	Arguments []Expression
	Position  token.Position
}

func (sm *ScopeMutater) expressionNode()     {}
func (sm *ScopeMutater) Pos() token.Position { return sm.Position }
func (sm *ScopeMutater) String() string {
	if sm.Arguments == nil {
		return "[" + sm.Mutater.String() + "]"
	}
	return "[" + sm.Mutater.String() + " " + printList(sm.Arguments) + "]"
}

// Statements
type VariableDeclaration struct {
	Kind     DeclarationKind
	Left     *Identifier
	Right    Expression
	Position token.Position
}

func (vd *VariableDeclaration) statementNode()      {}
func (vd *VariableDeclaration) Pos() token.Position { return vd.Position }
func (vd *VariableDeclaration) String() string {
	return string(vd.Kind) + " " + vd.Left.String() + " = " + vd.Right.String()
}

type BlockContent struct {
	Init    []Node // nil when there is no init section
	Program []Node
}

func (bc *BlockContent) String() string {
	var parts []string
	if bc.Init != nil {
		parts = append(parts, "init "+printBody(bc.Init))
	}
	for _, n := range bc.Program {
		parts = append(parts, n.String())
	}
	if len(parts) == 0 {
		return "{ }"
	}
	return "{ " + strings.Join(parts, "; ") + " }"
}

// BlockDeclaration is the inline form: name:verbs [arguments] { body }.
// Arguments is nil for an empty parameter list.
type BlockDeclaration struct {
	Name      *Identifier
	Verbs     []Expression
	Arguments []Expression
	Body      *BlockContent
	Position  token.Position
}

func (bd *BlockDeclaration) statementNode()      {}
func (bd *BlockDeclaration) Pos() token.Position { return bd.Position }
func (bd *BlockDeclaration) String() string {
	return bd.Name.String() + printVerbs(bd.Verbs) + " [" + printList(bd.Arguments) + "] " + bd.Body.String()
}

// ImplementsDeclaration is: name implements other { populate }.
type ImplementsDeclaration struct {
	Name       *Identifier
	Implements *Identifier
	Populate   Expression // *StringLiteral, *ArrayLiteral or nil
	Position   token.Position
}

func (id *ImplementsDeclaration) statementNode()      {}
func (id *ImplementsDeclaration) Pos() token.Position { return id.Position }
func (id *ImplementsDeclaration) String() string {
	s := id.Name.String() + " implements " + id.Implements.String()
	if id.Populate != nil {
		s += " { " + id.Populate.String() + " }"
	}
	return s
}

type ForStatement struct {
	Statement   Expression
	Placeholder string
	Body        []Node
	Position    token.Position
}

func (fs *ForStatement) statementNode()      {}
func (fs *ForStatement) Pos() token.Position { return fs.Position }
func (fs *ForStatement) String() string {
	return "for " + fs.Statement.String() + " as " + fs.Placeholder + " " + printBody(fs.Body)
}

type WhileStatement struct {
	Statement Expression
	Body      []Node
	Position  token.Position
}

func (ws *WhileStatement) statementNode()      {}
func (ws *WhileStatement) Pos() token.Position { return ws.Position }
func (ws *WhileStatement) String() string {
	return "while " + ws.Statement.String() + " " + printBody(ws.Body)
}

type Elif struct {
	Condition Expression
	Body      []Node
}

// IfStatement.Else is nil when there is no else clause and empty for "else { }".
type IfStatement struct {
	Condition Expression
	Body      []Node
	Elifs     []*Elif
	Else      []Node
	Position  token.Position
}

func (is *IfStatement) statementNode()      {}
func (is *IfStatement) Pos() token.Position { return is.Position }
func (is *IfStatement) String() string {
	var out bytes.Buffer

	out.WriteString("if " + is.Condition.String() + " " + printBody(is.Body))
	for _, e := range is.Elifs {
		out.WriteString(" elif " + e.Condition.String() + " " + printBody(e.Body))
	}
	if is.Else != nil {
		out.WriteString(" else " + printBody(is.Else))
	}

	return out.String()
}

type SwitchCase struct {
	Case Expression
	Body []Node
}

type SwitchDefault struct {
	Body []Node
}

type SwitchStatement struct {
	Condition Expression
	Cases     []*SwitchCase
	Default   *SwitchDefault
	Position  token.Position
}

func (ss *SwitchStatement) statementNode()      {}
func (ss *SwitchStatement) Pos() token.Position { return ss.Position }
func (ss *SwitchStatement) String() string {
	parts := []string{}
	for _, c := range ss.Cases {
		parts = append(parts, "case "+c.Case.String()+" "+printBody(c.Body))
	}
	if ss.Default != nil {
		parts = append(parts, "default "+printBody(ss.Default.Body))
	}
	if len(parts) == 0 {
		return "switch " + ss.Condition.String() + " { }"
	}
	return "switch " + ss.Condition.String() + " { " + strings.Join(parts, " ") + " }"
}

type ReturnStatement struct {
	Expression Expression
	Position   token.Position
}

func (rs *ReturnStatement) statementNode()      {}
func (rs *ReturnStatement) Pos() token.Position { return rs.Position }
func (rs *ReturnStatement) String() string      { return "return " + rs.Expression.String() }

type ThrowStatement struct {
	Expression Expression
	Position   token.Position
}

func (ts *ThrowStatement) statementNode()      {}
func (ts *ThrowStatement) Pos() token.Position { return ts.Position }
func (ts *ThrowStatement) String() string      { return "throw " + ts.Expression.String() }

type AssignStatement struct {
	Left     *Reference
	Right    Expression
	Position token.Position
}

func (as *AssignStatement) statementNode()      {}
func (as *AssignStatement) Pos() token.Position { return as.Position }
func (as *AssignStatement) String() string      { return as.Left.String() + " = " + as.Right.String() }

// QuantityModifier is x++, x--, x += e, x -= e, x *= e or x /= e.
// Right is nil for increment and decrement.
type QuantityModifier struct {
	Type      QuantityType
	Statement *Reference
	Right     Expression
	Position  token.Position
}

func (qm *QuantityModifier) statementNode()      {}
func (qm *QuantityModifier) Pos() token.Position { return qm.Position }
func (qm *QuantityModifier) String() string {
	if qm.Right == nil {
		return qm.Statement.String() + qm.Type.Operator()
	}
	return qm.Statement.String() + " " + qm.Type.Operator() + " " + qm.Right.String()
}

// Comment keeps the raw text, leading '#' included.
type Comment struct {
	Value    string
	Position token.Position
}

func (c *Comment) statementNode()      {}
func (c *Comment) Pos() token.Position { return c.Position }
func (c *Comment) String() string      { return c.Value }
