package ast

// Visitor has one method per node variant. A type that implements it
// handles every syntax form; adding a variant breaks it at compile time.
type Visitor interface {
	VisitIntLiteral(*IntLiteral)
	VisitStringLiteral(*StringLiteral)
	VisitArrayLiteral(*ArrayLiteral)
	VisitIdentifier(*Identifier)
	VisitReference(*Reference)
	VisitCondition(*Condition)
	VisitArithmetic(*Arithmetic)
	VisitBlockCall(*BlockCall)
	VisitScopeMutater(*ScopeMutater)
	VisitVariableDeclaration(*VariableDeclaration)
	VisitBlockDeclaration(*BlockDeclaration)
	VisitImplementsDeclaration(*ImplementsDeclaration)
	VisitForStatement(*ForStatement)
	VisitWhileStatement(*WhileStatement)
	VisitIfStatement(*IfStatement)
	VisitSwitchStatement(*SwitchStatement)
	VisitReturnStatement(*ReturnStatement)
	VisitThrowStatement(*ThrowStatement)
	VisitAssignStatement(*AssignStatement)
	VisitQuantityModifier(*QuantityModifier)
	VisitComment(*Comment)
}

func (il *IntLiteral) Accept(v Visitor)            { v.VisitIntLiteral(il) }
func (sl *StringLiteral) Accept(v Visitor)         { v.VisitStringLiteral(sl) }
func (al *ArrayLiteral) Accept(v Visitor)          { v.VisitArrayLiteral(al) }
func (i *Identifier) Accept(v Visitor)             { v.VisitIdentifier(i) }
func (r *Reference) Accept(v Visitor)              { v.VisitReference(r) }
func (c *Condition) Accept(v Visitor)              { v.VisitCondition(c) }
func (a *Arithmetic) Accept(v Visitor)             { v.VisitArithmetic(a) }
func (bc *BlockCall) Accept(v Visitor)             { v.VisitBlockCall(bc) }
func (sm *ScopeMutater) Accept(v Visitor)          { v.VisitScopeMutater(sm) }
func (vd *VariableDeclaration) Accept(v Visitor)   { v.VisitVariableDeclaration(vd) }
func (bd *BlockDeclaration) Accept(v Visitor)      { v.VisitBlockDeclaration(bd) }
func (id *ImplementsDeclaration) Accept(v Visitor) { v.VisitImplementsDeclaration(id) }
func (fs *ForStatement) Accept(v Visitor)          { v.VisitForStatement(fs) }
func (ws *WhileStatement) Accept(v Visitor)        { v.VisitWhileStatement(ws) }
func (is *IfStatement) Accept(v Visitor)           { v.VisitIfStatement(is) }
func (ss *SwitchStatement) Accept(v Visitor)       { v.VisitSwitchStatement(ss) }
func (rs *ReturnStatement) Accept(v Visitor)       { v.VisitReturnStatement(rs) }
func (ts *ThrowStatement) Accept(v Visitor)        { v.VisitThrowStatement(ts) }
func (as *AssignStatement) Accept(v Visitor)       { v.VisitAssignStatement(as) }
func (qm *QuantityModifier) Accept(v Visitor)      { v.VisitQuantityModifier(qm) }
func (c *Comment) Accept(v Visitor)                { v.VisitComment(c) }

// Inspect traverses the tree rooted at node in depth-first order, calling f
// for each node. Children are skipped when f returns false.
func Inspect(node Node, f func(Node) bool) {
	if node == nil || !f(node) {
		return
	}
	node.Accept(inspector(f))
}

// InspectProgram runs Inspect over every import source and top-level node.
func InspectProgram(p *Program, f func(Node) bool) {
	for _, u := range p.Imports {
		Inspect(u.Source, f)
	}
	for _, n := range p.Program {
		Inspect(n, f)
	}
}

// Count returns the number of nodes in the program.
func Count(p *Program) int {
	n := 0
	InspectProgram(p, func(Node) bool {
		n++
		return true
	})
	return n
}

type inspector func(Node) bool

func (f inspector) nodes(list []Node) {
	for _, n := range list {
		Inspect(n, f)
	}
}

func (f inspector) exprs(list []Expression) {
	for _, n := range list {
		Inspect(n, f)
	}
}

func (f inspector) VisitIntLiteral(*IntLiteral)       {}
func (f inspector) VisitStringLiteral(*StringLiteral) {}
func (f inspector) VisitArrayLiteral(al *ArrayLiteral) {
	f.exprs(al.Values)
}
func (f inspector) VisitIdentifier(*Identifier) {}
func (f inspector) VisitReference(*Reference)   {}
func (f inspector) VisitCondition(c *Condition) {
	Inspect(c.Left, f)
	Inspect(c.Right, f)
}
func (f inspector) VisitArithmetic(a *Arithmetic) {
	Inspect(a.Left, f)
	Inspect(a.Right, f)
}
func (f inspector) VisitBlockCall(bc *BlockCall) {
	Inspect(bc.Name, f)
	f.exprs(bc.Verbs)
	f.exprs(bc.Arguments)
}
func (f inspector) VisitScopeMutater(sm *ScopeMutater) {
	Inspect(sm.Mutater, f)
	f.exprs(sm.Arguments)
}
func (f inspector) VisitVariableDeclaration(vd *VariableDeclaration) {
	Inspect(vd.Left, f)
	Inspect(vd.Right, f)
}
func (f inspector) VisitBlockDeclaration(bd *BlockDeclaration) {
	Inspect(bd.Name, f)
	f.exprs(bd.Verbs)
	f.exprs(bd.Arguments)
	f.nodes(bd.Body.Init)
	f.nodes(bd.Body.Program)
}
func (f inspector) VisitImplementsDeclaration(id *ImplementsDeclaration) {
	Inspect(id.Name, f)
	Inspect(id.Implements, f)
	if id.Populate != nil {
		Inspect(id.Populate, f)
	}
}
func (f inspector) VisitForStatement(fs *ForStatement) {
	Inspect(fs.Statement, f)
	f.nodes(fs.Body)
}
func (f inspector) VisitWhileStatement(ws *WhileStatement) {
	Inspect(ws.Statement, f)
	f.nodes(ws.Body)
}
func (f inspector) VisitIfStatement(is *IfStatement) {
	Inspect(is.Condition, f)
	f.nodes(is.Body)
	for _, e := range is.Elifs {
		Inspect(e.Condition, f)
		f.nodes(e.Body)
	}
	f.nodes(is.Else)
}
func (f inspector) VisitSwitchStatement(ss *SwitchStatement) {
	Inspect(ss.Condition, f)
	for _, c := range ss.Cases {
		Inspect(c.Case, f)
		f.nodes(c.Body)
	}
	if ss.Default != nil {
		f.nodes(ss.Default.Body)
	}
}
func (f inspector) VisitReturnStatement(rs *ReturnStatement) { Inspect(rs.Expression, f) }
func (f inspector) VisitThrowStatement(ts *ThrowStatement)   { Inspect(ts.Expression, f) }
func (f inspector) VisitAssignStatement(as *AssignStatement) {
	Inspect(as.Left, f)
	Inspect(as.Right, f)
}
func (f inspector) VisitQuantityModifier(qm *QuantityModifier) {
	Inspect(qm.Statement, f)
	if qm.Right != nil {
		Inspect(qm.Right, f)
	}
}
func (f inspector) VisitComment(*Comment) {}
