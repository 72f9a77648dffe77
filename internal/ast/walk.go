package ast

// Visitor is called by Walk for every node. If Visit returns a non-nil
// visitor w, Walk visits each child of n with w, then calls w.Visit(nil).
type Visitor interface {
	Visit(n Node) (w Visitor)
}

// Walk traverses the tree rooted at n depth-first in source order.
func Walk(v Visitor, n Node) {
	if n == nil {
		return
	}
	if v = v.Visit(n); v == nil {
		return
	}
	for _, c := range Children(n) {
		Walk(v, c)
	}
	v.Visit(nil)
}

type inspector func(Node) bool

func (f inspector) Visit(n Node) Visitor {
	if f(n) {
		return f
	}
	return nil
}

// Inspect calls f for n and, while f returns true, for every descendant.
// After the children of a node are done f is called with nil.
func Inspect(n Node, f func(Node) bool) {
	Walk(inspector(f), n)
}

// Children lists the direct children of n in source order. Absent optional
// parts are skipped, so the result never holds a nil node.
func Children(n Node) []Node {
	var out []Node
	add := func(c Node) {
		if c != nil {
			out = append(out, c)
		}
	}
	addStmts := func(list []Stmt) {
		for _, s := range list {
			add(s)
		}
	}
	addExprs := func(list []Expr) {
		for _, e := range list {
			add(e)
		}
	}

	switch n := n.(type) {
	case *Program:
		addStmts(n.Stmts)

	case *VarDecl:
		if n.Init != nil {
			add(n.Init)
		}
	case *FuncDecl:
		addStmts(n.Body)
	case *ClassDecl:
		for _, m := range n.Methods {
			add(m)
		}
	case *IfStmt:
		add(n.Cond)
		add(n.Then)
		if n.Else != nil {
			add(n.Else)
		}
	case *WhileStmt:
		add(n.Cond)
		add(n.Body)
	case *DoWhileStmt:
		add(n.Body)
		add(n.Cond)
	case *ForStmt:
		if n.Init != nil {
			add(n.Init)
		}
		if n.Cond != nil {
			add(n.Cond)
		}
		if n.Update != nil {
			add(n.Update)
		}
		add(n.Body)
	case *ForInStmt:
		add(n.Iterable)
		add(n.Body)
	case *ReturnStmt:
		if n.Value != nil {
			add(n.Value)
		}
	case *ThrowStmt:
		add(n.Value)
	case *TryStmt:
		if n.Try != nil {
			add(n.Try)
		}
		if n.Catch != nil {
			add(n.Catch)
		}
		if n.Finally != nil {
			add(n.Finally)
		}
	case *CatchClause:
		if n.Body != nil {
			add(n.Body)
		}
	case *SwitchStmt:
		add(n.Discriminant)
		for _, c := range n.Cases {
			add(c)
		}
	case *SwitchCase:
		if n.Test != nil {
			add(n.Test)
		}
		addStmts(n.Body)
	case *ExportStmt:
		add(n.Decl)
	case *BlockStmt:
		addStmts(n.Stmts)
	case *ExprStmt:
		add(n.X)

	case *ObjectLit:
		for _, p := range n.Props {
			add(p)
		}
	case *Property:
		add(n.Value)
	case *BinaryExpr:
		add(n.Left)
		add(n.Right)
	case *UnaryExpr:
		add(n.Operand)
	case *UpdateExpr:
		add(n.Operand)
	case *AssignExpr:
		add(n.Target)
		add(n.Value)
	case *CondExpr:
		add(n.Test)
		add(n.Then)
		add(n.Else)
	case *CallExpr:
		add(n.Callee)
		addExprs(n.Args)
	case *MemberExpr:
		add(n.Object)
	case *IndexExpr:
		add(n.Object)
		add(n.Index)
	case *ArrayLit:
		addExprs(n.Elements)
	case *NewExpr:
		addExprs(n.Args)
	case *TypeofExpr:
		add(n.Operand)
	case *InstanceofExpr:
		add(n.Left)
		add(n.Right)

	// leaves: BreakStmt, ContinueStmt, ImportStmt, literals, Ident, ThisExpr, SuperExpr
	}
	return out
}
