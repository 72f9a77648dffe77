package ast

// CloneExpr returns a deep copy of e sharing no nodes with it.
// The parser uses it to desugar compound assignment without aliasing the
// target.
func CloneExpr(e Expr) Expr {
	switch n := e.(type) {
	case nil:
		return nil
	case *NumberLit:
		c := *n
		return &c
	case *StringLit:
		c := *n
		return &c
	case *BoolLit:
		c := *n
		return &c
	case *NullLit:
		c := *n
		return &c
	case *Ident:
		c := *n
		return &c
	case *ThisExpr:
		c := *n
		return &c
	case *SuperExpr:
		c := *n
		return &c
	case *ObjectLit:
		c := &ObjectLit{Position: n.Position, Props: make([]*Property, len(n.Props))}
		for i, p := range n.Props {
			c.Props[i] = &Property{Position: p.Position, Key: p.Key, Value: CloneExpr(p.Value)}
		}
		return c
	case *BinaryExpr:
		return &BinaryExpr{Position: n.Position, Op: n.Op, Left: CloneExpr(n.Left), Right: CloneExpr(n.Right)}
	case *UnaryExpr:
		return &UnaryExpr{Position: n.Position, Op: n.Op, Operand: CloneExpr(n.Operand)}
	case *UpdateExpr:
		return &UpdateExpr{Position: n.Position, Op: n.Op, Operand: CloneExpr(n.Operand), Prefix: n.Prefix}
	case *AssignExpr:
		return &AssignExpr{Position: n.Position, Target: CloneExpr(n.Target), Value: CloneExpr(n.Value)}
	case *CondExpr:
		return &CondExpr{Position: n.Position, Test: CloneExpr(n.Test), Then: CloneExpr(n.Then), Else: CloneExpr(n.Else)}
	case *CallExpr:
		return &CallExpr{Position: n.Position, Callee: CloneExpr(n.Callee), Args: cloneExprs(n.Args)}
	case *MemberExpr:
		return &MemberExpr{Position: n.Position, Object: CloneExpr(n.Object), Member: n.Member}
	case *IndexExpr:
		return &IndexExpr{Position: n.Position, Object: CloneExpr(n.Object), Index: CloneExpr(n.Index)}
	case *ArrayLit:
		return &ArrayLit{Position: n.Position, Elements: cloneExprs(n.Elements)}
	case *NewExpr:
		return &NewExpr{Position: n.Position, Class: n.Class, Args: cloneExprs(n.Args)}
	case *TypeofExpr:
		return &TypeofExpr{Position: n.Position, Operand: CloneExpr(n.Operand)}
	case *InstanceofExpr:
		return &InstanceofExpr{Position: n.Position, Left: CloneExpr(n.Left), Right: CloneExpr(n.Right)}
	}
	panic("ast: CloneExpr on unknown expression type")
}

func cloneExprs(list []Expr) []Expr {
	if list == nil {
		return nil
	}
	out := make([]Expr, len(list))
	for i, e := range list {
		out[i] = CloneExpr(e)
	}
	return out
}
