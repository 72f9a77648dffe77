package ast

import (
	"strings"

	"axscript/internal/token"
)

type (
	// NumberLit keeps the source lexeme next to the parsed value.
	NumberLit struct {
		Position Pos
		Value    float64
		Raw      string
	}

	// StringLit: Value has quotes removed and escapes decoded, Raw is the lexeme.
	StringLit struct {
		Position Pos
		Value    string
		Raw      string
	}

	BoolLit struct {
		Position Pos
		Value    bool
	}

	NullLit struct {
		Position Pos
	}

	// ObjectLit keeps properties in source order. Duplicate keys are kept.
	ObjectLit struct {
		Position Pos
		Props    []*Property
	}

	// Property is a key: value pair of an object literal; not an expression.
	Property struct {
		Position Pos
		Key      string
		Value    Expr
	}

	Ident struct {
		Position Pos
		Name     string
	}

	BinaryExpr struct {
		Position Pos
		Op       token.Kind
		Left     Expr
		Right    Expr
	}

	// UnaryExpr is prefix ! or -.
	UnaryExpr struct {
		Position Pos
		Op       token.Kind
		Operand  Expr
	}

	// UpdateExpr is ++ or --, prefix or postfix.
	UpdateExpr struct {
		Position Pos
		Op       token.Kind
		Operand  Expr
		Prefix   bool
	}

	// AssignExpr targets an *Ident, *MemberExpr or *IndexExpr.
	// Compound forms are desugared: a += b is a = a + b.
	AssignExpr struct {
		Position Pos
		Target   Expr
		Value    Expr
	}

	CondExpr struct {
		Position Pos
		Test     Expr
		Then     Expr
		Else     Expr
	}

	CallExpr struct {
		Position Pos
		Callee   Expr
		Args     []Expr
	}

	MemberExpr struct {
		Position Pos
		Object   Expr
		Member   string
	}

	IndexExpr struct {
		Position Pos
		Object   Expr
		Index    Expr
	}

	ArrayLit struct {
		Position Pos
		Elements []Expr
	}

	NewExpr struct {
		Position Pos
		Class    string
		Args     []Expr
	}

	ThisExpr struct {
		Position Pos
	}

	// SuperExpr is super.Method; a call wraps it in CallExpr.
	SuperExpr struct {
		Position Pos
		Method   string
	}

	TypeofExpr struct {
		Position Pos
		Operand  Expr
	}

	InstanceofExpr struct {
		Position Pos
		Left     Expr
		Right    Expr
	}
)

func (e *NumberLit) Pos() Pos { return e.Position }
func (e *StringLit) Pos() Pos { return e.Position }
func (e *BoolLit) Pos() Pos { return e.Position }
func (e *NullLit) Pos() Pos { return e.Position }
func (e *ObjectLit) Pos() Pos { return e.Position }
func (e *Property) Pos() Pos { return e.Position }
func (e *Ident) Pos() Pos { return e.Position }
func (e *BinaryExpr) Pos() Pos { return e.Position }
func (e *UnaryExpr) Pos() Pos { return e.Position }
func (e *UpdateExpr) Pos() Pos { return e.Position }
func (e *AssignExpr) Pos() Pos { return e.Position }
func (e *CondExpr) Pos() Pos { return e.Position }
func (e *CallExpr) Pos() Pos { return e.Position }
func (e *MemberExpr) Pos() Pos { return e.Position }
func (e *IndexExpr) Pos() Pos { return e.Position }
func (e *ArrayLit) Pos() Pos { return e.Position }
func (e *NewExpr) Pos() Pos { return e.Position }
func (e *ThisExpr) Pos() Pos { return e.Position }
func (e *SuperExpr) Pos() Pos { return e.Position }
func (e *TypeofExpr) Pos() Pos { return e.Position }
func (e *InstanceofExpr) Pos() Pos { return e.Position }

func (*NumberLit) exprNode() {}
func (*StringLit) exprNode() {}
func (*BoolLit) exprNode() {}
func (*NullLit) exprNode() {}
func (*ObjectLit) exprNode() {}
func (*Ident) exprNode() {}
func (*BinaryExpr) exprNode() {}
func (*UnaryExpr) exprNode() {}
func (*UpdateExpr) exprNode() {}
func (*AssignExpr) exprNode() {}
func (*CondExpr) exprNode() {}
func (*CallExpr) exprNode() {}
func (*MemberExpr) exprNode() {}
func (*IndexExpr) exprNode() {}
func (*ArrayLit) exprNode() {}
func (*NewExpr) exprNode() {}
func (*ThisExpr) exprNode() {}
func (*SuperExpr) exprNode() {}
func (*TypeofExpr) exprNode() {}
func (*InstanceofExpr) exprNode() {}

// CalleeName renders the callee as a plain or dotted name ("f", "obj.move",
// "this.update", "super.init"). Callees that are not name chains yield "".
func (c *CallExpr) CalleeName() string {
	var parts []string
	e := c.Callee
	for {
		switch n := e.(type) {
		case *Ident:
			parts = append(parts, n.Name)
			return joinReversed(parts)
		case *ThisExpr:
			parts = append(parts, "this")
			return joinReversed(parts)
		case *SuperExpr:
			parts = append(parts, n.Method, "super")
			return joinReversed(parts)
		case *MemberExpr:
			parts = append(parts, n.Member)
			e = n.Object
		default:
			return ""
		}
	}
}

func joinReversed(parts []string) string {
	for i, j := 0, len(parts)-1; i < j; i, j = i+1, j-1 {
		parts[i], parts[j] = parts[j], parts[i]
	}
	return strings.Join(parts, ".")
}

// IsAssignable reports whether e may appear on the left of = or as the
// operand of ++ and --.
func IsAssignable(e Expr) bool {
	switch e.(type) {
	case *Ident, *MemberExpr, *IndexExpr:
		return true
	default:
		return false
	}
}
