// Package ast declares the syntax tree produced by the parser.
//
// Statements and expressions are closed sum types: Stmt and Expr carry an
// unexported marker method, so only this package can add variants and
// consumers can switch over the concrete pointer types exhaustively.
//
// The tree owns its children exclusively. No node is reachable from two
// parents, and nodes are not mutated after parsing.
package ast

import "axscript/internal/token"

// Pos is the line/column of the first token of a node.
type Pos = token.Pos

// Node is implemented by every syntax tree node.
type Node interface {
	Pos() Pos
}

// Stmt is a statement node.
type Stmt interface {
	Node
	stmtNode()
}

// Expr is an expression node.
type Expr interface {
	Node
	exprNode()
}

// Program is the root of every parse.
type Program struct {
	Position Pos
	Stmts    []Stmt
}

func (p *Program) Pos() Pos { return p.Position }
