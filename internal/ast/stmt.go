package ast

type (
	// VarDecl: var Name [= Init];
	VarDecl struct {
		Position Pos
		Name     string
		Init     Expr // nil without initializer
	}

	// FuncDecl is a function declaration or a class method.
	FuncDecl struct {
		Position Pos
		Name     string
		Params   []string
		Body     []Stmt
		Static   bool // method declared as "static function"
	}

	ClassDecl struct {
		Position   Pos
		Name       string
		Superclass string // "" without extends
		Methods    []*FuncDecl
	}

	IfStmt struct {
		Position Pos
		Cond     Expr
		Then     Stmt
		Else     Stmt // nil without else
	}

	WhileStmt struct {
		Position Pos
		Cond     Expr
		Body     Stmt
	}

	DoWhileStmt struct {
		Position Pos
		Body     Stmt
		Cond     Expr
	}

	// ForStmt is the C-style loop. Init is a *VarDecl or *ExprStmt.
	// Every clause may be nil.
	ForStmt struct {
		Position Pos
		Init     Stmt
		Cond     Expr
		Update   Expr
		Body     Stmt
	}

	// ForInStmt covers both "for (var x in xs)" and "for (var x of xs)".
	ForInStmt struct {
		Position Pos
		Var      string
		Iterable Expr
		Body     Stmt
		Of       bool
	}

	ReturnStmt struct {
		Position Pos
		Value    Expr // nil for a bare return
	}

	BreakStmt struct {
		Position Pos
	}

	ContinueStmt struct {
		Position Pos
	}

	ThrowStmt struct {
		Position Pos
		Value    Expr
	}

	// TryStmt has at least one of Catch and Finally.
	TryStmt struct {
		Position Pos
		Try      *BlockStmt
		Catch    *CatchClause
		Finally  *BlockStmt
	}

	// CatchClause is not a statement on its own.
	CatchClause struct {
		Position Pos
		Param    string
		Body     *BlockStmt
	}

	SwitchStmt struct {
		Position     Pos
		Discriminant Expr
		Cases        []*SwitchCase
	}

	// SwitchCase with a nil Test is the default case.
	SwitchCase struct {
		Position Pos
		Test     Expr
		Body     []Stmt
	}

	// ImportStmt covers
	//
	//	import "mod";
	//	import name from "mod";
	//	import { a, b } from "mod";
	//	import "mod" as alias;
	ImportStmt struct {
		Position Pos
		Module   string
		Names    []string
		Alias    string
	}

	// ExportStmt wraps a var, function or class declaration.
	ExportStmt struct {
		Position Pos
		Decl     Stmt
	}

	BlockStmt struct {
		Position Pos
		Stmts    []Stmt
	}

	ExprStmt struct {
		Position Pos
		X        Expr
	}
)

func (s *VarDecl) Pos() Pos { return s.Position }
func (s *FuncDecl) Pos() Pos { return s.Position }
func (s *ClassDecl) Pos() Pos { return s.Position }
func (s *IfStmt) Pos() Pos { return s.Position }
func (s *WhileStmt) Pos() Pos { return s.Position }
func (s *DoWhileStmt) Pos() Pos { return s.Position }
func (s *ForStmt) Pos() Pos { return s.Position }
func (s *ForInStmt) Pos() Pos { return s.Position }
func (s *ReturnStmt) Pos() Pos { return s.Position }
func (s *BreakStmt) Pos() Pos { return s.Position }
func (s *ContinueStmt) Pos() Pos { return s.Position }
func (s *ThrowStmt) Pos() Pos { return s.Position }
func (s *TryStmt) Pos() Pos { return s.Position }
func (s *CatchClause) Pos() Pos { return s.Position }
func (s *SwitchStmt) Pos() Pos { return s.Position }
func (s *SwitchCase) Pos() Pos { return s.Position }
func (s *ImportStmt) Pos() Pos { return s.Position }
func (s *ExportStmt) Pos() Pos { return s.Position }
func (s *BlockStmt) Pos() Pos { return s.Position }
func (s *ExprStmt) Pos() Pos { return s.Position }

func (*VarDecl) stmtNode() {}
func (*FuncDecl) stmtNode() {}
func (*ClassDecl) stmtNode() {}
func (*IfStmt) stmtNode() {}
func (*WhileStmt) stmtNode() {}
func (*DoWhileStmt) stmtNode() {}
func (*ForStmt) stmtNode() {}
func (*ForInStmt) stmtNode() {}
func (*ReturnStmt) stmtNode() {}
func (*BreakStmt) stmtNode() {}
func (*ContinueStmt) stmtNode() {}
func (*ThrowStmt) stmtNode() {}
func (*TryStmt) stmtNode() {}
func (*SwitchStmt) stmtNode() {}
func (*ImportStmt) stmtNode() {}
func (*ExportStmt) stmtNode() {}
func (*BlockStmt) stmtNode() {}
func (*ExprStmt) stmtNode() {}
