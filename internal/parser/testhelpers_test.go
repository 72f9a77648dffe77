package parser

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"axscript/internal/ast"
	"axscript/internal/diag"
	"axscript/internal/source"
	"axscript/internal/testkit"
)

// parseSource parses src with a bag reporter attached and checks the tree
// invariants. It fails the test on a fatal error.
func parseSource(t *testing.T, src string) (*ast.Program, *diag.Bag) {
	t.Helper()
	return parseSourceWith(t, src, Options{})
}

func parseSourceWith(t *testing.T, src string, opts Options) (*ast.Program, *diag.Bag) {
	t.Helper()
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.ax", []byte(src))
	bag := diag.NewBag(100)
	opts.File = fileID
	opts.Reporter = diag.BagReporter{Bag: bag}

	prog, err := ParseWithOptions(src, opts)
	if err != nil {
		t.Fatalf("parse failed: %v\nsource:\n%s", err, src)
	}
	if err := testkit.CheckTree(prog, fs.Get(fileID)); err != nil {
		t.Fatalf("tree invariant violated: %v\nsource:\n%s", err, src)
	}
	return prog, bag
}

// mustParse parses src and requires that nothing was recovered.
func mustParse(t *testing.T, src string) *ast.Program {
	t.Helper()
	prog, bag := parseSource(t, src)
	if bag.Len() != 0 {
		t.Fatalf("unexpected diagnostics: %s\nsource:\n%s", diagnosticsSummary(bag), src)
	}
	return prog
}

// parseFail requires a fatal *ParseError and returns it.
func parseFail(t *testing.T, src string) *ParseError {
	t.Helper()
	prog, err := Parse(src)
	if err == nil {
		t.Fatalf("expected parse error, got program with %d statements\nsource:\n%s", len(prog.Stmts), src)
	}
	if prog != nil {
		t.Fatalf("fatal error must not return a partial tree")
	}
	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("expected *ParseError, got %T: %v", err, err)
	}
	return pe
}

// singleStmt parses src and returns its only statement as T.
func singleStmt[T ast.Stmt](t *testing.T, src string) T {
	t.Helper()
	prog := mustParse(t, src)
	if len(prog.Stmts) != 1 {
		t.Fatalf("expected 1 statement, got %d", len(prog.Stmts))
	}
	stmt, ok := prog.Stmts[0].(T)
	if !ok {
		var zero T
		t.Fatalf("expected %T, got %T", zero, prog.Stmts[0])
	}
	return stmt
}

// exprOf parses "src;" and returns the expression of the statement.
func exprOf(t *testing.T, src string) ast.Expr {
	t.Helper()
	return singleStmt[*ast.ExprStmt](t, src+";").X
}

func diagnosticsSummary(bag *diag.Bag) string {
	if bag == nil {
		return "<nil bag>"
	}
	diags := bag.Items()
	if len(diags) == 0 {
		return "<none>"
	}
	lines := make([]string, len(diags))
	for i, d := range diags {
		lines[i] = fmt.Sprintf("[%s] %d:%d %s", d.Code.ID(), d.Primary.Line, d.Primary.Col, d.Message)
	}
	return strings.Join(lines, "; ")
}

func hasCode(bag *diag.Bag, code diag.Code) bool {
	for _, d := range bag.Items() {
		if d.Code == code {
			return true
		}
	}
	return false
}

// sexpr renders an expression as a compact prefix form for precedence tests.
func sexpr(e ast.Expr) string {
	switch n := e.(type) {
	case *ast.NumberLit:
		return n.Raw
	case *ast.StringLit:
		return n.Raw
	case *ast.BoolLit:
		return fmt.Sprint(n.Value)
	case *ast.NullLit:
		return "null"
	case *ast.Ident:
		return n.Name
	case *ast.ThisExpr:
		return "this"
	case *ast.SuperExpr:
		return "super." + n.Method
	case *ast.BinaryExpr:
		return fmt.Sprintf("(%s %s %s)", n.Op.Lexeme(), sexpr(n.Left), sexpr(n.Right))
	case *ast.UnaryExpr:
		return fmt.Sprintf("(%s %s)", n.Op.Lexeme(), sexpr(n.Operand))
	case *ast.UpdateExpr:
		if n.Prefix {
			return fmt.Sprintf("(pre%s %s)", n.Op.Lexeme(), sexpr(n.Operand))
		}
		return fmt.Sprintf("(post%s %s)", n.Op.Lexeme(), sexpr(n.Operand))
	case *ast.AssignExpr:
		return fmt.Sprintf("(= %s %s)", sexpr(n.Target), sexpr(n.Value))
	case *ast.CondExpr:
		return fmt.Sprintf("(? %s %s %s)", sexpr(n.Test), sexpr(n.Then), sexpr(n.Else))
	case *ast.CallExpr:
		parts := []string{"call", sexpr(n.Callee)}
		for _, a := range n.Args {
			parts = append(parts, sexpr(a))
		}
		return "(" + strings.Join(parts, " ") + ")"
	case *ast.MemberExpr:
		return fmt.Sprintf("(. %s %s)", sexpr(n.Object), n.Member)
	case *ast.IndexExpr:
		return fmt.Sprintf("([] %s %s)", sexpr(n.Object), sexpr(n.Index))
	case *ast.ArrayLit:
		parts := []string{"array"}
		for _, el := range n.Elements {
			parts = append(parts, sexpr(el))
		}
		return "(" + strings.Join(parts, " ") + ")"
	case *ast.ObjectLit:
		parts := []string{"object"}
		for _, p := range n.Props {
			parts = append(parts, p.Key+":"+sexpr(p.Value))
		}
		return "(" + strings.Join(parts, " ") + ")"
	case *ast.NewExpr:
		parts := []string{"new", n.Class}
		for _, a := range n.Args {
			parts = append(parts, sexpr(a))
		}
		return "(" + strings.Join(parts, " ") + ")"
	case *ast.TypeofExpr:
		return fmt.Sprintf("(typeof %s)", sexpr(n.Operand))
	case *ast.InstanceofExpr:
		return fmt.Sprintf("(instanceof %s %s)", sexpr(n.Left), sexpr(n.Right))
	}
	return fmt.Sprintf("<%T>", e)
}
