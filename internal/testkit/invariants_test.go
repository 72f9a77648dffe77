package testkit

import (
	"strings"
	"testing"

	"axscript/internal/ast"
)

func TestCheckTreeDetectsSharing(t *testing.T) {
	shared := &ast.Ident{Position: ast.Pos{Line: 1, Column: 1}, Name: "x"}
	prog := &ast.Program{
		Position: ast.Pos{Line: 1, Column: 1},
		Stmts: []ast.Stmt{
			&ast.ExprStmt{Position: ast.Pos{Line: 1, Column: 1}, X: &ast.AssignExpr{
				Position: ast.Pos{Line: 1, Column: 1},
				Target:   shared,
				Value:    shared,
			}},
		},
	}
	err := CheckTree(prog, nil)
	if err == nil || !strings.Contains(err.Error(), "shared") {
		t.Fatalf("expected sharing error, got %v", err)
	}
}

func TestCheckTreeDetectsOrderAndPositions(t *testing.T) {
	unordered := &ast.Program{
		Position: ast.Pos{Line: 1, Column: 1},
		Stmts: []ast.Stmt{
			&ast.BreakStmt{Position: ast.Pos{Line: 2, Column: 1}},
			&ast.BreakStmt{Position: ast.Pos{Line: 1, Column: 1}},
		},
	}
	if err := CheckTree(unordered, nil); err == nil {
		t.Fatalf("expected ordering error")
	}

	noPos := &ast.Program{
		Position: ast.Pos{Line: 1, Column: 1},
		Stmts:    []ast.Stmt{&ast.ContinueStmt{}},
	}
	if err := CheckTree(noPos, nil); err == nil {
		t.Fatalf("expected position error")
	}

	if err := CheckTree(nil, nil); err == nil {
		t.Fatalf("expected error for nil program")
	}
}

func TestDisplayWidth(t *testing.T) {
	cases := map[string]int{
		"":      0,
		"abc":   3,
		"\tx":   5,
		"größe": 5,
		"\t\t":  8,
		"a\tb":  6,
	}
	for in, want := range cases {
		if got := DisplayWidth(in); got != want {
			t.Errorf("DisplayWidth(%q) = %d, want %d", in, got, want)
		}
	}
}
