// Package testkit holds checks shared by tests of several packages.
package testkit

import (
	"fmt"

	"fortio.org/safecast"

	"axscript/internal/ast"
	"axscript/internal/source"
)

// CheckTree runs the structural invariants every parse result must satisfy:
// 1) every node is reachable from the root exactly once (no sharing),
// 2) every node carries a valid 1-based position,
// 3) statements of one list appear in source order,
// 4) when sf is given, every position lies inside the file.
func CheckTree(prog *ast.Program, sf *source.File) error {
	if prog == nil {
		return fmt.Errorf("nil program")
	}
	seen := make(map[ast.Node]struct{})
	var firstErr error
	fail := func(format string, args ...any) {
		if firstErr == nil {
			firstErr = fmt.Errorf(format, args...)
		}
	}

	ast.Inspect(prog, func(n ast.Node) bool {
		if n == nil || firstErr != nil {
			return false
		}
		if _, dup := seen[n]; dup {
			fail("node %T at %v is shared between parents", n, n.Pos())
			return false
		}
		seen[n] = struct{}{}

		pos := n.Pos()
		if !pos.IsValid() {
			fail("node %T has no position", n)
			return false
		}
		if sf != nil {
			if err := checkInFile(pos, sf); err != nil {
				fail("node %T: %v", n, err)
				return false
			}
		}
		if list := stmtList(n); len(list) > 1 {
			for i := 1; i < len(list); i++ {
				if before(list[i].Pos(), list[i-1].Pos()) {
					fail("statement %T at %v precedes its predecessor at %v", list[i], list[i].Pos(), list[i-1].Pos())
					return false
				}
			}
		}
		return true
	})
	return firstErr
}

func stmtList(n ast.Node) []ast.Stmt {
	switch n := n.(type) {
	case *ast.Program:
		return n.Stmts
	case *ast.BlockStmt:
		return n.Stmts
	case *ast.FuncDecl:
		return n.Body
	case *ast.SwitchCase:
		return n.Body
	}
	return nil
}

func before(a, b ast.Pos) bool {
	return a.Line < b.Line || a.Line == b.Line && a.Column < b.Column
}

// checkInFile: the column may point one past the last character (EOF-anchored
// placeholders), never further.
func checkInFile(pos ast.Pos, sf *source.File) error {
	if pos.Line > sf.LineCount() {
		return fmt.Errorf("line %d beyond end of file (%d lines)", pos.Line, sf.LineCount())
	}
	line, err := safecast.Conv[uint32](pos.Line)
	if err != nil {
		return fmt.Errorf("line overflow: %w", err)
	}
	width := DisplayWidth(sf.GetLine(line))
	if pos.Column > width+1 {
		return fmt.Errorf("column %d beyond end of line %d (width %d)", pos.Column, pos.Line, width)
	}
	return nil
}

// DisplayWidth measures a line the way the tokenizer counts columns:
// a tab is four columns, any other rune one.
func DisplayWidth(line string) int {
	w := 0
	for _, r := range line {
		if r == '\t' {
			w += 4
		} else {
			w++
		}
	}
	return w
}
