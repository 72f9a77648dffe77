package parser

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"

	"axscript/internal/ast"
	"axscript/internal/diag"
	"axscript/internal/lexer"
	"axscript/internal/token"
)

func TestIfMissingCloseParenRecovers(t *testing.T) {
	prog, bag := parseSource(t, "if (x > 0 { y = 1; }")
	if len(prog.Stmts) != 1 {
		t.Fatalf("expected 1 statement, got %d", len(prog.Stmts))
	}
	stmt, ok := prog.Stmts[0].(*ast.IfStmt)
	if !ok {
		t.Fatalf("expected *ast.IfStmt, got %T", prog.Stmts[0])
	}
	if got := sexpr(stmt.Cond); got != "(> x 0)" {
		t.Fatalf("cond = %s", got)
	}
	then, ok := stmt.Then.(*ast.BlockStmt)
	if !ok || len(then.Stmts) != 1 {
		t.Fatalf("then = %T, want block with 1 statement", stmt.Then)
	}
	if got := sexpr(then.Stmts[0].(*ast.ExprStmt).X); got != "(= y 1)" {
		t.Fatalf("then statement = %s", got)
	}

	if bag.Len() != 1 {
		t.Fatalf("expected 1 warning, got %s", diagnosticsSummary(bag))
	}
	d := bag.Items()[0]
	if d.Code != diag.SynRecoveredIf || d.Severity != diag.SevWarning {
		t.Fatalf("unexpected diagnostic: %s", diagnosticsSummary(bag))
	}
	if d.Primary.Line != 1 || d.Primary.Col != 11 {
		t.Fatalf("warning at %d:%d, want 1:11", d.Primary.Line, d.Primary.Col)
	}
}

func TestIfHeaderRecoveries(t *testing.T) {
	cases := []struct {
		src      string
		cond     string
		warnings int
	}{
		{"if x > 0) { y(); }", "(> x 0)", 1},
		{"if () { y(); }", "true", 1},
		{"if { y(); }", "true", 2},
		{"if (x +) { y(); }", "(+ x null)", 1},
	}
	for _, tc := range cases {
		t.Run(tc.src, func(t *testing.T) {
			prog, bag := parseSource(t, tc.src)
			stmt := prog.Stmts[0].(*ast.IfStmt)
			if got := sexpr(stmt.Cond); got != tc.cond {
				t.Fatalf("cond = %s, want %s", got, tc.cond)
			}
			if block, ok := stmt.Then.(*ast.BlockStmt); !ok || len(block.Stmts) != 1 {
				t.Fatalf("then branch lost: %T", stmt.Then)
			}
			if bag.Len() != tc.warnings {
				t.Fatalf("expected %d warnings, got %s", tc.warnings, diagnosticsSummary(bag))
			}
		})
	}
}

func TestIfMissingThenBecomesEmptyBlock(t *testing.T) {
	prog, bag := parseSource(t, "function f() { if (ready) }")
	fn := prog.Stmts[0].(*ast.FuncDecl)
	stmt := fn.Body[0].(*ast.IfStmt)
	block, ok := stmt.Then.(*ast.BlockStmt)
	if !ok || len(block.Stmts) != 0 {
		t.Fatalf("then = %T, want empty block", stmt.Then)
	}
	if !hasCode(bag, diag.SynRecoveredIf) {
		t.Fatalf("missing recovery warning: %s", diagnosticsSummary(bag))
	}
}

func TestIfHeaderKeepsEnclosingBrace(t *testing.T) {
	prog, bag := parseSource(t, "{ if if if if }")
	block := prog.Stmts[0].(*ast.BlockStmt)
	if len(block.Stmts) != 1 {
		t.Fatalf("expected 1 statement in block, got %d", len(block.Stmts))
	}
	stmt := block.Stmts[0].(*ast.IfStmt)
	if got := sexpr(stmt.Cond); got != "true" {
		t.Fatalf("cond = %s, want true", got)
	}
	if then, ok := stmt.Then.(*ast.BlockStmt); !ok || len(then.Stmts) != 0 {
		t.Fatalf("then = %T, want empty block", stmt.Then)
	}
	if bag.Len() != 3 || !hasCode(bag, diag.SynRecoveredIf) {
		t.Fatalf("diagnostics = %s", diagnosticsSummary(bag))
	}

	for _, src := range []string{"function f() { if }", "function f() { if (1 = 2 } g();"} {
		prog, _ := parseSource(t, src)
		fn, ok := prog.Stmts[0].(*ast.FuncDecl)
		if !ok || len(fn.Body) != 1 {
			t.Fatalf("%q: function body lost: %#v", src, prog.Stmts[0])
		}
		if _, ok := fn.Body[0].(*ast.IfStmt); !ok {
			t.Fatalf("%q: body[0] = %T", src, fn.Body[0])
		}
	}
}

func TestMissingOperandBecomesNull(t *testing.T) {
	prog, bag := parseSource(t, "var x = 1 + ;")
	decl := prog.Stmts[0].(*ast.VarDecl)
	bin, ok := decl.Init.(*ast.BinaryExpr)
	if !ok {
		t.Fatalf("init = %T, want *ast.BinaryExpr", decl.Init)
	}
	if bin.Op != token.Plus {
		t.Fatalf("op = %v", bin.Op)
	}
	if _, ok := bin.Right.(*ast.NullLit); !ok {
		t.Fatalf("right operand = %T, want *ast.NullLit", bin.Right)
	}
	if bin.Right.Pos() != (ast.Pos{Line: 1, Column: 13}) {
		t.Fatalf("placeholder position = %v, want 1:13", bin.Right.Pos())
	}
	if bag.Len() != 1 || bag.Items()[0].Code != diag.SynRecoveredExpr {
		t.Fatalf("unexpected diagnostics: %s", diagnosticsSummary(bag))
	}
}

func TestExpressionRecoveryKeepsEnclosingConstruct(t *testing.T) {
	cases := []struct {
		src  string
		want string
	}{
		{"f(1, , 2);", "(call f 1 null 2)"},
		{"g(a +);", "(call g (+ a null))"},
		{"[1, 2 * ];", "(array 1 (* 2 null))"},
		{"h(x = );", "(call h (= x null))"},
	}
	for _, tc := range cases {
		t.Run(tc.src, func(t *testing.T) {
			prog, bag := parseSource(t, tc.src)
			if len(prog.Stmts) == 0 {
				t.Fatalf("no statements")
			}
			stmt, ok := prog.Stmts[0].(*ast.ExprStmt)
			if !ok {
				t.Fatalf("statement = %T", prog.Stmts[0])
			}
			if got := sexpr(stmt.X); got != tc.want {
				t.Fatalf("got %s, want %s", got, tc.want)
			}
			if !hasCode(bag, diag.SynRecoveredExpr) {
				t.Fatalf("missing recovery warning: %s", diagnosticsSummary(bag))
			}
		})
	}
}

func TestBlockRecoverySkipsBadStatement(t *testing.T) {
	prog, bag := parseSource(t, "function f() { var = 1; g(); }")
	fn := prog.Stmts[0].(*ast.FuncDecl)
	if len(fn.Body) != 2 {
		t.Fatalf("expected 2 surviving statements, got %d", len(fn.Body))
	}
	if got := sexpr(fn.Body[1].(*ast.ExprStmt).X); got != "(call g)" {
		t.Fatalf("second statement = %s", got)
	}
	if bag.Len() != 1 {
		t.Fatalf("expected 1 warning, got %s", diagnosticsSummary(bag))
	}
	d := bag.Items()[0]
	if d.Code != diag.SynRecoveredBlock || d.Primary.Line != 1 || d.Primary.Col != 20 {
		t.Fatalf("unexpected diagnostic: %s", diagnosticsSummary(bag))
	}
	if !strings.Contains(d.Message, "expected variable name") {
		t.Fatalf("message = %q", d.Message)
	}
}

func TestBlockRecoversInvalidAssignmentTarget(t *testing.T) {
	cases := []struct {
		src   string
		stmts int
		line  uint32
		col   uint32
	}{
		{"{ 1 = 2; var z = 1; }", 1, 1, 5},
		{"{ 5++; z(); }", 1, 1, 4},
		{"if (x) { \"s\" = 1; }", 0, 1, 14},
		{"{ x = = = 1; }", 0, 1, 9},
	}
	for _, tc := range cases {
		t.Run(tc.src, func(t *testing.T) {
			prog, bag := parseSource(t, tc.src)
			var block *ast.BlockStmt
			switch s := prog.Stmts[0].(type) {
			case *ast.BlockStmt:
				block = s
			case *ast.IfStmt:
				block = s.Then.(*ast.BlockStmt)
			}
			if block == nil || len(block.Stmts) != tc.stmts {
				t.Fatalf("block = %#v, want %d statements", block, tc.stmts)
			}
			var found bool
			for _, d := range bag.Items() {
				if d.Code == diag.SynRecoveredBlock && d.Primary.Line == tc.line && d.Primary.Col == tc.col {
					found = true
				}
			}
			if !found {
				t.Fatalf("no SYN2102 warning at %d:%d: %s", tc.line, tc.col, diagnosticsSummary(bag))
			}
		})
	}

	_, bag := parseSource(t, "function f() { a + b = 1; }")
	if bag.Len() != 1 || bag.Items()[0].Code != diag.SynRecoveredBlock {
		t.Fatalf("diagnostics = %s", diagnosticsSummary(bag))
	}
	if !strings.Contains(bag.Items()[0].Message, "invalid assignment target") {
		t.Fatalf("message = %q", bag.Items()[0].Message)
	}
}

func TestIfConditionRecoversInvalidAssignment(t *testing.T) {
	prog, bag := parseSource(t, "if (1 = 2) { y(); }")
	ifs := prog.Stmts[0].(*ast.IfStmt)
	if got := sexpr(ifs.Cond); got != "true" {
		t.Fatalf("condition = %s, want placeholder true", got)
	}
	if !hasCode(bag, diag.SynRecoveredIf) {
		t.Fatalf("diagnostics = %s", diagnosticsSummary(bag))
	}
}

func TestWarningSpanCoversOffendingToken(t *testing.T) {
	_, bag := parseSource(t, "function f() { return ) ; }")
	if bag.Len() == 0 {
		t.Fatalf("expected warnings")
	}
	d := bag.Items()[0]
	if d.Primary.Len != 1 {
		t.Fatalf("span length = %d, want 1", d.Primary.Len)
	}

	_, bag = parseSource(t, "var s = 1 + instanceof;")
	if bag.Len() == 0 {
		t.Fatalf("expected warnings")
	}
	if got := bag.Items()[0].Primary.Len; got != uint32(len("instanceof")) {
		t.Fatalf("span length = %d, want %d", got, len("instanceof"))
	}
}

func TestNilReporterStillRecovers(t *testing.T) {
	prog, err := Parse("var x = 1 + ;")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(prog.Stmts) != 1 {
		t.Fatalf("expected 1 statement, got %d", len(prog.Stmts))
	}
}

func TestRecoveryCap(t *testing.T) {
	src := "if a {} if b {} if c {}"
	_, bag := parseSourceWith(t, src, Options{MaxRecoveries: 3})
	if bag.Len() != 3 {
		t.Fatalf("expected 3 warnings, got %s", diagnosticsSummary(bag))
	}

	_, err := ParseWithOptions(src, Options{MaxRecoveries: 2})
	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("expected *ParseError, got %v", err)
	}
	if pe.DiagCode() != diag.SynTooManyRecoveries {
		t.Fatalf("code = %v, want %v", pe.DiagCode(), diag.SynTooManyRecoveries)
	}
	if pe.Line != 1 || pe.Column != 20 {
		t.Fatalf("cap error at %d:%d, want 1:20", pe.Line, pe.Column)
	}
}

func TestNegativeMaxRecoveriesDisablesRecovery(t *testing.T) {
	cases := []struct {
		src  string
		code diag.Code
	}{
		{"var x = 1 + ;", diag.SynUnexpectedToken},
		{"if (x > 0 { y = 1; }", diag.SynExpectToken},
		{"function f() { var = 1; }", diag.SynExpectToken},
	}
	for _, tc := range cases {
		t.Run(tc.src, func(t *testing.T) {
			bag := diag.NewBag(10)
			_, err := ParseWithOptions(tc.src, Options{MaxRecoveries: -1, Reporter: diag.BagReporter{Bag: bag}})
			var pe *ParseError
			if !errors.As(err, &pe) {
				t.Fatalf("expected *ParseError, got %v", err)
			}
			if pe.DiagCode() != tc.code {
				t.Fatalf("code = %v, want %v", pe.DiagCode(), tc.code)
			}
			if bag.Len() != 0 {
				t.Fatalf("no warnings expected, got %s", diagnosticsSummary(bag))
			}
		})
	}
}

func TestNestingDepthLimit(t *testing.T) {
	deep := strings.Repeat("(", 40) + "1" + strings.Repeat(")", 40) + ";"
	_, err := ParseWithOptions(deep, Options{MaxDepth: 16})
	var pe *ParseError
	if !errors.As(err, &pe) || pe.DiagCode() != diag.SynNestingTooDeep {
		t.Fatalf("expected nesting error, got %v", err)
	}

	// within the limit
	if _, err := ParseWithOptions(deep, Options{MaxDepth: 100}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	blocks := strings.Repeat("{", 40) + strings.Repeat("}", 40)
	_, err = ParseWithOptions(blocks, Options{MaxDepth: 16})
	if !errors.As(err, &pe) || pe.DiagCode() != diag.SynNestingTooDeep {
		t.Fatalf("nested blocks: expected nesting error, got %v", err)
	}
}

func TestPathologicalInputFailsCleanly(t *testing.T) {
	inputs := []string{
		strings.Repeat("(", 100000),
		strings.Repeat("[", 100000),
		"x = " + strings.Repeat("a ? b : ", 10000) + "c;",
		strings.Repeat("if (a) ", 10000) + "b();",
		"x = " + strings.Repeat("typeof ", 10000) + "y;",
	}
	for _, src := range inputs {
		_, err := Parse(src)
		var pe *ParseError
		if !errors.As(err, &pe) {
			t.Fatalf("expected *ParseError for %.20q..., got %v", src, err)
		}
		if pe.DiagCode() != diag.SynNestingTooDeep {
			t.Fatalf("code = %v for %.20q..., want nesting limit", pe.DiagCode(), src)
		}
	}

	// prefix chains are collected without recursion
	if _, err := Parse("x = " + strings.Repeat("!", 100000) + "y;"); err != nil {
		t.Fatalf("long prefix chain: %v", err)
	}
}

func TestParseSurfacesLexErrors(t *testing.T) {
	_, err := Parse("var s = \"abc;")
	var le *lexer.LexError
	if !errors.As(err, &le) {
		t.Fatalf("expected *lexer.LexError, got %T: %v", err, err)
	}
	if le.Line != 1 || le.Column != 9 {
		t.Fatalf("lex error at %d:%d", le.Line, le.Column)
	}

	_, err = ParseWithOptions("a; b; c;", Options{MaxTokens: 3})
	if !errors.As(err, &le) || le.DiagCode() != diag.LexTokenLimit {
		t.Fatalf("expected token limit error, got %v", err)
	}
}

func TestParseTokensWithoutEOF(t *testing.T) {
	toks, err := lexer.New("x = 1; f(x)", lexer.Options{}).Tokenize()
	if err != nil {
		t.Fatalf("tokenize: %v", err)
	}
	prog, err := ParseTokens(toks[:len(toks)-1], Options{})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(prog.Stmts) != 2 {
		t.Fatalf("expected 2 statements, got %d", len(prog.Stmts))
	}

	prog, err = ParseTokens(nil, Options{})
	if err != nil || len(prog.Stmts) != 0 {
		t.Fatalf("empty stream: %v, %v", prog, err)
	}
}

func TestConcurrentParse(t *testing.T) {
	const src = `class Counter {
	function inc() { this.n += 1; return this.n; }
}
var c = new Counter();
for (var i = 0; i < 3; i++) { c.inc(); }
if (c.n > 2 { log("done"); }`

	want, _ := parseSource(t, src)
	wantShape := shapeOf(want)

	var wg sync.WaitGroup
	errs := make(chan string, 16)
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			bag := diag.NewBag(10)
			prog, err := ParseWithOptions(src, Options{Reporter: diag.BagReporter{Bag: bag}})
			if err != nil {
				errs <- err.Error()
				return
			}
			if got := shapeOf(prog); got != wantShape {
				errs <- "shape mismatch: " + got
				return
			}
			if bag.Len() != 1 {
				errs <- "warnings: " + diagnosticsSummary(bag)
			}
		}()
	}
	wg.Wait()
	close(errs)
	for msg := range errs {
		t.Error(msg)
	}
}

// shapeOf renders node types in pre-order.
func shapeOf(prog *ast.Program) string {
	var b strings.Builder
	ast.Inspect(prog, func(n ast.Node) bool {
		if n == nil {
			b.WriteString(")")
			return false
		}
		fmt.Fprintf(&b, "(%T", n)
		return true
	})
	return b.String()
}
