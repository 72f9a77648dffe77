package parser

import (
	"testing"

	"axscript/internal/ast"
	"axscript/internal/diag"
	"axscript/internal/token"
)

func TestExpressionShapes(t *testing.T) {
	cases := []struct {
		src  string
		want string
	}{
		{"1 + 2 * 3", "(+ 1 (* 2 3))"},
		{"1 * 2 + 3", "(+ (* 1 2) 3)"},
		{"a - b - c", "(- (- a b) c)"},
		{"a / b % c", "(% (/ a b) c)"},
		{"(1 + 2) * 3", "(* (+ 1 2) 3)"},
		{"a || b && c", "(|| a (&& b c))"},
		{"a && b || c", "(|| (&& a b) c)"},
		{"a == b && c != d", "(&& (== a b) (!= c d))"},
		{"a === b !== c", "(!== (=== a b) c)"},
		{"a < b == c >= d", "(== (< a b) (>= c d))"},
		{"a + b < c * d", "(< (+ a b) (* c d))"},
		{"!a && b", "(&& (! a) b)"},
		{"-x * y", "(* (- x) y)"},
		{"!!x", "(! (! x))"},
		{"- -x", "(- (- x))"},
		{"a = b = c", "(= a (= b c))"},
		{"a ? b : c", "(? a b c)"},
		{"a ? b : c ? d : e", "(? a b (? c d e))"},
		{"a || b ? c : d", "(? (|| a b) c d)"},
		{"x = a ? b : c", "(= x (? a b c))"},
		{"a ? x = 1 : y", "(? a (= x 1) y)"},
		{"i++", "(post++ i)"},
		{"i--", "(post-- i)"},
		{"++i", "(pre++ i)"},
		{"--a.b", "(pre-- (. a b))"},
		{"a[0]++", "(post++ ([] a 0))"},
		{"-i++", "(- (post++ i))"},
		{"f()", "(call f)"},
		{"f(1, 2)", "(call f 1 2)"},
		{"a.b.c", "(. (. a b) c)"},
		{"a.b[c](d)", "(call ([] (. a b) c) d)"},
		{"f(1)(2)", "(call (call f 1) 2)"},
		{"obj.default", "(. obj default)"},
		{"ev.new", "(. ev new)"},
		{"this.x", "(. this x)"},
		{"super.init(x)", "(call super.init x)"},
		{"new Foo", "(new Foo)"},
		{"new Foo(1, 2)", "(new Foo 1 2)"},
		{"new ui.Button(\"ok\")", "(new ui.Button \"ok\")"},
		{"new Foo().bar", "(. (new Foo) bar)"},
		{"typeof x", "(typeof x)"},
		{"typeof x === \"number\"", "(=== (typeof x) \"number\")"},
		{"typeof -x", "(typeof (- x))"},
		{"x instanceof Foo", "(instanceof x Foo)"},
		{"x instanceof Foo && y", "(&& (instanceof x Foo) y)"},
		{"a instanceof B instanceof C", "(instanceof (instanceof a B) C)"},
		{"[]", "(array)"},
		{"[1, 2, 3]", "(array 1 2 3)"},
		{"[1, 2,]", "(array 1 2)"},
		{"[[1], [2]]", "(array (array 1) (array 2))"},
		{"true != false", "(!= true false)"},
		{"null", "null"},
		{"007", "007"},
		{"1.", "1."},
	}
	for _, tc := range cases {
		t.Run(tc.src, func(t *testing.T) {
			got := sexpr(exprOf(t, tc.src))
			if got != tc.want {
				t.Errorf("parse %q:\n got  %s\n want %s", tc.src, got, tc.want)
			}
		})
	}
}

func TestObjectLiteralInExpressionPosition(t *testing.T) {
	decl := singleStmt[*ast.VarDecl](t, `var o = {a: 1, "b c": 2, default: 3, 4: x,};`)
	got := sexpr(decl.Init)
	want := "(object a:1 b c:2 default:3 4:x)"
	if got != want {
		t.Fatalf("got %s, want %s", got, want)
	}

	empty := singleStmt[*ast.VarDecl](t, "var o = {};")
	if obj, ok := empty.Init.(*ast.ObjectLit); !ok || len(obj.Props) != 0 {
		t.Fatalf("expected empty object, got %s", sexpr(empty.Init))
	}
}

func TestCompoundAssignmentDesugars(t *testing.T) {
	cases := []struct {
		src  string
		want string
	}{
		{"x += 1", "(= x (+ x 1))"},
		{"x -= y * 2", "(= x (- x (* y 2)))"},
		{"a.b *= 3", "(= (. a b) (* (. a b) 3))"},
		{"a[i] /= 2", "(= ([] a i) (/ ([] a i) 2))"},
		{"x += y += 1", "(= x (+ x (= y (+ y 1))))"},
	}
	for _, tc := range cases {
		t.Run(tc.src, func(t *testing.T) {
			x := exprOf(t, tc.src)
			if got := sexpr(x); got != tc.want {
				t.Fatalf("got %s, want %s", got, tc.want)
			}
			assign := x.(*ast.AssignExpr)
			bin, ok := assign.Value.(*ast.BinaryExpr)
			if !ok {
				t.Fatalf("value is %T, want *ast.BinaryExpr", assign.Value)
			}
			if bin.Left == assign.Target {
				t.Fatalf("desugared target shares the node with the left operand")
			}
		})
	}
}

func TestBinaryOperatorKinds(t *testing.T) {
	x := exprOf(t, "a === b")
	bin, ok := x.(*ast.BinaryExpr)
	if !ok {
		t.Fatalf("expected *ast.BinaryExpr, got %T", x)
	}
	if bin.Op != token.EqEqEq {
		t.Fatalf("op = %v, want ===", bin.Op)
	}
}

func TestLiteralValues(t *testing.T) {
	num := exprOf(t, "3.25").(*ast.NumberLit)
	if num.Value != 3.25 || num.Raw != "3.25" {
		t.Errorf("number literal = %v (%q)", num.Value, num.Raw)
	}

	str := exprOf(t, `"a\"b\n\tc\\d\q"`).(*ast.StringLit)
	if want := "a\"b\n\tc\\d\\q"; str.Value != want {
		t.Errorf("string value = %q, want %q", str.Value, want)
	}
	if str.Raw != `"a\"b\n\tc\\d\q"` {
		t.Errorf("raw lexeme lost: %q", str.Raw)
	}

	if b := exprOf(t, "false").(*ast.BoolLit); b.Value {
		t.Errorf("false parsed as true")
	}
}

func TestExpressionPositions(t *testing.T) {
	prog := mustParse(t, "var total = price * count;\n\tcall(total);")
	decl := prog.Stmts[0].(*ast.VarDecl)
	bin := decl.Init.(*ast.BinaryExpr)
	if got := bin.Pos(); got != (ast.Pos{Line: 1, Column: 13}) {
		t.Errorf("binary position = %v, want 1:13 (left operand)", got)
	}
	if got := bin.Right.Pos(); got != (ast.Pos{Line: 1, Column: 21}) {
		t.Errorf("right operand position = %v, want 1:21", got)
	}

	stmt := prog.Stmts[1].(*ast.ExprStmt)
	if got := stmt.Pos(); got != (ast.Pos{Line: 2, Column: 5}) {
		t.Errorf("tab-indented statement position = %v, want 2:5", got)
	}
	call := stmt.X.(*ast.CallExpr)
	if got := call.Args[0].Pos(); got != (ast.Pos{Line: 2, Column: 10}) {
		t.Errorf("argument position = %v, want 2:10", got)
	}
}

// Outside any block nothing may swallow a bad target.
func TestInvalidAssignmentTargetIsFatal(t *testing.T) {
	cases := []struct {
		src  string
		line int
		col  int
	}{
		{"1 = 2;", 1, 3},
		{"f() = 1;", 1, 5},
		{"a + b = c;", 1, 7},
		{"5++;", 1, 2},
		{"--f();", 1, 1},
		{"var v = (1 = 2);", 1, 12},
		{"g(1 = 2);", 1, 5},
	}
	for _, tc := range cases {
		t.Run(tc.src, func(t *testing.T) {
			pe := parseFail(t, tc.src)
			if pe.DiagCode() != diag.SynInvalidAssignment {
				t.Fatalf("code = %v, want %v (%v)", pe.DiagCode(), diag.SynInvalidAssignment, pe)
			}
			if pe.Line != tc.line || pe.Column != tc.col {
				t.Fatalf("error at %d:%d, want %d:%d", pe.Line, pe.Column, tc.line, tc.col)
			}
		})
	}
}

// A parenthesized identifier is still an identifier after parsing.
func TestParenthesizedTargetIsAssignable(t *testing.T) {
	if got := sexpr(exprOf(t, "(a) = 1")); got != "(= a 1)" {
		t.Fatalf("got %s", got)
	}
}
