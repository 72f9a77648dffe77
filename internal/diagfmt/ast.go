package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"axscript/internal/ast"
)

type ASTNodeOutput struct {
	Type     string          `json:"type"`
	Line     int             `json:"line"`
	Column   int             `json:"column"`
	Fields   map[string]any  `json:"fields,omitempty"`
	Children []ASTNodeOutput `json:"children,omitempty"`
}

// FormatASTPretty печатает дерево с псевдографикой:
//
//	Program (1:1)
//	└─ VarDecl x (1:1)
//	   └─ NumberLit 1 (1:9)
func FormatASTPretty(w io.Writer, prog *ast.Program) error {
	if prog == nil {
		return fmt.Errorf("nil program")
	}
	var b strings.Builder
	writeTree(&b, prog, "", "")
	_, err := io.WriteString(w, b.String())
	return err
}

func writeTree(b *strings.Builder, n ast.Node, head, indent string) {
	info := describeNode(n)
	b.WriteString(head)
	b.WriteString(info.label())
	fmt.Fprintf(b, " (%s)\n", n.Pos())

	children := ast.Children(n)
	for i, child := range children {
		if i == len(children)-1 {
			writeTree(b, child, indent+"└─ ", indent+"   ")
		} else {
			writeTree(b, child, indent+"├─ ", indent+"│  ")
		}
	}
}

// FormatASTJSON выводит дерево в JSON.
func FormatASTJSON(w io.Writer, prog *ast.Program) error {
	if prog == nil {
		return fmt.Errorf("nil program")
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(BuildASTOutput(prog))
}

// BuildASTOutput converts the tree without serialising it.
func BuildASTOutput(n ast.Node) ASTNodeOutput {
	info := describeNode(n)
	pos := n.Pos()
	out := ASTNodeOutput{
		Type:   info.typ,
		Line:   pos.Line,
		Column: pos.Column,
		Fields: info.fields,
	}
	for _, child := range ast.Children(n) {
		out.Children = append(out.Children, BuildASTOutput(child))
	}
	return out
}

type nodeInfo struct {
	typ    string
	detail string
	fields map[string]any
}

func (ni nodeInfo) label() string {
	if ni.detail == "" {
		return ni.typ
	}
	return ni.typ + " " + ni.detail
}

func describeNode(n ast.Node) nodeInfo {
	typ := strings.TrimPrefix(fmt.Sprintf("%T", n), "*ast.")
	ni := nodeInfo{typ: typ}
	set := func(detail string, kv ...any) {
		ni.detail = detail
		if len(kv) == 0 {
			return
		}
		ni.fields = make(map[string]any, len(kv)/2)
		for i := 0; i+1 < len(kv); i += 2 {
			ni.fields[kv[i].(string)] = kv[i+1]
		}
	}

	switch n := n.(type) {
	case *ast.VarDecl:
		set(n.Name, "name", n.Name)
	case *ast.FuncDecl:
		detail := fmt.Sprintf("%s(%s)", n.Name, strings.Join(n.Params, ", "))
		if n.Static {
			detail = "static " + detail
		}
		set(detail, "name", n.Name, "params", n.Params, "static", n.Static)
	case *ast.ClassDecl:
		detail := n.Name
		if n.Superclass != "" {
			detail += " extends " + n.Superclass
		}
		set(detail, "name", n.Name, "superclass", n.Superclass)
	case *ast.ForInStmt:
		kw := "in"
		if n.Of {
			kw = "of"
		}
		set(n.Var+" "+kw, "var", n.Var, "of", n.Of)
	case *ast.CatchClause:
		set(n.Param, "param", n.Param)
	case *ast.SwitchCase:
		if n.Test == nil {
			set("default", "default", true)
		}
	case *ast.ImportStmt:
		parts := []string{fmt.Sprintf("%q", n.Module)}
		if len(n.Names) > 0 {
			parts = append(parts, "{"+strings.Join(n.Names, ", ")+"}")
		}
		if n.Alias != "" {
			parts = append(parts, "as "+n.Alias)
		}
		set(strings.Join(parts, " "), "module", n.Module, "names", n.Names, "alias", n.Alias)
	case *ast.NumberLit:
		set(n.Raw, "value", n.Value, "raw", n.Raw)
	case *ast.StringLit:
		set(n.Raw, "value", n.Value)
	case *ast.BoolLit:
		set(fmt.Sprint(n.Value), "value", n.Value)
	case *ast.Ident:
		set(n.Name, "name", n.Name)
	case *ast.Property:
		set(n.Key, "key", n.Key)
	case *ast.BinaryExpr:
		set(n.Op.Lexeme(), "op", n.Op.Lexeme())
	case *ast.UnaryExpr:
		set(n.Op.Lexeme(), "op", n.Op.Lexeme())
	case *ast.UpdateExpr:
		form := "postfix"
		if n.Prefix {
			form = "prefix"
		}
		set(n.Op.Lexeme()+" "+form, "op", n.Op.Lexeme(), "prefix", n.Prefix)
	case *ast.CallExpr:
		if name := n.CalleeName(); name != "" {
			set(name, "callee", name)
		}
	case *ast.MemberExpr:
		set("."+n.Member, "member", n.Member)
	case *ast.NewExpr:
		set(n.Class, "class", n.Class)
	case *ast.SuperExpr:
		set("."+n.Method, "method", n.Method)
	}
	return ni
}
