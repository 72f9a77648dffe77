package parser

import (
	"axscript/internal/ast"
	"axscript/internal/token"
)

// parseImportStmt handles
//
//	import "mod";             import mod;
//	import "mod" as m;        import * as m from "mod";
//	import name from "mod";   import { a, b } from "mod";
func (p *Parser) parseImportStmt() (ast.Stmt, error) {
	kw := p.advance()
	imp := &ast.ImportStmt{Position: kw.Pos()}

	switch {
	case p.at(token.Star):
		p.advance()
		if _, err := p.expect(token.KwAs, "'as' after '*' in import"); err != nil {
			return nil, err
		}
		alias, err := p.expectIdent("alias name")
		if err != nil {
			return nil, err
		}
		imp.Alias = alias.Text
		if err := p.parseImportFrom(imp); err != nil {
			return nil, err
		}

	case p.at(token.LBrace):
		p.advance()
		for !p.at(token.RBrace) {
			name, err := p.expectIdent("imported name")
			if err != nil {
				return nil, err
			}
			imp.Names = append(imp.Names, name.Text)
			if !p.match(token.Comma) {
				break
			}
		}
		if _, err := p.expect(token.RBrace, "'}' after import list"); err != nil {
			return nil, err
		}
		if err := p.parseImportFrom(imp); err != nil {
			return nil, err
		}

	case p.at(token.Ident) && p.peekAt(1).Kind == token.KwFrom:
		imp.Names = []string{p.advance().Text}
		if err := p.parseImportFrom(imp); err != nil {
			return nil, err
		}

	default:
		mod, err := p.parseModuleName()
		if err != nil {
			return nil, err
		}
		imp.Module = mod
		if p.match(token.KwAs) {
			alias, err := p.expectIdent("alias name")
			if err != nil {
				return nil, err
			}
			imp.Alias = alias.Text
		}
	}

	if _, err := p.expect(token.Semicolon, "';' after import"); err != nil {
		return nil, err
	}
	return imp, nil
}

func (p *Parser) parseImportFrom(imp *ast.ImportStmt) error {
	if _, err := p.expect(token.KwFrom, "'from' in import"); err != nil {
		return err
	}
	mod, err := p.parseModuleName()
	if err != nil {
		return err
	}
	imp.Module = mod
	return nil
}

// parseModuleName accepts a string literal or a bare identifier.
func (p *Parser) parseModuleName() (string, error) {
	switch tok := p.peek(); tok.Kind {
	case token.String:
		p.advance()
		return unquote(tok.Text), nil
	case token.Ident:
		p.advance()
		return tok.Text, nil
	}
	return "", p.errExpected("module name")
}

// parseExportStmt: export var|function|class ...
func (p *Parser) parseExportStmt() (ast.Stmt, error) {
	kw := p.advance()
	var (
		decl ast.Stmt
		err  error
	)
	switch p.peek().Kind {
	case token.KwVar:
		decl, err = p.parseVarStmt()
	case token.KwFunction:
		decl, err = p.parseFuncDecl(false)
	case token.KwClass:
		decl, err = p.parseClassDecl()
	default:
		return nil, p.errExpected("declaration after 'export'")
	}
	if err != nil {
		return nil, err
	}
	return &ast.ExportStmt{Position: kw.Pos(), Decl: decl}, nil
}
