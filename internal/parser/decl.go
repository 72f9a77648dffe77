package parser

import (
	"axscript/internal/ast"
	"axscript/internal/token"
)

// parseFuncDecl: function name(a, b) { body }
func (p *Parser) parseFuncDecl(static bool) (*ast.FuncDecl, error) {
	kw, err := p.expect(token.KwFunction, "'function'")
	if err != nil {
		return nil, err
	}
	name, err := p.expectIdent("function name")
	if err != nil {
		return nil, err
	}
	fn := &ast.FuncDecl{Position: kw.Pos(), Name: name.Text, Static: static}

	if _, err := p.expect(token.LParen, "'(' after function name"); err != nil {
		return nil, err
	}
	if !p.at(token.RParen) {
		for {
			param, err := p.expectIdent("parameter name")
			if err != nil {
				return nil, err
			}
			fn.Params = append(fn.Params, param.Text)
			if !p.match(token.Comma) {
				break
			}
		}
	}
	if _, err := p.expect(token.RParen, "')' after function parameters"); err != nil {
		return nil, err
	}

	if !p.at(token.LBrace) {
		return nil, p.errExpected("'{' before function body")
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	fn.Body = body.Stmts
	return fn, nil
}

// parseClassDecl: class Name [extends Base] { [static] function m() {} ... }
// A class body holds methods only; anything else is fatal.
func (p *Parser) parseClassDecl() (*ast.ClassDecl, error) {
	kw := p.advance()
	name, err := p.expectIdent("class name")
	if err != nil {
		return nil, err
	}
	class := &ast.ClassDecl{Position: kw.Pos(), Name: name.Text}

	if p.match(token.KwExtends) {
		base, err := p.expectIdent("superclass name after 'extends'")
		if err != nil {
			return nil, err
		}
		class.Superclass = base.Text
	}

	if _, err := p.expect(token.LBrace, "'{' before class body"); err != nil {
		return nil, err
	}
	for !p.at(token.RBrace) {
		start := p.peek().Pos()
		static := p.match(token.KwStatic)
		if !p.at(token.KwFunction) {
			return nil, p.errExpected("method declaration in class body")
		}
		method, err := p.parseFuncDecl(static)
		if err != nil {
			return nil, err
		}
		method.Position = start
		class.Methods = append(class.Methods, method)
	}
	if _, err := p.expect(token.RBrace, "'}' after class body"); err != nil {
		return nil, err
	}
	return class, nil
}
