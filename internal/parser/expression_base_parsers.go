package parser

import (
	"strconv"

	"axscript/internal/ast"
	"axscript/internal/diag"
	"axscript/internal/token"
)

// parsePrimaryExpr разбирает литералы, имена и скобочные формы.
// A token that cannot start an operand is reported and replaced by a null
// literal; the token itself is dropped unless it closes an enclosing construct.
func (p *Parser) parsePrimaryExpr() (ast.Expr, error) {
	tok := p.peek()
	pos := tok.Pos()

	switch tok.Kind {
	case token.Number:
		p.advance()
		// no exponent forms reach here; an out-of-range literal becomes ±Inf
		v, _ := strconv.ParseFloat(tok.Text, 64)
		return &ast.NumberLit{Position: pos, Value: v, Raw: tok.Text}, nil
	case token.String:
		p.advance()
		return &ast.StringLit{Position: pos, Value: unquote(tok.Text), Raw: tok.Text}, nil
	case token.KwTrue, token.KwFalse:
		p.advance()
		return &ast.BoolLit{Position: pos, Value: tok.Kind == token.KwTrue}, nil
	case token.KwNull:
		p.advance()
		return &ast.NullLit{Position: pos}, nil
	case token.Ident:
		p.advance()
		return &ast.Ident{Position: pos, Name: tok.Text}, nil
	case token.KwThis:
		p.advance()
		return &ast.ThisExpr{Position: pos}, nil
	case token.KwSuper:
		return p.parseSuperExpr()
	case token.KwNew:
		return p.parseNewExpr()
	case token.KwTypeof:
		return p.parseTypeofExpr()
	case token.LParen:
		p.advance()
		x, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.RParen, "')' after expression"); err != nil {
			return nil, err
		}
		return x, nil
	case token.LBracket:
		return p.parseArrayLit()
	case token.LBrace:
		return p.parseObjectLit()
	}

	if err := p.recoverFrom(diag.SynRecoveredExpr, p.errUnexpected()); err != nil {
		return nil, err
	}
	p.skipOne(exprFollow...)
	return placeholderNull(pos), nil
}

// super.method
func (p *Parser) parseSuperExpr() (ast.Expr, error) {
	kw := p.advance()
	if _, err := p.expect(token.Dot, "'.' after 'super'"); err != nil {
		return nil, err
	}
	name, err := p.parseMemberName("method name after 'super.'")
	if err != nil {
		return nil, err
	}
	return &ast.SuperExpr{Position: kw.Pos(), Method: name}, nil
}

// new Name[.Name...] [(args)]
func (p *Parser) parseNewExpr() (ast.Expr, error) {
	kw := p.advance()
	name, err := p.expectIdent("class name after 'new'")
	if err != nil {
		return nil, err
	}
	class := name.Text
	for p.match(token.Dot) {
		part, err := p.expectIdent("class name after '.'")
		if err != nil {
			return nil, err
		}
		class += "." + part.Text
	}
	expr := &ast.NewExpr{Position: kw.Pos(), Class: class}
	if p.at(token.LParen) {
		if expr.Args, err = p.parseArgs(); err != nil {
			return nil, err
		}
	}
	return expr, nil
}

func (p *Parser) parseTypeofExpr() (ast.Expr, error) {
	kw := p.advance()
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()
	operand, err := p.parseUnaryExpr()
	if err != nil {
		return nil, err
	}
	return &ast.TypeofExpr{Position: kw.Pos(), Operand: operand}, nil
}

// [a, b, c] with an optional trailing comma.
func (p *Parser) parseArrayLit() (ast.Expr, error) {
	lbrack := p.advance()
	arr := &ast.ArrayLit{Position: lbrack.Pos()}
	for !p.at(token.RBracket) {
		el, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		arr.Elements = append(arr.Elements, el)
		if !p.match(token.Comma) {
			break
		}
	}
	if _, err := p.expect(token.RBracket, "']' after array elements"); err != nil {
		return nil, err
	}
	return arr, nil
}

// { key: value, ... } in expression position. Keys are identifiers,
// keywords, strings or numbers.
func (p *Parser) parseObjectLit() (ast.Expr, error) {
	lbrace := p.advance()
	obj := &ast.ObjectLit{Position: lbrace.Pos()}
	for !p.at(token.RBrace) {
		keyTok := p.peek()
		var key string
		switch {
		case keyTok.Kind == token.Ident || keyTok.IsKeyword():
			key = keyTok.Text
		case keyTok.Kind == token.String:
			key = unquote(keyTok.Text)
		case keyTok.Kind == token.Number:
			key = keyTok.Text
		default:
			return nil, p.errExpected("property name")
		}
		p.advance()
		if _, err := p.expect(token.Colon, "':' after property name"); err != nil {
			return nil, err
		}
		value, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		obj.Props = append(obj.Props, &ast.Property{Position: keyTok.Pos(), Key: key, Value: value})
		if !p.match(token.Comma) {
			break
		}
	}
	if _, err := p.expect(token.RBrace, "'}' after object literal"); err != nil {
		return nil, err
	}
	return obj, nil
}
