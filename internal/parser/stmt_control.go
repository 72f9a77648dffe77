package parser

import (
	"axscript/internal/ast"
	"axscript/internal/diag"
	"axscript/internal/token"
)

// parseIfStmt is the one statement whose header recovers: a missing '(',
// an unparsable condition, a missing ')' or a missing then-branch are
// reported as warnings and patched with placeholders.
func (p *Parser) parseIfStmt() (ast.Stmt, error) {
	kw := p.advance()
	stmt := &ast.IfStmt{Position: kw.Pos()}

	open := p.match(token.LParen)
	if !open {
		if err := p.recoverFrom(diag.SynRecoveredIf, p.errExpected("'(' after 'if'")); err != nil {
			return nil, err
		}
		p.skipUntil(ifSync...)
		open = p.match(token.LParen)
	}

	cond, err := p.parseIfCondition()
	if err != nil {
		return nil, err
	}
	stmt.Cond = cond

	if open && !p.match(token.RParen) {
		if err := p.recoverFrom(diag.SynRecoveredIf, p.errExpected("')' after if condition")); err != nil {
			return nil, err
		}
		p.skipUntil(ifSync...)
		p.match(token.RParen)
	} else if !open {
		p.match(token.RParen)
	}

	if p.atAny(token.RBrace, token.EOF) {
		if err := p.recoverFrom(diag.SynRecoveredIf, p.errExpected("statement after if condition")); err != nil {
			return nil, err
		}
		stmt.Then = &ast.BlockStmt{Position: p.peek().Pos()}
		return stmt, nil
	}
	if stmt.Then, err = p.parseBody(); err != nil {
		return nil, err
	}

	if p.match(token.KwElse) {
		if p.atAny(token.RBrace, token.EOF) {
			return nil, p.errExpected("statement after 'else'")
		}
		if stmt.Else, err = p.parseBody(); err != nil {
			return nil, err
		}
	}
	return stmt, nil
}

func (p *Parser) parseIfCondition() (ast.Expr, error) {
	pos := p.peek().Pos()
	if p.atAny(token.RParen, token.LBrace, token.RBrace, token.EOF) {
		if err := p.recoverFrom(diag.SynRecoveredIf, p.errExpected("condition in if statement")); err != nil {
			return nil, err
		}
		return placeholderTrue(pos), nil
	}
	cond, err := p.parseExpression()
	if err != nil {
		if rerr := p.recoverFrom(diag.SynRecoveredIf, err); rerr != nil {
			return nil, rerr
		}
		p.skipUntil(token.RParen, token.LBrace, token.RBrace)
		return placeholderTrue(pos), nil
	}
	return cond, nil
}

// parseParenExpr: ( expr ) after while, do-while and switch.
func (p *Parser) parseParenExpr(after string) (ast.Expr, error) {
	if _, err := p.expect(token.LParen, "'(' after '"+after+"'"); err != nil {
		return nil, err
	}
	x, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.RParen, "')' after "+after+" condition"); err != nil {
		return nil, err
	}
	return x, nil
}

func (p *Parser) parseWhileStmt() (ast.Stmt, error) {
	kw := p.advance()
	cond, err := p.parseParenExpr("while")
	if err != nil {
		return nil, err
	}
	body, err := p.parseBody()
	if err != nil {
		return nil, err
	}
	return &ast.WhileStmt{Position: kw.Pos(), Cond: cond, Body: body}, nil
}

// parseDoWhileStmt: do body while (cond) [;]
func (p *Parser) parseDoWhileStmt() (ast.Stmt, error) {
	kw := p.advance()
	body, err := p.parseBody()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.KwWhile, "'while' after do body"); err != nil {
		return nil, err
	}
	cond, err := p.parseParenExpr("while")
	if err != nil {
		return nil, err
	}
	p.match(token.Semicolon)
	return &ast.DoWhileStmt{Position: kw.Pos(), Body: body, Cond: cond}, nil
}

// parseForStmt disambiguates for-in/for-of from the C-style loop with a
// bounded lookahead: it tries "[var] IDENT in|of" and rewinds on mismatch.
func (p *Parser) parseForStmt() (ast.Stmt, error) {
	kw := p.advance()
	if _, err := p.expect(token.LParen, "'(' after 'for'"); err != nil {
		return nil, err
	}

	m := p.mark()
	p.match(token.KwVar)
	if p.at(token.Ident) {
		name := p.advance()
		if p.atAny(token.KwIn, token.KwOf) {
			return p.finishForIn(kw, name)
		}
	}
	p.reset(m)

	loop := &ast.ForStmt{Position: kw.Pos()}
	var err error

	switch {
	case p.at(token.Semicolon):
	case p.at(token.KwVar):
		if loop.Init, err = p.parseVarDecl(); err != nil {
			return nil, err
		}
	default:
		pos := p.peek().Pos()
		x, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		loop.Init = &ast.ExprStmt{Position: pos, X: x}
	}
	if _, err := p.expect(token.Semicolon, "';' after for initializer"); err != nil {
		return nil, err
	}

	if !p.at(token.Semicolon) {
		if loop.Cond, err = p.parseExpression(); err != nil {
			return nil, err
		}
	}
	if _, err := p.expect(token.Semicolon, "';' after for condition"); err != nil {
		return nil, err
	}

	if !p.at(token.RParen) {
		if loop.Update, err = p.parseExpression(); err != nil {
			return nil, err
		}
	}
	if _, err := p.expect(token.RParen, "')' after for clauses"); err != nil {
		return nil, err
	}

	if loop.Body, err = p.parseBody(); err != nil {
		return nil, err
	}
	return loop, nil
}

func (p *Parser) finishForIn(kw, name token.Token) (ast.Stmt, error) {
	loop := &ast.ForInStmt{Position: kw.Pos(), Var: name.Text, Of: p.advance().Kind == token.KwOf}
	var err error
	if loop.Iterable, err = p.parseExpression(); err != nil {
		return nil, err
	}
	if _, err := p.expect(token.RParen, "')' after for-in iterable"); err != nil {
		return nil, err
	}
	if loop.Body, err = p.parseBody(); err != nil {
		return nil, err
	}
	return loop, nil
}

// parseSwitchStmt: switch (x) { case a: ... default: ... }
// Uniqueness of default is left to the consumer.
func (p *Parser) parseSwitchStmt() (ast.Stmt, error) {
	kw := p.advance()
	disc, err := p.parseParenExpr("switch")
	if err != nil {
		return nil, err
	}
	sw := &ast.SwitchStmt{Position: kw.Pos(), Discriminant: disc}

	if _, err := p.expect(token.LBrace, "'{' before switch body"); err != nil {
		return nil, err
	}
	for !p.at(token.RBrace) {
		head := p.peek()
		sc := &ast.SwitchCase{Position: head.Pos()}
		switch head.Kind {
		case token.KwCase:
			p.advance()
			if sc.Test, err = p.parseExpression(); err != nil {
				return nil, err
			}
			if _, err := p.expect(token.Colon, "':' after case value"); err != nil {
				return nil, err
			}
		case token.KwDefault:
			p.advance()
			if _, err := p.expect(token.Colon, "':' after 'default'"); err != nil {
				return nil, err
			}
		default:
			return nil, p.errExpected("'case' or 'default' in switch body")
		}

		for !p.atAny(token.KwCase, token.KwDefault, token.RBrace, token.EOF) {
			stmt, err := p.parseStatement()
			if err != nil {
				return nil, err
			}
			if stmt != nil {
				sc.Body = append(sc.Body, stmt)
			}
		}
		sw.Cases = append(sw.Cases, sc)
	}
	p.advance() // '}'
	return sw, nil
}

// parseTryStmt: try {} [catch [(e)] {}] [finally {}], at least one handler.
func (p *Parser) parseTryStmt() (ast.Stmt, error) {
	kw := p.advance()
	if !p.at(token.LBrace) {
		return nil, p.errExpected("'{' after 'try'")
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	stmt := &ast.TryStmt{Position: kw.Pos(), Try: body}

	if p.at(token.KwCatch) {
		catchTok := p.advance()
		clause := &ast.CatchClause{Position: catchTok.Pos()}
		if p.match(token.LParen) {
			param, err := p.expectIdent("catch parameter name")
			if err != nil {
				return nil, err
			}
			clause.Param = param.Text
			if _, err := p.expect(token.RParen, "')' after catch parameter"); err != nil {
				return nil, err
			}
		}
		if !p.at(token.LBrace) {
			return nil, p.errExpected("'{' before catch body")
		}
		if clause.Body, err = p.parseBlock(); err != nil {
			return nil, err
		}
		stmt.Catch = clause
	}

	if p.match(token.KwFinally) {
		if !p.at(token.LBrace) {
			return nil, p.errExpected("'{' after 'finally'")
		}
		if stmt.Finally, err = p.parseBlock(); err != nil {
			return nil, err
		}
	}

	if stmt.Catch == nil && stmt.Finally == nil {
		return nil, p.errExpected("'catch' or 'finally' after try block")
	}
	return stmt, nil
}
