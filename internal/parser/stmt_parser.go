package parser

import (
	"axscript/internal/ast"
	"axscript/internal/diag"
	"axscript/internal/token"
)

// parseStatement выбирает разбор по первому токену.
// A bare ';' is an empty statement and yields (nil, nil).
func (p *Parser) parseStatement() (ast.Stmt, error) {
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()

	switch p.peek().Kind {
	case token.KwVar:
		return p.parseVarStmt()
	case token.KwFunction:
		return p.parseFuncDecl(false)
	case token.KwClass:
		return p.parseClassDecl()
	case token.KwIf:
		return p.parseIfStmt()
	case token.KwWhile:
		return p.parseWhileStmt()
	case token.KwFor:
		return p.parseForStmt()
	case token.KwDo:
		return p.parseDoWhileStmt()
	case token.KwTry:
		return p.parseTryStmt()
	case token.KwThrow:
		return p.parseThrowStmt()
	case token.KwReturn:
		return p.parseReturnStmt()
	case token.KwBreak:
		tok := p.advance()
		if _, err := p.expect(token.Semicolon, "';' after 'break'"); err != nil {
			return nil, err
		}
		return &ast.BreakStmt{Position: tok.Pos()}, nil
	case token.KwContinue:
		tok := p.advance()
		if _, err := p.expect(token.Semicolon, "';' after 'continue'"); err != nil {
			return nil, err
		}
		return &ast.ContinueStmt{Position: tok.Pos()}, nil
	case token.KwImport:
		return p.parseImportStmt()
	case token.KwExport:
		return p.parseExportStmt()
	case token.KwSwitch:
		return p.parseSwitchStmt()
	case token.LBrace:
		return p.parseBlock()
	case token.Semicolon:
		p.advance()
		return nil, nil
	default:
		return p.parseExprStmt()
	}
}

// parseBody parses the body of a loop or branch. An empty statement
// becomes an empty block so bodies are never nil.
func (p *Parser) parseBody() (ast.Stmt, error) {
	pos := p.peek().Pos()
	stmt, err := p.parseStatement()
	if err != nil {
		return nil, err
	}
	if stmt == nil {
		return &ast.BlockStmt{Position: pos}, nil
	}
	return stmt, nil
}

// parseBlock разбирает { ... }. A failing statement is reported, its
// offending token dropped, and scanning continues with the next statement.
func (p *Parser) parseBlock() (*ast.BlockStmt, error) {
	lbrace, err := p.expect(token.LBrace, "'{'")
	if err != nil {
		return nil, err
	}
	block := &ast.BlockStmt{Position: lbrace.Pos()}

	for !p.at(token.RBrace) && !p.at(token.EOF) {
		stmt, err := p.parseStatement()
		if err != nil {
			if rerr := p.recoverFrom(diag.SynRecoveredBlock, err); rerr != nil {
				return nil, rerr
			}
			p.skipOne(token.RBrace)
			continue
		}
		if stmt != nil {
			block.Stmts = append(block.Stmts, stmt)
		}
	}

	if _, err := p.expect(token.RBrace, "'}' to close block"); err != nil {
		return nil, err
	}
	return block, nil
}

// parseExprStmt: the trailing ';' may be omitted right before '}' or EOF.
func (p *Parser) parseExprStmt() (ast.Stmt, error) {
	pos := p.peek().Pos()
	x, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if !p.match(token.Semicolon) && !p.atAny(token.RBrace, token.EOF) {
		return nil, p.errExpected("';' after expression")
	}
	return &ast.ExprStmt{Position: pos, X: x}, nil
}

func (p *Parser) parseVarStmt() (ast.Stmt, error) {
	decl, err := p.parseVarDecl()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.Semicolon, "';' after variable declaration"); err != nil {
		return nil, err
	}
	return decl, nil
}

// parseVarDecl: var Name [= Init], without the terminator.
func (p *Parser) parseVarDecl() (*ast.VarDecl, error) {
	kw, err := p.expect(token.KwVar, "'var'")
	if err != nil {
		return nil, err
	}
	name, err := p.expectIdent("variable name")
	if err != nil {
		return nil, err
	}
	decl := &ast.VarDecl{Position: kw.Pos(), Name: name.Text}
	if p.match(token.Assign) {
		if decl.Init, err = p.parseExpression(); err != nil {
			return nil, err
		}
	}
	return decl, nil
}

func (p *Parser) parseReturnStmt() (ast.Stmt, error) {
	kw := p.advance()
	ret := &ast.ReturnStmt{Position: kw.Pos()}
	if !p.at(token.Semicolon) {
		var err error
		if ret.Value, err = p.parseExpression(); err != nil {
			return nil, err
		}
	}
	if _, err := p.expect(token.Semicolon, "';' after return statement"); err != nil {
		return nil, err
	}
	return ret, nil
}

func (p *Parser) parseThrowStmt() (ast.Stmt, error) {
	kw := p.advance()
	if p.atAny(token.Semicolon, token.RBrace, token.EOF) {
		return nil, p.errExpected("expression after 'throw'")
	}
	value, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.Semicolon, "';' after throw statement"); err != nil {
		return nil, err
	}
	return &ast.ThrowStmt{Position: kw.Pos(), Value: value}, nil
}
