package parser

import (
	"errors"
	"slices"

	"axscript/internal/ast"
	"axscript/internal/diag"
	"axscript/internal/token"
)

// Tokens that close an enclosing construct. Expression recovery leaves them
// in place so the construct can still finish.
var exprFollow = []token.Kind{
	token.Semicolon, token.RParen, token.RBracket, token.RBrace, token.Comma, token.Colon,
}

// Synchronisation set of a malformed if header. '}' belongs to the
// enclosing block and is never skipped.
var ifSync = []token.Kind{token.LParen, token.Ident, token.Number, token.RParen, token.LBrace, token.RBrace}

// passThrough lists, per site, errors left to the enclosing statement.
var passThrough = map[diag.Code][]diag.Code{
	diag.SynRecoveredExpr: {diag.SynInvalidAssignment},
}

// recoverFrom decides whether err may be swallowed at a recovery site.
// It returns nil after reporting a warning, err itself when err is fatal,
// or a fatal cap error once the recovery limit is reached.
func (p *Parser) recoverFrom(site diag.Code, err error) error {
	var pe *ParseError
	if !errors.As(err, &pe) || pe.fatal() || slices.Contains(passThrough[site], pe.DiagCode()) {
		return err
	}
	limit := p.opts.maxRecoveries()
	if limit == 0 {
		return err
	}
	if p.recoveries >= limit {
		return &ParseError{
			Message: "too many syntax errors, giving up: " + pe.Message,
			Line:    pe.Line,
			Column:  pe.Column,
			code:    diag.SynTooManyRecoveries,
			width:   pe.width,
		}
	}
	p.recoveries++
	p.warn(site, pe)
	return nil
}

// skipUntil discards tokens until one of kinds or EOF is current.
func (p *Parser) skipUntil(kinds ...token.Kind) int {
	n := 0
	for !p.at(token.EOF) && !p.atAny(kinds...) {
		p.advance()
		n++
	}
	return n
}

// skipOne discards the current token unless it is EOF or one of keep.
func (p *Parser) skipOne(keep ...token.Kind) bool {
	if p.at(token.EOF) || p.atAny(keep...) {
		return false
	}
	p.advance()
	return true
}

func placeholderTrue(pos ast.Pos) ast.Expr {
	return &ast.BoolLit{Position: pos, Value: true}
}

func placeholderNull(pos ast.Pos) ast.Expr {
	return &ast.NullLit{Position: pos}
}
