package parser

import (
	"axscript/internal/ast"
	"axscript/internal/diag"
	"axscript/internal/token"
)

// parseExpression: главная точка входа для выражений.
// A failure anywhere inside the expression is reported, the offending token
// is dropped unless it closes an enclosing construct, and a null literal
// stands in for the whole expression.
func (p *Parser) parseExpression() (ast.Expr, error) {
	pos := p.peek().Pos()
	x, err := p.parseAssignment()
	if err == nil {
		return x, nil
	}
	if rerr := p.recoverFrom(diag.SynRecoveredExpr, err); rerr != nil {
		return nil, rerr
	}
	p.skipOne(exprFollow...)
	return placeholderNull(pos), nil
}

// parseAssignment: target (= | += | -= | *= | /=) value, right-associative.
// Compound forms desugar to target = copy(target) op value.
func (p *Parser) parseAssignment() (ast.Expr, error) {
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()

	target, err := p.parseConditional()
	if err != nil {
		return nil, err
	}
	if !isAssignOp(p.peek().Kind) {
		return target, nil
	}

	opTok := p.advance()
	if !ast.IsAssignable(target) {
		return nil, errorAt(opTok, diag.SynInvalidAssignment, "invalid assignment target")
	}
	value, err := p.parseAssignment()
	if err != nil {
		return nil, err
	}
	if base, ok := token.CompoundBase(opTok.Kind); ok {
		value = &ast.BinaryExpr{
			Position: target.Pos(),
			Op:       base,
			Left:     ast.CloneExpr(target),
			Right:    value,
		}
	}
	return &ast.AssignExpr{Position: target.Pos(), Target: target, Value: value}, nil
}

// parseConditional: test ? then : else, right-associative.
func (p *Parser) parseConditional() (ast.Expr, error) {
	test, err := p.parseBinaryExpr(precLogicalOr)
	if err != nil {
		return nil, err
	}
	if !p.match(token.Question) {
		return test, nil
	}
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()

	then, err := p.parseAssignment()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.Colon, "':' in conditional expression"); err != nil {
		return nil, err
	}
	els, err := p.parseConditional()
	if err != nil {
		return nil, err
	}
	return &ast.CondExpr{Position: test.Pos(), Test: test, Then: then, Else: els}, nil
}

// parseBinaryExpr: precedence climbing over the op table.
// minPrec - минимальный приоритет для текущего уровня.
func (p *Parser) parseBinaryExpr(minPrec int) (ast.Expr, error) {
	left, err := p.parseUnaryExpr()
	if err != nil {
		return nil, err
	}
	for {
		prec := binaryPrec(p.peek().Kind)
		if prec < minPrec {
			return left, nil
		}
		opTok := p.advance()
		right, err := p.parseBinaryExpr(prec + 1)
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryExpr{Position: left.Pos(), Op: opTok.Kind, Left: left, Right: right}
	}
}
