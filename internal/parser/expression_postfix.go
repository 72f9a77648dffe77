package parser

import (
	"axscript/internal/ast"
	"axscript/internal/diag"
	"axscript/internal/token"
)

func isPrefixOp(k token.Kind) bool {
	switch k {
	case token.Bang, token.Minus, token.PlusPlus, token.MinusMinus:
		return true
	}
	return false
}

// parseUnaryExpr collects prefix operators iteratively and applies them
// right to left, so "!!!x" costs no recursion.
func (p *Parser) parseUnaryExpr() (ast.Expr, error) {
	var prefixes []token.Token
	for isPrefixOp(p.peek().Kind) {
		prefixes = append(prefixes, p.advance())
	}

	expr, err := p.parsePostfixExpr()
	if err != nil {
		return nil, err
	}

	for i := len(prefixes) - 1; i >= 0; i-- {
		op := prefixes[i]
		switch op.Kind {
		case token.PlusPlus, token.MinusMinus:
			if !ast.IsAssignable(expr) {
				return nil, errorAt(op, diag.SynInvalidAssignment, "invalid operand for prefix %s", op.Text)
			}
			expr = &ast.UpdateExpr{Position: op.Pos(), Op: op.Kind, Operand: expr, Prefix: true}
		default:
			expr = &ast.UnaryExpr{Position: op.Pos(), Op: op.Kind, Operand: expr}
		}
	}
	return expr, nil
}

// parsePostfixExpr: call chain, then optional postfix ++/--, then any
// number of instanceof tests.
func (p *Parser) parsePostfixExpr() (ast.Expr, error) {
	expr, err := p.parseCallChain()
	if err != nil {
		return nil, err
	}

	if p.atAny(token.PlusPlus, token.MinusMinus) {
		op := p.advance()
		if !ast.IsAssignable(expr) {
			return nil, errorAt(op, diag.SynInvalidAssignment, "invalid operand for postfix %s", op.Text)
		}
		expr = &ast.UpdateExpr{Position: expr.Pos(), Op: op.Kind, Operand: expr}
	}

	for p.match(token.KwInstanceof) {
		right, err := p.parseCallChain()
		if err != nil {
			return nil, err
		}
		expr = &ast.InstanceofExpr{Position: expr.Pos(), Left: expr, Right: right}
	}
	return expr, nil
}

// parseCallChain: primary followed by any mix of (args), .member and [index].
func (p *Parser) parseCallChain() (ast.Expr, error) {
	expr, err := p.parsePrimaryExpr()
	if err != nil {
		return nil, err
	}
	for {
		switch p.peek().Kind {
		case token.LParen:
			args, err := p.parseArgs()
			if err != nil {
				return nil, err
			}
			expr = &ast.CallExpr{Position: expr.Pos(), Callee: expr, Args: args}

		case token.Dot:
			p.advance()
			name, err := p.parseMemberName("property name after '.'")
			if err != nil {
				return nil, err
			}
			expr = &ast.MemberExpr{Position: expr.Pos(), Object: expr, Member: name}

		case token.LBracket:
			p.advance()
			index, err := p.parseExpression()
			if err != nil {
				return nil, err
			}
			if _, err := p.expect(token.RBracket, "']' after index"); err != nil {
				return nil, err
			}
			expr = &ast.IndexExpr{Position: expr.Pos(), Object: expr, Index: index}

		default:
			return expr, nil
		}
	}
}

// parseArgs: ( a, b, ... ) with the '(' current.
func (p *Parser) parseArgs() ([]ast.Expr, error) {
	p.advance()
	var args []ast.Expr
	if !p.at(token.RParen) {
		for {
			arg, err := p.parseExpression()
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
			if !p.match(token.Comma) {
				break
			}
		}
	}
	if _, err := p.expect(token.RParen, "')' after arguments"); err != nil {
		return nil, err
	}
	return args, nil
}

// parseMemberName accepts identifiers and keywords ("obj.default", "ev.new").
func (p *Parser) parseMemberName(what string) (string, error) {
	tok := p.peek()
	if tok.Kind == token.Ident || tok.IsKeyword() {
		p.advance()
		return tok.Text, nil
	}
	return "", p.errExpected(what)
}
