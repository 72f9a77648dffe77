package parser

import (
	"fmt"
	"slices"

	"axscript/internal/diag"
	"axscript/internal/source"
	"axscript/internal/token"
)

// peek returns the current token. Past the end of a stream without EOF it
// synthesises one at the last known position.
func (p *Parser) peek() token.Token {
	return p.peekAt(0)
}

func (p *Parser) peekAt(n int) token.Token {
	if i := p.pos + n; i < len(p.toks) {
		return p.toks[i]
	}
	eof := token.Token{Kind: token.EOF, Line: 1, Column: 1}
	if len(p.toks) > 0 {
		eof.Line = p.toks[len(p.toks)-1].Line
	}
	return eof
}

func (p *Parser) at(k token.Kind) bool {
	return p.peek().Kind == k
}

func (p *Parser) atAny(kinds ...token.Kind) bool {
	return slices.Contains(kinds, p.peek().Kind)
}

// advance съедает текущий токен. EOF is never consumed.
func (p *Parser) advance() token.Token {
	tok := p.peek()
	if tok.Kind != token.EOF {
		p.pos++
	}
	return tok
}

func (p *Parser) match(k token.Kind) bool {
	if p.at(k) {
		p.advance()
		return true
	}
	return false
}

// expect consumes a token of kind k or fails with "expected <what>, got <tok>".
func (p *Parser) expect(k token.Kind, what string) (token.Token, error) {
	if p.at(k) {
		return p.advance(), nil
	}
	return token.Token{}, p.errExpected(what)
}

func (p *Parser) expectIdent(what string) (token.Token, error) {
	return p.expect(token.Ident, what)
}

func (p *Parser) errExpected(what string) *ParseError {
	tok := p.peek()
	code := diag.SynExpectToken
	if tok.Kind == token.EOF {
		code = diag.SynUnexpectedEOF
	}
	return errorAt(tok, code, "expected %s, got %s", what, describe(tok))
}

func (p *Parser) errUnexpected() *ParseError {
	tok := p.peek()
	if tok.Kind == token.EOF {
		return errorAt(tok, diag.SynUnexpectedEOF, "unexpected end of input")
	}
	return errorAt(tok, diag.SynUnexpectedToken, "unexpected token %s", describe(tok))
}

// describe renders a token for messages.
func describe(tok token.Token) string {
	switch tok.Kind {
	case token.EOF:
		return "end of input"
	case token.Ident, token.Number, token.String:
		return fmt.Sprintf("%s %s", kindNoun(tok.Kind), tok.Text)
	}
	return "'" + tok.Text + "'"
}

func kindNoun(k token.Kind) string {
	switch k {
	case token.Ident:
		return "identifier"
	case token.Number:
		return "number"
	default:
		return "string"
	}
}

// mark/reset bound the speculative lookahead of for headers.
type mark int

func (p *Parser) mark() mark {
	return mark(p.pos)
}

func (p *Parser) reset(m mark) {
	p.pos = int(m)
}

// enter counts one level of nesting. On success the caller must defer p.leave().
func (p *Parser) enter() error {
	if p.depth >= p.opts.maxDepth() {
		return errorAt(p.peek(), diag.SynNestingTooDeep, "maximum nesting depth exceeded (limit %d)", p.opts.maxDepth())
	}
	p.depth++
	return nil
}

func (p *Parser) leave() {
	p.depth--
}

// warn reports a recovered error as a warning.
func (p *Parser) warn(code diag.Code, pe *ParseError) {
	if p.opts.Reporter == nil {
		return
	}
	span := source.NewSpan(p.opts.File, pe.Line, pe.Column, max(pe.width, 1))
	p.opts.Reporter.Report(code, diag.SevWarning, span, pe.Message, nil)
}
