// Package parser turns AXScript tokens into an *ast.Program.
//
// The parser is recursive descent with a precedence-climbing expression core.
// Most syntax errors are fatal and returned as *ParseError. Three sites
// recover instead, so scripts that are being edited live still yield a tree:
//
//   - the header of an if statement,
//   - an operand that cannot start an expression, and any other failure
//     inside a full expression,
//   - a failing statement inside a { } block.
//
// Every recovery is reported as a diag.SevWarning through Options.Reporter.
package parser

import (
	"axscript/internal/ast"
	"axscript/internal/diag"
	"axscript/internal/lexer"
	"axscript/internal/source"
	"axscript/internal/token"
)

const (
	DefaultMaxDepth      = 512
	DefaultMaxRecoveries = 256
)

// Options tune a single parse. The zero value is ready to use.
type Options struct {
	// MaxDepth caps nested statements and expressions; 0 selects DefaultMaxDepth.
	MaxDepth int
	// MaxRecoveries caps recovered errors per parse; 0 selects
	// DefaultMaxRecoveries, a negative value turns every error fatal.
	MaxRecoveries int
	// MaxTokens is handed to the tokenizer by Parse and ParseWithOptions.
	MaxTokens int

	// File anchors reported warnings.
	File     source.FileID
	Reporter diag.Reporter
}

func (o Options) maxDepth() int {
	if o.MaxDepth <= 0 {
		return DefaultMaxDepth
	}
	return o.MaxDepth
}

func (o Options) maxRecoveries() int {
	switch {
	case o.MaxRecoveries < 0:
		return 0
	case o.MaxRecoveries == 0:
		return DefaultMaxRecoveries
	}
	return o.MaxRecoveries
}

// Parser: состояние разбора одного потока токенов.
// A Parser is used by exactly one goroutine and discarded afterwards.
type Parser struct {
	toks       []token.Token
	pos        int
	opts       Options
	depth      int
	recoveries int
}

// Parse tokenizes src once and parses it with default options.
// The error is a *lexer.LexError or a *ParseError; no partial tree is
// returned with a fatal error.
func Parse(src string) (*ast.Program, error) {
	return ParseWithOptions(src, Options{})
}

// ParseWithOptions is Parse with explicit options.
func ParseWithOptions(src string, opts Options) (*ast.Program, error) {
	toks, err := lexer.New(src, lexer.Options{MaxTokens: opts.MaxTokens}).Tokenize()
	if err != nil {
		return nil, err
	}
	return ParseTokens(toks, opts)
}

// ParseTokens parses an already tokenized stream. A missing trailing EOF
// token is tolerated.
func ParseTokens(toks []token.Token, opts Options) (*ast.Program, error) {
	p := &Parser{toks: toks, opts: opts}
	return p.parseProgram()
}

// parseProgram: цикл верхнего уровня. Ошибки здесь не восстанавливаются.
func (p *Parser) parseProgram() (*ast.Program, error) {
	prog := &ast.Program{Position: p.peek().Pos()}
	for !p.at(token.EOF) {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		if stmt != nil {
			prog.Stmts = append(prog.Stmts, stmt)
		}
	}
	if !prog.Position.IsValid() {
		prog.Position = ast.Pos{Line: 1, Column: 1}
	}
	return prog, nil
}
