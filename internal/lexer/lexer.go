package lexer

import (
	"strings"
	"unicode/utf8"

	"axscript/internal/diag"
	"axscript/internal/token"
)

const tabWidth = 4

// Lexer scans AXScript source one line at a time.
// A Lexer is single-use state; create one per source string.
type Lexer struct {
	lines  []string
	opts   Options
	cursor Cursor
	lineNo int // 1-based
	col    int // 1-based display column of cursor
	out    []token.Token
}

// New prepares a lexer over src.
func New(src string, opts Options) *Lexer {
	return &Lexer{
		lines: strings.Split(src, "\n"),
		opts:  opts,
	}
}

// Tokenize is the package-level entry point: it scans src with default options.
func Tokenize(src string) ([]token.Token, error) {
	return New(src, Options{}).Tokenize()
}

// Tokenize scans the whole source and returns the tokens terminated by EOF.
// The first lexical error aborts the scan.
func (lx *Lexer) Tokenize() ([]token.Token, error) {
	lx.out = lx.out[:0]
	for i, line := range lx.lines {
		lx.lineNo = i + 1
		lx.cursor = NewCursor(line)
		lx.col = 1
		if err := lx.scanLine(); err != nil {
			return nil, err
		}
	}
	lx.out = append(lx.out, token.Token{
		Kind:   token.EOF,
		Line:   len(lx.lines),
		Column: 1,
	})
	return lx.out, nil
}

func (lx *Lexer) scanLine() error {
	for !lx.cursor.EOF() {
		ch := lx.cursor.Peek()

		switch {
		case isSpace(ch):
			lx.cursor.Bump()
			if ch == '\t' {
				lx.col += tabWidth
			} else {
				lx.col++
			}
			continue

		case ch == '/' && lx.atLineComment():
			// the rest of the line is a comment
			return nil
		}

		var (
			tok token.Token
			err error
		)
		switch {
		case ch == '"':
			tok, err = lx.scanString()
		case isDec(ch):
			tok = lx.scanNumber()
		case isIdentStartByte(ch) || ch >= utf8.RuneSelf:
			tok, err = lx.scanIdentOrKeyword()
		default:
			tok, err = lx.scanOperatorOrPunct()
		}
		if err != nil {
			return err
		}
		if err := lx.emit(tok); err != nil {
			return err
		}
	}
	return nil
}

// emit appends tok and advances the display column past it.
func (lx *Lexer) emit(tok token.Token) error {
	if lx.opts.MaxTokens > 0 && len(lx.out) >= lx.opts.MaxTokens {
		return lx.errorf(diag.LexTokenLimit, tok.Column, "too many tokens (limit %d)", lx.opts.MaxTokens)
	}
	lx.out = append(lx.out, tok)
	lx.col += utf8.RuneCountInString(tok.Text)
	return nil
}

func (lx *Lexer) makeToken(k token.Kind, text string) token.Token {
	return token.Token{Kind: k, Text: text, Line: lx.lineNo, Column: lx.col}
}

func (lx *Lexer) atLineComment() bool {
	b0, b1, ok := lx.cursor.Peek2()
	return ok && b0 == '/' && b1 == '/'
}
