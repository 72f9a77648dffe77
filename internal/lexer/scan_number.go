package lexer

import (
	"axscript/internal/token"
)

// scanNumber reads a maximal run of digits with at most one '.'.
// No exponents, radix prefixes or range checks: "1." and "007" are valid lexemes.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()
	seenDot := false
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		switch {
		case isDec(b):
			lx.cursor.Bump()
		case b == '.' && !seenDot:
			seenDot = true
			lx.cursor.Bump()
		default:
			return lx.makeToken(token.Number, lx.cursor.TextFrom(start))
		}
	}
	return lx.makeToken(token.Number, lx.cursor.TextFrom(start))
}
