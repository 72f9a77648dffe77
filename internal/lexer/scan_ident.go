package lexer

import (
	"unicode/utf8"

	"axscript/internal/token"
)

// scanIdentOrKeyword reads an identifier and checks it against the keyword table.
// Keywords are case-sensitive. Token.Text is exactly the source lexeme.
func (lx *Lexer) scanIdentOrKeyword() (token.Token, error) {
	start := lx.cursor.Mark()

	r, _ := lx.peekRune()
	if r < utf8.RuneSelf {
		lx.cursor.Bump()
	} else {
		if !isIdentStartRune(r) {
			return lx.scanOperatorOrPunct()
		}
		lx.bumpRune()
	}

	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		if b < utf8.RuneSelf {
			if !isIdentContinueByte(b) {
				break
			}
			lx.cursor.Bump()
			continue
		}
		r2, _ := lx.peekRune()
		if !isIdentContinueRune(r2) {
			break
		}
		lx.bumpRune()
	}

	text := lx.cursor.TextFrom(start)
	if k, ok := token.LookupKeyword(text); ok {
		return lx.makeToken(k, text), nil
	}
	return lx.makeToken(token.Ident, text), nil
}
