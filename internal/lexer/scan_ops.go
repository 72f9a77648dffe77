package lexer

import (
	"axscript/internal/diag"
	"axscript/internal/token"
)

// scanOperatorOrPunct takes the longest operator that matches at the cursor,
// so "===" wins over "==" and "==" over "=".
func (lx *Lexer) scanOperatorOrPunct() (token.Token, error) {
	rest := lx.cursor.Line[lx.cursor.Off:]
	for n := min(token.MaxPunctLen, len(rest)); n > 0; n-- {
		if k, ok := token.LookupPunct(rest[:n]); ok {
			lx.cursor.Off += n
			return lx.makeToken(k, rest[:n]), nil
		}
	}
	r, _ := lx.peekRune()
	return token.Token{}, lx.errorf(diag.LexUnknownChar, lx.col, "unexpected character %q", r)
}
