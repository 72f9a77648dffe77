package lexer

import (
	"axscript/internal/diag"
	"axscript/internal/token"
)

// scanString reads "..." on the current line. Recognised escapes are
// \" \\ \n \t \r; any other backslash is kept as a plain character.
// The token text keeps both quotes.
func (lx *Lexer) scanString() (token.Token, error) {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // opening '"'
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		if b == '"' {
			lx.cursor.Bump()
			return lx.makeToken(token.String, lx.cursor.TextFrom(start)), nil
		}
		if b == '\\' {
			lx.cursor.Bump()
			if isEscape(lx.cursor.Peek()) {
				lx.cursor.Bump()
			}
			continue
		}
		lx.bumpRune()
	}
	// strings never span lines
	return token.Token{}, lx.errorf(diag.LexUnterminatedString, lx.col, "unterminated string literal")
}

func isEscape(b byte) bool {
	switch b {
	case '"', '\\', 'n', 't', 'r':
		return true
	default:
		return false
	}
}
