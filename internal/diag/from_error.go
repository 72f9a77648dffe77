package diag

import (
	"errors"

	"axscript/internal/source"
)

// Positioned is implemented by the tokenizer and parser error types.
type Positioned interface {
	error
	Position() (line, column int)
	DiagCode() Code
	Msg() string // message without the position prefix
}

// FromError converts a positioned core error into an error diagnostic
// anchored in file. It reports false for errors without a position.
func FromError(file source.FileID, err error) (Diagnostic, bool) {
	var p Positioned
	if !errors.As(err, &p) {
		return Diagnostic{}, false
	}
	line, col := p.Position()
	return NewError(p.DiagCode(), source.NewSpan(file, line, col, 1), p.Msg()), true
}
