package lexer

import (
	"fmt"

	"axscript/internal/diag"
)

// Options tune the lexer. The zero value is ready to use.
type Options struct {
	// MaxTokens bounds the number of emitted tokens (EOF excluded); 0 means unlimited.
	MaxTokens int
}

// LexError reports a character that starts no token, an unterminated string
// literal, or an exceeded token limit. Lexical errors are never recovered.
type LexError struct {
	Message string
	Line    int
	Column  int
	code    diag.Code
}

func (e *LexError) Error() string {
	return fmt.Sprintf("line %d, column %d: %s", e.Line, e.Column, e.Message)
}

func (e *LexError) Position() (line, column int) { return e.Line, e.Column }

func (e *LexError) Msg() string { return e.Message }

// DiagCode classifies the error for diagnostics output.
func (e *LexError) DiagCode() diag.Code {
	if e.code == 0 {
		return diag.LexUnknownChar
	}
	return e.code
}

func (lx *Lexer) errorf(code diag.Code, col int, format string, args ...any) *LexError {
	return &LexError{
		Message: fmt.Sprintf(format, args...),
		Line:    lx.lineNo,
		Column:  col,
		code:    code,
	}
}
