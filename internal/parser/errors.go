package parser

import (
	"fmt"
	"unicode/utf8"

	"axscript/internal/diag"
	"axscript/internal/token"
)

// ParseError is a syntax error at a token position.
type ParseError struct {
	Message string
	Line    int
	Column  int
	code    diag.Code
	width   int // columns under the caret
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d, column %d: %s", e.Line, e.Column, e.Message)
}

func (e *ParseError) Position() (line, column int) { return e.Line, e.Column }

func (e *ParseError) Msg() string { return e.Message }

// DiagCode classifies the error for diagnostics output.
func (e *ParseError) DiagCode() diag.Code {
	if e.code == 0 {
		return diag.SynUnexpectedToken
	}
	return e.code
}

// fatal errors are never swallowed by any recovery site
func (e *ParseError) fatal() bool {
	switch e.code {
	case diag.SynNestingTooDeep, diag.SynTooManyRecoveries:
		return true
	}
	return false
}

func errorAt(tok token.Token, code diag.Code, format string, args ...any) *ParseError {
	return &ParseError{
		Message: fmt.Sprintf(format, args...),
		Line:    tok.Line,
		Column:  tok.Column,
		code:    code,
		width:   utf8.RuneCountInString(tok.Text),
	}
}
