package diag

import (
	"fmt"
)

type Code uint16

const (
	UnknownCode Code = 0

	// Лексические
	LexInfo               Code = 1000
	LexUnknownChar        Code = 1001
	LexUnterminatedString Code = 1002
	LexTokenLimit         Code = 1003

	// Синтаксические
	SynInfo              Code = 2000
	SynUnexpectedToken   Code = 2001
	SynExpectToken       Code = 2002
	SynInvalidAssignment Code = 2003
	SynUnexpectedEOF     Code = 2004
	SynNestingTooDeep    Code = 2005
	SynTooManyRecoveries Code = 2006

	// recovered errors, reported as warnings
	SynRecoveredIf    Code = 2100
	SynRecoveredExpr  Code = 2101
	SynRecoveredBlock Code = 2102

	// Наблюдаемость
	ObsInfo    Code = 3000
	ObsTimings Code = 3001

	// Ошибки I/O
	IOLoadFileError Code = 4001
	IOCacheError    Code = 4002
)

var codeDescription = map[Code]string{
	UnknownCode:           "Unknown error",
	LexInfo:               "Lexical information",
	LexUnknownChar:        "Unknown character",
	LexUnterminatedString: "Unterminated string",
	LexTokenLimit:         "Token limit exceeded",
	SynInfo:               "Syntax information",
	SynUnexpectedToken:    "Unexpected token",
	SynExpectToken:        "Expected token",
	SynInvalidAssignment:  "Invalid assignment target",
	SynUnexpectedEOF:      "Unexpected end of input",
	SynNestingTooDeep:     "Nesting too deep",
	SynTooManyRecoveries:  "Too many recovered errors",
	SynRecoveredIf:        "Recovered malformed if header",
	SynRecoveredExpr:      "Recovered malformed expression",
	SynRecoveredBlock:     "Recovered malformed statement in block",
	ObsInfo:               "Observability information",
	ObsTimings:            "Pipeline timings",
	IOLoadFileError:       "Failed to load file",
	IOCacheError:          "Token cache failure",
}

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 3000 && ic < 4000:
		return fmt.Sprintf("OBS%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
