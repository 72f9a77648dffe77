package source

import (
	"cmp"
	"fmt"

	"fortio.org/safecast"
)

// Span points at a run of display columns on a single line.
// Columns are 1-based and count a tab as four columns, the same way the
// tokenizer reports token positions.
type Span struct {
	File FileID
	Line uint32
	Col  uint32
	Len  uint32 // columns; 0 for a point
}

// NewSpan builds a span from the int positions the core packages use.
// Negative or oversized values clamp to zero.
func NewSpan(file FileID, line, col, width int) Span {
	return Span{
		File: file,
		Line: clampU32(line),
		Col:  clampU32(col),
		Len:  clampU32(width),
	}
}

func clampU32(v int) uint32 {
	out, err := safecast.Conv[uint32](v)
	if err != nil {
		return 0
	}
	return out
}

func (s Span) Empty() bool {
	return s.Len == 0
}

// IsValid reports whether the span carries a real position.
func (s Span) IsValid() bool {
	return s.Line > 0 && s.Col > 0
}

// EndCol is the first column after the span.
func (s Span) EndCol() uint32 {
	return s.Col + s.Len
}

// Compare orders spans by file, line, column, then length.
func (s Span) Compare(other Span) int {
	return cmp.Or(
		cmp.Compare(s.File, other.File),
		cmp.Compare(s.Line, other.Line),
		cmp.Compare(s.Col, other.Col),
		cmp.Compare(s.Len, other.Len),
	)
}

func (s Span) Less(other Span) bool { return s.Compare(other) < 0 }

func (s Span) String() string {
	return fmt.Sprintf("%d:%d:%d+%d", s.File, s.Line, s.Col, s.Len)
}
