package lexer

// Cursor walks the bytes of a single source line.
type Cursor struct {
	Line string
	Off  int
}

// NewCursor creates a cursor at the start of line.
func NewCursor(line string) Cursor {
	return Cursor{Line: line}
}

// EOF reports whether the end of the line was reached.
func (c *Cursor) EOF() bool {
	return c.Off >= len(c.Line)
}

// Peek returns the current byte or 0 at end of line.
func (c *Cursor) Peek() byte {
	if c.EOF() {
		return 0
	}
	return c.Line[c.Off]
}

// Peek2 returns the current and the next byte.
func (c *Cursor) Peek2() (b0, b1 byte, ok bool) {
	if c.Off+1 >= len(c.Line) {
		return 0, 0, false
	}
	return c.Line[c.Off], c.Line[c.Off+1], true
}

// Bump advances one byte and returns it.
func (c *Cursor) Bump() byte {
	if c.EOF() {
		return 0
	}
	b := c.Line[c.Off]
	c.Off++
	return b
}

// Mark is a saved cursor offset.
type Mark int

// Mark saves the current offset.
func (c *Cursor) Mark() Mark {
	return Mark(c.Off)
}

// TextFrom returns the lexeme between m and the current offset.
func (c *Cursor) TextFrom(m Mark) string {
	return c.Line[int(m):c.Off]
}
