// Package token defines lexical token kinds for AXScript.
// Invariants:
//   - Token.Text is the exact source lexeme; string literals keep their quotes.
//   - Line and Column are 1-based; a tab advances the column by 4.
//   - Newline is a tracked kind but is never emitted: statements end with ';'.
//   - EOF is always the last token and sits at (line count, 1).
package token
