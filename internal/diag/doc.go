// Package diag defines the diagnostic model shared by the tokenizer, the
// parser and the tooling around them.
//
// # Data model
//
// Diagnostic is the central record:
//
//   - Severity: Info, Warning or Error.
//   - Code: compact numeric identifier with a stable string form (LEX1001,
//     SYN2001, IO4001).
//   - Message: short human text.
//   - Primary: source.Span in display columns (tabs count as four).
//   - Notes: optional secondary spans.
//
// # Emitting diagnostics
//
// Producers talk to a Reporter. The parser reports every error it recovers
// from as a SevWarning so editors can show the swallowed noise; fatal
// tokenizer and parser errors are returned as values and converted with
// FromError by the driver.
//
// BagReporter collects into a Bag, which supports capping, sorting,
// deduplication and filtering. Package diag performs no formatting or IO;
// rendering lives in internal/diagfmt.
package diag
