package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"axscript/internal/diag"
	"axscript/internal/source"
)

// tabWidth matches the tokenizer: a tab always advances four columns.
const tabWidth = 4

type palette struct {
	err, warn, info, note *color.Color
	code, path, gutter    *color.Color
	caret                 *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		err:    color.New(color.FgRed, color.Bold),
		warn:   color.New(color.FgYellow, color.Bold),
		info:   color.New(color.FgCyan, color.Bold),
		note:   color.New(color.FgBlue, color.Bold),
		code:   color.New(color.Faint),
		path:   color.New(color.Bold),
		gutter: color.New(color.FgBlue),
		caret:  color.New(color.FgGreen, color.Bold),
	}
	for _, c := range []*color.Color{p.err, p.warn, p.info, p.note, p.code, p.path, p.gutter, p.caret} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

func (p palette) severity(sev diag.Severity) *color.Color {
	switch sev {
	case diag.SevError:
		return p.err
	case diag.SevWarning:
		return p.warn
	default:
		return p.info
	}
}

// Pretty форматирует диагностики в человекочитаемый вид.
// Идёт по bag.Items() (ожидается bag.Sort() заранее).
// Для каждого diag печатает:
//
//	<path>:<line>:<col>: <SEV> <CODE>: <Message>
//
// затем контекст строки с подчёркиванием ^~~~ по Span, затем Notes.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	if bag == nil {
		return
	}
	pal := newPalette(opts.Color)
	for i, d := range bag.Items() {
		if i > 0 {
			fmt.Fprintln(w)
		}
		prettyOne(w, &d, fs, opts, pal)
	}
}

func prettyOne(w io.Writer, d *diag.Diagnostic, fs *source.FileSet, opts PrettyOpts, pal palette) {
	loc := formatLocation(d.Primary, fs, opts.PathMode)
	fmt.Fprintf(w, "%s: %s %s: %s\n",
		pal.path.Sprint(loc),
		pal.severity(d.Severity).Sprint(d.Severity.String()),
		pal.code.Sprint(d.Code.ID()),
		d.Message,
	)

	if file := fileOf(fs, d.Primary.File); file != nil && d.Primary.IsValid() {
		writeSnippet(w, file, d.Primary, opts, pal)
	}

	if !opts.ShowNotes {
		return
	}
	for _, note := range d.Notes {
		fmt.Fprintf(w, "  %s %s: %s\n",
			pal.note.Sprint("note:"),
			formatLocation(note.Span, fs, opts.PathMode),
			note.Msg,
		)
	}
}

// writeSnippet prints up to opts.Context preceding lines, the primary line
// and the caret line underneath it.
func writeSnippet(w io.Writer, file *source.File, span source.Span, opts PrettyOpts, pal palette) {
	first := span.Line
	if ctx := uint32(max(opts.Context, 0)); ctx < first {
		first -= ctx
	} else {
		first = 1
	}
	gutterWidth := len(fmt.Sprint(span.Line))

	for ln := first; ln <= span.Line; ln++ {
		text := ExpandTabs(file.GetLine(ln))
		if opts.Width > 0 {
			text = runewidth.Truncate(text, int(opts.Width), "...")
		}
		fmt.Fprintf(w, " %s %s %s\n",
			pal.gutter.Sprintf("%*d", gutterWidth, ln),
			pal.gutter.Sprint("|"),
			text,
		)
	}

	pad, width := caretGeometry(ExpandTabs(file.GetLine(span.Line)), span)
	marker := "^" + strings.Repeat("~", max(width-1, 0))
	fmt.Fprintf(w, " %s %s %s%s\n",
		strings.Repeat(" ", gutterWidth),
		pal.gutter.Sprint("|"),
		strings.Repeat(" ", pad),
		pal.caret.Sprint(marker),
	)
}

// caretGeometry converts a column span on an expanded line into terminal
// cells: the padding before the caret and the underline width.
func caretGeometry(expanded string, span source.Span) (pad, width int) {
	runes := []rune(expanded)
	start := min(int(span.Col)-1, len(runes))
	end := min(start+max(int(span.Len), 1), len(runes))

	pad = runewidth.StringWidth(string(runes[:start]))
	width = runewidth.StringWidth(string(runes[start:end]))
	if width < 1 {
		width = 1
	}
	return pad, width
}

// ExpandTabs replaces each tab with four spaces so that rune offsets equal
// the columns reported by the tokenizer.
func ExpandTabs(line string) string {
	return strings.ReplaceAll(line, "\t", strings.Repeat(" ", tabWidth))
}

func fileOf(fs *source.FileSet, id source.FileID) *source.File {
	if fs == nil {
		return nil
	}
	return fs.Get(id)
}

func formatPath(f *source.File, fs *source.FileSet, mode PathMode) string {
	switch mode {
	case PathModeRelative:
		return f.FormatPath("relative", fs.BaseDir())
	default:
		return f.FormatPath(mode.String(), "")
	}
}

func formatLocation(span source.Span, fs *source.FileSet, mode PathMode) string {
	path := "<unknown>"
	if f := fileOf(fs, span.File); f != nil {
		path = formatPath(f, fs, mode)
	}
	if !span.IsValid() {
		return path
	}
	return fmt.Sprintf("%s:%d:%d", path, span.Line, span.Col)
}

// Summary prints "N error(s), M warning(s)" for the bag.
func Summary(w io.Writer, bag *diag.Bag, useColor bool) {
	var errs, warns int
	if bag != nil {
		for _, d := range bag.Items() {
			switch d.Severity {
			case diag.SevError:
				errs++
			case diag.SevWarning:
				warns++
			}
		}
	}
	pal := newPalette(useColor)
	fmt.Fprintf(w, "%s, %s\n",
		pal.err.Sprint(plural(errs, "error")),
		pal.warn.Sprint(plural(warns, "warning")),
	)
}

func plural(n int, word string) string {
	if n == 1 {
		return "1 " + word
	}
	return fmt.Sprintf("%d %ss", n, word)
}
