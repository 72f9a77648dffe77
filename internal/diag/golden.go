package diag

import (
	"cmp"
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"axscript/internal/source"
)

// FormatGoldenDiagnostics renders one "severity CODE path:line:col message"
// line per diagnostic, sorted, with paths relative to the FileSet base. The
// output is stable across machines and is what golden tests compare.
func FormatGoldenDiagnostics(diags []Diagnostic, fs *source.FileSet, includeNotes bool) string {
	return renderLines(diags, fs, includeNotes, func(f *source.File) string {
		p := filepath.ToSlash(f.FormatPath("relative", fs.BaseDir()))
		for strings.HasPrefix(p, "./") {
			p = p[2:]
		}
		return p
	})
}

// FormatShortDiagnostics is the same layout with paths exactly as loaded,
// used by `check --format short`.
func FormatShortDiagnostics(diags []Diagnostic, fs *source.FileSet, includeNotes bool) string {
	return renderLines(diags, fs, includeNotes, func(f *source.File) string { return f.Path })
}

type goldenLine struct {
	path      string
	ln, col   uint32
	sev, code string
	msg       string
}

func (l goldenLine) String() string {
	return fmt.Sprintf("%s %s %s:%d:%d %s", l.sev, l.code, l.path, l.ln, l.col, l.msg)
}

func renderLines(diags []Diagnostic, fs *source.FileSet, includeNotes bool, pathOf func(*source.File) string) string {
	if fs == nil {
		return ""
	}
	var lines []goldenLine
	add := func(sp source.Span, sev string, code Code, msg string) {
		if f := fs.Get(sp.File); f != nil {
			lines = append(lines, goldenLine{path: pathOf(f), ln: sp.Line, col: sp.Col, sev: sev, code: code.ID(), msg: oneLine(msg)})
		}
	}
	for _, d := range diags {
		add(d.Primary, d.Severity.Label(), d.Code, d.Message)
		if includeNotes {
			for _, n := range d.Notes {
				add(n.Span, "note", d.Code, n.Msg)
			}
		}
	}

	slices.SortStableFunc(lines, func(a, b goldenLine) int {
		return cmp.Or(
			cmp.Compare(a.path, b.path),
			cmp.Compare(a.ln, b.ln),
			cmp.Compare(a.col, b.col),
			cmp.Compare(a.sev, b.sev),
			cmp.Compare(a.code, b.code),
			cmp.Compare(a.msg, b.msg),
		)
	})
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = l.String()
	}
	return strings.Join(out, "\n")
}

// oneLine folds line breaks so that every entry stays on one output line.
func oneLine(msg string) string {
	return strings.TrimSpace(strings.NewReplacer("\r\n", " ", "\r", " ", "\n", " ").Replace(msg))
}
