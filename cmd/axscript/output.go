package main

import (
	"fmt"
	"io"
	"strings"

	"axscript/internal/diag"
	"axscript/internal/diagfmt"
	"axscript/internal/observ"
	"axscript/internal/source"
)

// visible drops warnings when they are switched off; errors and infos stay.
func visible(bag *diag.Bag, s settings) *diag.Bag {
	if s.Warnings {
		return bag
	}
	out := diag.NewBag(bag.Len())
	for _, d := range bag.Items() {
		if d.Severity != diag.SevWarning {
			out.Add(d)
		}
	}
	return out
}

// printDiagnostics writes bag to stderr in the pretty format.
func printDiagnostics(w io.Writer, bag *diag.Bag, fs *source.FileSet, s settings, useColor bool) {
	bag = visible(bag, s)
	if bag.Len() == 0 {
		return
	}
	diagfmt.Pretty(w, bag, fs, diagfmt.PrettyOpts{
		Color:     useColor,
		Context:   1,
		PathMode:  s.PathMode,
		ShowNotes: true,
	})
	fmt.Fprintln(w)
	diagfmt.Summary(w, bag, useColor)
}

func printTimings(w io.Writer, timer *observ.Timer) {
	if timer == nil {
		return
	}
	summary := strings.TrimSpace(timer.Summary())
	if summary == "" {
		return
	}
	fmt.Fprintln(w, summary)
}

// stdinName labels diagnostics for scripts read from "-".
const stdinName = "<stdin>"

func readStdin(r io.Reader) ([]byte, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read stdin: %w", err)
	}
	return data, nil
}
