package driver

import (
	"context"

	"axscript/internal/ast"
	"axscript/internal/diag"
	"axscript/internal/source"
)

// ParseResult holds one parsed file. Program is nil after a fatal error;
// recovered errors leave a tree plus warnings in Bag.
type ParseResult struct {
	FileSet *source.FileSet
	File    *source.File
	Program *ast.Program
	Bag     *diag.Bag
	Cached  bool
}

// Parse loads, tokenizes and parses path.
func Parse(ctx context.Context, path string, opts Options) (*ParseResult, error) {
	fs := source.NewFileSet()
	opts = opts.withTimer()
	file, err := loadFile(ctx, fs, path, opts)
	if err != nil {
		return nil, err
	}
	return parseLoaded(ctx, fs, file, opts), nil
}

// ParseSource parses in-memory content registered under name.
func ParseSource(ctx context.Context, name string, src []byte, opts Options) *ParseResult {
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual(name, src))
	return parseLoaded(ctx, fs, file, opts.withTimer())
}

func parseLoaded(ctx context.Context, fs *source.FileSet, file *source.File, opts Options) *ParseResult {
	bag := diag.NewBag(opts.MaxDiagnostics)
	rep := newReporter(ctx, bag)

	res := &ParseResult{FileSet: fs, File: file, Bag: bag}
	toks, cached := tokenizeFile(ctx, file, opts, rep)
	res.Cached = cached
	if toks != nil {
		res.Program = parseFile(ctx, file, toks, opts, rep)
	}
	if opts.Timings {
		appendTimingDiagnostic(bag, file, "parse", opts.Timer.Report())
	}
	bag.Sort()
	return res
}
