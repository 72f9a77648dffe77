package driver

import (
	"context"

	"axscript/internal/diag"
	"axscript/internal/observ"
	"axscript/internal/source"
	"axscript/internal/token"
)

// TokenizeResult holds one tokenized file. Tokens is nil when the file
// failed to tokenize; the error diagnostic is in Bag.
type TokenizeResult struct {
	FileSet *source.FileSet
	File    *source.File
	Tokens  []token.Token
	Bag     *diag.Bag
	Cached  bool
}

// Tokenize loads path and tokenizes it. Only a load failure is returned
// as an error.
func Tokenize(ctx context.Context, path string, opts Options) (*TokenizeResult, error) {
	fs := source.NewFileSet()
	opts = opts.withTimer()
	file, err := loadFile(ctx, fs, path, opts)
	if err != nil {
		return nil, err
	}
	return tokenizeLoaded(ctx, fs, file, opts), nil
}

// TokenizeSource tokenizes in-memory content registered under name.
func TokenizeSource(ctx context.Context, name string, src []byte, opts Options) *TokenizeResult {
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual(name, src))
	return tokenizeLoaded(ctx, fs, file, opts.withTimer())
}

func tokenizeLoaded(ctx context.Context, fs *source.FileSet, file *source.File, opts Options) *TokenizeResult {
	bag := diag.NewBag(opts.MaxDiagnostics)
	toks, cached := tokenizeFile(ctx, file, opts, newReporter(ctx, bag))
	if opts.Timings {
		appendTimingDiagnostic(bag, file, "tokenize", opts.Timer.Report())
	}
	bag.Sort()
	return &TokenizeResult{
		FileSet: fs,
		File:    file,
		Tokens:  toks,
		Bag:     bag,
		Cached:  cached,
	}
}

func (o Options) withTimer() Options {
	if o.Timings && o.Timer == nil {
		o.Timer = observ.NewTimer()
	}
	return o
}
