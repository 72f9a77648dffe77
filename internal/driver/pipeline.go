package driver

import (
	"context"
	"fmt"
	"time"

	"axscript/internal/ast"
	"axscript/internal/diag"
	"axscript/internal/lexer"
	"axscript/internal/parser"
	"axscript/internal/source"
	"axscript/internal/token"
	"axscript/internal/trace"
)

// runPhase wraps fn with a trace span, the phase observer and the timer.
// fn returns the detail recorded on the span end event.
func (o Options) runPhase(ctx context.Context, name, path string, fn func() string) {
	span := trace.Begin(trace.FromContext(ctx), trace.ScopePass, name, trace.SpanFromContext(ctx)).
		WithPath(path)
	o.phase(PhaseEvent{Name: name, Path: path, Status: PhaseStart})

	started := time.Now()
	detail := fn()
	elapsed := time.Since(started)

	span.End(detail)
	if o.Timer != nil {
		o.Timer.Add(name, elapsed)
	}
	o.phase(PhaseEvent{Name: name, Path: path, Status: PhaseEnd, Elapsed: elapsed})
}

// tracingReporter emits a ScopeDiag point for every diagnostic it forwards.
type tracingReporter struct {
	next   diag.Reporter
	tracer trace.Tracer
	parent uint64
}

// newReporter drops repeated diagnostics before they are traced or stored.
func newReporter(ctx context.Context, bag *diag.Bag) diag.Reporter {
	return diag.NewDedupReporter(tracingReporter{
		next:   diag.BagReporter{Bag: bag},
		tracer: trace.FromContext(ctx),
		parent: trace.SpanFromContext(ctx),
	})
}

func (r tracingReporter) Report(code diag.Code, sev diag.Severity, primary source.Span, msg string, notes []diag.Note) {
	if r.tracer.Enabled() {
		detail := fmt.Sprintf("%s %d:%d %s", sev.Label(), primary.Line, primary.Col, msg)
		trace.Point(r.tracer, trace.ScopeDiag, code.ID(), detail, r.parent)
	}
	r.next.Report(code, sev, primary, msg, notes)
}

func report(r diag.Reporter, d diag.Diagnostic) {
	r.Report(d.Code, d.Severity, d.Primary, d.Message, d.Notes)
}

// reportError turns a fatal core error into an error diagnostic.
func reportError(r diag.Reporter, file source.FileID, code diag.Code, err error) {
	d, ok := diag.FromError(file, err)
	if !ok {
		d = diag.NewError(code, source.NewSpan(file, 0, 0, 0), err.Error())
	}
	report(r, d)
}

func loadFile(ctx context.Context, fs *source.FileSet, path string, opts Options) (*source.File, error) {
	var (
		file *source.File
		err  error
	)
	opts.runPhase(ctx, "load", path, func() string {
		var id source.FileID
		id, err = fs.Load(path)
		if err != nil {
			return "failed"
		}
		file = fs.Get(id)
		return fmt.Sprintf("%d bytes", len(file.Content))
	})
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return file, nil
}

// tokenizeFile returns nil tokens after a lexical error, which is reported to r.
// Cache failures are warnings: the file is tokenized again instead.
func tokenizeFile(ctx context.Context, file *source.File, opts Options, r diag.Reporter) (toks []token.Token, cached bool) {
	anchor := source.NewSpan(file.ID, 0, 0, 0)
	opts.runPhase(ctx, "tokenize", file.Path, func() string {
		if opts.Cache != nil {
			hit, ok, err := opts.Cache.Get(file.Hash)
			switch {
			case err != nil:
				report(r, diag.NewWarning(diag.IOCacheError, anchor, fmt.Sprintf("token cache read: %v", err)))
			case ok && (opts.MaxTokens <= 0 || len(hit)-1 <= opts.MaxTokens):
				toks, cached = hit, true
				return fmt.Sprintf("%d tokens (cached)", len(toks))
			}
		}

		var err error
		toks, err = lexer.New(file.Text(), lexer.Options{MaxTokens: opts.MaxTokens}).Tokenize()
		if err != nil {
			reportError(r, file.ID, diag.LexUnknownChar, err)
			toks = nil
			return "lex error"
		}
		if opts.Cache != nil {
			if err := opts.Cache.Put(file.Hash, toks); err != nil {
				report(r, diag.NewWarning(diag.IOCacheError, anchor, fmt.Sprintf("token cache write: %v", err)))
			}
		}
		return fmt.Sprintf("%d tokens", len(toks))
	})
	return toks, cached
}

// parseFile returns nil after a fatal parse error. Recovered errors reach r as warnings.
func parseFile(ctx context.Context, file *source.File, toks []token.Token, opts Options, r diag.Reporter) *ast.Program {
	var prog *ast.Program
	opts.runPhase(ctx, "parse", file.Path, func() string {
		popts := opts.parserOptions()
		popts.File = file.ID
		popts.Reporter = r

		var err error
		prog, err = parser.ParseTokens(toks, popts)
		if err != nil {
			reportError(r, file.ID, diag.SynUnexpectedToken, err)
			return "syntax error"
		}
		return fmt.Sprintf("%d statements", len(prog.Stmts))
	})
	return prog
}
