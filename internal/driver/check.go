package driver

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"axscript/internal/ast"
	"axscript/internal/diag"
	"axscript/internal/source"
	"axscript/internal/trace"
)

// FileResult is the outcome of checking one file inside CheckPaths.
type FileResult struct {
	Path    string
	FileID  source.FileID
	Program *ast.Program
	Bag     *diag.Bag
	Cached  bool
}

// CheckResult keeps per-file results in the order of Files.
type CheckResult struct {
	FileSet *source.FileSet
	Files   []FileResult
}

// Bag merges every per-file bag into one sorted bag capped at max.
func (r *CheckResult) Bag(max int) *diag.Bag {
	out := diag.NewBag(max)
	if r == nil {
		return out
	}
	for _, f := range r.Files {
		for _, d := range f.Bag.Items() {
			if !out.Add(d) {
				break
			}
		}
	}
	out.Sort()
	return out
}

// HasErrors reports whether any file produced an error diagnostic.
func (r *CheckResult) HasErrors() bool {
	if r == nil {
		return false
	}
	for _, f := range r.Files {
		if f.Bag.HasErrors() {
			return true
		}
	}
	return false
}

// CollectFiles expands directories into the files whose extension is in
// exts (DefaultExtensions when empty). Explicit file arguments are kept
// whatever their extension, and missing ones are kept too so that loading
// reports them. The result is sorted and free of duplicates.
func CollectFiles(paths, exts []string) ([]string, error) {
	if len(exts) == 0 {
		exts = DefaultExtensions
	}
	seen := make(map[string]struct{})
	var files []string
	add := func(p string) {
		p = filepath.Clean(p)
		if _, dup := seen[p]; dup {
			return
		}
		seen[p] = struct{}{}
		files = append(files, p)
	}

	for _, root := range paths {
		info, err := os.Stat(root)
		if err != nil || !info.IsDir() {
			add(root)
			continue
		}
		err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.IsDir() && hasExtension(path, exts) {
				add(path)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("walk %s: %w", root, err)
		}
	}

	// детерминированный порядок
	sort.Strings(files)
	return files, nil
}

func hasExtension(path string, exts []string) bool {
	for _, ext := range exts {
		if strings.HasSuffix(path, ext) {
			return true
		}
	}
	return false
}

// CheckDir checks every script under dir.
func CheckDir(ctx context.Context, dir string, opts Options) (*CheckResult, error) {
	return CheckPaths(ctx, []string{dir}, opts)
}

// CheckPaths tokenizes and parses every collected file, at most opts.Jobs
// at a time. Files are loaded up front so FileIDs follow the sorted order.
// A load failure becomes an IO4001 diagnostic for that file; only context
// cancellation and directory walk errors are returned.
func CheckPaths(ctx context.Context, paths []string, opts Options) (*CheckResult, error) {
	files, err := CollectFiles(paths, opts.extensions())
	if err != nil {
		return nil, err
	}

	base := ""
	if len(paths) == 1 {
		if info, statErr := os.Stat(paths[0]); statErr == nil && info.IsDir() {
			base = paths[0]
		}
	}
	fileSet := source.NewFileSetWithBase(base)
	result := &CheckResult{FileSet: fileSet, Files: make([]FileResult, len(files))}
	if len(files) == 0 {
		return result, nil
	}

	tracer := trace.FromContext(ctx)
	span := trace.Begin(tracer, trace.ScopePass, "check", trace.SpanFromContext(ctx)).
		WithAttr("files", fmt.Sprint(len(files)))
	ctx = trace.WithSpan(ctx, span)

	loaded := make([]*source.File, len(files))
	for i, path := range files {
		res := &result.Files[i]
		res.Path = path
		res.Bag = diag.NewBag(opts.MaxDiagnostics)

		file, loadErr := loadFile(ctx, fileSet, path, opts)
		if loadErr != nil {
			// пустой файл-заглушка, чтобы диагностика указывала на путь
			res.FileID = fileSet.Add(path, nil, source.FileVirtual)
			report(newReporter(ctx, res.Bag), diag.NewError(diag.IOLoadFileError,
				source.NewSpan(res.FileID, 0, 0, 0), loadErr.Error()))
			continue
		}
		res.FileID = file.ID
		loaded[i] = file
	}

	var done atomic.Int64
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.jobs(len(files)))

	for i := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			// индекс i уникален для горутины, мьютекс не нужен
			res := &result.Files[i]
			if file := loaded[i]; file != nil {
				checkOne(gctx, file, opts, res)
			}
			if opts.OnFile != nil {
				opts.OnFile(FileEvent{
					Done:     int(done.Add(1)),
					Total:    len(files),
					Path:     res.Path,
					Errors:   res.Bag.Count(diag.SevError),
					Warnings: res.Bag.Count(diag.SevWarning) - res.Bag.Count(diag.SevError),
					Cached:   res.Cached,
				})
			}
			return nil
		})
	}

	err = g.Wait()
	span.End(fmt.Sprintf("%d files", done.Load()))
	if opts.Timer != nil && opts.Cache != nil {
		cached := 0
		for _, f := range result.Files {
			if f.Cached {
				cached++
			}
		}
		opts.Timer.Annotate("tokenize", fmt.Sprintf("%d from cache", cached))
	}
	if err != nil {
		return result, err
	}
	return result, nil
}

func checkOne(ctx context.Context, file *source.File, opts Options, res *FileResult) {
	span := trace.Begin(trace.FromContext(ctx), trace.ScopeFile, "file", trace.SpanFromContext(ctx)).
		WithPath(file.Path)
	ctx = trace.WithSpan(ctx, span)
	rep := newReporter(ctx, res.Bag)

	toks, cached := tokenizeFile(ctx, file, opts, rep)
	res.Cached = cached
	if toks != nil {
		res.Program = parseFile(ctx, file, toks, opts, rep)
	}
	res.Bag.Sort()
	span.End(fmt.Sprintf("%d diagnostics", res.Bag.Len()))
}
