package driver

import (
	"runtime"

	"axscript/internal/observ"
	"axscript/internal/parser"
)

// DefaultExtensions lists the file suffixes picked up from directories.
var DefaultExtensions = []string{".ax"}

// Options configures the driver entry points. The zero value is usable.
type Options struct {
	// MaxDiagnostics caps each per-file bag; 0 means the diag default.
	MaxDiagnostics int

	MaxDepth      int
	MaxRecoveries int
	MaxTokens     int

	// Jobs bounds CheckPaths concurrency; <= 0 means GOMAXPROCS.
	Jobs int
	// Extensions filters files found while walking directories.
	Extensions []string

	// Cache, when set, serves and stores token streams by content hash.
	Cache *TokenCache
	// Timer collects load/tokenize/parse phase durations.
	Timer *observ.Timer
	// Timings appends an OBS3001 diagnostic to single-file results.
	Timings bool

	// OnPhase and OnFile are called from worker goroutines.
	OnPhase PhaseObserver
	OnFile  func(FileEvent)
}

func (o Options) parserOptions() parser.Options {
	return parser.Options{
		MaxDepth:      o.MaxDepth,
		MaxRecoveries: o.MaxRecoveries,
		MaxTokens:     o.MaxTokens,
	}
}

func (o Options) jobs(n int) int {
	jobs := o.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	return max(min(jobs, n), 1)
}

func (o Options) extensions() []string {
	if len(o.Extensions) == 0 {
		return DefaultExtensions
	}
	return o.Extensions
}

func (o Options) phase(ev PhaseEvent) {
	if o.OnPhase != nil {
		o.OnPhase(ev)
	}
}
