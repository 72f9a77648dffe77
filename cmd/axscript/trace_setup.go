package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"axscript/internal/trace"
)

var (
	traceMu      sync.Mutex
	cleanupFn    func()
	activeTracer trace.Tracer
)

func setCleanup(fn func()) {
	traceMu.Lock()
	cleanupFn = fn
	traceMu.Unlock()
}

// runCleanup stops tracing and profiling once; later calls do nothing.
func runCleanup() {
	traceMu.Lock()
	cleanup := cleanupFn
	cleanupFn = nil
	traceMu.Unlock()
	if cleanup != nil {
		cleanup()
	}
}

// traceConfig builds the tracer configuration from the persistent --trace*
// flags. A bare --trace path implies phase level.
func traceConfig(cmd *cobra.Command) (trace.Config, error) {
	flags := cmd.Root().PersistentFlags()
	var (
		cfg       trace.Config
		level     string
		mode      string
		errs      []error
		getString = func(name string) string {
			v, err := flags.GetString(name)
			errs = append(errs, err)
			return v
		}
	)
	cfg.OutputPath = getString("trace")
	level = getString("trace-level")
	mode = getString("trace-mode")
	size, err := flags.GetInt("trace-ring-size")
	errs = append(errs, err)
	if err := errors.Join(errs...); err != nil {
		return cfg, err
	}
	cfg.RingSize = size

	if cfg.Level, err = trace.ParseLevel(level); err != nil {
		return cfg, fmt.Errorf("invalid trace level: %w", err)
	}
	if cfg.Level == trace.LevelOff && cfg.OutputPath != "" {
		cfg.Level = trace.LevelPhase
	}
	if cfg.Mode, err = trace.ParseMode(mode); err != nil {
		return cfg, fmt.Errorf("invalid trace mode: %w", err)
	}
	return cfg, nil
}

// setupTracing attaches a tracer and a root span for the command to its
// context. The returned func ends the span, dumps a ring tracer and closes.
func setupTracing(cmd *cobra.Command) (func(), error) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cfg, err := traceConfig(cmd)
	if err != nil {
		return nil, err
	}
	if cfg.Level == trace.LevelOff {
		cmd.SetContext(trace.WithTracer(ctx, trace.Nop))
		return func() {}, nil
	}

	tracer, err := trace.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("trace: %w", err)
	}
	span := trace.Begin(tracer, trace.ScopeDriver, cmd.Name(), 0)
	cmd.SetContext(trace.WithSpan(trace.WithTracer(ctx, tracer), span))

	traceMu.Lock()
	activeTracer = tracer
	traceMu.Unlock()

	return func() {
		span.End("")
		if ring, ok := tracer.(*trace.RingTracer); ok {
			dumpRing(cmd, ring)
		}
		for _, step := range []func() error{tracer.Flush, tracer.Close} {
			if err := step(); err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "trace: %v\n", err)
			}
		}
	}, nil
}

// dumpRing writes the retained events to the --trace destination, or to
// stderr when none was given.
func dumpRing(cmd *cobra.Command, ring *trace.RingTracer) {
	if ring == nil {
		return
	}
	path, _ := cmd.Root().PersistentFlags().GetString("trace")
	format, err := trace.ParseFormat(formatForPath(path))
	if err != nil {
		format = trace.FormatText
	}
	if path == "" || path == "-" {
		_ = ring.Dump(cmd.ErrOrStderr(), format)
		return
	}
	// #nosec G304 -- path comes from the --trace flag
	f, err := os.Create(path)
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "trace: %v\n", err)
		return
	}
	defer func() { _ = f.Close() }()
	if err := ring.Dump(f, format); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "trace: dump error: %v\n", err)
	}
}

func formatForPath(path string) string {
	if strings.HasSuffix(path, ".ndjson") || strings.HasSuffix(path, ".jsonl") {
		return "ndjson"
	}
	return "text"
}

// dumpTraceOnPanic prints the ring buffer of a stream+ring tracer to stderr
// before letting a panic continue.
func dumpTraceOnPanic() {
	r := recover()
	if r == nil {
		return
	}
	traceMu.Lock()
	tracer := activeTracer
	traceMu.Unlock()
	if multi, ok := tracer.(*trace.MultiTracer); ok {
		if ring := multi.Ring(); ring != nil {
			fmt.Fprintln(os.Stderr, "trace: last events before panic:")
			_ = ring.Dump(os.Stderr, trace.FormatText)
		}
	}
	panic(r)
}
