package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"axscript/internal/diag"
	"axscript/internal/diagfmt"
	"axscript/internal/driver"
	"axscript/internal/observ"
	"axscript/internal/ui"
)

func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [flags] <dir|file>...",
		Short: "Parse every script under the given paths",
		Long: `Check tokenizes and parses all scripts found under the given files and
directories in parallel and reports their diagnostics. The exit status is 1
when any file has an error.`,
		Args: cobra.MinimumNArgs(1),
		RunE: runCheck,
	}
	cmd.Flags().Int("jobs", 0, "max parallel workers (0=auto)")
	cmd.Flags().String("ui", "off", "progress UI (auto|on|off); bare --ui means on")
	cmd.Flags().Lookup("ui").NoOptDefVal = "on"
	cmd.Flags().Bool("cache", false, "reuse token streams from the on-disk cache")
	cmd.Flags().Bool("clear-cache", false, "empty the token cache before checking (implies --cache)")
	cmd.Flags().StringSlice("ext", nil, "file extensions to collect from directories (default .ax)")
	cmd.Flags().String("format", "pretty", "diagnostics format (pretty|short|json)")
	cmd.Flags().String("fail-on", "error", "lowest severity that makes the exit status 1 (error|warning)")
	return cmd
}

func runCheck(cmd *cobra.Command, args []string) error {
	defer dumpTraceOnPanic()

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	if format != "pretty" && format != "short" && format != "json" {
		return fmt.Errorf("unknown format: %s", format)
	}
	failOnFlag, err := cmd.Flags().GetString("fail-on")
	if err != nil {
		return fmt.Errorf("failed to get fail-on flag: %w", err)
	}
	failOn, ok := diag.ParseSeverity(failOnFlag)
	if !ok || failOn == diag.SevInfo {
		return fmt.Errorf("invalid --fail-on value %q (expected error|warning)", failOnFlag)
	}
	uiFlag, err := cmd.Flags().GetString("ui")
	if err != nil {
		return fmt.Errorf("failed to get ui flag: %w", err)
	}
	useUI, err := wantProgressUI(uiFlag, isTerminal(os.Stderr))
	if err != nil {
		return err
	}
	s, err := resolveSettings(cmd, "")
	if err != nil {
		return err
	}

	opts := s.driverOptions()
	opts.Timer = observ.NewTimer()
	clearCache, _ := cmd.Flags().GetBool("clear-cache")
	if s.Cache || clearCache {
		cache, err := driver.OpenTokenCache("axscript")
		if err != nil {
			return fmt.Errorf("open token cache: %w", err)
		}
		if clearCache {
			if err := cache.DropAll(); err != nil {
				return fmt.Errorf("clear token cache: %w", err)
			}
		}
		opts.Cache = cache
	}

	var result *driver.CheckResult
	if useUI {
		result, err = checkWithUI(cmd.Context(), args, opts)
	} else {
		result, err = driver.CheckPaths(cmd.Context(), args, opts)
	}
	if err != nil {
		return fmt.Errorf("check failed: %w", err)
	}

	all := result.Bag(0)
	bag := visible(all, s)
	switch format {
	case "json":
		err = diagfmt.JSON(cmd.OutOrStdout(), bag, result.FileSet, diagfmt.JSONOpts{
			PathMode:     s.PathMode,
			Max:          s.MaxDiagnostics,
			IncludeNotes: true,
		})
		if err != nil {
			return err
		}
	case "short":
		if out := diag.FormatShortDiagnostics(bag.Items(), result.FileSet, false); out != "" {
			fmt.Fprintln(cmd.OutOrStdout(), out)
		}
	default:
		useColor := s.useColor(os.Stderr)
		printDiagnostics(cmd.ErrOrStderr(), bag, result.FileSet, s, useColor)
		if bag.Len() == 0 {
			fmt.Fprintf(cmd.ErrOrStderr(), "checked %d files, no problems\n", len(result.Files))
		}
	}

	if s.Timings {
		printTimings(cmd.ErrOrStderr(), opts.Timer)
		if opts.Cache != nil {
			hits, misses := opts.Cache.Stats()
			fmt.Fprintf(cmd.ErrOrStderr(), "  token cache: %d hits, %d misses (%s)\n", hits, misses, opts.Cache.Dir())
		}
	}

	if all.Count(failOn) > 0 {
		return errDiagnostics
	}
	return nil
}

// checkWithUI runs the check in the background while the progress view
// renders on stderr.
// wantProgressUI resolves --ui; "auto" (or empty) follows whether stderr,
// where the view draws, is a terminal.
func wantProgressUI(flag string, stderrTTY bool) (bool, error) {
	on, known := map[string]bool{"on": true, "off": false, "auto": stderrTTY, "": stderrTTY}[strings.ToLower(strings.TrimSpace(flag))]
	if !known {
		return false, fmt.Errorf("invalid --ui value %q (expected auto|on|off)", flag)
	}
	return on, nil
}

func checkWithUI(ctx context.Context, paths []string, opts driver.Options) (*driver.CheckResult, error) {
	files, err := driver.CollectFiles(paths, opts.Extensions)
	if err != nil {
		return nil, err
	}
	events := make(chan ui.Event, 64)
	opts.OnPhase = func(ev driver.PhaseEvent) {
		if e, ok := ui.FromPhase(ev); ok {
			events <- e
		}
	}
	opts.OnFile = func(ev driver.FileEvent) {
		events <- ui.FromFile(ev)
	}

	type outcome struct {
		res *driver.CheckResult
		err error
	}
	done := make(chan outcome, 1)
	go func() {
		res, err := driver.CheckPaths(ctx, paths, opts)
		close(events)
		done <- outcome{res, err}
	}()

	uiErr := ui.Run(ctx, os.Stderr, "checking", files, events)
	// the view may quit early; keep draining so workers never block
	go func() {
		for range events {
		}
	}()
	out := <-done
	if out.err == nil && uiErr != nil {
		return out.res, fmt.Errorf("progress ui: %w", uiErr)
	}
	return out.res, out.err
}
