package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"axscript/internal/version"
)

// errDiagnostics is returned when a command printed error diagnostics; the
// process exits with status 1 without printing anything else.
var errDiagnostics = errors.New("errors reported")

// newRootCmd builds the command tree. Tests build a fresh tree per case.
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "axscript",
		Short:         "AXScript tokenizer and parser",
		Long:          `axscript tokenizes, parses and checks AXScript (.ax) scripts`,
		Version:       version.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			stopProfiling, err := setupProfiling(cmd)
			if err != nil {
				return err
			}
			stopTracing, err := setupTracing(cmd)
			if err != nil {
				stopProfiling()
				return err
			}
			setCleanup(func() {
				stopTracing()
				stopProfiling()
			})
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			runCleanup()
		},
	}

	// Глобальные флаги
	pf := rootCmd.PersistentFlags()
	pf.String("color", "auto", "colorize output (auto|on|off)")
	pf.Int("max-diagnostics", defaultMaxDiagnostics, "maximum number of diagnostics per file")
	pf.Bool("no-warnings", false, "hide recovered-error warnings")
	pf.String("path-mode", "auto", "how file paths are printed (auto|absolute|relative|basename)")
	pf.Int("max-depth", 0, "maximum statement/expression nesting (0 = parser default)")
	pf.Int("max-recoveries", 0, "recovered errors per file before giving up (0 = default, <0 = never recover)")
	pf.Int("max-tokens", 0, "maximum tokens per file (0 = unlimited)")
	pf.Bool("timings", false, "show timing information")
	pf.String("config", "", "path to axscript.toml (default: search upward from the working directory)")
	pf.String("trace", "", "trace output file (\"-\" for stderr, .ndjson/.jsonl for NDJSON)")
	pf.String("trace-level", "off", "trace level (off|error|phase|detail|debug)")
	pf.String("trace-mode", "stream", "trace storage (stream|ring|both)")
	pf.Int("trace-ring-size", 4096, "events kept in ring mode")
	pf.String("cpu-profile", "", "write CPU profile to file")
	pf.String("mem-profile", "", "write heap profile to file on exit")
	pf.String("runtime-trace", "", "write Go runtime trace to file")

	rootCmd.AddCommand(newTokenizeCmd())
	rootCmd.AddCommand(newParseCmd())
	rootCmd.AddCommand(newCheckCmd())
	rootCmd.AddCommand(newVersionCmd())
	return rootCmd
}

// main builds the command tree and executes it. Any returned error exits with status 1.
func main() {
	rootCmd := newRootCmd()
	err := rootCmd.Execute()
	runCleanup()
	if err == nil {
		return
	}
	if !errors.Is(err, errDiagnostics) {
		fmt.Fprintf(os.Stderr, "axscript: %v\n", err)
	}
	os.Exit(1)
}

// isTerminal проверяет, является ли файл терминалом
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
