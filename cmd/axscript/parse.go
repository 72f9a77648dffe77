package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"axscript/internal/diagfmt"
	"axscript/internal/driver"
)

func newParseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse [flags] file.ax",
		Short: "Parse an AXScript file and print its syntax tree",
		Long: `Parse builds the syntax tree of a script ("-" reads stdin).
Recovered errors are reported as warnings and the tree is still printed.`,
		Args: cobra.ExactArgs(1),
		RunE: runParse,
	}
	cmd.Flags().String("format", "tree", "output format (tree|json)")
	return cmd
}

func runParse(cmd *cobra.Command, args []string) error {
	defer dumpTraceOnPanic()

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	if format != "tree" && format != "json" {
		return fmt.Errorf("unknown format: %s", format)
	}
	s, err := resolveSettings(cmd, "")
	if err != nil {
		return err
	}

	var result *driver.ParseResult
	if args[0] == "-" {
		src, err := readStdin(cmd.InOrStdin())
		if err != nil {
			return err
		}
		result = driver.ParseSource(cmd.Context(), stdinName, src, s.driverOptions())
	} else {
		result, err = driver.Parse(cmd.Context(), args[0], s.driverOptions())
		if err != nil {
			return fmt.Errorf("parse failed: %w", err)
		}
	}

	printDiagnostics(cmd.ErrOrStderr(), result.Bag, result.FileSet, s, s.useColor(os.Stderr))
	if result.Program == nil {
		return errDiagnostics
	}

	out := cmd.OutOrStdout()
	if format == "json" {
		return diagfmt.FormatASTJSON(out, result.Program)
	}
	return diagfmt.FormatASTPretty(out, result.Program)
}
