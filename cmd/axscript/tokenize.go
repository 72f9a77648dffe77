package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"axscript/internal/diagfmt"
	"axscript/internal/driver"
)

func newTokenizeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tokenize [flags] file.ax",
		Short: "Tokenize an AXScript file",
		Long:  `Tokenize prints the token stream of a script ("-" reads stdin)`,
		Args:  cobra.ExactArgs(1),
		RunE:  runTokenize,
	}
	cmd.Flags().String("format", "pretty", "output format (pretty|json)")
	return cmd
}

func runTokenize(cmd *cobra.Command, args []string) error {
	defer dumpTraceOnPanic()

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	if format != "pretty" && format != "json" {
		return fmt.Errorf("unknown format: %s", format)
	}
	s, err := resolveSettings(cmd, "")
	if err != nil {
		return err
	}

	var result *driver.TokenizeResult
	if args[0] == "-" {
		src, err := readStdin(cmd.InOrStdin())
		if err != nil {
			return err
		}
		result = driver.TokenizeSource(cmd.Context(), stdinName, src, s.driverOptions())
	} else {
		result, err = driver.Tokenize(cmd.Context(), args[0], s.driverOptions())
		if err != nil {
			return fmt.Errorf("tokenization failed: %w", err)
		}
	}

	printDiagnostics(cmd.ErrOrStderr(), result.Bag, result.FileSet, s, s.useColor(os.Stderr))
	if result.Tokens == nil {
		return errDiagnostics
	}

	out := cmd.OutOrStdout()
	if format == "json" {
		return diagfmt.FormatTokensJSON(out, result.Tokens)
	}
	return diagfmt.FormatTokensPretty(out, result.Tokens)
}
