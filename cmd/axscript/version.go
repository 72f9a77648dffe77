package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"axscript/internal/version"
)

// buildField is one optional line of `axscript version`.
type buildField struct {
	flag  string
	label string
	value func() string
}

var buildFields = []buildField{
	{"hash", "commit", func() string { return version.GitCommit }},
	{"message", "message", func() string { return version.GitMessage }},
	{"date", "built", func() string { return version.BuildDate }},
}

type versionPayload struct {
	Tool       string `json:"tool"`
	Version    string `json:"version"`
	GitCommit  string `json:"git_commit,omitempty"`
	GitMessage string `json:"git_message,omitempty"`
	BuildDate  string `json:"build_date,omitempty"`
}

func newVersionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show axscript build information",
		Args:  cobra.NoArgs,
		RunE:  runVersion,
	}
	cmd.Flags().Bool("hash", false, "include git commit hash")
	cmd.Flags().Bool("message", false, "include git commit message")
	cmd.Flags().Bool("date", false, "include build timestamp")
	cmd.Flags().Bool("full", false, "show every recorded bit of build metadata")
	cmd.Flags().String("format", "pretty", "output format (pretty|json)")
	return cmd
}

func runVersion(cmd *cobra.Command, _ []string) error {
	format, _ := cmd.Flags().GetString("format")
	full, _ := cmd.Flags().GetBool("full")

	// выбранные поля в порядке buildFields; пустые значения печатаются как unknown
	picked := make(map[string]string)
	for _, f := range buildFields {
		if on, _ := cmd.Flags().GetBool(f.flag); on || full {
			picked[f.flag] = orUnknown(f.value())
		}
	}
	v := strings.TrimSpace(version.Version)
	if v == "" {
		v = "dev"
	}

	out := cmd.OutOrStdout()
	switch strings.ToLower(format) {
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(versionPayload{
			Tool:       "axscript",
			Version:    v,
			GitCommit:  picked["hash"],
			GitMessage: picked["message"],
			BuildDate:  picked["date"],
		})
	case "pretty":
		colorFlag, _ := cmd.Flags().GetString("color")
		useColor := colorFlag == "on" || (colorFlag == "auto" && isTerminal(os.Stdout))
		writeVersionText(out, v, picked, useColor)
		return nil
	}
	return fmt.Errorf("unsupported format %q (must be pretty or json)", format)
}

func writeVersionText(out io.Writer, v string, picked map[string]string, useColor bool) {
	fmt.Fprintf(out, "axscript %s\n", version.Colored(v, useColor))
	for _, f := range buildFields {
		if val, ok := picked[f.flag]; ok {
			fmt.Fprintf(out, "%-8s %s\n", f.label+":", val)
		}
	}
}

func orUnknown(s string) string {
	if s = strings.TrimSpace(s); s == "" {
		return "unknown"
	}
	return s
}
