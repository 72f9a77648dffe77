package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"axscript/internal/diagfmt"
	"axscript/internal/driver"
)

const (
	configFileName        = "axscript.toml"
	defaultMaxDiagnostics = 100
)

type fileConfig struct {
	Parse       parseConfig       `toml:"parse"`
	Diagnostics diagnosticsConfig `toml:"diagnostics"`
	Check       checkConfig       `toml:"check"`
}

type parseConfig struct {
	MaxDepth      int `toml:"max_depth"`
	MaxRecoveries int `toml:"max_recoveries"`
	MaxTokens     int `toml:"max_tokens"`
}

type diagnosticsConfig struct {
	Max      int    `toml:"max"`
	Color    string `toml:"color"`
	Warnings bool   `toml:"warnings"`
}

type checkConfig struct {
	Jobs       int      `toml:"jobs"`
	Extensions []string `toml:"extensions"`
	Cache      bool     `toml:"cache"`
}

// loadedConfig remembers which keys the file actually set; only those
// override the defaults.
type loadedConfig struct {
	Path   string
	Values fileConfig
	meta   toml.MetaData
}

func (c *loadedConfig) defined(key ...string) bool {
	return c != nil && c.meta.IsDefined(key...)
}

// settings is the effective configuration of one command run.
type settings struct {
	MaxDepth       int
	MaxRecoveries  int
	MaxTokens      int
	MaxDiagnostics int
	Color          string
	Warnings       bool
	PathMode       diagfmt.PathMode
	Timings        bool

	Jobs       int
	Extensions []string
	Cache      bool
}

func defaultSettings() settings {
	return settings{
		MaxDiagnostics: defaultMaxDiagnostics,
		Color:          "auto",
		Warnings:       true,
		Extensions:     append([]string(nil), driver.DefaultExtensions...),
	}
}

func findConfig(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, configFileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

func loadConfigFile(path string) (*loadedConfig, error) {
	var cfg fileConfig
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return nil, fmt.Errorf("%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	return &loadedConfig{Path: path, Values: cfg, meta: meta}, nil
}

// loadConfig reads explicit when given, otherwise the nearest axscript.toml
// at or above startDir. No file at all is not an error.
func loadConfig(explicit, startDir string) (*loadedConfig, error) {
	if explicit != "" {
		return loadConfigFile(explicit)
	}
	path, ok, err := findConfig(startDir)
	if err != nil || !ok {
		return nil, err
	}
	return loadConfigFile(path)
}

func (c *loadedConfig) apply(s *settings) {
	if c == nil {
		return
	}
	v := c.Values
	if c.defined("parse", "max_depth") {
		s.MaxDepth = v.Parse.MaxDepth
	}
	if c.defined("parse", "max_recoveries") {
		s.MaxRecoveries = v.Parse.MaxRecoveries
	}
	if c.defined("parse", "max_tokens") {
		s.MaxTokens = v.Parse.MaxTokens
	}
	if c.defined("diagnostics", "max") {
		s.MaxDiagnostics = v.Diagnostics.Max
	}
	if c.defined("diagnostics", "color") {
		s.Color = v.Diagnostics.Color
	}
	if c.defined("diagnostics", "warnings") {
		s.Warnings = v.Diagnostics.Warnings
	}
	if c.defined("check", "jobs") {
		s.Jobs = v.Check.Jobs
	}
	if c.defined("check", "extensions") {
		s.Extensions = v.Check.Extensions
	}
	if c.defined("check", "cache") {
		s.Cache = v.Check.Cache
	}
}

// resolveSettings layers defaults, the config file and explicitly set flags,
// in that order.
func resolveSettings(cmd *cobra.Command, startDir string) (settings, error) {
	flags := cmd.Flags()
	s := defaultSettings()

	explicit, err := flags.GetString("config")
	if err != nil {
		return s, fmt.Errorf("failed to get config flag: %w", err)
	}
	cfg, err := loadConfig(explicit, startDir)
	if err != nil {
		return s, err
	}
	cfg.apply(&s)

	intFlags := []struct {
		name string
		dst  *int
	}{
		{"max-depth", &s.MaxDepth},
		{"max-recoveries", &s.MaxRecoveries},
		{"max-tokens", &s.MaxTokens},
		{"max-diagnostics", &s.MaxDiagnostics},
		{"jobs", &s.Jobs},
	}
	for _, f := range intFlags {
		if flags.Lookup(f.name) == nil || !flags.Changed(f.name) {
			continue
		}
		if *f.dst, err = flags.GetInt(f.name); err != nil {
			return s, fmt.Errorf("failed to get %s flag: %w", f.name, err)
		}
	}

	if flags.Changed("color") {
		if s.Color, err = flags.GetString("color"); err != nil {
			return s, fmt.Errorf("failed to get color flag: %w", err)
		}
	}
	if flags.Changed("no-warnings") {
		noWarnings, err := flags.GetBool("no-warnings")
		if err != nil {
			return s, fmt.Errorf("failed to get no-warnings flag: %w", err)
		}
		s.Warnings = !noWarnings
	}
	if flags.Lookup("cache") != nil && flags.Changed("cache") {
		if s.Cache, err = flags.GetBool("cache"); err != nil {
			return s, fmt.Errorf("failed to get cache flag: %w", err)
		}
	}
	if flags.Lookup("ext") != nil && flags.Changed("ext") {
		if s.Extensions, err = flags.GetStringSlice("ext"); err != nil {
			return s, fmt.Errorf("failed to get ext flag: %w", err)
		}
	}
	if s.Timings, err = flags.GetBool("timings"); err != nil {
		return s, fmt.Errorf("failed to get timings flag: %w", err)
	}

	pathMode, err := flags.GetString("path-mode")
	if err != nil {
		return s, fmt.Errorf("failed to get path-mode flag: %w", err)
	}
	var ok bool
	if s.PathMode, ok = diagfmt.ParsePathMode(pathMode); !ok {
		return s, fmt.Errorf("invalid --path-mode value %q (expected auto|absolute|relative|basename)", pathMode)
	}

	return s, s.validate()
}

func (s settings) validate() error {
	switch s.Color {
	case "auto", "on", "off":
	default:
		return fmt.Errorf("invalid color mode %q (expected auto|on|off)", s.Color)
	}
	if s.MaxDepth < 0 {
		return fmt.Errorf("max depth must not be negative, got %d", s.MaxDepth)
	}
	if s.MaxTokens < 0 {
		return fmt.Errorf("max tokens must not be negative, got %d", s.MaxTokens)
	}
	for _, ext := range s.Extensions {
		if !strings.HasPrefix(ext, ".") {
			return fmt.Errorf("extension %q must start with a dot", ext)
		}
	}
	return nil
}

func (s settings) driverOptions() driver.Options {
	return driver.Options{
		MaxDiagnostics: s.MaxDiagnostics,
		MaxDepth:       s.MaxDepth,
		MaxRecoveries:  s.MaxRecoveries,
		MaxTokens:      s.MaxTokens,
		Jobs:           s.Jobs,
		Extensions:     s.Extensions,
		Timings:        s.Timings,
	}
}

// useColor resolves "auto" against f and NO_COLOR.
func (s settings) useColor(f *os.File) bool {
	switch s.Color {
	case "on":
		return true
	case "off":
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return isTerminal(f)
}
