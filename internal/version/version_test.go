package version

import (
	"strings"
	"testing"
)

func TestVersion_DefaultValues(t *testing.T) {
	if Version == "" {
		t.Error("Version should have a default value")
	}
	if strings.Contains(Version, "\x1b[") {
		t.Errorf("Version must stay plain text, got %q", Version)
	}
}

func TestVersion_CanBeOverridden(t *testing.T) {
	origVersion, origGitCommit, origBuildDate := Version, GitCommit, BuildDate
	defer func() {
		Version, GitCommit, BuildDate = origVersion, origGitCommit, origBuildDate
	}()

	// simulating build-time ldflags
	Version = "1.2.3"
	GitCommit = "abc123def456"
	BuildDate = "2024-01-15T10:30:00Z"

	if Version != "1.2.3" || GitCommit != "abc123def456" || BuildDate != "2024-01-15T10:30:00Z" {
		t.Errorf("overrides lost: %q %q %q", Version, GitCommit, BuildDate)
	}
}

func TestColored(t *testing.T) {
	cases := []struct {
		in      string
		enabled bool
		plain   string
		colored bool
	}{
		{"0.1.0-dev", false, "0.1.0-dev", false},
		{"0.1.0-dev", true, "0.1.0-dev", true},
		{"1.2.3-rc.1+build.123", true, "1.2.3-rc.1+build.123", true},
		{"dev", true, "dev", false},
	}
	for _, tc := range cases {
		got := Colored(tc.in, tc.enabled)
		if strings.Contains(got, "\x1b[") != tc.colored {
			t.Errorf("Colored(%q, %v) = %q", tc.in, tc.enabled, got)
		}
		if stripANSI(got) != tc.plain {
			t.Errorf("Colored(%q) text = %q, want %q", tc.in, stripANSI(got), tc.plain)
		}
	}
}

func stripANSI(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] == 0x1b {
			for i < len(s) && s[i] != 'm' {
				i++
			}
			continue
		}
		b.WriteByte(s[i])
	}
	return b.String()
}
