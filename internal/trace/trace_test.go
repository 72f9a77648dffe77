package trace

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"sync"
	"testing"
)

func TestParseLevel(t *testing.T) {
	for _, name := range []string{"off", "error", "phase", "detail", "debug"} {
		lvl, err := ParseLevel(strings.ToUpper(name))
		if err != nil {
			t.Fatalf("ParseLevel(%q): %v", name, err)
		}
		if lvl.String() != name {
			t.Errorf("round trip %q -> %q", name, lvl.String())
		}
	}
	if lvl, err := ParseLevel(""); err != nil || lvl != LevelOff {
		t.Fatalf("empty level = %v, %v", lvl, err)
	}
	if _, err := ParseLevel("loud"); err == nil {
		t.Fatalf("expected error for unknown level")
	}
}

func TestParseModeAndFormat(t *testing.T) {
	for _, name := range []string{"stream", "ring", "both"} {
		m, err := ParseMode(name)
		if err != nil || m.String() != name {
			t.Errorf("ParseMode(%q) = %v, %v", name, m, err)
		}
	}
	if _, err := ParseMode("disk"); err == nil {
		t.Errorf("unknown mode accepted")
	}
	if f, err := ParseFormat("jsonl"); err != nil || f != FormatNDJSON {
		t.Errorf("ParseFormat(jsonl) = %v, %v", f, err)
	}
	if _, err := ParseFormat("xml"); err == nil {
		t.Errorf("unknown format accepted")
	}
}

func TestLevelScopes(t *testing.T) {
	cases := []struct {
		level Level
		scope Scope
		want  bool
	}{
		{LevelOff, ScopeDriver, false},
		{LevelError, ScopeDriver, false},
		{LevelPhase, ScopeDriver, true},
		{LevelPhase, ScopePass, true},
		{LevelPhase, ScopeFile, false},
		{LevelDetail, ScopeFile, true},
		{LevelDetail, ScopeDiag, false},
		{LevelDebug, ScopeDiag, true},
		{Level(42), ScopeDriver, false},
	}
	for _, tc := range cases {
		if got := tc.level.ShouldEmit(tc.scope); got != tc.want {
			t.Errorf("%s.ShouldEmit(%s) = %v, want %v", tc.level, tc.scope, got, tc.want)
		}
	}
}

func TestStreamTracerText(t *testing.T) {
	var buf bytes.Buffer
	tr := NewStreamTracer(&buf, LevelPhase, FormatText)

	root := Begin(tr, ScopeDriver, "check", 0)
	pass := Begin(tr, ScopePass, "parse", root.ID()).WithPath("scripts/a.ax")
	pass.WithAttr("files", "3").WithAttr("cached", "1")
	pass.End("ok")
	Begin(tr, ScopeFile, "file", pass.ID()).End("")
	root.End("")

	if buf.Len() != 0 {
		t.Fatalf("output must stay buffered until Flush")
	}
	if err := tr.Flush(); err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 lines (file scope filtered), got %d:\n%s", len(lines), buf.String())
	}
	if !strings.Contains(lines[0], "] → check") {
		t.Errorf("first line = %q", lines[0])
	}
	if !strings.Contains(lines[1], "]   → parse") {
		t.Errorf("child span is not indented: %q", lines[1])
	}
	if !strings.Contains(lines[2], "← parse scripts/a.ax (ok) ") || !strings.HasSuffix(lines[2], " files=3 cached=1") {
		t.Errorf("end line = %q", lines[2])
	}
}

func TestStreamTracerNDJSON(t *testing.T) {
	var buf bytes.Buffer
	tr := NewStreamTracer(&buf, LevelDebug, FormatNDJSON)
	span := Begin(tr, ScopePass, "tokenize", 0).WithPath("a.ax").WithAttr("tokens", "12")
	Point(tr, ScopeDiag, "SYN2101", "warning 1:13", span.ID())
	span.End("")
	if err := tr.Close(); err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 events, got %d", len(lines))
	}
	var point, end jsonEvent
	if err := json.Unmarshal([]byte(lines[1]), &point); err != nil {
		t.Fatalf("invalid NDJSON line %q: %v", lines[1], err)
	}
	if point.Kind != "point" || point.Scope != "diag" || point.ParentID != span.ID() || point.Detail != "warning 1:13" {
		t.Fatalf("unexpected point: %+v", point)
	}
	if err := json.Unmarshal([]byte(lines[2]), &end); err != nil {
		t.Fatal(err)
	}
	if end.Kind != "end" || end.Path != "a.ax" || end.Attrs["tokens"] != "12" || end.Seq <= point.Seq {
		t.Fatalf("unexpected end: %+v", end)
	}
}

func TestDisabledSpansAreSafe(t *testing.T) {
	span := Begin(Nop, ScopeDriver, "x", 7)
	if span.ID() != 7 {
		t.Fatalf("disabled span should pass the parent ID through, got %d", span.ID())
	}
	if d := span.WithPath("p").WithAttr("k", "v").End(""); d != 0 {
		t.Fatalf("disabled span reported a duration")
	}
	var nilSpan *Span
	nilSpan.End("")
	if nilSpan.ID() != 0 {
		t.Fatalf("nil span ID")
	}
	Point(nil, ScopeDiag, "n", "", 0)
}

func TestRingTracerWraps(t *testing.T) {
	ring := NewRingTracer(3, LevelDebug)
	for _, name := range []string{"a", "b", "c", "d", "e"} {
		Point(ring, ScopeDiag, name, "", 0)
	}
	snap := ring.Snapshot()
	if len(snap) != 3 {
		t.Fatalf("expected 3 events, got %d", len(snap))
	}
	var names []string
	for _, ev := range snap {
		names = append(names, ev.Name)
	}
	if got := strings.Join(names, ""); got != "cde" {
		t.Fatalf("snapshot order = %q, want cde", got)
	}

	var buf bytes.Buffer
	if err := ring.Dump(&buf, FormatText); err != nil {
		t.Fatal(err)
	}
	if strings.Count(buf.String(), "\n") != 3 || !strings.Contains(buf.String(), "• e") {
		t.Fatalf("dump:\n%s", buf.String())
	}
}

func TestRingTracerPartial(t *testing.T) {
	ring := NewRingTracer(4, LevelPhase)
	Begin(ring, ScopePass, "load", 0).End("")
	snap := ring.Snapshot()
	if len(snap) != 2 || snap[0].Kind != KindSpanBegin || snap[1].Kind != KindSpanEnd {
		t.Fatalf("snapshot = %+v", snap)
	}
	if snap[0].Seq >= snap[1].Seq {
		t.Fatalf("sequence numbers out of order: %d, %d", snap[0].Seq, snap[1].Seq)
	}
}

func TestNewSelectsTracer(t *testing.T) {
	off, err := New(Config{Level: LevelOff})
	if err != nil || off.Enabled() {
		t.Fatalf("LevelOff must give a disabled tracer: %v", err)
	}

	ring, err := New(Config{Level: LevelPhase, Mode: ModeRing})
	if _, ok := ring.(*RingTracer); err != nil || !ok {
		t.Fatalf("ModeRing gave %T, %v", ring, err)
	}

	var buf bytes.Buffer
	both, err := New(Config{Level: LevelPhase, Mode: ModeBoth, Output: &buf})
	if err != nil {
		t.Fatal(err)
	}
	Begin(both, ScopeDriver, "run", 0).End("")
	multi, ok := both.(*MultiTracer)
	if !ok {
		t.Fatalf("ModeBoth gave %T", both)
	}
	if got := len(multi.Ring().Snapshot()); got != 2 {
		t.Fatalf("ring holds %d events, want 2", got)
	}
	if err := both.Flush(); err != nil {
		t.Fatal(err)
	}
	if strings.Count(buf.String(), "\n") != 2 {
		t.Fatalf("stream output:\n%s", buf.String())
	}
}

func TestConfigFormatFromPath(t *testing.T) {
	cases := map[string]Format{
		"trace.ndjson": FormatNDJSON,
		"trace.jsonl":  FormatNDJSON,
		"trace.txt":    FormatText,
		"":             FormatText,
	}
	for path, want := range cases {
		if got := (Config{OutputPath: path}).format(); got != want {
			t.Errorf("format(%q) = %v, want %v", path, got, want)
		}
	}
	if got := (Config{OutputPath: "x.ndjson", Format: FormatText}).format(); got != FormatText {
		t.Errorf("explicit format must win, got %v", got)
	}
}

func TestContextPropagation(t *testing.T) {
	if FromContext(context.Background()) != Nop {
		t.Fatalf("empty context must yield Nop")
	}
	ring := NewRingTracer(8, LevelPhase)
	ctx := WithTracer(context.Background(), ring)
	if FromContext(ctx) != Tracer(ring) {
		t.Fatalf("tracer lost in context")
	}
	span := Begin(ring, ScopeDriver, "root", 0)
	ctx = WithSpan(ctx, span)
	if SpanFromContext(ctx) != span.ID() {
		t.Fatalf("span ID lost in context")
	}
	if SpanFromContext(context.Background()) != 0 {
		t.Fatalf("empty context must have no parent")
	}
}

func TestConcurrentEmit(t *testing.T) {
	var buf bytes.Buffer
	tr := NewStreamTracer(&buf, LevelDetail, FormatNDJSON)
	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 50 {
				Begin(tr, ScopeFile, "file", 0).End("")
			}
		}()
	}
	wg.Wait()
	if err := tr.Flush(); err != nil {
		t.Fatal(err)
	}

	var last uint64
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 8*50*2 {
		t.Fatalf("expected %d lines, got %d", 8*50*2, len(lines))
	}
	for _, line := range lines {
		var ev jsonEvent
		if err := json.Unmarshal([]byte(line), &ev); err != nil {
			t.Fatalf("interleaved output %q: %v", line, err)
		}
		if ev.Seq <= last {
			t.Fatalf("seq %d after %d", ev.Seq, last)
		}
		last = ev.Seq
	}
}
