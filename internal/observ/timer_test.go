package observ

import (
	"strings"
	"sync"
	"testing"
	"time"
)

func TestTimerPhases(t *testing.T) {
	tm := NewTimer()
	tm.Annotate("load", "2 files")
	tm.Add("parse", 3*time.Millisecond)
	tm.Add("parse", 2*time.Millisecond)

	report := tm.Report()
	if len(report.Phases) != 2 {
		t.Fatalf("expected 2 phases, got %+v", report.Phases)
	}
	parse := report.Phases[1]
	if parse.Name != "parse" || parse.DurationMS != 5 || parse.Count != 2 {
		t.Fatalf("parse phase = %+v", parse)
	}
	if load := report.Phases[0]; load.Name != "load" || load.Count != 0 || load.Note != "2 files" {
		t.Fatalf("load phase = %+v", load)
	}
	if report.TotalMS != 5 {
		t.Fatalf("total = %v", report.TotalMS)
	}

	summary := tm.Summary()
	for _, want := range []string{"timings:", "load", "// 2 files", "parse", "x2", "total"} {
		if !strings.Contains(summary, want) {
			t.Errorf("summary misses %q:\n%s", want, summary)
		}
	}
}

func TestTimerEmptyReport(t *testing.T) {
	if r := NewTimer().Report(); r.TotalMS != 0 || len(r.Phases) != 0 {
		t.Fatalf("empty timer report = %+v", r)
	}
}

func TestTimerConcurrentAdd(t *testing.T) {
	tm := NewTimer()
	var wg sync.WaitGroup
	for range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 100 {
				tm.Add("tokenize", time.Microsecond)
			}
		}()
	}
	wg.Wait()
	if got := tm.Report().Phases[0].Count; got != 1000 {
		t.Fatalf("count = %d, want 1000", got)
	}
}
