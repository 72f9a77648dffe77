// Package observ measures how long the pipeline phases take.
package observ

import (
	"fmt"
	"strings"
	"sync"
	"time"
)

// Timer sums durations per named phase, keeping phases in first-seen order.
// It is safe for concurrent use: CheckPaths folds per-file durations into one
// Timer from many goroutines.
type Timer struct {
	mu     sync.Mutex
	order  []string
	phases map[string]*phase
}

type phase struct {
	total time.Duration
	count int
	note  string
}

func NewTimer() *Timer {
	return &Timer{phases: make(map[string]*phase)}
}

func (t *Timer) get(name string) *phase {
	p, ok := t.phases[name]
	if !ok {
		p = &phase{}
		t.phases[name] = p
		t.order = append(t.order, name)
	}
	return p
}

// Add folds one measurement of d into the phase called name.
func (t *Timer) Add(name string, d time.Duration) {
	t.mu.Lock()
	defer t.mu.Unlock()
	p := t.get(name)
	p.total += d
	p.count++
}

// Annotate attaches a short note ("12 files") to a phase.
func (t *Timer) Annotate(name, note string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.get(name).note = note
}

// PhaseReport представляет сжатую информацию о фазе таймера для сериализации.
type PhaseReport struct {
	Name       string  `json:"name"`
	DurationMS float64 `json:"duration_ms"`
	Count      int     `json:"count,omitempty"`
	Note       string  `json:"note,omitempty"`
}

// Report описывает агрегированные данные таймера.
type Report struct {
	TotalMS float64       `json:"total_ms"`
	Phases  []PhaseReport `json:"phases"`
}

// Report snapshots the phases. TotalMS is the sum over phases, which for a
// parallel check exceeds the wall-clock time.
func (t *Timer) Report() Report {
	t.mu.Lock()
	defer t.mu.Unlock()
	var r Report
	var total time.Duration
	for _, name := range t.order {
		p := t.phases[name]
		total += p.total
		r.Phases = append(r.Phases, PhaseReport{
			Name:       name,
			DurationMS: millis(p.total),
			Count:      p.count,
			Note:       p.note,
		})
	}
	r.TotalMS = millis(total)
	return r
}

// Summary renders the report as an aligned text table headed "timings:".
func (t *Timer) Summary() string {
	r := t.Report()
	var b strings.Builder
	b.WriteString("timings:\n")
	row := func(name string, ms float64, extra string) {
		fmt.Fprintf(&b, "  %-20s %9.2f ms%s\n", name, ms, extra)
	}
	for _, p := range r.Phases {
		var extra string
		if p.Count > 1 {
			extra += fmt.Sprintf("  x%d", p.Count)
		}
		if p.Note != "" {
			extra += "  // " + p.Note
		}
		row(p.Name, p.DurationMS, extra)
	}
	row("total", r.TotalMS, "")
	return b.String()
}

func millis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
