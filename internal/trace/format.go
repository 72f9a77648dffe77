package trace

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Format is the encoding of written events.
type Format uint8

const (
	FormatAuto Format = iota
	FormatText
	FormatNDJSON
)

// ParseFormat accepts auto, text, ndjson or jsonl.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return FormatAuto, nil
	case "text":
		return FormatText, nil
	case "ndjson", "jsonl":
		return FormatNDJSON, nil
	}
	return FormatAuto, fmt.Errorf("invalid trace format: %q (expected: auto|text|ndjson)", s)
}

// FormatEvent encodes ev as one line. origin anchors the relative time
// column of the text format.
func FormatEvent(ev *Event, format Format, origin time.Time) []byte {
	if format == FormatNDJSON {
		return encodeJSON(ev)
	}
	return encodeText(ev, origin)
}

type jsonEvent struct {
	Time      string            `json:"time"`
	Seq       uint64            `json:"seq"`
	Kind      string            `json:"kind"`
	Scope     string            `json:"scope"`
	SpanID    uint64            `json:"span_id,omitempty"`
	ParentID  uint64            `json:"parent_id,omitempty"`
	Name      string            `json:"name"`
	Path      string            `json:"path,omitempty"`
	Detail    string            `json:"detail,omitempty"`
	ElapsedUS int64             `json:"elapsed_us,omitempty"`
	Attrs     map[string]string `json:"attrs,omitempty"`
}

func encodeJSON(ev *Event) []byte {
	rec := jsonEvent{
		Time:      ev.Time.UTC().Format(time.RFC3339Nano),
		Seq:       ev.Seq,
		Kind:      ev.Kind.String(),
		Scope:     ev.Scope.String(),
		SpanID:    ev.SpanID,
		ParentID:  ev.ParentID,
		Name:      ev.Name,
		Path:      ev.Path,
		Detail:    ev.Detail,
		ElapsedUS: ev.Elapsed.Microseconds(),
	}
	if len(ev.Attrs) > 0 {
		rec.Attrs = make(map[string]string, len(ev.Attrs))
		for _, a := range ev.Attrs {
			rec.Attrs[a.Key] = a.Value
		}
	}
	// string fields only, Marshal cannot fail
	data, _ := json.Marshal(rec)
	return append(data, '\n')
}

var textMarks = [...]string{KindSpanBegin: "→", KindSpanEnd: "←", KindPoint: "•"}

// encodeText renders
//
//	[   1.250ms]   ← parse scripts/a.ax (3 stmts) 412µs cached=1
func encodeText(ev *Event, origin time.Time) []byte {
	var since time.Duration
	if !origin.IsZero() && !ev.Time.IsZero() {
		since = ev.Time.Sub(origin)
	}
	mark := "?"
	if int(ev.Kind) < len(textMarks) && textMarks[ev.Kind] != "" {
		mark = textMarks[ev.Kind]
	}

	var b strings.Builder
	fmt.Fprintf(&b, "[%9.3fms] ", float64(since.Microseconds())/1000)
	if ev.ParentID != 0 {
		b.WriteString("  ")
	}
	b.WriteString(mark)
	b.WriteByte(' ')
	b.WriteString(ev.Name)
	if ev.Path != "" {
		b.WriteByte(' ')
		b.WriteString(ev.Path)
	}
	if ev.Detail != "" {
		fmt.Fprintf(&b, " (%s)", ev.Detail)
	}
	if ev.Kind == KindSpanEnd {
		b.WriteByte(' ')
		b.WriteString(ev.Elapsed.Round(time.Microsecond).String())
	}
	for _, a := range ev.Attrs {
		fmt.Fprintf(&b, " %s=%s", a.Key, a.Value)
	}
	b.WriteByte('\n')
	return []byte(b.String())
}
