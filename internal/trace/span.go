package trace

import (
	"sync/atomic"
	"time"
)

// ids hands out sequence numbers and span IDs shared by every tracer in the
// process, so events from a MultiTracer's children line up.
var ids struct {
	seq  atomic.Uint64
	span atomic.Uint64
}

func nextSeq() uint64 { return ids.seq.Add(1) }

// Span is an open operation. The zero-cost disabled span returned when the
// tracer filters the scope accepts every call and records nothing.
type Span struct {
	tracer  Tracer
	id      uint64
	parent  uint64
	scope   Scope
	name    string
	path    string
	started time.Time
	attrs   []Attr
}

func (s *Span) live() bool {
	return s != nil && s.id != 0
}

// Begin opens a span under parent (0 for a root) and emits its begin event.
func Begin(t Tracer, scope Scope, name string, parent uint64) *Span {
	if !wants(t, scope) {
		return &Span{parent: parent}
	}
	s := &Span{
		tracer:  t,
		id:      ids.span.Add(1),
		parent:  parent,
		scope:   scope,
		name:    name,
		started: time.Now(),
	}
	t.Emit(s.event(KindSpanBegin, s.started))
	return s
}

// WithPath names the script the span works on; it appears on the end event.
func (s *Span) WithPath(path string) *Span {
	if s.live() {
		s.path = path
	}
	return s
}

// WithAttr annotates the end event.
func (s *Span) WithAttr(key, value string) *Span {
	if s.live() {
		s.attrs = append(s.attrs, Attr{Key: key, Value: value})
	}
	return s
}

// End emits the end event and returns how long the span was open.
func (s *Span) End(detail string) time.Duration {
	if !s.live() {
		return 0
	}
	now := time.Now()
	ev := s.event(KindSpanEnd, now)
	ev.Detail = detail
	ev.Elapsed = now.Sub(s.started)
	ev.Attrs = s.attrs
	s.tracer.Emit(ev)
	return ev.Elapsed
}

// ID is the span's own ID. A disabled span reports its parent so that
// children attach to the nearest recorded ancestor.
func (s *Span) ID() uint64 {
	switch {
	case s == nil:
		return 0
	case s.id == 0:
		return s.parent
	}
	return s.id
}

func (s *Span) event(kind Kind, at time.Time) *Event {
	return &Event{
		Time:     at,
		Kind:     kind,
		Scope:    s.scope,
		SpanID:   s.id,
		ParentID: s.parent,
		Name:     s.name,
		Path:     s.path,
	}
}

// Point emits an instant event under parent.
func Point(t Tracer, scope Scope, name, detail string, parent uint64) {
	if !wants(t, scope) {
		return
	}
	t.Emit(&Event{
		Time:     time.Now(),
		Kind:     KindPoint,
		Scope:    scope,
		ParentID: parent,
		Name:     name,
		Detail:   detail,
	})
}

func wants(t Tracer, scope Scope) bool {
	return t != nil && t.Enabled() && t.Level().ShouldEmit(scope)
}
