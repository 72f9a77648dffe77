package trace

import "time"

// Kind tells a span boundary from an instant event.
type Kind uint8

const (
	KindSpanBegin Kind = iota + 1
	KindSpanEnd
	KindPoint
)

var kindNames = [...]string{
	KindSpanBegin: "begin",
	KindSpanEnd:   "end",
	KindPoint:     "point",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return "unknown"
}

// Scope is the granularity of an event; smaller values are coarser.
type Scope uint8

const (
	ScopeDriver Scope = iota + 1 // one CLI command
	ScopePass                    // load, tokenize, parse, check
	ScopeFile                    // one script inside check
	ScopeDiag                    // a single reported diagnostic
)

var scopeNames = [...]string{
	ScopeDriver: "driver",
	ScopePass:   "pass",
	ScopeFile:   "file",
	ScopeDiag:   "diag",
}

func (s Scope) String() string {
	if int(s) < len(scopeNames) && scopeNames[s] != "" {
		return scopeNames[s]
	}
	return "unknown"
}

// Attr is one key/value annotation. Attributes keep the order they were added in.
type Attr struct {
	Key   string
	Value string
}

// Event is a single record produced by Begin, End or Point.
type Event struct {
	Time     time.Time
	Seq      uint64 // stamped by the receiving tracer
	Kind     Kind
	Scope    Scope
	SpanID   uint64
	ParentID uint64 // 0 for a root span
	Name     string // "parse", "check", a diagnostic code
	Path     string // script the event is about, if any
	Detail   string
	Elapsed  time.Duration // KindSpanEnd only
	Attrs    []Attr
}
