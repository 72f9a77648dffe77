package driver

import "time"

// PhaseStatus reports whether a phase started or finished.
type PhaseStatus int

const (
	PhaseStart PhaseStatus = iota
	PhaseEnd
)

func (s PhaseStatus) String() string {
	if s == PhaseEnd {
		return "end"
	}
	return "start"
}

// PhaseEvent describes a phase boundary for one file.
// Name is one of "load", "tokenize", "parse".
type PhaseEvent struct {
	Name    string
	Path    string
	Status  PhaseStatus
	Elapsed time.Duration
}

// PhaseObserver receives phase events emitted by Tokenize, Parse and CheckPaths.
type PhaseObserver func(PhaseEvent)

// FileEvent is sent once per file when CheckPaths finishes it.
// Done counts finished files, so events may arrive out of file order.
type FileEvent struct {
	Done     int
	Total    int
	Path     string
	Errors   int
	Warnings int
	Cached   bool
}
