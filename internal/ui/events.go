package ui

import "axscript/internal/driver"

// Stage is the pipeline step a file is in.
type Stage uint8

const (
	StageQueued Stage = iota
	StageLoad
	StageTokenize
	StageParse
	StageFinished
)

// Status is the per-file state shown in the list.
type Status uint8

const (
	StatusQueued Status = iota
	StatusWorking
	StatusDone
	StatusWarn
	StatusError
)

// Event updates one file of the progress view.
type Event struct {
	Path   string
	Stage  Stage
	Status Status
}

// FromPhase maps a driver phase start to a working event. Phase ends carry
// nothing new for the view and report false.
func FromPhase(ev driver.PhaseEvent) (Event, bool) {
	if ev.Status != driver.PhaseStart {
		return Event{}, false
	}
	var stage Stage
	switch ev.Name {
	case "load":
		stage = StageLoad
	case "tokenize":
		stage = StageTokenize
	case "parse":
		stage = StageParse
	default:
		return Event{}, false
	}
	return Event{Path: ev.Path, Stage: stage, Status: StatusWorking}, true
}

// FromFile maps a finished file to its final status.
func FromFile(ev driver.FileEvent) Event {
	status := StatusDone
	switch {
	case ev.Errors > 0:
		status = StatusError
	case ev.Warnings > 0:
		status = StatusWarn
	}
	return Event{Path: ev.Path, Stage: StageFinished, Status: status}
}
