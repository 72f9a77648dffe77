package trace

import "errors"

// MultiTracer fans events out to several tracers.
type MultiTracer struct {
	tracers []Tracer
	level   Level
}

func NewMultiTracer(level Level, tracers ...Tracer) *MultiTracer {
	return &MultiTracer{tracers: tracers, level: level}
}

// Emit hands each child its own copy; children stamp Seq themselves.
func (t *MultiTracer) Emit(ev *Event) {
	for _, child := range t.tracers {
		cp := *ev
		child.Emit(&cp)
	}
}

func (t *MultiTracer) Flush() error {
	return t.each(Tracer.Flush)
}

func (t *MultiTracer) Close() error {
	return t.each(Tracer.Close)
}

func (t *MultiTracer) each(fn func(Tracer) error) error {
	errs := make([]error, 0, len(t.tracers))
	for _, child := range t.tracers {
		errs = append(errs, fn(child))
	}
	return errors.Join(errs...)
}

func (t *MultiTracer) Level() Level  { return t.level }
func (t *MultiTracer) Enabled() bool { return t.level != LevelOff }

// Ring returns the first RingTracer child, or nil.
func (t *MultiTracer) Ring() *RingTracer {
	for _, child := range t.tracers {
		if r, ok := child.(*RingTracer); ok {
			return r
		}
	}
	return nil
}
