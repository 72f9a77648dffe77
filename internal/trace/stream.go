package trace

import (
	"bufio"
	"errors"
	"io"
	"sync"
	"time"
)

// StreamTracer formats each event as it arrives into a buffered writer.
// Output reaches the underlying writer on Flush or Close.
type StreamTracer struct {
	mu     sync.Mutex
	out    *bufio.Writer
	dst    io.Writer
	level  Level
	format Format
	origin time.Time
}

func NewStreamTracer(w io.Writer, level Level, format Format) *StreamTracer {
	if format == FormatAuto {
		format = FormatText
	}
	return &StreamTracer{
		out:    bufio.NewWriter(w),
		dst:    w,
		level:  level,
		format: format,
		origin: time.Now(),
	}
}

func (t *StreamTracer) Emit(ev *Event) {
	if ev == nil || !t.level.ShouldEmit(ev.Scope) {
		return
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	// seq is stamped under the lock so the file is ordered by it
	ev.Seq = nextSeq()
	// ошибки записи трассировки игнорируются
	_, _ = t.out.Write(FormatEvent(ev, t.format, t.origin))
}

func (t *StreamTracer) Flush() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.out.Flush()
}

// Close flushes and closes the destination when it is an io.Closer.
func (t *StreamTracer) Close() error {
	err := t.Flush()
	if c, ok := t.dst.(io.Closer); ok {
		err = errors.Join(err, c.Close())
	}
	return err
}

func (t *StreamTracer) Level() Level  { return t.level }
func (t *StreamTracer) Enabled() bool { return t.level != LevelOff }
