package scene

import "time"

// Stopwatch measures seconds since its first reading.
type Stopwatch struct {
	now     func() time.Time
	start   time.Time
	started bool
}

// NewStopwatch returns a stopwatch reading the given clock (time.Now when nil).
func NewStopwatch(now func() time.Time) *Stopwatch {
	if now == nil {
		now = time.Now
	}
	return &Stopwatch{now: now}
}

// Elapsed returns seconds since the first call to Elapsed.
func (w *Stopwatch) Elapsed() float64 {
	t := w.now()
	if !w.started {
		w.start = t
		w.started = true
	}
	return t.Sub(w.start).Seconds()
}
