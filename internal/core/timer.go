package core

import "time"

const (
	// DefaultInterval is the delay between generations when none is given.
	DefaultInterval = 100 * time.Millisecond
	// MinInterval is the shortest delay the scheduler accepts.
	MinInterval = 10 * time.Millisecond
)

// FixedStep gates simulation updates so they happen once per interval,
// independent of how often the host loop polls it.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
}

// NewFixedStep constructs a FixedStep controller firing every interval. The
// first poll always fires so the caller sees an immediate first step.
func NewFixedStep(interval time.Duration) *FixedStep {
	fs := &FixedStep{}
	fs.SetInterval(interval)
	fs.accumulator = fs.step
	return fs
}

// SetInterval changes the delay between steps. It is safe to call from the
// main loop; values below MinInterval are clamped.
func (f *FixedStep) SetInterval(d time.Duration) {
	if d <= 0 {
		d = DefaultInterval
	}
	if d < MinInterval {
		d = MinInterval
	}
	f.step = d
	if f.accumulator > f.step {
		f.accumulator = f.step
	}
}

// Interval reports the current delay between steps.
func (f *FixedStep) Interval() time.Duration { return f.step }

// ShouldStep reports whether the simulation should advance by one tick at
// time now. At most one step is granted per call; a stalled host loop does
// not produce a burst of catch-up steps.
func (f *FixedStep) ShouldStep(now time.Time) bool {
	if f.last.IsZero() {
		f.last = now
	}
	delta := now.Sub(f.last)
	f.last = now
	if delta > 0 {
		f.accumulator += delta
	}
	if f.accumulator >= f.step {
		f.accumulator -= f.step
		if f.accumulator >= f.step {
			f.accumulator = 0
		}
		return true
	}
	return false
}
