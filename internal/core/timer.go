package core

import "time"

// FixedStep reports when a periodic action (automation, random selection,
// undulation) is due, given the times at which it is polled.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
	paused      bool
}

// NewFixedStep constructs a FixedStep firing every interval. Non-positive
// intervals fall back to one second.
func NewFixedStep(interval time.Duration) *FixedStep {
	fs := &FixedStep{}
	fs.SetInterval(interval)
	return fs
}

// NewFixedStepSeconds is NewFixedStep for an interval given in seconds.
func NewFixedStepSeconds(seconds float64) *FixedStep {
	return NewFixedStep(time.Duration(seconds * float64(time.Second)))
}

// SetInterval changes the step interval and restarts accumulation.
func (f *FixedStep) SetInterval(interval time.Duration) {
	if interval <= 0 {
		interval = time.Second
	}
	f.step = interval
	f.accumulator = 0
	f.last = time.Time{}
}

// Interval returns the current step interval.
func (f *FixedStep) Interval() time.Duration { return f.step }

// Pause stops steps from firing until Resume; time spent paused is dropped.
func (f *FixedStep) Pause() { f.paused = true }

// Resume undoes Pause.
func (f *FixedStep) Resume() {
	f.paused = false
	f.last = time.Time{}
}

// Paused reports whether the stepper is paused.
func (f *FixedStep) Paused() bool { return f.paused }

// ShouldStep reports whether a step is due at now. The first poll only
// starts the clock.
func (f *FixedStep) ShouldStep(now time.Time) bool {
	if f.paused {
		return false
	}
	if f.last.IsZero() {
		f.last = now
		return false
	}
	delta := now.Sub(f.last)
	f.last = now
	f.accumulator += delta
	if f.accumulator >= f.step {
		f.accumulator -= f.step
		if f.accumulator >= f.step {
			f.accumulator = 0
		}
		return true
	}
	return false
}
