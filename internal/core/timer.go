package core

import "time"

// FixedStep paces simulation ticks at a steady rate independent of how often
// the driving loop polls it.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
	now         func() time.Time

	// MaxCatchUp bounds how many ticks Pending reports after a stall.
	MaxCatchUp int
}

// NewFixedStep constructs a FixedStep controller targeting the given TPS. The
// first poll always reports a tick.
func NewFixedStep(tps int) *FixedStep {
	fs := &FixedStep{now: time.Now, MaxCatchUp: 4}
	fs.SetTPS(tps)
	fs.accumulator = fs.step
	return fs
}

// SetTPS changes the tick rate. Non-positive rates fall back to 60.
func (f *FixedStep) SetTPS(tps int) {
	if tps <= 0 {
		tps = 60
	}
	f.step = time.Second / time.Duration(tps)
}

// Period returns the duration of one tick.
func (f *FixedStep) Period() time.Duration { return f.step }

func (f *FixedStep) advance() {
	now := f.now()
	if f.last.IsZero() {
		f.last = now
	}
	f.accumulator += now.Sub(f.last)
	f.last = now
}

// ShouldStep reports whether the simulation should advance by one tick.
func (f *FixedStep) ShouldStep() bool {
	f.advance()
	if f.accumulator >= f.step {
		f.accumulator -= f.step
		return true
	}
	return false
}

// Pending consumes and returns the number of whole ticks due, capped at
// MaxCatchUp. Time beyond the cap is dropped so a long stall does not cause
// a burst of ticks.
func (f *FixedStep) Pending() int {
	f.advance()
	n := int(f.accumulator / f.step)
	if f.MaxCatchUp > 0 && n > f.MaxCatchUp {
		n = f.MaxCatchUp
		f.accumulator = 0
		return n
	}
	f.accumulator -= time.Duration(n) * f.step
	return n
}
