package core

import (
	"testing"
	"time"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time { return c.t }

func (c *fakeClock) add(d time.Duration) { c.t = c.t.Add(d) }

func newTestStep(tps int) (*FixedStep, *fakeClock) {
	clock := &fakeClock{t: time.Unix(1000, 0)}
	fs := NewFixedStep(tps)
	fs.now = clock.now
	return fs, clock
}

func TestFixedStepFirstCallSteps(t *testing.T) {
	fs, _ := newTestStep(30)
	if !fs.ShouldStep() {
		t.Fatal("expected the first call to step")
	}
}

func TestFixedStepWaitsForAccumulator(t *testing.T) {
	fs, clock := newTestStep(10)
	fs.ShouldStep()
	clock.add(50 * time.Millisecond)
	if fs.ShouldStep() {
		t.Fatal("expected no step before a full period elapsed")
	}
	clock.add(60 * time.Millisecond)
	if !fs.ShouldStep() {
		t.Fatal("expected a step once the period elapsed")
	}
}

func TestPendingCapsCatchUp(t *testing.T) {
	fs, clock := newTestStep(10)
	if got := fs.Pending(); got != 1 {
		t.Fatalf("initial Pending() = %d, want 1", got)
	}
	clock.add(250 * time.Millisecond)
	if got := fs.Pending(); got != 2 {
		t.Fatalf("Pending() after 250ms = %d, want 2", got)
	}
	clock.add(10 * time.Second)
	if got := fs.Pending(); got != fs.MaxCatchUp {
		t.Fatalf("Pending() after stall = %d, want %d", got, fs.MaxCatchUp)
	}
	if got := fs.Pending(); got != 0 {
		t.Fatalf("Pending() right after a stall = %d, want 0", got)
	}
}

func TestSetTPSFallsBackToDefault(t *testing.T) {
	fs := NewFixedStep(0)
	if fs.Period() != time.Second/60 {
		t.Fatalf("Period() = %v, want %v", fs.Period(), time.Second/60)
	}
}
