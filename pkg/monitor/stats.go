// Package monitor measures wall-clock phase durations.
package monitor

import "time"

// Clock is the time source behind a Timer.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock reads the monotonic wall clock.
func SystemClock() Clock { return systemClock{} }

// Phase is one timed step.
type Phase struct {
	Name    string
	Elapsed time.Duration
}

// Timer records the duration of named phases in the order they ran.
type Timer struct {
	clock  Clock
	phases []Phase
}

func NewTimer(clock Clock) *Timer {
	if clock == nil {
		clock = SystemClock()
	}
	return &Timer{clock: clock}
}

// Measure runs fn and returns its duration in seconds.
func (t *Timer) Measure(name string, fn func()) float64 {
	start := t.clock.Now()
	fn()
	elapsed := t.clock.Now().Sub(start)
	t.phases = append(t.phases, Phase{Name: name, Elapsed: elapsed})
	return elapsed.Seconds()
}

// Phases returns a copy of what was measured so far.
func (t *Timer) Phases() []Phase {
	out := make([]Phase, len(t.phases))
	copy(out, t.phases)
	return out
}

// Total sums all measured phases.
func (t *Timer) Total() time.Duration {
	var total time.Duration
	for _, p := range t.phases {
		total += p.Elapsed
	}
	return total
}
