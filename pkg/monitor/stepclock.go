package monitor

import "time"

// StepClock advances by a fixed step on every Now call, so each measured
// phase takes exactly one step. Deterministic timings for tests and golden
// output.
type StepClock struct {
	now  time.Time
	step time.Duration
}

func NewStepClock(start time.Time, step time.Duration) *StepClock {
	return &StepClock{now: start, step: step}
}

func (c *StepClock) Now() time.Time {
	t := c.now
	c.now = c.now.Add(c.step)
	return t
}
