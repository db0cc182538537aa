package engine

import "time"

// FrameLimiter converts irregular wall-clock deltas into whole fixed steps
// Leftover time carries into the next call
type FrameLimiter struct {
	interval time.Duration
	maxSteps int
	acc      time.Duration
}

// NewFrameLimiter creates a limiter emitting steps of interval, at most maxSteps per Advance
func NewFrameLimiter(interval time.Duration, maxSteps int) *FrameLimiter {
	if maxSteps < 1 {
		maxSteps = 1
	}
	return &FrameLimiter{interval: interval, maxSteps: maxSteps}
}

// Advance accumulates elapsed and returns how many steps are due
// Backlog beyond maxSteps is dropped to avoid a catch-up spiral
func (f *FrameLimiter) Advance(elapsed time.Duration) int {
	if elapsed > 0 {
		f.acc += elapsed
	}
	n := int(f.acc / f.interval)
	if n > f.maxSteps {
		n = f.maxSteps
		f.acc %= f.interval
		return n
	}
	f.acc -= time.Duration(n) * f.interval
	return n
}

// Interval returns the fixed step
func (f *FrameLimiter) Interval() time.Duration { return f.interval }

// Pending returns the carried-over time
func (f *FrameLimiter) Pending() time.Duration { return f.acc }

// Reset drops the carried-over time
func (f *FrameLimiter) Reset() { f.acc = 0 }
