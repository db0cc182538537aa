package engine

import "time"

// TimeProvider supplies the current time to the simulation
type TimeProvider interface {
	Now() time.Time
}

// MonotonicClock reads the wall clock
type MonotonicClock struct{}

// Now returns the current time with monotonic clock reading
func (MonotonicClock) Now() time.Time {
	return time.Now()
}
