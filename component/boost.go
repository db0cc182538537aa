package component

import "time"

// Boost tracks the player's speed pickup as a single extendable deadline
// Re-collecting while active pushes the deadline out instead of scheduling a second revert
type Boost struct {
	Active     bool
	Multiplier float64
	Deadline   time.Time
	Total      time.Duration // For UI progress calculation
}

// Apply starts the boost or extends it by d
// Returns true when an active boost was extended
func (b *Boost) Apply(now time.Time, d time.Duration, multiplier float64) bool {
	if b.Active {
		b.Deadline = b.Deadline.Add(d)
		b.Total += d
		return true
	}
	b.Active = true
	b.Multiplier = multiplier
	b.Deadline = now.Add(d)
	b.Total = d
	return false
}

// Expire deactivates the boost once now reaches the deadline
// Returns true on the call that ended it
func (b *Boost) Expire(now time.Time) bool {
	if !b.Active || now.Before(b.Deadline) {
		return false
	}
	*b = Boost{}
	return true
}

// Remaining returns the boosted time left
func (b *Boost) Remaining(now time.Time) time.Duration {
	if !b.Active {
		return 0
	}
	return max(b.Deadline.Sub(now), 0)
}

// Factor returns the current speed multiplier
func (b *Boost) Factor() float64 {
	if !b.Active {
		return 1
	}
	return b.Multiplier
}
