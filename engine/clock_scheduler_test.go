package engine

import (
	"testing"
	"time"
)

// TestSchedulerOrdering verifies due-order execution with FIFO ties
func TestSchedulerOrdering(t *testing.T) {
	clock := NewManualClock(testEpoch)
	s := NewScheduler(clock)
	var got []string
	s.After(200*time.Millisecond, func() { got = append(got, "c") })
	s.After(100*time.Millisecond, func() { got = append(got, "a") })
	s.After(100*time.Millisecond, func() { got = append(got, "b") })

	if n := s.RunDue(clock.Now()); n != 0 {
		t.Fatalf("Expected nothing due yet, ran %d", n)
	}
	clock.Advance(150 * time.Millisecond)
	s.RunDue(clock.Now())
	if len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Fatalf("Expected [a b], got %v", got)
	}
	clock.Advance(50 * time.Millisecond)
	s.RunDue(clock.Now())
	if len(got) != 3 || got[2] != "c" {
		t.Errorf("Expected c at exactly its due time, got %v", got)
	}
	if s.Len() != 0 {
		t.Errorf("Expected empty queue, got %d", s.Len())
	}
}

// TestSchedulerEvery verifies periodic tasks catch up and can cancel themselves
func TestSchedulerEvery(t *testing.T) {
	clock := NewManualClock(testEpoch)
	s := NewScheduler(clock)
	count := 0
	var task *Task
	task = s.Every(time.Second, func() {
		count++
		if count == 3 {
			s.Cancel(task)
		}
	})

	clock.Advance(2500 * time.Millisecond)
	s.RunDue(clock.Now())
	if count != 2 {
		t.Fatalf("Expected 2 firings after 2.5s, got %d", count)
	}
	if got := task.Due(); !got.Equal(testEpoch.Add(3 * time.Second)) {
		t.Errorf("Expected next due at 3s, got %v", got.Sub(testEpoch))
	}

	clock.Advance(10 * time.Second)
	s.RunDue(clock.Now())
	if count != 3 {
		t.Errorf("Expected self-cancel after third firing, got %d", count)
	}
	if s.Pending(task) {
		t.Error("Expected cancelled task not pending")
	}
}

// TestSchedulerCancel verifies cancellation before firing and tolerance of stale handles
func TestSchedulerCancel(t *testing.T) {
	clock := NewManualClock(testEpoch)
	s := NewScheduler(clock)
	fired := false
	task := s.After(time.Second, func() { fired = true })
	other := s.After(time.Second, func() {})

	s.Cancel(task)
	s.Cancel(task)
	s.Cancel(nil)
	clock.Advance(time.Second)
	s.RunDue(clock.Now())

	if fired {
		t.Error("Expected cancelled task not to fire")
	}
	s.Cancel(other)
	if s.Len() != 0 {
		t.Errorf("Expected empty queue, got %d", s.Len())
	}
}

// TestSchedulerReentrant verifies callbacks may schedule work due in the same pass
func TestSchedulerReentrant(t *testing.T) {
	clock := NewManualClock(testEpoch)
	s := NewScheduler(clock)
	var got []int
	s.After(0, func() {
		got = append(got, 1)
		s.After(0, func() { got = append(got, 2) })
	})
	s.RunDue(clock.Now())
	if len(got) != 2 {
		t.Errorf("Expected nested zero-delay task to run, got %v", got)
	}
}

// TestManualClock verifies the virtual clock only moves when told
func TestManualClock(t *testing.T) {
	clock := NewManualClock(testEpoch)
	if !clock.Now().Equal(testEpoch) {
		t.Fatal("Expected start time")
	}
	clock.Advance(16 * time.Millisecond)
	if d := clock.Now().Sub(testEpoch); d != 16*time.Millisecond {
		t.Errorf("Expected 16ms, got %v", d)
	}
	later := testEpoch.Add(time.Hour)
	clock.Set(later)
	if !clock.Now().Equal(later) {
		t.Error("Expected Set to jump")
	}

	var _ TimeProvider = MonotonicClock{}
	a := MonotonicClock{}.Now()
	if (MonotonicClock{}).Now().Before(a) {
		t.Error("Expected monotonic wall clock")
	}
}

// TestFrameLimiterAccumulates verifies fixed steps with carried leftover
func TestFrameLimiterAccumulates(t *testing.T) {
	f := NewFrameLimiter(10*time.Millisecond, 5)

	if n := f.Advance(7 * time.Millisecond); n != 0 {
		t.Fatalf("Expected no step below interval, got %d", n)
	}
	if n := f.Advance(7 * time.Millisecond); n != 1 {
		t.Fatalf("Expected one step at 14ms, got %d", n)
	}
	if f.Pending() != 4*time.Millisecond {
		t.Errorf("Expected 4ms carried, got %v", f.Pending())
	}
	if n := f.Advance(26 * time.Millisecond); n != 3 {
		t.Errorf("Expected three steps at 30ms, got %d", n)
	}
	if f.Pending() != 0 {
		t.Errorf("Expected no leftover, got %v", f.Pending())
	}
}

// TestFrameLimiterCapsBacklog verifies a long stall does not produce a catch-up spiral
func TestFrameLimiterCapsBacklog(t *testing.T) {
	f := NewFrameLimiter(10*time.Millisecond, 5)
	if n := f.Advance(time.Second + 3*time.Millisecond); n != 5 {
		t.Errorf("Expected capped 5 steps, got %d", n)
	}
	if f.Pending() != 3*time.Millisecond {
		t.Errorf("Expected only sub-interval remainder kept, got %v", f.Pending())
	}
	f.Reset()
	if f.Pending() != 0 {
		t.Error("Expected Reset to clear leftover")
	}
}
