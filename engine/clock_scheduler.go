package engine

import (
	"container/heap"
	"time"
)

// Task is a pending callback owned by a Scheduler
type Task struct {
	due    time.Time
	period time.Duration
	fn     func()
	seq    uint64
	index  int
}

// Due returns the next time the task fires
func (t *Task) Due() time.Time { return t.due }

// Scheduler is the due-callback queue driven by the game clock
// Callbacks run on the simulation goroutine between steps, never during one
type Scheduler struct {
	clock TimeProvider
	queue taskQueue
	seq   uint64
}

// NewScheduler creates a scheduler reading the given clock
func NewScheduler(clock TimeProvider) *Scheduler {
	return &Scheduler{clock: clock}
}

// After schedules fn to run once, d after the current clock time
func (s *Scheduler) After(d time.Duration, fn func()) *Task {
	return s.push(s.clock.Now().Add(d), 0, fn)
}

// Every schedules fn to run every d, first firing d from now
// Non-positive periods are raised to one nanosecond
func (s *Scheduler) Every(d time.Duration, fn func()) *Task {
	if d <= 0 {
		d = time.Nanosecond
	}
	return s.push(s.clock.Now().Add(d), d, fn)
}

// Cancel removes a pending task; cancelling a fired one-shot or nil task is a no-op
func (s *Scheduler) Cancel(t *Task) {
	if t == nil || t.index < 0 || t.index >= len(s.queue) || s.queue[t.index] != t {
		return
	}
	heap.Remove(&s.queue, t.index)
	t.index = -1
}

// Pending reports whether t is still queued
func (s *Scheduler) Pending(t *Task) bool {
	return t != nil && t.index >= 0 && t.index < len(s.queue) && s.queue[t.index] == t
}

// RunDue fires every task due at or before now in due order, FIFO among equal due times
// Periodic tasks are re-queued before their callback runs so the callback may cancel them
// Returns the number of callbacks run
func (s *Scheduler) RunDue(now time.Time) int {
	ran := 0
	for len(s.queue) > 0 && !s.queue[0].due.After(now) {
		t := heap.Pop(&s.queue).(*Task)
		t.index = -1
		if t.period > 0 {
			t.due = t.due.Add(t.period)
			s.seq++
			t.seq = s.seq
			heap.Push(&s.queue, t)
		}
		t.fn()
		ran++
	}
	return ran
}

// Len returns the number of queued tasks
func (s *Scheduler) Len() int { return len(s.queue) }

// Clear drops every queued task
func (s *Scheduler) Clear() {
	for _, t := range s.queue {
		t.index = -1
	}
	s.queue = nil
}

func (s *Scheduler) push(due time.Time, period time.Duration, fn func()) *Task {
	s.seq++
	t := &Task{due: due, period: period, fn: fn, seq: s.seq}
	heap.Push(&s.queue, t)
	return t
}

// taskQueue is a min-heap ordered by due time then insertion sequence
type taskQueue []*Task

func (q taskQueue) Len() int { return len(q) }

func (q taskQueue) Less(i, j int) bool {
	if q[i].due.Equal(q[j].due) {
		return q[i].seq < q[j].seq
	}
	return q[i].due.Before(q[j].due)
}

func (q taskQueue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].index = i
	q[j].index = j
}

func (q *taskQueue) Push(x any) {
	t := x.(*Task)
	t.index = len(*q)
	*q = append(*q, t)
}

func (q *taskQueue) Pop() any {
	old := *q
	n := len(old)
	t := old[n-1]
	old[n-1] = nil
	*q = old[:n-1]
	return t
}
