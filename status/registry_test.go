package status

import (
	"sync"
	"sync/atomic"
	"testing"
)

func TestRegistryCounters(t *testing.T) {
	r := NewRegistry()
	if got := r.Int("missing"); got != 0 {
		t.Errorf("unknown counter = %d, want 0", got)
	}
	if r.Ints.Has("missing") {
		t.Error("reading an unknown counter registered it")
	}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				r.Inc("spawn.mantou.placed")
			}
		}()
	}
	wg.Wait()

	if got := r.Int("spawn.mantou.placed"); got != 800 {
		t.Errorf("counter = %d, want 800", got)
	}
	r.Bools.Get("game.over").Store(true)
	if r.TotalCount() != 2 {
		t.Errorf("TotalCount = %d, want 2", r.TotalCount())
	}
}

func TestSnapshotSortedAndDetached(t *testing.T) {
	r := NewRegistry()
	r.Inc("b")
	r.Inc("a")
	r.Inc("a")

	var keys []string
	r.Ints.Range(func(key string, _ *atomic.Int64) { keys = append(keys, key) })
	if len(keys) != 2 || keys[0] != "a" || keys[1] != "b" {
		t.Errorf("Range order = %v", keys)
	}

	snap := r.Snapshot()
	r.Inc("a")
	if snap["a"] != 2 || snap["b"] != 1 {
		t.Errorf("snapshot = %v", snap)
	}
}
