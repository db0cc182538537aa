package system

import (
	"testing"
	"time"

	"github.com/lixenwraith/mantou/engine"
)

// TestHealthDrainEndsGame verifies the drain reaches zero and fires game over exactly once
func TestHealthDrainEndsGame(t *testing.T) {
	h := newHarness(t, 2)
	st := h.w.State()
	fired := 0
	st.OnGameOver(func(_ engine.Summary) { fired++ })

	task := StartHealthDrain(h.w, time.Second, 1)
	h.run(time.Second)
	if st.HP() != 1 {
		t.Fatalf("Expected HP 1 after one second, got %d", st.HP())
	}
	h.run(time.Second)
	if st.HP() != 0 || !st.Over() {
		t.Fatalf("Expected game over at HP 0, got HP %d over %v", st.HP(), st.Over())
	}
	h.run(3 * time.Second)
	if fired != 1 {
		t.Errorf("Expected one game over notification, got %d", fired)
	}
	if st.HP() != 0 {
		t.Errorf("Expected HP to stay at 0, got %d", st.HP())
	}
	h.w.Scheduler().Cancel(task)
	if h.w.Scheduler().Pending(task) {
		t.Error("Expected drain task cancelled")
	}
}
