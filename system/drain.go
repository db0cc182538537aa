package system

import (
	"fmt"
	"time"

	"github.com/lixenwraith/mantou/engine"
)

// StartHealthDrain schedules the passive HP loss: amount every interval until the game ends
// HP reaching zero goes through GameState, which fires game over exactly once
func StartHealthDrain(w *engine.World, interval time.Duration, amount int) *engine.Task {
	return w.Scheduler().Every(interval, func() {
		st := w.State()
		if st.Over() {
			return
		}
		w.HUD().FloatingText(fmt.Sprintf("-%d", amount), engine.ColorDamage)
		st.Drain(amount)
	})
}
