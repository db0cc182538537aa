package component

import (
	"fmt"
	"time"

	"github.com/lixenwraith/mantou/engine"
)

// HealthPotion heals a larger fixed amount and is always consumed on touch
type HealthPotion struct {
	item
	heal int
}

func NewHealthPotion(now time.Time, lifetime time.Duration, heal int) *HealthPotion {
	return &HealthPotion{item: newItem(now, lifetime), heal: heal}
}

func (h *HealthPotion) Kind() engine.Kind { return engine.KindHealthPotion }

func (h *HealthPotion) OnCollision(other *engine.Entity) {
	if !h.touchedBy(other) {
		return
	}
	h.Deactivate()
	w := h.Owner().World()
	w.State().Heal(h.heal)
	w.Sound().Play(engine.CuePotionDrink, 0)
	w.HUD().FloatingText(fmt.Sprintf("+%d HP", h.heal), engine.ColorHeal)
}
