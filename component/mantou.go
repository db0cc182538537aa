package component

import (
	"fmt"
	"time"

	"github.com/lixenwraith/mantou/engine"
)

// Mantou is food: heals on touch and counts toward the score
type Mantou struct {
	item
	heal int
}

func NewMantou(now time.Time, lifetime time.Duration, heal int) *Mantou {
	return &Mantou{item: newItem(now, lifetime), heal: heal}
}

func (m *Mantou) Kind() engine.Kind { return engine.KindMantou }

func (m *Mantou) OnCollision(other *engine.Entity) {
	if !m.touchedBy(other) {
		return
	}
	m.Deactivate()
	w := m.Owner().World()
	w.State().Heal(m.heal)
	w.State().AddFood()
	w.Sound().Play(engine.CueMantouEat, 0)
	w.HUD().FloatingText(fmt.Sprintf("+%d", m.heal), engine.ColorHeal)
}
