package component

import (
	"time"

	"github.com/lixenwraith/mantou/engine"
	"github.com/lixenwraith/mantou/inventory"
)

// SpeedShoe boosts the player directly on touch
type SpeedShoe struct {
	item
	duration time.Duration
}

func NewSpeedShoe(now time.Time, lifetime, boost time.Duration) *SpeedShoe {
	return &SpeedShoe{item: newItem(now, lifetime), duration: boost}
}

func (s *SpeedShoe) Kind() engine.Kind { return engine.KindSpeedShoe }

func (s *SpeedShoe) OnCollision(other *engine.Entity) {
	if !s.touchedBy(other) {
		return
	}
	s.Deactivate()
	s.Owner().World().Sound().Play(engine.CueShoePickup, 0)
	if b, ok := other.Primary().(inventory.Booster); ok {
		b.Boost(s.duration)
	}
}
