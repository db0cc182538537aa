package component

import (
	"time"

	"github.com/lixenwraith/mantou/engine"
)

// item is the shared timed-lifetime behavior of ground pickups
// It deactivates itself once its lifetime has passed; the world then removes the entity
type item struct {
	engine.Base
	createdAt time.Time
	lifetime  time.Duration
}

func newItem(now time.Time, lifetime time.Duration) item {
	return item{createdAt: now, lifetime: lifetime}
}

func (it *item) Update(time.Duration) {
	if w := it.Owner().World(); w != nil && it.expired(w.Now()) {
		it.Deactivate()
	}
}

func (it *item) expired(now time.Time) bool {
	return now.Sub(it.createdAt) > it.lifetime
}

// touchedBy reports whether other is the player and this item can still take effect
func (it *item) touchedBy(other *engine.Entity) bool {
	return it.Active() && other != nil && other.Kind() == engine.KindPlayer
}
