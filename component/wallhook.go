package component

import (
	"time"

	"github.com/lixenwraith/mantou/engine"
	"github.com/lixenwraith/mantou/inventory"
)

// WallHook is a pickup that adds one hook charge to the inventory
type WallHook struct {
	stash
}

func NewWallHook(now time.Time, lifetime time.Duration) *WallHook {
	return &WallHook{stash: stash{item: newItem(now, lifetime)}}
}

func (h *WallHook) Kind() engine.Kind { return engine.KindWallHook }

func (h *WallHook) OnCollision(other *engine.Entity) {
	if !h.touchedBy(other) {
		return
	}
	h.store(inventory.Item{
		Kind:  engine.KindWallHook,
		Name:  inventory.DisplayName(engine.KindWallHook),
		Count: 1,
		Color: inventory.HookColor,
	}, engine.CueHookPickup, "Hook")
}
