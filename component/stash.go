package component

import (
	"github.com/lixenwraith/mantou/engine"
	"github.com/lixenwraith/mantou/inventory"
)

// stash is shared by pickups that go into the inventory instead of taking effect
// A full inventory rejects the pickup and leaves it in the world
type stash struct {
	item
	rejectedStep uint64
}

// store tries to add it to the session inventory
// The rejection cue plays once per continuous contact, not every step
func (s *stash) store(it inventory.Item, cue, label string) bool {
	w := s.Owner().World()
	inv, ok := engine.GetResource[*inventory.Inventory](w)
	if !ok {
		return false
	}
	if err := inv.AddItem(it); err != nil {
		step := w.Step()
		if s.rejectedStep == 0 || step > s.rejectedStep+1 {
			w.Sound().Play(engine.CueItemDenied, 0)
			w.HUD().FloatingText("Inventory full!", engine.ColorDenied)
		}
		s.rejectedStep = step
		return false
	}
	s.Deactivate()
	w.Sound().Play(cue, 0)
	w.HUD().FloatingText("Picked up "+label, engine.ColorPickup)
	return true
}
