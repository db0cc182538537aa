package component

import (
	"time"

	"github.com/lixenwraith/mantou/engine"
	"github.com/lixenwraith/mantou/inventory"
)

// MysteryBox carries a payload rolled when the box is created
type MysteryBox struct {
	stash
	contents inventory.Contents
}

func NewMysteryBox(now time.Time, lifetime time.Duration, contents inventory.Contents) *MysteryBox {
	return &MysteryBox{stash: stash{item: newItem(now, lifetime)}, contents: contents}
}

func (b *MysteryBox) Kind() engine.Kind { return engine.KindMysteryBox }

// Contents returns the pre-rolled payload
func (b *MysteryBox) Contents() inventory.Contents { return b.contents }

func (b *MysteryBox) OnCollision(other *engine.Entity) {
	if !b.touchedBy(other) {
		return
	}
	b.store(inventory.Item{
		Kind:     engine.KindMysteryBox,
		Name:     inventory.DisplayName(engine.KindMysteryBox),
		Count:    1,
		Color:    inventory.BoxColor,
		Contents: []inventory.Contents{b.contents},
	}, engine.CueBoxPickup, "Mystery Box")
}
