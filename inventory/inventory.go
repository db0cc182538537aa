// Package inventory holds the player's item slots and resolves item use against the world
package inventory

import (
	"errors"

	"github.com/lixenwraith/mantou/engine"
)

var (
	ErrInventoryFull = errors.New("inventory full")
	ErrNoSelection   = errors.New("no item selected")
	ErrOutOfRange    = errors.New("target out of range")
	ErrInvalidTarget = errors.New("invalid target")
)

// Contents is the pre-rolled payload of a mystery box
type Contents struct {
	Kind  engine.Kind
	Name  string
	Count int
}

// Item is one slot's worth of stacked items of a single kind
type Item struct {
	Kind  engine.Kind
	Name  string
	Count int
	Color string
	// Contents has one entry per stacked mystery box, oldest first
	Contents []Contents
}

// Inventory is a fixed number of slots with an optional selection
// Two slots never hold the same kind
type Inventory struct {
	slots    []*Item
	selected int
}

// New creates an empty inventory with n slots
func New(n int) *Inventory {
	return &Inventory{slots: make([]*Item, n), selected: -1}
}

// Capacity returns the number of slots
func (inv *Inventory) Capacity() int { return len(inv.slots) }

// AddItem merges it into the slot of the same kind, else fills the first empty slot
// A full inventory returns ErrInventoryFull and is left unchanged
func (inv *Inventory) AddItem(it Item) error {
	if it.Count < 1 {
		it.Count = 1
	}
	for _, s := range inv.slots {
		if s != nil && s.Kind == it.Kind {
			s.Count += it.Count
			s.Contents = append(s.Contents, it.Contents...)
			return nil
		}
	}
	for i, s := range inv.slots {
		if s == nil {
			cp := it
			cp.Contents = append([]Contents(nil), it.Contents...)
			inv.slots[i] = &cp
			return nil
		}
	}
	return ErrInventoryFull
}

// SelectSlot selects slot i, or clears the selection if i is already selected
// Returns whether a slot is selected afterwards; out-of-range indices are ignored
func (inv *Inventory) SelectSlot(i int) bool {
	if i < 0 || i >= len(inv.slots) {
		return inv.selected >= 0
	}
	if inv.selected == i {
		inv.selected = -1
		return false
	}
	inv.selected = i
	return true
}

// Selected returns the selected slot index
func (inv *Inventory) Selected() (int, bool) {
	return inv.selected, inv.selected >= 0
}

// Slot returns a copy of slot i
func (inv *Inventory) Slot(i int) (Item, bool) {
	if i < 0 || i >= len(inv.slots) || inv.slots[i] == nil {
		return Item{}, false
	}
	it := *inv.slots[i]
	it.Contents = append([]Contents(nil), it.Contents...)
	return it, true
}

// Slots returns copies of all slots; empty slots have KindNone
func (inv *Inventory) Slots() []Item {
	out := make([]Item, len(inv.slots))
	for i := range inv.slots {
		out[i], _ = inv.Slot(i)
	}
	return out
}

// Count returns the number of items of kind k held
func (inv *Inventory) Count(k engine.Kind) int {
	for _, s := range inv.slots {
		if s != nil && s.Kind == k {
			return s.Count
		}
	}
	return 0
}

// Full reports whether every slot is filled
func (inv *Inventory) Full() bool {
	for _, s := range inv.slots {
		if s == nil {
			return false
		}
	}
	return true
}

// Consume removes n items from slot i, clearing the slot when it runs out
// Stacked box contents are dropped oldest first
func (inv *Inventory) Consume(i, n int) {
	if i < 0 || i >= len(inv.slots) || inv.slots[i] == nil || n <= 0 {
		return
	}
	s := inv.slots[i]
	s.Count -= n
	if len(s.Contents) > 0 {
		s.Contents = s.Contents[min(n, len(s.Contents)):]
	}
	if s.Count <= 0 {
		inv.slots[i] = nil
	}
}

// Clear empties every slot and drops the selection
func (inv *Inventory) Clear() {
	clear(inv.slots)
	inv.selected = -1
}
