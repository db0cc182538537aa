package engine

import "time"

// Kind identifies the game role of a component and therefore of the entity it is primary on
type Kind uint8

const (
	KindNone Kind = iota
	KindPlayer
	KindMantou
	KindBomb
	KindWallHook
	KindHealthPotion
	KindSpeedShoe
	KindMysteryBox
	KindWildCow

	kindCount
)

var kindNames = [kindCount]string{
	KindNone:         "none",
	KindPlayer:       "player",
	KindMantou:       "mantou",
	KindBomb:         "bomb",
	KindWallHook:     "wallhook",
	KindHealthPotion: "potion",
	KindSpeedShoe:    "shoe",
	KindMysteryBox:   "box",
	KindWildCow:      "cow",
}

func (k Kind) String() string {
	if k >= kindCount {
		return "unknown"
	}
	return kindNames[k]
}

// ParseKind resolves a kind name as used in tuning files
func ParseKind(name string) (Kind, bool) {
	for k, n := range kindNames {
		if n == name && Kind(k) != KindNone {
			return Kind(k), true
		}
	}
	return KindNone, false
}

// Interactable reports whether the player's proximity scan collides with this kind
func (k Kind) Interactable() bool {
	switch k {
	case KindMantou, KindBomb, KindWallHook, KindHealthPotion, KindSpeedShoe, KindMysteryBox, KindWildCow:
		return true
	default:
		return false
	}
}

// Pullable reports whether a wall hook can retrieve this kind
func (k Kind) Pullable() bool {
	switch k {
	case KindMantou, KindBomb, KindWallHook, KindHealthPotion, KindSpeedShoe, KindMysteryBox:
		return true
	default:
		return false
	}
}

// Component is a behavior unit owned by exactly one entity
type Component interface {
	Kind() Kind
	Attach(owner *Entity)
	Update(dt time.Duration)
	OnCollision(other *Entity)
	Destroy()
	Active() bool
}

// Interactive is implemented by components that can become temporarily non-interactive
// while remaining in the world (an exploding bomb)
type Interactive interface {
	Interactive() bool
}

// Base carries the owner back-reference and active flag shared by all components
// Embed it and override the hooks the component needs
type Base struct {
	owner  *Entity
	active bool
}

func (b *Base) Attach(owner *Entity) {
	b.owner = owner
	b.active = true
}

// Owner returns the entity the component is attached to
func (b *Base) Owner() *Entity { return b.owner }

func (b *Base) Active() bool { return b.active }

// Deactivate marks the component spent; the owning entity is torn down after the current hook returns
func (b *Base) Deactivate() { b.active = false }

func (b *Base) Update(time.Duration) {}

func (b *Base) OnCollision(*Entity) {}

func (b *Base) Destroy() { b.active = false }

// System is an auxiliary per-step pass run after entity updates
type System interface {
	Update(w *World, dt time.Duration)
	Priority() int // Lower values run first
}
