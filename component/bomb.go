package component

import (
	"fmt"
	"time"

	"github.com/lixenwraith/mantou/engine"
	"github.com/lixenwraith/mantou/parameter"
	"github.com/lixenwraith/mantou/vmath"
)

// Bomb damages and knocks back the player on touch, then plays a short explosion before removal
// While exploding it stays in the world but takes no further collisions and cannot time out
type Bomb struct {
	item
	damage    int
	frames    int
	frameTime time.Duration
	exploding bool
	frame     int
	sequence  *engine.Task
}

func NewBomb(now time.Time, lifetime time.Duration, damage, frames int, frameTime time.Duration) *Bomb {
	return &Bomb{item: newItem(now, lifetime), damage: damage, frames: frames, frameTime: frameTime}
}

func (b *Bomb) Kind() engine.Kind { return engine.KindBomb }

// Interactive is false once the explosion has started
func (b *Bomb) Interactive() bool { return !b.exploding }

func (b *Bomb) Exploding() bool { return b.exploding }

// Frame returns the current explosion frame
func (b *Bomb) Frame() int { return b.frame }

func (b *Bomb) Update(dt time.Duration) {
	if b.exploding {
		return
	}
	b.item.Update(dt)
}

func (b *Bomb) OnCollision(other *engine.Entity) {
	if b.exploding || !b.touchedBy(other) {
		return
	}
	b.exploding = true
	owner := b.Owner()
	w := owner.World()

	w.Sound().Play(engine.CueBombExplode, 0)
	w.HUD().FloatingText(fmt.Sprintf("-%d", b.damage), engine.ColorDamage)
	w.State().Damage(b.damage)

	if pl, ok := other.Primary().(*Player); ok {
		tun := w.Tuning().Player
		pl.Knockback(KnockbackTarget(w, owner.Position, other.Position, tun.KnockbackCells), tun.KnockbackDuration)
	}

	b.sequence = w.Scheduler().Every(b.frameTime, b.advanceFrame)
}

// advanceFrame steps the explosion and removes the bomb after the last frame
func (b *Bomb) advanceFrame() {
	b.frame++
	if b.frame < b.frames {
		return
	}
	owner := b.Owner()
	if w := owner.World(); w != nil {
		w.Scheduler().Cancel(b.sequence)
	}
	b.Deactivate()
	owner.Destroy()
}

func (b *Bomb) Destroy() {
	if b.sequence != nil {
		if w := b.Owner().World(); w != nil {
			w.Scheduler().Cancel(b.sequence)
		}
	}
	b.item.Destroy()
}

// KnockbackTarget pushes the player away from the bomb by cells, landing on a cell center
// Coincident positions push in a random direction
func KnockbackTarget(w *engine.World, bombPos, playerPos vmath.Vec, cells int) vmath.Vec {
	dir, ok := vmath.Direction(bombPos, playerPos)
	if !ok {
		dir = vmath.RandomUnit(w.Rand())
	}
	push := vmath.Scale(float64(cells)*parameter.CellSize, dir)
	return vmath.SnapToCenter(vmath.Add(playerPos, push))
}
