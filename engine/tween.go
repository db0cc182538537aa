package engine

import (
	"time"

	"github.com/lixenwraith/mantou/vmath"
)

// Tween moves an entity from one position to another over a fixed duration
type Tween struct {
	entity   *Entity
	from, to vmath.Vec
	duration time.Duration
	elapsed  time.Duration
	ease     func(float64) float64
	onDone   func()
}

// StartTween tethers e and eases it from its current position to to
// onDone runs in the step the tween completes; it is skipped if e is destroyed first
func (w *World) StartTween(e *Entity, to vmath.Vec, d time.Duration, ease func(float64) float64, onDone func()) *Tween {
	if ease == nil {
		ease = vmath.EaseOutCubic
	}
	t := &Tween{entity: e, from: e.Position, to: to, duration: d, ease: ease, onDone: onDone}
	e.Tethered = true
	w.tweens = append(w.tweens, t)
	return t
}

// Tweens returns the number of running tweens
func (w *World) Tweens() int { return len(w.tweens) }

func (w *World) updateTweens(dt time.Duration) {
	if len(w.tweens) == 0 {
		return
	}
	var done []*Tween
	live := w.tweens[:0]
	for _, t := range w.tweens {
		if !t.entity.Active() {
			continue
		}
		t.elapsed += dt
		p := 1.0
		if t.duration > 0 {
			p = float64(t.elapsed) / float64(t.duration)
		}
		if p >= 1 {
			t.entity.Position = t.to
			t.entity.Tethered = false
			done = append(done, t)
			continue
		}
		t.entity.Position = vmath.Lerp(t.from, t.to, t.ease(p))
		live = append(live, t)
	}
	clear(w.tweens[len(live):])
	w.tweens = live

	for _, t := range done {
		if t.onDone != nil && t.entity.Active() {
			t.onDone()
		}
	}
}
