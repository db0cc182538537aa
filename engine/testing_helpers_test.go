package engine

import (
	"math/rand/v2"
	"time"

	"github.com/lixenwraith/mantou/vmath"
)

var testEpoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

// probe is a minimal component recording the hooks it receives
type probe struct {
	Base
	kind       Kind
	updates    int
	collisions []string
	destroys   int
	consumeOn  bool // deactivate on first collision
}

func (p *probe) Kind() Kind { return p.kind }

func (p *probe) Update(time.Duration) { p.updates++ }

func (p *probe) OnCollision(other *Entity) {
	p.collisions = append(p.collisions, other.ID)
	if p.consumeOn {
		p.Deactivate()
	}
}

func (p *probe) Destroy() {
	p.destroys++
	p.Base.Destroy()
}

type recordingHUD struct {
	NopHUD
	hp        []int
	food      int
	gameOvers []Summary
}

func (h *recordingHUD) SetHP(hp int)           { h.hp = append(h.hp, hp) }
func (h *recordingHUD) SetFoodCollected(n int) { h.food = n }
func (h *recordingHUD) GameOver(s Summary)     { h.gameOvers = append(h.gameOvers, s) }

func newTestWorld() (*World, *ManualClock) {
	clock := NewManualClock(testEpoch)
	w := NewWorld(WorldConfig{
		Clock: clock,
		State: NewGameState(clock, 100, 999999),
		Rand:  rand.New(rand.NewPCG(7, 11)),
	})
	return w, clock
}

func spawnProbe(w *World, id string, kind Kind, cell vmath.Cell) (*Entity, *probe) {
	e := NewEntity(id, cell.Center(), Hooks{})
	p := &probe{kind: kind}
	if err := e.AddComponent(p); err != nil {
		panic(err)
	}
	if err := w.AddEntity(e); err != nil {
		panic(err)
	}
	return e, p
}
