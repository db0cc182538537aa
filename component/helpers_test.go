package component

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/lixenwraith/mantou/engine"
	"github.com/lixenwraith/mantou/inventory"
	"github.com/lixenwraith/mantou/parameter"
	"github.com/lixenwraith/mantou/vmath"
)

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

const frame = parameter.FrameInterval

type hudLog struct {
	engine.NopHUD
	texts  []string
	coords []vmath.Cell
	field  int
}

func (h *hudLog) FloatingText(text, _ string) { h.texts = append(h.texts, text) }
func (h *hudLog) SetCoords(c vmath.Cell)      { h.coords = append(h.coords, c) }
func (h *hudLog) SetFoodOnField(n int)        { h.field = n }

type soundLog struct {
	cues    []string
	volumes []float64
}

func (s *soundLog) Play(cue string, volume float64) {
	s.cues = append(s.cues, cue)
	s.volumes = append(s.volumes, volume)
}

func (s *soundLog) count(cue string) int {
	n := 0
	for _, c := range s.cues {
		if c == cue {
			n++
		}
	}
	return n
}

type fixture struct {
	w      *engine.World
	clock  *engine.ManualClock
	hud    *hudLog
	sound  *soundLog
	inv    *inventory.Inventory
	player *engine.Entity
	pc     *Player
}

// newFixture builds a world with the player standing at the center of cell (0,0)
func newFixture(t *testing.T) *fixture {
	t.Helper()
	clock := engine.NewManualClock(epoch)
	f := &fixture{clock: clock, hud: &hudLog{}, sound: &soundLog{}}
	f.w = engine.NewWorld(engine.WorldConfig{
		Clock: clock,
		State: engine.NewGameState(clock, parameter.InitialHP, parameter.MaxHP),
		Sound: f.sound,
		HUD:   f.hud,
		Rand:  rand.New(rand.NewPCG(3, 5)),
	})
	tun := parameter.Default()
	engine.AddResource(f.w, &tun)
	f.inv = inventory.New(parameter.InventorySlots)
	engine.AddResource(f.w, f.inv)

	var err error
	f.player, f.pc, err = NewPlayerEntity(f.w, vmath.Cell{}.Center())
	if err != nil {
		t.Fatalf("NewPlayerEntity: %v", err)
	}
	return f
}

// step mirrors one session step: advance the clock, run due callbacks, update the world
func (f *fixture) step(n int) {
	for i := 0; i < n; i++ {
		f.clock.Advance(frame)
		f.w.Scheduler().RunDue(f.clock.Now())
		f.w.Update(frame)
	}
}

// stepFor runs enough steps to cover d
func (f *fixture) stepFor(d time.Duration) {
	f.step(int((d + frame - 1) / frame))
}

func (f *fixture) place(t *testing.T, c engine.Component, pos vmath.Vec) *engine.Entity {
	t.Helper()
	e := engine.NewEntity(engine.NewID(c.Kind()), pos, engine.Hooks{})
	if err := e.AddComponent(c); err != nil {
		t.Fatalf("AddComponent: %v", err)
	}
	if err := f.w.AddEntity(e); err != nil {
		t.Fatalf("AddEntity: %v", err)
	}
	return e
}

func (f *fixture) spawn(t *testing.T, k engine.Kind, c vmath.Cell) *engine.Entity {
	t.Helper()
	e, err := Spawn(f.w, k, c)
	if err != nil {
		t.Fatalf("Spawn(%s): %v", k, err)
	}
	return e
}
