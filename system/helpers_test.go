package system

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/lixenwraith/mantou/component"
	"github.com/lixenwraith/mantou/engine"
	"github.com/lixenwraith/mantou/inventory"
	"github.com/lixenwraith/mantou/parameter"
	"github.com/lixenwraith/mantou/vmath"
)

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

type harness struct {
	w     *engine.World
	clock *engine.ManualClock
	tun   *parameter.Tuning
}

func newHarness(t *testing.T, hp int) *harness {
	t.Helper()
	clock := engine.NewManualClock(epoch)
	w := engine.NewWorld(engine.WorldConfig{
		Clock: clock,
		State: engine.NewGameState(clock, hp, parameter.MaxHP),
		Rand:  rand.New(rand.NewPCG(9, 9)),
	})
	tun := parameter.Default()
	engine.AddResource(w, &tun)
	engine.AddResource(w, inventory.New(parameter.InventorySlots))
	if _, _, err := component.NewPlayerEntity(w, vmath.Cell{}.Center()); err != nil {
		t.Fatalf("NewPlayerEntity: %v", err)
	}
	return &harness{w: w, clock: clock, tun: &tun}
}

func (h *harness) run(d time.Duration) {
	for elapsed := time.Duration(0); elapsed < d; elapsed += parameter.FrameInterval {
		h.clock.Advance(parameter.FrameInterval)
		h.w.Scheduler().RunDue(h.clock.Now())
		h.w.Update(parameter.FrameInterval)
	}
}
