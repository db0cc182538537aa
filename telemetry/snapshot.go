package telemetry

import (
	"strings"

	"github.com/lixenwraith/mantou/engine"
	"github.com/lixenwraith/mantou/inventory"
)

// Snapshot is one periodic sample of a running session
type Snapshot struct {
	Session       string  `csv:"session"`
	ElapsedSec    float64 `csv:"elapsed_s"`
	HP            int     `csv:"hp"`
	Food          int     `csv:"food"`
	Drained       int     `csv:"drained"`
	Live          int     `csv:"live"`
	Mantou        int     `csv:"mantou"`
	Bomb          int     `csv:"bomb"`
	WallHook      int     `csv:"wallhook"`
	Potion        int     `csv:"potion"`
	Shoe          int     `csv:"shoe"`
	Box           int     `csv:"box"`
	Cow           int     `csv:"cow"`
	InventoryUsed int     `csv:"inventory_used"`
	HookPulls     int64   `csv:"hook_pulls"`
	Collisions    int64   `csv:"collisions"`
	SpawnPlaced   int64   `csv:"spawn_placed"`
	SpawnFailed   int64   `csv:"spawn_failed"`
	SpawnSkipped  int64   `csv:"spawn_skipped"`
}

// Summary is the final row of one session
type Summary struct {
	Session         string `csv:"session"`
	Seed            uint64 `csv:"seed"`
	SurvivalSeconds int    `csv:"survival_s"`
	Food            int    `csv:"food"`
	Score           int    `csv:"score"`
	Drained         int    `csv:"drained"`
	HookPulls       int64  `csv:"hook_pulls"`
	Collisions      int64  `csv:"collisions"`
}

// Capture samples the world, its state and metrics, and the inventory
func Capture(session string, w *engine.World, inv *inventory.Inventory) Snapshot {
	st := w.State()
	s := Snapshot{
		Session:    session,
		ElapsedSec: st.Elapsed().Seconds(),
		HP:         st.HP(),
		Food:       st.FoodCollected(),
		Drained:    st.Drained(),
		Live:       w.Len(),
		Mantou:     w.Count(engine.KindMantou),
		Bomb:       w.Count(engine.KindBomb),
		WallHook:   w.Count(engine.KindWallHook),
		Potion:     w.Count(engine.KindHealthPotion),
		Shoe:       w.Count(engine.KindSpeedShoe),
		Box:        w.Count(engine.KindMysteryBox),
		Cow:        w.Count(engine.KindWildCow),
	}
	if inv != nil {
		for _, it := range inv.Slots() {
			if it.Count > 0 {
				s.InventoryUsed++
			}
		}
	}

	for key, v := range w.Metrics().Snapshot() {
		switch {
		case key == "hook.pulls":
			s.HookPulls = v
		case key == "collisions":
			s.Collisions = v
		case strings.HasPrefix(key, "spawn.") && strings.HasSuffix(key, ".placed"):
			s.SpawnPlaced += v
		case strings.HasPrefix(key, "spawn.") && strings.HasSuffix(key, ".failed"):
			s.SpawnFailed += v
		case strings.HasPrefix(key, "spawn.") && strings.HasSuffix(key, ".skipped"):
			s.SpawnSkipped += v
		}
	}
	return s
}

// Summarize builds the run summary row
func Summarize(session string, seed uint64, w *engine.World) Summary {
	st := w.State()
	sum := st.Summary()
	reg := w.Metrics()
	return Summary{
		Session:         session,
		Seed:            seed,
		SurvivalSeconds: sum.SurvivalSeconds,
		Food:            sum.FoodCollected,
		Score:           sum.Score,
		Drained:         st.Drained(),
		HookPulls:       reg.Int("hook.pulls"),
		Collisions:      reg.Int("collisions"),
	}
}
