package inventory_test

import (
	"errors"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/lixenwraith/mantou/component"
	"github.com/lixenwraith/mantou/engine"
	"github.com/lixenwraith/mantou/inventory"
	"github.com/lixenwraith/mantou/parameter"
	"github.com/lixenwraith/mantou/vmath"
)

type cueLog struct{ cues []string }

func (c *cueLog) Play(cue string, _ float64) { c.cues = append(c.cues, cue) }

func (c *cueLog) last() string {
	if len(c.cues) == 0 {
		return ""
	}
	return c.cues[len(c.cues)-1]
}

type scene struct {
	w      *engine.World
	clock  *engine.ManualClock
	inv    *inventory.Inventory
	sound  *cueLog
	player *component.Player
}

func newScene(t *testing.T) *scene {
	t.Helper()
	clock := engine.NewManualClock(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	s := &scene{clock: clock, sound: &cueLog{}, inv: inventory.New(parameter.InventorySlots)}
	s.w = engine.NewWorld(engine.WorldConfig{
		Clock: clock,
		State: engine.NewGameState(clock, parameter.InitialHP, parameter.MaxHP),
		Sound: s.sound,
		Rand:  rand.New(rand.NewPCG(4, 4)),
	})
	engine.AddResource(s.w, s.inv)
	var err error
	if _, s.player, err = component.NewPlayerEntity(s.w, vmath.Cell{}.Center()); err != nil {
		t.Fatalf("NewPlayerEntity: %v", err)
	}
	return s
}

func (s *scene) run(d time.Duration) {
	for elapsed := time.Duration(0); elapsed < d; elapsed += parameter.FrameInterval {
		s.clock.Advance(parameter.FrameInterval)
		s.w.Scheduler().RunDue(s.clock.Now())
		s.w.Update(parameter.FrameInterval)
	}
}

func (s *scene) holdHooks(t *testing.T, n int) {
	t.Helper()
	if err := s.inv.AddItem(inventory.Item{Kind: engine.KindWallHook, Name: "Hook", Count: n}); err != nil {
		t.Fatal(err)
	}
	s.inv.SelectSlot(0)
}

// TestHookPullsFood verifies a pull spends one charge and delivers the target to the player
func TestHookPullsFood(t *testing.T) {
	s := newScene(t)
	s.holdHooks(t, 2)
	target := vmath.Cell{X: 5}
	food, err := component.Spawn(s.w, engine.KindMantou, target)
	if err != nil {
		t.Fatal(err)
	}

	if err := s.inv.UseSelected(s.w, target.Center()); err != nil {
		t.Fatalf("UseSelected: %v", err)
	}
	if got := s.inv.Count(engine.KindWallHook); got != 1 {
		t.Errorf("Expected 1 hook left, got %d", got)
	}
	if !food.Tethered || s.w.Tweens() != 1 {
		t.Fatal("Expected the mantou to be on a tether")
	}

	s.run(parameter.HookPullDuration / 2)
	if !food.Active() {
		t.Fatal("Expected mantou still in flight at half the pull")
	}
	s.run(parameter.HookPullDuration/2 + 2*parameter.FrameInterval)
	if food.Active() {
		t.Error("Expected mantou eaten on arrival")
	}
	if st := s.w.State(); st.FoodCollected() != 1 || st.HP() != parameter.InitialHP+parameter.MantouHeal {
		t.Errorf("Expected food 1 and HP %d, got %d and %d", parameter.InitialHP+parameter.MantouHeal, st.FoodCollected(), st.HP())
	}
	if s.w.Metrics().Int("hook.pulls") != 1 {
		t.Error("Expected one pull recorded")
	}
}

// TestHookPullsBomb verifies a pulled bomb detonates on the player: damage, knockback to a cell center, removal after its frames
func TestHookPullsBomb(t *testing.T) {
	s := newScene(t)
	s.holdHooks(t, 1)
	target := vmath.Cell{X: 4}
	bomb, err := component.Spawn(s.w, engine.KindBomb, target)
	if err != nil {
		t.Fatal(err)
	}
	if err := s.inv.UseSelected(s.w, target.Center()); err != nil {
		t.Fatalf("UseSelected: %v", err)
	}

	s.run(parameter.HookPullDuration + 2*parameter.FrameInterval)
	if got := s.w.State().HP(); got != parameter.InitialHP-parameter.BombDamage {
		t.Errorf("Expected HP %d after the blast, got %d", parameter.InitialHP-parameter.BombDamage, got)
	}
	if !s.player.KnockedBack() {
		t.Error("Expected the player knocked back")
	}
	if s.w.Entity(bomb.ID) == nil {
		t.Fatal("Expected the bomb to stay registered while exploding")
	}

	s.run(parameter.ExplosionFrames*parameter.ExplosionFrameDuration + 2*parameter.FrameInterval)
	if s.w.Entity(bomb.ID) != nil || bomb.Active() {
		t.Error("Expected the bomb removed after its explosion frames")
	}
	if s.player.KnockedBack() {
		t.Error("Expected the knockback finished")
	}
	pos := s.w.Player().Position
	if pos != vmath.SnapToCenter(pos) {
		t.Errorf("Expected the player to land on a cell center, got %+v", pos)
	}
	if d := vmath.Distance(pos, vmath.Cell{}.Center()); d < 2*parameter.CellSize || d > 4*parameter.CellSize {
		t.Errorf("Expected the player pushed about 3 cells, got %.1f units", d)
	}
}

// TestHookRejections verifies invalid aims keep every charge
func TestHookRejections(t *testing.T) {
	s := newScene(t)
	s.holdHooks(t, 1)
	if _, err := component.Spawn(s.w, engine.KindWildCow, vmath.Cell{X: 3}); err != nil {
		t.Fatal(err)
	}
	if _, err := component.Spawn(s.w, engine.KindMantou, vmath.Cell{X: 9}); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name   string
		cursor vmath.Vec
		want   error
	}{
		{"beyond range", vmath.Cell{X: 9}.Center(), inventory.ErrOutOfRange},
		{"far beyond raw cap", vmath.V(1e6, 0), inventory.ErrOutOfRange},
		{"empty cell", vmath.Cell{X: 2, Y: 2}.Center(), inventory.ErrInvalidTarget},
		{"cow", vmath.Cell{X: 3}.Center(), inventory.ErrInvalidTarget},
		{"self", vmath.Cell{}.Center(), inventory.ErrInvalidTarget},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := s.inv.UseSelected(s.w, tt.cursor)
			if !errors.Is(err, tt.want) {
				t.Errorf("Expected %v, got %v", tt.want, err)
			}
			if s.inv.Count(engine.KindWallHook) != 1 {
				t.Error("Expected hook charge kept")
			}
			if s.sound.last() != engine.CueItemDenied {
				t.Errorf("Expected denied cue, got %q", s.sound.last())
			}
		})
	}
	if s.w.Tweens() != 0 {
		t.Error("Expected no pull started")
	}
}

// TestUseWithoutSelection verifies an empty or emptied selection is refused
func TestUseWithoutSelection(t *testing.T) {
	s := newScene(t)
	if err := s.inv.UseSelected(s.w, vmath.Vec{}); !errors.Is(err, inventory.ErrNoSelection) {
		t.Errorf("Expected ErrNoSelection, got %v", err)
	}

	_ = s.inv.AddItem(inventory.Item{Kind: engine.KindMysteryBox, Count: 1, Contents: []inventory.Contents{{Kind: engine.KindMantou, Count: 1}}})
	s.inv.SelectSlot(0)
	if err := s.inv.UseSelected(s.w, vmath.Vec{}); err != nil {
		t.Fatalf("UseSelected: %v", err)
	}
	if err := s.inv.UseSelected(s.w, vmath.Vec{}); !errors.Is(err, inventory.ErrNoSelection) {
		t.Errorf("Expected ErrNoSelection once the slot is empty, got %v", err)
	}
	if _, ok := s.inv.Selected(); !ok {
		t.Error("Expected selection kept after the slot emptied")
	}
}

// TestOpenBoxScalesEffects verifies each payload applies count times its base effect
func TestOpenBoxScalesEffects(t *testing.T) {
	tests := []struct {
		name  string
		c     inventory.Contents
		check func(t *testing.T, s *scene)
	}{
		{"mantou", inventory.Contents{Kind: engine.KindMantou, Count: 2}, func(t *testing.T, s *scene) {
			st := s.w.State()
			if st.HP() != parameter.InitialHP+2*parameter.MantouHeal || st.FoodCollected() != 0 {
				t.Errorf("Expected HP %d and no food counted, got %d and %d", parameter.InitialHP+2*parameter.MantouHeal, st.HP(), st.FoodCollected())
			}
		}},
		{"potion", inventory.Contents{Kind: engine.KindHealthPotion, Count: 3}, func(t *testing.T, s *scene) {
			if got := s.w.State().HP(); got != parameter.InitialHP+3*parameter.HealthPotionHeal {
				t.Errorf("Expected HP %d, got %d", parameter.InitialHP+3*parameter.HealthPotionHeal, got)
			}
		}},
		{"bomb", inventory.Contents{Kind: engine.KindBomb, Count: 3}, func(t *testing.T, s *scene) {
			if got := s.w.State().HP(); got != parameter.InitialHP-3*parameter.BombDamage {
				t.Errorf("Expected HP %d, got %d", parameter.InitialHP-3*parameter.BombDamage, got)
			}
		}},
		{"hooks", inventory.Contents{Kind: engine.KindWallHook, Count: 2}, func(t *testing.T, s *scene) {
			if got := s.inv.Count(engine.KindWallHook); got != 2 {
				t.Errorf("Expected 2 hooks, got %d", got)
			}
		}},
		{"shoes", inventory.Contents{Kind: engine.KindSpeedShoe, Count: 2}, func(t *testing.T, s *scene) {
			if got := s.player.BoostRemaining(s.clock.Now()); got != 2*parameter.BoostDuration {
				t.Errorf("Expected boost %v, got %v", 2*parameter.BoostDuration, got)
			}
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newScene(t)
			_ = s.inv.AddItem(inventory.Item{Kind: engine.KindMysteryBox, Count: 1, Contents: []inventory.Contents{tt.c}})
			s.inv.SelectSlot(0)
			if err := s.inv.UseSelected(s.w, vmath.Vec{}); err != nil {
				t.Fatalf("UseSelected: %v", err)
			}
			if s.inv.Count(engine.KindMysteryBox) != 0 {
				t.Error("Expected box consumed")
			}
			tt.check(t, s)
		})
	}
}
