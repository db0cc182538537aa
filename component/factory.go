package component

import (
	"fmt"

	"github.com/lixenwraith/mantou/engine"
	"github.com/lixenwraith/mantou/inventory"
	"github.com/lixenwraith/mantou/parameter"
	"github.com/lixenwraith/mantou/vmath"
)

// NewPlayerEntity creates and registers the player at pos
func NewPlayerEntity(w *engine.World, pos vmath.Vec) (*engine.Entity, *Player, error) {
	p := NewPlayer(w.Tuning().Player.Speed)
	e := engine.NewEntity(parameter.PlayerID, pos, engine.Hooks{})
	if err := e.AddComponent(p); err != nil {
		return nil, nil, err
	}
	if err := w.AddEntity(e); err != nil {
		return nil, nil, fmt.Errorf("register player: %w", err)
	}
	return e, p, nil
}

// NewComponent builds the primary component for an item or hostile of kind k using the world's tuning
func NewComponent(w *engine.World, k engine.Kind) (engine.Component, error) {
	t := w.Tuning()
	now := w.Now()
	switch k {
	case engine.KindMantou:
		return NewMantou(now, t.Items.MantouLifetime, t.Items.MantouHeal), nil
	case engine.KindBomb:
		return NewBomb(now, t.Items.BombLifetime, t.Items.BombDamage, t.Items.ExplosionFrames, t.Items.ExplosionFrameTime), nil
	case engine.KindWallHook:
		return NewWallHook(now, t.Items.WallHookLifetime), nil
	case engine.KindHealthPotion:
		return NewHealthPotion(now, t.Items.PotionLifetime, t.Items.PotionHeal), nil
	case engine.KindSpeedShoe:
		return NewSpeedShoe(now, t.Items.ShoeLifetime, t.Player.BoostDuration), nil
	case engine.KindMysteryBox:
		return NewMysteryBox(now, t.Items.BoxLifetime, inventory.RollReward(w.Rand(), t.Reward)), nil
	case engine.KindWildCow:
		return NewWildCow(t.Cow), nil
	default:
		return nil, fmt.Errorf("no factory for kind %s", k)
	}
}

// Spawn creates an entity of kind k centered on cell c and registers it
func Spawn(w *engine.World, k engine.Kind, c vmath.Cell) (*engine.Entity, error) {
	comp, err := NewComponent(w, k)
	if err != nil {
		return nil, err
	}
	var hooks engine.Hooks
	if k == engine.KindMantou {
		hooks.OnSpawn = reportFoodOnField
		hooks.OnDestroy = reportFoodOnField
	}
	e := engine.NewEntity(engine.NewID(k), c.Center(), hooks)
	if err := e.AddComponent(comp); err != nil {
		return nil, err
	}
	if err := w.AddEntity(e); err != nil {
		return nil, err
	}
	return e, nil
}

func reportFoodOnField(e *engine.Entity) {
	if w := e.World(); w != nil {
		w.HUD().SetFoodOnField(w.Count(engine.KindMantou))
	}
}
