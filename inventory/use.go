package inventory

import (
	"fmt"
	"time"

	"github.com/lixenwraith/mantou/engine"
	"github.com/lixenwraith/mantou/parameter"
	"github.com/lixenwraith/mantou/vmath"
)

// Booster is implemented by the player component to receive timed speed boosts
type Booster interface {
	Boost(d time.Duration)
}

// UseSelected uses the selected item, aiming at cursor in world coordinates
// Capacity failures are reported to the player as a cue and returned as sentinel errors
func (inv *Inventory) UseSelected(w *engine.World, cursor vmath.Vec) error {
	idx, ok := inv.Selected()
	if !ok || inv.slots[idx] == nil {
		deny(w, "No item selected")
		return ErrNoSelection
	}
	switch inv.slots[idx].Kind {
	case engine.KindWallHook:
		return inv.useHook(w, idx, cursor)
	case engine.KindMysteryBox:
		return inv.openBox(w, idx)
	default:
		w.HUD().FloatingText("Used "+inv.slots[idx].Name, engine.ColorInfo)
		inv.Consume(idx, 1)
		return nil
	}
}

// useHook pulls the pullable entity under cursor to the player
// A charge is spent only when a pull starts
func (inv *Inventory) useHook(w *engine.World, slot int, cursor vmath.Vec) error {
	tun := w.Tuning()
	player := w.Player()
	if player == nil {
		return ErrInvalidTarget
	}

	aim := vmath.ClampDistance(player.Position, cursor, float64(tun.Hook.RawCapCells)*parameter.CellSize)
	target := vmath.CellOf(aim)
	if vmath.CellDistance(player.Cell(), target) > tun.Hook.RangeCells {
		w.Metrics().Inc("hook.rejected")
		deny(w, "Out of hook range!")
		return ErrOutOfRange
	}

	ent := w.EntityAtCell(target)
	if ent == nil {
		w.Metrics().Inc("hook.rejected")
		deny(w, "No target")
		return ErrInvalidTarget
	}
	if !ent.Kind().Pullable() || !ent.Interactive() {
		w.Metrics().Inc("hook.rejected")
		deny(w, "Invalid target")
		return ErrInvalidTarget
	}

	inv.Consume(slot, 1)
	w.Metrics().Inc("hook.pulls")
	w.Sound().Play(engine.CueHookLaunch, 0)
	w.HUD().FloatingText("Pulled "+DisplayName(ent.Kind())+"!", engine.ColorPickup)

	w.StartTween(ent, player.Position, tun.Hook.PullDuration, vmath.EaseOutCubic, func() {
		if p := w.Player(); p != nil {
			w.Collide(p, ent)
		}
	})
	return nil
}

// openBox applies the oldest stacked payload of the selected box and consumes that box
func (inv *Inventory) openBox(w *engine.World, slot int) error {
	tun := w.Tuning()
	item := inv.slots[slot]
	var c Contents
	if len(item.Contents) > 0 {
		c = item.Contents[0]
	} else {
		c = RollReward(w.Rand(), tun.Reward)
	}
	w.Sound().Play(engine.CueBoxOpen, 0)
	w.HUD().FloatingText(fmt.Sprintf("Got %s x%d!", c.Name, c.Count), engine.ColorPickup)

	inv.Consume(slot, 1)
	inv.applyContents(w, c, tun)
	return nil
}

// applyContents applies count copies of the payload's base effect at once
func (inv *Inventory) applyContents(w *engine.World, c Contents, tun *parameter.Tuning) {
	state := w.State()
	switch c.Kind {
	case engine.KindMantou:
		heal := tun.Items.MantouHeal * c.Count
		state.Heal(heal)
		w.HUD().FloatingText(fmt.Sprintf("+%d HP", heal), engine.ColorHeal)
	case engine.KindHealthPotion:
		heal := tun.Items.PotionHeal * c.Count
		state.Heal(heal)
		w.HUD().FloatingText(fmt.Sprintf("+%d HP", heal), engine.ColorHeal)
	case engine.KindWallHook:
		err := inv.AddItem(Item{
			Kind:  engine.KindWallHook,
			Name:  DisplayName(engine.KindWallHook),
			Count: c.Count,
			Color: HookColor,
		})
		if err != nil {
			deny(w, "Inventory full!")
		}
	case engine.KindSpeedShoe:
		if p := w.Player(); p != nil {
			if b, ok := p.Primary().(Booster); ok {
				b.Boost(tun.Player.BoostDuration * time.Duration(c.Count))
			}
		}
	case engine.KindBomb:
		dmg := tun.Items.BombDamage * c.Count
		w.Sound().Play(engine.CueBombExplode, 0)
		w.HUD().FloatingText(fmt.Sprintf("-%d", dmg), engine.ColorDamage)
		state.Damage(dmg)
	}
}

// Slot colors
const (
	HookColor = "#ffaa00"
	BoxColor  = "#ff69b4"
)

func deny(w *engine.World, msg string) {
	w.Sound().Play(engine.CueItemDenied, 0)
	w.HUD().FloatingText(msg, engine.ColorDenied)
}
