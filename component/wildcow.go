package component

import (
	"fmt"
	"time"

	"github.com/lixenwraith/mantou/engine"
	"github.com/lixenwraith/mantou/parameter"
	"github.com/lixenwraith/mantou/vmath"
)

// axisSteps are the four patrol directions
var axisSteps = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

// WildCow patrols the 3x3 area around where it spawned, moos at a nearby player and trades blows on contact
type WildCow struct {
	engine.Base
	tuning   parameter.CowTuning
	health   int
	anchor   vmath.Cell
	target   vmath.Vec
	moving   bool
	moveWait time.Duration
	// sinceMoo counts up between moos and is only reset when one plays
	sinceMoo time.Duration
}

func NewWildCow(t parameter.CowTuning) *WildCow {
	return &WildCow{tuning: t, health: t.Health}
}

func (c *WildCow) Kind() engine.Kind { return engine.KindWildCow }

func (c *WildCow) Attach(owner *engine.Entity) {
	c.Base.Attach(owner)
	c.anchor = owner.Cell()
	c.target = owner.Position
	// first patrol move and first moo in range are immediate
	c.moveWait = c.tuning.MoveInterval
	c.sinceMoo = c.tuning.MooInterval
}

func (c *WildCow) Health() int { return c.health }

// Anchor returns the spawn cell the patrol is bound to
func (c *WildCow) Anchor() vmath.Cell { return c.anchor }

func (c *WildCow) Update(dt time.Duration) {
	owner := c.Owner()
	w := owner.World()
	if w == nil {
		return
	}

	if c.moving {
		if dir, ok := vmath.Direction(owner.Position, c.target); ok {
			owner.Facing = vmath.Angle(dir)
		}
		next, arrived := vmath.StepToward(owner.Position, c.target, c.tuning.Speed)
		owner.Position = next
		c.moving = !arrived
	}

	c.moveWait += dt
	if c.moveWait >= c.tuning.MoveInterval {
		c.moveWait = 0
		if !c.moving {
			c.pickMove(w)
		}
	}

	c.sinceMoo += dt
	if c.sinceMoo >= c.tuning.MooInterval && c.moo(w) {
		c.sinceMoo = 0
	}
}

// pickMove chooses a random axis neighbor, falling back to the anchor when it would leave the patrol area
func (c *WildCow) pickMove(w *engine.World) {
	owner := c.Owner()
	step := axisSteps[w.Rand().IntN(len(axisSteps))]
	next := owner.Cell().Add(step[0], step[1])
	if vmath.Chebyshev(next, c.anchor) > c.tuning.PatrolRadius {
		next = c.anchor
	}
	c.target = next.Center()
	c.moving = c.target != owner.Position
}

// moo plays the cue when the player is within range; returns whether it played
func (c *WildCow) moo(w *engine.World) bool {
	player := w.Player()
	if player == nil {
		return false
	}
	d := vmath.Distance(player.Position, c.Owner().Position)
	if d > c.tuning.MooRange {
		return false
	}
	w.Sound().Play(engine.CueCowMoo, MooVolume(d, c.tuning.MooRange))
	return true
}

// MooVolume fades the moo with distance: max(0.1, 0.8*(1-d/range))
func MooVolume(d, rng float64) float64 {
	return max(parameter.CowMooMinVol, parameter.CowMooMaxVol*(1-d/rng))
}

// OnCollision costs the player a large amount of HP and the cow a little health, every contact step
func (c *WildCow) OnCollision(other *engine.Entity) {
	if !c.Active() || other == nil || other.Kind() != engine.KindPlayer {
		return
	}
	w := c.Owner().World()
	w.Sound().Play(engine.CueCowHit, 0)
	w.HUD().FloatingText(fmt.Sprintf("-%d", c.tuning.ContactDamage), engine.ColorDamage)
	c.health -= c.tuning.ContactWear
	if c.health <= 0 {
		c.Deactivate()
		w.HUD().FloatingText("Cow defeated!", engine.ColorPickup)
	}
	w.State().Damage(c.tuning.ContactDamage)
}
