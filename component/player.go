package component

import (
	"fmt"
	"time"

	"github.com/lixenwraith/mantou/engine"
	"github.com/lixenwraith/mantou/parameter"
	"github.com/lixenwraith/mantou/vmath"
)

// PlayerState is the movement state of the player
type PlayerState uint8

const (
	StateStanding PlayerState = iota
	StateRunning
	StateDying
)

func (s PlayerState) String() string {
	switch s {
	case StateStanding:
		return "standing"
	case StateRunning:
		return "running"
	case StateDying:
		return "dying"
	default:
		return "unknown"
	}
}

// knockback is the forced, eased relocation that overrides normal movement
type knockback struct {
	from, to vmath.Vec
	elapsed  time.Duration
	duration time.Duration
}

// Player drives the player entity: click-to-move, knockback interrupt, speed boost and the proximity scan
type Player struct {
	engine.Base
	state     PlayerState
	speed     float64
	target    vmath.Vec
	knock     *knockback
	boost     Boost
	lastCell  vmath.Cell
	announced bool
}

// NewPlayer creates a standing player with the given base speed per step
func NewPlayer(speed float64) *Player {
	return &Player{speed: speed}
}

func (p *Player) Kind() engine.Kind { return engine.KindPlayer }

func (p *Player) Attach(owner *engine.Entity) {
	p.Base.Attach(owner)
	p.target = owner.Position
}

func (p *Player) State() PlayerState { return p.state }
func (p *Player) Target() vmath.Vec  { return p.target }

// KnockedBack reports whether a knockback is in progress
func (p *Player) KnockedBack() bool { return p.knock != nil }

// Speed returns the current per-step speed including any boost
func (p *Player) Speed() float64 { return p.speed * p.boost.Factor() }

// BaseSpeed returns the unboosted speed
func (p *Player) BaseSpeed() float64 { return p.speed }

// BoostRemaining returns the boosted time left at now
func (p *Player) BoostRemaining(now time.Time) time.Duration { return p.boost.Remaining(now) }

// MoveTo sets the movement goal; ignored while dying or knocked back
func (p *Player) MoveTo(target vmath.Vec) {
	if p.state == StateDying || p.knock != nil {
		return
	}
	p.target = target
	p.state = StateRunning
}

// Knockback interrupts movement and eases the player to to over d
func (p *Player) Knockback(to vmath.Vec, d time.Duration) {
	if p.state == StateDying {
		return
	}
	owner := p.Owner()
	p.knock = &knockback{from: owner.Position, to: to, duration: d}
	p.target = to
}

// Die enters the terminal state; movement and scanning stop for good
func (p *Player) Die() {
	p.state = StateDying
	p.knock = nil
}

// Boost doubles speed for d, extending an active boost instead of restarting it
func (p *Player) Boost(d time.Duration) {
	w := p.Owner().World()
	mult := parameter.BoostMultiplier
	if w != nil {
		mult = w.Tuning().Player.BoostMultiplier
	}
	extended := p.boost.Apply(p.now(), d, mult)
	if w == nil {
		return
	}
	if extended {
		w.HUD().FloatingText(fmt.Sprintf("Boost extended +%ds", int(d/time.Second)), engine.ColorBoost)
	} else {
		w.HUD().FloatingText(fmt.Sprintf("Speed x%g for %ds!", mult, int(d/time.Second)), engine.ColorBoost)
	}
}

func (p *Player) Update(dt time.Duration) {
	if p.state == StateDying {
		return
	}
	owner := p.Owner()
	w := owner.World()

	if p.boost.Expire(p.now()) && w != nil {
		w.HUD().FloatingText("Speed back to normal", engine.ColorBoost)
	}

	if p.knock != nil {
		p.stepKnockback(dt)
		p.pushCoords()
		return
	}

	if p.state == StateRunning {
		if dir, ok := vmath.Direction(owner.Position, p.target); ok {
			owner.Facing = vmath.Angle(dir)
		}
		next, arrived := vmath.StepToward(owner.Position, p.target, p.Speed())
		owner.Position = next
		if arrived {
			p.state = StateStanding
		}
	}

	p.scan()
	p.pushCoords()
}

func (p *Player) stepKnockback(dt time.Duration) {
	k := p.knock
	owner := p.Owner()
	k.elapsed += dt
	t := 1.0
	if k.duration > 0 {
		t = float64(k.elapsed) / float64(k.duration)
	}
	if t >= 1 {
		owner.Position = k.to
		p.knock = nil
		p.state = StateStanding
		p.target = k.to
		return
	}
	owner.Position = vmath.Lerp(k.from, k.to, vmath.EaseOutCubic(t))
}

// scan collides the player with every interactable entity closer than one cell
// Stops early when a collision knocks the player back or ends the game
func (p *Player) scan() {
	owner := p.Owner()
	w := owner.World()
	if w == nil {
		return
	}
	for _, e := range w.Entities() {
		if e == owner || !e.Kind().Interactable() || !e.Interactive() {
			continue
		}
		if vmath.Distance(owner.Position, e.Position) < parameter.CellSize {
			w.Metrics().Inc("collisions")
			w.Collide(owner, e)
			if p.knock != nil || p.state == StateDying || !owner.Active() {
				return
			}
		}
	}
}

func (p *Player) pushCoords() {
	owner := p.Owner()
	w := owner.World()
	if w == nil {
		return
	}
	if c := owner.Cell(); !p.announced || c != p.lastCell {
		p.lastCell = c
		p.announced = true
		w.HUD().SetCoords(c)
	}
}

func (p *Player) now() time.Time {
	if w := p.Owner().World(); w != nil {
		return w.Now()
	}
	return time.Time{}
}
