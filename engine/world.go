package engine

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"slices"
	"time"

	"github.com/lixenwraith/mantou/parameter"
	"github.com/lixenwraith/mantou/vmath"
)

var (
	// ErrDuplicateEntity is returned by AddEntity when the id is already registered
	ErrDuplicateEntity = errors.New("entity id already registered")
	ErrNilEntity       = errors.New("nil entity")
)

// WorldConfig carries the collaborators a World is built with
// Zero fields fall back to a wall clock, default game state, silent ports and a time-seeded RNG
type WorldConfig struct {
	Clock TimeProvider
	State *GameState
	Sound SoundPlayer
	HUD   HUD
	Rand  *rand.Rand
}

// World owns the entity registry and drives one simulation step at a time
// It is confined to the simulation goroutine
type World struct {
	entities map[string]*Entity
	order    []*Entity
	systems  []System
	tweens   []*Tween

	clock     TimeProvider
	scheduler *Scheduler
	state     *GameState
	sound     SoundPlayer
	hud       HUD
	rng       *rand.Rand
	resources *ResourceStore

	step     uint64
	resolved map[[2]string]struct{}
}

// NewWorld creates an empty world
func NewWorld(cfg WorldConfig) *World {
	if cfg.Clock == nil {
		cfg.Clock = MonotonicClock{}
	}
	if cfg.Sound == nil {
		cfg.Sound = NopSound{}
	}
	if cfg.HUD == nil {
		cfg.HUD = NopHUD{}
	}
	if cfg.State == nil {
		cfg.State = NewGameState(cfg.Clock, parameter.InitialHP, parameter.MaxHP)
	}
	if cfg.Rand == nil {
		seed := uint64(time.Now().UnixNano())
		cfg.Rand = rand.New(rand.NewPCG(seed, seed>>1))
	}
	cfg.State.SetHUD(cfg.HUD)

	return &World{
		entities:  make(map[string]*Entity),
		clock:     cfg.Clock,
		scheduler: NewScheduler(cfg.Clock),
		state:     cfg.State,
		sound:     cfg.Sound,
		hud:       cfg.HUD,
		rng:       cfg.Rand,
		resources: NewResourceStore(),
		resolved:  make(map[[2]string]struct{}),
	}
}

// AddEntity registers e under its id and activates it
func (w *World) AddEntity(e *Entity) error {
	if e == nil {
		return ErrNilEntity
	}
	if _, exists := w.entities[e.ID]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateEntity, e.ID)
	}
	e.world = w
	e.active = true
	w.entities[e.ID] = e
	w.order = append(w.order, e)
	if e.hooks.OnSpawn != nil {
		e.hooks.OnSpawn(e)
	}
	return nil
}

// RemoveEntity unregisters the entity with the given id, destroying it if still live
// No-op for unknown ids
func (w *World) RemoveEntity(id string) {
	e, ok := w.entities[id]
	if !ok {
		return
	}
	delete(w.entities, id)
	if i := slices.Index(w.order, e); i >= 0 {
		w.order = slices.Delete(w.order, i, i+1)
	}
	e.Destroy()
}

// Entity returns the registered entity or nil
func (w *World) Entity(id string) *Entity {
	return w.entities[id]
}

// Player returns the player entity or nil before it is registered
func (w *World) Player() *Entity {
	return w.entities[parameter.PlayerID]
}

// EntityAtCell returns the first active entity in registry order whose cell is c, or nil
func (w *World) EntityAtCell(c vmath.Cell) *Entity {
	for _, e := range w.order {
		if e.active && e.Cell() == c {
			return e
		}
	}
	return nil
}

// Occupied reports whether any active entity, the player included, is in cell c
func (w *World) Occupied(c vmath.Cell) bool {
	return w.EntityAtCell(c) != nil
}

// Entities returns a snapshot of the registry in registration order
func (w *World) Entities() []*Entity {
	return slices.Clone(w.order)
}

// Len returns the number of registered entities
func (w *World) Len() int { return len(w.order) }

// Count returns the number of active entities whose primary kind is k
func (w *World) Count(k Kind) int {
	n := 0
	for _, e := range w.order {
		if e.active && e.Kind() == k {
			n++
		}
	}
	return n
}

// Collide notifies a then b of their contact
// A pair is resolved at most once per step and never when either side is inactive
func (w *World) Collide(a, b *Entity) {
	if a == nil || b == nil || a == b || !a.active || !b.active {
		return
	}
	key := [2]string{a.ID, b.ID}
	if key[1] < key[0] {
		key[0], key[1] = key[1], key[0]
	}
	if _, done := w.resolved[key]; done {
		return
	}
	w.resolved[key] = struct{}{}

	a.collide(b)
	if b.active {
		b.collide(a)
	}
}

// AddSystem registers an auxiliary system, keeping systems sorted by priority
func (w *World) AddSystem(s System) {
	w.systems = append(w.systems, s)
	slices.SortStableFunc(w.systems, func(x, y System) int {
		return x.Priority() - y.Priority()
	})
}

// Update advances the world by one simulation step
// Active entities update in registry order, then tweens, then systems
// The step stops early once the game is over
func (w *World) Update(dt time.Duration) {
	w.step++
	clear(w.resolved)

	for _, e := range w.Entities() {
		if w.state.Over() {
			return
		}
		if e.active {
			e.update(dt)
		}
	}
	if w.state.Over() {
		return
	}
	w.updateTweens(dt)

	for _, s := range w.systems {
		s.Update(w, dt)
	}
}

// Step returns the number of completed Update calls
func (w *World) Step() uint64 { return w.step }

func (w *World) Now() time.Time            { return w.clock.Now() }
func (w *World) Clock() TimeProvider       { return w.clock }
func (w *World) Scheduler() *Scheduler     { return w.scheduler }
func (w *World) State() *GameState         { return w.state }
func (w *World) Sound() SoundPlayer        { return w.sound }
func (w *World) HUD() HUD                  { return w.hud }
func (w *World) Rand() *rand.Rand          { return w.rng }
func (w *World) Resources() *ResourceStore { return w.resources }
