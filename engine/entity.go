package engine

import (
	"errors"
	"time"

	"github.com/lixenwraith/mantou/vmath"
)

// ErrDuplicateComponent is returned when an entity already holds a component of the same kind
var ErrDuplicateComponent = errors.New("component kind already attached")

// Hooks are optional lifecycle callbacks supplied by the entity's creator
type Hooks struct {
	OnSpawn   func(e *Entity)
	OnUpdate  func(e *Entity, dt time.Duration)
	OnCollide func(e, other *Entity)
	OnDestroy func(e *Entity)
}

// Entity is an addressable simulation unit with a position and attached components
// The world owns its lifetime; the entity keeps a non-owning handle back to the world
type Entity struct {
	ID       string
	Position vmath.Vec
	// Facing is the heading in radians, zero along +X
	Facing float64
	// Tethered marks an entity being pulled; proximity scans skip it until the pull resolves
	Tethered bool

	hooks      Hooks
	world      *World
	components map[Kind]Component
	order      []Component
	active     bool
	destroyed  bool
}

// NewEntity creates a detached entity; it becomes active when added to a world
func NewEntity(id string, pos vmath.Vec, hooks Hooks) *Entity {
	return &Entity{
		ID:         id,
		Position:   pos,
		hooks:      hooks,
		components: make(map[Kind]Component, 1),
	}
}

// AddComponent attaches c; the first component added is the primary one
func (e *Entity) AddComponent(c Component) error {
	if _, ok := e.components[c.Kind()]; ok {
		return ErrDuplicateComponent
	}
	e.components[c.Kind()] = c
	e.order = append(e.order, c)
	c.Attach(e)
	return nil
}

// Component returns the attached component of kind k or nil
func (e *Entity) Component(k Kind) Component {
	return e.components[k]
}

// Primary returns the component that defines the entity's role, nil when none is attached
func (e *Entity) Primary() Component {
	if len(e.order) == 0 {
		return nil
	}
	return e.order[0]
}

// Kind returns the kind of the primary component
func (e *Entity) Kind() Kind {
	if p := e.Primary(); p != nil {
		return p.Kind()
	}
	return KindNone
}

func (e *Entity) Active() bool { return e.active }

// World returns the world the entity was registered with, nil before registration
func (e *Entity) World() *World { return e.world }

// Cell returns the grid cell under the entity's position
func (e *Entity) Cell() vmath.Cell { return vmath.CellOf(e.Position) }

// Interactive reports whether the entity can currently take part in a touch collision
func (e *Entity) Interactive() bool {
	if !e.active || e.Tethered {
		return false
	}
	p := e.Primary()
	if p == nil || !p.Active() {
		return false
	}
	if i, ok := p.(Interactive); ok {
		return i.Interactive()
	}
	return true
}

func (e *Entity) update(dt time.Duration) {
	if !e.active {
		return
	}
	for _, c := range e.order {
		if !e.active {
			return
		}
		if c.Active() {
			c.Update(dt)
		}
	}
	if e.active && e.hooks.OnUpdate != nil {
		e.hooks.OnUpdate(e, dt)
	}
	e.reapIfSpent()
}

func (e *Entity) collide(other *Entity) {
	if !e.active {
		return
	}
	for _, c := range e.order {
		if !e.active {
			return
		}
		if c.Active() {
			c.OnCollision(other)
		}
	}
	if e.active && e.hooks.OnCollide != nil {
		e.hooks.OnCollide(e, other)
	}
	e.reapIfSpent()
}

// reapIfSpent tears the entity down once its primary component has deactivated itself
func (e *Entity) reapIfSpent() {
	if p := e.Primary(); e.active && p != nil && !p.Active() {
		e.Destroy()
	}
}

// Destroy deactivates the entity, tears down its components and removes it from the world
// Repeated calls are no-ops
func (e *Entity) Destroy() {
	if e.destroyed {
		return
	}
	e.destroyed = true
	e.active = false
	e.Tethered = false
	for _, c := range e.order {
		c.Destroy()
	}
	if e.hooks.OnDestroy != nil {
		e.hooks.OnDestroy(e)
	}
	if e.world != nil {
		e.world.RemoveEntity(e.ID)
	}
}
