package system

import (
	"fmt"
	"math"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/mantou/component"
	"github.com/lixenwraith/mantou/engine"
	"github.com/lixenwraith/mantou/logger"
	"github.com/lixenwraith/mantou/parameter"
	"github.com/lixenwraith/mantou/vmath"
)

// PopulationBudget caps live entities per kind and in total
// The total cap for a kind is the sum of the caps of every kind declared up to and including it,
// so later kinds in the rule order may only fill headroom left by earlier ones
type PopulationBudget struct {
	caps       map[engine.Kind]int
	cumulative map[engine.Kind]int
}

// NewPopulationBudget builds a budget from rules in declaration order
func NewPopulationBudget(rules []parameter.SpawnRule) (*PopulationBudget, error) {
	b := &PopulationBudget{
		caps:       make(map[engine.Kind]int, len(rules)),
		cumulative: make(map[engine.Kind]int, len(rules)),
	}
	sum := 0
	for _, r := range rules {
		k, ok := engine.ParseKind(r.Kind)
		if !ok || k == engine.KindPlayer {
			return nil, fmt.Errorf("spawn rule: unknown kind %q", r.Kind)
		}
		if _, dup := b.caps[k]; dup {
			return nil, fmt.Errorf("spawn rule: duplicate kind %q", r.Kind)
		}
		sum += r.Cap
		b.caps[k] = r.Cap
		b.cumulative[k] = sum
	}
	return b, nil
}

// Cap returns the per-kind cap
func (b *PopulationBudget) Cap(k engine.Kind) int { return b.caps[k] }

// Cumulative returns the total-population cap that applies when spawning k
func (b *PopulationBudget) Cumulative(k engine.Kind) int { return b.cumulative[k] }

// Allows reports whether one more k fits both its own cap and its cumulative cap
func (b *PopulationBudget) Allows(w *engine.World, k engine.Kind) bool {
	own, ok := b.caps[k]
	if !ok {
		return false
	}
	total := 0
	for _, e := range w.Entities() {
		if e.Active() && e.Kind() != engine.KindPlayer {
			total++
		}
	}
	return w.Count(k) < own && total < b.cumulative[k]
}

type spawnRule struct {
	parameter.SpawnRule
	kind engine.Kind
}

// SpawnSystem runs one periodic check per kind; a passing check schedules a placement after a random delay
type SpawnSystem struct {
	world       *engine.World
	budget      *PopulationBudget
	camera      *CameraSystem
	viewportCap int
	rules       []spawnRule
	initial     []parameter.InitialSpawn
	tasks       []*engine.Task
}

// NewSpawnSystem validates the spawn tuning and prepares the schedulers
func NewSpawnSystem(w *engine.World, t parameter.SpawnTuning, camera *CameraSystem) (*SpawnSystem, error) {
	budget, err := NewPopulationBudget(t.Rules)
	if err != nil {
		return nil, err
	}
	s := &SpawnSystem{
		world:       w,
		budget:      budget,
		camera:      camera,
		viewportCap: t.ViewportItemCap,
		initial:     t.Initial,
	}
	for _, r := range t.Rules {
		k, _ := engine.ParseKind(r.Kind)
		s.rules = append(s.rules, spawnRule{SpawnRule: r, kind: k})
	}
	for _, in := range t.Initial {
		if _, ok := s.rule(in.Kind); !ok {
			return nil, fmt.Errorf("initial spawn: no rule for kind %q", in.Kind)
		}
	}
	return s, nil
}

// Budget returns the shared population budget
func (s *SpawnSystem) Budget() *PopulationBudget { return s.budget }

// Start schedules the initial population and the periodic checks
func (s *SpawnSystem) Start() {
	sched := s.world.Scheduler()
	for _, in := range s.initial {
		r, _ := s.rule(in.Kind)
		s.tasks = append(s.tasks, sched.After(in.At, func() { s.place(r) }))
	}
	for _, r := range s.rules {
		s.tasks = append(s.tasks, sched.Every(r.Interval, func() { s.check(r) }))
	}
}

// Stop cancels every pending check and placement
func (s *SpawnSystem) Stop() {
	for _, t := range s.tasks {
		s.world.Scheduler().Cancel(t)
	}
	s.tasks = nil
}

func (s *SpawnSystem) rule(kind string) (spawnRule, bool) {
	for _, r := range s.rules {
		if r.Kind == kind {
			return r, true
		}
	}
	return spawnRule{}, false
}

// Place runs one placement attempt for kind k outside the periodic schedule
func (s *SpawnSystem) Place(k engine.Kind) bool {
	for _, r := range s.rules {
		if r.kind == k {
			return s.place(r)
		}
	}
	return false
}

// check gates on budget and viewport density, then defers a placement by a random delay
func (s *SpawnSystem) check(r spawnRule) {
	w := s.world
	if w.State().Over() {
		return
	}
	if !s.budget.Allows(w, r.kind) || (s.camera != nil && s.camera.CountInView(w) >= s.viewportCap) {
		w.Metrics().Inc("spawn." + r.Kind + ".skipped")
		return
	}
	var delay time.Duration
	if r.MaxDelay > 0 {
		delay = time.Duration(w.Rand().Int64N(int64(r.MaxDelay)))
	}
	s.tasks = append(s.tasks, w.Scheduler().After(delay, func() { s.place(r) }))
	s.compact()
}

// place searches for a free cell around the player and spawns one entity of the rule's kind
// The budget is re-checked since several placements may be pending; gives up silently after the attempt budget
func (s *SpawnSystem) place(r spawnRule) bool {
	w := s.world
	player := w.Player()
	if player == nil || w.State().Over() || !s.budget.Allows(w, r.kind) {
		return false
	}
	rng := w.Rand()
	for i := 0; i < r.Attempts; i++ {
		angle := rng.Float64() * 2 * math.Pi
		dist := float64(r.MinCells+rng.IntN(r.MaxCells-r.MinCells+1)) * parameter.CellSize
		raw := vmath.Add(player.Position, vmath.V(math.Round(math.Cos(angle)*dist), math.Round(math.Sin(angle)*dist)))
		cell := vmath.CellOf(raw)
		if w.Occupied(cell) {
			continue
		}
		if _, err := component.Spawn(w, r.kind, cell); err != nil {
			logger.Log.WithFields(logrus.Fields{"kind": r.Kind, "error": err}).Warn("spawn failed")
			return false
		}
		w.Metrics().Inc("spawn." + r.Kind + ".placed")
		return true
	}
	w.Metrics().Inc("spawn." + r.Kind + ".failed")
	logger.Log.WithFields(logrus.Fields{"kind": r.Kind, "attempts": r.Attempts}).Debug("no free cell for spawn")
	return false
}

// compact drops handles of tasks that already fired
func (s *SpawnSystem) compact() {
	sched := s.world.Scheduler()
	live := s.tasks[:0]
	for _, t := range s.tasks {
		if sched.Pending(t) {
			live = append(live, t)
		}
	}
	clear(s.tasks[len(live):])
	s.tasks = live
}
