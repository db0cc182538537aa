// Package game wires a playable session: world, state, inventory, spawning, drain and telemetry
package game

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/mantou/component"
	"github.com/lixenwraith/mantou/engine"
	"github.com/lixenwraith/mantou/inventory"
	"github.com/lixenwraith/mantou/logger"
	"github.com/lixenwraith/mantou/parameter"
	"github.com/lixenwraith/mantou/system"
	"github.com/lixenwraith/mantou/telemetry"
	"github.com/lixenwraith/mantou/vmath"
)

var (
	// ErrGameOver is returned by commands issued after the session ended
	ErrGameOver = errors.New("game over")
	ErrPaused   = errors.New("game paused")
)

// musicPlayer is implemented by sound players with a background loop
type musicPlayer interface {
	StartMusic()
	StopMusic()
}

// resetter is implemented by HUDs that keep end-of-run state
type resetter interface {
	Reset()
}

// Options configure a session; zero values pick defaults
type Options struct {
	Tuning *parameter.Tuning
	// Seed 0 draws a fresh seed for every build
	Seed              uint64
	Clock             *engine.ManualClock
	Sound             engine.SoundPlayer
	HUD               engine.HUD
	Recorder          *telemetry.Recorder
	TelemetryInterval time.Duration
}

// Session is one run of the game plus everything needed to restart it
// All methods must be called from the simulation goroutine
type Session struct {
	opts    Options
	clock   *engine.ManualClock
	limiter *engine.FrameLimiter

	id      string
	seed    uint64
	world   *engine.World
	inv     *inventory.Inventory
	player  *engine.Entity
	pc      *component.Player
	camera  *system.CameraSystem
	spawner *system.SpawnSystem

	paused       bool
	musicStarted bool
}

// New builds a session and schedules its opening population
func New(opts Options) (*Session, error) {
	if opts.Tuning == nil {
		t := parameter.Default()
		opts.Tuning = &t
	}
	if opts.Clock == nil {
		opts.Clock = engine.NewManualClock(time.Now())
	}
	if opts.Sound == nil {
		opts.Sound = engine.NopSound{}
	}
	if opts.HUD == nil {
		opts.HUD = engine.NopHUD{}
	}
	s := &Session{
		opts:    opts,
		clock:   opts.Clock,
		limiter: engine.NewFrameLimiter(parameter.FrameInterval, parameter.MaxStepsPerAdvance),
	}
	if err := s.build(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Session) build() error {
	tun := s.opts.Tuning
	s.seed = s.opts.Seed
	if s.seed == 0 {
		s.seed = rand.Uint64()
	}
	s.id = uuid.NewString()
	rng := rand.New(rand.NewPCG(s.seed, s.seed^0x9e3779b97f4a7c15))

	state := engine.NewGameState(s.clock, tun.Player.InitialHP, tun.Player.MaxHP)
	w := engine.NewWorld(engine.WorldConfig{
		Clock: s.clock,
		State: state,
		Sound: s.opts.Sound,
		HUD:   s.opts.HUD,
		Rand:  rng,
	})
	engine.AddResource(w, tun)
	inv := inventory.New(tun.Inventory.Slots)
	engine.AddResource(w, inv)

	r := tun.Player.SpawnRangeCells
	start := vmath.Cell{X: rng.IntN(2*r+1) - r, Y: rng.IntN(2*r+1) - r}
	player, pc, err := component.NewPlayerEntity(w, start.Center())
	if err != nil {
		return fmt.Errorf("spawn player: %w", err)
	}

	camera := system.NewCameraSystem(tun.Spawn.ViewportWidth, tun.Spawn.ViewportHeight)
	camera.SnapTo(player.Position)
	w.AddSystem(camera)
	w.AddSystem(system.CensusSystem{})

	spawner, err := system.NewSpawnSystem(w, tun.Spawn, camera)
	if err != nil {
		return fmt.Errorf("spawn system: %w", err)
	}

	s.world, s.inv, s.player, s.pc = w, inv, player, pc
	s.camera, s.spawner = camera, spawner
	s.paused = false
	s.musicStarted = false
	s.limiter.Reset()

	state.OnGameOver(s.onGameOver)

	hud := w.HUD()
	if rs, ok := hud.(resetter); ok {
		rs.Reset()
	}
	hud.SetHP(state.HP())
	hud.SetFoodCollected(0)
	hud.SetFoodOnField(0)
	hud.SetCoords(start)

	spawner.Start()
	system.StartHealthDrain(w, tun.Player.DrainInterval, tun.Player.DrainAmount)
	if s.opts.Recorder != nil && s.opts.TelemetryInterval > 0 {
		w.Scheduler().Every(s.opts.TelemetryInterval, s.recordSnapshot)
	}

	logger.Log.WithFields(logrus.Fields{
		"session": s.id,
		"seed":    s.seed,
		"cell_x":  start.X,
		"cell_y":  start.Y,
	}).Info("session started")
	return nil
}

func (s *Session) onGameOver(sum engine.Summary) {
	w := s.world
	s.pc.Die()
	s.spawner.Stop()
	w.Metrics().Bools.Get("game.over").Store(true)
	w.Sound().Play(engine.CueGameOverPrev, 0)
	w.Sound().Play(engine.CueGameOver, 0)
	if m, ok := w.Sound().(musicPlayer); ok {
		m.StopMusic()
	}

	if err := s.opts.Recorder.WriteSummary(telemetry.Summarize(s.id, s.seed, w)); err != nil {
		logger.Log.WithError(err).Warn("telemetry summary failed")
	}
	logger.Log.WithFields(logrus.Fields{
		"session":  s.id,
		"survived": sum.SurvivalSeconds,
		"food":     sum.FoodCollected,
		"score":    sum.Score,
	}).Info("game over")
}

func (s *Session) recordSnapshot() {
	if err := s.opts.Recorder.WriteSnapshot(telemetry.Capture(s.id, s.world, s.inv)); err != nil {
		logger.Log.WithError(err).Warn("telemetry snapshot failed")
	}
}

// Step runs one fixed step: the clock advances, due tasks fire, then the world updates
// Nothing happens while paused or after game over
func (s *Session) Step(dt time.Duration) {
	if s.paused || s.world.State().Over() {
		return
	}
	s.clock.Advance(dt)
	s.world.Scheduler().RunDue(s.clock.Now())
	if s.world.State().Over() {
		return
	}
	s.world.Update(dt)
}

// Advance feeds wall-clock time through the frame limiter and runs the due steps
// Returns the number of steps run
func (s *Session) Advance(elapsed time.Duration) int {
	if s.paused || s.world.State().Over() {
		s.limiter.Reset()
		return 0
	}
	n := s.limiter.Advance(elapsed)
	for i := 0; i < n; i++ {
		s.Step(s.limiter.Interval())
	}
	return n
}

// MoveTo sends the player toward cursor, capped along the click direction and snapped to a cell center
func (s *Session) MoveTo(cursor vmath.Vec) error {
	if err := s.ready(); err != nil {
		return err
	}
	s.startMusic()
	limit := float64(s.opts.Tuning.Player.MoveCapCells) * parameter.CellSize
	target := vmath.SnapToCenter(vmath.ClampDistance(s.player.Position, cursor, limit))
	s.pc.MoveTo(target)
	s.world.Sound().Play(engine.CuePlayerMove, 0)
	return nil
}

// SelectSlot toggles slot i; returns whether a slot is selected afterwards
func (s *Session) SelectSlot(i int) bool {
	if s.ready() != nil {
		_, ok := s.inv.Selected()
		return ok
	}
	s.startMusic()
	return s.inv.SelectSlot(i)
}

// UseSelected uses the selected item aimed at cursor; without a cursor it aims at the player
func (s *Session) UseSelected(cursor vmath.Vec, hasCursor bool) error {
	if err := s.ready(); err != nil {
		return err
	}
	s.startMusic()
	if !hasCursor {
		cursor = s.player.Position
	}
	return s.inv.UseSelected(s.world, cursor)
}

// TogglePause flips the pause flag; returns the new value
func (s *Session) TogglePause() bool {
	if s.world.State().Over() {
		return s.paused
	}
	s.paused = !s.paused
	s.limiter.Reset()
	return s.paused
}

// Restart discards the current world and builds a fresh one on the same clock
func (s *Session) Restart() error {
	s.spawner.Stop()
	s.world.Scheduler().Clear()
	old := s.id
	if err := s.build(); err != nil {
		return err
	}
	logger.Log.WithFields(logrus.Fields{"previous": old, "session": s.id}).Info("session restarted")
	return nil
}

func (s *Session) ready() error {
	if s.world.State().Over() {
		return ErrGameOver
	}
	if s.paused {
		return ErrPaused
	}
	return nil
}

func (s *Session) startMusic() {
	if s.musicStarted {
		return
	}
	if m, ok := s.world.Sound().(musicPlayer); ok {
		m.StartMusic()
	}
	s.musicStarted = true
}

func (s *Session) ID() string                      { return s.id }
func (s *Session) Seed() uint64                    { return s.seed }
func (s *Session) Paused() bool                    { return s.paused }
func (s *Session) Over() bool                      { return s.world.State().Over() }
func (s *Session) Summary() engine.Summary         { return s.world.State().Summary() }
func (s *Session) World() *engine.World            { return s.world }
func (s *Session) Inventory() *inventory.Inventory { return s.inv }
func (s *Session) Player() *component.Player       { return s.pc }
func (s *Session) Camera() vmath.Vec               { return s.camera.Center }

// BoostRemaining returns the player's remaining speed boost
func (s *Session) BoostRemaining() time.Duration {
	return s.pc.BoostRemaining(s.clock.Now())
}
