package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/mantou/audio"
	"github.com/lixenwraith/mantou/config"
	"github.com/lixenwraith/mantou/engine"
	"github.com/lixenwraith/mantou/game"
	"github.com/lixenwraith/mantou/input"
	"github.com/lixenwraith/mantou/logger"
	"github.com/lixenwraith/mantou/parameter"
	"github.com/lixenwraith/mantou/render"
	"github.com/lixenwraith/mantou/telemetry"
)

var (
	configFlag = flag.String("config", "", "Settings file (yaml, toml or json)")
	seedFlag   = flag.Uint64("seed", 0, "Session seed, overrides settings; 0 keeps the configured seed")
	debugFlag  = flag.Bool("debug", false, "Log at debug level")
	muteFlag   = flag.Bool("mute", false, "Disable audio")
)

func main() {
	flag.Parse()
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "mantou: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	settings, err := config.LoadSettings(*configFlag)
	if err != nil {
		return err
	}
	if *debugFlag {
		settings.Log.Level = "debug"
	}
	if *seedFlag != 0 {
		settings.Game.Seed = *seedFlag
	}
	if *muteFlag {
		settings.Audio.Enabled = false
	}

	tuning, err := config.LoadTuning(settings.Game.Tuning)
	if err != nil {
		return err
	}

	logFile, err := openLog(settings.Log)
	if err != nil {
		return err
	}
	defer logFile.Close()

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("creating screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initializing screen: %w", err)
	}
	screen.EnableMouse()
	screen.HideCursor()

	// Panic recovery: restore the terminal before the trace is printed
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			logger.Log.WithField("panic", r).Error("crashed")
			fmt.Fprintf(os.Stderr, "\n\x1b[31mMANTOU CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()
	defer screen.Fini()

	var sound engine.SoundPlayer = engine.NopSound{}
	if settings.Audio.Enabled {
		player := audio.NewCuePlayer(settings.Audio.Volume)
		if err := player.Initialize(); err != nil {
			logger.Log.WithError(err).Warn("audio initialization failed, continuing without audio")
		} else {
			defer player.Cleanup()
			sound = player
		}
	}

	var recorder *telemetry.Recorder
	if settings.Telemetry.Enabled {
		dir := filepath.Join(settings.Telemetry.Dir, time.Now().Format("20060102-150405"))
		recorder, err = telemetry.NewRecorder(dir)
		if err != nil {
			logger.Log.WithError(err).Warn("telemetry disabled")
			recorder = nil
		}
		defer recorder.Close()
	}

	clock := engine.NewManualClock(time.Now())
	hud := render.NewHUD(clock)
	session, err := game.New(game.Options{
		Tuning:            tuning,
		Seed:              settings.Game.Seed,
		Clock:             clock,
		Sound:             sound,
		HUD:               hud,
		Recorder:          recorder,
		TelemetryInterval: settings.Telemetry.Interval,
	})
	if err != nil {
		return err
	}

	return loop(screen, session, hud, input.NewMachine(tuning.Inventory.Slots))
}

func openLog(s config.LogSettings) (*os.File, error) {
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating log directory: %w", err)
	}
	f, err := os.OpenFile(filepath.Join(s.Dir, "mantou.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}
	if err := logger.Setup(logger.Options{Level: s.Level, Format: s.Format, Output: f}); err != nil {
		f.Close()
		return nil, err
	}
	return f, nil
}

// loop owns the session: terminal events and frame ticks are both handled on this goroutine
func loop(screen tcell.Screen, session *game.Session, hud *render.HUD, machine *input.Machine) error {
	view := render.NewView(screen)

	eventChan := make(chan tcell.Event, 256)
	go func() {
		for {
			ev := screen.PollEvent()
			// nil after Fini
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	ticker := time.NewTicker(parameter.FrameInterval)
	defer ticker.Stop()
	last := time.Now()

	for {
		select {
		case ev := <-eventChan:
			if !handle(machine.Translate(ev), session, view, screen) {
				logger.Log.WithFields(logrus.Fields{
					"session": session.ID(),
					"over":    session.Over(),
				}).Info("quit")
				return nil
			}

		case now := <-ticker.C:
			session.Advance(now.Sub(last))
			last = now
			draw(view, session, hud)
		}
	}
}

// handle applies one intent; returns false to quit
func handle(in input.Intent, session *game.Session, view *render.View, screen tcell.Screen) bool {
	var err error
	switch in.Type {
	case input.IntentQuit:
		return false
	case input.IntentResize:
		screen.Sync()
	case input.IntentTogglePause:
		session.TogglePause()
	case input.IntentRestart:
		if session.Over() {
			err = session.Restart()
		}
	case input.IntentSelectSlot:
		session.SelectSlot(in.Slot)
	case input.IntentMove:
		if in.HasPos && view.InMap(in.X, in.Y) {
			err = session.MoveTo(view.ScreenToWorld(in.X, in.Y, session.Camera()))
		}
	case input.IntentUse:
		if in.HasPos && view.InMap(in.X, in.Y) {
			err = session.UseSelected(view.ScreenToWorld(in.X, in.Y, session.Camera()), true)
		} else {
			err = session.UseSelected(session.World().Player().Position, false)
		}
	}

	switch {
	case err == nil, errors.Is(err, game.ErrGameOver), errors.Is(err, game.ErrPaused):
	default:
		logger.Log.WithError(err).WithField("intent", in.Type.String()).Debug("intent rejected")
	}
	return true
}

func draw(view *render.View, session *game.Session, hud *render.HUD) {
	selected, ok := session.Inventory().Selected()
	if !ok {
		selected = -1
	}
	view.Draw(render.Frame{
		World:    session.World(),
		Camera:   session.Camera(),
		Slots:    session.Inventory().Slots(),
		Selected: selected,
		Boost:    session.BoostRemaining(),
		Paused:   session.Paused(),
		HUD:      hud.Snapshot(),
	})
}
