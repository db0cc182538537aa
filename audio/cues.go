package audio

import (
	"time"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/mantou/engine"
)

// recipe builds a fresh streamer for one playback of a cue
type recipe func(rate beep.SampleRate) beep.Streamer

// cue pairs a recipe with its start delay and base gain
type cue struct {
	build recipe
	delay time.Duration
	gain  float64
}

// GameOverDelay separates the game_over cue from game_over_prev
const GameOverDelay = 2 * time.Second

func defaultCues() map[string]cue {
	return map[string]cue{
		engine.CueMantouEat: {gain: 0.6, build: func(r beep.SampleRate) beep.Streamer {
			return arpeggio(r, 60*time.Millisecond, 600, 900)
		}},
		engine.CueBombExplode: {gain: 0.9, build: func(r beep.SampleRate) beep.Streamer {
			return newRumble(r, 55, 7, 600*time.Millisecond)
		}},
		engine.CueHookPickup: {gain: 0.5, build: func(r beep.SampleRate) beep.Streamer {
			return arpeggio(r, 80*time.Millisecond, 880, 1320)
		}},
		engine.CueHookLaunch: {gain: 0.5, build: func(r beep.SampleRate) beep.Streamer {
			return beep.Seq(
				tone(r, 300, 60*time.Millisecond, WaveSquare),
				tone(r, 450, 60*time.Millisecond, WaveSquare),
			)
		}},
		engine.CuePotionDrink: {gain: 0.5, build: func(r beep.SampleRate) beep.Streamer {
			return arpeggio(r, 80*time.Millisecond, 500, 700, 900)
		}},
		engine.CueShoePickup: {gain: 0.5, build: func(r beep.SampleRate) beep.Streamer {
			return arpeggio(r, 70*time.Millisecond, 1000, 1500, 2000)
		}},
		engine.CueBoxPickup: {gain: 0.5, build: func(r beep.SampleRate) beep.Streamer {
			return arpeggio(r, 80*time.Millisecond, 660, 990)
		}},
		engine.CueBoxOpen: {gain: 0.6, build: func(r beep.SampleRate) beep.Streamer {
			return arpeggio(r, 70*time.Millisecond, 523.25, 659.25, 783.99, 1046.5)
		}},
		engine.CueCowMoo: {gain: 0.7, build: func(r beep.SampleRate) beep.Streamer {
			return newGlide(r, 140, 100, 900*time.Millisecond)
		}},
		engine.CueCowHit: {gain: 0.8, build: func(r beep.SampleRate) beep.Streamer {
			return beep.Mix(
				newVolume(tone(r, 90, 200*time.Millisecond, WaveSquare), 0.5),
				newVolume(newRumble(r, 70, 12, 200*time.Millisecond), 0.5),
			)
		}},
		engine.CueItemDenied: {gain: 0.4, build: func(r beep.SampleRate) beep.Streamer {
			return tone(r, 120, 150*time.Millisecond, WaveSaw)
		}},
		engine.CuePlayerMove: {gain: 0.2, build: func(r beep.SampleRate) beep.Streamer {
			return tone(r, 1200, 20*time.Millisecond, WaveSine)
		}},
		engine.CueGameOverPrev: {gain: 0.7, build: func(r beep.SampleRate) beep.Streamer {
			return arpeggio(r, 150*time.Millisecond, 440, 330, 220)
		}},
		engine.CueGameOver: {gain: 0.8, delay: GameOverDelay, build: func(r beep.SampleRate) beep.Streamer {
			return tone(r, 110, time.Second, WaveSaw)
		}},
	}
}
