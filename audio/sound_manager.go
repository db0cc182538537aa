// Package audio synthesizes the game's sound cues and background loop
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// CuePlayer plays named cues through a shared mixer
// Every method is safe before Initialize and after Cleanup; they simply play nothing
type CuePlayer struct {
	mu          sync.Mutex
	rate        beep.SampleRate
	master      float64
	cues        map[string]cue
	mixer       *beep.Mixer
	music       *beep.Ctrl
	initialized bool
}

// NewCuePlayer creates a player with the given master volume in [0, 1]
func NewCuePlayer(master float64) *CuePlayer {
	return &CuePlayer{
		rate:   sampleRate,
		master: master,
		cues:   defaultCues(),
		mixer:  &beep.Mixer{},
	}
}

// Initialize opens the speaker; failure leaves the player silent
func (p *CuePlayer) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(p.rate, p.rate.N(100*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Cleanup silences everything
func (p *CuePlayer) Cleanup() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	if p.music != nil {
		p.music.Paused = true
	}
	p.mixer.Clear()
	speaker.Unlock()
	p.music = nil
	p.initialized = false
}

// Has reports whether cue is known
func (p *CuePlayer) Has(name string) bool {
	_, ok := p.cues[name]
	return ok
}

// Streamer builds one playback of the named cue at volume, including its start delay
// Volume zero means the cue's own gain; the master volume always applies
func (p *CuePlayer) Streamer(name string, volume float64) (beep.Streamer, bool) {
	c, ok := p.cues[name]
	if !ok {
		return nil, false
	}
	if volume <= 0 {
		volume = 1
	}
	s := newVolume(c.build(p.rate), c.gain*volume*p.master)
	if c.delay > 0 {
		s = beep.Seq(beep.Silence(p.rate.N(c.delay)), s)
	}
	return s, true
}

// Play implements engine.SoundPlayer; unknown cues are silent
func (p *CuePlayer) Play(name string, volume float64) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	s, ok := p.Streamer(name, volume)
	if !ok {
		return
	}
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// StartMusic starts the background loop unless it is already playing
func (p *CuePlayer) StartMusic() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized || (p.music != nil && !p.music.Paused) {
		return
	}
	speaker.Lock()
	if p.music != nil {
		p.music.Paused = false
	} else {
		p.music = &beep.Ctrl{Streamer: newVolume(NewLoopGenerator(p.rate), 0.4*p.master)}
		p.mixer.Add(p.music)
	}
	speaker.Unlock()
}

// StopMusic pauses the background loop
func (p *CuePlayer) StopMusic() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.music == nil {
		return
	}
	speaker.Lock()
	p.music.Paused = true
	speaker.Unlock()
}

// MusicPlaying reports whether the background loop is running
func (p *CuePlayer) MusicPlaying() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.music != nil && !p.music.Paused
}
