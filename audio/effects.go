package audio

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates a fixed-length raw wave
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a finite oscillator of the given wave shape
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{freq: freq, duration: rate.N(duration), wave: wave, rate: rate}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies linear attack and release to a finite stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
}

// NewEnvelope shapes s over duration with the given attack and release
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer:       s,
		attackSamples:  rate.N(attack),
		releaseSamples: rate.N(release),
		totalSamples:   rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	releaseStart := e.totalSamples - e.releaseSamples
	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}
		vol := 1.0
		if e.position < e.attackSamples {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		if e.releaseSamples > 0 && e.position >= releaseStart {
			vol = math.Max(0, float64(e.totalSamples-e.position)/float64(e.releaseSamples))
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales s linearly; zero or negative volume is silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// tone is a shaped note with a short click-free attack
func tone(rate beep.SampleRate, freq float64, d time.Duration, wave WaveType) beep.Streamer {
	return NewEnvelope(NewOscillator(freq, d, wave, rate), d, 5*time.Millisecond, d/3, rate)
}

// sine is a shaped pure tone from the beep generators
func sine(rate beep.SampleRate, freq float64, d time.Duration) beep.Streamer {
	s, err := generators.SineTone(rate, freq)
	if err != nil {
		return tone(rate, freq, d, WaveSine)
	}
	return NewEnvelope(beep.Take(rate.N(d), s), d, 5*time.Millisecond, d/3, rate)
}

// arpeggio plays the notes back to back
func arpeggio(rate beep.SampleRate, step time.Duration, freqs ...float64) beep.Streamer {
	notes := make([]beep.Streamer, len(freqs))
	for i, f := range freqs {
		notes[i] = sine(rate, f, step)
	}
	return beep.Seq(notes...)
}

// glide sweeps a saw wave from one pitch to another with a slow vibrato
type glide struct {
	rate     beep.SampleRate
	from, to float64
	phase    float64
	position int
	total    int
}

func newGlide(rate beep.SampleRate, from, to float64, d time.Duration) beep.Streamer {
	return &glide{rate: rate, from: from, to: to, total: rate.N(d)}
}

func (g *glide) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if g.position >= g.total {
			return i, i > 0
		}
		p := float64(g.position) / float64(g.total)
		t := float64(g.position) / float64(g.rate)
		freq := g.from + (g.to-g.from)*p + 4*math.Sin(2*math.Pi*5*t)
		env := math.Sin(math.Pi * p)
		val := env * 2.0 * (g.phase - 0.5)

		samples[i][0] = val
		samples[i][1] = val
		g.phase += freq / float64(g.rate)
		g.phase -= math.Floor(g.phase)
		g.position++
	}
	return len(samples), true
}

func (g *glide) Err() error { return nil }

// rumble is decaying noise over a low sine, used for explosions and hits
type rumble struct {
	rate     beep.SampleRate
	freq     float64
	decay    float64
	position int
	total    int
}

func newRumble(rate beep.SampleRate, freq, decay float64, d time.Duration) beep.Streamer {
	return &rumble{rate: rate, freq: freq, decay: decay, total: rate.N(d)}
}

func (r *rumble) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if r.position >= r.total {
			return i, i > 0
		}
		t := float64(r.position) / float64(r.rate)
		env := math.Exp(-t * r.decay)
		val := env * (0.5*(rand.Float64()*2-1) + 0.5*math.Sin(2*math.Pi*r.freq*t))

		samples[i][0] = val
		samples[i][1] = val
		r.position++
	}
	return len(samples), true
}

func (r *rumble) Err() error { return nil }

// loopGenerator is the endless background groove: a kick every beat under a walking bass line
type loopGenerator struct {
	rate  beep.SampleRate
	pos   int
	beat  int
	notes []float64
}

// NewLoopGenerator creates the background music streamer; it never drains
func NewLoopGenerator(rate beep.SampleRate) beep.Streamer {
	return &loopGenerator{
		rate:  rate,
		beat:  rate.N(500 * time.Millisecond),
		notes: []float64{110, 130.81, 146.83, 130.81},
	}
}

func (g *loopGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	kickLen := g.rate.N(100 * time.Millisecond)
	for i := range samples {
		beatPos := g.pos % g.beat
		bar := (g.pos / g.beat) % len(g.notes)
		t := float64(beatPos) / float64(g.rate)

		kick := 0.0
		if beatPos < kickLen {
			env := 1.0 - float64(beatPos)/float64(kickLen)
			kick = 0.4 * env * math.Sin(2*math.Pi*60*(1+2*env)*t)
		}
		bass := 0.12 * math.Sin(2*math.Pi*g.notes[bar]*t)

		samples[i][0] = kick + bass
		samples[i][1] = kick + bass
		g.pos++
	}
	return len(samples), true
}

func (g *loopGenerator) Err() error { return nil }
