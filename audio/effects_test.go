package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"
)

// drain pulls s until it reports exhaustion, failing past limit samples
func drain(t *testing.T, s beep.Streamer, limit int) [][2]float64 {
	t.Helper()
	var out [][2]float64
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		out = append(out, buf[:n]...)
		if !ok {
			return out
		}
		if len(out) > limit {
			t.Fatalf("Streamer did not drain within %d samples", limit)
		}
	}
}

func peak(samples [][2]float64) float64 {
	p := 0.0
	for _, s := range samples {
		p = math.Max(p, math.Abs(s[0]))
	}
	return p
}

// TestOscillatorLength verifies an oscillator emits exactly its duration
func TestOscillatorLength(t *testing.T) {
	for _, wave := range []WaveType{WaveSine, WaveSquare, WaveSaw, WaveNoise} {
		got := drain(t, NewOscillator(440, 100*time.Millisecond, wave, sampleRate), sampleRate.N(time.Second))
		if len(got) != sampleRate.N(100*time.Millisecond) {
			t.Errorf("Wave %d: expected %d samples, got %d", wave, sampleRate.N(100*time.Millisecond), len(got))
		}
		if p := peak(got); p > 1 || p == 0 {
			t.Errorf("Wave %d: expected peak in (0, 1], got %f", wave, p)
		}
	}
}

// TestEnvelopeEdges verifies the envelope starts silent and ends silent
func TestEnvelopeEdges(t *testing.T) {
	d := 50 * time.Millisecond
	got := drain(t, NewEnvelope(NewOscillator(0, d, WaveSquare, sampleRate), d, 10*time.Millisecond, 10*time.Millisecond, sampleRate), sampleRate.N(time.Second))
	if got[0][0] != 0 {
		t.Errorf("Expected silent first sample, got %f", got[0][0])
	}
	mid := got[len(got)/2][0]
	if math.Abs(mid) != 1 {
		t.Errorf("Expected full level mid-note, got %f", mid)
	}
	if last := math.Abs(got[len(got)-1][0]); last > 0.01 {
		t.Errorf("Expected release to near silence, got %f", last)
	}
}

// TestLoopGeneratorNeverDrains verifies the background streamer keeps producing
func TestLoopGeneratorNeverDrains(t *testing.T) {
	g := NewLoopGenerator(sampleRate)
	buf := make([][2]float64, 4096)
	energy := 0.0
	for i := 0; i < 20; i++ {
		n, ok := g.Stream(buf)
		if !ok || n != len(buf) {
			t.Fatalf("Expected full buffer, got %d %v", n, ok)
		}
		energy += peak(buf[:n])
	}
	if energy == 0 {
		t.Error("Expected audible loop")
	}
}
