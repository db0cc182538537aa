package system

import (
	"math"
	"testing"
	"time"

	"github.com/lixenwraith/mantou/component"
	"github.com/lixenwraith/mantou/engine"
	"github.com/lixenwraith/mantou/parameter"
	"github.com/lixenwraith/mantou/vmath"
)

// TestCameraEasing verifies the camera closes a fixed fraction of the gap each step
func TestCameraEasing(t *testing.T) {
	h := newHarness(t, 100)
	cam := NewCameraSystem(parameter.ViewportWidth, parameter.ViewportHeight)
	cam.SnapTo(vmath.V(1025, 25))
	player := h.w.Player().Position

	cam.Update(h.w, time.Millisecond)
	want := 1025 - 1000*parameter.CameraEasing
	if math.Abs(cam.Center.X-want) > 1e-9 || cam.Center.Y != player.Y {
		t.Errorf("Expected center (%f, %f), got %v", want, player.Y, cam.Center)
	}
	for i := 0; i < 500; i++ {
		cam.Update(h.w, time.Millisecond)
	}
	if vmath.Distance(cam.Center, player) > 0.01 {
		t.Errorf("Expected camera to settle on the player, got %v", cam.Center)
	}
}

// TestCameraCountInView verifies only non-player entities inside the rectangle count
func TestCameraCountInView(t *testing.T) {
	h := newHarness(t, 100)
	cam := NewCameraSystem(parameter.ViewportWidth, parameter.ViewportHeight)
	cam.SnapTo(h.w.Player().Position)

	if _, err := component.Spawn(h.w, engine.KindMantou, vmath.Cell{X: 3, Y: 3}); err != nil {
		t.Fatal(err)
	}
	if _, err := component.Spawn(h.w, engine.KindBomb, vmath.Cell{X: 40}); err != nil {
		t.Fatal(err)
	}
	if n := cam.CountInView(h.w); n != 1 {
		t.Errorf("Expected 1 entity in view, got %d", n)
	}
	if cam.Contains(vmath.V(0, 600)) {
		t.Error("Expected point below the viewport to be outside")
	}
}

// TestCensusGauges verifies live counts are published each step
func TestCensusGauges(t *testing.T) {
	h := newHarness(t, 100)
	h.w.AddSystem(CensusSystem{})
	for i := 0; i < 3; i++ {
		if _, err := component.Spawn(h.w, engine.KindMantou, vmath.Cell{X: 5 + i}); err != nil {
			t.Fatal(err)
		}
	}
	h.run(parameter.FrameInterval)

	reg := h.w.Metrics()
	if reg.Int("entities.mantou") != 3 || reg.Int("entities.live") != 4 {
		t.Errorf("Expected 3 mantou and 4 live, got %d and %d", reg.Int("entities.mantou"), reg.Int("entities.live"))
	}
}
