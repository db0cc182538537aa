package system

import (
	"time"

	"github.com/lixenwraith/mantou/engine"
	"github.com/lixenwraith/mantou/parameter"
	"github.com/lixenwraith/mantou/vmath"
)

// CameraSystem eases the viewport toward the player each step
// Its rectangle is also the viewport used by the spawn throttle
type CameraSystem struct {
	Center        vmath.Vec
	Width, Height float64
	easing        float64
}

// NewCameraSystem creates a camera of the given world-unit size
func NewCameraSystem(width, height float64) *CameraSystem {
	return &CameraSystem{Width: width, Height: height, easing: parameter.CameraEasing}
}

func (s *CameraSystem) Name() string { return "camera" }

func (s *CameraSystem) Priority() int { return parameter.PriorityCamera }

func (s *CameraSystem) Update(w *engine.World, _ time.Duration) {
	player := w.Player()
	if player == nil {
		return
	}
	s.Center = vmath.Lerp(s.Center, player.Position, s.easing)
}

// SnapTo centers the camera immediately
func (s *CameraSystem) SnapTo(p vmath.Vec) { s.Center = p }

// Contains reports whether p is inside the viewport
func (s *CameraSystem) Contains(p vmath.Vec) bool {
	return p.X >= s.Center.X-s.Width/2 && p.X <= s.Center.X+s.Width/2 &&
		p.Y >= s.Center.Y-s.Height/2 && p.Y <= s.Center.Y+s.Height/2
}

// CountInView returns the number of active entities other than the player inside the viewport
func (s *CameraSystem) CountInView(w *engine.World) int {
	n := 0
	for _, e := range w.Entities() {
		if e.Active() && e.Kind() != engine.KindPlayer && s.Contains(e.Position) {
			n++
		}
	}
	return n
}
