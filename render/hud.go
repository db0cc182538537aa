package render

import (
	"sync"
	"time"

	"github.com/lixenwraith/mantou/engine"
	"github.com/lixenwraith/mantou/vmath"
)

const (
	floatingTextLife = time.Second
	maxFloatingTexts = 6
)

// FloatingText is a short-lived message drawn above the player
type FloatingText struct {
	Text  string
	Color string
	Until time.Time
}

// HUDState is a copy of everything the HUD shows
type HUDState struct {
	HP      int
	Food    int
	OnField int
	Coords  vmath.Cell
	Texts   []FloatingText
	Summary *engine.Summary
}

// HUD collects game notifications for the view
// The simulation writes and the render loop reads, so every access is locked
type HUD struct {
	mu    sync.Mutex
	clock engine.TimeProvider
	state HUDState
}

// NewHUD creates a HUD that ages floating texts on clock
func NewHUD(clock engine.TimeProvider) *HUD {
	return &HUD{clock: clock}
}

func (h *HUD) SetHP(hp int) {
	h.mu.Lock()
	h.state.HP = hp
	h.mu.Unlock()
}

func (h *HUD) SetFoodCollected(n int) {
	h.mu.Lock()
	h.state.Food = n
	h.mu.Unlock()
}

func (h *HUD) SetFoodOnField(n int) {
	h.mu.Lock()
	h.state.OnField = n
	h.mu.Unlock()
}

func (h *HUD) SetCoords(c vmath.Cell) {
	h.mu.Lock()
	h.state.Coords = c
	h.mu.Unlock()
}

// FloatingText queues a message for one second, dropping the oldest past the cap
func (h *HUD) FloatingText(text, color string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.state.Texts = append(h.state.Texts, FloatingText{Text: text, Color: color, Until: h.clock.Now().Add(floatingTextLife)})
	if n := len(h.state.Texts); n > maxFloatingTexts {
		h.state.Texts = append(h.state.Texts[:0], h.state.Texts[n-maxFloatingTexts:]...)
	}
}

func (h *HUD) GameOver(sum engine.Summary) {
	h.mu.Lock()
	h.state.Summary = &sum
	h.mu.Unlock()
}

// Snapshot returns the current state with expired texts pruned
func (h *HUD) Snapshot() HUDState {
	h.mu.Lock()
	defer h.mu.Unlock()
	now := h.clock.Now()
	live := h.state.Texts[:0]
	for _, t := range h.state.Texts {
		if now.Before(t.Until) {
			live = append(live, t)
		}
	}
	h.state.Texts = live

	out := h.state
	out.Texts = append([]FloatingText(nil), live...)
	if h.state.Summary != nil {
		sum := *h.state.Summary
		out.Summary = &sum
	}
	return out
}

var _ engine.HUD = (*HUD)(nil)

// Reset clears everything shown, including the game-over summary
func (h *HUD) Reset() {
	h.mu.Lock()
	h.state = HUDState{}
	h.mu.Unlock()
}
