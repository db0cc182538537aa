package engine

import "github.com/lixenwraith/mantou/vmath"

// Sound cue names understood by the audio layer
const (
	CueMantouEat    = "mantou_eat"
	CueBombExplode  = "bomb_explode"
	CueHookPickup   = "hook_pickup"
	CueHookLaunch   = "hook_launch"
	CuePotionDrink  = "potion_drink"
	CueShoePickup   = "shoe_pickup"
	CueBoxPickup    = "box_pickup"
	CueBoxOpen      = "box_open"
	CueCowMoo       = "cow_moo"
	CueCowHit       = "cow_hit"
	CueItemDenied   = "item_denied"
	CuePlayerMove   = "player_move"
	CueGameOverPrev = "game_over_prev"
	CueGameOver     = "game_over"
)

// Floating text colors
const (
	ColorHeal   = "#44ff44"
	ColorDamage = "#ff4444"
	ColorPickup = "#ffd700"
	ColorBoost  = "#00ccff"
	ColorDenied = "#ff8800"
	ColorInfo   = "#ffffff"
)

// SoundPlayer plays named cues; volume <= 0 selects the cue's default
// Implementations must not block and must ignore unknown cues
type SoundPlayer interface {
	Play(cue string, volume float64)
}

// HUD receives push-only display updates
type HUD interface {
	SetHP(hp int)
	SetFoodCollected(n int)
	SetFoodOnField(n int)
	SetCoords(c vmath.Cell)
	FloatingText(text, color string)
	GameOver(s Summary)
}

// NopSound discards cues
type NopSound struct{}

func (NopSound) Play(string, float64) {}

// NopHUD discards display updates
type NopHUD struct{}

func (NopHUD) SetHP(int) {}
func (NopHUD) SetFoodCollected(int) {}
func (NopHUD) SetFoodOnField(int) {}
func (NopHUD) SetCoords(vmath.Cell) {}
func (NopHUD) FloatingText(string, string) {}
func (NopHUD) GameOver(Summary) {}
