package engine

import (
	"time"

	"github.com/lixenwraith/mantou/parameter"
)

// Summary is the end-of-run report
type Summary struct {
	SurvivalSeconds int
	FoodCollected   int
	Score           int
}

// GameState holds the session-wide mutable values: health, collected food and the terminal flag
// Every HP mutation clamps to [0, MaxHP] and checks for game over before returning
type GameState struct {
	clock     TimeProvider
	hud       HUD
	hp        int
	maxHP     int
	food      int
	drained   int
	startedAt time.Time
	endedAt   time.Time
	over      bool
	listeners []func(Summary)
}

// NewGameState creates a state starting now with the given health
func NewGameState(clock TimeProvider, initialHP, maxHP int) *GameState {
	s := &GameState{
		clock:     clock,
		hud:       NopHUD{},
		maxHP:     maxHP,
		startedAt: clock.Now(),
	}
	s.hp = s.clamp(initialHP)
	return s
}

// SetHUD routes change notifications to h
func (s *GameState) SetHUD(h HUD) {
	if h == nil {
		h = NopHUD{}
	}
	s.hud = h
}

func (s *GameState) HP() int    { return s.hp }
func (s *GameState) MaxHP() int { return s.maxHP }
func (s *GameState) Over() bool { return s.over }

// FoodCollected returns the number of mantou eaten this session
func (s *GameState) FoodCollected() int { return s.food }

// StartedAt returns the session start on the game clock
func (s *GameState) StartedAt() time.Time { return s.startedAt }

// Heal raises HP by n, clamped to MaxHP, and returns the amount actually applied
func (s *GameState) Heal(n int) int {
	if s.over || n <= 0 {
		return 0
	}
	before := s.hp
	s.hp = s.clamp(s.hp + n)
	s.hud.SetHP(s.hp)
	return s.hp - before
}

// Damage lowers HP by n, clamped to zero
// Returns true when this call ended the game
func (s *GameState) Damage(n int) bool {
	if s.over || n <= 0 {
		return false
	}
	s.hp = s.clamp(s.hp - n)
	s.hud.SetHP(s.hp)
	if s.hp <= 0 {
		return s.GameOver()
	}
	return false
}

// Drain applies passive HP loss, tracked apart from hits
func (s *GameState) Drain(n int) bool {
	if s.over || n <= 0 {
		return false
	}
	s.drained += n
	return s.Damage(n)
}

// Drained returns the total passive HP loss so far
func (s *GameState) Drained() int { return s.drained }

// AddFood records one eaten mantou
func (s *GameState) AddFood() {
	if s.over {
		return
	}
	s.food++
	s.hud.SetFoodCollected(s.food)
}

// OnGameOver registers fn to run once when the game ends
func (s *GameState) OnGameOver(fn func(Summary)) {
	s.listeners = append(s.listeners, fn)
}

// GameOver ends the session; only the first call has any effect
// Returns true on the call that performed the transition
func (s *GameState) GameOver() bool {
	if s.over {
		return false
	}
	s.over = true
	s.endedAt = s.clock.Now()
	sum := s.Summary()
	for _, fn := range s.listeners {
		fn(sum)
	}
	s.hud.GameOver(sum)
	return true
}

// Elapsed returns the time survived so far, frozen at game over
func (s *GameState) Elapsed() time.Duration {
	end := s.clock.Now()
	if s.over {
		end = s.endedAt
	}
	return end.Sub(s.startedAt)
}

// Summary computes the score: whole seconds survived plus ten per mantou
func (s *GameState) Summary() Summary {
	secs := int(s.Elapsed() / time.Second)
	return Summary{
		SurvivalSeconds: secs,
		FoodCollected:   s.food,
		Score:           secs + s.food*parameter.MantouScore,
	}
}

func (s *GameState) clamp(hp int) int {
	return min(max(hp, 0), s.maxHP)
}
