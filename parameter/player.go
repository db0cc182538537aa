package parameter

import "time"

// Player
const (
	// PlayerID is the reserved registry key of the player entity
	PlayerID = "player"

	// PlayerSpeed is the base movement per simulation step in world units
	PlayerSpeed = 5.0

	// PlayerSpawnRangeCells bounds the random start cell on both axes
	PlayerSpawnRangeCells = 100

	// MoveCapCells limits how far a single move command can aim from the player
	MoveCapCells = 5
)

// Health
const (
	InitialHP = 100
	MaxHP     = 999999

	// HPDrainInterval is the period of the passive health loss
	HPDrainInterval = 1 * time.Second
	HPDrainAmount   = 1
)

// Knockback
const (
	KnockbackDuration = 500 * time.Millisecond
	KnockbackCells    = 3
)

// Speed boost
const (
	BoostMultiplier = 2.0
	BoostDuration   = 20 * time.Second
)
