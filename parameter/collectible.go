package parameter

import "time"

// Mantou (food)
const (
	MantouLifetime = 20 * time.Second
	MantouHeal     = 5

	// MantouScore is the score value of each collected mantou
	MantouScore = 10
)

// Bomb
const (
	BombLifetime = 15 * time.Second
	BombDamage   = 10

	// ExplosionFrames is the number of animation frames shown before removal
	ExplosionFrames        = 3
	ExplosionFrameDuration = 200 * time.Millisecond
)

// Pickups
const (
	WallHookLifetime   = 30 * time.Second
	HealthPotionLife   = 60 * time.Second
	HealthPotionHeal   = 20
	SpeedShoeLifetime  = 30 * time.Second
	MysteryBoxLifetime = 45 * time.Second
)
