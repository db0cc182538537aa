package parameter

import "time"

// Wild cow
const (
	CowHealth = 100

	// CowSpeed is the movement per simulation step in world units
	CowSpeed = 2.0

	// CowMoveInterval is the period between patrol decisions
	CowMoveInterval = 3 * time.Second

	// CowPatrolRadius is the Chebyshev radius in cells around the spawn anchor
	CowPatrolRadius = 1

	CowMooInterval = 15 * time.Second
	CowMooRange    = 500.0
	CowMooMaxVol   = 0.8
	CowMooMinVol   = 0.1

	// CowContactDamage is the HP the player loses per contact step
	CowContactDamage = 50

	// CowContactWear is the health the cow loses per contact step
	CowContactWear = 5
)
