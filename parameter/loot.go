package parameter

import "time"

// Inventory
const (
	InventorySlots = 5
)

// Wall hook usage
const (
	// HookRangeCells is the Euclidean cell radius a hook can reach
	HookRangeCells = 8

	// HookRawCapCells clamps the raw cursor conversion before the range check
	HookRawCapCells = 100

	HookPullDuration = 300 * time.Millisecond
)

// Mystery box rewards
const (
	RewardWeightMantou = 30
	RewardWeightPotion = 15
	RewardWeightHook   = 20
	RewardWeightShoe   = 10
	RewardWeightBomb   = 25

	RewardCountMin = 1
	RewardCountMax = 3
)
