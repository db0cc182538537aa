package parameter

// Camera
const (
	// CameraEasing is the fraction of the remaining offset closed per step
	CameraEasing = 0.05

	// ViewportItemCap is the number of items inside the viewport above which spawning pauses
	ViewportItemCap = 8

	// ViewportWidth and ViewportHeight are the spawn-throttle viewport in world units
	ViewportWidth  = 1600.0
	ViewportHeight = 1000.0

	// FogRadiusCells is the clear radius around the player before cells render dimmed
	FogRadiusCells = 12
)
