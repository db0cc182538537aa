package parameter

import "time"

// Simulation cadence
const (
	// FrameRate is the target simulation rate in steps per second
	FrameRate = 60

	// FrameInterval is the fixed simulation step derived from FrameRate
	FrameInterval = time.Second / FrameRate

	// MaxStepsPerAdvance bounds catch-up steps after a long stall (window drag, debugger)
	MaxStepsPerAdvance = 5
)

// Grid
const (
	// CellSize is the edge length of one grid cell in world units
	CellSize = 50.0
)
