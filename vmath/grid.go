package vmath

import (
	"math"

	"github.com/lixenwraith/mantou/parameter"
)

// Cell is a discrete grid coordinate
type Cell struct {
	X, Y int
}

// CellOf returns the grid cell containing p
func CellOf(p Vec) Cell {
	return Cell{
		X: int(math.Floor(p.X / parameter.CellSize)),
		Y: int(math.Floor(p.Y / parameter.CellSize)),
	}
}

// Center returns the world position of the cell center
func (c Cell) Center() Vec {
	return Vec{
		X: (float64(c.X) + 0.5) * parameter.CellSize,
		Y: (float64(c.Y) + 0.5) * parameter.CellSize,
	}
}

// Add offsets the cell
func (c Cell) Add(dx, dy int) Cell { return Cell{X: c.X + dx, Y: c.Y + dy} }

// SnapToCenter returns the center of the cell containing p
func SnapToCenter(p Vec) Vec { return CellOf(p).Center() }

// CellDistance is the Euclidean distance between two cells in cell units
func CellDistance(a, b Cell) float64 {
	return math.Hypot(float64(a.X-b.X), float64(a.Y-b.Y))
}

// Chebyshev is the king-move distance between two cells
func Chebyshev(a, b Cell) int {
	return max(abs(a.X-b.X), abs(a.Y-b.Y))
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
