package vmath

import (
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/spatial/r2"
)

// Vec is a position or direction in world units
type Vec = r2.Vec

// V constructs a Vec
func V(x, y float64) Vec { return Vec{X: x, Y: y} }

func Add(a, b Vec) Vec             { return r2.Add(a, b) }
func Sub(a, b Vec) Vec             { return r2.Sub(a, b) }
func Scale(f float64, v Vec) Vec   { return r2.Scale(f, v) }
func Length(v Vec) float64         { return r2.Norm(v) }
func Distance(a, b Vec) float64    { return r2.Norm(r2.Sub(a, b)) }
func Angle(v Vec) float64          { return math.Atan2(v.Y, v.X) }
func Lerp(a, b Vec, t float64) Vec { return r2.Add(a, r2.Scale(t, r2.Sub(b, a))) }

// Direction returns the unit vector from a to b
// ok is false when the points coincide
func Direction(a, b Vec) (dir Vec, ok bool) {
	d := r2.Sub(b, a)
	if r2.Norm(d) == 0 {
		return Vec{}, false
	}
	return r2.Unit(d), true
}

// RandomUnit returns a uniformly distributed unit vector
func RandomUnit(rng *rand.Rand) Vec {
	a := rng.Float64() * 2 * math.Pi
	return Vec{X: math.Cos(a), Y: math.Sin(a)}
}

// StepToward moves from toward to by at most step
// arrived is true when the remaining distance was within step; next is then exactly to
func StepToward(from, to Vec, step float64) (next Vec, arrived bool) {
	d := r2.Sub(to, from)
	dist := r2.Norm(d)
	if dist <= step {
		return to, true
	}
	return r2.Add(from, r2.Scale(step/dist, d)), false
}

// ClampDistance limits to so that it lies at most limit from origin along the same direction
func ClampDistance(origin, to Vec, limit float64) Vec {
	d := r2.Sub(to, origin)
	dist := r2.Norm(d)
	if dist <= limit || dist == 0 {
		return to
	}
	return r2.Add(origin, r2.Scale(limit/dist, d))
}
