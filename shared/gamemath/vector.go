// Package gamemath holds the 2D geometry used by the simulation. It has no
// dependencies on ebiten or the ECS so it can be tested in isolation.
package gamemath

import (
	"math"

	"github.com/kvartborg/vector"
)

// Vec2 is a 2D vector in field coordinates (+Y up).
type Vec2 struct {
	X, Y float64
}

// V returns a Vec2.
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

func (v Vec2) vec() vector.Vector {
	return vector.Vector{v.X, v.Y}
}

func fromVec(v vector.Vector) Vec2 {
	return Vec2{X: v.X(), Y: v.Y()}
}

func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

func (v Vec2) Sub(o Vec2) Vec2 {
	return fromVec(v.vec().Sub(o.vec()))
}

func (v Vec2) Scale(s float64) Vec2 {
	return fromVec(v.vec().Scale(s))
}

// Dot is the plain dot product. vector.Vector.Dot clamps to [-1, 1] and is
// only valid for unit vectors.
func (v Vec2) Dot(o Vec2) float64 {
	return v.X*o.X + v.Y*o.Y
}

func (v Vec2) Len() float64 {
	return v.vec().Magnitude()
}

// IsZero reports whether both components are exactly zero.
func (v Vec2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Normalize returns the unit vector of v. ok is false for a zero-length
// vector, in which case the zero vector is returned.
func Normalize(v Vec2) (Vec2, bool) {
	l := v.Len()
	if l == 0 || math.IsNaN(l) || math.IsInf(l, 0) {
		return Vec2{}, false
	}
	return Vec2{X: v.X / l, Y: v.Y / l}, true
}

// Reflect mirrors v about the plane with normal n: v - 2(v·n)n.
// n is expected to be unit length.
func Reflect(v, n Vec2) Vec2 {
	return v.Sub(n.Scale(2 * v.Dot(n)))
}

// Clamp limits x to [lo, hi].
func Clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// Sign returns -1 for negative x and +1 otherwise, so that Sign(0) picks a
// direction instead of collapsing a component to zero.
func Sign(x float64) float64 {
	if x < 0 {
		return -1
	}
	return 1
}

// SignOr returns the sign of x, or fallback when x is exactly zero.
func SignOr(x, fallback float64) float64 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return fallback
}
