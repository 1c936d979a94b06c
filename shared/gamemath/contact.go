package gamemath

import "math"

// Contact is the result of a circle touching a box.
type Contact struct {
	Point       Vec2    // closest point on the box surface
	Normal      Vec2    // unit normal pointing from the box towards the circle
	Penetration float64 // overlap depth along Normal
}

// CircleRectContact tests a circle against an axis-aligned box given by its
// centre and half extents. When the circle centre lies inside the box the
// normal follows the axis of least penetration.
func CircleRectContact(center Vec2, radius float64, rect Vec2, half Vec2) (Contact, bool) {
	closest := Vec2{
		X: Clamp(center.X, rect.X-half.X, rect.X+half.X),
		Y: Clamp(center.Y, rect.Y-half.Y, rect.Y+half.Y),
	}
	d := center.Sub(closest)
	dist := d.Len()

	if dist > 0 {
		if dist > radius {
			return Contact{}, false
		}
		n, _ := Normalize(d)
		return Contact{Point: closest, Normal: n, Penetration: radius - dist}, true
	}

	// Centre inside the box: push out through the nearest face.
	dx := center.X - rect.X
	dy := center.Y - rect.Y
	overlapX := half.X - math.Abs(dx)
	overlapY := half.Y - math.Abs(dy)
	if overlapX < overlapY {
		sx := Sign(dx)
		return Contact{
			Point:       Vec2{X: rect.X + sx*half.X, Y: center.Y},
			Normal:      Vec2{X: sx},
			Penetration: overlapX + radius,
		}, true
	}
	sy := Sign(dy)
	return Contact{
		Point:       Vec2{X: center.X, Y: rect.Y + sy*half.Y},
		Normal:      Vec2{Y: sy},
		Penetration: overlapY + radius,
	}, true
}
