package components

import (
	"github.com/automoto/pong/shared/gamemath"
	"github.com/yohamta/donburi"
)

// FieldData is the playfield extent (singleton). The collision space is the
// field padded by Margin on every side, in screen orientation.
type FieldData struct {
	HalfWidth  float64
	HalfHeight float64
	Margin     float64
}

var Field = donburi.NewComponentType[FieldData]()

// ToSpace converts a field box (centre, half extents, +Y up) to the
// top-left rectangle resolv expects (+Y down).
func (f *FieldData) ToSpace(center, half gamemath.Vec2) (x, y, w, h float64) {
	x = center.X - half.X + f.HalfWidth + f.Margin
	y = f.HalfHeight + f.Margin - (center.Y + half.Y)
	return x, y, half.X * 2, half.Y * 2
}

// SpaceSize is the collision space size in pixels.
func (f *FieldData) SpaceSize() (w, h int) {
	return int(2 * (f.HalfWidth + f.Margin)), int(2 * (f.HalfHeight + f.Margin))
}

// ToScreen converts a field point to screen coordinates (no margin).
func (f *FieldData) ToScreen(p gamemath.Vec2) (x, y float64) {
	return p.X + f.HalfWidth, f.HalfHeight - p.Y
}
