package components

import (
	"github.com/automoto/pong/shared/gamemath"
	"github.com/yohamta/donburi"
)

type BallData struct {
	Position gamemath.Vec2
	Velocity gamemath.Vec2

	Speed              float64 // base speed
	MaxBounceAngle     float64 // radians
	MinHorizontalRatio float64
	Radius             float64

	Visible bool

	// Colliders overlapped during the previous sub-step. Contacts only fire
	// for entities not in this set.
	Touching map[donburi.Entity]bool
}

var Ball = donburi.NewComponentType[BallData]()

// CurrentSpeed returns the velocity magnitude.
func (b *BallData) CurrentSpeed() float64 {
	return b.Velocity.Len()
}
