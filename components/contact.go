package components

import (
	"fmt"

	"github.com/automoto/pong/shared/gamemath"
	"github.com/yohamta/donburi"
)

// ContactKind classifies what the ball touched.
type ContactKind int

const (
	ContactPaddle ContactKind = iota
	ContactWall
	ContactOther
	ContactGoalLeft
	ContactGoalRight
)

func (k ContactKind) String() string {
	switch k {
	case ContactPaddle:
		return "Paddle"
	case ContactWall:
		return "Wall"
	case ContactOther:
		return "Other"
	case ContactGoalLeft:
		return "GoalLeft"
	case ContactGoalRight:
		return "GoalRight"
	}
	return fmt.Sprintf("ContactKind(%d)", int(k))
}

// IsTrigger reports whether the kind is a trigger zone rather than a solid.
func (k ContactKind) IsTrigger() bool {
	return k == ContactGoalLeft || k == ContactGoalRight
}

// Contact is a single ball contact event.
type Contact struct {
	Kind   ContactKind
	Point  gamemath.Vec2
	Normal gamemath.Vec2 // unit, pointing from the other object towards the ball
	Other  *donburi.Entry
}

// ColliderData is the static or kinematic box the ball can touch.
type ColliderData struct {
	Kind   ContactKind
	Center gamemath.Vec2
	Half   gamemath.Vec2
}

var Collider = donburi.NewComponentType[ColliderData]()
