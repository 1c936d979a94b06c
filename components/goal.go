package components

import "github.com/yohamta/donburi"

// GoalData marks a trigger zone. Scorer is the player awarded a point when
// the ball enters it.
type GoalData struct {
	Scorer int
}

var Goal = donburi.NewComponentType[GoalData]()
