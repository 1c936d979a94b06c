package tags

import "github.com/yohamta/donburi"

var (
	Ball     = donburi.NewTag().SetName("Ball")
	Paddle   = donburi.NewTag().SetName("Paddle")
	Wall     = donburi.NewTag().SetName("Wall")
	Goal     = donburi.NewTag().SetName("Goal")
	Obstacle = donburi.NewTag().SetName("Obstacle")
)

// Resolv tags for physics collision
const (
	ResolvBall      = "ball"
	ResolvPaddle    = "paddle"
	ResolvWall      = "wall"
	ResolvObstacle  = "obstacle"
	ResolvGoalLeft  = "goal_left"
	ResolvGoalRight = "goal_right"
)
