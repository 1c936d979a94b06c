package factory

import (
	"github.com/automoto/pong/archetypes"
	"github.com/automoto/pong/components"
	"github.com/automoto/pong/shared/gamemath"
	"github.com/automoto/pong/shared/leveldata"
	"github.com/automoto/pong/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateWall(ecs *ecs.ECS, box leveldata.Box) *donburi.Entry {
	wall := archetypes.Wall.Spawn(ecs)
	c := colliderFor(components.ContactWall, box)
	components.Collider.SetValue(wall, c)
	addToSpace(ecs, wall, c, tags.ResolvWall)
	return wall
}

// CreateObstacle creates a solid box the ball bounces off with the generic
// reflection response.
func CreateObstacle(ecs *ecs.ECS, box leveldata.Box) *donburi.Entry {
	obstacle := archetypes.Obstacle.Spawn(ecs)
	c := colliderFor(components.ContactOther, box)
	components.Collider.SetValue(obstacle, c)
	addToSpace(ecs, obstacle, c, tags.ResolvObstacle)
	return obstacle
}

// CreateGoal creates a trigger zone. Entering the left goal scores for the
// right player and vice versa.
func CreateGoal(ecs *ecs.ECS, box leveldata.Box, kind components.ContactKind) *donburi.Entry {
	goal := archetypes.Goal.Spawn(ecs)
	c := colliderFor(kind, box)
	components.Collider.SetValue(goal, c)

	resolvTag := tags.ResolvGoalLeft
	scorer := 1
	if kind == components.ContactGoalRight {
		resolvTag = tags.ResolvGoalRight
		scorer = 0
	}
	components.Goal.SetValue(goal, components.GoalData{Scorer: scorer})
	addToSpace(ecs, goal, c, resolvTag)
	return goal
}

func colliderFor(kind components.ContactKind, box leveldata.Box) components.ColliderData {
	return components.ColliderData{
		Kind:   kind,
		Center: gamemath.V(box.X, box.Y),
		Half:   gamemath.V(box.HalfW, box.HalfH),
	}
}
