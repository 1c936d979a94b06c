package factory

import (
	"github.com/automoto/pong/archetypes"
	"github.com/automoto/pong/components"
	cfg "github.com/automoto/pong/config"
	"github.com/automoto/pong/shared/gamemath"
	"github.com/automoto/pong/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateBall creates the ball at the field centre, at rest and visible.
// The first serve is issued by the match.
func CreateBall(ecs *ecs.ECS) *donburi.Entry {
	ball := archetypes.Ball.Spawn(ecs)

	components.Ball.SetValue(ball, components.BallData{
		Speed:              cfg.Ball.Speed,
		MaxBounceAngle:     cfg.Ball.MaxBounceAngle,
		MinHorizontalRatio: cfg.Ball.MinHorizontalRatio,
		Radius:             cfg.Ball.Radius,
		Visible:            true,
		Touching:           map[donburi.Entity]bool{},
	})

	r := cfg.Ball.Radius
	addToSpace(ecs, ball, components.ColliderData{Half: gamemath.V(r, r)}, tags.ResolvBall)
	return ball
}
