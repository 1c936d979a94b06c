package factory

import (
	"github.com/automoto/pong/archetypes"
	"github.com/automoto/pong/components"
	cfg "github.com/automoto/pong/config"
	"github.com/automoto/pong/shared/leveldata"
	"github.com/automoto/pong/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePaddle creates the paddle for side (cfg.PlayerLeft/PlayerRight).
// ai switches the paddle to the ball-tracking controller.
func CreatePaddle(ecs *ecs.ECS, side int, box leveldata.Box, ai bool) *donburi.Entry {
	paddle := archetypes.Paddle.Spawn(ecs)

	control := cfg.ControlHumanLeft
	if side == cfg.PlayerRight {
		control = cfg.ControlHumanRight
	}
	if ai {
		control = cfg.ControlAI
	}

	components.Paddle.SetValue(paddle, components.PaddleData{
		Side:    side,
		Speed:   cfg.Paddle.Speed,
		Control: control,
	})

	c := colliderFor(components.ContactPaddle, box)
	components.Collider.SetValue(paddle, c)
	addToSpace(ecs, paddle, c, tags.ResolvPaddle)
	return paddle
}
