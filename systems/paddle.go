package systems

import (
	"math"

	"github.com/automoto/pong/components"
	cfg "github.com/automoto/pong/config"
	"github.com/automoto/pong/shared/gamemath"
	"github.com/automoto/pong/systems/factory"
	"github.com/automoto/pong/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePaddles moves each paddle by its input and keeps it inside the field.
func UpdatePaddles(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)
	field := factory.GetField(ecs)
	dt := 1.0 / float64(cfg.C.TPS)

	var ball *components.BallData
	if entry, ok := getBall(ecs); ok {
		ball = components.Ball.Get(entry)
	}

	tags.Paddle.Each(ecs.World, func(e *donburi.Entry) {
		paddle := components.Paddle.Get(e)
		col := components.Collider.Get(e)

		paddle.Input = paddleInput(paddle, col, input, ball)
		col.Center.Y = ClampPaddleY(col.Center.Y+paddle.Input*paddle.Speed*dt, field.HalfHeight, col.Half.Y)
		syncObject(ecs, e, col.Center, col.Half)
	})
}

// ClampPaddleY keeps a paddle of half height paddleHalf fully inside a field
// of half height fieldHalf. A paddle taller than the field is centred.
func ClampPaddleY(y, fieldHalf, paddleHalf float64) float64 {
	lo, hi := -fieldHalf+paddleHalf, fieldHalf-paddleHalf
	if lo > hi {
		return 0
	}
	return gamemath.Clamp(y, lo, hi)
}

// paddleInput returns the vertical input in {-1, 0, 1}.
func paddleInput(p *components.PaddleData, col *components.ColliderData, input *components.InputData, ball *components.BallData) float64 {
	switch p.Control {
	case cfg.ControlHumanLeft:
		return axis(input, cfg.ActionLeftUp, cfg.ActionLeftDown)
	case cfg.ControlHumanRight:
		return axis(input, cfg.ActionRightUp, cfg.ActionRightDown)
	case cfg.ControlAI:
		return trackBall(col.Center.Y, ball)
	}
	return 0
}

func axis(input *components.InputData, up, down cfg.ActionID) float64 {
	v := 0.0
	if input.Action(up).Pressed {
		v++
	}
	if input.Action(down).Pressed {
		v--
	}
	return v
}

// trackBall follows the ball height, holding still inside the dead zone and
// while the ball is out of play.
func trackBall(y float64, ball *components.BallData) float64 {
	if ball == nil || !ball.Visible {
		return 0
	}
	diff := ball.Position.Y - y
	if math.Abs(diff) <= cfg.Paddle.AIDeadZone {
		return 0
	}
	return gamemath.Sign(diff)
}
