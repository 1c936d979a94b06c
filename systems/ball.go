package systems

import (
	"math"

	"github.com/automoto/pong/components"
	cfg "github.com/automoto/pong/config"
	"github.com/automoto/pong/logger"
	"github.com/automoto/pong/shared/gamemath"
	"github.com/automoto/pong/systems/factory"
	"github.com/automoto/pong/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// maxSubSteps bounds the work per frame. It also fixes the speed ceiling,
// Radius*maxSubSteps*TPS (about 27600 px/s at default sizes), above which a
// sub-step would outgrow the radius. UpdateBall clamps the ball to it.
const maxSubSteps = 64

var contactTags = []string{
	tags.ResolvPaddle,
	tags.ResolvWall,
	tags.ResolvObstacle,
	tags.ResolvGoalLeft,
	tags.ResolvGoalRight,
}

// UpdateBall advances the ball one tick. The move is split into sub-steps no
// longer than the ball radius so it cannot pass through a paddle or wall.
func UpdateBall(ecs *ecs.ECS) {
	entry, ok := getBall(ecs)
	if !ok {
		return
	}
	ball := components.Ball.Get(entry)
	if !ball.Visible {
		return
	}

	dt := 1.0 / float64(cfg.C.TPS)
	steps := 1
	if ball.Radius > 0 {
		ceiling := ball.Radius * maxSubSteps / dt
		if speed := ball.CurrentSpeed(); speed > ceiling {
			logger.L().Debugw("ball speed clamped", "speed", speed, "ceiling", ceiling)
			ball.Velocity = ball.Velocity.Scale(ceiling / speed)
		}
		steps = int(math.Ceil(ball.CurrentSpeed() * dt / ball.Radius))
	}
	steps = max(1, min(steps, maxSubSteps))

	h := dt / float64(steps)
	for i := 0; i < steps; i++ {
		ball.Position = ball.Position.Add(ball.Velocity.Scale(h))
		syncBall(ecs, entry)
		resolveContacts(ecs, entry)

		if !ball.Visible {
			return
		}
	}

	recoverEscapedBall(ecs, entry)
}

// resolveContacts finds every collider overlapping the ball, pushes the ball
// out of solids and fires OnContact for the ones it was not already touching.
func resolveContacts(ecs *ecs.ECS, entry *donburi.Entry) {
	ball := components.Ball.Get(entry)
	obj := components.Object.Get(entry).Object
	if obj == nil {
		return
	}

	touching := make(map[donburi.Entity]bool, len(ball.Touching))
	var entered []components.Contact

	if check := obj.Check(0, 0, contactTags...); check != nil {
		for _, o := range check.Objects {
			other, ok := o.Data.(*donburi.Entry)
			if !ok || !other.Valid() || !other.HasComponent(components.Collider) {
				continue
			}
			col := components.Collider.Get(other)

			hit, ok := gamemath.CircleRectContact(ball.Position, ball.Radius, col.Center, col.Half)
			if !ok {
				continue
			}
			touching[other.Entity()] = true

			if !col.Kind.IsTrigger() && hit.Penetration > 0 {
				ball.Position = ball.Position.Add(hit.Normal.Scale(hit.Penetration))
			}
			if ball.Touching[other.Entity()] {
				continue
			}
			entered = append(entered, components.Contact{
				Kind:   col.Kind,
				Point:  hit.Point,
				Normal: hit.Normal,
				Other:  other,
			})
		}
	}

	ball.Touching = touching
	syncBall(ecs, entry)

	for _, c := range entered {
		logger.L().Debugw("ball contact", "kind", c.Kind, "x", c.Point.X, "y", c.Point.Y)
		OnContact(ecs, entry, c)
		if !ball.Visible {
			return
		}
	}
}

// recoverEscapedBall handles a ball that left the collision space. Past a
// side it counts as a goal for that side; anywhere else it is re-served.
func recoverEscapedBall(ecs *ecs.ECS, entry *donburi.Entry) {
	ball := components.Ball.Get(entry)
	field := factory.GetField(ecs)

	limitX := field.HalfWidth + field.Margin
	limitY := field.HalfHeight + field.Margin
	switch {
	case ball.Position.X < -limitX:
		logger.L().Warnw("ball escaped past the left goal", "x", ball.Position.X)
		ScorePoint(ecs, cfg.PlayerRight)
	case ball.Position.X > limitX:
		logger.L().Warnw("ball escaped past the right goal", "x", ball.Position.X)
		ScorePoint(ecs, cfg.PlayerLeft)
	case math.Abs(ball.Position.Y) > limitY:
		logger.L().Warnw("ball escaped the field", "y", ball.Position.Y)
		ServeBall(ecs)
	}
}

// ResetBall puts the ball at the centre and serves it at base speed towards
// the chosen side with a small random vertical spread.
func ResetBall(ecs *ecs.ECS, towardRight bool) {
	entry, ok := getBall(ecs)
	if !ok {
		return
	}
	ball := components.Ball.Get(entry)

	dirX := -1.0
	if towardRight {
		dirX = 1
	}
	spread := cfg.Ball.ServeSpread
	dy := getRandom(ecs).Float64()*2*spread - spread
	dir, _ := gamemath.Normalize(gamemath.V(dirX, dy))

	ball.Position = gamemath.Vec2{}
	ball.Velocity = dir.Scale(ball.Speed)
	ball.Visible = true
	ball.Touching = map[donburi.Entity]bool{}
	syncBall(ecs, entry)

	if match := GetMatch(ecs); match != nil {
		match.Rallies = 0
	}
}

// ServeBall resets the ball towards a random side.
func ServeBall(ecs *ecs.ECS) {
	ResetBall(ecs, getRandom(ecs).Float64() > 0.5)
}

// hideBall stops the ball and hides it until the next serve.
func hideBall(ecs *ecs.ECS) {
	entry, ok := getBall(ecs)
	if !ok {
		return
	}
	ball := components.Ball.Get(entry)
	ball.Visible = false
	ball.Velocity = gamemath.Vec2{}
	ball.Position = gamemath.Vec2{}
	ball.Touching = map[donburi.Entity]bool{}
	syncBall(ecs, entry)
}

func syncBall(ecs *ecs.ECS, entry *donburi.Entry) {
	ball := components.Ball.Get(entry)
	syncObject(ecs, entry, ball.Position, gamemath.V(ball.Radius, ball.Radius))
}

func countRally(ecs *ecs.ECS) {
	if match := GetMatch(ecs); match != nil {
		match.Rallies++
	}
}
