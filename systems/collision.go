package systems

import (
	"math"

	"github.com/automoto/pong/components"
	cfg "github.com/automoto/pong/config"
	"github.com/automoto/pong/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// OnContact applies the response for a contact the ball just entered.
// Solid contacts replace the ball velocity; goal contacts are reported to the
// match and leave the velocity alone.
func OnContact(ecs *ecs.ECS, ballEntry *donburi.Entry, c components.Contact) {
	ball := components.Ball.Get(ballEntry)

	switch c.Kind {
	case components.ContactPaddle:
		center, halfHeight, dirX := paddleGeometry(c.Other, ball)
		ball.Velocity = PaddleBounce(ball, c.Point, center, halfHeight, dirX)
		countRally(ecs)
		PlaySFX(ecs, cfg.SoundPaddle)
	case components.ContactWall:
		ball.Velocity = WallBounce(ball, c.Normal)
		PlaySFX(ecs, cfg.SoundWall)
	case components.ContactOther:
		ball.Velocity = OtherBounce(ball, c.Normal)
		PlaySFX(ecs, cfg.SoundWall)
	case components.ContactGoalLeft:
		ScorePoint(ecs, cfg.PlayerRight)
	case components.ContactGoalRight:
		ScorePoint(ecs, cfg.PlayerLeft)
	}
}

func paddleGeometry(e *donburi.Entry, ball *components.BallData) (center gamemath.Vec2, halfHeight, dirX float64) {
	if e == nil || !e.Valid() {
		// Unknown paddle: send the ball back towards the centre.
		return ball.Position, 0, -fieldSide(ball)
	}
	col := components.Collider.Get(e)
	dirX = -gamemath.Sign(col.Center.X)
	if e.HasComponent(components.Paddle) {
		dirX = components.Paddle.Get(e).Direction()
	}
	return col.Center, col.Half.Y, dirX
}

// PaddleBounce returns the velocity after hitting a paddle. The outgoing
// angle follows where the paddle was struck, the ball always leaves in dirX,
// and the speed grows by SpeedUp but never drops under MinSpeedRatio*Speed.
func PaddleBounce(b *components.BallData, point, paddleCenter gamemath.Vec2, halfHeight, dirX float64) gamemath.Vec2 {
	relativeY := 0.0
	if halfHeight > 0 {
		relativeY = gamemath.Clamp((point.Y-paddleCenter.Y)/halfHeight, -1, 1)
	}

	angle := relativeY * b.MaxBounceAngle
	out, ok := gamemath.Normalize(gamemath.V(math.Cos(angle)*dirX, math.Sin(angle)))
	if !ok {
		out = gamemath.V(dirX, 0)
	}

	newSpeed := math.Max(b.CurrentSpeed()*cfg.Ball.SpeedUp, b.Speed*cfg.Ball.MinSpeedRatio)
	return ApplyHorizontalFloor(out.Scale(newSpeed), newSpeed, b.MinHorizontalRatio, dirX)
}

// WallBounce reflects the full velocity about the wall normal and speeds it
// up. A rebound with an almost flat vertical component is nudged away from
// the wall so the ball cannot slide along it forever.
func WallBounce(b *components.BallData, normal gamemath.Vec2) gamemath.Vec2 {
	in := incoming(b)
	mag := in.Len()

	reflected := gamemath.Reflect(in, normal)
	if math.Abs(reflected.Y) < cfg.Ball.WallEpsilon {
		reflected.Y = cfg.Ball.WallNudge * gamemath.SignOr(normal.Y, 1)
	}

	dir, ok := gamemath.Normalize(reflected)
	if !ok {
		dir = gamemath.V(-fieldSide(b), 0)
	}
	return dir.Scale(mag * cfg.Ball.SpeedUp)
}

// OtherBounce reflects the direction of travel about the normal, speeds the
// ball up and applies the horizontal floor.
func OtherBounce(b *components.BallData, normal gamemath.Vec2) gamemath.Vec2 {
	in := incoming(b)
	mag := in.Len() * cfg.Ball.SpeedUp

	dir, _ := gamemath.Normalize(in)
	reflected := gamemath.Reflect(dir, normal).Scale(mag)
	return ApplyHorizontalFloor(reflected, mag, b.MinHorizontalRatio, -fieldSide(b))
}

// ApplyHorizontalFloor forces |vx| up to ratio*speed, keeping the total speed
// by recomputing vy. fallbackSign is used when vx is exactly zero.
func ApplyHorizontalFloor(v gamemath.Vec2, speed, ratio, fallbackSign float64) gamemath.Vec2 {
	minH := math.Abs(ratio * speed)
	if math.Abs(v.X) >= minH {
		return v
	}

	vx := gamemath.SignOr(v.X, gamemath.Sign(fallbackSign)) * minH
	rest := math.Max(0, speed*speed-vx*vx)
	return gamemath.V(vx, gamemath.Sign(v.Y)*math.Sqrt(rest))
}

// incoming returns the ball velocity, or a base-speed horizontal velocity
// towards the centre when the ball has stalled.
func incoming(b *components.BallData) gamemath.Vec2 {
	if b.CurrentSpeed() < cfg.Ball.StallSpeed {
		return gamemath.V(-fieldSide(b)*b.Speed, 0)
	}
	return b.Velocity
}

// fieldSide is +1 when the ball is on the right half (x >= 0), -1 otherwise.
func fieldSide(b *components.BallData) float64 {
	if b.Position.X >= 0 {
		return 1
	}
	return -1
}
