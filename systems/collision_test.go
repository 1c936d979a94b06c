package systems

import (
	"math"
	"testing"

	"github.com/automoto/pong/components"
	cfg "github.com/automoto/pong/config"
	"github.com/automoto/pong/shared/gamemath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const eps = 1e-6

func newBall(pos, vel gamemath.Vec2) *components.BallData {
	return &components.BallData{
		Position:           pos,
		Velocity:           vel,
		Speed:              cfg.Ball.Speed,
		MaxBounceAngle:     cfg.Ball.MaxBounceAngle,
		MinHorizontalRatio: cfg.Ball.MinHorizontalRatio,
		Radius:             cfg.Ball.Radius,
		Visible:            true,
	}
}

func TestPaddleBounceCentreHit(t *testing.T) {
	speed := cfg.Ball.Speed
	b := newBall(gamemath.V(270, 0), gamemath.V(speed, 0))

	v := PaddleBounce(b, gamemath.V(279, 0), gamemath.V(288, 0), cfg.Paddle.HalfHeight, -1)

	assert.InDelta(t, -speed*cfg.Ball.SpeedUp, v.X, eps)
	assert.InDelta(t, 0, v.Y, eps)
}

func TestPaddleBounceAngleFollowsHitPoint(t *testing.T) {
	b := newBall(gamemath.V(-270, 0), gamemath.V(-cfg.Ball.Speed, 0))
	half := cfg.Paddle.HalfHeight

	top := PaddleBounce(b, gamemath.V(-279, half), gamemath.V(-288, 0), half, 1)
	bottom := PaddleBounce(b, gamemath.V(-279, -half), gamemath.V(-288, 0), half, 1)
	beyond := PaddleBounce(b, gamemath.V(-279, 3*half), gamemath.V(-288, 0), half, 1)

	assert.Greater(t, top.X, 0.0)
	assert.Greater(t, top.Y, 0.0)
	assert.Less(t, bottom.Y, 0.0)
	assert.InDelta(t, cfg.Ball.MaxBounceAngle, math.Atan2(top.Y, top.X), eps)
	assert.InDelta(t, top.Y, beyond.Y, eps, "hit offset is clamped to the paddle edge")
}

func TestPaddleBounceSpeedFloor(t *testing.T) {
	half := cfg.Paddle.HalfHeight
	speeds := []float64{0, 1, cfg.Ball.Speed * 0.1, cfg.Ball.Speed, cfg.Ball.Speed * 3}
	offsets := []float64{-2, -1, -0.5, 0, 0.3, 1, 2}

	for _, s := range speeds {
		for _, off := range offsets {
			for _, dir := range []float64{-1, 1} {
				b := newBall(gamemath.Vec2{}, gamemath.V(-dir*s, 0))
				v := PaddleBounce(b, gamemath.V(0, off*half), gamemath.Vec2{}, half, dir)

				speed := v.Len()
				assert.GreaterOrEqual(t, speed, cfg.Ball.Speed*cfg.Ball.MinSpeedRatio-eps)
				assert.InDelta(t, math.Max(s*cfg.Ball.SpeedUp, cfg.Ball.Speed*cfg.Ball.MinSpeedRatio), speed, eps)
				assert.GreaterOrEqual(t, math.Abs(v.X), cfg.Ball.MinHorizontalRatio*speed-eps)
				assert.Equal(t, dir, gamemath.Sign(v.X))
			}
		}
	}
}

func TestPaddleBounceZeroHeightPaddle(t *testing.T) {
	b := newBall(gamemath.Vec2{}, gamemath.V(cfg.Ball.Speed, 0))

	v := PaddleBounce(b, gamemath.V(0, 10), gamemath.Vec2{}, 0, -1)

	assert.InDelta(t, -cfg.Ball.Speed*cfg.Ball.SpeedUp, v.X, eps)
	assert.InDelta(t, 0, v.Y, eps)
}

func TestWallBounceStraightUp(t *testing.T) {
	speed := cfg.Ball.Speed
	b := newBall(gamemath.V(0, 140), gamemath.V(0, speed))

	v := WallBounce(b, gamemath.V(0, -1))

	assert.InDelta(t, 0, v.X, eps)
	assert.InDelta(t, -speed*cfg.Ball.SpeedUp, v.Y, eps)
}

func TestWallBounceKeepsHorizontalAndSpeedsUp(t *testing.T) {
	in := gamemath.V(150, 90)
	b := newBall(gamemath.V(0, 140), in)

	v := WallBounce(b, gamemath.V(0, -1))

	assert.InDelta(t, in.Len()*cfg.Ball.SpeedUp, v.Len(), eps)
	assert.Less(t, v.Y, 0.0)
	assert.InDelta(t, in.X/in.Len(), v.X/v.Len(), eps)
}

func TestWallBounceNudgesFlatRebound(t *testing.T) {
	in := gamemath.V(cfg.Ball.Speed, 0)
	b := newBall(gamemath.V(0, 140), in)

	top := WallBounce(b, gamemath.V(0, -1))
	bottom := WallBounce(b, gamemath.V(0, 1))

	assert.Less(t, top.Y, 0.0)
	assert.Greater(t, bottom.Y, 0.0)
	assert.InDelta(t, in.Len()*cfg.Ball.SpeedUp, top.Len(), eps)
}

func TestWallBounceStalledBall(t *testing.T) {
	b := newBall(gamemath.V(10, 140), gamemath.Vec2{})

	v := WallBounce(b, gamemath.V(0, -1))

	assert.False(t, math.IsNaN(v.X) || math.IsNaN(v.Y))
	assert.InDelta(t, cfg.Ball.Speed*cfg.Ball.SpeedUp, v.Len(), eps)
	assert.Less(t, v.X, 0.0, "stalled ball heads back to the centre")
	assert.Less(t, v.Y, 0.0)
}

func TestOtherBounceAppliesFloor(t *testing.T) {
	speed := cfg.Ball.Speed
	b := newBall(gamemath.V(50, 20), gamemath.V(0, -speed))

	v := OtherBounce(b, gamemath.V(0, 1))

	want := speed * cfg.Ball.SpeedUp
	assert.InDelta(t, want, v.Len(), eps)
	assert.InDelta(t, -cfg.Ball.MinHorizontalRatio*want, v.X, eps)
	assert.Greater(t, v.Y, 0.0)
}

func TestOtherBounceReflects(t *testing.T) {
	in := gamemath.V(200, -40)
	b := newBall(gamemath.V(-50, 20), in)

	v := OtherBounce(b, gamemath.V(-1, 0))

	assert.InDelta(t, -in.X*cfg.Ball.SpeedUp, v.X, eps)
	assert.InDelta(t, in.Y*cfg.Ball.SpeedUp, v.Y, eps)
}

func TestApplyHorizontalFloor(t *testing.T) {
	tests := []struct {
		name     string
		v        gamemath.Vec2
		speed    float64
		fallback float64
		want     gamemath.Vec2
	}{
		{"already wide enough", gamemath.V(6, 8), 10, 1, gamemath.V(6, 8)},
		{"steep upward", gamemath.V(1, 9.95), 10, 1, gamemath.V(2.5, math.Sqrt(100-6.25))},
		{"steep downward left", gamemath.V(-1, -9.95), 10, 1, gamemath.V(-2.5, -math.Sqrt(100-6.25))},
		{"zero vx uses fallback", gamemath.V(0, -10), 10, -1, gamemath.V(-2.5, -math.Sqrt(100-6.25))},
		{"zero vector", gamemath.Vec2{}, 10, 1, gamemath.V(2.5, math.Sqrt(100-6.25))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ApplyHorizontalFloor(tt.v, tt.speed, 0.25, tt.fallback)
			assert.InDelta(t, tt.want.X, got.X, eps)
			assert.InDelta(t, tt.want.Y, got.Y, eps)
		})
	}
}

func TestApplyHorizontalFloorRatioAboveOne(t *testing.T) {
	got := ApplyHorizontalFloor(gamemath.V(1, 1), 10, 2, 1)

	assert.InDelta(t, 20, got.X, eps)
	assert.InDelta(t, 0, got.Y, eps, "vertical part is clamped to zero, never NaN")
}

// Scenario: a centred hit on the right paddle sends the ball straight back.
func TestBallHitsRightPaddleCentre(t *testing.T) {
	e, _ := newTestWorld(t)
	speed := cfg.Ball.Speed
	face := cfg.Paddle.OffsetX - cfg.Paddle.HalfWidth
	ball := placeBall(t, e, gamemath.V(face-cfg.Ball.Radius-1, 0), gamemath.V(speed, 0))

	UpdateBall(e)

	assert.InDelta(t, -speed*cfg.Ball.SpeedUp, ball.Velocity.X, eps)
	assert.InDelta(t, 0, ball.Velocity.Y, eps)
	assert.Equal(t, 1, GetMatch(e).Rallies)

	entry, ok := components.Audio.First(e.World)
	require.True(t, ok)
	assert.Contains(t, components.Audio.Get(entry).PendingSFX, cfg.SoundPaddle)
}

// Scenario: a vertical ball rebounds off the top wall.
func TestBallHitsTopWall(t *testing.T) {
	e, _ := newTestWorld(t)
	speed := cfg.Ball.Speed
	face := cfg.Playfield.HalfHeight - cfg.Playfield.WallInset - cfg.Playfield.WallThickness
	ball := placeBall(t, e, gamemath.V(0, face-cfg.Ball.Radius-1), gamemath.V(0, speed))

	UpdateBall(e)

	assert.InDelta(t, 0, ball.Velocity.X, eps)
	assert.InDelta(t, -speed*cfg.Ball.SpeedUp, ball.Velocity.Y, eps)
	assert.LessOrEqual(t, ball.Position.Y, face-cfg.Ball.Radius+eps)
}

func TestBallContactFiresOncePerTouch(t *testing.T) {
	e, _ := newTestWorld(t)
	face := cfg.Paddle.OffsetX - cfg.Paddle.HalfWidth
	ball := placeBall(t, e, gamemath.V(face-cfg.Ball.Radius-1, 0), gamemath.V(cfg.Ball.Speed, 0))

	for i := 0; i < 10; i++ {
		UpdateBall(e)
	}

	assert.Equal(t, 1, GetMatch(e).Rallies)
	assert.Less(t, ball.Velocity.X, 0.0)
}

func TestStalledBallAgainstWallRecovers(t *testing.T) {
	e, _ := newTestWorld(t)
	face := cfg.Playfield.HalfHeight - cfg.Playfield.WallInset - cfg.Playfield.WallThickness
	ball := placeBall(t, e, gamemath.V(0, face-3), gamemath.Vec2{})

	UpdateBall(e)

	assert.InDelta(t, cfg.Ball.Speed*cfg.Ball.SpeedUp, ball.Velocity.Len(), eps)
	assert.Less(t, ball.Velocity.Y, 0.0)
}

func TestBallBouncesOffObstacle(t *testing.T) {
	old := cfg.Playfield.Obstacles
	cfg.Playfield.Obstacles = []cfg.Rect{{X: 0, Y: 0, HalfW: 18, HalfH: 18}}
	defer func() { cfg.Playfield.Obstacles = old }()

	e, _ := newTestWorld(t)
	speed := cfg.Ball.Speed
	ball := placeBall(t, e, gamemath.V(-18-cfg.Ball.Radius-1, 0), gamemath.V(speed, 0))

	UpdateBall(e)

	assert.InDelta(t, -speed*cfg.Ball.SpeedUp, ball.Velocity.X, eps)
	assert.GreaterOrEqual(t, math.Abs(ball.Velocity.X), cfg.Ball.MinHorizontalRatio*ball.Velocity.Len()-eps)
}

func TestBallDiagonalIntoTopWallRebounds(t *testing.T) {
	e, _ := newTestWorld(t)
	face := cfg.Playfield.HalfHeight - cfg.Playfield.WallInset - cfg.Playfield.WallThickness
	in := gamemath.V(100, 150)
	ball := placeBall(t, e, gamemath.V(0, face-cfg.Ball.Radius-1), in)

	UpdateBall(e)

	assert.Less(t, ball.Velocity.Y, 0.0)
	assert.Greater(t, ball.Velocity.X, 0.0)
	assert.InDelta(t, in.Len()*cfg.Ball.SpeedUp, ball.Velocity.Len(), eps)

	for i := 0; i < 10; i++ {
		UpdateBall(e)
	}
	assert.Less(t, ball.Position.Y, face-cfg.Ball.Radius, "ball leaves the wall after the rebound")
}

func TestBallSpeedClampedToSubStepCeiling(t *testing.T) {
	e, _ := newTestWorld(t)
	face := cfg.Paddle.OffsetX - cfg.Paddle.HalfWidth
	ball := placeBall(t, e, gamemath.V(face-100, 0), gamemath.V(1e6, 0))
	ceiling := cfg.Ball.Radius * maxSubSteps * float64(cfg.C.TPS)

	UpdateBall(e)

	assert.Less(t, ball.Velocity.X, 0.0, "ball rebounds off the paddle")
	assert.Equal(t, 1, GetMatch(e).Rallies)
	assert.InEpsilon(t, ceiling*cfg.Ball.SpeedUp, ball.Velocity.Len(), 1e-9)
}
