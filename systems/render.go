package systems

import (
	"image/color"

	"github.com/automoto/pong/components"
	cfg "github.com/automoto/pong/config"
	"github.com/automoto/pong/fonts"
	"github.com/automoto/pong/shared/gamemath"
	"github.com/automoto/pong/systems/factory"
	"github.com/automoto/pong/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawField renders the background and the dashed centre line.
func DrawField(ecs *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.UI.BackgroundColor)

	field := factory.GetField(ecs)
	x, _ := field.ToScreen(gamemath.Vec2{})
	h := float32(2 * field.HalfHeight)
	for y := float32(0); y < h; y += 16 {
		vector.FillRect(screen, float32(x)-1, y, 2, 8, cfg.UI.FieldColor, false)
	}
}

// DrawColliders renders walls, obstacles and paddles.
func DrawColliders(ecs *ecs.ECS, screen *ebiten.Image) {
	field := factory.GetField(ecs)

	tags.Wall.Each(ecs.World, func(e *donburi.Entry) {
		fillBox(screen, field, components.Collider.Get(e), cfg.UI.WallColor)
	})
	tags.Obstacle.Each(ecs.World, func(e *donburi.Entry) {
		fillBox(screen, field, components.Collider.Get(e), cfg.UI.ObstacleColor)
	})
	tags.Paddle.Each(ecs.World, func(e *donburi.Entry) {
		side := components.Paddle.Get(e).Side
		fillBox(screen, field, components.Collider.Get(e), cfg.UI.PaddleColors[side])
	})
}

// DrawBall renders the ball while it is in play.
func DrawBall(ecs *ecs.ECS, screen *ebiten.Image) {
	entry, ok := getBall(ecs)
	if !ok {
		return
	}
	ball := components.Ball.Get(entry)
	if !ball.Visible {
		return
	}

	x, y := factory.GetField(ecs).ToScreen(ball.Position)
	vector.FillCircle(screen, float32(x), float32(y), float32(ball.Radius), cfg.UI.BallColor, true)
}

// DrawHelp renders each player's control keys above their paddle.
func DrawHelp(ecs *ecs.ECS, screen *ebiten.Image) {
	if !fonts.Loaded(fonts.Help) {
		return
	}
	face := fonts.Help.Get()
	field := factory.GetField(ecs)

	tags.Paddle.Each(ecs.World, func(e *donburi.Entry) {
		paddle := components.Paddle.Get(e)
		if paddle.Control == cfg.ControlAI {
			return
		}
		col := components.Collider.Get(e)
		x, _ := field.ToScreen(col.Center)

		help := cfg.UI.HelpText[paddle.Side]
		w := text.BoundString(face, help).Dx()
		text.Draw(screen, help, face, int(x)-w/2, 32, cfg.UI.HelpColor)
	})
}

// DrawPause renders the pause overlay.
func DrawPause(ecs *ecs.ECS, screen *ebiten.Image) {
	if !GetOrCreatePause(ecs).IsPaused {
		return
	}

	width := screen.Bounds().Dx()
	height := screen.Bounds().Dy()
	vector.FillRect(screen, 0, 0, float32(width), float32(height), cfg.BlackOverlay, false)

	if !fonts.Loaded(fonts.Paused) {
		return
	}
	face := fonts.Paused.Get()
	b := text.BoundString(face, cfg.UI.PausedText)
	text.Draw(screen, cfg.UI.PausedText, face, (width-b.Dx())/2, (height+b.Dy())/2, cfg.White)
}

// DrawDebug outlines every object in the collision space.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.DrawColliders {
		return
	}
	spaceEntry, ok := components.Space.First(ecs.World)
	if !ok {
		return
	}
	space := components.Space.Get(spaceEntry)
	margin := factory.GetField(ecs).Margin

	for _, obj := range space.Objects() {
		x := obj.X - margin
		y := obj.Y - margin

		// Determine color based on tags
		c := color.RGBA{0, 255, 255, 255} // Cyan default
		if obj.HasTags(tags.ResolvWall) || obj.HasTags(tags.ResolvObstacle) {
			c = color.RGBA{100, 100, 100, 255}
		} else if obj.HasTags(tags.ResolvPaddle) {
			c = color.RGBA{0, 0, 255, 255}
		} else if obj.HasTags(tags.ResolvGoalLeft) || obj.HasTags(tags.ResolvGoalRight) {
			c = color.RGBA{255, 0, 0, 255}
		} else if obj.HasTags(tags.ResolvBall) {
			c = color.RGBA{0, 255, 0, 255}
		}

		vector.StrokeRect(screen, float32(x), float32(y), float32(obj.W), float32(obj.H), 1, c, false)
	}
}

func fillBox(screen *ebiten.Image, field *components.FieldData, c *components.ColliderData, clr color.Color) {
	x, y := field.ToScreen(gamemath.V(c.Center.X-c.Half.X, c.Center.Y+c.Half.Y))
	vector.FillRect(screen, float32(x), float32(y), float32(2*c.Half.X), float32(2*c.Half.Y), clr, false)
}
