package factory

import (
	"io/fs"

	"github.com/automoto/pong/components"
	cfg "github.com/automoto/pong/config"
	"github.com/automoto/pong/shared/leveldata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DefaultLayout builds the playfield from configuration: a wall along the top
// and bottom edges, a goal just beyond each side, and the paddles inset from
// the goals.
func DefaultLayout() *leveldata.Layout {
	pf := cfg.Playfield
	pd := cfg.Paddle

	wallY := pf.HalfHeight - pf.WallInset - pf.WallThickness/2
	wallHalfW := pf.HalfWidth + pf.GoalDepth/2
	goalX := pf.HalfWidth + pf.GoalDepth/2

	layout := &leveldata.Layout{
		HalfWidth:  pf.HalfWidth,
		HalfHeight: pf.HalfHeight,
		Walls: []leveldata.Box{
			{X: 0, Y: wallY, HalfW: wallHalfW, HalfH: pf.WallThickness / 2},
			{X: 0, Y: -wallY, HalfW: wallHalfW, HalfH: pf.WallThickness / 2},
		},
		GoalLeft:  leveldata.Box{X: -goalX, Y: 0, HalfW: pf.GoalDepth / 2, HalfH: pf.HalfHeight},
		GoalRight: leveldata.Box{X: goalX, Y: 0, HalfW: pf.GoalDepth / 2, HalfH: pf.HalfHeight},
		Paddles: [2]leveldata.Box{
			{X: -pd.OffsetX, Y: 0, HalfW: pd.HalfWidth, HalfH: pd.HalfHeight},
			{X: pd.OffsetX, Y: 0, HalfW: pd.HalfWidth, HalfH: pd.HalfHeight},
		},
	}
	for _, o := range pf.Obstacles {
		layout.Obstacles = append(layout.Obstacles, leveldata.Box{X: o.X, Y: o.Y, HalfW: o.HalfW, HalfH: o.HalfH})
	}
	return layout
}

// LoadLayout reads a TMX playfield, falling back to DefaultLayout when path
// is empty.
func LoadLayout(fsys fs.FS, path string) (*leveldata.Layout, error) {
	if path == "" {
		return DefaultLayout(), nil
	}
	return leveldata.LoadPlayfield(fsys, path)
}

// CreatePlayfield creates the field, collision space and every static and
// kinematic object described by layout. It returns the ball entry.
func CreatePlayfield(ecs *ecs.ECS, layout *leveldata.Layout) *donburi.Entry {
	field := ecs.World.Entry(ecs.World.Create(components.Field))
	components.Field.SetValue(field, components.FieldData{
		HalfWidth:  layout.HalfWidth,
		HalfHeight: layout.HalfHeight,
		Margin:     float64(cfg.Playfield.SpaceMargin),
	})

	w, h := components.Field.Get(field).SpaceSize()
	CreateSpace(ecs, w, h, cfg.Playfield.CellSize, cfg.Playfield.CellSize)

	for _, wall := range layout.Walls {
		CreateWall(ecs, wall)
	}
	for _, o := range layout.Obstacles {
		CreateObstacle(ecs, o)
	}
	CreateGoal(ecs, layout.GoalLeft, components.ContactGoalLeft)
	CreateGoal(ecs, layout.GoalRight, components.ContactGoalRight)

	CreatePaddle(ecs, cfg.PlayerLeft, layout.Paddles[cfg.PlayerLeft], cfg.Paddle.LeftAI)
	CreatePaddle(ecs, cfg.PlayerRight, layout.Paddles[cfg.PlayerRight], cfg.Paddle.RightAI)

	return CreateBall(ecs)
}

// GetField returns the playfield singleton. Without one it returns the
// configured field so callers never see nil.
func GetField(ecs *ecs.ECS) *components.FieldData {
	if entry, ok := components.Field.First(ecs.World); ok {
		return components.Field.Get(entry)
	}
	return &components.FieldData{
		HalfWidth:  cfg.Playfield.HalfWidth,
		HalfHeight: cfg.Playfield.HalfHeight,
		Margin:     float64(cfg.Playfield.SpaceMargin),
	}
}
