package scenes

import (
	"fmt"
	"image/color"
	"sync"

	"github.com/automoto/pong/components"
	cfg "github.com/automoto/pong/config"
	"github.com/automoto/pong/display"
	"github.com/automoto/pong/logger"
	"github.com/automoto/pong/shared/leveldata"
	"github.com/automoto/pong/systems"
	"github.com/automoto/pong/systems/factory"
	"github.com/automoto/pong/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// PongScene runs one two-player match on a playfield layout.
type PongScene struct {
	ecs        *ecs.ECS
	scoreboard *ui.Scoreboard
	once       sync.Once
}

// Options configures a new PongScene.
type Options struct {
	Layout *leveldata.Layout // nil uses factory.DefaultLayout
	Seed   int64             // 0 picks a time-based seed
	Record components.RecordData
}

// NewPongScene builds the world, its systems and the HUD. The first ball is
// served on the first Update.
func NewPongScene(opts Options) (*PongScene, error) {
	scoreboard, err := ui.NewScoreboard()
	if err != nil {
		return nil, fmt.Errorf("build scoreboard: %w", err)
	}

	layout := opts.Layout
	if layout == nil {
		layout = factory.DefaultLayout()
	}

	ps := &PongScene{scoreboard: scoreboard}
	ps.ecs = ecs.NewECS(donburi.NewWorld())

	// Audio system (runs first, even when paused)
	ps.ecs.AddSystem(systems.UpdateAudio)

	// Systems that always run
	ps.ecs.AddSystem(systems.UpdateInput)
	ps.ecs.AddSystem(systems.UpdatePause)

	// Gameplay systems wrapped with the pause check
	ps.ecs.AddSystem(systems.WithPauseCheck(systems.UpdatePaddles))
	ps.ecs.AddSystem(systems.WithPauseCheck(systems.UpdateBall))
	ps.ecs.AddSystem(systems.WithPauseCheck(systems.UpdateMatch))

	// Add renderers
	ps.ecs.AddRenderer(cfg.Default, systems.DrawField)
	ps.ecs.AddRenderer(cfg.Default, systems.DrawColliders)
	ps.ecs.AddRenderer(cfg.Default, systems.DrawBall)
	ps.ecs.AddRenderer(cfg.Default, systems.DrawHelp)
	ps.ecs.AddRenderer(cfg.Default, systems.DrawDebug)
	ps.ecs.AddRenderer(cfg.HUD, ps.drawScoreboard)
	ps.ecs.AddRenderer(cfg.HUD, systems.DrawPause)

	factory.CreatePlayfield(ps.ecs, layout)
	factory.CreateMatch(ps.ecs, display.WithLogging(scoreboard, logger.L()), opts.Seed)
	systems.SetRecord(ps.ecs, opts.Record)

	return ps, nil
}

func (ps *PongScene) Update() {
	ps.once.Do(func() { systems.StartMatch(ps.ecs) })
	ps.ecs.Update()
	ps.scoreboard.Update()
}

func (ps *PongScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ps.ecs == nil {
		return
	}
	ps.ecs.Draw(screen)
}

func (ps *PongScene) drawScoreboard(_ *ecs.ECS, screen *ebiten.Image) {
	ps.scoreboard.Draw(screen)
}
