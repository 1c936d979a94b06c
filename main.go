package main

import (
	"flag"
	"image"
	"io/fs"
	"log"
	"os"
	"path/filepath"

	"github.com/automoto/pong/assets"
	"github.com/automoto/pong/config"
	"github.com/automoto/pong/fonts"
	"github.com/automoto/pong/logger"
	"github.com/automoto/pong/scenes"
	"github.com/automoto/pong/shared/leveldata"
	"github.com/automoto/pong/sound"
	"github.com/automoto/pong/systems"
	"github.com/automoto/pong/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap/zapcore"
)

// builtinLayout selects the embedded TMX playfield.
const builtinLayout = "builtin"

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

func NewGame(scene Scene) *Game {
	return &Game{
		bounds: image.Rectangle{},
		scene:  scene,
	}
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	debug := flag.Bool("debug", false, "log at debug level")
	flag.StringVar(&config.Playfield.LayoutFile, "layout", config.Playfield.LayoutFile, `TMX playfield file, or "builtin" for the embedded one (default: generated)`)
	flag.IntVar(&config.Match.WinningScore, "win", config.Match.WinningScore, "points needed to win a match")
	flag.Int64Var(&config.Debug.Seed, "seed", config.Debug.Seed, "random seed for serves (0 = time based)")
	flag.BoolVar(&config.Paddle.LeftAI, "left-ai", config.Paddle.LeftAI, "computer controls the left paddle")
	flag.BoolVar(&config.Paddle.RightAI, "right-ai", config.Paddle.RightAI, "computer controls the right paddle")
	flag.StringVar(&config.Log.File, "log", config.Log.File, "log file path")
	flag.BoolVar(&config.Debug.NoPersistence, "no-persist", config.Debug.NoPersistence, "do not load or save the win tally")
	flag.BoolVar(&config.Debug.DrawColliders, "colliders", config.Debug.DrawColliders, "outline collision boxes")
	flag.BoolVar(&config.Audio.Muted, "mute", config.Audio.Muted, "disable sound effects")
	flag.Parse()

	if config.Match.WinningScore < 1 {
		log.Fatalf("-win must be at least 1, got %d", config.Match.WinningScore)
	}

	level := zapcore.InfoLevel
	if *debug {
		level = zapcore.DebugLevel
	}
	if err := logger.Init(config.Log, level); err != nil {
		log.Printf("Warning: logging disabled: %v", err)
	}
	defer logger.Sync()

	layout, err := loadLayout(config.Playfield.LayoutFile)
	if err != nil {
		log.Fatalf("Failed to load playfield: %v", err)
	}

	opts := scenes.Options{Layout: layout, Seed: config.Debug.Seed}
	if !config.Debug.NoPersistence {
		if err := systems.InitPersistence(config.C.Title); err != nil {
			logger.L().Warnw("could not initialize persistence", "error", err)
		} else if opts.Record, err = systems.LoadRecord(); err != nil {
			logger.L().Warnw("could not load record", "error", err)
		}
	}

	if err := fonts.LoadDefaults(config.UI.HelpFontSize, 2*config.UI.PromptFontSize); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}
	if !config.Audio.Muted {
		systems.SetSFXPlayer(sound.NewPlayer(config.Audio, config.Sound))
	}

	scene, err := scenes.NewPongScene(opts)
	if err != nil {
		log.Fatalf("Failed to build scene: %v", err)
	}

	ebiten.SetWindowSize(2*config.C.Width, 2*config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetTPS(config.C.TPS)

	logger.L().Infow("starting",
		"winningScore", config.Match.WinningScore,
		"leftAI", config.Paddle.LeftAI,
		"rightAI", config.Paddle.RightAI,
		"layout", config.Playfield.LayoutFile,
	)
	if err := ebiten.RunGame(NewGame(scene)); err != nil {
		logger.L().Errorw("game exited", "error", err)
		log.Fatal(err)
	}
}

// loadLayout resolves the -layout flag to a playfield.
func loadLayout(path string) (*leveldata.Layout, error) {
	var fsys fs.FS
	switch path {
	case "":
		return factory.DefaultLayout(), nil
	case builtinLayout:
		fsys, path = assets.FS(), assets.PlayfieldPath
	default:
		fsys, path = os.DirFS(filepath.Dir(path)), filepath.Base(path)
	}
	return factory.LoadLayout(fsys, path)
}
