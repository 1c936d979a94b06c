package config

import (
	"image/color"
	"math"

	"github.com/automoto/pong/logger"
)

// Unit is the number of pixels per playfield unit. Tuning values below are
// written in units so the field can be rescaled in one place.
const Unit = 36.0

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	TPS    int // fixed physics ticks per second
	Title  string
}

// BallConfig contains ball physics configuration values
type BallConfig struct {
	Speed              float64 // base speed in pixels per second
	MaxBounceAngle     float64 // radians from horizontal on a paddle hit
	MinHorizontalRatio float64 // fraction of speed below which vx is floored
	Radius             float64

	// Bounce response
	SpeedUp       float64 // multiplier applied on every bounce
	MinSpeedRatio float64 // paddle bounce speed floor as a fraction of Speed
	WallEpsilon   float64 // |vy| below this after a wall bounce gets nudged
	WallNudge     float64 // vy applied to a flat wall rebound
	StallSpeed    float64 // incoming speed treated as stalled

	// Serve
	ServeSpread float64 // max |vy| before normalisation on a serve
}

// PaddleConfig contains paddle configuration values
type PaddleConfig struct {
	Speed      float64 // pixels per second
	HalfWidth  float64
	HalfHeight float64
	OffsetX    float64 // distance of the paddle centre from the field centre
	AIDeadZone float64 // AI holds still when the ball is this close vertically
	LeftAI     bool
	RightAI    bool
}

// MatchConfig contains round and match flow configuration
type MatchConfig struct {
	WinningScore int
	ResetDelay   int // frames between a goal and the next serve
	RestartDelay int // frames between both consents and the new match
}

// Rect is an axis-aligned box in field coordinates (centre origin, +Y up).
type Rect struct {
	X, Y         float64 // centre
	HalfW, HalfH float64
}

// PlayfieldConfig describes the static playfield geometry
type PlayfieldConfig struct {
	HalfWidth     float64
	HalfHeight    float64
	WallThickness float64
	WallInset     float64
	GoalDepth     float64
	SpaceMargin   int // padding around the field in the collision space
	CellSize      int
	Obstacles     []Rect
	LayoutFile    string // optional TMX layout, empty uses the built-in layout
}

// UIConfig contains HUD configuration values
type UIConfig struct {
	BackgroundColor color.RGBA
	FieldColor      color.RGBA
	WallColor       color.RGBA
	BallColor       color.RGBA
	PaddleColors    [2]color.RGBA
	ObstacleColor   color.RGBA
	HelpColor       color.RGBA
	AcceptedColor   color.RGBA

	ScoreFontSize     float64
	CountdownFontSize float64
	PromptFontSize    float64
	HelpFontSize      float64

	HelpText      [2]string
	PlayAgainText [2]string
	AcceptedText  string
	WinnerText    string
	PausedText    string

	CountdownPulse float32 // seconds for the countdown scale pulse
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	Seed          int64 // 0 picks a time-based seed
	DrawColliders bool
	NoPersistence bool
}

// Global configuration instances
var C *Config
var Ball BallConfig
var Paddle PaddleConfig
var Match MatchConfig
var Playfield PlayfieldConfig
var UI UIConfig
var Log logger.Config
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Grey         = color.RGBA{R: 128, G: 128, B: 128, A: 255}
	DarkGrey     = color.RGBA{R: 40, G: 40, B: 48, A: 255}
	Black        = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	Green        = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	BrightOrange = color.RGBA{R: 255, G: 180, B: 50, A: 255}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	LightRed     = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

// Player indices
const (
	PlayerLeft  = 0
	PlayerRight = 1
)

// Seconds converts a duration in seconds to frames at the configured tick rate.
func Seconds(s float64) int {
	return int(math.Round(s * float64(C.TPS)))
}

func init() {
	C = &Config{
		Width:  640,
		Height: 360,
		TPS:    60,
		Title:  "Pong",
	}

	Ball = BallConfig{
		Speed:              6 * Unit,
		MaxBounceAngle:     75 * math.Pi / 180,
		MinHorizontalRatio: 0.25,
		Radius:             0.2 * Unit,

		SpeedUp:       1.05,
		MinSpeedRatio: 0.5,
		WallEpsilon:   0.01 * Unit,
		WallNudge:     0.2 * Unit,
		StallSpeed:    0.01 * Unit,

		ServeSpread: 0.3,
	}

	// Paddle height is 10% of the playfield height
	Paddle = PaddleConfig{
		Speed:      8 * Unit,
		HalfWidth:  0.25 * Unit,
		HalfHeight: 0.5 * Unit,
		OffsetX:    8 * Unit,
		AIDeadZone: 0.2 * Unit,
		LeftAI:     false,
		RightAI:    false,
	}

	Match = MatchConfig{
		WinningScore: 10,
		ResetDelay:   Seconds(5),
		RestartDelay: Seconds(5),
	}

	Playfield = PlayfieldConfig{
		HalfWidth:     float64(C.Width) / 2,
		HalfHeight:    float64(C.Height) / 2,
		WallThickness: 0.5 * Unit,
		WallInset:     0.25 * Unit,
		GoalDepth:     1 * Unit,
		SpaceMargin:   64,
		CellSize:      16,
	}

	UI = UIConfig{
		BackgroundColor: Black,
		FieldColor:      DarkGrey,
		WallColor:       Grey,
		BallColor:       White,
		PaddleColors:    [2]color.RGBA{LightBlue, LightRed},
		ObstacleColor:   BrightOrange,
		HelpColor:       Grey,
		AcceptedColor:   Green,

		ScoreFontSize:     32,
		CountdownFontSize: 48,
		PromptFontSize:    16,
		HelpFontSize:      14,

		HelpText:      [2]string{"W / S", "P / L"},
		PlayAgainText: [2]string{"Play Again? (W)", "Play Again? (P)"},
		AcceptedText:  "Accepted",
		WinnerText:    "WINNER!",
		PausedText:    "PAUSED",

		CountdownPulse: 0.4,
	}

	Log = logger.Config{
		File:       "pong.log",
		MaxSizeMB:  10,
		MaxBackups: 3,
		MaxAgeDays: 7,
	}

	// Debug Config (defaults, can be overridden by CLI flags)
	Debug = DebugConfig{
		Seed:          0,
		DrawColliders: false,
		NoPersistence: false,
	}
}
