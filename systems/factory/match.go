package factory

import (
	"math/rand"
	"time"

	"github.com/automoto/pong/archetypes"
	"github.com/automoto/pong/components"
	cfg "github.com/automoto/pong/config"
	"github.com/automoto/pong/display"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateMatch creates the match singleton together with the world-level
// singletons the match reads: input, pause, audio, display and the random
// source. A zero seed picks a time-based one.
func CreateMatch(ecs *ecs.ECS, sink display.Sink, seed int64) *donburi.Entry {
	match := archetypes.Match.Spawn(ecs)
	components.Match.SetValue(match, components.MatchData{
		State:        cfg.MatchStatePlaying,
		WinningScore: cfg.Match.WinningScore,
		Winner:       -1,
	})

	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	singleton(ecs, components.Random, components.RandomData{Rand: rand.New(rand.NewSource(seed))})
	singleton(ecs, components.Display, components.DisplayData{Sink: display.OrNop(sink)})
	singleton(ecs, components.Input, components.InputData{})
	singleton(ecs, components.Pause, components.PauseData{})
	singleton(ecs, components.Audio, components.AudioData{SFXVolume: cfg.Audio.DefaultSFXVol, Muted: cfg.Audio.Muted})
	singleton(ecs, components.Record, components.RecordData{})

	return match
}

func singleton[T any](ecs *ecs.ECS, c *donburi.ComponentType[T], value T) {
	entry, ok := c.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(c))
	}
	c.SetValue(entry, value)
}
