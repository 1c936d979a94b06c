package systems

import (
	"math/rand"

	"github.com/automoto/pong/components"
	"github.com/automoto/pong/display"
	"github.com/automoto/pong/shared/gamemath"
	"github.com/automoto/pong/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// fallbackRand serves worlds created without a Random singleton.
var fallbackRand = rand.New(rand.NewSource(1))

// syncObject moves the entry's resolv object to a field box.
func syncObject(ecs *ecs.ECS, e *donburi.Entry, center, half gamemath.Vec2) {
	if !e.HasComponent(components.Object) {
		return
	}
	obj := components.Object.Get(e).Object
	if obj == nil {
		return
	}
	obj.X, obj.Y, _, _ = factory.GetField(ecs).ToSpace(center, half)
	obj.Update()
}

// GetMatch returns the match singleton, or nil if the world has none.
func GetMatch(ecs *ecs.ECS) *components.MatchData {
	entry, ok := components.Match.First(ecs.World)
	if !ok {
		return nil
	}
	return components.Match.Get(entry)
}

func getSink(ecs *ecs.ECS) display.Sink {
	entry, ok := components.Display.First(ecs.World)
	if !ok {
		return display.Nop{}
	}
	return display.OrNop(components.Display.Get(entry).Sink)
}

func getRandom(ecs *ecs.ECS) *rand.Rand {
	entry, ok := components.Random.First(ecs.World)
	if !ok || components.Random.Get(entry).Rand == nil {
		return fallbackRand
	}
	return components.Random.Get(entry).Rand
}

func getBall(ecs *ecs.ECS) (*donburi.Entry, bool) {
	return components.Ball.First(ecs.World)
}
