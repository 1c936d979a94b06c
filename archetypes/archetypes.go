package archetypes

import (
	"github.com/automoto/pong/components"
	cfg "github.com/automoto/pong/config"
	"github.com/automoto/pong/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Ball = newArchetype(
		tags.Ball,
		components.Ball,
		components.Object,
	)
	Paddle = newArchetype(
		tags.Paddle,
		components.Paddle,
		components.Collider,
		components.Object,
	)
	Wall = newArchetype(
		tags.Wall,
		components.Collider,
		components.Object,
	)
	Obstacle = newArchetype(
		tags.Obstacle,
		components.Collider,
		components.Object,
	)
	Goal = newArchetype(
		tags.Goal,
		components.Goal,
		components.Collider,
		components.Object,
	)
	Space = newArchetype(
		components.Space,
	)
	Match = newArchetype(
		components.Match,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
