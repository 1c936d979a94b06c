package factory

import (
	"github.com/automoto/pong/archetypes"
	"github.com/automoto/pong/components"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateSpace(ecs *ecs.ECS, width, height, cellWidth, cellHeight int) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	spaceData := resolv.NewSpace(width, height, cellWidth, cellHeight)
	components.Space.Set(space, spaceData)
	return space
}

// addToSpace creates a resolv object for a field box, links it to the entry
// and registers it with the space if one exists.
func addToSpace(ecs *ecs.ECS, e *donburi.Entry, c components.ColliderData, resolvTags ...string) *resolv.Object {
	field := GetField(ecs)
	x, y, w, h := field.ToSpace(c.Center, c.Half)

	obj := resolv.NewObject(x, y, w, h, resolvTags...)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = e // Link for O(1) lookup

	components.Object.SetValue(e, components.ObjectData{Object: obj})

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}
	return obj
}
