package systems

import (
	"github.com/automoto/pong/components"
	cfg "github.com/automoto/pong/config"
	"github.com/automoto/pong/logger"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePause toggles the pause flag.
// This system should run AFTER UpdateInput but BEFORE other game systems.
func UpdatePause(ecs *ecs.ECS) {
	pause := GetOrCreatePause(ecs)
	input := getOrCreateInput(ecs)

	if input.Action(cfg.ActionPause).JustPressed {
		pause.IsPaused = !pause.IsPaused
		logger.L().Debugw("pause toggled", "paused", pause.IsPaused)
	}
}

// WithPauseCheck wraps a system to skip execution when paused.
func WithPauseCheck(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if pause := GetOrCreatePause(e); pause.IsPaused {
			return
		}
		system(e)
	}
}

// GetOrCreatePause returns the singleton Pause component, creating if needed.
func GetOrCreatePause(ecs *ecs.ECS) *components.PauseData {
	if _, ok := components.Pause.First(ecs.World); !ok {
		ecs.World.Create(components.Pause)
	}

	ent, _ := components.Pause.First(ecs.World)
	return components.Pause.Get(ent)
}
