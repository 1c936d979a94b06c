package systems

import (
	"github.com/automoto/pong/components"
	cfg "github.com/automoto/pong/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// Input sources, replaced in tests that drive UpdateInput without a window.
var (
	isKeyPressed     = ebiten.IsKeyPressed
	appendGamepadIDs = ebiten.AppendGamepadIDs
)

// UpdateInput polls raw input and updates the InputComponent.
// Must run BEFORE UpdatePause and UpdatePaddles in the system order.
func UpdateInput(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)

	var next [cfg.ActionCount]bool
	gamepadIDs = appendGamepadIDs(gamepadIDs[:0])

	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if isKeyPressed(key) {
				next[actionID] = true
			}
		}

		for i, gpID := range gamepadIDs {
			if binding.Gamepad >= 0 && binding.Gamepad != i {
				continue
			}
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					next[actionID] = true
				}
			}
		}
	}

	mergeAnalogSticks(&next, gamepadIDs)
	input.Advance(next)
}

// mergeAnalogSticks maps the left stick of the first two gamepads onto the
// paddle actions.
func mergeAnalogSticks(next *[cfg.ActionCount]bool, gamepads []ebiten.GamepadID) {
	deadzone := cfg.Input.AnalogDeadzone
	sides := [2][2]cfg.ActionID{
		{cfg.ActionLeftUp, cfg.ActionLeftDown},
		{cfg.ActionRightUp, cfg.ActionRightDown},
	}

	for i, gpID := range gamepads {
		if i >= len(sides) {
			break
		}
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}

		vertical := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickVertical)
		if vertical < -deadzone {
			next[sides[i][0]] = true
		}
		if vertical > deadzone {
			next[sides[i][1]] = true
		}
	}
}

// getOrCreateInput returns the singleton Input component, creating if needed
func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Input))
		// Zero-value InputData is correct (all bools false)
	}
	return components.Input.Get(entry)
}
