package config

import "github.com/hajimehoshi/ebiten/v2"

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionLeftUp
	ActionLeftDown
	ActionRightUp
	ActionRightDown
	ActionLeftConsent
	ActionRightConsent
	ActionPause
	ActionCount // Must be last - used for array sizing
)

// InputBinding represents the keys and buttons bound to an action.
// Gamepad is the index into the connected gamepad list (-1 = any gamepad).
type InputBinding struct {
	Keys                   []ebiten.Key
	StandardGamepadButtons []ebiten.StandardGamepadButton
	Gamepad                int
}

// InputConfig holds all input mappings
type InputConfig struct {
	Bindings map[ActionID]InputBinding
	// Deadzone for analog stick input (0.0 to 1.0)
	AnalogDeadzone float64
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		AnalogDeadzone: 0.25,
		Bindings: map[ActionID]InputBinding{
			ActionLeftUp: {
				Keys:                   []ebiten.Key{ebiten.KeyW},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftTop},
				Gamepad:                0,
			},
			ActionLeftDown: {
				Keys:                   []ebiten.Key{ebiten.KeyS},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftBottom},
				Gamepad:                0,
			},
			ActionRightUp: {
				Keys:                   []ebiten.Key{ebiten.KeyP},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftTop},
				Gamepad:                1,
			},
			ActionRightDown: {
				Keys:                   []ebiten.Key{ebiten.KeyL},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftBottom},
				Gamepad:                1,
			},
			// Consent shares the up key, as the on-screen prompt says
			ActionLeftConsent: {
				Keys: []ebiten.Key{ebiten.KeyW},
				// A / Cross button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightBottom},
				Gamepad:                0,
			},
			ActionRightConsent: {
				Keys:                   []ebiten.Key{ebiten.KeyP},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightBottom},
				Gamepad:                1,
			},
			ActionPause: {
				Keys: []ebiten.Key{ebiten.KeyEscape},
				// Start / Options button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonCenterRight},
				Gamepad:                -1,
			},
		},
	}
}
