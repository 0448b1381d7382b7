package systems

import (
	"github.com/automoto/dirtrace/components"
	cfg "github.com/automoto/dirtrace/config"
	"github.com/automoto/dirtrace/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var gamepadIDs []ebiten.GamepadID

// UpdateInput reads keyboard and gamepads into the local player's input.
func UpdateInput(e *ecs.ECS) {
	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	tags.Player.Each(e.World, func(entry *donburi.Entry) {
		input := components.PlayerInput.Get(entry)
		axis := leftStickX()
		input.Left = IsActionPressed(cfg.ActionMoveLeft) || axis < -cfg.Input.AnalogDeadzone
		input.Right = IsActionPressed(cfg.ActionMoveRight) || axis > cfg.Input.AnalogDeadzone
		input.Jump = IsActionPressed(cfg.ActionJump)
	})
}

// IsActionPressed reports whether any binding of action is held.
func IsActionPressed(action cfg.ActionID) bool {
	binding := cfg.Input.Bindings[action]
	for _, key := range binding.Keys {
		if ebiten.IsKeyPressed(key) {
			return true
		}
	}
	for _, id := range gamepadIDs {
		for _, b := range binding.StandardGamepadButtons {
			if ebiten.IsStandardGamepadButtonPressed(id, b) {
				return true
			}
		}
	}
	return false
}

// IsActionJustPressed reports whether any binding of action went down this frame.
func IsActionJustPressed(action cfg.ActionID) bool {
	binding := cfg.Input.Bindings[action]
	for _, key := range binding.Keys {
		if inpututil.IsKeyJustPressed(key) {
			return true
		}
	}
	for _, id := range gamepadIDs {
		for _, b := range binding.StandardGamepadButtons {
			if inpututil.IsStandardGamepadButtonJustPressed(id, b) {
				return true
			}
		}
	}
	return false
}

func leftStickX() float64 {
	for _, id := range gamepadIDs {
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}
		if v := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal); v != 0 {
			return v
		}
	}
	return 0
}
