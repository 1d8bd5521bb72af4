package input

import (
	"github.com/automoto/platformer/components"
	cfg "github.com/automoto/platformer/config"
	"github.com/hajimehoshi/ebiten/v2"
)

// Device polls the keyboard and every connected standard-layout gamepad.
type Device struct {
	Bindings map[cfg.ActionID]Binding

	// Reusable slice for gamepad IDs to avoid allocations
	gamepadIDs []ebiten.GamepadID
}

func NewDevice() *Device {
	return &Device{Bindings: DefaultBindings()}
}

// Poll sets the pressed actions and axes of the current frame. Must run from
// the ebiten update goroutine.
func (d *Device) Poll(input *components.PlayerInputData) {
	d.gamepadIDs = ebiten.AppendGamepadIDs(d.gamepadIDs[:0])

	for actionID, binding := range d.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				input.CurrentInput[actionID] = true
			}
		}
		for _, gpID := range d.gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					input.CurrentInput[actionID] = true
				}
			}
		}
	}

	input.Axes[cfg.AxisHorizontal] = horizontalAxis(
		input.CurrentInput[cfg.ActionMoveLeft],
		input.CurrentInput[cfg.ActionMoveRight],
		d.leftStick(),
		cfg.Input.AnalogDeadzone,
	)
}

// leftStick returns the strongest left stick deflection across gamepads.
func (d *Device) leftStick() float64 {
	var best float64
	for _, gpID := range d.gamepadIDs {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		v := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
		if v*v > best*best {
			best = v
		}
	}
	return best
}
