package components

import (
	cfg "github.com/automoto/platformer/config"
	"github.com/yohamta/donburi"
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// InputPoller fills the current frame's input state from a device.
type InputPoller interface {
	Poll(input *PlayerInputData)
}

// PlayerInputData stores the current and previous frame's pressed state for all actions.
// JustPressed/JustReleased are computed on-demand by comparing frames.
type PlayerInputData struct {
	CurrentInput  [cfg.ActionCount]bool
	PreviousInput [cfg.ActionCount]bool
	Axes          [cfg.AxisCount]float64 // Raw axis values in [-1, 1]
	Poller        InputPoller
}

// Action returns the temporal state of an action.
func (i *PlayerInputData) Action(action cfg.ActionID) ActionState {
	return ActionState{
		Pressed:      i.CurrentInput[action],
		JustPressed:  i.CurrentInput[action] && !i.PreviousInput[action],
		JustReleased: !i.CurrentInput[action] && i.PreviousInput[action],
	}
}

func (i *PlayerInputData) JustPressed(action cfg.ActionID) bool {
	return i.Action(action).JustPressed
}

func (i *PlayerInputData) Axis(axis cfg.AxisID) float64 {
	return i.Axes[axis]
}

var PlayerInput = donburi.NewComponentType[PlayerInputData]()
