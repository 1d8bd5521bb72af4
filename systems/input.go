package systems

import (
	"github.com/automoto/platformer/components"
	cfg "github.com/automoto/platformer/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateInput advances every player's input buffers by one frame and polls
// the bound device. Must run BEFORE UpdateMotion in the system order.
func UpdateInput(ecs *ecs.ECS) {
	components.PlayerInput.Each(ecs.World, func(e *donburi.Entry) {
		updatePlayerInputData(components.PlayerInput.Get(e))
	})
}

func updatePlayerInputData(input *components.PlayerInputData) {
	input.PreviousInput = input.CurrentInput
	input.CurrentInput = [cfg.ActionCount]bool{}
	input.Axes = [cfg.AxisCount]float64{}

	if input.Poller != nil {
		input.Poller.Poll(input)
	}
}
