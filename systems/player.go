package systems

import (
	"github.com/automoto/platformer/components"
	"github.com/automoto/platformer/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateMotion runs the per-frame half of every player's motion controller:
// ground check, jump, animator flags and facing.
func UpdateMotion(ecs *ecs.ECS) {
	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		if player := components.Player.Get(e); player.Motion != nil {
			player.Motion.Update()
		}
	})
}

// UpdateMotionFixed runs the fixed-step half: horizontal velocity, fall
// speed cap and the depth pin.
func UpdateMotionFixed(ecs *ecs.ECS) {
	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		if player := components.Player.Get(e); player.Motion != nil {
			player.Motion.FixedUpdate()
		}
	})
}
