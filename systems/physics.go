package systems

import (
	"github.com/automoto/platformer/components"
	cfg "github.com/automoto/platformer/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePhysics integrates gravity and velocity for one fixed step and moves
// bodies through the collision space.
func UpdatePhysics(ecs *ecs.ECS) {
	dt := cfg.Physics.FixedStep

	components.Physics.Each(ecs.World, func(e *donburi.Entry) {
		// Dead characters hold still until respawned
		if e.HasComponent(components.Player) {
			if motion := components.Player.Get(e).Motion; motion != nil && !motion.Alive() {
				return
			}
		}

		physics := components.Physics.Get(e)
		obj := components.Object.Get(e)

		if physics.UseGravity {
			physics.Velocity.Y -= cfg.Physics.Gravity * dt
		}

		resolveHorizontalCollision(physics, obj.Object, physics.Velocity.X*dt)
		resolveVerticalCollision(physics, obj.Object, physics.Velocity.Y*dt)
		obj.Update()
	})
}
