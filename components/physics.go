package components

import (
	"github.com/automoto/platformer/controller"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// PhysicsData is the rigid body state integrated by the fixed-step physics
// system.
type PhysicsData struct {
	Velocity    controller.Vec2 // px/s, y-up
	Depth       float64         // locked third axis
	Constraints controller.Constraints
	UseGravity  bool
	OnGround    *resolv.Object // floor found by the last vertical move
}

var Physics = donburi.NewComponentType[PhysicsData]()
