package factory

import (
	"github.com/automoto/platformer/components"
	cfg "github.com/automoto/platformer/config"
	"github.com/automoto/platformer/controller"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// Adapters resolve component pointers on every call: donburi may move
// component data when an entity's archetype changes.

// entryBody exposes an entity's Object and Physics components as a
// controller.Body. Positions are the center of the collision box.
type entryBody struct {
	entry *donburi.Entry
}

func (b entryBody) Position() controller.Vec3 {
	obj := components.Object.Get(b.entry)
	physics := components.Physics.Get(b.entry)
	return controller.Vec3{X: obj.X + obj.W/2, Y: obj.Y + obj.H/2, Z: physics.Depth}
}

func (b entryBody) SetPosition(p controller.Vec3) {
	obj := components.Object.Get(b.entry)
	physics := components.Physics.Get(b.entry)
	physics.Depth = p.Z

	x, y := p.X-obj.W/2, p.Y-obj.H/2
	if x == obj.X && y == obj.Y {
		return
	}
	obj.X, obj.Y = x, y
	obj.Update()
}

func (b entryBody) Velocity() controller.Vec2 {
	return components.Physics.Get(b.entry).Velocity
}

func (b entryBody) SetVelocity(v controller.Vec2) {
	components.Physics.Get(b.entry).Velocity = v
}

// AddImpulse applies j as an immediate velocity change.
func (b entryBody) AddImpulse(j controller.Vec2) {
	physics := components.Physics.Get(b.entry)
	physics.Velocity = physics.Velocity.Add(j)
}

func (b entryBody) SetConstraints(c controller.Constraints) {
	components.Physics.Get(b.entry).Constraints = c
}

func (b entryBody) SetGravityEnabled(enabled bool) {
	components.Physics.Get(b.entry).UseGravity = enabled
}

// SpaceProbe answers ground probe queries against a resolv space.
type SpaceProbe struct {
	Space *resolv.Space
}

func (p SpaceProbe) Overlaps(center controller.Vec2, radius float64, layers ...string) bool {
	probe := resolv.NewCircle(center.X, center.Y, radius)
	for _, obj := range p.Space.Objects() {
		if !obj.HasTags(layers...) {
			continue
		}
		// Cheap box reject before the shape test.
		if center.X+radius < obj.X || center.X-radius > obj.X+obj.W ||
			center.Y+radius < obj.Y || center.Y-radius > obj.Y+obj.H {
			continue
		}
		if obj.Shape == nil || probe.Intersection(0, 0, obj.Shape) != nil {
			return true
		}
	}
	return false
}

type entryInput struct {
	entry *donburi.Entry
}

func (i entryInput) Axis(axis cfg.AxisID) float64 {
	return components.PlayerInput.Get(i.entry).Axis(axis)
}

func (i entryInput) JustPressed(action cfg.ActionID) bool {
	return components.PlayerInput.Get(i.entry).JustPressed(action)
}

type entryAnimator struct {
	entry *donburi.Entry
}

func (a entryAnimator) SetBool(param cfg.ParamID, value bool) {
	components.Animator.Get(a.entry).SetBool(param, value)
}

func (a entryAnimator) SetInteger(param cfg.ParamID, value int) {
	components.Animator.Get(a.entry).SetInteger(param, value)
}

func (a entryAnimator) SetTrigger(param cfg.ParamID) {
	components.Animator.Get(a.entry).SetTrigger(param)
}

func (a entryAnimator) ResetTrigger(param cfg.ParamID) {
	components.Animator.Get(a.entry).ResetTrigger(param)
}

type entrySprite struct {
	entry *donburi.Entry
}

func (s entrySprite) SetFlipX(flip bool) {
	components.Sprite.Get(s.entry).SetFlipX(flip)
}
