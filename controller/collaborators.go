package controller

import "github.com/automoto/platformer/config"

// InputSource is the input collaborator.
type InputSource interface {
	// Axis returns a raw, unsmoothed value in [-1, 1].
	Axis(axis config.AxisID) float64
	// JustPressed reports a not-pressed to pressed transition this frame.
	JustPressed(action config.ActionID) bool
}

// Body is the character's rigid body as exposed by the physics collaborator.
type Body interface {
	Position() Vec3
	SetPosition(p Vec3)
	Velocity() Vec2
	SetVelocity(v Vec2)
	// AddImpulse applies an instantaneous change of momentum.
	AddImpulse(j Vec2)
	SetConstraints(c Constraints)
	SetGravityEnabled(enabled bool)
}

// GroundProbe answers overlap queries against the static world.
type GroundProbe interface {
	// Overlaps reports whether a circle at center touches anything carrying
	// one of the given layer tags. It has no side effects.
	Overlaps(center Vec2, radius float64, layers ...string) bool
}

// Animator is the animation collaborator's parameter surface.
type Animator interface {
	SetBool(param config.ParamID, value bool)
	SetInteger(param config.ParamID, value int)
	SetTrigger(param config.ParamID)
	ResetTrigger(param config.ParamID)
}

// Orientation mirrors the character's visual.
type Orientation interface {
	SetFlipX(flip bool)
}
