package controller

import "github.com/automoto/platformer/config"

type fakeBody struct {
	pos         Vec3
	vel         Vec2
	impulses    []Vec2
	constraints Constraints
	gravity     bool
}

func (b *fakeBody) Position() Vec3                 { return b.pos }
func (b *fakeBody) SetPosition(p Vec3)             { b.pos = p }
func (b *fakeBody) Velocity() Vec2                 { return b.vel }
func (b *fakeBody) SetVelocity(v Vec2)             { b.vel = v }
func (b *fakeBody) SetConstraints(c Constraints)   { b.constraints = c }
func (b *fakeBody) SetGravityEnabled(enabled bool) { b.gravity = enabled }

func (b *fakeBody) AddImpulse(j Vec2) {
	b.impulses = append(b.impulses, j)
	b.vel = b.vel.Add(j)
}

type fakeProbe struct {
	grounded bool
	center   Vec2
	radius   float64
	layers   []string
	calls    int
}

func (p *fakeProbe) Overlaps(center Vec2, radius float64, layers ...string) bool {
	p.calls++
	p.center = center
	p.radius = radius
	p.layers = layers
	return p.grounded
}

type fakeInput struct {
	axis float64
	jump bool
}

func (i *fakeInput) Axis(config.AxisID) float64 { return i.axis }

func (i *fakeInput) JustPressed(action config.ActionID) bool {
	return action == config.ActionJump && i.jump
}

type animCall struct {
	op    string
	param config.ParamID
	value int
}

type fakeAnimator struct {
	bools    [config.ParamCount]bool
	ints     [config.ParamCount]int
	triggers [config.ParamCount]bool
	calls    []animCall
}

func (a *fakeAnimator) SetBool(p config.ParamID, v bool) {
	a.bools[p] = v
	n := 0
	if v {
		n = 1
	}
	a.calls = append(a.calls, animCall{op: "bool", param: p, value: n})
}

func (a *fakeAnimator) SetInteger(p config.ParamID, v int) {
	a.ints[p] = v
	a.calls = append(a.calls, animCall{op: "int", param: p, value: v})
}

func (a *fakeAnimator) SetTrigger(p config.ParamID) {
	a.triggers[p] = true
	a.calls = append(a.calls, animCall{op: "trigger", param: p})
}

func (a *fakeAnimator) ResetTrigger(p config.ParamID) {
	a.triggers[p] = false
	a.calls = append(a.calls, animCall{op: "reset", param: p})
}

type fakeSprite struct {
	flipX bool
	flips int
}

func (s *fakeSprite) SetFlipX(flip bool) {
	s.flipX = flip
	s.flips++
}
