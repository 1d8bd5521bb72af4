package controller

import (
	"testing"

	"github.com/automoto/platformer/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type rig struct {
	c      *MotionController
	body   *fakeBody
	probe  *fakeProbe
	input  *fakeInput
	anim   *fakeAnimator
	sprite *fakeSprite
}

func testConfig() config.PlayerConfig {
	return config.PlayerConfig{
		MoveSpeed:          5,
		JumpImpulse:        7,
		MaxVelocityY:       10,
		GroundCheckRadius:  0.3,
		GroundCheckOffsetY: -1,
		GroundLayers:       []string{"ground"},
		LockedDepth:        0,
	}
}

func newRig(t *testing.T) *rig {
	t.Helper()
	r := &rig{
		body:   &fakeBody{},
		probe:  &fakeProbe{},
		input:  &fakeInput{},
		anim:   &fakeAnimator{},
		sprite: &fakeSprite{},
	}
	c, err := New(testConfig(), Deps{
		Body:        r.body,
		Probe:       r.probe,
		Input:       r.input,
		Animator:    r.anim,
		Orientation: r.sprite,
	})
	require.NoError(t, err)
	r.c = c
	return r
}

func TestNewRequiresCollaborators(t *testing.T) {
	full := func() Deps {
		return Deps{Body: &fakeBody{}, Probe: &fakeProbe{}, Input: &fakeInput{}, Animator: &fakeAnimator{}}
	}

	cases := []struct {
		name  string
		strip func(d *Deps)
	}{
		{"body", func(d *Deps) { d.Body = nil }},
		{"probe", func(d *Deps) { d.Probe = nil }},
		{"input", func(d *Deps) { d.Input = nil }},
		{"animator", func(d *Deps) { d.Animator = nil }},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			d := full()
			c.strip(&d)
			_, err := New(testConfig(), d)
			require.ErrorIs(t, err, ErrMissingCollaborator)
		})
	}

	t.Run("orientation_optional", func(t *testing.T) {
		_, err := New(testConfig(), full())
		require.NoError(t, err)
	})
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(c *config.PlayerConfig)
	}{
		{"move_speed", func(c *config.PlayerConfig) { c.MoveSpeed = 0 }},
		{"jump_impulse", func(c *config.PlayerConfig) { c.JumpImpulse = -1 }},
		{"max_velocity", func(c *config.PlayerConfig) { c.MaxVelocityY = 0 }},
		{"radius", func(c *config.PlayerConfig) { c.GroundCheckRadius = 0 }},
		{"layers", func(c *config.PlayerConfig) { c.GroundLayers = nil }},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			cfg := testConfig()
			c.mutate(&cfg)
			_, err := New(cfg, Deps{Body: &fakeBody{}, Probe: &fakeProbe{}, Input: &fakeInput{}, Animator: &fakeAnimator{}})
			require.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestNewInitializesBody(t *testing.T) {
	r := newRig(t)

	assert.True(t, r.body.gravity)
	assert.True(t, r.body.constraints.Has(FreezePositionZ))
	assert.True(t, r.body.constraints.Has(FreezeRotationX|FreezeRotationY|FreezeRotationZ))

	s := r.c.State()
	assert.True(t, s.Alive)
	assert.Equal(t, FacingRight, s.Facing)
	assert.False(t, s.Grounded)
}

func TestUpdateProbesBelowBody(t *testing.T) {
	r := newRig(t)
	r.body.pos = Vec3{X: 3, Y: 4}

	r.c.Update()

	assert.Equal(t, 1, r.probe.calls)
	assert.Equal(t, Vec2{X: 3, Y: 3}, r.probe.center)
	assert.Equal(t, 0.3, r.probe.radius)
	assert.Equal(t, []string{"ground"}, r.probe.layers)
}

func TestJumpingFlagFollowsGround(t *testing.T) {
	cases := []struct {
		name     string
		grounded bool
		jump     bool
		jumping  bool
	}{
		{"grounded_no_jump", true, false, false},
		{"grounded_jump", true, true, false},
		{"airborne_no_jump", false, false, true},
		{"airborne_jump", false, true, true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r := newRig(t)
			r.probe.grounded = c.grounded
			r.input.jump = c.jump

			r.c.Update()

			assert.Equal(t, c.jumping, r.anim.bools[config.ParamJumping])
			assert.Equal(t, c.grounded, r.c.State().Grounded)
		})
	}
}

func TestJumpRequiresEdgeAndGround(t *testing.T) {
	r := newRig(t)
	r.probe.grounded = false
	r.input.jump = true
	r.c.Update()
	assert.Empty(t, r.body.impulses, "no jump while airborne")

	r.probe.grounded = true
	r.input.jump = true
	r.c.Update()
	require.Len(t, r.body.impulses, 1)
	assert.Equal(t, Vec2{Y: 7}, r.body.impulses[0])

	// Held key: no new edge.
	r.input.jump = false
	r.c.Update()
	r.c.Update()
	assert.Len(t, r.body.impulses, 1)
}

func TestJumpResetsFallSpeed(t *testing.T) {
	r := newRig(t)
	r.body.vel = Vec2{X: 2, Y: -6}
	r.probe.grounded = true
	r.input.jump = true

	r.c.Update()

	assert.Equal(t, Vec2{X: 2, Y: 7}, r.body.vel)
}

func TestJumpSetsFlagBeforeGroundOverwrite(t *testing.T) {
	r := newRig(t)
	r.probe.grounded = true
	r.input.jump = true

	r.c.Update()

	var jumpingWrites []int
	for _, call := range r.anim.calls {
		if call.op == "bool" && call.param == config.ParamJumping {
			jumpingWrites = append(jumpingWrites, call.value)
		}
	}
	assert.Equal(t, []int{1, 0}, jumpingWrites)
}

func TestRunningFlag(t *testing.T) {
	cases := []struct {
		axis    float64
		running bool
	}{
		{0, false},
		{1, true},
		{-1, true},
		{0.2, true},
		{-0.01, true},
	}

	for _, c := range cases {
		r := newRig(t)
		r.input.axis = c.axis
		r.c.Update()
		assert.Equal(t, c.running, r.anim.bools[config.ParamRunning], "axis %v", c.axis)
	}
}

func TestFacingFlips(t *testing.T) {
	r := newRig(t)

	steps := []struct {
		axis   float64
		facing Facing
		flips  int
	}{
		{1, FacingRight, 0},
		{0, FacingRight, 0},
		{-1, FacingLeft, 1},
		{-0.5, FacingLeft, 1},
		{0, FacingLeft, 1},
		{1, FacingRight, 2},
		{1, FacingRight, 2},
	}

	for i, s := range steps {
		r.input.axis = s.axis
		r.c.Update()
		assert.Equal(t, s.facing, r.c.State().Facing, "step %d", i)
		assert.Equal(t, s.flips, r.sprite.flips, "step %d", i)
		assert.Equal(t, s.facing == FacingLeft, r.sprite.flipX, "step %d", i)
	}
}

func TestFacingTrackedWithoutOrientation(t *testing.T) {
	input := &fakeInput{axis: -1}
	c, err := New(testConfig(), Deps{Body: &fakeBody{}, Probe: &fakeProbe{}, Input: input, Animator: &fakeAnimator{}})
	require.NoError(t, err)

	c.Update()
	assert.Equal(t, FacingLeft, c.State().Facing)
}

func TestFixedUpdateClampsVerticalVelocity(t *testing.T) {
	cases := []struct {
		in, out float64
	}{
		{0, 0},
		{9.5, 9.5},
		{10, 10},
		{25, 10},
		{-10, -10},
		{-40, -10},
	}

	for _, c := range cases {
		r := newRig(t)
		r.body.vel = Vec2{Y: c.in}
		r.c.FixedUpdate()
		assert.Equal(t, c.out, r.body.vel.Y, "vy %v", c.in)
	}
}

func TestFixedUpdateUsesLatestIntent(t *testing.T) {
	r := newRig(t)

	r.c.FixedUpdate()
	assert.Equal(t, 0.0, r.body.vel.X, "no intent sampled yet")

	r.input.axis = -0.5
	r.c.Update()
	r.input.axis = 1 // not sampled until the next Update
	r.c.FixedUpdate()
	r.c.FixedUpdate()
	assert.Equal(t, -2.5, r.body.vel.X)
}

func TestUpdateClampsAxis(t *testing.T) {
	r := newRig(t)
	r.input.axis = 3
	r.c.Update()
	r.c.FixedUpdate()
	assert.Equal(t, 5.0, r.body.vel.X)
}

func TestFixedUpdatePinsDepth(t *testing.T) {
	r := newRig(t)
	r.body.pos = Vec3{X: 1, Y: 2, Z: 0.75}

	r.c.FixedUpdate()

	assert.Equal(t, Vec3{X: 1, Y: 2, Z: 0}, r.body.pos)
}

func TestGroundedRunAndJumpScenario(t *testing.T) {
	r := newRig(t)
	r.probe.grounded = true
	r.input.axis = 1
	r.input.jump = true

	r.c.Update()

	s := r.c.State()
	assert.Equal(t, 7.0, s.Velocity.Y)
	assert.True(t, r.anim.bools[config.ParamRunning])
	assert.False(t, r.anim.bools[config.ParamJumping])
	assert.Equal(t, FacingRight, s.Facing)
}

func TestTriggerDeath(t *testing.T) {
	r := newRig(t)
	r.body.vel = Vec2{X: 3, Y: -4}

	r.c.TriggerDeath(2)

	s := r.c.State()
	assert.False(t, s.Alive)
	assert.False(t, r.c.Alive())
	assert.Equal(t, Vec2{}, s.Velocity)
	assert.Equal(t, 2, s.DieType)
	assert.Equal(t, 2, r.anim.ints[config.ParamDieType])
	assert.True(t, r.anim.triggers[config.ParamDie])
}

func TestTriggerDeathIsIdempotent(t *testing.T) {
	r := newRig(t)
	r.c.TriggerDeath(1)
	once := r.c.State()
	calls := len(r.anim.calls)

	r.c.TriggerDeath(2)

	assert.Equal(t, once, r.c.State())
	assert.Equal(t, 1, r.anim.ints[config.ParamDieType])
	assert.Len(t, r.anim.calls, calls)
}

func TestDeadCharacterIgnoresTicks(t *testing.T) {
	r := newRig(t)
	r.c.TriggerDeath(2)
	before := r.c.State()
	calls := len(r.anim.calls)
	probes := r.probe.calls

	intents := []float64{1, -1, 0.5, 0, -0.25}
	for _, axis := range intents {
		r.input.axis = axis
		r.input.jump = true
		r.probe.grounded = true
		r.c.Update()
		r.c.FixedUpdate()
		r.c.FixedUpdate()
	}

	assert.Equal(t, before, r.c.State())
	assert.Equal(t, Vec2{}, r.body.vel)
	assert.Empty(t, r.body.impulses)
	assert.Len(t, r.anim.calls, calls, "no flag writes after death")
	assert.Equal(t, probes, r.probe.calls)
	assert.Equal(t, 2, r.c.State().DieType)
}

func TestOnDeathAnimationComplete(t *testing.T) {
	core, recorded := observer.New(zapcore.InfoLevel)
	called := 0
	c, err := New(testConfig(), Deps{
		Body:            &fakeBody{},
		Probe:           &fakeProbe{},
		Input:           &fakeInput{},
		Animator:        &fakeAnimator{},
		Logger:          zap.New(core),
		OnDeathComplete: func() { called++ },
	})
	require.NoError(t, err)

	c.TriggerDeath(0)
	c.OnDeathAnimationComplete()

	assert.Equal(t, 1, called)
	assert.Equal(t, 1, recorded.FilterMessage("death animation completed").Len())
	assert.Equal(t, 1, recorded.FilterMessage("character died").Len())
}

func TestOnDeathAnimationCompleteDefaultsToLog(t *testing.T) {
	r := newRig(t)
	assert.NotPanics(t, r.c.OnDeathAnimationComplete)
}
