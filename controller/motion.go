package controller

import (
	"errors"
	"fmt"
	"math"

	"github.com/automoto/platformer/config"
	"go.uber.org/zap"
)

var (
	// ErrMissingCollaborator is returned when a required dependency is nil.
	ErrMissingCollaborator = errors.New("missing collaborator")
	// ErrInvalidConfig is returned when tuning values cannot drive a character.
	ErrInvalidConfig = errors.New("invalid controller config")
)

// Deps wires a MotionController to its collaborators.
type Deps struct {
	Body     Body
	Probe    GroundProbe
	Input    InputSource
	Animator Animator

	// Optional.
	Orientation     Orientation
	Logger          *zap.Logger
	OnDeathComplete func()
}

// MotionController drives one character: ground probe, horizontal motion,
// jumping, facing and the one-way Alive -> Dead gate.
//
// Update runs once per rendered frame and samples input; FixedUpdate runs at
// the physics rate and uses the most recently sampled intent, which may be
// one frame stale.
type MotionController struct {
	cfg         config.PlayerConfig
	probeOffset Vec2

	body        Body
	probe       GroundProbe
	input       InputSource
	anim        Animator
	orientation Orientation
	log         *zap.Logger
	onDeath     func()

	moveIntent float64
	facing     Facing
	alive      bool
	grounded   bool
	dieType    int
}

// New validates the collaborators and tuning, then runs the one-time
// initialization: axis locks and gravity.
func New(cfg config.PlayerConfig, deps Deps) (*MotionController, error) {
	switch {
	case deps.Body == nil:
		return nil, fmt.Errorf("%w: body", ErrMissingCollaborator)
	case deps.Probe == nil:
		return nil, fmt.Errorf("%w: ground probe", ErrMissingCollaborator)
	case deps.Input == nil:
		return nil, fmt.Errorf("%w: input", ErrMissingCollaborator)
	case deps.Animator == nil:
		return nil, fmt.Errorf("%w: animator", ErrMissingCollaborator)
	}

	switch {
	case cfg.MoveSpeed <= 0:
		return nil, fmt.Errorf("%w: move speed %v", ErrInvalidConfig, cfg.MoveSpeed)
	case cfg.JumpImpulse <= 0:
		return nil, fmt.Errorf("%w: jump impulse %v", ErrInvalidConfig, cfg.JumpImpulse)
	case cfg.MaxVelocityY <= 0:
		return nil, fmt.Errorf("%w: max vertical velocity %v", ErrInvalidConfig, cfg.MaxVelocityY)
	case cfg.GroundCheckRadius <= 0:
		return nil, fmt.Errorf("%w: ground check radius %v", ErrInvalidConfig, cfg.GroundCheckRadius)
	case len(cfg.GroundLayers) == 0:
		return nil, fmt.Errorf("%w: no ground layers", ErrInvalidConfig)
	}

	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	cfg.GroundLayers = append([]string(nil), cfg.GroundLayers...)
	c := &MotionController{
		cfg:         cfg,
		probeOffset: Vec2{X: cfg.GroundCheckOffsetX, Y: cfg.GroundCheckOffsetY},
		body:        deps.Body,
		probe:       deps.Probe,
		input:       deps.Input,
		anim:        deps.Animator,
		orientation: deps.Orientation,
		log:         logger.Named("motion"),
		onDeath:     deps.OnDeathComplete,
		facing:      FacingRight,
		alive:       true,
	}

	c.body.SetConstraints(Freeze2D)
	c.body.SetGravityEnabled(true)

	return c, nil
}

// Update is the per-frame contract: ground check, input sampling, jump,
// animation flags and facing.
func (c *MotionController) Update() {
	if !c.alive {
		return
	}

	center := c.body.Position().XY().Add(c.probeOffset)
	c.grounded = c.probe.Overlaps(center, c.cfg.GroundCheckRadius, c.cfg.GroundLayers...)
	c.log.Debug("ground check", zap.Bool("grounded", c.grounded))

	c.moveIntent = clamp(c.input.Axis(config.AxisHorizontal), -1, 1)

	if c.input.JustPressed(config.ActionJump) && c.grounded {
		// Drop any fall speed so every jump reaches the same height.
		v := c.body.Velocity()
		c.body.SetVelocity(Vec2{X: v.X, Y: 0})
		c.body.AddImpulse(Vec2{Y: c.cfg.JumpImpulse})
		c.anim.SetBool(config.ParamJumping, true)
	}

	c.anim.SetBool(config.ParamRunning, math.Abs(c.moveIntent) > 0)
	// Overwrites the jump flag above; the probe result wins for this frame.
	c.anim.SetBool(config.ParamJumping, !c.grounded)

	if (c.moveIntent > 0 && c.facing == FacingLeft) || (c.moveIntent < 0 && c.facing == FacingRight) {
		c.flip()
	}
}

// FixedUpdate is the physics-rate contract: horizontal velocity from intent,
// vertical clamp and depth re-pin.
func (c *MotionController) FixedUpdate() {
	if !c.alive {
		return
	}

	v := c.body.Velocity()
	v.X = c.moveIntent * c.cfg.MoveSpeed
	v.Y = clamp(v.Y, -c.cfg.MaxVelocityY, c.cfg.MaxVelocityY)
	c.body.SetVelocity(v)

	p := c.body.Position()
	p.Z = c.cfg.LockedDepth
	c.body.SetPosition(p)
}

func (c *MotionController) flip() {
	if c.facing == FacingRight {
		c.facing = FacingLeft
	} else {
		c.facing = FacingRight
	}
	if c.orientation != nil {
		c.orientation.SetFlipX(c.facing == FacingLeft)
	}
}

// TriggerDeath stops the character and raises the death trigger. Calls after
// the first are ignored.
func (c *MotionController) TriggerDeath(dieType int) {
	if !c.alive {
		return
	}
	c.alive = false
	c.dieType = dieType
	c.body.SetVelocity(Vec2{})
	c.anim.SetInteger(config.ParamDieType, dieType)
	c.anim.SetTrigger(config.ParamDie)
	c.log.Info("character died", zap.Int("dieType", dieType))
}

// OnDeathAnimationComplete is invoked by the host at the end of the death
// clip. Respawn or game over belongs to the host's OnDeathComplete hook.
func (c *MotionController) OnDeathAnimationComplete() {
	c.log.Info("death animation completed", zap.Int("dieType", c.dieType))
	if c.onDeath != nil {
		c.onDeath()
	}
}

// Alive reports whether the character can still move.
func (c *MotionController) Alive() bool {
	return c.alive
}

// State returns a snapshot of the character.
func (c *MotionController) State() CharacterState {
	return CharacterState{
		Position:   c.body.Position(),
		Velocity:   c.body.Velocity(),
		Facing:     c.facing,
		Alive:      c.alive,
		Grounded:   c.grounded,
		MoveIntent: c.moveIntent,
		DieType:    c.dieType,
	}
}
