package controller

import (
	"fmt"

	"github.com/automoto/platformer/config"
)

// AnimationStateReactor keeps animator flags scoped to the state that owns
// them. The animation layer calls it on every state enter and exit.
type AnimationStateReactor struct {
	anim Animator
}

// NewReactor binds a reactor to the animator whose flags it corrects.
func NewReactor(anim Animator) (*AnimationStateReactor, error) {
	if anim == nil {
		return nil, fmt.Errorf("%w: animator", ErrMissingCollaborator)
	}
	return &AnimationStateReactor{anim: anim}, nil
}

// OnEnter clears locomotion flags that do not belong to the entered state and
// re-asserts the death trigger for death clips.
func (r *AnimationStateReactor) OnEnter(state config.StateID, layer int) {
	if state != config.Run {
		r.anim.SetBool(config.ParamRunning, false)
	}
	if state != config.Jump {
		r.anim.SetBool(config.ParamJumping, false)
	}
	if state.IsDeath() {
		r.anim.SetTrigger(config.ParamDie)
	}
}

// OnExit clears the flag or trigger owned by the state being left.
func (r *AnimationStateReactor) OnExit(state config.StateID, layer int) {
	if state == config.Jump {
		r.anim.SetBool(config.ParamJumping, false)
	} else if state.IsDeath() {
		r.anim.ResetTrigger(config.ParamDie)
	}
}
