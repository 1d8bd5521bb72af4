package systems

import (
	"github.com/automoto/platformer/components"
	cfg "github.com/automoto/platformer/config"
	"github.com/automoto/platformer/events"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateAnimator picks each animator's next state from its parameters and
// delivers the resulting enter/exit events before returning. Must run AFTER
// UpdateMotion and UpdateHazards so this frame's flags are visible.
func UpdateAnimator(ecs *ecs.ECS) {
	components.Animator.Each(ecs.World, func(e *donburi.Entry) {
		anim := components.Animator.Get(e)

		if next := selectState(anim); next != anim.CurrentState {
			changeState(ecs.World, e, anim, next)
		} else {
			anim.StateFrames++
		}

		advanceDeathClip(ecs.World, e, anim)
	})

	events.Dispatch(ecs.World)
}

// selectState is the animator's transition graph. Death states are terminal;
// the die trigger is only consumed when it causes a transition.
func selectState(anim *components.AnimatorData) cfg.StateID {
	if anim.CurrentState.IsDeath() {
		return anim.CurrentState
	}
	if anim.ConsumeTrigger(cfg.ParamDie) {
		return cfg.DeathState(anim.Ints[cfg.ParamDieType])
	}

	switch {
	case anim.Bools[cfg.ParamJumping]:
		return cfg.Jump
	case anim.Bools[cfg.ParamRunning]:
		return cfg.Run
	default:
		return cfg.Idle
	}
}

func changeState(w donburi.World, e *donburi.Entry, anim *components.AnimatorData, next cfg.StateID) {
	prev := anim.CurrentState
	anim.CurrentState = next
	anim.StateFrames = 0

	if next.IsDeath() {
		frames := float32(cfg.Animation.DeathFrames)
		anim.DeathClip = gween.New(0, frames, frames, ease.Linear)
		anim.DeathReported = false
	}

	if prev != cfg.StateNone {
		events.AnimationStateExited.Publish(w, events.AnimationStateChanged{Entry: e, State: prev, Layer: anim.Layer})
	}
	events.AnimationStateEntered.Publish(w, events.AnimationStateChanged{Entry: e, State: next, Layer: anim.Layer})
}

// advanceDeathClip plays the death clip one frame and reports its end once.
func advanceDeathClip(w donburi.World, e *donburi.Entry, anim *components.AnimatorData) {
	if !anim.CurrentState.IsDeath() || anim.DeathClip == nil || anim.DeathReported {
		return
	}
	if anim.StateFrames == 0 {
		return
	}
	if _, done := anim.DeathClip.Update(1); done {
		anim.DeathReported = true
		events.DeathAnimationComplete.Publish(w, events.DeathAnimationFinished{Entry: e})
	}
}
