// Package events is the bus the animation layer publishes state transitions
// on. Subscribers run synchronously when the publisher processes the queue.
package events

import (
	"github.com/automoto/platformer/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// AnimationStateChanged describes one enter or exit of an animation state.
type AnimationStateChanged struct {
	Entry *donburi.Entry
	State config.StateID
	Layer int
}

// DeathAnimationFinished is published once when a death clip ends.
type DeathAnimationFinished struct {
	Entry *donburi.Entry
}

var (
	AnimationStateEntered  = events.NewEventType[AnimationStateChanged]()
	AnimationStateExited   = events.NewEventType[AnimationStateChanged]()
	DeathAnimationComplete = events.NewEventType[DeathAnimationFinished]()
)

// Dispatch delivers every queued animation event. Exits are delivered before
// enters so a state's flags are cleared before its successor's are asserted.
func Dispatch(w donburi.World) {
	AnimationStateExited.ProcessEvents(w)
	AnimationStateEntered.ProcessEvents(w)
	DeathAnimationComplete.ProcessEvents(w)
}
