package systems

import (
	"github.com/automoto/platformer/components"
	"github.com/automoto/platformer/events"
	"github.com/yohamta/donburi"
)

// RegisterReactor routes animator events to the players' state
// reactors and motion controllers. Call once per world.
func RegisterReactor(w donburi.World) {
	events.AnimationStateEntered.Subscribe(w, onAnimationStateEntered)
	events.AnimationStateExited.Subscribe(w, onAnimationStateExited)
	events.DeathAnimationComplete.Subscribe(w, onDeathAnimationComplete)
}

func playerOf(e *donburi.Entry) (*components.PlayerData, bool) {
	if e == nil || !e.Valid() || !e.HasComponent(components.Player) {
		return nil, false
	}
	return components.Player.Get(e), true
}

func onAnimationStateEntered(w donburi.World, ev events.AnimationStateChanged) {
	if player, ok := playerOf(ev.Entry); ok && player.Reactor != nil {
		player.Reactor.OnEnter(ev.State, ev.Layer)
	}
}

func onAnimationStateExited(w donburi.World, ev events.AnimationStateChanged) {
	if player, ok := playerOf(ev.Entry); ok && player.Reactor != nil {
		player.Reactor.OnExit(ev.State, ev.Layer)
	}
}

func onDeathAnimationComplete(w donburi.World, ev events.DeathAnimationFinished) {
	if player, ok := playerOf(ev.Entry); ok && player.Motion != nil {
		player.Motion.OnDeathAnimationComplete()
	}
}
