package systems

import (
	"github.com/automoto/platformer/components"
	cfg "github.com/automoto/platformer/config"
	"github.com/automoto/platformer/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateHazards kills players that touch a dead zone or fall out of the
// level.
func UpdateHazards(ecs *ecs.ECS) {
	killY, hasLevel := 0.0, false
	if levelEntry, ok := components.Level.First(ecs.World); ok {
		killY, hasLevel = components.Level.Get(levelEntry).KillY, true
	}

	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		motion := components.Player.Get(e).Motion
		if motion == nil || !motion.Alive() {
			return
		}
		obj := components.Object.Get(e)

		if touchesDeadZone(obj.Object) {
			motion.TriggerDeath(cfg.DieHazard)
			return
		}
		if hasLevel && obj.Y+obj.H < killY {
			motion.TriggerDeath(cfg.DieFall)
		}
	})
}

func touchesDeadZone(obj *resolv.Object) bool {
	check := obj.Check(0, 0, cfg.TagDeadZone)
	if check == nil {
		return false
	}
	for _, zone := range check.ObjectsByTags(cfg.TagDeadZone) {
		if overlapsAt(obj, obj.X, obj.Y, zone) {
			return true
		}
	}
	return false
}

// RemovePlayer takes a player out of the world and its collision space.
// Must not be called while the world is being iterated.
func RemovePlayer(ecs *ecs.ECS, e *donburi.Entry) {
	if !e.Valid() {
		return
	}
	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		space := components.Space.Get(spaceEntry)
		if obj := components.Object.Get(e); obj != nil && obj.Object != nil {
			space.Remove(obj.Object)
		}
	}
	ecs.World.Remove(e.Entity())
}
