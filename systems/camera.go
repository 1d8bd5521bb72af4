package systems

import (
	"math"

	"github.com/automoto/platformer/components"
	"github.com/automoto/platformer/config"
	"github.com/automoto/platformer/tags"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCamera eases the camera toward the player, keeping the view inside
// the level where the level is larger than the screen.
func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return // no player between death and respawn
	}
	playerObject := components.Object.Get(playerEntry)

	targetX := playerObject.X + playerObject.W/2
	targetY := playerObject.Y + playerObject.H/2

	if levelEntry, ok := components.Level.First(e.World); ok {
		level := components.Level.Get(levelEntry)
		targetX = clampToView(targetX, float64(config.C.Width), level.Width)
		targetY = clampToView(targetY, float64(config.C.Height), level.Height)
	}

	camera.Position.X += (targetX - camera.Position.X) * config.Camera.FollowSmoothing
	camera.Position.Y += (targetY - camera.Position.Y) * config.Camera.FollowSmoothing
}

// clampToView keeps a camera coordinate where a view of size view stays
// within [0, extent]. Levels smaller than the view are centered.
func clampToView(v, view, extent float64) float64 {
	if extent <= view {
		return extent / 2
	}
	return math.Max(view/2, math.Min(extent-view/2, v))
}
