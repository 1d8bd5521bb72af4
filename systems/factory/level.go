package factory

import (
	"github.com/automoto/platformer/archetypes"
	"github.com/automoto/platformer/components"
	cfg "github.com/automoto/platformer/config"
	"github.com/automoto/platformer/leveldata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateLevel builds the collision space, ground and dead zones described by
// data and records the level's metadata.
func CreateLevel(ecs *ecs.ECS, name string, data *leveldata.CollisionData) *donburi.Entry {
	CreateSpace(ecs, data.MapWidth, data.MapHeight, cfg.Physics.CellSize, cfg.Physics.CellSize)

	for _, r := range data.SolidRects {
		CreateWall(ecs, r.X, r.Y, r.W, r.H)
	}
	for _, r := range data.DeadZones {
		CreateDeadZone(ecs, r.X, r.Y, r.W, r.H)
	}

	level := archetypes.Level.Spawn(ecs)
	components.Level.SetValue(level, components.LevelData{
		Name:   name,
		Width:  float64(data.MapWidth),
		Height: float64(data.MapHeight),
		KillY:  -cfg.Level.KillDepth,
		Spawns: append([]leveldata.SpawnPoint(nil), data.SpawnPoints...),
	})

	return level
}
