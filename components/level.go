package components

import (
	"github.com/automoto/platformer/leveldata"
	"github.com/yohamta/donburi"
)

type LevelData struct {
	Name   string
	Width  float64
	Height float64
	KillY  float64 // Characters whose top falls below this die
	Spawns []leveldata.SpawnPoint
	Deaths int // Completed deaths since the level was built
}

// Spawn returns the first spawn point, or the map's top-left quarter when the
// level defines none.
func (l *LevelData) Spawn() (float64, float64) {
	if len(l.Spawns) == 0 {
		return l.Width / 4, l.Height * 3 / 4
	}
	return l.Spawns[0].X, l.Spawns[0].Y
}

var Level = donburi.NewComponentType[LevelData]()
