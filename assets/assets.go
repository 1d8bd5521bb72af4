// Package assets embeds the levels shipped with the game.
package assets

import (
	"embed"
	"fmt"

	cfg "github.com/automoto/platformer/config"
	"github.com/automoto/platformer/leveldata"
)

var (
	//go:embed all:levels
	levelFS embed.FS
)

// LoadLevel returns the collision data of the embedded level name.
func LoadLevel(name string) (*leveldata.CollisionData, error) {
	data, err := leveldata.Load(levelFS, fmt.Sprintf("levels/%s.tmx", name))
	if err != nil {
		return nil, fmt.Errorf("embedded level %q: %w", name, err)
	}
	return data, nil
}

// LevelNames lists the embedded levels, sorted.
func LevelNames() ([]string, error) {
	return leveldata.Names(levelFS, "levels")
}

// DefaultLevel loads the level named by cfg.Level.DefaultLevel.
func DefaultLevel() (*leveldata.CollisionData, error) {
	return LoadLevel(cfg.Level.DefaultLevel)
}
