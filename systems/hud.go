package systems

import (
	"fmt"

	"github.com/automoto/platformer/components"
	cfg "github.com/automoto/platformer/config"
	"github.com/automoto/platformer/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/yohamta/donburi/ecs"
)

const hudMargin = 10

// DrawHUD renders the level name and death count in the top-right corner.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	levelEntry, ok := components.Level.First(ecs.World)
	if !ok || !fonts.Loaded(fonts.Regular) {
		return
	}
	level := components.Level.Get(levelEntry)

	face := fonts.Regular.Get()
	s := fmt.Sprintf("%s   deaths %d", level.Name, level.Deaths)
	bounds := text.BoundString(face, s)
	x := screen.Bounds().Dx() - bounds.Dx() - hudMargin
	text.Draw(screen, s, face, x, hudMargin+bounds.Dy(), cfg.White)
}
