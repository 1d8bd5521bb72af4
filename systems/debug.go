package systems

import (
	"fmt"

	"github.com/automoto/platformer/components"
	cfg "github.com/automoto/platformer/config"
	"github.com/automoto/platformer/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawDebug renders the ground probe and a state readout when enabled.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.DrawProbe {
		return
	}
	v := newView(ecs, screen)

	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		player := components.Player.Get(e)
		if player.Motion == nil {
			return
		}
		state := player.Motion.State()
		anim := components.Animator.Get(e)

		probeClr := cfg.Red
		if state.Grounded {
			probeClr = cfg.Green
		}
		cx, cy := v.point(state.Position.X+cfg.Player.GroundCheckOffsetX, state.Position.Y+cfg.Player.GroundCheckOffsetY)
		vector.StrokeCircle(screen, cx, cy, float32(cfg.Player.GroundCheckRadius), 1, probeClr, true)

		ebitenutil.DebugPrint(screen, fmt.Sprintf(
			"state %s  grounded %t  facing %s\nvel %.0f,%.0f  running %t  jumping %t",
			anim.CurrentState, state.Grounded, state.Facing,
			state.Velocity.X, state.Velocity.Y,
			anim.Bools[cfg.ParamRunning], anim.Bools[cfg.ParamJumping],
		))
	})
}
