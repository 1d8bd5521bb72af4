package systems

import (
	"image/color"

	"github.com/automoto/platformer/components"
	cfg "github.com/automoto/platformer/config"
	"github.com/automoto/platformer/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// view maps y-up world coordinates onto the y-down screen around the camera.
type view struct {
	camX, camY float64
	halfW      float64
	halfH      float64
}

func newView(ecs *ecs.ECS, screen *ebiten.Image) view {
	v := view{
		halfW: float64(screen.Bounds().Dx()) / 2,
		halfH: float64(screen.Bounds().Dy()) / 2,
	}
	if cameraEntry, ok := components.Camera.First(ecs.World); ok {
		camera := components.Camera.Get(cameraEntry)
		v.camX, v.camY = camera.Position.X, camera.Position.Y
	}
	return v
}

// point converts a world point to screen space.
func (v view) point(x, y float64) (float32, float32) {
	return float32(x - v.camX + v.halfW), float32(v.halfH - (y - v.camY))
}

// rect returns the screen-space top-left corner of a world box.
func (v view) rect(x, y, w, h float64) (float32, float32, float32, float32) {
	sx, sy := v.point(x, y+h)
	return sx, sy, float32(w), float32(h)
}

func (v view) fillObject(screen *ebiten.Image, o *resolv.Object, clr color.Color) {
	x, y, w, h := v.rect(o.X, o.Y, o.W, o.H)
	vector.FillRect(screen, x, y, w, h, clr, false)
}

// DrawLevel renders ground tiles and dead zones.
func DrawLevel(ecs *ecs.ECS, screen *ebiten.Image) {
	v := newView(ecs, screen)

	tags.Platform.Each(ecs.World, func(e *donburi.Entry) {
		v.fillObject(screen, components.Object.Get(e).Object, cfg.DarkBlue)
	})
	tags.DeadZone.Each(ecs.World, func(e *donburi.Entry) {
		v.fillObject(screen, components.Object.Get(e).Object, cfg.Red)
	})
}

// DrawPlayer renders each player box with a nose marking its facing.
func DrawPlayer(ecs *ecs.ECS, screen *ebiten.Image) {
	v := newView(ecs, screen)

	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		o := components.Object.Get(e)
		clr := color.Color(cfg.LightBlue)
		if motion := components.Player.Get(e).Motion; motion != nil && !motion.Alive() {
			clr = cfg.Magenta
		}
		v.fillObject(screen, o.Object, clr)

		noseX := o.X + o.W
		if components.Sprite.Get(e).FlipX {
			noseX = o.X - 4
		}
		x, y, w, h := v.rect(noseX, o.Y+o.H*0.6, 4, 6)
		vector.FillRect(screen, x, y, w, h, cfg.White, false)
	})
}
