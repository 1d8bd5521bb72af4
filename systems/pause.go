package systems

import (
	"image/color"

	"github.com/automoto/platformer/components"
	cfg "github.com/automoto/platformer/config"
	"github.com/automoto/platformer/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

var pauseOverlay = color.RGBA{A: 160}

// UpdatePause toggles pause when any player presses the pause action.
// This system should run AFTER UpdateInput but BEFORE other game systems.
func UpdatePause(ecs *ecs.ECS) {
	pause := GetOrCreatePause(ecs)

	toggled := false
	components.PlayerInput.Each(ecs.World, func(e *donburi.Entry) {
		if components.PlayerInput.Get(e).JustPressed(cfg.ActionPause) {
			toggled = true
		}
	})
	if toggled {
		pause.IsPaused = !pause.IsPaused
	}
}

// DrawPause renders the pause overlay.
func DrawPause(ecs *ecs.ECS, screen *ebiten.Image) {
	if !GetOrCreatePause(ecs).IsPaused {
		return
	}

	width := screen.Bounds().Dx()
	height := screen.Bounds().Dy()
	vector.FillRect(screen, 0, 0, float32(width), float32(height), pauseOverlay, false)

	if !fonts.Loaded(fonts.Bold) {
		return
	}
	drawCentered(screen, "PAUSED", fonts.Bold.Get(), width, height/2)
	if fonts.Loaded(fonts.Small) {
		drawCentered(screen, "Esc: Resume", fonts.Small.Get(), width, height-12)
	}
}

func drawCentered(screen *ebiten.Image, s string, face font.Face, width, y int) {
	bounds := text.BoundString(face, s)
	x := (width - bounds.Dx()) / 2
	text.Draw(screen, s, face, x, y, cfg.White)
}

// WithPauseCheck wraps a system to skip execution when paused.
func WithPauseCheck(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if pause := GetOrCreatePause(e); pause.IsPaused {
			return
		}
		system(e)
	}
}

// WithGameplayChecks skips system while paused or before a level is loaded.
func WithGameplayChecks(system ecs.System) ecs.System {
	return WithPauseCheck(withLevelCheck(system))
}

func withLevelCheck(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if _, ok := components.Level.First(e.World); !ok {
			return
		}
		system(e)
	}
}

// GetOrCreatePause returns the singleton Pause component, creating if needed.
func GetOrCreatePause(ecs *ecs.ECS) *components.PauseData {
	if _, ok := components.Pause.First(ecs.World); !ok {
		ent := ecs.World.Entry(ecs.World.Create(components.Pause))
		components.Pause.SetValue(ent, components.PauseData{})
	}

	ent, _ := components.Pause.First(ecs.World)
	return components.Pause.Get(ent)
}
