package scenes

import (
	"fmt"
	"image/color"

	"github.com/automoto/platformer/archetypes"
	"github.com/automoto/platformer/components"
	cfg "github.com/automoto/platformer/config"
	"github.com/automoto/platformer/controller"
	"github.com/automoto/platformer/leveldata"
	"github.com/automoto/platformer/sim"
	"github.com/automoto/platformer/systems"
	"github.com/automoto/platformer/systems/factory"
	"github.com/automoto/platformer/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// PlatformerScene owns the world for one level: its systems, the simulation
// loop and the single player character.
type PlatformerScene struct {
	ecs    *ecs.ECS
	loop   *sim.Loop
	log    *zap.Logger
	root   *zap.Logger
	poller components.InputPoller

	levelName string
	player    *donburi.Entry
	respawn   bool
}

// NewPlatformerScene builds the world for level and spawns the player at
// the level's first spawn point. poller may be nil for a character that
// never receives input.
func NewPlatformerScene(name string, level *leveldata.CollisionData, poller components.InputPoller, logger *zap.Logger) (*PlatformerScene, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	ps := &PlatformerScene{
		log:       logger.Named("scene").With(zap.String("level", name)),
		root:      logger,
		poller:    poller,
		levelName: name,
	}

	ecs := ecs.NewECS(donburi.NewWorld())

	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdatePause)
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateMotion))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateHazards))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateAnimator))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateCamera))
	ecs.AddSystem(ps.updateRespawn)

	ecs.AddRenderer(archetypes.Default, systems.DrawLevel)
	ecs.AddRenderer(archetypes.Default, systems.DrawPlayer)
	ecs.AddRenderer(archetypes.Default, systems.DrawHUD)
	ecs.AddRenderer(archetypes.Default, systems.DrawDebug)
	ecs.AddRenderer(archetypes.Default, systems.DrawPause)

	systems.RegisterReactor(ecs.World)
	ps.ecs = ecs
	ps.loop = sim.NewLoop(ecs, logger,
		systems.WithGameplayChecks(systems.UpdateMotionFixed),
		systems.WithGameplayChecks(systems.UpdatePhysics),
	)

	factory.CreateLevel(ecs, name, level)
	if err := ps.spawnPlayer(); err != nil {
		return nil, err
	}

	x, y := ps.playerCenter()
	factory.CreateCamera(ecs, x, y)

	return ps, nil
}

// Update advances the scene by one ebiten tick.
func (ps *PlatformerScene) Update() error {
	ps.Step(1 / float64(cfg.C.TPS))
	return nil
}

// Step advances the simulation by dt seconds.
func (ps *PlatformerScene) Step(dt float64) {
	ps.loop.Advance(dt)
}

func (ps *PlatformerScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)
	ps.ecs.Draw(screen)
}

// Loop returns the scene's simulation loop.
func (ps *PlatformerScene) Loop() *sim.Loop {
	return ps.loop
}

// World returns the scene's ECS.
func (ps *PlatformerScene) World() *ecs.ECS {
	return ps.ecs
}

// Player returns the live player entity.
func (ps *PlatformerScene) Player() *donburi.Entry {
	return ps.player
}

// PlayerState returns a snapshot of the player's motion controller.
func (ps *PlatformerScene) PlayerState() controller.CharacterState {
	return components.Player.Get(ps.player).Motion.State()
}

// ApplyConfig rebuilds the player so reloaded tuning takes effect.
func (ps *PlatformerScene) ApplyConfig() error {
	systems.RemovePlayer(ps.ecs, ps.player)
	return ps.spawnPlayer()
}

func (ps *PlatformerScene) spawnPlayer() error {
	levelEntry, ok := components.Level.First(ps.ecs.World)
	if !ok {
		return fmt.Errorf("spawn player: level %s not loaded", ps.levelName)
	}
	x, y := components.Level.Get(levelEntry).Spawn()

	player, err := factory.CreatePlayer(ps.ecs, x, y, factory.PlayerOptions{
		Poller:          ps.poller,
		Logger:          ps.root,
		OnDeathComplete: ps.onDeathComplete,
	})
	if err != nil {
		return fmt.Errorf("spawn player: %w", err)
	}
	ps.player = player
	ps.log.Info("player spawned", zap.Float64("x", x), zap.Float64("y", y))
	return nil
}

// onDeathComplete runs while animation events are dispatched, so the
// respawn itself waits for updateRespawn.
func (ps *PlatformerScene) onDeathComplete(e *donburi.Entry) {
	if e == ps.player {
		ps.respawn = true
	}
}

func (ps *PlatformerScene) updateRespawn(ecs *ecs.ECS) {
	if !ps.respawn {
		return
	}
	ps.respawn = false

	if levelEntry, ok := components.Level.First(ecs.World); ok {
		components.Level.Get(levelEntry).Deaths++
	}
	systems.RemovePlayer(ecs, ps.player)
	if err := ps.spawnPlayer(); err != nil {
		ps.log.Error("respawn failed", zap.Error(err))
	}
}

func (ps *PlatformerScene) playerCenter() (float64, float64) {
	if ps.player == nil || !ps.player.Valid() || !ps.player.HasComponent(tags.Player) {
		return 0, 0
	}
	obj := components.Object.Get(ps.player)
	return obj.X + obj.W/2, obj.Y + obj.H/2
}
