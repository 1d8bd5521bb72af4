package factory

import (
	"fmt"

	"github.com/automoto/platformer/archetypes"
	"github.com/automoto/platformer/components"
	cfg "github.com/automoto/platformer/config"
	"github.com/automoto/platformer/controller"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// PlayerOptions carries the host-side hooks of a player entity.
type PlayerOptions struct {
	Poller          components.InputPoller
	Logger          *zap.Logger
	OnDeathComplete func(e *donburi.Entry)
}

// CreatePlayer spawns the character with its feet centered on (x, y) and
// binds a motion controller and state reactor to its components.
func CreatePlayer(ecs *ecs.ECS, x, y float64, opts PlayerOptions) (*donburi.Entry, error) {
	spaceEntry, ok := components.Space.First(ecs.World)
	if !ok {
		return nil, fmt.Errorf("create player: %w: collision space", controller.ErrMissingCollaborator)
	}
	space := components.Space.Get(spaceEntry)

	player := archetypes.Player.Spawn(ecs)

	w, h := float64(cfg.Player.CollisionWidth), float64(cfg.Player.CollisionHeight)
	obj := resolv.NewObject(x-w/2, y, w, h, cfg.TagCharacter)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = player
	components.Object.SetValue(player, components.ObjectData{Object: obj})

	components.Physics.SetValue(player, components.PhysicsData{
		Depth: cfg.Player.LockedDepth,
	})
	components.Animator.SetValue(player, components.AnimatorData{
		CurrentState: cfg.Idle,
		Layer:        cfg.Animation.Layer,
	})
	components.PlayerInput.SetValue(player, components.PlayerInputData{
		Poller: opts.Poller,
	})

	var onDeath func()
	if opts.OnDeathComplete != nil {
		onDeath = func() { opts.OnDeathComplete(player) }
	}

	motion, err := controller.New(cfg.Player, controller.Deps{
		Body:            entryBody{entry: player},
		Probe:           SpaceProbe{Space: space},
		Input:           entryInput{entry: player},
		Animator:        entryAnimator{entry: player},
		Orientation:     entrySprite{entry: player},
		Logger:          opts.Logger,
		OnDeathComplete: onDeath,
	})
	if err != nil {
		ecs.World.Remove(player.Entity())
		return nil, fmt.Errorf("create player: %w", err)
	}

	reactor, err := controller.NewReactor(entryAnimator{entry: player})
	if err != nil {
		ecs.World.Remove(player.Entity())
		return nil, fmt.Errorf("create player: %w", err)
	}

	components.Player.SetValue(player, components.PlayerData{
		Motion:  motion,
		Reactor: reactor,
	})
	space.Add(obj)

	return player, nil
}
