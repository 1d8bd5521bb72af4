package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalid is returned when a loaded configuration fails validation.
var ErrInvalid = errors.New("invalid config")

// File is the on-disk layout of a configuration override file. Sections that
// are absent keep their current values.
type File struct {
	Game      *Config          `yaml:"game"`
	Player    *PlayerConfig    `yaml:"player"`
	Physics   *PhysicsConfig   `yaml:"physics"`
	Animation *AnimationConfig `yaml:"animation"`
	Level     *LevelConfig     `yaml:"level"`
	Camera    *CameraConfig    `yaml:"camera"`
	Log       *LogConfig       `yaml:"log"`
	Input     *InputConfig     `yaml:"input"`
	Debug     *DebugConfig     `yaml:"debug"`
}

// LoadFile reads a YAML override file and applies it over the current values.
func LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := Load(data); err != nil {
		return fmt.Errorf("config: load %s: %w", path, err)
	}
	return nil
}

// Load applies YAML override data over the current values. Nothing is applied
// if decoding or validation fails.
func Load(data []byte) error {
	game := *C
	player := Player
	player.GroundLayers = append([]string(nil), Player.GroundLayers...)
	physics := Physics
	animation := Animation
	level := Level
	camera := Camera
	logCfg := Log
	input := Input
	debug := Debug

	f := File{
		Game:      &game,
		Player:    &player,
		Physics:   &physics,
		Animation: &animation,
		Level:     &level,
		Camera:    &camera,
		Log:       &logCfg,
		Input:     &input,
		Debug:     &debug,
	}
	if err := yaml.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("unmarshal: %w", err)
	}

	if err := validate(&game, &player, &physics, &animation, &camera); err != nil {
		return err
	}

	C = &game
	Player = player
	Physics = physics
	Animation = animation
	Level = level
	Camera = camera
	Log = logCfg
	Input = input
	Debug = debug
	return nil
}

func validate(game *Config, player *PlayerConfig, physics *PhysicsConfig, animation *AnimationConfig, camera *CameraConfig) error {
	switch {
	case game.Width <= 0 || game.Height <= 0:
		return fmt.Errorf("%w: screen size %dx%d", ErrInvalid, game.Width, game.Height)
	case game.TPS <= 0:
		return fmt.Errorf("%w: tps %d", ErrInvalid, game.TPS)
	case player.MoveSpeed <= 0:
		return fmt.Errorf("%w: player.moveSpeed %v", ErrInvalid, player.MoveSpeed)
	case player.JumpImpulse <= 0:
		return fmt.Errorf("%w: player.jumpImpulse %v", ErrInvalid, player.JumpImpulse)
	case player.MaxVelocityY <= 0:
		return fmt.Errorf("%w: player.maxVelocityY %v", ErrInvalid, player.MaxVelocityY)
	case player.GroundCheckRadius <= 0:
		return fmt.Errorf("%w: player.groundCheckRadius %v", ErrInvalid, player.GroundCheckRadius)
	case len(player.GroundLayers) == 0:
		return fmt.Errorf("%w: player.groundLayers is empty", ErrInvalid)
	case player.CollisionWidth <= 0 || player.CollisionHeight <= 0:
		return fmt.Errorf("%w: player collision size %dx%d", ErrInvalid, player.CollisionWidth, player.CollisionHeight)
	case physics.FixedStep <= 0:
		return fmt.Errorf("%w: physics.fixedStep %v", ErrInvalid, physics.FixedStep)
	case physics.MaxFixedSteps <= 0:
		return fmt.Errorf("%w: physics.maxFixedSteps %d", ErrInvalid, physics.MaxFixedSteps)
	case physics.CellSize <= 0:
		return fmt.Errorf("%w: physics.cellSize %d", ErrInvalid, physics.CellSize)
	case animation.DeathFrames <= 0:
		return fmt.Errorf("%w: animation.deathFrames %d", ErrInvalid, animation.DeathFrames)
	case camera.FollowSmoothing <= 0 || camera.FollowSmoothing > 1:
		return fmt.Errorf("%w: camera.followSmoothing %v", ErrInvalid, camera.FollowSmoothing)
	}
	return nil
}
