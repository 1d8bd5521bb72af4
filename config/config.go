package config

import "image/color"

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	// Movement
	MoveSpeed    float64 `yaml:"moveSpeed"`    // Horizontal speed at full input (px/s)
	JumpImpulse  float64 `yaml:"jumpImpulse"`  // Upward velocity change applied on jump (px/s)
	MaxVelocityY float64 `yaml:"maxVelocityY"` // Vertical speed clamp magnitude (px/s)

	// Ground probe
	GroundCheckRadius  float64  `yaml:"groundCheckRadius"`
	GroundCheckOffsetX float64  `yaml:"groundCheckOffsetX"` // Probe origin relative to body center
	GroundCheckOffsetY float64  `yaml:"groundCheckOffsetY"`
	GroundLayers       []string `yaml:"groundLayers"` // resolv tags counted as ground

	// Locked axis
	LockedDepth float64 `yaml:"lockedDepth"`

	// Dimensions
	CollisionWidth  int `yaml:"collisionWidth"`
	CollisionHeight int `yaml:"collisionHeight"`
}

// PhysicsConfig contains physics-related configuration values
type PhysicsConfig struct {
	Gravity       float64 `yaml:"gravity"`       // px/s^2, applied downward
	FixedStep     float64 `yaml:"fixedStep"`     // seconds per fixed update
	MaxFixedSteps int     `yaml:"maxFixedSteps"` // fixed updates allowed per frame before dropping time
	CellSize      int     `yaml:"cellSize"`      // resolv space cell size
}

// AnimationConfig contains animation-related configuration values
type AnimationConfig struct {
	DeathFrames int `yaml:"deathFrames"` // Length of a death clip in frames
	Layer       int `yaml:"layer"`       // Animator layer reported with state events
}

// LevelConfig contains level-related configuration values
type LevelConfig struct {
	GroundLayer     string  `yaml:"groundLayer"`     // Tile layer holding solid ground
	SpawnGroup      string  `yaml:"spawnGroup"`      // Object group holding spawn points
	DeadZoneGroup   string  `yaml:"deadZoneGroup"`   // Object group holding hazards
	KillDepth       float64 `yaml:"killDepth"`       // Distance below the map at which a fall kills
	DefaultLevel    string  `yaml:"defaultLevel"`
	LevelsDirectory string  `yaml:"levelsDirectory"`
}

// CameraConfig contains camera follow values
type CameraConfig struct {
	FollowSmoothing float64 `yaml:"followSmoothing"` // Fraction of the remaining distance closed per frame
}

// LogConfig contains logger configuration values
type LogConfig struct {
	Level       string `yaml:"level"`
	Format      string `yaml:"format"` // "console" or "json"
	Development bool   `yaml:"development"`
}

// Config holds general game configuration
type Config struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
	TPS    int    `yaml:"tps"`
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	DrawProbe bool `yaml:"drawProbe"` // Draw the ground probe circle
}

// Global configuration instances
var C *Config
var Player PlayerConfig
var Physics PhysicsConfig
var Animation AnimationConfig
var Level LevelConfig
var Camera CameraConfig
var Log LogConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White     = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Red       = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Green     = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	DarkBlue  = color.RGBA{R: 60, G: 100, B: 160, A: 255}
	LightBlue = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	Magenta   = color.RGBA{R: 255, G: 0, B: 255, A: 255}
)

// Resolv tags for physics collision
const (
	TagSolid     = "solid"
	TagGround    = "ground"
	TagDeadZone  = "deadzone"
	TagCharacter = "character"
)

// Die types passed to TriggerDeath by the host.
const (
	DieHazard = 0 // Touched a dead zone
	DieFall   = 1 // Fell off the map
	DieCrush  = 2
)

func init() {
	Reset()
}

// Reset restores every configuration value to its default.
func Reset() {
	C = &Config{
		Width:  640,
		Height: 360,
		Title:  "platformer",
		TPS:    60,
	}

	Player = PlayerConfig{
		MoveSpeed:    160.0,
		JumpImpulse:  380.0,
		MaxVelocityY: 480.0,

		GroundCheckRadius:  5.0,
		GroundCheckOffsetX: 0.0,
		GroundCheckOffsetY: -20.0, // feet of a 40px tall body
		GroundLayers:       []string{TagGround},

		LockedDepth: 0.0,

		CollisionWidth:  16,
		CollisionHeight: 40,
	}

	Physics = PhysicsConfig{
		Gravity:       980.0,
		FixedStep:     0.02, // 50 Hz
		MaxFixedSteps: 5,
		CellSize:      16,
	}

	Animation = AnimationConfig{
		DeathFrames: 45,
		Layer:       0,
	}

	Level = LevelConfig{
		GroundLayer:     "ground",
		SpawnGroup:      "PlayerSpawn",
		DeadZoneGroup:   "DeadZone",
		KillDepth:       160.0,
		DefaultLevel:    "training",
		LevelsDirectory: "levels",
	}

	Camera = CameraConfig{
		FollowSmoothing: 0.15,
	}

	Log = LogConfig{
		Level:       "info",
		Format:      "console",
		Development: true,
	}

	Input = InputConfig{
		AnalogDeadzone: 0.25,
	}

	Debug = DebugConfig{}
}
