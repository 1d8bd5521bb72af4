package config

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveLeft
	ActionMoveRight
	ActionJump
	ActionPause
	ActionCount // Must be last - used for array sizing
)

// AxisID represents a logical analog axis
type AxisID int

const (
	AxisHorizontal AxisID = iota
	AxisCount
)

// InputConfig holds device-independent input settings
type InputConfig struct {
	// Deadzone for analog stick input (0.0 to 1.0)
	AnalogDeadzone float64 `yaml:"analogDeadzone"`
}

// Input is the global input configuration
var Input InputConfig

