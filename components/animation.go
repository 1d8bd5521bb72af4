package components

import (
	cfg "github.com/automoto/platformer/config"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// AnimatorData holds animator parameters and the active state. Parameters are
// written by the motion controller and the state reactor; the animation
// system reads them to choose the next state.
type AnimatorData struct {
	Bools    [cfg.ParamCount]bool
	Ints     [cfg.ParamCount]int
	Triggers [cfg.ParamCount]bool

	CurrentState cfg.StateID
	Layer        int
	StateFrames  int // Frames spent in CurrentState

	DeathClip     *gween.Tween
	DeathReported bool
}

func (a *AnimatorData) SetBool(param cfg.ParamID, value bool) {
	a.Bools[param] = value
}

func (a *AnimatorData) SetInteger(param cfg.ParamID, value int) {
	a.Ints[param] = value
}

func (a *AnimatorData) SetTrigger(param cfg.ParamID) {
	a.Triggers[param] = true
}

func (a *AnimatorData) ResetTrigger(param cfg.ParamID) {
	a.Triggers[param] = false
}

// ConsumeTrigger reports whether the trigger was set and clears it.
func (a *AnimatorData) ConsumeTrigger(param cfg.ParamID) bool {
	set := a.Triggers[param]
	a.Triggers[param] = false
	return set
}

var Animator = donburi.NewComponentType[AnimatorData]()
