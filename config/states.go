package config

// StateID identifies an animation state. Ids are interned once here so that
// comparisons never hash state names at runtime.
type StateID int

const (
	StateNone StateID = -1

	Idle StateID = iota
	Run
	Jump
	Die0
	Die1
	Die2
)

// StateToName maps StateID to the human-readable state name used by
// animation assets.
var StateToName = map[StateID]string{
	Idle: "Idle",
	Run:  "Run",
	Jump: "Jump",
	Die0: "Die_0",
	Die1: "Die_1",
	Die2: "Die_2",
}

var nameToState = func() map[string]StateID {
	m := make(map[string]StateID, len(StateToName))
	for id, name := range StateToName {
		m[name] = id
	}
	return m
}()

// StateByName resolves a state name to its id.
func StateByName(name string) (StateID, bool) {
	id, ok := nameToState[name]
	return id, ok
}

func (s StateID) String() string {
	if name, ok := StateToName[s]; ok {
		return name
	}
	return "None"
}

// IsDeath reports whether s is one of the death clips.
func (s StateID) IsDeath() bool {
	return s == Die0 || s == Die1 || s == Die2
}

// DeathState returns the death state for a die type, clamped to the clips
// that exist.
func DeathState(dieType int) StateID {
	switch {
	case dieType <= 0:
		return Die0
	case dieType == 1:
		return Die1
	default:
		return Die2
	}
}

// ParamID identifies an animator parameter.
type ParamID int

const (
	ParamRunning ParamID = iota
	ParamJumping
	ParamDie
	ParamDieType
	ParamCount // Must be last - used for array sizing
)

// ParamToName maps ParamID to the parameter name used by animation assets.
var ParamToName = map[ParamID]string{
	ParamRunning: "IsRunning",
	ParamJumping: "IsJumping",
	ParamDie:     "Die",
	ParamDieType: "DieType",
}

func (p ParamID) String() string {
	if name, ok := ParamToName[p]; ok {
		return name
	}
	return "Unknown"
}
