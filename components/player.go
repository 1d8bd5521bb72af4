package components

import (
	"github.com/automoto/platformer/controller"
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	Motion  *controller.MotionController
	Reactor *controller.AnimationStateReactor
}

var Player = donburi.NewComponentType[PlayerData]()
