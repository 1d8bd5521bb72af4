package components

import "github.com/yohamta/donburi"

type SpriteData struct {
	FlipX bool
}

// SetFlipX mirrors the sprite horizontally.
func (s *SpriteData) SetFlipX(flip bool) {
	s.FlipX = flip
}

var Sprite = donburi.NewComponentType[SpriteData]()
