// Package controller implements the single-character motion loop and the
// animation state reactor. It has no dependency on ebiten, donburi or resolv:
// every engine service reaches it through the interfaces in collaborators.go.
package controller

import "math"

// Vec2 is a 2D vector in world space (y-up).
type Vec2 struct {
	X, Y float64
}

// Vec3 is a position with the locked depth axis.
type Vec3 struct {
	X, Y, Z float64
}

// XY drops the depth axis.
func (v Vec3) XY() Vec2 {
	return Vec2{X: v.X, Y: v.Y}
}

// Add returns v+o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Facing is the horizontal direction the character's sprite points.
type Facing int

const (
	FacingRight Facing = iota
	FacingLeft
)

func (f Facing) String() string {
	if f == FacingLeft {
		return "left"
	}
	return "right"
}

// Sign returns -1 for left and 1 for right.
func (f Facing) Sign() float64 {
	if f == FacingLeft {
		return -1
	}
	return 1
}

// Constraints are rigid body axis locks.
type Constraints uint8

const (
	FreezePositionZ Constraints = 1 << iota
	FreezeRotationX
	FreezeRotationY
	FreezeRotationZ

	// Freeze2D locks everything a side-on character must not use.
	Freeze2D = FreezePositionZ | FreezeRotationX | FreezeRotationY | FreezeRotationZ
)

// Has reports whether every bit of o is set.
func (c Constraints) Has(o Constraints) bool {
	return c&o == o
}

// CharacterState is a snapshot of the controlled character.
type CharacterState struct {
	Position   Vec3
	Velocity   Vec2
	Facing     Facing
	Alive      bool
	Grounded   bool
	MoveIntent float64
	DieType    int
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(v, hi))
}
