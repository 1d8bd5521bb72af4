package systems

import (
	"github.com/automoto/platformer/components"
	cfg "github.com/automoto/platformer/config"
	"github.com/solarlune/resolv"
)

// contactEpsilon keeps boxes resting exactly on a surface from counting as
// overlapping it.
const contactEpsilon = 0.001

// resolveHorizontalCollision moves object by dx, stopping flush against the
// first solid in the way.
func resolveHorizontalCollision(physics *components.PhysicsData, object *resolv.Object, dx float64) {
	if dx == 0 {
		return
	}

	check := object.Check(dx, 0, cfg.TagSolid)
	if check == nil {
		object.X += dx
		return
	}

	wall := nearestBlocking(object, check.ObjectsByTags(cfg.TagSolid), dx, 0)
	if wall == nil {
		object.X += dx
		return
	}

	physics.Velocity.X = 0
	if dx > 0 {
		object.X = wall.X - object.W
	} else {
		object.X = wall.X + wall.W
	}
}

// resolveVerticalCollision moves object by dy. A solid met while falling
// becomes physics.OnGround; one met while rising stops the jump.
func resolveVerticalCollision(physics *components.PhysicsData, object *resolv.Object, dy float64) {
	physics.OnGround = nil
	if dy == 0 {
		return
	}

	check := object.Check(0, dy, cfg.TagSolid)
	if check == nil {
		object.Y += dy
		return
	}

	surface := nearestBlocking(object, check.ObjectsByTags(cfg.TagSolid), 0, dy)
	if surface == nil {
		object.Y += dy
		return
	}

	physics.Velocity.Y = 0
	if dy < 0 {
		object.Y = surface.Y + surface.H
		physics.OnGround = surface
	} else {
		object.Y = surface.Y - object.H
	}
}

// nearestBlocking returns the solid closest to object along the move
// (dx, dy) whose box the moved object would actually overlap. The space's
// cell lookup also reports neighbours that only share a cell.
func nearestBlocking(object *resolv.Object, solids []*resolv.Object, dx, dy float64) *resolv.Object {
	var nearest *resolv.Object
	best := 0.0
	for _, s := range solids {
		if !overlapsAt(object, object.X+dx, object.Y+dy, s) {
			continue
		}

		var gap float64
		switch {
		case dx > 0:
			gap = s.X - (object.X + object.W)
		case dx < 0:
			gap = object.X - (s.X + s.W)
		case dy > 0:
			gap = s.Y - (object.Y + object.H)
		default:
			gap = object.Y - (s.Y + s.H)
		}
		if nearest == nil || gap < best {
			nearest, best = s, gap
		}
	}
	return nearest
}

// overlapsAt reports whether object, placed at (x, y), overlaps other.
func overlapsAt(object *resolv.Object, x, y float64, other *resolv.Object) bool {
	return x+object.W > other.X+contactEpsilon && x < other.X+other.W-contactEpsilon &&
		y+object.H > other.Y+contactEpsilon && y < other.Y+other.H-contactEpsilon
}
