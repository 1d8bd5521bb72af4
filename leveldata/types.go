// Package leveldata turns Tiled maps into plain collision data.
//
// All coordinates are converted to world space: y grows upward and the
// bottom edge of the map is y=0.
package leveldata

// CollisionData holds all collision-relevant data parsed from a TMX level file.
type CollisionData struct {
	SolidRects  []Rect
	DeadZones   []Rect
	SpawnPoints []SpawnPoint
	MapWidth    int
	MapHeight   int
}

// Rect is an axis-aligned box; X,Y is its bottom-left corner.
type Rect struct {
	X, Y, W, H float64
}

// SpawnPoint is where a character's feet are placed on spawn.
type SpawnPoint struct {
	X, Y  float64
	Index int
}
