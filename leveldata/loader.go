package leveldata

import (
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	cfg "github.com/automoto/platformer/config"
	"github.com/lafriks/go-tiled"
)

// Load reads a TMX file from fsys and converts it to world-space collision
// data. Layer and group names come from cfg.Level.
func Load(fsys fs.FS, tmxPath string) (*CollisionData, error) {
	m, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}
	return Parse(m), nil
}

// Parse flips a Tiled map (y down, origin top-left) into world space.
func Parse(m *tiled.Map) *CollisionData {
	f := flipper{height: float64(m.Height * m.TileHeight)}
	data := &CollisionData{
		MapWidth:  m.Width * m.TileWidth,
		MapHeight: m.Height * m.TileHeight,
	}

	if layer := findLayer(m, cfg.Level.GroundLayer); layer != nil {
		data.SolidRects = groundRects(m, layer, f)
	}

	for _, group := range m.ObjectGroups {
		for _, o := range group.Objects {
			switch group.Name {
			case cfg.Level.SpawnGroup:
				data.SpawnPoints = append(data.SpawnPoints, SpawnPoint{
					X:     o.X,
					Y:     f.y(o.Y, 0),
					Index: o.Properties.GetInt("spawnIndex"),
				})
			case cfg.Level.DeadZoneGroup:
				data.DeadZones = append(data.DeadZones, Rect{X: o.X, Y: f.y(o.Y, o.Height), W: o.Width, H: o.Height})
			}
		}
	}

	sort.SliceStable(data.SpawnPoints, func(i, j int) bool {
		a, b := data.SpawnPoints[i], data.SpawnPoints[j]
		if a.Index != b.Index {
			return a.Index < b.Index
		}
		return a.X < b.X
	})
	return data
}

// flipper converts Tiled's top-edge y to a world bottom edge.
type flipper struct{ height float64 }

func (f flipper) y(top, h float64) float64 { return f.height - top - h }

func findLayer(m *tiled.Map, name string) *tiled.Layer {
	for _, layer := range m.Layers {
		if layer.Name == name {
			return layer
		}
	}
	return nil
}

func groundRects(m *tiled.Map, layer *tiled.Layer, f flipper) []Rect {
	tw, th := float64(m.TileWidth), float64(m.TileHeight)
	var rects []Rect
	for i, tile := range layer.Tiles {
		if tile == nil || tile.IsNil() {
			continue
		}
		col, row := i%m.Width, i/m.Width
		rects = append(rects, Rect{X: float64(col) * tw, Y: f.y(float64(row)*th, th), W: tw, H: th})
	}
	return rects
}

// Names lists the stems of the .tmx files directly under dir, sorted.
func Names(fsys fs.FS, dir string) ([]string, error) {
	matches, err := fs.Glob(fsys, path.Join(dir, "*.tmx"))
	if err != nil {
		return nil, fmt.Errorf("glob %s: %w", dir, err)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("no .tmx files found in %s", dir)
	}

	names := make([]string, 0, len(matches))
	for _, p := range matches {
		names = append(names, strings.TrimSuffix(path.Base(p), ".tmx"))
	}
	sort.Strings(names)
	return names, nil
}
