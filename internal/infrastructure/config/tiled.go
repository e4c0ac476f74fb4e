package config

import (
	"fmt"
	"io/fs"
	"strings"

	"github.com/lafriks/go-tiled"
)

// Object groups and properties read from Tiled maps
const (
	tiledGeometryGroup = "geometry"
	tiledSpawnGroup    = "spawn"
	tiledLethalProp    = "lethal"
)

// LoadTiledStage parses a TMX map into a StageConfig.
//
// Rectangles in the "geometry" object group become boxes, in object order;
// a true "lethal" property marks a death plane. The first object of the
// "spawn" group is the player spawn. Tiled measures Y downward from the top
// of the map, so Y is flipped against the map's pixel height.
func LoadTiledStage(fsys fs.FS, tmxPath string) (*StageConfig, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("failed to load TMX %s: %w", tmxPath, err)
	}

	mapHeight := float64(levelMap.Height * levelMap.TileHeight)
	flipY := func(y float64) float64 { return mapHeight - y }

	id := strings.TrimSuffix(tmxPath[strings.LastIndex(tmxPath, "/")+1:], ".tmx")
	cfg := &StageConfig{ID: id, Name: id}

	spawnFound := false
	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case tiledGeometryGroup:
			for _, o := range og.Objects {
				cfg.Boxes = append(cfg.Boxes, BoxConfig{
					Name:   o.Name,
					X:      o.X + o.Width/2,
					Y:      flipY(o.Y + o.Height/2),
					HalfW:  o.Width / 2,
					HalfH:  o.Height / 2,
					Lethal: o.Properties.GetBool(tiledLethalProp),
				})
			}
		case tiledSpawnGroup:
			if spawnFound || len(og.Objects) == 0 {
				continue
			}
			o := og.Objects[0]
			cfg.PlayerSpawn = PositionConfig{X: o.X, Y: flipY(o.Y)}
			spawnFound = true
		}
	}

	if !spawnFound {
		return nil, fmt.Errorf("%w: %s has no %q object group", ErrInvalidStage, tmxPath, tiledSpawnGroup)
	}

	return cfg, nil
}
