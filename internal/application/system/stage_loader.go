package system

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/younwookim/wallhop/internal/domain/entity"
	"github.com/younwookim/wallhop/internal/infrastructure/config"
)

// LoadStage converts a StageConfig into a Level, keeping box order
func LoadStage(cfg *config.StageConfig) *entity.Level {
	boxes := make([]entity.Box, 0, len(cfg.Boxes))
	for _, b := range cfg.Boxes {
		boxes = append(boxes, entity.Box{
			Name:     b.Name,
			Center:   mgl64.Vec2{b.X, b.Y},
			HalfSize: mgl64.Vec2{b.HalfW, b.HalfH},
			Lethal:   b.Lethal,
		})
	}

	name := cfg.Name
	if name == "" {
		name = cfg.ID
	}

	return &entity.Level{
		Name:  name,
		Boxes: boxes,
		Spawn: mgl64.Vec3{cfg.PlayerSpawn.X, cfg.PlayerSpawn.Y, cfg.PlayerSpawn.Z},
	}
}
