package config

import (
	"errors"
	"fmt"
)

// ErrInvalidStage is returned when stage data breaks a geometry precondition
var ErrInvalidStage = errors.New("invalid stage")

// StageConfig is the root config for stage JSON files.
// Coordinates are world units with Y pointing up; box sizes are half-extents.
type StageConfig struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	PlayerSpawn PositionConfig `json:"playerSpawn"`
	Boxes       []BoxConfig    `json:"boxes"`
}

type PositionConfig struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z,omitempty"`
}

type BoxConfig struct {
	Name   string  `json:"name,omitempty"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	HalfW  float64 `json:"halfW"`
	HalfH  float64 `json:"halfH"`
	Lethal bool    `json:"lethal,omitempty"`
}

// Validate checks that every box has a positive size
func (s *StageConfig) Validate() error {
	for i, b := range s.Boxes {
		if b.HalfW <= 0 || b.HalfH <= 0 {
			return fmt.Errorf("%w: box %d (%q) has non-positive size %gx%g", ErrInvalidStage, i, b.Name, b.HalfW, b.HalfH)
		}
	}
	return nil
}
