package system

import "github.com/younwookim/wallhop/internal/domain/entity"

// CheckpointSystem copies the player's kinematics to and from the save slot
type CheckpointSystem struct {
	slot *entity.Checkpoint
}

// NewCheckpointSystem creates a checkpoint system with an empty slot
func NewCheckpointSystem() *CheckpointSystem {
	return &CheckpointSystem{slot: entity.NewCheckpoint()}
}

// Slot returns a copy of the saved kinematics and whether anything was saved
func (s *CheckpointSystem) Slot() (entity.Kinematics, bool) {
	return s.slot.Kinematics, s.slot.Saved
}

// Update saves and/or loads on the tick the buttons are first pressed.
// Save runs first, so pressing both at once is a load of what was just saved.
func (s *CheckpointSystem) Update(player *entity.Player, input InputFrame) (saved, loaded bool) {
	if input.Save.JustPressed {
		s.slot.Save(player)
		saved = true
	}
	if input.Load.JustPressed {
		s.slot.Load(player)
		loaded = true
	}
	return saved, loaded
}
