package system

import (
	"github.com/younwookim/wallhop/internal/domain/entity"
	"github.com/younwookim/wallhop/internal/infrastructure/config"
)

// TickResult reports what happened during one tick
type TickResult struct {
	Tick    int
	Contact Contact
	Saved   bool
	Loaded  bool
}

// Simulation owns the player, the checkpoint slot and the level, and runs
// the per-tick pipeline: movement, collision, checkpoint.
type Simulation struct {
	level      *entity.Level
	player     *entity.Player
	movement   *MovementSystem
	collision  *CollisionSystem
	checkpoint *CheckpointSystem
	tick       int
}

// NewSimulation creates a simulation with the player at the level's spawn
func NewSimulation(cfg *config.PhysicsConfig, level *entity.Level) *Simulation {
	return &Simulation{
		level:      level,
		player:     entity.NewPlayer(level.Spawn, cfg.Player.HalfWidth, cfg.Player.HalfHeight),
		movement:   NewMovementSystem(cfg),
		collision:  NewCollisionSystem(cfg, level),
		checkpoint: NewCheckpointSystem(),
	}
}

// Step advances the simulation by one tick
func (s *Simulation) Step(input InputFrame) TickResult {
	s.movement.Update(s.player, input)
	contact := s.collision.Update(s.player)
	saved, loaded := s.checkpoint.Update(s.player, input)

	s.tick++
	return TickResult{
		Tick:    s.tick,
		Contact: contact,
		Saved:   saved,
		Loaded:  loaded,
	}
}

// Player returns the live player
func (s *Simulation) Player() *entity.Player {
	return s.player
}

// Level returns the level being simulated
func (s *Simulation) Level() *entity.Level {
	return s.level
}

// Checkpoint returns the checkpoint system
func (s *Simulation) Checkpoint() *CheckpointSystem {
	return s.checkpoint
}

// Stats returns the collision counters
func (s *Simulation) Stats() CollisionStats {
	return s.collision.Stats()
}

// Tick returns the number of ticks run so far
func (s *Simulation) Tick() int {
	return s.tick
}
