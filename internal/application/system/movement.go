package system

import (
	"github.com/younwookim/wallhop/internal/domain/entity"
	"github.com/younwookim/wallhop/internal/domain/movement"
	"github.com/younwookim/wallhop/internal/infrastructure/config"
)

// MovementSystem integrates player velocity and position for one tick
type MovementSystem struct {
	config *config.PhysicsConfig
}

// NewMovementSystem creates a new movement system
func NewMovementSystem(cfg *config.PhysicsConfig) *MovementSystem {
	return &MovementSystem{config: cfg}
}

// Update applies one tick of input, gravity and impulses to the player and
// moves it to its tentative new position. Collisions are not considered.
func (s *MovementSystem) Update(player *entity.Player, input InputFrame) {
	k := &player.Kinematics
	prevVX := k.Velocity.X()
	locked := k.WallJumpTimer > 0

	s.applyGravity(k)
	s.applyRun(k, input)

	wallJumped := false
	if input.Jump.JustPressed {
		s.handleJump(k)
		wallJumped = s.handleWallJump(k, prevVX)
	}

	// Variable jump height: releasing early shortens the arc
	if !input.Jump.Pressed && k.Velocity.Y() >= 0 {
		k.Velocity[1] *= s.config.Jump.VariableJumpMultiplier
	}

	// Wall-jump lock keeps the horizontal impulse regardless of input.
	// A fresh wall jump re-arms the lock instead of being overridden by it.
	if locked && !wallJumped {
		k.WallJumpTimer--
		k.Velocity[0] = prevVX
	}

	k.Integrate()
}

// applyGravity pulls the player down, more gently while wall sliding
func (s *MovementSystem) applyGravity(k *entity.Kinematics) {
	gravity := s.config.Physics.Gravity
	if k.State == movement.WallSliding {
		gravity *= s.config.Physics.WallSlideGravity
	}
	k.Velocity[1] -= gravity
}

// applyRun sets horizontal velocity from the held direction and maintains
// the run timer
func (s *MovementSystem) applyRun(k *entity.Kinematics, input InputFrame) {
	dir := input.Direction()
	if dir == 0 {
		k.Velocity[0] = 0
		k.RunTimer = 0
		return
	}

	speed := s.config.Movement.MoveSpeed
	if k.RunTimer > s.config.Movement.RunThreshold && k.State != movement.WallJumping {
		speed = s.config.Movement.RunSpeed
	}
	k.Velocity[0] = float64(dir) * speed

	if k.State == movement.Grounded {
		k.RunTimer++
	}
}

// handleJump launches the player off the ground
func (s *MovementSystem) handleJump(k *entity.Kinematics) {
	if k.State != movement.Grounded {
		return
	}
	k.Velocity[1] = s.config.Jump.Speed
	k.State = movement.Next(k.State, movement.EventJumpPressed)
}

// handleWallJump kicks the player off a wall, away from the side it was
// pressed against, and arms the horizontal lock
func (s *MovementSystem) handleWallJump(k *entity.Kinematics, prevVX float64) bool {
	if k.State != movement.WallSliding {
		return false
	}
	away := 1.0
	if prevVX > 0 {
		away = -1.0
	}
	k.Velocity[0] = away * s.config.Movement.RunSpeed
	k.Velocity[1] = s.config.Jump.Speed
	k.State = movement.Next(k.State, movement.EventJumpPressed)
	k.WallJumpTimer = s.config.WallJump.LockTicks
	return true
}
