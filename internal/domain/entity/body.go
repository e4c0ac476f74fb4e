package entity

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/younwookim/wallhop/internal/domain/movement"
)

// Kinematics is the full kinematic state of the player.
// Every field is a value type, so assigning a Kinematics copies it.
type Kinematics struct {
	Position      mgl64.Vec3 // Z is depth, held constant
	Velocity      mgl64.Vec2
	State         movement.State
	RunTimer      int // consecutive grounded ticks with one direction held
	WallJumpTimer int // ticks left in the wall-jump horizontal lock
}

// Pos2 returns the position without the depth coordinate
func (k *Kinematics) Pos2() mgl64.Vec2 {
	return k.Position.Vec2()
}

// SetX sets the horizontal position
func (k *Kinematics) SetX(x float64) {
	k.Position[0] = x
}

// SetY sets the vertical position
func (k *Kinematics) SetY(y float64) {
	k.Position[1] = y
}

// Integrate moves the position by one tick of velocity
func (k *Kinematics) Integrate() {
	k.Position[0] += k.Velocity.X()
	k.Position[1] += k.Velocity.Y()
}

// Reset puts the kinematics back at a spawn point: zero velocity, airborne,
// timers cleared. The spawn's depth is kept as given.
func (k *Kinematics) Reset(spawn mgl64.Vec3) {
	*k = Kinematics{
		Position: spawn,
		State:    movement.Jumping,
	}
}

// Player is the single player entity
type Player struct {
	Kinematics
	HalfSize mgl64.Vec2
}

// NewPlayer creates a player at spawn with half-extent size (hw, hh).
// It starts airborne with zero velocity and cleared timers.
func NewPlayer(spawn mgl64.Vec3, hw, hh float64) *Player {
	p := &Player{HalfSize: mgl64.Vec2{hw, hh}}
	p.Reset(spawn)
	return p
}

// Checkpoint is the single save slot. It owns its own copy of the kinematics.
type Checkpoint struct {
	Kinematics Kinematics
	Saved      bool
}

// NewCheckpoint creates an empty slot holding the default kinematics
func NewCheckpoint() *Checkpoint {
	return &Checkpoint{Kinematics: Kinematics{State: movement.Jumping}}
}

// Save copies the player's kinematics into the slot
func (c *Checkpoint) Save(p *Player) {
	c.Kinematics = p.Kinematics
	c.Saved = true
}

// Load copies the slot's kinematics onto the player
func (c *Checkpoint) Load(p *Player) {
	p.Kinematics = c.Kinematics
}
