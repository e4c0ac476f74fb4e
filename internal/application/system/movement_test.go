package system

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"

	"github.com/younwookim/wallhop/internal/domain/entity"
	"github.com/younwookim/wallhop/internal/domain/movement"
	"github.com/younwookim/wallhop/internal/infrastructure/config"
)

func createTestConfig() *config.PhysicsConfig {
	return &config.PhysicsConfig{
		Physics: config.PhysicsSettings{
			Gravity:          0.5,
			WallSlideGravity: 0.5,
		},
		Movement: config.MovementConfig{
			MoveSpeed:    4,
			RunSpeed:     7,
			RunThreshold: 30,
		},
		Jump: config.JumpConfig{
			Speed:                  11,
			VariableJumpMultiplier: 0.5,
		},
		WallJump: config.WallJumpConfig{
			LockTicks: 15,
			WallNudge: 0.1,
			SlideDamp: 0.8,
		},
		Collision: config.CollisionConfig{
			LethalPriority: true,
			CellSize:       32,
		},
		Player: config.PlayerConfig{
			HalfWidth:  12,
			HalfHeight: 24,
		},
	}
}

func createTestPlayer(state movement.State, vx, vy float64) *entity.Player {
	p := entity.NewPlayer(mgl64.Vec3{0, 0, 0}, 12, 24)
	p.State = state
	p.Velocity = mgl64.Vec2{vx, vy}
	return p
}

func TestMovementSystem_Gravity(t *testing.T) {
	sys := NewMovementSystem(createTestConfig())

	t.Run("falls while airborne", func(t *testing.T) {
		p := createTestPlayer(movement.Jumping, 0, 0)

		sys.Update(p, InputFrame{})

		assert.Equal(t, -0.5, p.Velocity.Y())
		assert.Equal(t, -0.5, p.Position.Y())
	})

	t.Run("half gravity while wall sliding", func(t *testing.T) {
		p := createTestPlayer(movement.WallSliding, 0.1, -1)

		sys.Update(p, InputFrame{})

		assert.Equal(t, -1.25, p.Velocity.Y())
		assert.Equal(t, 0.0, p.Velocity.X())
	})

	t.Run("accumulates over ticks", func(t *testing.T) {
		p := createTestPlayer(movement.Jumping, 0, 0)

		for iter := 0; iter < 4; iter++ {
			sys.Update(p, InputFrame{})
		}

		assert.Equal(t, -2.0, p.Velocity.Y())
		assert.Equal(t, -5.0, p.Position.Y())
	})

	t.Run("depth is untouched", func(t *testing.T) {
		p := createTestPlayer(movement.Jumping, 0, 0)
		p.Position[2] = 3

		sys.Update(p, InputFrame{Right: held})

		assert.Equal(t, 3.0, p.Position.Z())
	})
}

func TestMovementSystem_Run(t *testing.T) {
	sys := NewMovementSystem(createTestConfig())

	tests := []struct {
		name      string
		state     movement.State
		runTimer  int
		input     InputFrame
		wantVX    float64
		wantTimer int
	}{
		{"walk right", movement.Grounded, 0, InputFrame{Right: held}, 4, 1},
		{"walk left", movement.Grounded, 3, InputFrame{Left: held}, -4, 4},
		{"at threshold still walks", movement.Grounded, 30, InputFrame{Right: held}, 4, 31},
		{"past threshold runs", movement.Grounded, 31, InputFrame{Right: held}, 7, 32},
		{"airborne keeps running speed", movement.Jumping, 31, InputFrame{Left: held}, -7, 31},
		{"airborne does not count", movement.Jumping, 5, InputFrame{Right: held}, 4, 5},
		{"wall jumping never runs", movement.WallJumping, 31, InputFrame{Right: held}, 4, 31},
		{"no direction resets", movement.Grounded, 40, InputFrame{}, 0, 0},
		{"both directions reset", movement.Grounded, 40, InputFrame{Left: held, Right: held}, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := createTestPlayer(tt.state, 2, 0)
			p.RunTimer = tt.runTimer

			sys.Update(p, tt.input)

			assert.Equal(t, tt.wantVX, p.Velocity.X())
			assert.Equal(t, tt.wantTimer, p.RunTimer)
		})
	}
}

func TestMovementSystem_RunBuildsUp(t *testing.T) {
	sys := NewMovementSystem(createTestConfig())
	p := createTestPlayer(movement.Grounded, 0, 0)

	for iter := 0; iter < 31; iter++ {
		sys.Update(p, InputFrame{Right: held})
		assert.Equal(t, 4.0, p.Velocity.X())
	}

	sys.Update(p, InputFrame{Right: held})
	assert.Equal(t, 7.0, p.Velocity.X())

	sys.Update(p, InputFrame{})
	assert.Equal(t, 0, p.RunTimer)
	assert.Equal(t, 0.0, p.Velocity.X())
}

func TestMovementSystem_Jump(t *testing.T) {
	sys := NewMovementSystem(createTestConfig())

	t.Run("jumps from the ground", func(t *testing.T) {
		p := createTestPlayer(movement.Grounded, 0, 0)

		sys.Update(p, InputFrame{Jump: pressed})

		assert.Equal(t, 11.0, p.Velocity.Y())
		assert.Equal(t, 11.0, p.Position.Y())
		assert.Equal(t, movement.Jumping, p.State)
	})

	t.Run("holding without a fresh press does nothing", func(t *testing.T) {
		p := createTestPlayer(movement.Grounded, 0, 0)

		sys.Update(p, InputFrame{Jump: held})

		assert.Equal(t, -0.5, p.Velocity.Y())
		assert.Equal(t, movement.Grounded, p.State)
	})

	t.Run("no jump in the air", func(t *testing.T) {
		p := createTestPlayer(movement.Jumping, 0, -3)

		sys.Update(p, InputFrame{Jump: pressed})

		assert.Equal(t, -3.5, p.Velocity.Y())
		assert.Equal(t, movement.Jumping, p.State)
	})
}

func TestMovementSystem_VariableJump(t *testing.T) {
	sys := NewMovementSystem(createTestConfig())

	t.Run("released while rising cuts velocity", func(t *testing.T) {
		p := createTestPlayer(movement.Jumping, 0, 8)

		sys.Update(p, InputFrame{})

		assert.Equal(t, 3.75, p.Velocity.Y())
	})

	t.Run("held keeps velocity", func(t *testing.T) {
		p := createTestPlayer(movement.Jumping, 0, 8)

		sys.Update(p, InputFrame{Jump: held})

		assert.Equal(t, 7.5, p.Velocity.Y())
	})

	t.Run("falling is not affected", func(t *testing.T) {
		p := createTestPlayer(movement.Jumping, 0, -2)

		sys.Update(p, InputFrame{})

		assert.Equal(t, -2.5, p.Velocity.Y())
	})

	t.Run("tap jump is shortened on the same tick", func(t *testing.T) {
		p := createTestPlayer(movement.Grounded, 0, 0)

		sys.Update(p, InputFrame{Jump: ButtonState{JustPressed: true, JustReleased: true}})

		assert.Equal(t, 5.5, p.Velocity.Y())
	})
}

func TestMovementSystem_WallJump(t *testing.T) {
	sys := NewMovementSystem(createTestConfig())

	t.Run("kicks away from a wall on the right", func(t *testing.T) {
		p := createTestPlayer(movement.WallSliding, 0.1, -2)

		sys.Update(p, InputFrame{Jump: pressed, Right: held})

		assert.Equal(t, -7.0, p.Velocity.X())
		assert.Equal(t, 11.0, p.Velocity.Y())
		assert.Equal(t, movement.WallJumping, p.State)
		assert.Equal(t, 15, p.WallJumpTimer)
		assert.Equal(t, mgl64.Vec2{-7, 11}, p.Pos2())
	})

	t.Run("kicks away from a wall on the left", func(t *testing.T) {
		p := createTestPlayer(movement.WallSliding, -0.1, -2)

		sys.Update(p, InputFrame{Jump: pressed})

		assert.Equal(t, 7.0, p.Velocity.X())
		assert.Equal(t, movement.WallJumping, p.State)
	})

	t.Run("zero horizontal velocity kicks right", func(t *testing.T) {
		p := createTestPlayer(movement.WallSliding, 0, -2)

		sys.Update(p, InputFrame{Jump: pressed})

		assert.Equal(t, 7.0, p.Velocity.X())
	})

	t.Run("fresh wall jump during a lock re-arms it", func(t *testing.T) {
		p := createTestPlayer(movement.WallSliding, -0.1, -1)
		p.WallJumpTimer = 5

		sys.Update(p, InputFrame{Jump: pressed})

		assert.Equal(t, 7.0, p.Velocity.X())
		assert.Equal(t, 15, p.WallJumpTimer)
	})
}

func TestMovementSystem_WallJumpLock(t *testing.T) {
	sys := NewMovementSystem(createTestConfig())
	p := createTestPlayer(movement.WallSliding, 0.1, -2)

	sys.Update(p, InputFrame{Jump: pressed, Right: held})
	assert.Equal(t, 15, p.WallJumpTimer)

	for i := 0; i < 15; i++ {
		sys.Update(p, InputFrame{Jump: held, Right: held})
		assert.Equal(t, -7.0, p.Velocity.X(), "tick %d", i)
		assert.Equal(t, 14-i, p.WallJumpTimer)
	}

	sys.Update(p, InputFrame{Jump: held, Right: held})
	assert.Equal(t, 4.0, p.Velocity.X())
	assert.Equal(t, 0, p.WallJumpTimer)
}
