package config

// PhysicsConfig is the root config for physics.json
type PhysicsConfig struct {
	Display   DisplayConfig   `json:"display"`
	Physics   PhysicsSettings `json:"physics"`
	Movement  MovementConfig  `json:"movement"`
	Jump      JumpConfig      `json:"jump"`
	WallJump  WallJumpConfig  `json:"wallJump"`
	Collision CollisionConfig `json:"collision"`
	Player    PlayerConfig    `json:"player"`
}

type DisplayConfig struct {
	ScreenWidth  int `json:"screenWidth"`
	ScreenHeight int `json:"screenHeight"`
	Scale        int `json:"scale"`
	Framerate    int `json:"framerate"`
}

// PhysicsSettings values are per tick; the simulation has no delta time.
type PhysicsSettings struct {
	Gravity          float64 `json:"gravity"`
	WallSlideGravity float64 `json:"wallSlideGravity"` // multiplier while wall sliding
}

type MovementConfig struct {
	MoveSpeed    float64 `json:"moveSpeed"`
	RunSpeed     float64 `json:"runSpeed"`
	RunThreshold int     `json:"runThreshold"` // ticks of held direction before running
}

type JumpConfig struct {
	Speed                  float64 `json:"speed"`
	VariableJumpMultiplier float64 `json:"variableJumpMultiplier"`
}

type WallJumpConfig struct {
	LockTicks int     `json:"lockTicks"`
	WallNudge float64 `json:"wallNudge"`
	SlideDamp float64 `json:"slideDamp"`
}

type CollisionConfig struct {
	// LethalPriority makes any death-plane contact win the tick regardless of
	// the order boxes were authored in.
	LethalPriority bool `json:"lethalPriority"`
	CellSize       int  `json:"cellSize"`
}

type PlayerConfig struct {
	HalfWidth  float64 `json:"halfWidth"`
	HalfHeight float64 `json:"halfHeight"`
}

// DefaultPhysics returns the tuning the game ships with
func DefaultPhysics() *PhysicsConfig {
	return &PhysicsConfig{
		Display: DisplayConfig{
			ScreenWidth:  640,
			ScreenHeight: 360,
			Scale:        2,
			Framerate:    60,
		},
		Physics: PhysicsSettings{
			Gravity:          0.5,
			WallSlideGravity: 0.5,
		},
		Movement: MovementConfig{
			MoveSpeed:    4,
			RunSpeed:     7,
			RunThreshold: 30,
		},
		Jump: JumpConfig{
			Speed:                  11,
			VariableJumpMultiplier: 0.5,
		},
		WallJump: WallJumpConfig{
			LockTicks: 15,
			WallNudge: 0.1,
			SlideDamp: 0.8,
		},
		Collision: CollisionConfig{
			LethalPriority: true,
			CellSize:       32,
		},
		Player: PlayerConfig{
			HalfWidth:  12,
			HalfHeight: 24,
		},
	}
}
