// Package playing provides the main gameplay scene.
package playing

import (
	"fmt"
	"image/color"
	"log"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/younwookim/wallhop/internal/application/replay"
	"github.com/younwookim/wallhop/internal/application/scene"
	"github.com/younwookim/wallhop/internal/application/state"
	"github.com/younwookim/wallhop/internal/application/system"
	"github.com/younwookim/wallhop/internal/domain/entity"
	"github.com/younwookim/wallhop/internal/domain/movement"
	"github.com/younwookim/wallhop/internal/infrastructure/config"
)

// Colors for rendering
var (
	colorWall       = color.RGBA{80, 80, 100, 255}
	colorDeath      = color.RGBA{200, 50, 50, 255}
	colorPlayer     = color.RGBA{100, 200, 100, 255}
	colorWallSlide  = color.RGBA{100, 160, 220, 255}
	colorWallJump   = color.RGBA{220, 200, 100, 255}
	colorCheckpoint = color.RGBA{255, 215, 0, 96}
	colorBG         = color.RGBA{26, 26, 46, 255}
)

// Poller supplies one tick of raw device input
type Poller interface {
	Poll() system.RawFrame
}

// Playing is the main gameplay scene
type Playing struct {
	config *config.GameConfig
	level  *entity.Level
	sim    *system.Simulation
	state  state.GameState
	poller Poller
	input  *system.InputSystem

	screenW int
	screenH int

	// pauseToggled and saveRequested read the scene-level keys
	pauseToggled  func() bool
	saveRequested func() bool

	// Input recording
	recorder       *replay.Recorder
	recordFilename string
}

// New creates a new Playing scene.
// If recordPath is not empty, gameplay will be recorded.
func New(cfg *config.GameConfig, level *entity.Level, poller Poller, recordPath string) *Playing {
	p := &Playing{
		config:         cfg,
		level:          level,
		sim:            system.NewSimulation(cfg.Physics, level),
		state:          state.StatePlaying,
		poller:         poller,
		input:          system.NewInputSystem(),
		screenW:        cfg.Physics.Display.ScreenWidth,
		screenH:        cfg.Physics.Display.ScreenHeight,
		pauseToggled:   func() bool { return inpututil.IsKeyJustPressed(ebiten.KeyEscape) },
		saveRequested:  func() bool { return inpututil.IsKeyJustPressed(ebiten.KeyF5) },
		recordFilename: recordPath,
	}

	// Initialize recorder if recording is enabled
	if recordPath != "" {
		p.recorder = replay.NewRecorder(level.Name)
		log.Printf("Recording enabled: %s", recordPath)
	}

	return p
}

// Update advances the game by one tick (implements scene.Scene)
func (p *Playing) Update() (scene.Scene, error) {
	if p.pauseToggled() {
		p.state = p.state.TogglePause()
	}

	// Devices are polled while paused so edges and plug events stay current.
	frame := p.input.Aggregate(p.poller.Poll())
	if !p.state.Ticking() {
		return nil, nil
	}

	// F5: Save recording manually
	if p.saveRequested() && p.recorder != nil {
		p.saveRecording()
	}

	if p.recorder != nil {
		p.recorder.RecordFrame(frame)
	}

	p.report(p.sim.Step(frame))

	return nil, nil // nil = stay on this scene
}

// report logs the events of a tick
func (p *Playing) report(res system.TickResult) {
	player := p.sim.Player()
	if res.Contact.Died {
		log.Printf("Tick %d: died on %q, respawned at (%.1f, %.1f)",
			res.Tick, res.Contact.Death, player.Position.X(), player.Position.Y())
	}
	if res.Saved {
		log.Printf("Tick %d: checkpoint saved at (%.1f, %.1f) %s",
			res.Tick, player.Position.X(), player.Position.Y(), player.State)
	}
	if res.Loaded {
		log.Printf("Tick %d: checkpoint loaded at (%.1f, %.1f) %s",
			res.Tick, player.Position.X(), player.Position.Y(), player.State)
	}
}

// saveRecording saves the current recording to file
func (p *Playing) saveRecording() {
	if p.recorder == nil || p.recorder.FrameCount() == 0 {
		return
	}

	filename := p.recordFilename
	if filename == "" {
		filename = replay.GenerateFilename(".json")
	}

	if err := p.recorder.Save(filename); err != nil {
		log.Printf("Failed to save recording: %v", err)
	} else {
		log.Printf("Recording saved: %s (%d frames)", filename, p.recorder.FrameCount())
	}
}

// Simulation returns the running simulation
func (p *Playing) Simulation() *system.Simulation {
	return p.sim
}

// State returns whether the scene is playing or paused
func (p *Playing) State() state.GameState {
	return p.state
}

// camera returns the world point shown at the screen center
func (p *Playing) camera() mgl64.Vec2 {
	return p.sim.Player().Pos2()
}

// toScreen converts a world point (Y up) to screen pixels (Y down)
func (p *Playing) toScreen(world, cam mgl64.Vec2) (float64, float64) {
	return world.X() - cam.X() + float64(p.screenW)/2,
		float64(p.screenH)/2 - (world.Y() - cam.Y())
}

// Draw renders the game (implements scene.Scene)
func (p *Playing) Draw(screen *ebiten.Image) {
	screen.Fill(colorBG)
	cam := p.camera()

	for _, b := range p.level.Boxes {
		c := colorWall
		if b.Lethal {
			c = colorDeath
		}
		p.drawBox(screen, cam, b.Center, b.HalfSize, c)
	}

	player := p.sim.Player()
	if saved, ok := p.sim.Checkpoint().Slot(); ok {
		p.drawBox(screen, cam, saved.Pos2(), player.HalfSize, colorCheckpoint)
	}
	p.drawBox(screen, cam, player.Pos2(), player.HalfSize, playerColor(player.State))

	ebitenutil.DebugPrint(screen, p.hudText())

	if p.state == state.StatePaused {
		p.drawPauseOverlay(screen)
	}
}

func (p *Playing) drawBox(screen *ebiten.Image, cam, center, half mgl64.Vec2, c color.Color) {
	x, y := p.toScreen(mgl64.Vec2{center.X() - half.X(), center.Y() + half.Y()}, cam)
	ebitenutil.DrawRect(screen, x, y, 2*half.X(), 2*half.Y(), c)
}

func playerColor(s movement.State) color.Color {
	switch s {
	case movement.WallSliding:
		return colorWallSlide
	case movement.WallJumping:
		return colorWallJump
	default:
		return colorPlayer
	}
}

// hudText renders the debug readout
func (p *Playing) hudText() string {
	pl := p.sim.Player()
	stats := p.sim.Stats()
	text := fmt.Sprintf("%s  tick %d\npos (%.1f, %.1f)  vel (%.2f, %.2f)\n%s  run %d  lock %d\ndeaths %d  landings %d  walls %d",
		p.level.Name, p.sim.Tick(),
		pl.Position.X(), pl.Position.Y(), pl.Velocity.X(), pl.Velocity.Y(),
		pl.State, pl.RunTimer, pl.WallJumpTimer,
		stats.Deaths, stats.Landings, stats.WallContacts)

	if saved, ok := p.sim.Checkpoint().Slot(); ok {
		text += fmt.Sprintf("\ncheckpoint (%.1f, %.1f) %s", saved.Position.X(), saved.Position.Y(), saved.State)
	}
	if p.recorder != nil && p.recorder.IsRecording() {
		text += fmt.Sprintf("\nREC %d", p.recorder.FrameCount())
	}
	return text
}

func (p *Playing) drawPauseOverlay(screen *ebiten.Image) {
	overlay := color.RGBA{0, 0, 0, 160}
	ebitenutil.DrawRect(screen, 0, 0, float64(p.screenW), float64(p.screenH), overlay)
	ebitenutil.DebugPrintAt(screen, "PAUSED\nESC to resume", p.screenW/2-40, p.screenH/2-10)
}

// OnEnter is called when entering this scene (implements scene.Scene)
func (p *Playing) OnEnter() {}

// OnExit is called when leaving this scene (implements scene.Scene)
func (p *Playing) OnExit() {
	p.saveRecording()
	if p.recorder != nil {
		p.recorder.Stop()
	}
}
