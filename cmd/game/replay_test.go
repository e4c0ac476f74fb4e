package main

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/wallhop/internal/application/replay"
	"github.com/younwookim/wallhop/internal/application/system"
	"github.com/younwookim/wallhop/internal/domain/movement"
	"github.com/younwookim/wallhop/internal/infrastructure/config"
)

func createTestLoader() *config.Loader {
	return config.NewLoader("configs")
}

func TestLoadLevel(t *testing.T) {
	loader := createTestLoader()

	t.Run("json stage", func(t *testing.T) {
		level, err := loadLevel(loader, "demo", "")
		require.NoError(t, err)
		assert.Equal(t, "Demo Shaft", level.Name)
		assert.Len(t, level.Boxes, 8)
	})

	t.Run("tiled level wins over stage", func(t *testing.T) {
		level, err := loadLevel(loader, "demo", "demo")
		require.NoError(t, err)
		assert.Len(t, level.Boxes, 5)
		assert.Equal(t, 1, level.LethalCount())
	})

	t.Run("missing stage", func(t *testing.T) {
		_, err := loadLevel(loader, "nope", "")
		assert.Error(t, err)
	})
}

func TestEmbeddedConfigs(t *testing.T) {
	_, err := configFS.ReadFile("configs/physics.json")
	assert.NoError(t, err)
	_, err = configFS.ReadFile("configs/levels/demo.tmx")
	assert.NoError(t, err)
}

func TestRunReplay_IdlePlayerSettles(t *testing.T) {
	loader := createTestLoader()
	cfg, err := loader.LoadPhysics()
	require.NoError(t, err)
	level, err := loadLevel(loader, "demo", "")
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "idle.json")
	rec := replay.NewRecorder(level.Name)
	for iter := 0; iter < 240; iter++ {
		rec.RecordFrame(system.InputFrame{})
	}
	require.NoError(t, rec.Save(path))

	result, err := runReplay(cfg, level, path)
	require.NoError(t, err)

	assert.Equal(t, 240, result.Ticks)
	assert.Equal(t, movement.Grounded, result.Kinematics.State)
	assert.Equal(t, 0.0, result.Kinematics.Velocity.Y(), "resting player must not oscillate")
	assert.Zero(t, result.Stats.Deaths)
	assert.Contains(t, result.String(), "ticks=240")
}

func TestRunReplay_MatchesLiveRun(t *testing.T) {
	loader := createTestLoader()
	cfg, err := loader.LoadPhysics()
	require.NoError(t, err)
	level, err := loadLevel(loader, "demo", "")
	require.NoError(t, err)

	// Walk right off the ledge, jumping now and then.
	sim := system.NewSimulation(cfg, level)
	rec := replay.NewRecorder(level.Name)
	for i := 0; i < 300; i++ {
		var in system.InputFrame
		in.Right = system.ButtonState{Pressed: true, JustPressed: i == 0}
		if i%45 == 44 {
			in.Jump = system.ButtonState{Pressed: true, JustPressed: true}
		}
		rec.RecordFrame(in)
		sim.Step(in)
	}

	path := filepath.Join(t.TempDir(), "walk"+replay.MsgpackExt)
	require.NoError(t, rec.Save(path))

	result, err := runReplay(cfg, level, path)
	require.NoError(t, err)

	assert.Equal(t, sim.Player().Kinematics, result.Kinematics)
	assert.Equal(t, sim.Stats(), result.Stats)
}

func TestRunReplay_MissingFile(t *testing.T) {
	loader := createTestLoader()
	cfg, err := loader.LoadPhysics()
	require.NoError(t, err)
	level, err := loadLevel(loader, "demo", "")
	require.NoError(t, err)

	_, err = runReplay(cfg, level, filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}
