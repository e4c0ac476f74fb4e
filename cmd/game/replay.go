package main

import (
	"fmt"
	"log"

	"github.com/younwookim/wallhop/internal/application/replay"
	"github.com/younwookim/wallhop/internal/application/system"
	"github.com/younwookim/wallhop/internal/domain/entity"
	"github.com/younwookim/wallhop/internal/infrastructure/config"
)

// ReplayResult is the outcome of a headless replay
type ReplayResult struct {
	Ticks      int
	Kinematics entity.Kinematics
	Stats      system.CollisionStats
}

func (r ReplayResult) String() string {
	k := r.Kinematics
	return fmt.Sprintf("ticks=%d pos=(%.3f, %.3f) vel=(%.3f, %.3f) state=%s run=%d lock=%d deaths=%d",
		r.Ticks, k.Position.X(), k.Position.Y(), k.Velocity.X(), k.Velocity.Y(),
		k.State, k.RunTimer, k.WallJumpTimer, r.Stats.Deaths)
}

// runReplay feeds a recorded session through a fresh simulation
func runReplay(cfg *config.PhysicsConfig, level *entity.Level, filename string) (ReplayResult, error) {
	data, err := replay.LoadReplay(filename)
	if err != nil {
		return ReplayResult{}, err
	}
	replayer := replay.NewReplayer(*data)
	if replayer.Stage() != level.Name {
		log.Printf("Replay was recorded on %q, running on %q", replayer.Stage(), level.Name)
	}

	sim := system.NewSimulation(cfg, level)
	ticks := replayer.Run(sim)
	log.Printf("Replayed %d/%d frames from %s", ticks, replayer.TotalFrames(), filename)

	return ReplayResult{
		Ticks:      ticks,
		Kinematics: sim.Player().Kinematics,
		Stats:      sim.Stats(),
	}, nil
}
