package replay

import "github.com/younwookim/wallhop/internal/application/system"

// Replayer handles input playback from recorded data
type Replayer struct {
	data  ReplayData
	frame int
}

// NewReplayer creates a new replayer from replay data
func NewReplayer(data ReplayData) *Replayer {
	return &Replayer{
		data:  data,
		frame: 0,
	}
}

// GetInput returns the input for the current frame and advances
func (r *Replayer) GetInput() (system.InputFrame, bool) {
	if r.frame >= len(r.data.Frames) {
		return system.InputFrame{}, false
	}

	fi := r.data.Frames[r.frame]
	r.frame++

	return fi.InputFrame(), true
}

// CurrentFrame returns the current frame number
func (r *Replayer) CurrentFrame() int {
	return r.frame
}

// TotalFrames returns the total number of frames
func (r *Replayer) TotalFrames() int {
	return len(r.data.Frames)
}

// Stage returns the stage the replay was recorded on
func (r *Replayer) Stage() string {
	return r.data.Stage
}

// Run feeds every remaining frame to sim and returns the number of ticks run
func (r *Replayer) Run(sim *system.Simulation) int {
	n := 0
	for {
		input, ok := r.GetInput()
		if !ok {
			return n
		}
		sim.Step(input)
		n++
	}
}
