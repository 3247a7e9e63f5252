package replay

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/younwookim/arcade/internal/application/frame"
	"github.com/younwookim/arcade/internal/application/input"
)

// Replayer plays a recording back. It is both the input source and the
// frame pacer of the loop: every tick runs the next recorded frame with its
// recorded elapsed time, whatever the wall clock says.
// Once the recording runs out it keeps requesting quit.
type Replayer struct {
	data  Data
	frame int
}

// NewReplayer creates a new replayer from replay data
func NewReplayer(data Data) *Replayer {
	return &Replayer{data: data}
}

// Load loads replay data from a file
func Load(filename string) (*Data, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var data Data
	if err := json.NewDecoder(file).Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode replay: %w", err)
	}
	if data.Version != Version {
		return nil, fmt.Errorf("unsupported replay version %q", data.Version)
	}

	return &data, nil
}

// Poll returns the input of the frame the next Tick runs
func (r *Replayer) Poll() input.State {
	if r.Done() {
		return input.State{Quit: true}
	}
	return r.data.Frames[r.frame].state()
}

// Tick runs the next recorded frame. It never skips.
func (r *Replayer) Tick() (frame.Frame, bool) {
	if r.Done() {
		return frame.Frame{}, true
	}
	f := frame.Frame{Elapsed: r.data.Frames[r.frame].Dt}
	r.frame++
	return f, true
}

// Done reports whether every frame has been played
func (r *Replayer) Done() bool {
	return r.frame >= len(r.data.Frames)
}

// CurrentFrame returns the current frame number
func (r *Replayer) CurrentFrame() int {
	return r.frame
}

// TotalFrames returns the total number of frames
func (r *Replayer) TotalFrames() int {
	return len(r.data.Frames)
}

// Reset resets the replayer to the beginning
func (r *Replayer) Reset() {
	r.frame = 0
}
