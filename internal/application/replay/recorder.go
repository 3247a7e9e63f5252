package replay

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/younwookim/arcade/internal/application/input"
)

// Recorder collects every frame the game loop hands to a view, together
// with the frame's elapsed time, so playback moves by the same amounts.
type Recorder struct {
	data      Data
	recording bool
}

// NewRecorder creates a recorder that starts recording immediately
func NewRecorder() *Recorder {
	return &Recorder{
		data: Data{
			Version:   Version,
			StartTime: time.Now().Format(time.RFC3339),
			Frames:    make([]FrameInput, 0, 3600), // Pre-allocate for ~1 minute at 60fps
		},
		recording: true,
	}
}

// Record appends one frame
func (r *Recorder) Record(elapsed float64, s input.State) {
	if !r.recording {
		return
	}
	r.data.Frames = append(r.data.Frames, frameFromState(len(r.data.Frames), elapsed, s))
}

// Save writes the replay data to a file
func (r *Recorder) Save(filename string) error {
	if len(r.data.Frames) == 0 {
		return fmt.Errorf("no frames to save")
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer func() { _ = file.Close() }()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(r.data); err != nil {
		return fmt.Errorf("failed to encode replay: %w", err)
	}

	return nil
}

// Stop stops recording
func (r *Recorder) Stop() {
	r.recording = false
}

// FrameCount returns the number of recorded frames
func (r *Recorder) FrameCount() int {
	return len(r.data.Frames)
}

// Data returns the recorded data
func (r *Recorder) Data() Data {
	return r.data
}

// GenerateFilename creates a filename based on current time
func GenerateFilename() string {
	return fmt.Sprintf("replay_%s.json", time.Now().Format("20060102_150405"))
}
