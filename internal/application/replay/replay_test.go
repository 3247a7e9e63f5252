package replay

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/younwookim/arcade/internal/application/input"
)

func TestRecorder_Records(t *testing.T) {
	rec := NewRecorder()
	rec.Record(0.016, input.State{Right: true})
	rec.Record(0.017, input.State{Up: true, Left: true, UpPressed: true})
	rec.Record(0.016, input.State{ConfirmPressed: true})

	data := rec.Data()
	require.Len(t, data.Frames, 3)
	assert.Equal(t, Version, data.Version)
	assert.Equal(t, FrameInput{F: 1, Dt: 0.017, U: true, L: true, UP: true}, data.Frames[1])
	assert.Equal(t, 2, data.Frames[2].F)
	assert.True(t, data.Frames[2].C)
}

func TestRecorder_Stop(t *testing.T) {
	rec := NewRecorder()
	rec.Record(0.016, input.State{})
	rec.Stop()
	rec.Record(0.016, input.State{})

	assert.Equal(t, 1, rec.FrameCount())
}

func TestRecorder_SaveEmpty(t *testing.T) {
	rec := NewRecorder()
	err := rec.Save(filepath.Join(t.TempDir(), "empty.json"))
	assert.Error(t, err)
}

func TestRecordThenReplay(t *testing.T) {
	frames := []struct {
		elapsed float64
		state   input.State
	}{
		{0.016, input.State{Down: true}},
		{0.025, input.State{Down: true, Right: true}},
		{0.017, input.State{EscapePressed: true}},
		{0.033, input.State{DownPressed: true, Quit: true}},
	}
	rec := NewRecorder()
	for _, f := range frames {
		rec.Record(f.elapsed, f.state)
	}

	path := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, rec.Save(path))

	data, err := Load(path)
	require.NoError(t, err)

	replayer := NewReplayer(*data)
	assert.Equal(t, len(frames), replayer.TotalFrames())

	for i, want := range frames {
		assert.Equal(t, want.state, replayer.Poll(), "frame %d", i)
		assert.Equal(t, want.state, replayer.Poll(), "polling twice stays on frame %d", i)

		f, ok := replayer.Tick()
		require.True(t, ok)
		assert.InDelta(t, want.elapsed, f.Elapsed, 1e-12, "frame %d", i)
	}
	assert.True(t, replayer.Done())
}

func TestReplayer_QuitsWhenExhausted(t *testing.T) {
	replayer := NewReplayer(Data{Version: Version, Frames: []FrameInput{{F: 0, Dt: 0.016, L: true}}})

	assert.True(t, replayer.Poll().Left)
	_, ok := replayer.Tick()
	require.True(t, ok)

	assert.Equal(t, input.State{Quit: true}, replayer.Poll())
	f, ok := replayer.Tick()
	assert.True(t, ok, "the quitting frame still runs")
	assert.Zero(t, f.Elapsed)

	replayer.Reset()
	assert.Equal(t, 0, replayer.CurrentFrame())
	assert.True(t, replayer.Poll().Left)
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(filepath.Join(dir, "nope.json"))
	assert.Error(t, err)

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte("{"), 0o644))
	_, err = Load(bad)
	assert.Error(t, err)

	old := filepath.Join(dir, "old.json")
	require.NoError(t, os.WriteFile(old, []byte(`{"version":"1.0","frames":[]}`), 0o644))
	_, err = Load(old)
	assert.ErrorContains(t, err, "unsupported")
}

func TestGenerateFilename(t *testing.T) {
	name := GenerateFilename()
	assert.Regexp(t, `^replay_\d{8}_\d{6}\.json$`, name)
}
