package game

import (
	"image/color"
	"testing"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/younwookim/arcade/internal/application/frame"
	"github.com/younwookim/arcade/internal/application/input"
	"github.com/younwookim/arcade/internal/application/replay"
	"github.com/younwookim/arcade/internal/application/view"
	"github.com/younwookim/arcade/internal/application/view/screens"
	"github.com/younwookim/arcade/internal/domain/sprite"
	"github.com/younwookim/arcade/internal/infrastructure/config"
	"go.uber.org/zap/zaptest"
)

// blankAssets returns empty textures sized for the default config
type blankAssets struct{}

func (blankAssets) Image(path string) (sprite.Sprite, error) {
	if path == config.DefaultConfig().Ship.Sheet {
		return sprite.New(ebiten.NewImage(129, 117)), nil
	}
	return sprite.New(ebiten.NewImage(200, 100)), nil
}

func (blankAssets) Text(label string, size float64, clr color.Color) (sprite.Sprite, error) {
	return sprite.New(ebiten.NewImage(len(label)*int(size)/2, int(size))), nil
}

func newShipView(t *testing.T) (*view.Context, *screens.ShipView) {
	t.Helper()
	ctx := view.NewContext(config.DefaultConfig(), blankAssets{}, zaptest.NewLogger(t))
	bg, err := screens.LoadBackgrounds(ctx)
	require.NoError(t, err)
	v, err := screens.NewShipView(ctx, bg)
	require.NoError(t, err)
	return ctx, v
}

func TestReplay_ReproducesSessionAtAnyCadence(t *testing.T) {
	// Record with an uneven wall clock, including ticks the clock skips
	ctx, recorded := newShipView(t)
	now := time.Unix(0, 0)
	clock := frame.NewClockWithSource(60, time.Second, func() time.Time { return now })
	steering := input.State{Right: true, Down: true}
	rec := replay.NewRecorder()
	g := New(ctx, input.SourceFunc(func() input.State { return steering }), clock, recorded, WithRecorder(rec))

	cadence := []time.Duration{17, 25, 10, 40, 16}
	for i := 0; i < 30; i++ {
		now = now.Add(cadence[i%len(cadence)] * time.Millisecond)
		require.NoError(t, g.Update())
	}
	steering = input.State{Left: true}
	for i := 0; i < 7; i++ {
		now = now.Add(33 * time.Millisecond)
		require.NoError(t, g.Update())
	}
	want := recorded.Ship().Rect
	require.NotEqual(t, 64.0, want.X, "ship moved while recording")

	// Play back: the recording paces every frame
	ctx2, replayed := newShipView(t)
	player := replay.NewReplayer(rec.Data())
	g2 := New(ctx2, player, player, replayed)
	for !player.Done() {
		require.NoError(t, g2.Update())
	}

	assert.Equal(t, want, replayed.Ship().Rect)
	assert.Equal(t, recorded.Ship().Current, replayed.Ship().Current)
	assert.ErrorIs(t, g2.Update(), ebiten.Termination, "replay quits once exhausted")
}
