package replay

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/screenkit/internal/application/input"
	"github.com/younwookim/screenkit/internal/infrastructure/data"
)

// Replayer plays recorded frames back as an input source.
// Each Tick moves to the next frame; past the end the input is idle.
type Replayer struct {
	data    ReplayData
	frame   int
	current *input.State
}

// NewReplayer creates a new replayer from replay data
func NewReplayer(data ReplayData) *Replayer {
	return &Replayer{
		data:    data,
		current: &input.State{},
	}
}

// LoadReplay loads replay data from the data store
func LoadReplay(store *data.Store, path ...string) (*ReplayData, error) {
	var rd ReplayData
	if err := store.ReadJSON(&rd, path...); err != nil {
		return nil, fmt.Errorf("failed to load replay: %w", err)
	}
	return &rd, nil
}

// Tick advances to the next recorded frame. Implements input.Ticker.
func (r *Replayer) Tick() {
	if r.frame >= len(r.data.Frames) {
		r.current = &input.State{}
		return
	}
	r.current = decodeFrame(r.data.Frames[r.frame])
	r.frame++
}

func (r *Replayer) IsKeyPressed(key ebiten.Key) bool      { return r.current.IsKeyPressed(key) }
func (r *Replayer) IsKeyJustPressed(key ebiten.Key) bool  { return r.current.IsKeyJustPressed(key) }
func (r *Replayer) IsKeyJustReleased(key ebiten.Key) bool { return r.current.IsKeyJustReleased(key) }
func (r *Replayer) CursorPosition() (int, int)            { return r.current.CursorPosition() }

func (r *Replayer) IsMouseButtonPressed(b ebiten.MouseButton) bool {
	return r.current.IsMouseButtonPressed(b)
}

func (r *Replayer) IsMouseButtonJustPressed(b ebiten.MouseButton) bool {
	return r.current.IsMouseButtonJustPressed(b)
}

// Done reports whether every recorded frame has been played
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

// InitialScreen returns the screen the recording started on
func (r *Replayer) InitialScreen() int {
	return r.data.InitialScreen
}

// Reset resets the replayer to the beginning
func (r *Replayer) Reset() {
	r.frame = 0
	r.current = &input.State{}
}
