package replay

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/screenkit/internal/application/input"
	"github.com/younwookim/screenkit/internal/infrastructure/data"
)

// Recorder wraps an input source and records one snapshot per update.
// Screens reading from the Recorder see exactly the recorded snapshot.
type Recorder struct {
	src       input.Source
	keys      []ebiten.Key
	buttons   []ebiten.MouseButton
	current   *input.State
	data      ReplayData
	recording bool
	frame     int
}

// NewRecorder creates a recorder over src for DefaultKeys and DefaultButtons
func NewRecorder(src input.Source, initialScreen, tps int) *Recorder {
	return &Recorder{
		src:     src,
		keys:    DefaultKeys,
		buttons: DefaultButtons,
		current: &input.State{},
		data: ReplayData{
			Version:       Version,
			InitialScreen: initialScreen,
			TPS:           tps,
			StartTime:     time.Now().Format(time.RFC3339),
			Frames:        make([]FrameInput, 0, 3600), // Pre-allocate for ~1 minute at 60fps
		},
		recording: true,
	}
}

// Tick captures the wrapped source. Implements input.Ticker.
func (r *Recorder) Tick() {
	r.current = input.Capture(r.src, r.keys, r.buttons)
	if !r.recording {
		return
	}
	r.data.Frames = append(r.data.Frames, encodeFrame(r.frame, r.current))
	r.frame++
}

func (r *Recorder) IsKeyPressed(key ebiten.Key) bool      { return r.current.IsKeyPressed(key) }
func (r *Recorder) IsKeyJustPressed(key ebiten.Key) bool  { return r.current.IsKeyJustPressed(key) }
func (r *Recorder) IsKeyJustReleased(key ebiten.Key) bool { return r.current.IsKeyJustReleased(key) }
func (r *Recorder) CursorPosition() (int, int)            { return r.current.CursorPosition() }

func (r *Recorder) IsMouseButtonPressed(b ebiten.MouseButton) bool {
	return r.current.IsMouseButtonPressed(b)
}

func (r *Recorder) IsMouseButtonJustPressed(b ebiten.MouseButton) bool {
	return r.current.IsMouseButtonJustPressed(b)
}

// Save writes the replay data into the data store
func (r *Recorder) Save(store *data.Store, path ...string) error {
	if len(r.data.Frames) == 0 {
		return fmt.Errorf("no frames to save")
	}
	if err := store.WriteJSON(r.data, path...); err != nil {
		return fmt.Errorf("failed to save replay: %w", err)
	}
	return nil
}

// Stop stops recording. Input still passes through.
func (r *Recorder) Stop() {
	r.recording = false
}

// IsRecording returns whether recording is active
func (r *Recorder) IsRecording() bool {
	return r.recording
}

// FrameCount returns the number of recorded frames
func (r *Recorder) FrameCount() int {
	return len(r.data.Frames)
}

// GetData returns the replay data (for testing)
func (r *Recorder) GetData() ReplayData {
	return r.data
}

// GenerateFilename creates a filename based on current time
func GenerateFilename() string {
	return fmt.Sprintf("replay_%s.json", time.Now().Format("20060102_150405"))
}
