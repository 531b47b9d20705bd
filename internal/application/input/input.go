// Package input provides the input capability handed to screens.
//
// Screens never poll ebiten directly. They receive a Source from the game
// container once per update, which lets the container substitute recorded or
// scripted input without the screen noticing.
package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Source is a read-only view of the input state for the current frame
type Source interface {
	IsKeyPressed(key ebiten.Key) bool
	IsKeyJustPressed(key ebiten.Key) bool
	IsKeyJustReleased(key ebiten.Key) bool
	CursorPosition() (x, y int)
	IsMouseButtonPressed(button ebiten.MouseButton) bool
	IsMouseButtonJustPressed(button ebiten.MouseButton) bool
}

// Ebiten reads input from the running ebiten game loop
type Ebiten struct{}

// NewEbiten creates a Source backed by ebiten and inpututil
func NewEbiten() *Ebiten {
	return &Ebiten{}
}

func (Ebiten) IsKeyPressed(key ebiten.Key) bool {
	return ebiten.IsKeyPressed(key)
}

func (Ebiten) IsKeyJustPressed(key ebiten.Key) bool {
	return inpututil.IsKeyJustPressed(key)
}

func (Ebiten) IsKeyJustReleased(key ebiten.Key) bool {
	return inpututil.IsKeyJustReleased(key)
}

func (Ebiten) CursorPosition() (int, int) {
	return ebiten.CursorPosition()
}

func (Ebiten) IsMouseButtonPressed(button ebiten.MouseButton) bool {
	return ebiten.IsMouseButtonPressed(button)
}

func (Ebiten) IsMouseButtonJustPressed(button ebiten.MouseButton) bool {
	return inpututil.IsMouseButtonJustPressed(button)
}

// State is a fixed input snapshot. It implements Source and is used for
// replayed frames and tests.
type State struct {
	Held         map[ebiten.Key]bool
	Pressed      map[ebiten.Key]bool
	Released     map[ebiten.Key]bool
	MouseX       int
	MouseY       int
	MouseHeld    map[ebiten.MouseButton]bool
	MousePressed map[ebiten.MouseButton]bool
}

func (s *State) IsKeyPressed(key ebiten.Key) bool {
	return s.Held[key]
}

func (s *State) IsKeyJustPressed(key ebiten.Key) bool {
	return s.Pressed[key]
}

func (s *State) IsKeyJustReleased(key ebiten.Key) bool {
	return s.Released[key]
}

func (s *State) CursorPosition() (int, int) {
	return s.MouseX, s.MouseY
}

func (s *State) IsMouseButtonPressed(button ebiten.MouseButton) bool {
	return s.MouseHeld[button]
}

func (s *State) IsMouseButtonJustPressed(button ebiten.MouseButton) bool {
	return s.MousePressed[button]
}

// Capture takes a snapshot of src restricted to the given keys and buttons
func Capture(src Source, keys []ebiten.Key, buttons []ebiten.MouseButton) *State {
	s := &State{}
	for _, k := range keys {
		if src.IsKeyPressed(k) {
			s.Held = setKey(s.Held, k)
		}
		if src.IsKeyJustPressed(k) {
			s.Pressed = setKey(s.Pressed, k)
		}
		if src.IsKeyJustReleased(k) {
			s.Released = setKey(s.Released, k)
		}
	}
	for _, b := range buttons {
		if src.IsMouseButtonPressed(b) {
			s.MouseHeld = setButton(s.MouseHeld, b)
		}
		if src.IsMouseButtonJustPressed(b) {
			s.MousePressed = setButton(s.MousePressed, b)
		}
	}
	s.MouseX, s.MouseY = src.CursorPosition()
	return s
}

func setKey(m map[ebiten.Key]bool, k ebiten.Key) map[ebiten.Key]bool {
	if m == nil {
		m = make(map[ebiten.Key]bool)
	}
	m[k] = true
	return m
}

func setButton(m map[ebiten.MouseButton]bool, b ebiten.MouseButton) map[ebiten.MouseButton]bool {
	if m == nil {
		m = make(map[ebiten.MouseButton]bool)
	}
	m[b] = true
	return m
}

// Ticker is implemented by sources that must advance once per game update,
// such as recorders and replayers. The game calls Tick before HandleInput.
type Ticker interface {
	Tick()
}
