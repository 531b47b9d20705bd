// Package replay records the input stream fed to screens and plays it back.
package replay

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/screenkit/internal/application/input"
)

// FrameInput records input state for a single update
type FrameInput struct {
	F  int   `json:"f"`            // Frame number
	H  []int `json:"h,omitempty"`  // Held keys
	P  []int `json:"p,omitempty"`  // Just pressed keys
	R  []int `json:"r,omitempty"`  // Just released keys
	MX int   `json:"mx"`           // MouseX
	MY int   `json:"my"`           // MouseY
	MH []int `json:"mh,omitempty"` // Held mouse buttons
	MP []int `json:"mp,omitempty"` // Just pressed mouse buttons
}

// ReplayData contains all data needed to replay a session
type ReplayData struct {
	Version       string       `json:"version"`
	InitialScreen int          `json:"initialScreen"`
	TPS           int          `json:"tps"`
	StartTime     string       `json:"startTime"`
	Frames        []FrameInput `json:"frames"`
}

// Version is written into new recordings
const Version = "1.0"

// DefaultKeys are the keys recorded when no list is given
var DefaultKeys = []ebiten.Key{
	ebiten.KeyEnter, ebiten.KeySpace, ebiten.KeyEscape,
	ebiten.KeyArrowLeft, ebiten.KeyArrowRight, ebiten.KeyArrowUp, ebiten.KeyArrowDown,
	ebiten.KeyW, ebiten.KeyA, ebiten.KeyS, ebiten.KeyD,
	ebiten.KeyP,
}

// DefaultButtons are the mouse buttons recorded when no list is given
var DefaultButtons = []ebiten.MouseButton{
	ebiten.MouseButtonLeft, ebiten.MouseButtonRight,
}

func encodeFrame(f int, s *input.State) FrameInput {
	return FrameInput{
		F:  f,
		H:  keyList(s.Held),
		P:  keyList(s.Pressed),
		R:  keyList(s.Released),
		MX: s.MouseX,
		MY: s.MouseY,
		MH: buttonList(s.MouseHeld),
		MP: buttonList(s.MousePressed),
	}
}

func decodeFrame(fi FrameInput) *input.State {
	return &input.State{
		Held:         keySet(fi.H),
		Pressed:      keySet(fi.P),
		Released:     keySet(fi.R),
		MouseX:       fi.MX,
		MouseY:       fi.MY,
		MouseHeld:    buttonSet(fi.MH),
		MousePressed: buttonSet(fi.MP),
	}
}

// keyList returns the set keys in ascending order so recordings are stable
func keyList(m map[ebiten.Key]bool) []int {
	var out []int
	for k := ebiten.Key(0); k <= ebiten.KeyMax; k++ {
		if m[k] {
			out = append(out, int(k))
		}
	}
	return out
}

func buttonList(m map[ebiten.MouseButton]bool) []int {
	var out []int
	for b := ebiten.MouseButton(0); b <= ebiten.MouseButtonMax; b++ {
		if m[b] {
			out = append(out, int(b))
		}
	}
	return out
}

func keySet(keys []int) map[ebiten.Key]bool {
	if len(keys) == 0 {
		return nil
	}
	m := make(map[ebiten.Key]bool, len(keys))
	for _, k := range keys {
		m[ebiten.Key(k)] = true
	}
	return m
}

func buttonSet(buttons []int) map[ebiten.MouseButton]bool {
	if len(buttons) == 0 {
		return nil
	}
	m := make(map[ebiten.MouseButton]bool, len(buttons))
	for _, b := range buttons {
		m[ebiten.MouseButton(b)] = true
	}
	return m
}
