// Package transition provides the stock screen transitions.
package transition

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/younwookim/screenkit/internal/application/screen"
)

// Timer accumulates elapsed time towards a fixed duration.
// Durations are in seconds; a zero duration is finished from the start.
type Timer struct {
	elapsed  float64
	duration float64
}

// NewTimer creates a timer. Negative durations are treated as zero.
func NewTimer(duration float64) Timer {
	if duration < 0 {
		duration = 0
	}
	return Timer{duration: duration}
}

// Update adds delta to the elapsed time. Negative delta is ignored.
func (t *Timer) Update(delta float64) {
	if delta > 0 {
		t.elapsed += delta
	}
}

// Finished reports whether elapsed has reached the duration
func (t *Timer) Finished() bool {
	return t.elapsed >= t.duration
}

// Progress returns elapsed/duration clamped to [0,1]
func (t *Timer) Progress() float64 {
	if t.duration <= 0 || t.elapsed >= t.duration {
		return 1
	}
	return t.elapsed / t.duration
}

// Elapsed returns the accumulated time in seconds
func (t *Timer) Elapsed() float64 { return t.elapsed }

// Duration returns the configured duration in seconds
func (t *Timer) Duration() float64 { return t.duration }

// Fade covers the screen with a solid color whose opacity follows the timer.
type Fade struct {
	Timer
	color   color.RGBA
	fadeOut bool
}

// FadeOut fades the outgoing screen to c over duration seconds.
func FadeOut(duration float64, c color.RGBA) *Fade {
	return &Fade{Timer: NewTimer(duration), color: c, fadeOut: true}
}

// FadeIn fades the incoming screen in from c over duration seconds.
func FadeIn(duration float64, c color.RGBA) *Fade {
	return &Fade{Timer: NewTimer(duration), color: c}
}

// Opacity returns the overlay opacity in [0,1] for the current progress.
func (f *Fade) Opacity() float64 {
	p := f.Progress()
	if f.fadeOut {
		return p
	}
	return 1 - p
}

// Render draws the overlay over the whole destination image
func (f *Fade) Render(_ screen.Screen, dst *ebiten.Image) {
	a := f.Opacity()
	if a <= 0 {
		return
	}
	b := dst.Bounds()
	vector.DrawFilledRect(dst, float32(b.Min.X), float32(b.Min.Y), float32(b.Dx()), float32(b.Dy()), scaleAlpha(f.color, a), false)
}

// scaleAlpha returns c with its premultiplied channels scaled by a
func scaleAlpha(c color.RGBA, a float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * a),
		G: uint8(float64(c.G) * a),
		B: uint8(float64(c.B) * a),
		A: uint8(float64(c.A) * a),
	}
}

// None returns the instant transition
func None() screen.Transition {
	return screen.Instant()
}
