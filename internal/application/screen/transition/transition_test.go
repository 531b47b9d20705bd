package transition

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/younwookim/screenkit/internal/application/screen"
)

var black = color.RGBA{0, 0, 0, 255}

// Compile-time interface checks
var (
	_ screen.Transition = (*Fade)(nil)
	_ screen.Transition = None()
)

func TestTimer_FinishesAfterDuration(t *testing.T) {
	tm := NewTimer(0.5)

	assert.False(t, tm.Finished())
	tm.Update(0.25)
	assert.False(t, tm.Finished(), "no early completion")
	tm.Update(0.2)
	assert.False(t, tm.Finished())
	tm.Update(0.05)
	assert.True(t, tm.Finished())

	// Finished is a pure query
	assert.True(t, tm.Finished())
	assert.True(t, tm.Finished())
}

func TestTimer_MonotonicAcrossSteps(t *testing.T) {
	steps := []float64{0.01, 0.1, 1.0 / 60.0, 0.3}

	for _, step := range steps {
		tm := NewTimer(1.0)
		total := 0.0
		for total+step < 1.0 {
			tm.Update(step)
			total += step
			assert.False(t, tm.Finished(), "step %v total %v", step, total)
		}
		tm.Update(step)
		assert.True(t, tm.Finished(), "step %v", step)
	}
}

func TestTimer_ZeroDuration(t *testing.T) {
	tm := NewTimer(0)
	tm.Update(0)
	assert.True(t, tm.Finished())
	assert.Equal(t, 1.0, tm.Progress())
}

func TestTimer_NegativeInputs(t *testing.T) {
	tm := NewTimer(-3)
	assert.Equal(t, 0.0, tm.Duration())

	tm = NewTimer(1)
	tm.Update(0.5)
	tm.Update(-10)
	assert.Equal(t, 0.5, tm.Elapsed(), "negative delta is ignored")
}

func TestTimer_Progress(t *testing.T) {
	tm := NewTimer(2)
	assert.Equal(t, 0.0, tm.Progress())
	tm.Update(0.5)
	assert.InDelta(t, 0.25, tm.Progress(), 1e-9)
	tm.Update(5)
	assert.Equal(t, 1.0, tm.Progress(), "progress is clamped")
}

func TestFade_Opacity(t *testing.T) {
	out := FadeOut(1, black)
	in := FadeIn(1, black)

	assert.Equal(t, 0.0, out.Opacity())
	assert.Equal(t, 1.0, in.Opacity())

	out.Update(0.25)
	in.Update(0.25)
	assert.InDelta(t, 0.25, out.Opacity(), 1e-9)
	assert.InDelta(t, 0.75, in.Opacity(), 1e-9)

	out.Update(1)
	in.Update(1)
	assert.True(t, out.Finished())
	assert.True(t, in.Finished())
	assert.Equal(t, 1.0, out.Opacity())
	assert.Equal(t, 0.0, in.Opacity())
}

func TestScaleAlpha(t *testing.T) {
	c := scaleAlpha(color.RGBA{200, 100, 50, 255}, 0.5)
	assert.Equal(t, color.RGBA{100, 50, 25, 127}, c)
}

func TestNone(t *testing.T) {
	n := None()
	assert.True(t, n.Finished())
	n.Update(1)
	assert.True(t, n.Finished())
}
