package screen

import "github.com/hajimehoshi/ebiten/v2"

// Transition is a timed visual effect applied while switching screens.
// One instance governs the outgoing screen's exit, another the incoming
// screen's entry.
type Transition interface {
	// Update advances the elapsed time by delta seconds.
	Update(delta float64)

	// Render draws the overlay for s. It runs after s has rendered itself.
	Render(s Screen, dst *ebiten.Image)

	// Finished reports whether the elapsed time has reached the duration.
	Finished() bool
}

type instant struct{}

func (instant) Update(float64)               {}
func (instant) Render(Screen, *ebiten.Image) {}
func (instant) Finished() bool               { return true }

// Instant returns a transition that is always finished and draws nothing.
// The manager substitutes it for a nil transition argument.
func Instant() Transition {
	return instant{}
}

func orInstant(t Transition) Transition {
	if t == nil {
		return instant{}
	}
	return t
}
