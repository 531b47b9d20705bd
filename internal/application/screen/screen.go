// Package screen defines the Screen contract and the manager that switches
// between screens through timed transitions.
//
// The game container calls the manager's Update, Interpolate and Render once
// per frame. The manager forwards to the current screen, or during a
// transition to the outgoing/incoming screen plus the transition overlay.
package screen

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/screenkit/internal/application/input"
)

// NoScreen is reported as the current id before the first screen is entered.
const NoScreen = -1

// Container is the game container as seen by screens.
type Container interface {
	Width() int
	Height() int
}

// Manager is the screen manager as seen by screens.
// A screen may request the next screen from within its own Update.
type Manager interface {
	EnterScreen(id int, out, in Transition) error
	CurrentScreenID() int
	IsTransitioning() bool
}

// Screen is a unit of game logic and presentation (title, menu, playing, etc.)
type Screen interface {
	// Initialise is called exactly once, when the screen is added to the game,
	// before any other call.
	Initialise(gc Container)

	// Update advances the screen by delta seconds.
	// Returning an error terminates the game.
	Update(gc Container, sm Manager, delta float64) error

	// Render draws the screen to dst.
	Render(gc Container, dst *ebiten.Image)

	// HandleInput is called once per update before Update.
	HandleInput(src input.Source)

	// ID returns the unique, stable identifier of the screen.
	ID() int
}

// Interpolator is implemented by screens that smooth motion between fixed
// updates. alpha is the position between the previous and next update, in [0,1].
type Interpolator interface {
	Interpolate(gc Container, alpha float64)
}

// TransitionListener is implemented by screens that want to know when they
// are transitioned out of or into.
type TransitionListener interface {
	PreTransitionOut(next int)
	PostTransitionOut(next int)
	PreTransitionIn(previous int)
	PostTransitionIn(previous int)
}

// BaseScreen provides no-op Initialise and HandleInput for embedding.
type BaseScreen struct {
	ScreenID int
}

func (b *BaseScreen) ID() int { return b.ScreenID }

func (b *BaseScreen) Initialise(Container) {}

func (b *BaseScreen) HandleInput(input.Source) {}
