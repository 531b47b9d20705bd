// Package game provides the game container that drives the screen manager
// from the ebiten game loop.
package game

import (
	"log/slog"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/screenkit/internal/application/input"
	"github.com/younwookim/screenkit/internal/application/screen"
	"github.com/younwookim/screenkit/internal/infrastructure/logging"
	"go.uber.org/atomic"
)

// DefaultTPS is the fixed update rate used when Options.TPS is zero.
const DefaultTPS = 60

// Options configures a ScreenBasedGame
type Options struct {
	Width  int
	Height int
	TPS    int

	// InitialScreenID is entered, without a transition, when the game starts.
	InitialScreenID int

	// Input defaults to the live ebiten input.
	Input input.Source

	// Focused, when set, pauses updates while it reports false.
	Focused func() bool

	// Now defaults to time.Now. Used to compute the interpolation factor.
	Now func() time.Time

	Logger *slog.Logger
}

// ScreenBasedGame implements ebiten.Game and separates the game into screens
// managed by a screen.BasicManager.
//
// Update runs at the fixed TPS rate and advances the manager by 1/TPS seconds.
// Draw runs at the display rate; it interpolates by the fraction of a step
// elapsed since the last update, then renders.
type ScreenBasedGame struct {
	manager   *screen.BasicManager
	width     int
	height    int
	step      float64
	initialID int
	input     input.Source
	focused   func() bool
	now       func() time.Time
	logger    *slog.Logger

	started    bool
	lastUpdate time.Time
	paused     *atomic.Bool
}

// New creates a game with no screens. Screens are added with AddScreen.
func New(opts Options) *ScreenBasedGame {
	tps := opts.TPS
	if tps <= 0 {
		tps = DefaultTPS
	}
	src := opts.Input
	if src == nil {
		src = input.NewEbiten()
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.GetLogger()
	}

	return &ScreenBasedGame{
		manager:   screen.NewManager(logger),
		width:     opts.Width,
		height:    opts.Height,
		step:      1.0 / float64(tps),
		initialID: opts.InitialScreenID,
		input:     src,
		focused:   opts.Focused,
		now:       now,
		logger:    logger,
		paused:    atomic.NewBool(false),
	}
}

// AddScreen initialises s and registers it with the screen manager.
// Initialise runs before registration, so it has already run when
// registration fails with a duplicate id.
func (g *ScreenBasedGame) AddScreen(s screen.Screen) error {
	s.Initialise(g)
	return g.manager.AddScreen(s)
}

// EnterGameScreen begins a transition to the screen with the given id.
// Passing nil for both transitions switches immediately.
func (g *ScreenBasedGame) EnterGameScreen(id int, out, in screen.Transition) error {
	return g.manager.EnterScreen(id, out, in)
}

// Start enters the initial screen. It is called by the first Update if the
// caller has not called it. Subsequent calls do nothing.
func (g *ScreenBasedGame) Start() error {
	if g.started {
		return nil
	}
	if err := g.manager.EnterScreen(g.initialID, nil, nil); err != nil {
		return err
	}
	g.started = true
	g.logger.Info("game started", "screen", g.initialID, "screens", g.manager.ScreenIDs())
	return nil
}

// Update advances the current screens by one fixed step.
// Implements ebiten.Game interface.
func (g *ScreenBasedGame) Update() error {
	if err := g.Start(); err != nil {
		return err
	}
	if g.paused.Load() || (g.focused != nil && !g.focused()) {
		return nil
	}

	g.lastUpdate = g.now()
	if t, ok := g.input.(input.Ticker); ok {
		t.Tick()
	}
	g.manager.HandleInput(g.input)
	return g.manager.Update(g, g.step)
}

// Draw interpolates and renders the current screens.
// Implements ebiten.Game interface.
func (g *ScreenBasedGame) Draw(dst *ebiten.Image) {
	g.manager.Interpolate(g, g.alpha())
	g.manager.Render(g, dst)
}

// alpha is the fraction of a step elapsed since the last update
func (g *ScreenBasedGame) alpha() float64 {
	if g.lastUpdate.IsZero() || g.paused.Load() {
		return 0
	}
	return g.now().Sub(g.lastUpdate).Seconds() / g.step
}

// Layout returns the game's logical screen dimensions.
// Implements ebiten.Game interface.
func (g *ScreenBasedGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}

// Width returns the logical screen width
func (g *ScreenBasedGame) Width() int { return g.width }

// Height returns the logical screen height
func (g *ScreenBasedGame) Height() int { return g.height }

// Manager returns the screen manager
func (g *ScreenBasedGame) Manager() *screen.BasicManager { return g.manager }

// Step returns the fixed update step in seconds
func (g *ScreenBasedGame) Step() float64 { return g.step }

// Pause stops updates until Resume. Safe to call from any goroutine.
func (g *ScreenBasedGame) Pause() {
	if !g.paused.Swap(true) {
		g.logger.Info("game paused")
	}
}

// Resume restarts updates after Pause. Safe to call from any goroutine.
func (g *ScreenBasedGame) Resume() {
	if g.paused.Swap(false) {
		g.logger.Info("game resumed")
	}
}

// Paused reports whether updates are paused
func (g *ScreenBasedGame) Paused() bool {
	return g.paused.Load()
}
