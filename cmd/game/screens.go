package main

import (
	"fmt"
	"image/color"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/younwookim/screenkit/internal/application/input"
	"github.com/younwookim/screenkit/internal/application/screen"
	"github.com/younwookim/screenkit/internal/application/screen/transition"
	"github.com/younwookim/screenkit/internal/infrastructure/config"
	"github.com/younwookim/screenkit/internal/infrastructure/data"
)

// Screen ids
const (
	ScreenTitle = iota
	ScreenPlaying
)

// Colors for rendering
var (
	colorTitleBG   = color.RGBA{26, 26, 46, 255}
	colorPlayingBG = color.RGBA{30, 60, 40, 255}
	colorBox       = color.RGBA{100, 200, 100, 255}
)

const prefsFile = "prefs.json"

// Prefs is persisted in the data store whenever a screen is transitioned into
type Prefs struct {
	LastScreen int `json:"lastScreen"`
	Visits     int `json:"visits"`
}

// fades builds the configured transition pair
type fades struct {
	out, in float64
	color   color.RGBA
}

func newFades(cfg config.TransitionsConfig) fades {
	return fades{out: cfg.FadeOut, in: cfg.FadeIn, color: cfg.Color.RGBA()}
}

func (f fades) pair() (screen.Transition, screen.Transition) {
	return transition.FadeOut(f.out, f.color), transition.FadeIn(f.in, f.color)
}

// visitTracker records arrivals in the data store. It implements
// screen.TransitionListener for the screens that embed it.
type visitTracker struct {
	id     int
	store  *data.Store
	logger *slog.Logger
}

func (v *visitTracker) PreTransitionOut(int)  {}
func (v *visitTracker) PostTransitionOut(int) {}
func (v *visitTracker) PreTransitionIn(int)   {}

func (v *visitTracker) PostTransitionIn(int) {
	if v.store == nil {
		return
	}
	var p Prefs
	if ok, _ := v.store.HasFile(prefsFile); ok {
		if err := v.store.ReadJSON(&p, prefsFile); err != nil {
			v.logger.Warn("prefs unreadable, starting over", "err", err)
			p = Prefs{}
		}
	}
	p.LastScreen = v.id
	p.Visits++
	if err := v.store.WriteJSON(p, prefsFile); err != nil {
		v.logger.Warn("failed to save prefs", "err", err)
	}
}

// enter starts a faded switch, ignoring requests while one is running
func enter(sm screen.Manager, id int, f fades) error {
	out, in := f.pair()
	err := sm.EnterScreen(id, out, in)
	if screen.IsTransitionInProgress(err) {
		return nil
	}
	return err
}

// titleScreen waits for Enter/Space to start and Escape to quit
type titleScreen struct {
	screen.BaseScreen
	visitTracker
	fades fades
	start bool
	quit  bool
}

func newTitleScreen(f fades, store *data.Store, logger *slog.Logger) *titleScreen {
	return &titleScreen{
		BaseScreen:   screen.BaseScreen{ScreenID: ScreenTitle},
		visitTracker: visitTracker{id: ScreenTitle, store: store, logger: logger},
		fades:        f,
	}
}

func (s *titleScreen) HandleInput(src input.Source) {
	s.start = src.IsKeyJustPressed(ebiten.KeyEnter) || src.IsKeyJustPressed(ebiten.KeySpace)
	s.quit = src.IsKeyJustPressed(ebiten.KeyEscape)
}

func (s *titleScreen) Update(gc screen.Container, sm screen.Manager, delta float64) error {
	if s.quit && !sm.IsTransitioning() {
		return ebiten.Termination
	}
	if s.start {
		return enter(sm, ScreenPlaying, s.fades)
	}
	return nil
}

func (s *titleScreen) Render(gc screen.Container, dst *ebiten.Image) {
	dst.Fill(colorTitleBG)
	ebitenutil.DebugPrintAt(dst, "SCREENKIT", gc.Width()/2-27, gc.Height()/3)
	ebitenutil.DebugPrintAt(dst, "ENTER: play  ESC: quit", gc.Width()/2-66, gc.Height()/2)
}

// playingScreen bounces a box and smooths it between updates
type playingScreen struct {
	screen.BaseScreen
	visitTracker
	fades fades

	width float64
	size  float64
	speed float64 // pixels per second
	x     float64
	prevX float64
	alpha float64
	back  bool
}

func newPlayingScreen(f fades, store *data.Store, logger *slog.Logger) *playingScreen {
	return &playingScreen{
		BaseScreen:   screen.BaseScreen{ScreenID: ScreenPlaying},
		visitTracker: visitTracker{id: ScreenPlaying, store: store, logger: logger},
		fades:        f,
		size:         16,
		speed:        120,
	}
}

func (s *playingScreen) Initialise(gc screen.Container) {
	s.width = float64(gc.Width())
}

func (s *playingScreen) HandleInput(src input.Source) {
	s.back = src.IsKeyJustPressed(ebiten.KeyEscape)
}

func (s *playingScreen) Update(gc screen.Container, sm screen.Manager, delta float64) error {
	s.prevX = s.x
	s.x += s.speed * delta
	switch {
	case s.x < 0:
		s.x = -s.x
		s.speed = -s.speed
	case s.x > s.width-s.size:
		s.x = 2*(s.width-s.size) - s.x
		s.speed = -s.speed
	}

	if s.back {
		return enter(sm, ScreenTitle, s.fades)
	}
	return nil
}

func (s *playingScreen) Interpolate(gc screen.Container, alpha float64) {
	s.alpha = alpha
}

// drawX is the box position between the last two updates
func (s *playingScreen) drawX() float64 {
	return s.prevX + (s.x-s.prevX)*s.alpha
}

func (s *playingScreen) Render(gc screen.Container, dst *ebiten.Image) {
	dst.Fill(colorPlayingBG)
	y := float32(gc.Height())/2 - float32(s.size)/2
	vector.DrawFilledRect(dst, float32(s.drawX()), y, float32(s.size), float32(s.size), colorBox, false)
	ebitenutil.DebugPrint(dst, fmt.Sprintf("ESC: back  x=%.1f", s.x))
}

// addScreens registers the demo screens with the game
func addScreens(g interface{ AddScreen(screen.Screen) error }, cfg *config.GameConfig, store *data.Store, logger *slog.Logger) error {
	f := newFades(cfg.Transitions)
	for _, s := range []screen.Screen{
		newTitleScreen(f, store, logger),
		newPlayingScreen(f, store, logger),
	} {
		if err := g.AddScreen(s); err != nil {
			return fmt.Errorf("failed to add screen %d: %w", s.ID(), err)
		}
	}
	return nil
}
