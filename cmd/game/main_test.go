package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/younwookim/screenkit/internal/application/game"
	"github.com/younwookim/screenkit/internal/application/input"
	"github.com/younwookim/screenkit/internal/application/state"
	"github.com/younwookim/screenkit/internal/infrastructure/config"
	"github.com/younwookim/screenkit/internal/infrastructure/data"
	"github.com/younwookim/screenkit/internal/infrastructure/logging"
)

func TestLoadConfig_Embedded(t *testing.T) {
	cfg, err := loadConfig("")
	require.NoError(t, err)

	assert.Equal(t, "screenkit demo", cfg.Title)
	assert.Equal(t, 320, cfg.Display.ScreenWidth)
	assert.Equal(t, 240, cfg.Display.ScreenHeight)
	assert.Equal(t, 60, cfg.Display.Framerate)
	assert.Equal(t, 0.4, cfg.Transitions.FadeOut)
	assert.Equal(t, "screenkit-demo", cfg.Data.GameID)
}

func TestLoadConfig_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"title": "custom"}`), 0o644))

	cfg, err := loadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "custom", cfg.Title)
}

func TestOpenStore_Dir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "data")

	store, err := openStore(config.DataConfig{Dir: dir})
	require.NoError(t, err)
	assert.Equal(t, dir, store.Root())
}

// newDemo builds the demo game with scripted input and an in-memory store
func newDemo(t *testing.T) (*game.ScreenBasedGame, *input.State, *data.Store) {
	t.Helper()
	cfg := config.Default()
	cfg.Transitions.FadeOut = 0.05
	cfg.Transitions.FadeIn = 0.05

	src := &input.State{}
	store := data.NewFSStore(afero.NewMemMapFs())
	g := game.New(game.Options{
		Width:           cfg.Display.ScreenWidth,
		Height:          cfg.Display.ScreenHeight,
		TPS:             cfg.Display.Framerate,
		InitialScreenID: ScreenTitle,
		Input:           src,
		Logger:          logging.Discard(),
	})
	require.NoError(t, addScreens(g, cfg, store, logging.Discard()))
	require.NoError(t, g.Start())
	return g, src, store
}

func press(src *input.State, key ebiten.Key) {
	src.Pressed = map[ebiten.Key]bool{key: true}
}

func release(src *input.State) {
	src.Pressed = nil
}

func TestDemo_TitleToPlayingAndBack(t *testing.T) {
	g, src, store := newDemo(t)
	sm := g.Manager()
	assert.Equal(t, ScreenTitle, sm.CurrentScreenID())

	press(src, ebiten.KeyEnter)
	require.NoError(t, g.Update())
	release(src)
	assert.Equal(t, state.StateTransitioning, sm.State())

	// 0.05s fades at 60 TPS finish within a few updates each
	for i := 0; i < 10; i++ {
		require.NoError(t, g.Update())
	}
	assert.Equal(t, ScreenPlaying, sm.CurrentScreenID())
	assert.Equal(t, state.StateSteady, sm.State())

	var p Prefs
	require.NoError(t, store.ReadJSON(&p, prefsFile))
	assert.Equal(t, Prefs{LastScreen: ScreenPlaying, Visits: 1}, p)

	press(src, ebiten.KeyEscape)
	require.NoError(t, g.Update())
	release(src)
	for i := 0; i < 10; i++ {
		require.NoError(t, g.Update())
	}
	assert.Equal(t, ScreenTitle, sm.CurrentScreenID())

	require.NoError(t, store.ReadJSON(&p, prefsFile))
	assert.Equal(t, Prefs{LastScreen: ScreenTitle, Visits: 2}, p)
}

func TestDemo_RepeatedStartIgnoredWhileTransitioning(t *testing.T) {
	g, src, _ := newDemo(t)

	press(src, ebiten.KeyEnter)
	require.NoError(t, g.Update())
	require.NoError(t, g.Update(), "a second request during the fade is ignored")
	assert.True(t, g.Manager().IsTransitioning())
}

func TestDemo_EscapeOnTitleTerminates(t *testing.T) {
	g, src, _ := newDemo(t)

	press(src, ebiten.KeyEscape)
	err := g.Update()
	assert.ErrorIs(t, err, ebiten.Termination)
}

func TestPlayingScreen_BouncesAndInterpolates(t *testing.T) {
	s := newPlayingScreen(fades{}, nil, logging.Discard())
	s.Initialise(stubContainer{w: 100})

	require.NoError(t, s.Update(nil, nil, 0.5)) // 60px
	assert.Equal(t, 60.0, s.x)

	s.Interpolate(nil, 0.5)
	require.NoError(t, s.Update(nil, nil, 0.5)) // 120px would pass 84, bounces to 48
	assert.Equal(t, 48.0, s.x)
	assert.Equal(t, -120.0, s.speed)
	assert.Equal(t, 54.0, s.drawX())
}

type stubContainer struct{ w, h int }

func (c stubContainer) Width() int  { return c.w }
func (c stubContainer) Height() int { return c.h }
