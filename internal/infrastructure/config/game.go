package config

import (
	"fmt"
	"image/color"
)

// GameConfig is the root config for game.toml / game.json
type GameConfig struct {
	Title            string            `json:"title" toml:"title"`
	Display          DisplayConfig     `json:"display" toml:"display"`
	Transitions      TransitionsConfig `json:"transitions" toml:"transitions"`
	Log              LogConfig         `json:"log" toml:"log"`
	Data             DataConfig        `json:"data" toml:"data"`
	PauseOnFocusLoss bool              `json:"pauseOnFocusLoss" toml:"pause_on_focus_loss"`
}

type DisplayConfig struct {
	ScreenWidth  int `json:"screenWidth" toml:"screen_width"`
	ScreenHeight int `json:"screenHeight" toml:"screen_height"`
	Scale        int `json:"scale" toml:"scale"`
	Framerate    int `json:"framerate" toml:"framerate"` // updates per second
}

// TransitionsConfig sets the default fade used between screens (seconds)
type TransitionsConfig struct {
	FadeOut float64 `json:"fadeOut" toml:"fade_out"`
	FadeIn  float64 `json:"fadeIn" toml:"fade_in"`
	Color   RGB     `json:"color" toml:"color"`
}

// RGB is an opaque color written as [r, g, b]
type RGB [3]uint8

// RGBA returns the color with full opacity
func (c RGB) RGBA() color.RGBA {
	return color.RGBA{R: c[0], G: c[1], B: c[2], A: 255}
}

type LogConfig struct {
	Level string `json:"level" toml:"level"`
	Path  string `json:"path" toml:"path"` // optional log file
}

// DataConfig locates the game data directory.
// Dir overrides the platform location derived from GameID.
type DataConfig struct {
	GameID string `json:"gameId" toml:"game_id"`
	Dir    string `json:"dir" toml:"dir"`
}

// Default returns the configuration used when no file overrides a value
func Default() *GameConfig {
	return &GameConfig{
		Title: "screenkit",
		Display: DisplayConfig{
			ScreenWidth:  320,
			ScreenHeight: 240,
			Scale:        2,
			Framerate:    60,
		},
		Transitions: TransitionsConfig{
			FadeOut: 0.5,
			FadeIn:  0.5,
		},
		Log: LogConfig{
			Level: "info",
		},
		Data: DataConfig{
			GameID: "screenkit",
		},
	}
}

// applyDefaults fills zero fields from Default
func (c *GameConfig) applyDefaults() {
	d := Default()
	if c.Title == "" {
		c.Title = d.Title
	}
	if c.Display.ScreenWidth == 0 {
		c.Display.ScreenWidth = d.Display.ScreenWidth
	}
	if c.Display.ScreenHeight == 0 {
		c.Display.ScreenHeight = d.Display.ScreenHeight
	}
	if c.Display.Scale == 0 {
		c.Display.Scale = d.Display.Scale
	}
	if c.Display.Framerate == 0 {
		c.Display.Framerate = d.Display.Framerate
	}
	if c.Log.Level == "" {
		c.Log.Level = d.Log.Level
	}
	if c.Data.GameID == "" {
		c.Data.GameID = d.Data.GameID
	}
}

// Validate rejects values the game cannot run with
func (c *GameConfig) Validate() error {
	if c.Display.ScreenWidth <= 0 || c.Display.ScreenHeight <= 0 {
		return fmt.Errorf("display size must be positive, got %dx%d", c.Display.ScreenWidth, c.Display.ScreenHeight)
	}
	if c.Display.Scale <= 0 {
		return fmt.Errorf("display scale must be positive, got %d", c.Display.Scale)
	}
	if c.Display.Framerate <= 0 {
		return fmt.Errorf("framerate must be positive, got %d", c.Display.Framerate)
	}
	if c.Transitions.FadeOut < 0 || c.Transitions.FadeIn < 0 {
		return fmt.Errorf("transition durations must not be negative")
	}
	return nil
}
