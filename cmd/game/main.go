package main

import (
	"embed"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/screenkit/internal/application/game"
	"github.com/younwookim/screenkit/internal/application/input"
	"github.com/younwookim/screenkit/internal/application/replay"
	"github.com/younwookim/screenkit/internal/infrastructure/config"
	"github.com/younwookim/screenkit/internal/infrastructure/data"
	"github.com/younwookim/screenkit/internal/infrastructure/logging"
)

//go:embed configs
var configFS embed.FS

// loadConfig reads path, or the embedded game.toml when path is empty
func loadConfig(path string) (*config.GameConfig, error) {
	if path == "" {
		fsys, err := fs.Sub(configFS, "configs")
		if err != nil {
			return nil, fmt.Errorf("failed to get config subfs: %w", err)
		}
		return config.NewFSLoader(fsys, "configs").Load("game.toml")
	}
	return config.NewLoader(filepath.Dir(path)).Load(filepath.Base(path))
}

// openStore opens the configured data location
func openStore(cfg config.DataConfig) (*data.Store, error) {
	if cfg.Dir != "" {
		return data.NewStore(cfg.Dir)
	}
	return data.NewGameStore(cfg.GameID)
}

func main() {
	// Parse command line flags
	configFlag := flag.String("config", "", "Config file (.toml or .json), defaults to the embedded game.toml")
	recordFlag := flag.String("record", "", "Record input to a file in the data dir (e.g., -record replay.json)")
	replayFlag := flag.String("replay", "", "Play back input recorded with -record")
	logLevelFlag := flag.String("log-level", "", "Override the configured log level")
	flag.Parse()

	cfg, err := loadConfig(*configFlag)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Logging
	level := cfg.Log.Level
	if *logLevelFlag != "" {
		level = *logLevelFlag
	}
	logging.SetRawLogLevel(level)
	if cfg.Log.Path != "" {
		if err := logging.SetLogPath(cfg.Log.Path); err != nil {
			log.Printf("Failed to open log file, logging to stdout only: %v", err)
		}
	}
	defer logging.Close()
	logger := logging.GetLogger()

	store, err := openStore(cfg.Data)
	if err != nil {
		log.Fatalf("Failed to open data store: %v", err)
	}
	logger.Info("data store opened", "root", store.Root())

	// Input: live, recorded or replayed
	initial := ScreenTitle
	var src input.Source = input.NewEbiten()
	var recorder *replay.Recorder
	switch {
	case *replayFlag != "":
		rd, err := replay.LoadReplay(store, *replayFlag)
		if err != nil {
			log.Fatalf("Failed to load replay: %v", err)
		}
		replayer := replay.NewReplayer(*rd)
		initial = replayer.InitialScreen()
		src = replayer
		logger.Info("replaying", "file", *replayFlag, "frames", replayer.TotalFrames())
	case *recordFlag != "":
		recorder = replay.NewRecorder(src, initial, cfg.Display.Framerate)
		src = recorder
		logger.Info("recording", "file", *recordFlag)
	}

	opts := game.Options{
		Width:           cfg.Display.ScreenWidth,
		Height:          cfg.Display.ScreenHeight,
		TPS:             cfg.Display.Framerate,
		InitialScreenID: initial,
		Input:           src,
		Logger:          logger,
	}
	if cfg.PauseOnFocusLoss {
		opts.Focused = ebiten.IsFocused
	}
	g := game.New(opts)
	if err := addScreens(g, cfg, store, logger); err != nil {
		log.Fatalf("Failed to add screens: %v", err)
	}
	if err := g.Start(); err != nil {
		log.Fatalf("Failed to start: %v", err)
	}

	// Set up ebiten
	ebiten.SetWindowSize(cfg.Display.ScreenWidth*cfg.Display.Scale,
		cfg.Display.ScreenHeight*cfg.Display.Scale)
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetTPS(cfg.Display.Framerate)

	// Run game
	runErr := ebiten.RunGame(g)

	if recorder != nil {
		if err := recorder.Save(store, *recordFlag); err != nil {
			log.Printf("Failed to save replay: %v", err)
		} else {
			logger.Info("replay saved", "file", *recordFlag, "frames", recorder.FrameCount())
		}
	}
	if runErr != nil {
		log.Fatal(runErr)
	}
}
