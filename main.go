package main

import (
	"os"

	cfg "github.com/automoto/pong/config"
	"github.com/automoto/pong/fonts"
	"github.com/automoto/pong/scenes"
	"github.com/automoto/pong/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

// Game is the top-level driver: it owns the scene manager, synthesizes input
// events, and decides scene transitions when the active scene invalidates.
type Game struct {
	manager *scenes.Manager
	log     *zap.Logger

	// Concrete scene handles for transition payloads (selected mode, winner).
	title *scenes.TitleScene
	match *scenes.GameScene

	events []scenes.Event
	quit   bool
}

// NewGame builds the driver with the title screen active.
func NewGame(log *zap.Logger, defaultMode cfg.GameMode) (*Game, error) {
	title := scenes.NewTitleScene(log, defaultMode)
	manager, err := scenes.NewManager(log, title)
	if err != nil {
		return nil, err
	}
	return &Game{
		manager: manager,
		log:     log,
		title:   title,
		events:  make([]scenes.Event, 0, 16),
	}, nil
}

func (g *Game) Update() error {
	systems.TickAudio()

	g.events = scenes.PollEvents(g.events[:0])
	for _, ev := range g.events {
		if ev.Kind == scenes.EventQuit {
			g.quit = true
		}
		g.manager.ProcessEvent(ev)
	}

	g.manager.Update()

	if g.quit {
		return g.shutdown()
	}
	if g.manager.Valid() {
		return nil
	}
	return g.transition()
}

// transition installs the next scene once the active one has invalidated:
// title to a fresh match, match to a game-over screen, game-over to exit.
func (g *Game) transition() error {
	switch g.manager.Active().Kind() {
	case scenes.KindTitle:
		mode := g.title.SelectedMode()
		g.match = scenes.NewGameScene(g.log, mode)
		g.manager.Add(g.match)
		if err := g.manager.GoToNext(); err != nil {
			return err
		}
		g.savePreferences(mode)

	case scenes.KindGame:
		winner := g.match.Winner()
		g.log.Info("match finished", zap.String("winner", winner))
		g.manager.Add(scenes.NewGameOverScene(g.log, winner))
		if err := g.manager.GoToNext(); err != nil {
			return err
		}

	case scenes.KindGameOver:
		return g.shutdown()
	}

	ebiten.SetTPS(g.manager.Active().FrameRate())
	return nil
}

// shutdown ends the active scene so its soundtrack is released on every
// exit path, then stops the game loop.
func (g *Game) shutdown() error {
	g.manager.Active().End()
	return ebiten.Termination
}

func (g *Game) savePreferences(mode cfg.GameMode) {
	if err := systems.SaveSettings(systems.CurrentSettings(mode)); err != nil {
		g.log.Warn("could not save settings", zap.Error(err))
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.manager.Draw(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return cfg.Screen.Width, cfg.Screen.Height
}

func newLogger() *zap.Logger {
	zapCfg := zap.NewDevelopmentConfig()
	logger, err := zapCfg.Build()
	if err != nil {
		panic(err)
	}
	return logger
}

func main() {
	logger := newLogger()
	defer func() { _ = logger.Sync() }()

	// Optional user overrides next to the binary.
	overrides, err := cfg.LoadOverrides(os.DirFS("."), "pong.toml")
	if err != nil {
		logger.Warn("ignoring pong.toml", zap.Error(err))
	}
	overrides.Apply()

	assetFS := os.DirFS("assets")
	if err := fonts.LoadAll(assetFS, "fonts/pong.ttf"); err != nil {
		logger.Fatal("failed to load fonts", zap.Error(err))
	}
	systems.InitAudio(assetFS)

	if err := systems.InitPersistence(); err != nil {
		logger.Warn("settings persistence unavailable", zap.Error(err))
	}
	defaultMode := cfg.ModeOnePlayer
	if saved, err := systems.LoadSettings(); err == nil && saved != nil {
		defaultMode = systems.ApplySavedSettings(saved)
	}

	game, err := NewGame(logger, defaultMode)
	if err != nil {
		logger.Fatal("failed to build game", zap.Error(err))
	}

	ebiten.SetWindowSize(cfg.Screen.Width*cfg.Screen.WindowScale, cfg.Screen.Height*cfg.Screen.WindowScale)
	ebiten.SetWindowTitle(cfg.Screen.Title)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetTPS(game.manager.Active().FrameRate())

	if err := ebiten.RunGame(game); err != nil {
		logger.Fatal("game loop failed", zap.Error(err))
	}
	logger.Info("good bye")
}
