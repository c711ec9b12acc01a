package scenes

import (
	"fmt"

	cfg "github.com/automoto/pong/config"
	"github.com/automoto/pong/fonts"
	"github.com/automoto/pong/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

// GameOverScene announces the winner and waits for any key to exit.
type GameOverScene struct {
	base
	winner string
}

// NewGameOverScene creates the end screen for the given winner name.
func NewGameOverScene(log *zap.Logger, winner string) *GameOverScene {
	return &GameOverScene{
		base:   newBase(KindGameOver, cfg.Colors.GameOverBg, cfg.Sound.GameplayMusic, log),
		winner: winner,
	}
}

// ProcessEvent invalidates on any key-down, which tells the driver to shut
// the game down.
func (g *GameOverScene) ProcessEvent(ev Event) {
	g.base.ProcessEvent(ev)
	if ev.Kind == EventKeyDown {
		g.valid = false
	}
}

func (g *GameOverScene) Draw(screen *ebiten.Image) {
	g.base.Draw(screen)

	cx := cfg.Screen.Width / 2
	cy := float64(cfg.Screen.Height) / 2
	clr := cfg.Colors.Foreground

	systems.DrawCentered(screen, fmt.Sprintf("%s Wins!", g.winner), fonts.Score.Get(), cx, int(cy+cfg.GameOver.WinnerDY), clr)
	systems.DrawCentered(screen, "Press any key to exit", fonts.Prompt.Get(), cx, int(cy+cfg.GameOver.ExitDY), clr)
}

// Winner reports the name shown on this screen.
func (g *GameOverScene) Winner() string {
	return g.winner
}
