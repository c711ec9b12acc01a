package scenes

import (
	cfg "github.com/automoto/pong/config"
	"github.com/automoto/pong/fonts"
	"github.com/automoto/pong/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

// TitleScene is the opening menu. Any key starts a match; the 1 and 2 keys
// pick the game mode before doing so.
type TitleScene struct {
	base
	mode cfg.GameMode
}

// NewTitleScene creates the title screen with a pre-selected default mode.
func NewTitleScene(log *zap.Logger, defaultMode cfg.GameMode) *TitleScene {
	return &TitleScene{
		base: newBase(KindTitle, cfg.Colors.TitleBg, cfg.Sound.GameplayMusic, log),
		mode: defaultMode,
	}
}

// ProcessEvent invalidates on any key-down, recording a mode choice when the
// key was 1 or 2.
func (t *TitleScene) ProcessEvent(ev Event) {
	t.base.ProcessEvent(ev)
	if ev.Kind != EventKeyDown {
		return
	}

	switch ev.Key {
	case cfg.Input.OnePlayerKey:
		t.mode = cfg.ModeOnePlayer
	case cfg.Input.TwoPlayerKey:
		t.mode = cfg.ModeTwoPlayer
	}
	t.valid = false
}

func (t *TitleScene) Draw(screen *ebiten.Image) {
	t.base.Draw(screen)

	cx := cfg.Screen.Width / 2
	cy := float64(cfg.Screen.Height) / 2
	clr := cfg.Colors.TitleText

	systems.DrawCentered(screen, cfg.Title.Message, fonts.Title.Get(), cx, int(cy+cfg.Title.TitleDY), clr)
	systems.DrawCentered(screen, "Press any key to start", fonts.Info.Get(), cx, int(cy+cfg.Title.StartDY), clr)
	systems.DrawCentered(screen, "Control the paddle with W/S or Up/Down", fonts.Info.Get(), cx, int(cy+cfg.Title.ControlsDY), clr)
	systems.DrawCentered(screen, "1: single player   2: two players", fonts.Info.Get(), cx, int(cy+cfg.Title.ModeDY), clr)
}

// SelectedMode reports the game mode chosen on this screen.
func (t *TitleScene) SelectedMode() cfg.GameMode {
	return t.mode
}
