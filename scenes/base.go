package scenes

import (
	"image/color"

	cfg "github.com/automoto/pong/config"
	"github.com/automoto/pong/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

// base carries the state every scene shares: background color, validity,
// soundtrack, and frame rate. Variants embed it and override what they need.
type base struct {
	kind       Kind
	background color.RGBA
	soundtrack string
	rate       int
	valid      bool
	log        *zap.Logger
}

func newBase(kind Kind, background color.RGBA, soundtrack string, log *zap.Logger) base {
	return base{
		kind:       kind,
		background: background,
		soundtrack: soundtrack,
		rate:       cfg.Screen.TPS,
		valid:      true,
		log:        log,
	}
}

func (b *base) Update() {}

func (b *base) Draw(screen *ebiten.Image) {
	screen.Fill(b.background)
}

// ProcessEvent handles the shared exits: the quit event and the escape key
// both invalidate the scene.
func (b *base) ProcessEvent(ev Event) {
	switch {
	case ev.Kind == EventQuit:
		b.log.Info("quit requested", zap.Stringer("scene", b.kind))
		b.valid = false
	case ev.Kind == EventKeyDown && ev.Key == ebiten.KeyEscape:
		b.log.Info("escape pressed", zap.Stringer("scene", b.kind))
		b.valid = false
	}
}

func (b *base) Valid() bool {
	return b.valid
}

// Start begins the looping soundtrack. A missing soundtrack file is fatal:
// the failure is logged and the process exits.
func (b *base) Start() {
	if b.soundtrack == "" {
		return
	}
	if err := systems.PlayMusic(b.soundtrack); err != nil {
		b.log.Fatal("failed to start soundtrack",
			zap.String("path", b.soundtrack),
			zap.Error(err))
	}
}

// End fades the soundtrack out.
func (b *base) End() {
	if b.soundtrack != "" {
		systems.FadeOutMusic()
	}
}

func (b *base) Kind() Kind {
	return b.kind
}

func (b *base) FrameRate() int {
	return b.rate
}
