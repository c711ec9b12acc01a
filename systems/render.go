package systems

import (
	"image/color"
	"strconv"

	"github.com/automoto/pong/components"
	cfg "github.com/automoto/pong/config"
	"github.com/automoto/pong/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

// DrawMatch renders the court: paddles, ball, net, and both scores.
func DrawMatch(e *ecs.ECS, screen *ebiten.Image) {
	width := float64(cfg.Screen.Width)
	height := float64(cfg.Screen.Height)
	fg := cfg.Colors.Foreground

	components.Paddle.Each(e.World, func(entry *donburi.Entry) {
		obj := components.Object.Get(entry)
		vector.FillRect(
			screen,
			float32(obj.X), float32(obj.Y),
			float32(obj.W), float32(obj.H),
			fg,
			false,
		)
	})

	if ballEntry, ok := components.Ball.First(e.World); ok {
		obj := components.Object.Get(ballEntry)
		vector.FillCircle(
			screen,
			float32(obj.X+obj.W/2), float32(obj.Y+obj.H/2),
			float32(obj.W/2),
			fg,
			false,
		)
	}

	// Net
	vector.StrokeLine(
		screen,
		float32(width/2), 0,
		float32(width/2), float32(height),
		1,
		fg,
		false,
	)

	match := GetMatch(e)
	if match == nil {
		return
	}
	scoreFont := fonts.Score.Get()
	DrawCentered(screen, strconv.Itoa(match.LeftScore), scoreFont, int(width/4), 100, fg)
	DrawCentered(screen, strconv.Itoa(match.RightScore), scoreFont, int(width*3/4), 100, fg)
}

// DrawCentered draws text horizontally centered on x with its baseline at y.
func DrawCentered(screen *ebiten.Image, s string, face font.Face, x, y int, clr color.Color) {
	bounds := text.BoundString(face, s)
	text.Draw(screen, s, face, x-bounds.Dx()/2-bounds.Min.X, y, clr)
}
