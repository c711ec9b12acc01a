package config

import "github.com/hajimehoshi/ebiten/v2"

// PaddleID identifies which side of the court a paddle defends
type PaddleID int

const (
	PaddleLeft PaddleID = iota
	PaddleRight
)

// PaddleBinding holds the movement keys for one paddle
type PaddleBinding struct {
	Up   []ebiten.Key
	Down []ebiten.Key
}

// InputConfig holds the paddle key bindings per game mode
type InputConfig struct {
	Bindings map[GameMode]map[PaddleID]PaddleBinding

	// Title screen mode selection
	OnePlayerKey ebiten.Key
	TwoPlayerKey ebiten.Key
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		OnePlayerKey: ebiten.Key1,
		TwoPlayerKey: ebiten.Key2,
		Bindings: map[GameMode]map[PaddleID]PaddleBinding{
			ModeOnePlayer: {
				// W/S and Up/Down both steer the single human paddle.
				PaddleLeft: {
					Up:   []ebiten.Key{ebiten.KeyW, ebiten.KeyArrowUp},
					Down: []ebiten.Key{ebiten.KeyS, ebiten.KeyArrowDown},
				},
			},
			ModeTwoPlayer: {
				PaddleLeft: {
					Up:   []ebiten.Key{ebiten.KeyW},
					Down: []ebiten.Key{ebiten.KeyS},
				},
				PaddleRight: {
					Up:   []ebiten.Key{ebiten.KeyArrowUp},
					Down: []ebiten.Key{ebiten.KeyArrowDown},
				},
			},
		},
	}
}

// KeyBinds returns the bindings for one paddle under the given mode.
// The zero value is returned for sides with no human control (the AI paddle).
func KeyBinds(mode GameMode, side PaddleID) PaddleBinding {
	return Input.Bindings[mode][side]
}
