package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"
)

// LayerDefault is the single render layer used by every scene.
const LayerDefault ecs.LayerID = 0

// GameMode selects how the right paddle is driven.
type GameMode int

const (
	ModeOnePlayer GameMode = iota // right paddle is AI controlled
	ModeTwoPlayer                 // right paddle is a second human
)

// String returns the string representation of the game mode.
func (m GameMode) String() string {
	switch m {
	case ModeOnePlayer:
		return "1 Player"
	case ModeTwoPlayer:
		return "2 Players"
	default:
		return "Unknown"
	}
}

// ScreenConfig contains window and surface configuration values
type ScreenConfig struct {
	Width       int
	Height      int
	WindowScale int // multiplies the OS window size, not the logical surface
	Title       string
	TPS         int
}

// GameplayConfig contains match simulation configuration values
type GameplayConfig struct {
	// Ball
	BallSize  float64
	BallSpeed float64 // per-axis velocity magnitude, constant for the match

	// Paddles
	PaddleWidth   float64
	PaddleHeight  float64
	LeftPaddleX   float64
	RightPaddleX  float64
	PaddleStartDY float64 // start Y is Height/2 - PaddleStartDY
	PlayerSpeed   float64
	AISpeed       float64

	// AI tracking heuristic
	AIDeadZone float64 // tolerance band around the jittered target
	AIJitter   int     // per-frame jitter range [-AIJitter, AIJitter]

	// Match flow
	WinningScore      int
	RoundDelayMs      int // pause after a point before the next serve
	CountdownFallback int // serve countdown in ms when the beep length is unknown
}

// ColorConfig contains the fixed palette
type ColorConfig struct {
	Court      color.RGBA // gameplay background
	Foreground color.RGBA // paddles, ball, scores, net
	TitleBg    color.RGBA
	TitleText  color.RGBA
	GameOverBg color.RGBA
}

// TitleConfig contains title screen layout values
type TitleConfig struct {
	Message    string
	TitleDY    float64 // offsets from vertical center
	StartDY    float64
	ControlsDY float64
	ModeDY     float64
}

// GameOverConfig contains game over screen layout values
type GameOverConfig struct {
	WinnerDY float64
	ExitDY   float64
}

var Screen ScreenConfig
var Gameplay GameplayConfig
var Colors ColorConfig
var Title TitleConfig
var GameOver GameOverConfig

func init() {
	Screen = ScreenConfig{
		Width:       750,
		Height:      750,
		WindowScale: 1,
		Title:       "Pong",
		TPS:         60,
	}

	Gameplay = GameplayConfig{
		BallSize:          30,
		BallSpeed:         8,
		PaddleWidth:       20,
		PaddleHeight:      180,
		LeftPaddleX:       30,
		RightPaddleX:      710,
		PaddleStartDY:     80,
		PlayerSpeed:       12,
		AISpeed:           9,
		AIDeadZone:        60,
		AIJitter:          40,
		WinningScore:      3,
		RoundDelayMs:      1000,
		CountdownFallback: 1200,
	}

	Colors = ColorConfig{
		Court:      color.RGBA{R: 0, G: 0, B: 255, A: 255},
		Foreground: color.RGBA{R: 255, G: 255, B: 255, A: 255},
		TitleBg:    color.RGBA{R: 0, G: 0, B: 255, A: 255},
		TitleText:  color.RGBA{R: 0, G: 0, B: 0, A: 255},
		GameOverBg: color.RGBA{R: 0, G: 0, B: 0, A: 255},
	}

	Title = TitleConfig{
		Message:    "Pong",
		TitleDY:    -80,
		StartDY:    20,
		ControlsDY: 80,
		ModeDY:     140,
	}

	GameOver = GameOverConfig{
		WinnerDY: 0,
		ExitDY:   60,
	}
}
