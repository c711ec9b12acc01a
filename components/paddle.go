package components

import (
	cfg "github.com/automoto/pong/config"
	"github.com/yohamta/donburi"
)

// PaddleData stores one paddle's control state and tuning.
type PaddleData struct {
	Side  cfg.PaddleID
	Speed float64

	// Movement intent, set on key-down and cleared on key-up.
	MoveUp   bool
	MoveDown bool

	// AIControlled paddles ignore intent flags and track the ball instead.
	AIControlled bool

	// Start position, restored after every scored point.
	StartX float64
	StartY float64
}

var Paddle = donburi.NewComponentType[PaddleData]()
