package tags

import "github.com/yohamta/donburi"

var (
	Ball   = donburi.NewTag().SetName("Ball")
	Paddle = donburi.NewTag().SetName("Paddle")
)

// Resolv tags for the collision space
const (
	ResolvBall        = "ball"
	ResolvPaddleLeft  = "paddle_left"
	ResolvPaddleRight = "paddle_right"
)
