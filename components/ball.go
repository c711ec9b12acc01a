package components

import "github.com/yohamta/donburi"

// BallData stores the ball's velocity. Position lives on the entity's
// ObjectData so the collision space stays authoritative.
type BallData struct {
	VX float64
	VY float64
}

var Ball = donburi.NewComponentType[BallData]()
