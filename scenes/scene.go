// Package scenes holds the screen state machine: a Scene contract, a
// Manager sequencing scenes, and the title/gameplay/game-over variants.
package scenes

import "github.com/hajimehoshi/ebiten/v2"

// Kind tags each scene variant so the driver can decide transitions without
// inspecting concrete types.
type Kind int

const (
	KindTitle Kind = iota
	KindGame
	KindGameOver
)

// String returns the string representation of the scene kind.
func (k Kind) String() string {
	switch k {
	case KindTitle:
		return "Title"
	case KindGame:
		return "Game"
	case KindGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// Scene is one drawable, event-consuming unit of game state.
//
// Once Valid reports false the scene is never updated or drawn again; the
// driver checks validity once per tick and transitions before the next Draw.
// Start and End are called exactly once per activation/deactivation, End
// strictly before the next scene's Start.
type Scene interface {
	// Update advances the scene's simulation by one frame.
	Update()

	// Draw renders the scene onto the screen.
	Draw(screen *ebiten.Image)

	// ProcessEvent feeds one input event to the scene.
	ProcessEvent(ev Event)

	// Valid reports whether the scene should keep running.
	Valid() bool

	// Start begins the scene's looping soundtrack. Called once on activation.
	Start()

	// End fades the soundtrack out. Called once on deactivation.
	End()

	// Kind identifies the scene variant.
	Kind() Kind

	// FrameRate is the tick rate the scene wants, 60 by default.
	FrameRate() int
}
