package components

import (
	cfg "github.com/automoto/pong/config"
	"github.com/yohamta/donburi"
)

// AudioData queues sound effects raised by simulation systems. The audio
// system drains the queue once per frame, which keeps the simulation free
// of playback side effects (and testable without an audio device).
type AudioData struct {
	PendingSFX []cfg.SoundID
}

var Audio = donburi.NewComponentType[AudioData]()
