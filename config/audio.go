package config

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	SoundCountdown
	SoundPaddleHit
	SoundScore
)

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate      int
	DefaultMusicVol float64
	DefaultSFXVol   float64
	MusicFadeSecs   float32 // fade in/out duration for the looping soundtrack
}

// SoundConfig maps sound IDs to file paths inside the assets FS
type SoundConfig struct {
	GameplayMusic string
	SFXPaths      map[SoundID]string
}

var Audio AudioConfig
var Sound SoundConfig

func init() {
	Audio = AudioConfig{
		SampleRate:      44100,
		DefaultMusicVol: 1.0,
		DefaultSFXVol:   1.0,
		MusicFadeSecs:   0.5,
	}

	Sound = SoundConfig{
		GameplayMusic: "sounds/gameplay.ogg",
		SFXPaths: map[SoundID]string{
			SoundCountdown: "sounds/beep.wav",
			SoundPaddleHit: "sounds/hit.wav",
			SoundScore:     "sounds/score.wav",
		},
	}
}
