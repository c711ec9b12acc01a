package systems

import (
	"fmt"
	"io/fs"
	"sync"
	"time"

	"github.com/automoto/pong/assets"
	"github.com/automoto/pong/components"
	cfg "github.com/automoto/pong/config"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

// Global audio state - created once at startup and shared across all scenes.
// The whole game runs on one goroutine, so no locking is needed.
var (
	globalAudioContext *audio.Context
	globalAudioLoader  *assets.AudioLoader
	globalMusicPlayer  *audio.Player
	globalMusicKey     string
	globalMusicVolume  = cfg.Audio.DefaultMusicVol
	globalSFXVolume    = cfg.Audio.DefaultSFXVol

	// In-flight volume tween and what to do when it finishes.
	fadeTween   *gween.Tween
	fadeStopsAt bool // true when the tween ends with the player closed

	audioInitOnce sync.Once
	audioReady    bool
)

const tickDT = 1.0 / 60.0

// InitAudio creates the audio context and loader. Until it is called every
// playback request is a silent no-op, which keeps the simulation runnable
// in tests and on machines with no audio device.
func InitAudio(fsys fs.FS) {
	audioInitOnce.Do(func() {
		globalAudioContext = audio.NewContext(cfg.Audio.SampleRate)
		globalAudioLoader = assets.NewAudioLoader(globalAudioContext, fsys)
		globalMusicVolume = cfg.Audio.DefaultMusicVol
		globalSFXVolume = cfg.Audio.DefaultSFXVol
		audioReady = true
	})
}

// TickAudio advances the music fade tween by one frame. The driver calls it
// every tick so fades keep progressing across scene boundaries.
func TickAudio() {
	if fadeTween == nil || globalMusicPlayer == nil {
		return
	}

	vol, finished := fadeTween.Update(tickDT)
	globalMusicPlayer.SetVolume(float64(vol))
	if !finished {
		return
	}

	fadeTween = nil
	if fadeStopsAt {
		_ = globalMusicPlayer.Close()
		globalMusicPlayer = nil
		globalMusicKey = ""
	}
}

// UpdateAudio drains sound effects queued by the simulation systems.
func UpdateAudio(e *ecs.ECS) {
	entry, ok := components.Audio.First(e.World)
	if !ok {
		return
	}
	audioData := components.Audio.Get(entry)
	for _, soundID := range audioData.PendingSFX {
		playSFX(soundID)
	}
	audioData.PendingSFX = audioData.PendingSFX[:0]
}

func playSFX(soundID cfg.SoundID) {
	if !audioReady || globalSFXVolume <= 0 {
		return
	}

	path, ok := cfg.Sound.SFXPaths[soundID]
	if !ok {
		return
	}

	// One-shot effects are non-fatal: a missing file just stays silent.
	player, err := globalAudioLoader.LoadSFX(path)
	if err != nil {
		return
	}

	player.SetVolume(globalSFXVolume)
	player.Play()
}

// PlaySFX queues a sound effect for the next UpdateAudio pass.
func PlaySFX(e *ecs.ECS, sound cfg.SoundID) {
	audioData := GetOrCreateAudio(e)
	audioData.PendingSFX = append(audioData.PendingSFX, sound)
}

// PlayMusic starts the looping soundtrack with a fade in. Starting the track
// that is already playing only cancels a pending fade out.
func PlayMusic(path string) error {
	if !audioReady {
		return nil
	}

	if globalMusicKey == path && globalMusicPlayer != nil {
		fadeTween = gween.New(currentMusicVolume(), float32(globalMusicVolume), cfg.Audio.MusicFadeSecs, ease.Linear)
		fadeStopsAt = false
		return nil
	}

	if globalMusicPlayer != nil {
		_ = globalMusicPlayer.Close()
	}

	player, err := globalAudioLoader.LoadMusic(path)
	if err != nil {
		return fmt.Errorf("soundtrack unavailable: %w", err)
	}

	player.SetVolume(0)
	player.Play()

	globalMusicPlayer = player
	globalMusicKey = path
	fadeTween = gween.New(0, float32(globalMusicVolume), cfg.Audio.MusicFadeSecs, ease.Linear)
	fadeStopsAt = false
	return nil
}

// FadeOutMusic fades the soundtrack to silence and then stops it.
func FadeOutMusic() {
	if globalMusicPlayer == nil {
		return
	}
	fadeTween = gween.New(currentMusicVolume(), 0, cfg.Audio.MusicFadeSecs, ease.Linear)
	fadeStopsAt = true
}

func currentMusicVolume() float32 {
	if globalMusicPlayer == nil {
		return 0
	}
	return float32(globalMusicPlayer.Volume())
}

// SoundLength reports the duration of a sound effect, when known.
func SoundLength(sound cfg.SoundID) (time.Duration, bool) {
	if !audioReady {
		return 0, false
	}
	path, ok := cfg.Sound.SFXPaths[sound]
	if !ok {
		return 0, false
	}
	d, err := globalAudioLoader.SFXDuration(path)
	if err != nil {
		return 0, false
	}
	return d, true
}

// SetMusicVolume changes the music volume (0.0 - 1.0).
func SetMusicVolume(volume float64) {
	globalMusicVolume = volume
	if globalMusicPlayer != nil && fadeTween == nil {
		globalMusicPlayer.SetVolume(volume)
	}
}

// SetSFXVolume changes the SFX volume (0.0 - 1.0).
func SetSFXVolume(volume float64) {
	globalSFXVolume = volume
}

// GetMusicVolume returns the current music volume (0.0 - 1.0).
func GetMusicVolume() float64 {
	return globalMusicVolume
}

// GetSFXVolume returns the current SFX volume (0.0 - 1.0).
func GetSFXVolume() float64 {
	return globalSFXVolume
}

// GetOrCreateAudio returns the singleton Audio component for this ECS,
// creating it if needed.
func GetOrCreateAudio(e *ecs.ECS) *components.AudioData {
	entry, ok := components.Audio.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Audio))
		components.Audio.SetValue(entry, components.AudioData{
			PendingSFX: make([]cfg.SoundID, 0, 8),
		})
	}
	return components.Audio.Get(entry)
}
