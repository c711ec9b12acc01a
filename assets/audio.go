package assets

import (
	"bytes"
	"fmt"
	"io"
	"io/fs"
	"path/filepath"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

// AudioLoader loads and caches audio assets from an fs.FS. Sound effects are
// cached as decoded PCM so repeat plays are instant; music streams through an
// infinite loop.
type AudioLoader struct {
	fsys     fs.FS
	context  *audio.Context
	sfxCache map[string][]byte
}

// NewAudioLoader creates a new audio loader reading from fsys.
func NewAudioLoader(ctx *audio.Context, fsys fs.FS) *AudioLoader {
	return &AudioLoader{
		fsys:     fsys,
		context:  ctx,
		sfxCache: make(map[string][]byte),
	}
}

// LoadSFX returns a fresh player for a sound effect, decoding and caching it
// on first use.
func (l *AudioLoader) LoadSFX(path string) (*audio.Player, error) {
	decoded, err := l.decodedSFX(path)
	if err != nil {
		return nil, err
	}
	return l.context.NewPlayer(bytes.NewReader(decoded))
}

// SFXDuration reports how long a sound effect plays for. The serve countdown
// uses this to hold the match until the beep finishes.
func (l *AudioLoader) SFXDuration(path string) (time.Duration, error) {
	decoded, err := l.decodedSFX(path)
	if err != nil {
		return 0, err
	}
	// Decoded streams are 16-bit stereo: 4 bytes per sample frame.
	frames := len(decoded) / 4
	return time.Duration(frames) * time.Second / time.Duration(l.context.SampleRate()), nil
}

func (l *AudioLoader) decodedSFX(path string) ([]byte, error) {
	if cached, ok := l.sfxCache[path]; ok {
		return cached, nil
	}

	data, err := fs.ReadFile(l.fsys, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read audio file %s: %w", path, err)
	}

	var stream io.Reader
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".ogg":
		stream, err = vorbis.DecodeWithSampleRate(l.context.SampleRate(), bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("failed to decode ogg %s: %w", path, err)
		}
	case ".wav":
		stream, err = wav.DecodeWithSampleRate(l.context.SampleRate(), bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("failed to decode wav %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("unsupported audio format: %s", ext)
	}

	decoded, err := io.ReadAll(stream)
	if err != nil {
		return nil, fmt.Errorf("failed to read decoded audio %s: %w", path, err)
	}

	l.sfxCache[path] = decoded
	return decoded, nil
}

// LoadMusic returns a streaming, looping player for the soundtrack.
func (l *AudioLoader) LoadMusic(path string) (*audio.Player, error) {
	data, err := fs.ReadFile(l.fsys, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read music file %s: %w", path, err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".ogg":
		stream, err := vorbis.DecodeWithSampleRate(l.context.SampleRate(), bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("failed to decode music ogg %s: %w", path, err)
		}
		return l.context.NewPlayer(audio.NewInfiniteLoop(stream, stream.Length()))
	case ".wav":
		stream, err := wav.DecodeWithSampleRate(l.context.SampleRate(), bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("failed to decode music wav %s: %w", path, err)
		}
		return l.context.NewPlayer(audio.NewInfiniteLoop(stream, stream.Length()))
	default:
		return nil, fmt.Errorf("unsupported audio format: %s", ext)
	}
}
