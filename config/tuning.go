package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/BurntSushi/toml"
)

// Overrides holds the user-tunable values read from pong.toml.
// Every field is optional; nil means "keep the built-in default".
type Overrides struct {
	MusicVolume *float64 `toml:"music_volume"`
	SFXVolume   *float64 `toml:"sfx_volume"`
	WindowScale *int     `toml:"window_scale"`
}

// LoadOverrides reads the optional override file. A missing file is not an
// error; a malformed one is.
func LoadOverrides(fsys fs.FS, path string) (*Overrides, error) {
	data, err := fs.ReadFile(fsys, path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var o Overrides
	if err := toml.Unmarshal(data, &o); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return &o, nil
}

// Apply folds the overrides into the global configuration.
func (o *Overrides) Apply() {
	if o == nil {
		return
	}
	if o.MusicVolume != nil {
		Audio.DefaultMusicVol = clampUnit(*o.MusicVolume)
	}
	if o.SFXVolume != nil {
		Audio.DefaultSFXVol = clampUnit(*o.SFXVolume)
	}
	if o.WindowScale != nil && *o.WindowScale > 0 {
		Screen.WindowScale = *o.WindowScale
	}
}

func clampUnit(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
