package systems

import (
	"encoding/json"

	cfg "github.com/automoto/pong/config"
	"github.com/quasilyte/gdata"
)

// SavedSettings represents the player preferences stored on disk. Match
// state is never persisted; this is volume and mode selection only.
type SavedSettings struct {
	MusicVolume   float64 `json:"musicVolume"`
	SFXVolume     float64 `json:"sfxVolume"`
	PreferredMode int     `json:"preferredMode"`
}

var gdataManager *gdata.Manager

// InitPersistence opens the gdata store for settings. Failure is
// non-fatal; the game just runs with defaults.
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "pong",
	})
	if err != nil {
		return err
	}
	gdataManager = m
	return nil
}

// LoadSettings loads preferences from disk. Returns nil with no error when
// nothing has been saved yet or persistence is unavailable.
func LoadSettings() (*SavedSettings, error) {
	if gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem("settings")
	if err != nil || data == nil {
		return nil, err
	}

	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, err
	}
	return &settings, nil
}

// SaveSettings writes preferences to disk.
func SaveSettings(s *SavedSettings) error {
	if gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		return err
	}
	return gdataManager.SaveItem("settings", data)
}

// ApplySavedSettings feeds loaded preferences into the audio system and
// reports the preferred game mode.
func ApplySavedSettings(saved *SavedSettings) cfg.GameMode {
	if saved == nil {
		return cfg.ModeOnePlayer
	}

	SetMusicVolume(saved.MusicVolume)
	SetSFXVolume(saved.SFXVolume)

	mode := cfg.GameMode(saved.PreferredMode)
	if mode != cfg.ModeOnePlayer && mode != cfg.ModeTwoPlayer {
		mode = cfg.ModeOnePlayer
	}
	return mode
}

// CurrentSettings snapshots the live preferences for saving.
func CurrentSettings(mode cfg.GameMode) *SavedSettings {
	return &SavedSettings{
		MusicVolume:   GetMusicVolume(),
		SFXVolume:     GetSFXVolume(),
		PreferredMode: int(mode),
	}
}
