package config

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadOverridesMissingFileIsNotAnError(t *testing.T) {
	o, err := LoadOverrides(fstest.MapFS{}, "pong.toml")
	assert.NoError(t, err)
	assert.Nil(t, o)
}

func TestLoadOverridesParsesValues(t *testing.T) {
	fsys := fstest.MapFS{
		"pong.toml": &fstest.MapFile{Data: []byte(
			"music_volume = 0.4\nsfx_volume = 0.9\nwindow_scale = 2\n",
		)},
	}

	o, err := LoadOverrides(fsys, "pong.toml")
	require.NoError(t, err)
	require.NotNil(t, o)

	require.NotNil(t, o.MusicVolume)
	assert.Equal(t, 0.4, *o.MusicVolume)
	require.NotNil(t, o.SFXVolume)
	assert.Equal(t, 0.9, *o.SFXVolume)
	require.NotNil(t, o.WindowScale)
	assert.Equal(t, 2, *o.WindowScale)
}

func TestLoadOverridesPartialFile(t *testing.T) {
	fsys := fstest.MapFS{
		"pong.toml": &fstest.MapFile{Data: []byte("window_scale = 3\n")},
	}

	o, err := LoadOverrides(fsys, "pong.toml")
	require.NoError(t, err)
	require.NotNil(t, o)

	assert.Nil(t, o.MusicVolume)
	assert.Nil(t, o.SFXVolume)
	require.NotNil(t, o.WindowScale)
	assert.Equal(t, 3, *o.WindowScale)
}

func TestLoadOverridesRejectsMalformedFile(t *testing.T) {
	fsys := fstest.MapFS{
		"pong.toml": &fstest.MapFile{Data: []byte("music_volume = [not toml")},
	}

	_, err := LoadOverrides(fsys, "pong.toml")
	assert.Error(t, err)
}

func TestApplyClampsAndGuards(t *testing.T) {
	origAudio, origScreen := Audio, Screen
	defer func() {
		Audio = origAudio
		Screen = origScreen
	}()

	loud := 1.5
	negative := -0.2
	zero := 0
	o := &Overrides{MusicVolume: &loud, SFXVolume: &negative, WindowScale: &zero}
	o.Apply()

	assert.Equal(t, 1.0, Audio.DefaultMusicVol)
	assert.Equal(t, 0.0, Audio.DefaultSFXVol)
	assert.Equal(t, origScreen.WindowScale, Screen.WindowScale, "non-positive scales are ignored")

	var none *Overrides
	none.Apply() // nil receiver is a no-op
}

func TestGameModeString(t *testing.T) {
	assert.Equal(t, "1 Player", ModeOnePlayer.String())
	assert.Equal(t, "2 Players", ModeTwoPlayer.String())
	assert.Equal(t, "Unknown", GameMode(9).String())
}

func TestKeyBindsUnboundSideIsEmpty(t *testing.T) {
	binds := KeyBinds(ModeOnePlayer, PaddleRight)
	assert.Empty(t, binds.Up)
	assert.Empty(t, binds.Down)
}
