package vimconfig

import (
	"testing"

	"github.com/loamwood/vimengine/internal/vimcore"
	"github.com/stretchr/testify/assert"
)

func TestRemapModeFromName_KnownNames(t *testing.T) {
	cases := map[string]vimcore.KeyRemapMode{
		"insert":           vimcore.RemapInsert,
		"command":          vimcore.RemapCommand,
		"normal":           vimcore.RemapNormal,
		"visual":           vimcore.RemapVisual,
		"select":           vimcore.RemapSelect,
		"operator-pending": vimcore.RemapOperatorPending,
		"language":         vimcore.RemapLanguage,
	}
	for name, want := range cases {
		got, err := remapModeFromName(name)
		assert.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}
}

func TestRemapModeFromName_Unknown(t *testing.T) {
	_, err := remapModeFromName("bogus")
	assert.Error(t, err)
}

func TestSettings_DisableCommand(t *testing.T) {
	s := NewSettings(FileConfig{DisableKey: "<C-6>"})
	k := s.DisableCommand()
	assert.Equal(t, vimcore.ModCtrl, k.Mods)
	assert.Equal(t, '6', k.Rune)
}

func TestSettings_DisableCommand_EmptyConfigYieldsZeroKey(t *testing.T) {
	s := NewSettings(FileConfig{})
	assert.Equal(t, vimcore.KeyInput{}, s.DisableCommand())
}

func TestSettings_StoreSwapsSnapshot(t *testing.T) {
	s := NewSettings(FileConfig{DisableKey: "<C-6>"})
	s.store(FileConfig{DisableKey: "<C-x>"})
	k := s.DisableCommand()
	assert.Equal(t, 'x', k.Rune)
}

var _ vimcore.GlobalSettings = (*Settings)(nil)
