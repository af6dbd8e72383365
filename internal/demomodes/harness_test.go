package demomodes

import (
	"testing"

	"github.com/loamwood/vimengine/internal/excmd"
	"github.com/loamwood/vimengine/internal/vimcore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func press(t *testing.T, h *Harness, keys ...vimcore.KeyInput) {
	t.Helper()
	for _, k := range keys {
		result := h.Engine.Process(k)
		require.NotEqual(t, vimcore.ResultError, result.Kind, "key %v errored", k)
	}
}

func TestHarness_InsertThenEscapeReturnsToNormal(t *testing.T) {
	h, err := New([]string{""}, vimcore.Config{})
	require.NoError(t, err)

	press(t, h, vimcore.Key('i'), vimcore.Key('h'), vimcore.Key('i'), vimcore.Escape())

	assert.Equal(t, vimcore.ModeNormal, h.Registry.Current().Kind())
	assert.Equal(t, "hi", h.Buffer.Lines()[0])
}

func TestHarness_DDDeletesCurrentLine(t *testing.T) {
	h, err := New([]string{"one", "two", "three"}, vimcore.Config{})
	require.NoError(t, err)

	press(t, h, vimcore.Key('j'), vimcore.Key('d'), vimcore.Key('d'))

	assert.Equal(t, []string{"one", "three"}, h.Buffer.Lines())
}

func TestHarness_CommandModeParsesExCommand(t *testing.T) {
	h, err := New([]string{"a", "b"}, vimcore.Config{})
	require.NoError(t, err)

	press(t, h, vimcore.Key(':'), vimcore.Key('q'), vimcore.Enter())

	raw, ok := h.Registry.Get(vimcore.ModeCommand)
	require.True(t, ok)
	cmdMode := raw.(*Command)
	assert.Equal(t, vimcore.ModeNormal, h.Registry.Current().Kind())
	require.NotNil(t, cmdMode.Last)
	assert.Equal(t, excmd.CmdQuit, cmdMode.Last.Kind)
	assert.True(t, cmdMode.Quit())
}

func TestHarness_VisualDeletesLine(t *testing.T) {
	h, err := New([]string{"one", "two"}, vimcore.Config{})
	require.NoError(t, err)

	press(t, h, vimcore.Key('v'), vimcore.Key('d'))

	assert.Equal(t, vimcore.ModeNormal, h.Registry.Current().Kind())
	assert.Equal(t, []string{"two"}, h.Buffer.Lines())
}

func TestHarness_GetReportsRegisteredModes(t *testing.T) {
	h, err := New([]string{""}, vimcore.Config{})
	require.NoError(t, err)
	_, ok := h.Registry.Get(vimcore.ModeInsert)
	assert.True(t, ok)
	_, ok = h.Registry.Get(vimcore.ModeSubstituteConfirm)
	assert.False(t, ok)
}
