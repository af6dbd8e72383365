package vimconfig

import (
	"testing"

	"github.com/loamwood/vimengine/internal/vimcore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKeyNotation_PlainRunes(t *testing.T) {
	set, err := ParseKeyNotation("gg")
	require.NoError(t, err)
	assert.Equal(t, 2, set.Len())
	assert.Equal(t, vimcore.Key('g'), set.Keys()[0])
	assert.Equal(t, vimcore.Key('g'), set.Keys()[1])
}

func TestParseKeyNotation_CtrlBracket(t *testing.T) {
	set, err := ParseKeyNotation("<C-x>")
	require.NoError(t, err)
	assert.Equal(t, 1, set.Len())
	k := set.First()
	assert.Equal(t, vimcore.ModCtrl, k.Mods)
	assert.Equal(t, 'x', k.Rune)
}

func TestParseKeyNotation_NamedKeys(t *testing.T) {
	for notation, wantCode := range map[string]vimcore.KeyCode{
		"<Esc>": vimcore.KeyEscape,
		"<CR>":  vimcore.KeyEnter,
		"<BS>":  vimcore.KeyBackspace,
		"<Tab>": vimcore.KeyTab,
	} {
		set, err := ParseKeyNotation(notation)
		require.NoError(t, err, notation)
		assert.Equal(t, wantCode, set.First().Code, notation)
	}
}

func TestParseKeyNotation_MixedSequence(t *testing.T) {
	set, err := ParseKeyNotation("<C-w>dw")
	require.NoError(t, err)
	require.Equal(t, 3, set.Len())
	assert.Equal(t, vimcore.ModCtrl, set.Keys()[0].Mods)
	assert.Equal(t, vimcore.Key('d'), set.Keys()[1])
	assert.Equal(t, vimcore.Key('w'), set.Keys()[2])
}

func TestParseKeyNotation_UnterminatedBracketIsLiteral(t *testing.T) {
	set, err := ParseKeyNotation("<leader")
	require.NoError(t, err)
	assert.Equal(t, 7, set.Len())
}

func TestParseKeyNotation_EmptyRejected(t *testing.T) {
	_, err := ParseKeyNotation("")
	assert.Error(t, err)
}

func TestParseKeyNotation_UnknownModifierRejected(t *testing.T) {
	_, err := ParseKeyNotation("<Z-x>")
	assert.Error(t, err)
}

func TestParseKeyNotation_FunctionKeyFallsBackToNamed(t *testing.T) {
	set, err := ParseKeyNotation("<F1>")
	require.NoError(t, err)
	assert.Equal(t, vimcore.KeyNamed, set.First().Code)
	assert.Equal(t, "f1", set.First().Name)
}
