package main

import (
	"bytes"
	"testing"

	"github.com/loamwood/vimengine/internal/vimcore"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func TestRunKeys_InsertsAndEscapes(t *testing.T) {
	keysSeed = []string{""}
	cmd := keysCmd
	var out bytes.Buffer
	cmd.SetOut(&out)

	err := runKeys(cmd, []string{"ihi<Esc>"})
	assert.NoError(t, err)
	assert.Contains(t, out.String(), "hi")
	assert.Contains(t, out.String(), "mode: normal -> insert")
	assert.Contains(t, out.String(), "mode: insert -> normal")
}

func TestTranslateKey_Runes(t *testing.T) {
	got := translateKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}})
	assert.Equal(t, vimcore.Key('x'), got)
}

func TestTranslateKey_Escape(t *testing.T) {
	got := translateKey(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, vimcore.Escape(), got)
}

func TestTranslateKey_CtrlLetter(t *testing.T) {
	got := translateKey(tea.KeyMsg{Type: tea.KeyCtrlW})
	assert.Equal(t, vimcore.ModCtrl, got.Mods)
	assert.Equal(t, 'w', got.Rune)
}
