package vimcore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModeRegistry_StartsUninitialized(t *testing.T) {
	r := NewModeRegistry()
	assert.Equal(t, ModeUninitialized, r.Current().Kind())
	_, ok := r.Previous()
	assert.False(t, ok)
}

func TestModeRegistry_SwitchUnregisteredKindFails(t *testing.T) {
	r := NewModeRegistry()
	_, err := r.Switch(ModeNormal, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoSuchMode)
}

func TestModeRegistry_SwitchRunsLifecycleInOrder(t *testing.T) {
	r := NewModeRegistry()
	normal := newFakeMode(ModeNormal)
	r.Add(normal)

	m, err := r.Switch(ModeNormal, "arg")
	require.NoError(t, err)
	assert.Same(t, Mode(normal), m)
	assert.Equal(t, 1, normal.enters)
	assert.Equal(t, "arg", normal.lastArg)

	insert := newFakeMode(ModeInsert)
	r.Add(insert)
	_, err = r.Switch(ModeInsert, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, normal.leaves)
	assert.Equal(t, 1, insert.enters)

	prev, ok := r.Previous()
	require.True(t, ok)
	assert.Equal(t, ModeNormal, prev.Kind())
}

func TestModeRegistry_OnSwitchCallback(t *testing.T) {
	r := NewModeRegistry()
	normal := newFakeMode(ModeNormal)
	insert := newFakeMode(ModeInsert)
	r.Add(normal)
	r.Add(insert)

	var calls [][2]ModeKind
	r.OnSwitch = func(prev, cur Mode) {
		calls = append(calls, [2]ModeKind{prev.Kind(), cur.Kind()})
	}

	_, _ = r.Switch(ModeNormal, nil)
	_, _ = r.Switch(ModeInsert, nil)

	require.Len(t, calls, 2)
	assert.Equal(t, [2]ModeKind{ModeUninitialized, ModeNormal}, calls[0])
	assert.Equal(t, [2]ModeKind{ModeNormal, ModeInsert}, calls[1])
}

func TestModeRegistry_PreviousSkipsConsecutiveVisual(t *testing.T) {
	r := NewModeRegistry()
	normal := newFakeMode(ModeNormal)
	visChar := newFakeMode(ModeVisualCharacter)
	visLine := newFakeMode(ModeVisualLine)
	r.Add(normal)
	r.Add(visChar)
	r.Add(visLine)

	_, _ = r.Switch(ModeNormal, nil)
	_, _ = r.Switch(ModeVisualCharacter, nil)
	_, _ = r.Switch(ModeVisualLine, nil)

	prev, ok := r.Previous()
	require.True(t, ok)
	assert.Equal(t, ModeNormal, prev.Kind(), "hopping between visual sub-modes must not overwrite the pre-visual previous mode")

	_, _ = r.Switch(ModeNormal, nil)
	prev, ok = r.Previous()
	require.True(t, ok)
	assert.Equal(t, ModeVisualLine, prev.Kind())
}
