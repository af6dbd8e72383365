package vimconfig

import (
	"testing"

	"github.com/loamwood/vimengine/internal/vimcore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildKeyMapTable_FromMappings(t *testing.T) {
	cfg := FileConfig{Mappings: []Mapping{
		{Mode: "normal", LHS: "<leader>w", RHS: ":write<CR>", NoRemap: true},
	}}
	table, err := BuildKeyMapTable(cfg)
	require.NoError(t, err)

	lhs, err := ParseKeyNotation("<leader>w")
	require.NoError(t, err)
	result := table.GetKeyMapping(lhs, vimcore.RemapNormal)
	assert.Equal(t, vimcore.MapMapped, result.Kind)
}

func TestBuildKeyMapTable_RejectsBadMode(t *testing.T) {
	cfg := FileConfig{Mappings: []Mapping{{Mode: "bogus", LHS: "a", RHS: "b"}}}
	_, err := BuildKeyMapTable(cfg)
	assert.Error(t, err)
}

func TestLiveKeyMapTable_SwapTakesEffect(t *testing.T) {
	empty := vimcore.NewStaticKeyMapTable()
	live := NewLiveKeyMapTable(empty)

	lhs := vimcore.NewKeyInputSet(vimcore.Key('a'))
	rhs := vimcore.NewKeyInputSet(vimcore.Key('b'))
	before := live.GetKeyMapping(lhs, vimcore.RemapNormal)
	assert.Equal(t, vimcore.MapNoMapping, before.Kind)

	next := vimcore.NewStaticKeyMapTable()
	next.Add(vimcore.RemapNormal, lhs, rhs, true)
	live.Swap(next)

	after := live.GetKeyMapping(lhs, vimcore.RemapNormal)
	assert.Equal(t, vimcore.MapMapped, after.Kind)
	assert.True(t, rhs.Equal(after.Mapped))
}

func TestLiveKeyMapTable_NilTableIsNoMapping(t *testing.T) {
	live := &LiveKeyMapTable{}
	result := live.GetKeyMapping(vimcore.NewKeyInputSet(vimcore.Key('a')), vimcore.RemapNormal)
	assert.Equal(t, vimcore.MapNoMapping, result.Kind)
}
