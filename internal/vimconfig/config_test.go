package vimconfig

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults_AreValid(t *testing.T) {
	assert.NoError(t, Validate(Defaults()))
}

func TestValidate_RejectsUnknownMode(t *testing.T) {
	cfg := FileConfig{Mappings: []Mapping{{Mode: "bogus", LHS: "a", RHS: "b"}}}
	err := Validate(cfg)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "mappings[0]")
}

func TestValidate_RejectsBadNotation(t *testing.T) {
	cfg := FileConfig{Mappings: []Mapping{{Mode: "normal", LHS: "", RHS: "b"}}}
	assert.Error(t, Validate(cfg))
}

func TestWriteDefaultConfig_ThenLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vimengine.yaml")
	require.NoError(t, WriteDefaultConfig(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "disable_key")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "<C-6>", cfg.DisableKey)
}

func TestWriteDefaultConfig_NeverOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vimengine.yaml")
	require.NoError(t, os.WriteFile(path, []byte("disable_key: \"<C-x>\"\n"), 0o644))
	err := WriteDefaultConfig(path)
	assert.Error(t, err)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "<C-x>", cfg.DisableKey)
}

func TestLoad_RejectsInvalidConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vimengine.yaml")
	require.NoError(t, os.WriteFile(path, []byte("disable_key: \"<Z-x>\"\n"), 0o644))
	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_ParsesMappings(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vimengine.yaml")
	content := "disable_key: \"<C-6>\"\n" +
		"mappings:\n" +
		"  - mode: normal\n" +
		"    lhs: \"<leader>w\"\n" +
		"    rhs: \":write<CR>\"\n" +
		"    noremap: true\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Len(t, cfg.Mappings, 1)
	assert.Equal(t, "normal", cfg.Mappings[0].Mode)
	assert.True(t, cfg.Mappings[0].NoRemap)
}
