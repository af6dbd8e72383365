package vimconfig

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/loamwood/vimengine/internal/vimcore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatcher_ReloadsOnWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vimengine.yaml")
	require.NoError(t, os.WriteFile(path, []byte("disable_key: \"<C-6>\"\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	settings := NewSettings(cfg)
	table := NewLiveKeyMapTable(vimcore.NewStaticKeyMapTable())

	w, err := New(DefaultWatcherConfig(path, settings, table))
	require.NoError(t, err)
	reloaded, err := w.Start()
	require.NoError(t, err)
	defer func() { _ = w.Stop() }()

	require.NoError(t, os.WriteFile(path, []byte("disable_key: \"<C-x>\"\n"), 0o644))

	select {
	case <-reloaded:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for reload")
	}

	k := settings.DisableCommand()
	assert.Equal(t, 'x', k.Rune)
}

func TestWatcher_InvalidReloadKeepsPreviousConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vimengine.yaml")
	require.NoError(t, os.WriteFile(path, []byte("disable_key: \"<C-6>\"\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	settings := NewSettings(cfg)
	table := NewLiveKeyMapTable(vimcore.NewStaticKeyMapTable())

	w, err := New(DefaultWatcherConfig(path, settings, table))
	require.NoError(t, err)
	_, err = w.Start()
	require.NoError(t, err)
	defer func() { _ = w.Stop() }()

	require.NoError(t, os.WriteFile(path, []byte("disable_key: \"<Z-bogus>\"\n"), 0o644))
	time.Sleep(300 * time.Millisecond)

	k := settings.DisableCommand()
	assert.Equal(t, '6', k.Rune)
}
