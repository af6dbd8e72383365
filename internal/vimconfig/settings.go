package vimconfig

import (
	"fmt"
	"sync/atomic"

	"github.com/loamwood/vimengine/internal/vimcore"
)

func remapModeFromName(name string) (vimcore.KeyRemapMode, error) {
	switch name {
	case "insert":
		return vimcore.RemapInsert, nil
	case "command":
		return vimcore.RemapCommand, nil
	case "normal":
		return vimcore.RemapNormal, nil
	case "visual":
		return vimcore.RemapVisual, nil
	case "select":
		return vimcore.RemapSelect, nil
	case "operator-pending":
		return vimcore.RemapOperatorPending, nil
	case "language":
		return vimcore.RemapLanguage, nil
	default:
		return 0, fmt.Errorf("unknown remap mode %q", name)
	}
}

// Settings implements vimcore.GlobalSettings, backed by an atomically
// swappable snapshot so Watch's hot-reload can replace it without the
// engine ever observing a torn read.
type Settings struct {
	current atomic.Pointer[FileConfig]
}

// NewSettings builds a Settings from an already-loaded, already-valid
// FileConfig.
func NewSettings(cfg FileConfig) *Settings {
	s := &Settings{}
	s.store(cfg)
	return s
}

func (s *Settings) store(cfg FileConfig) {
	c := cfg
	s.current.Store(&c)
}

// DisableCommand implements vimcore.GlobalSettings.
func (s *Settings) DisableCommand() vimcore.KeyInput {
	cfg := s.current.Load()
	if cfg == nil || cfg.DisableKey == "" {
		return vimcore.KeyInput{}
	}
	set, err := ParseKeyNotation(cfg.DisableKey)
	if err != nil {
		return vimcore.KeyInput{}
	}
	return set.First()
}
