package vimconfig

import (
	"fmt"
	"sync/atomic"

	"github.com/loamwood/vimengine/internal/vimcore"
)

// BuildKeyMapTable turns a FileConfig's mapping list into a fresh
// vimcore.StaticKeyMapTable. Returns an error naming the offending entry
// rather than skipping it silently, since a host reloading a config file
// wants to know its mapping got dropped.
func BuildKeyMapTable(cfg FileConfig) (*vimcore.StaticKeyMapTable, error) {
	table := vimcore.NewStaticKeyMapTable()
	for i, m := range cfg.Mappings {
		mode, err := remapModeFromName(m.Mode)
		if err != nil {
			return nil, fmt.Errorf("mappings[%d]: %w", i, err)
		}
		lhs, err := ParseKeyNotation(m.LHS)
		if err != nil {
			return nil, fmt.Errorf("mappings[%d].lhs: %w", i, err)
		}
		rhs, err := ParseKeyNotation(m.RHS)
		if err != nil {
			return nil, fmt.Errorf("mappings[%d].rhs: %w", i, err)
		}
		table.Add(mode, lhs, rhs, m.NoRemap)
	}
	return table, nil
}

// LiveKeyMapTable is a vimcore.KeyMapTable whose backing table can be
// swapped out wholesale (on config reload) without the InputEngine ever
// seeing a half-built table: every lookup reads one atomic snapshot.
type LiveKeyMapTable struct {
	current atomic.Pointer[vimcore.StaticKeyMapTable]
}

// NewLiveKeyMapTable wraps an initial table.
func NewLiveKeyMapTable(initial *vimcore.StaticKeyMapTable) *LiveKeyMapTable {
	l := &LiveKeyMapTable{}
	l.Swap(initial)
	return l
}

// Swap installs table as the one future lookups consult.
func (l *LiveKeyMapTable) Swap(table *vimcore.StaticKeyMapTable) {
	l.current.Store(table)
}

// GetKeyMapping implements vimcore.KeyMapTable.
func (l *LiveKeyMapTable) GetKeyMapping(set vimcore.KeyInputSet, mode vimcore.KeyRemapMode) vimcore.KeyMappingResult {
	table := l.current.Load()
	if table == nil {
		return vimcore.KeyMappingResult{Kind: vimcore.MapNoMapping}
	}
	return table.GetKeyMapping(set, mode)
}

var _ vimcore.KeyMapTable = (*LiveKeyMapTable)(nil)
