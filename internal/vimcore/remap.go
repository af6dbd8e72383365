package vimcore

// KeyMappingResultKind tags the outcome of a key-map table lookup.
type KeyMappingResultKind int

const (
	MapNoMapping KeyMappingResultKind = iota
	MapNeedsMoreInput
	MapMapped
	MapRecursive
)

// KeyMappingResult is what a KeyMapTable lookup, and C1's resolver,
// produce: either the input has nothing to do with the map table
// (NoMapping), could still match a longer entry (NeedsMoreInput),
// resolves to a (possibly identical) replacement sequence (Mapped), or
// expanded into a cycle (Recursive).
type KeyMappingResult struct {
	Kind   KeyMappingResultKind
	Mapped KeyInputSet
}

// KeyMapTable is the external collaborator C1 consults: given a
// keystroke sequence and the remap mode it should be resolved against,
// return the fully-expanded mapping (or the reason none applies yet).
// A concrete table owns prefix matching and recursive-expansion
// semantics; C1 itself stays pure with respect to engine state.
type KeyMapTable interface {
	GetKeyMapping(set KeyInputSet, mode KeyRemapMode) KeyMappingResult
}

// ResolveKeyMapping is C1: the pure resolver the engine calls on every
// keystroke. When mode is nil (the current mode does not participate in
// remapping at all, e.g. Disabled) or table is nil, the input passes
// through unmapped.
func ResolveKeyMapping(table KeyMapTable, set KeyInputSet, mode *KeyRemapMode) KeyMappingResult {
	if mode == nil || table == nil {
		return KeyMappingResult{Kind: MapMapped, Mapped: set}
	}
	return table.GetKeyMapping(set, *mode)
}

// maxRemapExpansions bounds how many times a single resolution may
// re-expand a mapped-to sequence before giving up and reporting
// Recursive. Chosen generously above anything a real mapping set would
// need, so it only ever fires on an actual cycle.
const maxRemapExpansions = 1000

type keyMapEntry struct {
	lhs     KeyInputSet
	rhs     KeyInputSet
	noRemap bool
}

// StaticKeyMapTable is a straightforward, in-memory KeyMapTable: an
// ordered list of (lhs, rhs, noremap) entries per remap mode. An entry
// whose lhs equals the input is used at once, even when a longer entry
// also begins with the input; only without such an exact match does a
// longer entry make the input NeedsMoreInput. It is usable standalone for
// tests and small embeddings, and is what internal/vimconfig wraps to
// add YAML loading and hot reload.
type StaticKeyMapTable struct {
	entries map[KeyRemapMode][]keyMapEntry
}

// NewStaticKeyMapTable returns an empty table.
func NewStaticKeyMapTable() *StaticKeyMapTable {
	return &StaticKeyMapTable{entries: make(map[KeyRemapMode][]keyMapEntry)}
}

// Add registers lhs -> rhs for mode. noRemap matches Vim's *noremap*
// family: when true, rhs is taken literally and never re-expanded.
func (t *StaticKeyMapTable) Add(mode KeyRemapMode, lhs, rhs KeyInputSet, noRemap bool) {
	t.entries[mode] = append(t.entries[mode], keyMapEntry{lhs: lhs, rhs: rhs, noRemap: noRemap})
}

// Clear removes every mapping for mode. Passing the zero KeyRemapMode
// value clears only that mode; callers wanting "mapclear!" semantics
// across every mode should call Clear once per KeyRemapMode.
func (t *StaticKeyMapTable) Clear(mode KeyRemapMode) {
	delete(t.entries, mode)
}

// Remove deletes the entry exactly matching lhs in mode, if one exists.
// Reports whether an entry was removed.
func (t *StaticKeyMapTable) Remove(mode KeyRemapMode, lhs KeyInputSet) bool {
	list := t.entries[mode]
	for i, e := range list {
		if e.lhs.Equal(lhs) {
			t.entries[mode] = append(list[:i], list[i+1:]...)
			return true
		}
	}
	return false
}

// GetKeyMapping implements KeyMapTable.
func (t *StaticKeyMapTable) GetKeyMapping(set KeyInputSet, mode KeyRemapMode) KeyMappingResult {
	list := t.entries[mode]

	if entry, ok := exactMatch(list, set); ok {
		if entry.noRemap {
			return KeyMappingResult{Kind: MapMapped, Mapped: entry.rhs}
		}
		expanded, recursive := expand(list, entry.rhs)
		if recursive {
			return KeyMappingResult{Kind: MapRecursive}
		}
		return KeyMappingResult{Kind: MapMapped, Mapped: expanded}
	}

	for _, e := range list {
		if set.IsPrefixOf(e.lhs) {
			return KeyMappingResult{Kind: MapNeedsMoreInput}
		}
	}

	return KeyMappingResult{Kind: MapNoMapping}
}

func exactMatch(list []keyMapEntry, set KeyInputSet) (keyMapEntry, bool) {
	for _, e := range list {
		if e.lhs.Equal(set) {
			return e, true
		}
	}
	return keyMapEntry{}, false
}

// expand repeatedly re-resolves rhs against the same entry list until it
// stabilizes (no entry's lhs exactly matches the current expansion), a
// noremap entry is hit, or maxRemapExpansions / a repeated expansion
// (cycle) is observed.
func expand(list []keyMapEntry, rhs KeyInputSet) (KeyInputSet, bool) {
	seen := map[string]bool{rhs.key(): true}
	current := rhs
	for i := 0; i < maxRemapExpansions; i++ {
		entry, ok := exactMatch(list, current)
		if !ok {
			return current, false
		}
		if entry.noRemap {
			return entry.rhs, false
		}
		if seen[entry.rhs.key()] {
			return KeyInputSet{}, true
		}
		seen[entry.rhs.key()] = true
		current = entry.rhs
	}
	return KeyInputSet{}, true
}
