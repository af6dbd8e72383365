// Package vimcore implements the mode-dispatch input engine: key-remap
// resolution (C1), mode registry (C2), and the input-processing engine
// (C3). It knows nothing about ex-commands, concrete modes, registers,
// marks, or undo — those are external collaborators wired in by a host.
package vimcore

import (
	"fmt"
	"strings"
)

// KeyCode identifies the class of a key press. Printable characters use
// KeyRune with Rune set; keys with no natural rune (function keys, arrows,
// the like) use KeyNamed with Name set.
type KeyCode int

const (
	KeyNop KeyCode = iota
	KeyRune
	KeyNamed
	KeyEscape
	KeyEnter
	KeyBackspace
	KeyDelete
	KeyTab
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
)

func (c KeyCode) String() string {
	switch c {
	case KeyNop:
		return "nop"
	case KeyRune:
		return "rune"
	case KeyNamed:
		return "named"
	case KeyEscape:
		return "escape"
	case KeyEnter:
		return "enter"
	case KeyBackspace:
		return "backspace"
	case KeyDelete:
		return "delete"
	case KeyTab:
		return "tab"
	case KeyUp:
		return "up"
	case KeyDown:
		return "down"
	case KeyLeft:
		return "left"
	case KeyRight:
		return "right"
	default:
		return "unknown"
	}
}

// Mod is a bitmask of key modifiers.
type Mod uint8

const (
	ModNone  Mod = 0
	ModCtrl  Mod = 1 << 0
	ModAlt   Mod = 1 << 1
	ModShift Mod = 1 << 2
)

func (m Mod) has(bit Mod) bool { return m&bit != 0 }

// KeyInput is a single, comparable keystroke: a key code plus whatever
// data that code carries (a rune, or a name for keys with none) and its
// active modifiers. Two KeyInput values are equal iff ==, so they can be
// used directly as map keys.
type KeyInput struct {
	Code KeyCode
	Rune rune
	Name string
	Mods Mod
}

// Key builds a plain, unmodified printable-character input.
func Key(r rune) KeyInput { return KeyInput{Code: KeyRune, Rune: r} }

// KeyWithMods builds a printable-character input with modifiers.
func KeyWithMods(r rune, mods Mod) KeyInput { return KeyInput{Code: KeyRune, Rune: r, Mods: mods} }

// NamedKey builds a non-printable input identified by name (e.g. "f1").
func NamedKey(name string, mods Mod) KeyInput {
	return KeyInput{Code: KeyNamed, Name: name, Mods: mods}
}

// Named constructs common named keys directly.
func Escape() KeyInput                { return KeyInput{Code: KeyEscape} }
func Enter() KeyInput                 { return KeyInput{Code: KeyEnter} }
func Backspace() KeyInput             { return KeyInput{Code: KeyBackspace} }
func Delete() KeyInput                { return KeyInput{Code: KeyDelete} }
func Tab() KeyInput                   { return KeyInput{Code: KeyTab} }
func Up() KeyInput                    { return KeyInput{Code: KeyUp} }
func Down() KeyInput                  { return KeyInput{Code: KeyDown} }
func Left() KeyInput                  { return KeyInput{Code: KeyLeft} }
func Right() KeyInput                 { return KeyInput{Code: KeyRight} }
func Nop() KeyInput                   { return KeyInput{Code: KeyNop} }

// String renders the key the way a remap table's lhs/rhs text would,
// e.g. "<C-x>", "<escape>", "a", "<A-S-left>".
func (k KeyInput) String() string {
	var name string
	switch k.Code {
	case KeyRune:
		name = string(k.Rune)
	case KeyNamed:
		name = k.Name
	default:
		name = k.Code.String()
	}
	if k.Mods == ModNone && k.Code == KeyRune {
		return name
	}
	var b strings.Builder
	b.WriteByte('<')
	if k.Mods.has(ModCtrl) {
		b.WriteString("C-")
	}
	if k.Mods.has(ModAlt) {
		b.WriteString("A-")
	}
	if k.Mods.has(ModShift) {
		b.WriteString("S-")
	}
	b.WriteString(name)
	b.WriteByte('>')
	return b.String()
}

// KeyInputSet is a non-empty, ordered sequence of keystrokes: the unit
// that key-remapping resolves against and expands into.
type KeyInputSet struct {
	keys []KeyInput
}

// NewKeyInputSet builds a set from one or more keys.
func NewKeyInputSet(first KeyInput, rest ...KeyInput) KeyInputSet {
	keys := make([]KeyInput, 0, 1+len(rest))
	keys = append(keys, first)
	keys = append(keys, rest...)
	return KeyInputSet{keys: keys}
}

// KeysOf builds a set from an existing, non-empty slice. Panics if empty —
// callers are expected to know a KeyInputSet is never empty by construction.
func KeysOf(keys []KeyInput) KeyInputSet {
	if len(keys) == 0 {
		panic("vimcore: KeysOf requires at least one key")
	}
	cp := make([]KeyInput, len(keys))
	copy(cp, keys)
	return KeyInputSet{keys: cp}
}

// First returns the first keystroke in the set.
func (s KeyInputSet) First() KeyInput { return s.keys[0] }

// Len reports how many keystrokes the set carries.
func (s KeyInputSet) Len() int { return len(s.keys) }

// Keys returns the set's keystrokes. The caller must not mutate the result.
func (s KeyInputSet) Keys() []KeyInput { return s.keys }

// Append returns a new set with k appended; the receiver is unchanged.
func (s KeyInputSet) Append(k KeyInput) KeyInputSet {
	keys := make([]KeyInput, len(s.keys)+1)
	copy(keys, s.keys)
	keys[len(s.keys)] = k
	return KeyInputSet{keys: keys}
}

// IsPrefixOf reports whether s's keystrokes are an exact, leading prefix
// of other's (used by key-map tables to detect "needs more input").
func (s KeyInputSet) IsPrefixOf(other KeyInputSet) bool {
	if len(s.keys) >= len(other.keys) {
		return false
	}
	for i, k := range s.keys {
		if other.keys[i] != k {
			return false
		}
	}
	return true
}

// Equal reports whether two sets hold identical keystrokes in order.
func (s KeyInputSet) Equal(other KeyInputSet) bool {
	if len(s.keys) != len(other.keys) {
		return false
	}
	for i, k := range s.keys {
		if other.keys[i] != k {
			return false
		}
	}
	return true
}

func (s KeyInputSet) String() string {
	var b strings.Builder
	for _, k := range s.keys {
		b.WriteString(k.String())
	}
	return b.String()
}

// key returns a stable string used as a map/set key for cycle detection
// during remap expansion. Not meant for display.
func (s KeyInputSet) key() string {
	parts := make([]string, len(s.keys))
	for i, k := range s.keys {
		parts[i] = fmt.Sprintf("%d:%d:%s:%d", k.Code, k.Rune, k.Name, k.Mods)
	}
	return strings.Join(parts, "\x00")
}

// KeyRemapMode selects which remap table a key sequence is resolved
// against; it is derived from the current mode, not identical to it
// (Insert and Replace both remap as Insert; all three visual sub-modes
// remap as Visual).
type KeyRemapMode int

const (
	RemapInsert KeyRemapMode = iota
	RemapCommand
	RemapNormal
	RemapVisual
	RemapSelect
	RemapOperatorPending
	RemapLanguage
)

func (m KeyRemapMode) String() string {
	switch m {
	case RemapInsert:
		return "insert"
	case RemapCommand:
		return "command"
	case RemapNormal:
		return "normal"
	case RemapVisual:
		return "visual"
	case RemapSelect:
		return "select"
	case RemapOperatorPending:
		return "operator-pending"
	case RemapLanguage:
		return "language"
	default:
		return "unknown"
	}
}
