package vimconfig

import (
	"fmt"
	"strings"

	"github.com/loamwood/vimengine/internal/vimcore"
)

// ParseKeyNotation turns Vim-style key notation ("gg", "<C-x>", "dw",
// "<Esc>") into the KeyInputSet it denotes: a run of individual runes,
// with "<...>" bracketed tokens each contributing one KeyInput carrying
// modifiers and/or a named key. It is the inverse of the convention
// vimtextarea.keyToString renders bubbletea key events with, generalized
// from "build a lookup string for this one event" to "parse a whole
// mapping's lhs/rhs text".
func ParseKeyNotation(s string) (vimcore.KeyInputSet, error) {
	runes := []rune(s)
	var keys []vimcore.KeyInput

	for i := 0; i < len(runes); {
		if runes[i] == '<' {
			end := indexRune(runes[i+1:], '>')
			if end < 0 {
				keys = append(keys, vimcore.Key(runes[i]))
				i++
				continue
			}
			token := string(runes[i+1 : i+1+end])
			k, err := parseBracketToken(token)
			if err != nil {
				return vimcore.KeyInputSet{}, fmt.Errorf("vimconfig: %q: %w", s, err)
			}
			keys = append(keys, k)
			i += end + 2
			continue
		}
		keys = append(keys, vimcore.Key(runes[i]))
		i++
	}

	if len(keys) == 0 {
		return vimcore.KeyInputSet{}, fmt.Errorf("vimconfig: empty key notation")
	}
	return vimcore.KeysOf(keys), nil
}

func indexRune(runes []rune, target rune) int {
	for i, r := range runes {
		if r == target {
			return i
		}
	}
	return -1
}

// parseBracketToken parses the contents of one "<...>" group: zero or
// more single-letter modifier prefixes ("C-", "A-"/"M-", "S-") followed
// by a key name.
func parseBracketToken(token string) (vimcore.KeyInput, error) {
	parts := strings.Split(token, "-")
	name := parts[len(parts)-1]
	var mods vimcore.Mod

	for _, m := range parts[:len(parts)-1] {
		switch strings.ToUpper(m) {
		case "C":
			mods |= vimcore.ModCtrl
		case "A", "M":
			mods |= vimcore.ModAlt
		case "S":
			mods |= vimcore.ModShift
		default:
			return vimcore.KeyInput{}, fmt.Errorf("unknown modifier %q", m)
		}
	}

	switch strings.ToLower(name) {
	case "esc", "escape":
		return vimcore.KeyInput{Code: vimcore.KeyEscape, Mods: mods}, nil
	case "cr", "enter", "return":
		return vimcore.KeyInput{Code: vimcore.KeyEnter, Mods: mods}, nil
	case "bs", "backspace":
		return vimcore.KeyInput{Code: vimcore.KeyBackspace, Mods: mods}, nil
	case "del", "delete":
		return vimcore.KeyInput{Code: vimcore.KeyDelete, Mods: mods}, nil
	case "tab":
		return vimcore.KeyInput{Code: vimcore.KeyTab, Mods: mods}, nil
	case "up":
		return vimcore.KeyInput{Code: vimcore.KeyUp, Mods: mods}, nil
	case "down":
		return vimcore.KeyInput{Code: vimcore.KeyDown, Mods: mods}, nil
	case "left":
		return vimcore.KeyInput{Code: vimcore.KeyLeft, Mods: mods}, nil
	case "right":
		return vimcore.KeyInput{Code: vimcore.KeyRight, Mods: mods}, nil
	case "space":
		return vimcore.KeyWithMods(' ', mods), nil
	case "nop":
		return vimcore.KeyInput{Code: vimcore.KeyNop}, nil
	default:
		runes := []rune(name)
		if len(runes) == 1 {
			return vimcore.KeyWithMods(runes[0], mods), nil
		}
		return vimcore.NamedKey(strings.ToLower(name), mods), nil
	}
}
