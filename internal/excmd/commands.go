package excmd

// commandEntry is one row of C6's canonical command table: a full name,
// its shortest legal abbreviation, and the CommandKind it resolves to.
// A typed token matches when it is at least as long as abbrev and is a
// prefix of full — Vim's standard "minimal unambiguous abbreviation"
// rule. modeLetter/noRemap apply only to the :map/:unmap/:mapclear
// family, where the full command name itself encodes which remap mode
// and noremap-ness a mapping command targets.
type commandEntry struct {
	full       string
	abbrev     string
	kind       CommandKind
	modeLetter string
	noRemap    bool
}

// commandTable is ordered roughly by family. Ordering does not affect
// resolution (each entry's
// abbrev is unambiguous against every other full name in the table).
var commandTable = []commandEntry{
	{full: "close", abbrev: "clo", kind: CmdClose},
	{full: "delete", abbrev: "d", kind: CmdDelete},
	{full: "edit", abbrev: "e", kind: CmdEdit},
	{full: "quit", abbrev: "q", kind: CmdQuit},
	{full: "qall", abbrev: "qa", kind: CmdQuitAll},
	{full: "quitall", abbrev: "quita", kind: CmdQuitAll},
	{full: "wq", abbrev: "wq", kind: CmdWriteQuit},
	{full: "xit", abbrev: "x", kind: CmdWriteQuit},
	{full: "exit", abbrev: "exi", kind: CmdWriteQuit},
	{full: "yank", abbrev: "y", kind: CmdYank},
	{full: "put", abbrev: "pu", kind: CmdPut},
	{full: "join", abbrev: "j", kind: CmdJoin},
	{full: "make", abbrev: "mak", kind: CmdMake},
	{full: "fold", abbrev: "fo", kind: CmdFold},
	{full: "retab", abbrev: "ret", kind: CmdRetab},
	{full: "source", abbrev: "so", kind: CmdSource},
	{full: "split", abbrev: "sp", kind: CmdSplit},
	{full: "set", abbrev: "se", kind: CmdSet},
	{full: "registers", abbrev: "reg", kind: CmdRegisters},
	{full: "marks", abbrev: "marks", kind: CmdMarks},
	{full: "tabnext", abbrev: "tabn", kind: CmdTabNext},
	{full: "tabprevious", abbrev: "tabp", kind: CmdTabPrevious},
	{full: "tabfirst", abbrev: "tabfir", kind: CmdTabFirst},
	{full: "tablast", abbrev: "tabl", kind: CmdTabLast},
	{full: "substitute", abbrev: "s", kind: CmdSubstitute},
	{full: "smagic", abbrev: "sm", kind: CmdSubstitute},
	{full: "snomagic", abbrev: "sno", kind: CmdSubstitute},
	{full: "nohlsearch", abbrev: "noh", kind: CmdNoHLSearch},
	{full: "redo", abbrev: "red", kind: CmdRedo},
	{full: "undo", abbrev: "u", kind: CmdUndo},

	// Single-glyph commands, resolved via the Parse() step-4 fallback
	// that takes one non-alphabetic character as the command name when
	// parseWord consumes nothing.
	{full: "<", abbrev: "<", kind: CmdShiftLeft},
	{full: ">", abbrev: ">", kind: CmdShiftRight},
	{full: "/", abbrev: "/", kind: CmdSearchForward},
	{full: "?", abbrev: "?", kind: CmdSearchBackward},

	// Mapping family. Unprefixed forms target normal+visual+op-pending,
	// same as stock Vim; the per-letter forms target one mode.
	{full: "map", abbrev: "map", kind: CmdMap},
	{full: "noremap", abbrev: "no", kind: CmdMap, noRemap: true},
	{full: "nmap", abbrev: "nm", kind: CmdMap, modeLetter: "n"},
	{full: "nnoremap", abbrev: "nn", kind: CmdMap, modeLetter: "n", noRemap: true},
	{full: "vmap", abbrev: "vm", kind: CmdMap, modeLetter: "v"},
	{full: "vnoremap", abbrev: "vn", kind: CmdMap, modeLetter: "v", noRemap: true},
	{full: "imap", abbrev: "im", kind: CmdMap, modeLetter: "i"},
	{full: "inoremap", abbrev: "ino", kind: CmdMap, modeLetter: "i", noRemap: true},
	{full: "cmap", abbrev: "cm", kind: CmdMap, modeLetter: "c"},
	{full: "cnoremap", abbrev: "cno", kind: CmdMap, modeLetter: "c", noRemap: true},
	{full: "omap", abbrev: "om", kind: CmdMap, modeLetter: "o"},
	{full: "onoremap", abbrev: "ono", kind: CmdMap, modeLetter: "o", noRemap: true},
	{full: "smap", abbrev: "smap", kind: CmdMap, modeLetter: "s"},
	{full: "snoremap", abbrev: "snor", kind: CmdMap, modeLetter: "s", noRemap: true},

	{full: "unmap", abbrev: "unm", kind: CmdUnmap},
	{full: "nunmap", abbrev: "nun", kind: CmdUnmap, modeLetter: "n"},
	{full: "vunmap", abbrev: "vu", kind: CmdUnmap, modeLetter: "v"},
	{full: "iunmap", abbrev: "iu", kind: CmdUnmap, modeLetter: "i"},
	{full: "cunmap", abbrev: "cu", kind: CmdUnmap, modeLetter: "c"},
	{full: "ounmap", abbrev: "ou", kind: CmdUnmap, modeLetter: "o"},
	{full: "sunmap", abbrev: "sunm", kind: CmdUnmap, modeLetter: "s"},

	{full: "mapclear", abbrev: "mapc", kind: CmdMapClear},
	{full: "nmapclear", abbrev: "nmapc", kind: CmdMapClear, modeLetter: "n"},
	{full: "vmapclear", abbrev: "vmapc", kind: CmdMapClear, modeLetter: "v"},
	{full: "imapclear", abbrev: "imapc", kind: CmdMapClear, modeLetter: "i"},
	{full: "cmapclear", abbrev: "cmapc", kind: CmdMapClear, modeLetter: "c"},
	{full: "omapclear", abbrev: "omapc", kind: CmdMapClear, modeLetter: "o"},
	{full: "smapclear", abbrev: "smapc", kind: CmdMapClear, modeLetter: "s"},
}

// resolveCommandName is C6: expand a typed command-name token (without
// its trailing "!"/range/arguments) to the table entry it names.
// Returns false if no entry's abbreviation is satisfied. Longer,
// more-specific full names are checked first so e.g. "noremap" doesn't
// get shadowed by a hypothetical shorter unrelated entry.
func resolveCommandName(token string) (commandEntry, bool) {
	if token == "" {
		return commandEntry{}, false
	}
	var best commandEntry
	found := false
	for _, e := range commandTable {
		if len(token) < len(e.abbrev) || len(token) > len(e.full) {
			continue
		}
		if e.full[:len(token)] != token {
			continue
		}
		if !found || len(e.full) > len(best.full) {
			best = e
			found = true
		}
	}
	return best, found
}
