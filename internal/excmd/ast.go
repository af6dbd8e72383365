package excmd

// Node is the marker interface every AST node satisfies. It carries no
// methods of its own; it exists so parser code can express "any AST
// node" without resorting to interface{}.
type Node interface {
	node()
}

// LineSpecifierKind tags which form of address a LineSpecifier holds.
type LineSpecifierKind int

const (
	SpecCurrentLine LineSpecifierKind = iota
	SpecLastLine                      // $
	SpecLineNumber                     // 42
	SpecMark                           // 'a
	SpecPatternForward                 // /pat/
	SpecPatternBackward                // ?pat?
)

func (k LineSpecifierKind) String() string {
	switch k {
	case SpecCurrentLine:
		return "current"
	case SpecLastLine:
		return "last"
	case SpecLineNumber:
		return "number"
	case SpecMark:
		return "mark"
	case SpecPatternForward:
		return "pattern-forward"
	case SpecPatternBackward:
		return "pattern-backward"
	default:
		return "unknown"
	}
}

// LineSpecifier is a single line address: ".", "$", a bare number, a
// mark reference, a search pattern, or any of those with a trailing
// "+N"/"-N" adjustment (including a bare "+3"/"-3" with no base, which
// is an adjustment relative to the current line — SpecCurrentLine with
// HasAdjustment set).
type LineSpecifier struct {
	Kind          LineSpecifierKind
	Number        uint32 // valid when Kind == SpecLineNumber
	Mark          rune   // valid when Kind == SpecMark
	Pattern       string // valid when Kind == SpecPatternForward/SpecPatternBackward
	Adjustment    int64
	HasAdjustment bool
}

func (LineSpecifier) node() {}

// LineRangeKind tags which shape of range a LineRange holds.
type LineRangeKind int

const (
	RangeNone  LineRangeKind = iota // no range given; command applies to its own default
	RangeAll                        // "%" — shorthand for 1,$
	RangeLines                      // one or two LineSpecifiers
)

// LineRange is the address prefix of an ex command: nothing, "%", a
// single specifier (applies to one line), or two separated by "," or
// ";". Semicolon records that the separator was ";" (End then counts
// from Start rather than from the current line); parsing only records
// the flag and resolves no line numbers.
type LineRange struct {
	Kind      LineRangeKind
	Start     LineSpecifier
	End       LineSpecifier
	HasEnd    bool
	Semicolon bool
}

func (LineRange) node() {}

// CommandKind identifies which ex command a LineCommand holds. Grouped
// by family in declaration order purely for readability; values are not
// meant to be serialized.
type CommandKind int

const (
	CmdNone CommandKind = iota
	CmdClose
	CmdDelete
	CmdEdit
	CmdQuit
	CmdQuitAll
	CmdWriteQuit
	CmdYank
	CmdPut
	CmdJoin
	CmdMake
	CmdFold
	CmdRetab
	CmdSource
	CmdSplit
	CmdSet
	CmdRegisters
	CmdMarks
	CmdTabNext
	CmdTabPrevious
	CmdTabFirst
	CmdTabLast
	CmdSubstitute
	CmdSubstituteRepeat      // "&" — repeat last substitute, flags reset
	CmdSubstituteRepeatFlags // "~" — repeat with the last search pattern, KeepFlags set
	CmdNoHLSearch
	CmdRedo
	CmdUndo
	CmdMap
	CmdUnmap
	CmdMapClear
	CmdShiftLeft     // "<" — shift range left
	CmdShiftRight    // ">" — shift range right
	CmdSearchForward  // "/" as a command name (range already consumed the address form)
	CmdSearchBackward // "?" as a command name
)

func (k CommandKind) String() string {
	names := map[CommandKind]string{
		CmdNone: "none", CmdClose: "close", CmdDelete: "delete", CmdEdit: "edit",
		CmdQuit: "quit", CmdQuitAll: "qall", CmdWriteQuit: "wq", CmdYank: "yank", CmdPut: "put",
		CmdJoin: "join", CmdMake: "make", CmdFold: "fold", CmdRetab: "retab",
		CmdSource: "source", CmdSplit: "split", CmdSet: "set", CmdRegisters: "registers",
		CmdMarks: "marks", CmdTabNext: "tabnext", CmdTabPrevious: "tabprevious",
		CmdTabFirst: "tabfirst", CmdTabLast: "tablast", CmdSubstitute: "substitute",
		CmdSubstituteRepeat: "substitute-repeat", CmdSubstituteRepeatFlags: "substitute-repeat-flags",
		CmdNoHLSearch: "nohlsearch", CmdRedo: "redo", CmdUndo: "undo",
		CmdMap: "map", CmdUnmap: "unmap", CmdMapClear: "mapclear",
		CmdShiftLeft: "shift-left", CmdShiftRight: "shift-right",
		CmdSearchForward: "search-forward", CmdSearchBackward: "search-backward",
	}
	if n, ok := names[k]; ok {
		return n
	}
	return "unknown"
}

// SubstituteFlags holds the single-letter flags trailing a :substitute
// (or its repeat forms): g (all matches per line), c (confirm each), i/I
// (force case-insensitive/sensitive), e (ignore no-match error), n
// (report-only, no substitution), r (reuse the previous search pattern
// rather than an empty one), p/l/# (print the last changed line, with
// a list-style or numbered rendering), & (keep flags from the previous
// substitute; accepted in any flag list, and always set by the "~"
// form). Magic/NoMagic are set only by the smagic/snomagic command
// names, which force magic pattern matching on or off respectively.
type SubstituteFlags struct {
	Global              bool
	Confirm             bool
	IgnoreCase          bool
	NoIgnoreCase        bool
	SuppressErr         bool
	ReportOnly          bool
	KeepFlags           bool
	UsePreviousPattern  bool // r
	PrintLast           bool // p
	PrintLastWithList   bool // l
	PrintLastWithNumber bool // #
	Magic               bool // smagic
	NoMagic             bool // snomagic
}

// MapArgs holds the parsed arguments of a :map/:noremap-family command.
type MapArgs struct {
	ModeLetter string // "", "n", "v", "i", "c", "o", ... selecting the remap mode; "" = unprefixed :map
	NoRemap    bool
	Buffer     bool // <buffer> special argument
	Silent     bool // <silent> special argument
	LHS        string
	RHS        string
}

// LineCommand is the top-level AST node C7 produces: a range, the
// resolved command, its bang/count/register modifiers, and whatever
// command-specific payload applies.
type LineCommand struct {
	Range    LineRange
	Kind     CommandKind
	Bang     bool
	Count    *uint32
	Register rune // 0 if absent
	Args     []string
	RawArgs  string // unparsed trailing text, for commands that consume it verbatim (:make, :source, etc.)

	Substitute *SubstituteArgs
	Map        *MapArgs
	Set        *SetArgs
	CommandOpt *CommandOption // the trailing "+..." option :edit/:split accept
}

func (LineCommand) node() {}

// CommandOptionKind tags which form of the trailing "+..." option a
// CommandOption holds.
type CommandOptionKind int

const (
	OptStartAtLastLine    CommandOptionKind = iota // bare "+"
	OptStartAtLine                                 // "+42"
	OptStartAtPattern                              // "+/pattern"
	OptExecuteLineCommand                          // "+{cmd}"
)

// CommandOption is the parsed form of the "+" option some file commands
// (:edit, :split) accept to position the cursor or run a command after
// opening.
type CommandOption struct {
	Kind    CommandOptionKind
	Line    uint32
	Pattern string
	Command *LineCommand
}

// SubstituteArgs holds the parsed body of a :substitute command.
type SubstituteArgs struct {
	Pattern     string
	Replacement string
	Flags       SubstituteFlags
	Count       *uint32
}

// SetOption is one "name" / "name=value" / "noname" / "invname" /
// "name!" / "name?" / "name+=value" / "name^=value" / "name-=value"
// option setting within a :set command. Negate is the "no" prefix
// (ToggleSetting); Toggle covers both the "inv" prefix and a trailing
// "!" (InvertSetting — the two spellings of the same operation).
type SetOption struct {
	Name     string
	Value    string
	HasValue bool
	Negate   bool // "no<name>"
	Toggle   bool // "inv<name>" or "<name>!"
	Query    bool // "<name>?"
	Add      bool // "<name>+=<value>"
	Multiply bool // "<name>^=<value>"
	Subtract bool // "<name>-=<value>"
}

// SetArgs holds the parsed body of a :set command: one or more options.
type SetArgs struct {
	Options []SetOption
}
