package excmd

import "strings"

// Options configures a Parser. Marks may be nil (see MarkLookup).
type Options struct {
	Marks MarkLookup
}

// Parser is C7: the top-level ex-command parser. It owns the C4 cursor
// and drives C5 (line range) then dispatches to one grammar function per
// command family, the way bql's Parser drives its Lexer and dispatches
// by token.
type Parser struct {
	cur   *cursor
	marks MarkLookup
}

// NewParser builds a Parser over a single line of ex-command text. The
// line must not include the leading ":" or a trailing newline.
func NewParser(line string, opts Options) *Parser {
	return &Parser{cur: newCursor(line), marks: opts.Marks}
}

// Parse is the convenience entry point: build a Parser and run it once.
func Parse(line string, opts Options) (*LineCommand, *ParseError) {
	return NewParser(line, opts).Parse()
}

// Parse runs the full grammar: [range] name[!] [args], reporting a
// ParseError tagged with the ErrorKind that best explains the failure.
func (p *Parser) Parse() (*LineCommand, *ParseError) {
	p.cur.skipBlanks()

	rng, err := p.parseLineRange()
	if err != nil {
		return nil, err
	}
	p.cur.skipBlanks()

	if p.cur.atEnd() {
		// A bare range ("42", "'a,.") with no command: the host
		// interprets this as "move to the last line of the range".
		return &LineCommand{Range: rng, Kind: CmdNone}, nil
	}

	if cmd, ok, serr := p.parseSubstituteRepeatForm(rng); ok {
		return cmd, serr
	}

	start := p.cur.pos
	name := p.cur.parseWord()
	if name == "" && !p.cur.atEnd() {
		// Not alphabetic: the single-glyph commands ("<", ">", "/", "?")
		// take one character as their whole name.
		name = string(p.cur.advance())
	}
	entry, ok := resolveCommandName(name)
	if !ok {
		return nil, newErr(ErrUnknownCommand, start, "unknown command %q", name)
	}

	bang := p.cur.parseBang()
	if bang && !bangAllowed(entry) {
		return nil, newErr(ErrNoBangAllowed, p.cur.pos-1, "%s does not accept !", entry.full)
	}
	if rng.Kind != RangeNone && !rangeAllowed(entry.kind) {
		return nil, newErr(ErrNoRangeAllowed, start, "%s does not accept a range", entry.full)
	}

	cmd := &LineCommand{Range: rng, Kind: entry.kind, Bang: bang}

	if perr := p.parseArgsFor(cmd, entry); perr != nil {
		return nil, perr
	}

	return cmd, nil
}

// parseSubstituteRepeatForm recognizes the symbolic repeat-last-substitute
// forms that aren't ordinary letter-led command names: "&" (repeat,
// reset flags) and "~" (repeat, reuse last search pattern). Returns
// ok=false if the cursor isn't at one of these; "<" and ">" are ordinary
// table commands (ShiftLeft/ShiftRight), not substitute-repeat forms.
func (p *Parser) parseSubstituteRepeatForm(rng LineRange) (*LineCommand, bool, *ParseError) {
	switch {
	case p.cur.peek() == '&':
		p.cur.advance()
		bang := p.cur.parseBang()
		flags, _ := p.parseSubstituteFlagsAndCount()
		return &LineCommand{Range: rng, Kind: CmdSubstituteRepeat, Bang: bang, Substitute: &SubstituteArgs{Flags: flags.Flags, Count: flags.Count}}, true, nil

	case p.cur.peek() == '~':
		p.cur.advance()
		flags, _ := p.parseSubstituteFlagsAndCount()
		flags.Flags.KeepFlags = true
		return &LineCommand{Range: rng, Kind: CmdSubstituteRepeatFlags, Substitute: &SubstituteArgs{Flags: flags.Flags, Count: flags.Count}}, true, nil
	}
	return nil, false, nil
}

// substituteRest bundles what's left to parse after a :substitute's
// pattern/replacement (or nothing, for the repeat forms): flags and an
// optional trailing count.
type substituteRest struct {
	Flags SubstituteFlags
	Count *uint32
}

func (p *Parser) parseSubstituteFlagsAndCount() (substituteRest, *ParseError) {
	p.cur.skipBlanks()
	var flags SubstituteFlags
loop:
	for {
		switch p.cur.peek() {
		case 'g':
			flags.Global = true
		case 'c':
			flags.Confirm = true
		case 'i':
			flags.IgnoreCase = true
		case 'I':
			flags.NoIgnoreCase = true
		case 'e':
			flags.SuppressErr = true
		case 'n':
			flags.ReportOnly = true
		case 'r':
			flags.UsePreviousPattern = true
		case 'p':
			flags.PrintLast = true
		case 'l':
			flags.PrintLastWithList = true
		case '#':
			flags.PrintLastWithNumber = true
		case '&':
			flags.KeepFlags = true
		default:
			break loop
		}
		p.cur.advance()
	}
	p.cur.skipBlanks()
	var count *uint32
	if n, ok := p.cur.parseNumber(); ok {
		count = &n
	}
	p.cur.skipBlanks()
	if !p.cur.atEnd() {
		return substituteRest{Flags: flags, Count: count}, newErr(ErrTrailingCharacters, p.cur.pos, "unexpected %q", p.cur.remaining())
	}
	return substituteRest{Flags: flags, Count: count}, nil
}

// parseArgsFor dispatches to the per-command grammar for entry.kind,
// mutating cmd with whatever that command's arguments parse into.
func (p *Parser) parseArgsFor(cmd *LineCommand, entry commandEntry) *ParseError {
	switch entry.kind {
	case CmdClose, CmdQuit, CmdQuitAll, CmdFold, CmdNoHLSearch, CmdRedo, CmdUndo, CmdMarks, CmdRegisters:
		return p.parseTrailingRegisterListOrNone(cmd, entry.kind)

	case CmdDelete, CmdYank:
		return p.parseRegisterAndCount(cmd)

	case CmdPut:
		p.cur.skipBlanks()
		if isRegisterRune(p.cur.peek()) {
			cmd.Register = p.cur.advance()
		}
		return p.expectEnd()

	case CmdJoin, CmdRetab, CmdTabNext, CmdTabPrevious, CmdTabFirst, CmdTabLast, CmdShiftLeft, CmdShiftRight:
		p.cur.skipBlanks()
		if n, ok := p.cur.parseNumber(); ok {
			cmd.Count = &n
		}
		return p.expectEnd()

	case CmdSource:
		p.cur.skipBlanks()
		cmd.RawArgs = p.cur.rest()
		return nil

	case CmdEdit, CmdSplit:
		p.parseFileOptions() // skips "++opt" tokens uninterpreted
		p.cur.skipBlanks()
		cmd.CommandOpt = p.parseCommandOption()
		p.cur.skipBlanks()
		cmd.RawArgs = p.cur.rest()
		return nil

	case CmdWriteQuit, CmdMake:
		p.cur.skipBlanks()
		cmd.RawArgs = p.cur.rest()
		return nil

	case CmdSet:
		return p.parseSet(cmd)

	case CmdSubstitute:
		return p.parseSubstitute(cmd, entry)

	case CmdMap, CmdUnmap, CmdMapClear:
		return p.parseMap(cmd, entry)

	default:
		p.cur.skipBlanks()
		cmd.RawArgs = p.cur.rest()
		return nil
	}
}

func (p *Parser) parseTrailingRegisterListOrNone(cmd *LineCommand, kind CommandKind) *ParseError {
	p.cur.skipBlanks()
	if p.cur.atEnd() {
		return nil
	}
	if kind != CmdMarks && kind != CmdRegisters {
		return newErr(ErrTrailingCharacters, p.cur.pos, "unexpected %q", p.cur.remaining())
	}
	for !p.cur.atEnd() {
		p.cur.skipBlanks()
		if p.cur.atEnd() {
			break
		}
		start := p.cur.pos
		mark := p.cur.advance()
		if kind == CmdMarks && p.marks != nil && !p.marks.HasMark(mark) {
			return noMarksMatchingErr(start, mark)
		}
		cmd.Args = append(cmd.Args, string(mark))
	}
	return nil
}

func (p *Parser) parseRegisterAndCount(cmd *LineCommand) *ParseError {
	p.cur.skipBlanks()
	if isRegisterRune(p.cur.peek()) && !isDigit(p.cur.peek()) {
		cmd.Register = p.cur.advance()
		p.cur.skipBlanks()
	}
	if n, ok := p.cur.parseNumber(); ok {
		cmd.Count = &n
	}
	return p.expectEnd()
}

func (p *Parser) expectEnd() *ParseError {
	p.cur.skipBlanks()
	if !p.cur.atEnd() {
		return newErr(ErrTrailingCharacters, p.cur.pos, "unexpected %q", p.cur.remaining())
	}
	return nil
}

// parseFileOptions skips every leading "++opt" token (from "++" up to
// the next blank) without recording it: the file-option grammar
// (encoding=, ff=, bin/nobin, ...) is not interpreted, and nothing of
// the skipped tokens reaches the AST.
func (p *Parser) parseFileOptions() {
	for {
		p.cur.skipBlanks()
		if p.cur.peek() != '+' || p.cur.peekAt(1) != '+' {
			return
		}
		p.cur.pos += 2
		for !p.cur.atEnd() && p.cur.peek() != ' ' && p.cur.peek() != '\t' {
			p.cur.advance()
		}
	}
}

func (p *Parser) parseSet(cmd *LineCommand) *ParseError {
	args := &SetArgs{}
	for {
		p.cur.skipBlanks()
		if p.cur.atEnd() {
			break
		}
		opt, err := p.parseOneSetOption()
		if err != nil {
			return err
		}
		args.Options = append(args.Options, opt)
	}
	cmd.Set = args
	return nil
}

func (p *Parser) parseOneSetOption() (SetOption, *ParseError) {
	start := p.cur.pos
	negate := false
	toggle := false
	switch {
	case strings.HasPrefix(p.cur.remaining(), "inv"):
		toggle = true
		p.cur.pos += 3
	case strings.HasPrefix(p.cur.remaining(), "no"):
		negate = true
		p.cur.pos += 2
	}
	name := p.cur.parseWord()
	if name == "" {
		return SetOption{}, newErr(ErrInvalidArgument, start, "expected option name")
	}
	opt := SetOption{Name: name, Negate: negate, Toggle: toggle}
	switch {
	case p.cur.consume('?'):
		opt.Query = true
	case p.cur.consume('!'):
		opt.Toggle = true
	case strings.HasPrefix(p.cur.remaining(), "+="):
		p.cur.pos += 2
		opt.Add = true
		opt.Value = p.parseSetValue()
		opt.HasValue = true
	case strings.HasPrefix(p.cur.remaining(), "^="):
		p.cur.pos += 2
		opt.Multiply = true
		opt.Value = p.parseSetValue()
		opt.HasValue = true
	case strings.HasPrefix(p.cur.remaining(), "-="):
		p.cur.pos += 2
		opt.Subtract = true
		opt.Value = p.parseSetValue()
		opt.HasValue = true
	case p.cur.consume('=') || p.cur.consume(':'):
		opt.Value = p.parseSetValue()
		opt.HasValue = true
	}
	return opt, nil
}

// parseSetValue consumes a :set option's value: a run of non-blank
// runes, same as Vim's unquoted option-value grammar.
func (p *Parser) parseSetValue() string {
	var b strings.Builder
	for !p.cur.atEnd() && p.cur.peek() != ' ' && p.cur.peek() != '\t' {
		b.WriteRune(p.cur.advance())
	}
	return b.String()
}

func (p *Parser) parseSubstitute(cmd *LineCommand, entry commandEntry) *ParseError {
	p.cur.skipBlanks()
	if p.cur.atEnd() {
		cmd.Substitute = &SubstituteArgs{}
		p.applyMagicForcing(cmd.Substitute, entry)
		return nil
	}
	delim := p.cur.peek()
	if isAlphaNumDelimiter(delim) {
		return newErr(ErrInvalidArgument, p.cur.pos, "invalid substitute delimiter %q", delim)
	}
	pattern, ok := p.cur.parsePattern(delim)
	if !ok {
		return newErr(ErrGenericParse, p.cur.pos, "unterminated substitute pattern")
	}
	replacement := p.parseDelimited(delim)
	rest, err := p.parseSubstituteFlagsAndCount()
	if err != nil {
		return err
	}
	cmd.Substitute = &SubstituteArgs{Pattern: pattern, Replacement: replacement, Flags: rest.Flags, Count: rest.Count}
	p.applyMagicForcing(cmd.Substitute, entry)
	return nil
}

// applyMagicForcing sets Magic/NoMagic on a parsed :substitute's flags
// when it was entered through "smagic"/"snomagic" rather than plain
// "substitute" — those names force 'magic' on or off regardless of the
// buffer's current setting.
func (p *Parser) applyMagicForcing(args *SubstituteArgs, entry commandEntry) {
	switch entry.full {
	case "smagic":
		args.Flags.Magic = true
	case "snomagic":
		args.Flags.NoMagic = true
	}
}

// parseDelimited consumes up to (and including, if present) the next
// unescaped occurrence of delim, returning the text in between. Used
// for a substitute's replacement field, which — unlike the pattern
// field parsePattern handles — has no nested-delimiter escaping rules
// of its own beyond "\<delim>" staying literal.
func (p *Parser) parseDelimited(delim rune) string {
	var b strings.Builder
	for !p.cur.atEnd() {
		r := p.cur.peek()
		if r == '\\' && p.cur.peekAt(1) == delim {
			b.WriteRune(delim)
			p.cur.pos += 2
			continue
		}
		if r == delim {
			p.cur.advance()
			break
		}
		b.WriteRune(p.cur.advance())
	}
	return b.String()
}

// parseCommandOption parses :edit/:split's trailing "+..." option: a
// bare "+" (start at the last line), "+42" (start at line 42), "+/pattern"
// (start at the first match of pattern), or "+{cmd}" (run an arbitrary
// ex command after loading, e.g. ":edit +set\ nowrap foo.txt"). Returns
// nil if the cursor isn't at a "+". A malformed "+{cmd}" body resets the
// cursor to just before the "+" and returns nil, leaving the text for
// RawArgs instead of erroring the whole command.
func (p *Parser) parseCommandOption() *CommandOption {
	if p.cur.peek() != '+' {
		return nil
	}
	start := p.cur.pos
	p.cur.advance()

	if p.cur.atEnd() || p.cur.peek() == ' ' || p.cur.peek() == '\t' {
		return &CommandOption{Kind: OptStartAtLastLine}
	}

	if n, ok := p.cur.parseNumber(); ok {
		return &CommandOption{Kind: OptStartAtLine, Line: n}
	}

	if p.cur.peek() == '/' {
		// Unlike a line specifier's /pattern/, the file-option form has
		// no closing delimiter: it runs to the next unescaped blank.
		p.cur.advance()
		var b strings.Builder
		for !p.cur.atEnd() && p.cur.peek() != ' ' && p.cur.peek() != '\t' {
			r := p.cur.advance()
			if r == '\\' && !p.cur.atEnd() {
				b.WriteRune(r)
				b.WriteRune(p.cur.advance())
				continue
			}
			b.WriteRune(r)
		}
		return &CommandOption{Kind: OptStartAtPattern, Pattern: b.String()}
	}

	var b strings.Builder
	for !p.cur.atEnd() && p.cur.peek() != ' ' && p.cur.peek() != '\t' {
		r := p.cur.advance()
		if r == '\\' && !p.cur.atEnd() && (p.cur.peek() == ' ' || p.cur.peek() == '\t') {
			b.WriteRune(p.cur.advance())
			continue
		}
		b.WriteRune(r)
	}
	sub := NewParser(b.String(), Options{Marks: p.marks})
	inner, perr := sub.Parse()
	if perr != nil {
		p.cur.pos = start
		return nil
	}
	return &CommandOption{Kind: OptExecuteLineCommand, Command: inner}
}

func (p *Parser) parseMap(cmd *LineCommand, entry commandEntry) *ParseError {
	args := &MapArgs{ModeLetter: entry.modeLetter, NoRemap: entry.noRemap}
	for {
		p.cur.skipBlanks()
		if strings.HasPrefix(p.cur.remaining(), "<buffer>") {
			args.Buffer = true
			p.cur.pos += len("<buffer>")
			continue
		}
		if strings.HasPrefix(p.cur.remaining(), "<silent>") {
			args.Silent = true
			p.cur.pos += len("<silent>")
			continue
		}
		break
	}
	p.cur.skipBlanks()
	if p.cur.atEnd() {
		cmd.Map = args
		return nil
	}

	lhs := p.parseMapToken()
	args.LHS = lhs
	p.cur.skipBlanks()
	args.RHS = p.cur.rest()
	cmd.Map = args
	return nil
}

// parseMapToken consumes one {lhs} token of a :map command: either a
// single bracketed notation like "<C-x>" or a run of non-blank runes.
func (p *Parser) parseMapToken() string {
	if p.cur.peek() == '<' {
		start := p.cur.pos
		for !p.cur.atEnd() && p.cur.peek() != '>' && p.cur.peek() != ' ' {
			p.cur.advance()
		}
		if p.cur.peek() == '>' {
			p.cur.advance()
			return string(p.cur.runes[start:p.cur.pos])
		}
		p.cur.pos = start
	}
	start := p.cur.pos
	for !p.cur.atEnd() && p.cur.peek() != ' ' && p.cur.peek() != '\t' {
		p.cur.advance()
	}
	return string(p.cur.runes[start:p.cur.pos])
}

func isRegisterRune(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') ||
		r == '"' || r == '%' || r == '#' || r == '*' || r == '+' || r == '_'
}

func isAlphaNumDelimiter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '\\' || r == '"' || r == '|'
}

// bangAllowed reports whether a command accepts a trailing "!". The
// :map/:unmap/:mapclear family only accepts it on the unprefixed forms
// (":map!", not ":nmap!") since the per-letter forms already pin a mode.
func bangAllowed(entry commandEntry) bool {
	switch entry.kind {
	case CmdClose, CmdEdit, CmdQuit, CmdQuitAll, CmdPut, CmdWriteQuit, CmdRetab, CmdSource, CmdSplit, CmdUndo:
		return true
	case CmdMap, CmdUnmap, CmdMapClear:
		return entry.modeLetter == ""
	default:
		return false
	}
}

// rangeAllowed reports whether a command accepts a leading line range.
func rangeAllowed(kind CommandKind) bool {
	switch kind {
	case CmdQuit, CmdQuitAll, CmdWriteQuit, CmdEdit, CmdSplit, CmdSet, CmdRegisters, CmdMarks,
		CmdTabNext, CmdTabPrevious, CmdTabFirst, CmdTabLast, CmdNoHLSearch,
		CmdRedo, CmdUndo, CmdMap, CmdUnmap, CmdMapClear:
		return false
	default:
		return true
	}
}
