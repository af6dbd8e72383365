package vimcore

import "github.com/google/uuid"

// GlobalSettings is the external collaborator holding host-wide options
// the engine must consult: currently only the single "disable the whole
// engine" key (Vim's CTRL-C-while-'insertmode' / <C-\\><C-N>-adjacent
// "disable keys" toggle is a host concern; this models the simpler,
// single-binding knob the core needs directly).
type GlobalSettings interface {
	DisableCommand() KeyInput
}

// TextBuffer is the external, host-owned buffer the engine keeps its
// mode in sync with. A host's text buffer may itself switch modes (e.g.
// in response to an external edit); OnModeSwitched lets the engine learn
// about that and converge, and SwitchMode lets the engine push its own
// transitions back out.
type TextBuffer interface {
	// OnModeSwitched registers fn to be called whenever the buffer's own
	// mode changes for a reason outside the engine's control. It returns
	// an unsubscribe function.
	OnModeSwitched(fn func(kind ModeKind, arg any)) (unsubscribe func())
	SwitchMode(kind ModeKind, arg any)
}

// JumpList is the external jump-list collaborator; the engine only ever
// clears it, on Close.
type JumpList interface {
	Clear()
}

// Config assembles everything New needs. Registry is required; a nil
// Table leaves every keystroke unmapped, and everything else is optional
// and defaults to a no-op.
type Config struct {
	Registry   *ModeRegistry
	Table      KeyMapTable
	Settings   GlobalSettings
	TextBuffer TextBuffer
	JumpList   JumpList
	Sink       EventSink
}

// InputEngine is C3: the per-buffer input-processing engine. It resolves
// each keystroke through the key-map table, dispatches the result to the
// current mode, and carries out whatever mode transition that dispatch
// asks for — including the one-time-command (Ctrl-O) bracket.
//
// An InputEngine is not safe for concurrent use; it is built for exactly
// the single-threaded, synchronous event loop described in SPEC_FULL.md
// §5.
type InputEngine struct {
	id       uuid.UUID
	registry *ModeRegistry
	table    KeyMapTable
	settings GlobalSettings
	buffer   TextBuffer
	jumps    JumpList
	sink     EventSink

	bufferedInput   *KeyInputSet
	inOneTimeCmd    *ModeKind
	closed          bool
	processingDepth int
	unsubscribe     func()
}

// New builds an engine from cfg. cfg.Registry must not be nil.
func New(cfg Config) *InputEngine {
	if cfg.Registry == nil {
		panic("vimcore: Config.Registry must not be nil")
	}
	sink := cfg.Sink
	if sink == nil {
		sink = NoopEventSink{}
	}

	e := &InputEngine{
		id:       uuid.New(),
		registry: cfg.Registry,
		table:    cfg.Table,
		settings: cfg.Settings,
		buffer:   cfg.TextBuffer,
		jumps:    cfg.JumpList,
		sink:     sink,
	}

	e.registry.OnSwitch = func(prev, cur Mode) {
		e.sink.SwitchedMode(prev.Kind(), cur.Kind())
	}

	if e.buffer != nil {
		e.unsubscribe = e.buffer.OnModeSwitched(func(kind ModeKind, arg any) {
			if e.closed || kind == e.registry.Current().Kind() {
				return
			}
			_, _ = e.registry.Switch(kind, arg)
		})
	}

	return e
}

// ID uniquely identifies this engine instance, for correlating its
// events in a shared log stream (see internal/vimlog).
func (e *InputEngine) ID() uuid.UUID { return e.id }

// Registry exposes the underlying mode registry, e.g. so a host can Add
// modes before the first SwitchMode call.
func (e *InputEngine) Registry() *ModeRegistry { return e.registry }

// IsClosed reports whether Close has already succeeded.
func (e *InputEngine) IsClosed() bool { return e.closed }

// ProcessingDepth reports how many nested Process calls are currently on
// the stack (1 inside a top-level Process, 0 outside any). A mode whose
// OnEnter/OnLeave/Process synchronously re-enters Process on the same
// engine will see this go above 1; the engine does not forbid it, but
// callers building recursion guards can use it to detect the case.
func (e *InputEngine) ProcessingDepth() int { return e.processingDepth }

// SwitchMode switches the current mode to kind, carrying arg, and
// propagates the change to the attached text buffer (if any).
func (e *InputEngine) SwitchMode(kind ModeKind, arg any) (Mode, error) {
	return e.doSwitch(kind, arg)
}

// SwitchPreviousMode switches back to whatever mode Previous reports. If
// no previous mode has been recorded yet, it is a no-op returning the
// current mode.
func (e *InputEngine) SwitchPreviousMode() (Mode, error) {
	prev, ok := e.registry.Previous()
	if !ok {
		return e.registry.Current(), nil
	}
	return e.doSwitch(prev.Kind(), nil)
}

func (e *InputEngine) doSwitch(kind ModeKind, arg any) (Mode, error) {
	m, err := e.registry.Switch(kind, arg)
	if err != nil {
		return nil, err
	}
	if e.buffer != nil {
		e.buffer.SwitchMode(kind, arg)
	}
	return m, nil
}

// remapMode derives which KeyRemapMode the current mode resolves
// against. Returns nil for modes that do not participate in remapping
// (Disabled, Uninitialized, SubstituteConfirm, ExternalEdit).
func (e *InputEngine) remapMode() *KeyRemapMode {
	cur := e.registry.Current()
	var m KeyRemapMode
	switch cur.Kind() {
	case ModeInsert, ModeReplace:
		m = RemapInsert
	case ModeCommand:
		m = RemapCommand
	case ModeVisualCharacter, ModeVisualLine, ModeVisualBlock:
		m = RemapVisual
	case ModeNormal:
		if p, ok := cur.(NormalModeRemapProvider); ok {
			m = p.CurrentRemapMode()
		} else {
			m = RemapNormal
		}
	default:
		return nil
	}
	return &m
}

func (e *InputEngine) resolve(k KeyInput) (KeyMappingResult, KeyInputSet) {
	var set KeyInputSet
	if e.bufferedInput != nil {
		set = e.bufferedInput.Append(k)
	} else {
		set = NewKeyInputSet(k)
	}
	return ResolveKeyMapping(e.table, set, e.remapMode()), set
}

// CanProcess reports whether k would be consumed in some way by Process
// right now — either dispatched to the current mode, or buffered
// awaiting a longer remap match.
func (e *InputEngine) CanProcess(k KeyInput) bool {
	if e.closed {
		return false
	}
	mr, _ := e.resolve(k)
	switch mr.Kind {
	case MapNeedsMoreInput, MapRecursive:
		return true
	case MapMapped:
		return e.canProcessOne(mr.Mapped.First(), true)
	default:
		return e.canProcessOne(k, true)
	}
}

// CanProcessAsCommand is CanProcess's stricter sibling: it excludes keys
// a DirectInsertMode would swallow as literal text rather than treat as
// a command, which callers use to decide e.g. whether a key should open
// a command-completion popup.
func (e *InputEngine) CanProcessAsCommand(k KeyInput) bool {
	if e.closed {
		return false
	}
	mr, _ := e.resolve(k)
	switch mr.Kind {
	case MapNeedsMoreInput, MapRecursive:
		return true
	case MapMapped:
		return e.canProcessOne(mr.Mapped.First(), false)
	default:
		return e.canProcessOne(k, false)
	}
}

func (e *InputEngine) canProcessOne(k KeyInput, allowDirectInsert bool) bool {
	if e.settings != nil && k == e.settings.DisableCommand() {
		return true
	}
	if k.Code == KeyNop {
		return true
	}
	if k.Code == KeyEscape && e.inOneTimeCmd != nil {
		return true
	}
	cur := e.registry.Current()
	if !cur.CanProcess(k) {
		return false
	}
	if allowDirectInsert {
		return true
	}
	if di, ok := cur.(DirectInsertMode); ok {
		return !di.IsDirectInsert(k)
	}
	return true
}

// Process is the engine's sole entry point for driving input: resolve
// the keystroke through the remap table, dispatch the result to the
// current mode, and carry out any resulting mode transition. On an open
// engine it always emits KeyInputStart then exactly one of
// KeyInputBuffered or KeyInputProcessed, then KeyInputEnd, in that order;
// on a closed engine it emits only an ErrorMessage and returns
// ErrorResult.
func (e *InputEngine) Process(k KeyInput) ProcessResult {
	if e.closed {
		e.sink.ErrorMessage("vimcore: process called on a closed engine")
		return ErrorResult()
	}

	e.processingDepth++
	defer func() { e.processingDepth-- }()

	e.sink.KeyInputStart(k)
	result := e.processInner(k)
	e.sink.KeyInputEnd(k)
	return result
}

func (e *InputEngine) processInner(k KeyInput) ProcessResult {
	mr, set := e.resolve(k)
	e.bufferedInput = nil

	switch mr.Kind {
	case MapNeedsMoreInput:
		e.bufferedInput = &set
		e.sink.KeyInputBuffered(k)
		return Handled(NoSwitch())

	case MapRecursive:
		e.sink.ErrorMessage(ErrRecursiveMapping.Error())
		result := ErrorResult()
		e.sink.KeyInputProcessed(k, result)
		return result

	case MapMapped:
		result := e.dispatchAll(mr.Mapped.Keys())
		e.sink.KeyInputProcessed(k, result)
		return result

	default: // MapNoMapping
		result := e.dispatchAll(set.Keys())
		e.sink.KeyInputProcessed(k, result)
		return result
	}
}

func (e *InputEngine) dispatchAll(keys []KeyInput) ProcessResult {
	result := NotHandled()
	for _, k := range keys {
		result = e.dispatchOne(k)
	}
	return result
}

func (e *InputEngine) dispatchOne(k KeyInput) ProcessResult {
	if e.settings != nil && k == e.settings.DisableCommand() && e.registry.Current().Kind() != ModeDisabled {
		_, _ = e.doSwitch(ModeDisabled, nil)
		return Handled(SwitchMode(ModeDisabled))
	}
	if k.Code == KeyNop {
		return Handled(NoSwitch())
	}

	result := e.registry.Current().Process(k)
	e.applyPostDispatch(result)
	return result
}

// applyPostDispatch carries out the mode transition (if any) a dispatch
// asked for, and manages the one-time-command bracket. NotHandled,
// Error, SwitchPrevious, and a Handled result with no switch outside a
// visual mode close the bracket and restore the mode it interrupted;
// SwitchTo/SwitchToWithArgument, HandledNeedMoreInput, and a no-switch
// result in a visual mode leave it open.
func (e *InputEngine) applyPostDispatch(result ProcessResult) {
	switch result.Kind {
	case ResultHandled:
		switch result.Switch.Kind {
		case SwitchNone:
			if !isVisual(e.registry.Current().Kind()) {
				e.leaveOneTimeCommand()
			}
		case SwitchTo:
			_, _ = e.doSwitch(result.Switch.Target, nil)
		case SwitchToWithArgument:
			_, _ = e.doSwitch(result.Switch.Target, result.Switch.Arg)
		case SwitchPrevious:
			e.leaveOneTimeCommandOr(e.switchPreviousIgnoringErr)
		case SwitchOneTimeCommand:
			kind := e.registry.Current().Kind()
			e.inOneTimeCmd = &kind
			_, _ = e.doSwitch(ModeNormal, nil)
		}
	case ResultHandledNeedMoreInput:
		// Pending multi-key command in the current mode; no transition.
	case ResultNotHandled, ResultError:
		e.leaveOneTimeCommand()
	}
}

func (e *InputEngine) switchPreviousIgnoringErr() {
	_, _ = e.SwitchPreviousMode()
}

// leaveOneTimeCommand restores the bracketed mode if one is pending.
func (e *InputEngine) leaveOneTimeCommand() {
	if e.inOneTimeCmd == nil {
		return
	}
	kind := *e.inOneTimeCmd
	e.inOneTimeCmd = nil
	_, _ = e.doSwitch(kind, nil)
}

// leaveOneTimeCommandOr restores the bracketed mode if one is pending,
// otherwise runs fallback (used for an explicit SwitchPrevious result,
// which without a bracket just means "go to the previous mode").
func (e *InputEngine) leaveOneTimeCommandOr(fallback func()) {
	if e.inOneTimeCmd != nil {
		e.leaveOneTimeCommand()
		return
	}
	fallback()
}

// SimulateProcessed declares that k was already handled by something
// outside the engine (a host intercepting a key before it reaches
// Process). It clears any buffered remap input and emits the normal
// start/processed/end event triple, but performs no resolution or
// dispatch.
func (e *InputEngine) SimulateProcessed(k KeyInput) {
	if e.closed {
		return
	}
	e.bufferedInput = nil
	e.sink.KeyInputStart(k)
	e.sink.KeyInputProcessed(k, Handled(NoSwitch()))
	e.sink.KeyInputEnd(k)
}

// Close tears the engine down: OnLeave on the current mode, OnClose on
// every registered mode, detaches from the text buffer, clears the jump
// list, and emits Closed. Calling Close on an already-closed engine
// returns ErrAlreadyClosed and otherwise does nothing.
func (e *InputEngine) Close() error {
	if e.closed {
		return ErrAlreadyClosed
	}
	e.closed = true

	e.registry.Current().OnLeave()
	for _, m := range e.registry.All() {
		m.OnClose()
	}
	if e.unsubscribe != nil {
		e.unsubscribe()
	}
	if e.jumps != nil {
		e.jumps.Clear()
	}
	e.sink.Closed()
	return nil
}
