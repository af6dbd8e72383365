package vimcore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSettings struct {
	disable KeyInput
}

func (s fakeSettings) DisableCommand() KeyInput { return s.disable }

func newTestEngine(t *testing.T, modes ...*fakeMode) (*InputEngine, *RecordingEventSink) {
	t.Helper()
	registry := NewModeRegistry()
	for _, m := range modes {
		registry.Add(m)
	}
	sink := &RecordingEventSink{}
	e := New(Config{Registry: registry, Table: NewStaticKeyMapTable(), Sink: sink})
	return e, sink
}

func TestInputEngine_ProcessEventOrdering(t *testing.T) {
	normal := newFakeMode(ModeNormal)
	e, sink := newTestEngine(t, normal)
	_, err := e.SwitchMode(ModeNormal, nil)
	require.NoError(t, err)
	sink.Events = nil // drop the switch-to-Normal bootstrap noise

	normal.on(Key('x'), Handled(NoSwitch()))
	e.Process(Key('x'))

	assert.Equal(t, []string{"keyInputStart", "keyInputProcessed", "keyInputEnd"}, sink.Kinds())
}

func TestInputEngine_BufferedRemapNeedsMoreInput(t *testing.T) {
	normal := newFakeMode(ModeNormal)
	e, sink := newTestEngine(t, normal)
	_, _ = e.SwitchMode(ModeNormal, nil)
	sink.Events = nil

	table := NewStaticKeyMapTable()
	table.Add(RemapNormal, NewKeyInputSet(Key('g'), Key('g')), NewKeyInputSet(Key('G')), false)
	e.table = table
	normal.on(Key('G'), Handled(NoSwitch()))

	result := e.Process(Key('g'))
	assert.Equal(t, ResultHandled, result.Kind)
	assert.Equal(t, []string{"keyInputStart", "keyInputBuffered", "keyInputEnd"}, sink.Kinds())

	sink.Events = nil
	e.Process(Key('g'))
	assert.Equal(t, []string{"keyInputStart", "keyInputProcessed", "keyInputEnd"}, sink.Kinds())
}

func TestInputEngine_RecursiveMappingReportsError(t *testing.T) {
	normal := newFakeMode(ModeNormal)
	e, sink := newTestEngine(t, normal)
	_, _ = e.SwitchMode(ModeNormal, nil)
	sink.Events = nil

	table := NewStaticKeyMapTable()
	table.Add(RemapNormal, NewKeyInputSet(Key('a')), NewKeyInputSet(Key('b')), false)
	table.Add(RemapNormal, NewKeyInputSet(Key('b')), NewKeyInputSet(Key('a')), false)
	e.table = table

	result := e.Process(Key('a'))
	assert.Equal(t, ResultError, result.Kind)
	assert.Contains(t, sink.Kinds(), "errorMessage")
}

// TestInputEngine_OneTimeCommandBracket models scenario S1: Ctrl-O from
// Insert drops into Normal for exactly one handled command, then
// restores Insert automatically.
func TestInputEngine_OneTimeCommandBracket(t *testing.T) {
	normal := newFakeMode(ModeNormal)
	insert := newFakeMode(ModeInsert)
	e, sink := newTestEngine(t, normal, insert)
	_, _ = e.SwitchMode(ModeInsert, nil)

	insert.on(NamedKey("ctrl+o", 0), Handled(SwitchModeOneTimeCommand()))
	normal.on(Key('x'), Handled(NoSwitch()))

	e.Process(NamedKey("ctrl+o", 0))
	assert.Equal(t, ModeNormal, e.Registry().Current().Kind())

	e.Process(Key('x'))
	assert.Equal(t, ModeInsert, e.Registry().Current().Kind(), "one-time command must restore Insert after a single handled command")

	var switches []ModeKind
	for _, ev := range sink.Events {
		if ev.Kind == "switchedMode" {
			switches = append(switches, ev.Cur)
		}
	}
	assert.Contains(t, switches, ModeNormal)
	assert.Equal(t, ModeInsert, switches[len(switches)-1])
}

func TestInputEngine_OneTimeCommandBracketSurvivesEscape(t *testing.T) {
	normal := newFakeMode(ModeNormal)
	insert := newFakeMode(ModeInsert)
	e, _ := newTestEngine(t, normal, insert)
	_, _ = e.SwitchMode(ModeInsert, nil)

	insert.on(NamedKey("ctrl+o", 0), Handled(SwitchModeOneTimeCommand()))
	// Normal has no scripted response for Escape: Process falls back to
	// NotHandled, which must still close the bracket.
	e.Process(NamedKey("ctrl+o", 0))
	require.Equal(t, ModeNormal, e.Registry().Current().Kind())

	assert.True(t, e.CanProcess(Escape()), "Escape must be processable while a one-time command is pending")
	e.Process(Escape())
	assert.Equal(t, ModeInsert, e.Registry().Current().Kind())
}

func TestInputEngine_DisableCommandSwitchesToDisabled(t *testing.T) {
	normal := newFakeMode(ModeNormal)
	disabled := newFakeMode(ModeDisabled)
	registry := NewModeRegistry()
	registry.Add(normal)
	registry.Add(disabled)

	settings := fakeSettings{disable: NamedKey("ctrl+6", 0)}
	e := New(Config{Registry: registry, Table: NewStaticKeyMapTable(), Settings: settings})
	_, _ = e.SwitchMode(ModeNormal, nil)

	e.Process(settings.disable)
	assert.Equal(t, ModeDisabled, e.Registry().Current().Kind())
}

func TestInputEngine_CloseIsIdempotentAndTearsDown(t *testing.T) {
	normal := newFakeMode(ModeNormal)
	other := newFakeMode(ModeInsert)
	e, sink := newTestEngine(t, normal, other)
	_, _ = e.SwitchMode(ModeNormal, nil)

	require.NoError(t, e.Close())
	assert.Equal(t, 1, normal.leaves)
	assert.Equal(t, 1, normal.closes)
	assert.Equal(t, 1, other.closes)
	assert.Contains(t, sink.Kinds(), "closed")

	err := e.Close()
	assert.ErrorIs(t, err, ErrAlreadyClosed)
}

func TestInputEngine_SimulateProcessedSkipsDispatch(t *testing.T) {
	normal := newFakeMode(ModeNormal)
	e, sink := newTestEngine(t, normal)
	_, _ = e.SwitchMode(ModeNormal, nil)
	sink.Events = nil

	normal.on(Key('x'), ErrorResult()) // would fail if dispatched
	e.SimulateProcessed(Key('x'))

	assert.Equal(t, []string{"keyInputStart", "keyInputProcessed", "keyInputEnd"}, sink.Kinds())
	last := sink.Events[len(sink.Events)-1]
	_ = last
	processed := sink.Events[1]
	assert.Equal(t, ResultHandled, processed.Result.Kind)
}

func TestInputEngine_CanProcessAsCommandRespectsDirectInsert(t *testing.T) {
	base := newFakeMode(ModeInsert)
	di := &directInsertMode{fakeMode: base, direct: func(k KeyInput) bool { return k.Code == KeyRune }}
	registry := NewModeRegistry()
	registry.Add(di)

	e := New(Config{Registry: registry, Table: NewStaticKeyMapTable()})
	_, _ = e.SwitchMode(ModeInsert, nil)

	assert.True(t, e.CanProcess(Key('a')))
	assert.False(t, e.CanProcessAsCommand(Key('a')), "a direct-insert key is not a command")
}
