package vimcore

import (
	"testing"

	"pgregory.net/rapid"
)

// genKeyInput draws a printable-rune KeyInput from a small alphabet, the
// same way the teacher's vimtextarea rapid tests draw small command
// alphabets to keep shrinking useful.
func genKeyInput(t *rapid.T) KeyInput {
	r := rapid.SampledFrom([]rune{'a', 'b', 'c', 'd', 'e'}).Draw(t, "rune")
	return Key(r)
}

func genKeyInputSet(t *rapid.T) KeyInputSet {
	keys := rapid.SliceOfN(rapid.Custom(genKeyInput), 1, 4).Draw(t, "keys")
	return KeysOf(keys)
}

// TestProperty_KeyInputSetAppendPreservesPrefix checks that appending a
// key to a set always yields a set the original is a prefix of — the
// exact relationship StaticKeyMapTable's prefix search depends on.
func TestProperty_KeyInputSetAppendPreservesPrefix(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		base := genKeyInputSet(t)
		next := genKeyInput(t)
		appended := base.Append(next)

		if !base.IsPrefixOf(appended) {
			t.Fatalf("base %v must be a prefix of base+k %v", base, appended)
		}
		if appended.Len() != base.Len()+1 {
			t.Fatalf("appended length = %d, want %d", appended.Len(), base.Len()+1)
		}
	})
}

// TestProperty_StaticKeyMapTableNeverHangs checks invariant: for any
// finite set of single-key-to-single-key mappings (possibly cyclic),
// resolving any key terminates in Mapped, Recursive, or NoMapping — the
// table never needs more than maxRemapExpansions steps to decide.
func TestProperty_StaticKeyMapTableNeverHangs(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		alphabet := []rune{'a', 'b', 'c', 'd'}
		table := NewStaticKeyMapTable()

		n := rapid.IntRange(0, len(alphabet)).Draw(t, "mappingCount")
		for i := 0; i < n; i++ {
			from := rapid.SampledFrom(alphabet).Draw(t, "from")
			to := rapid.SampledFrom(alphabet).Draw(t, "to")
			table.Add(RemapNormal, NewKeyInputSet(Key(from)), NewKeyInputSet(Key(to)), false)
		}

		probe := rapid.SampledFrom(alphabet).Draw(t, "probe")
		result := table.GetKeyMapping(NewKeyInputSet(Key(probe)), RemapNormal)

		switch result.Kind {
		case MapMapped, MapRecursive, MapNoMapping:
			// all acceptable terminal outcomes
		default:
			t.Fatalf("unexpected result kind %v for a single-key alphabet (no entry can need more input)", result.Kind)
		}
	})
}

// TestProperty_EngineEventOrderingHolds checks invariant 3 (spec §8):
// whatever a mode's Process returns, Process always emits exactly the
// start/[buffered|processed]/end triple, in that order, for one input.
func TestProperty_EngineEventOrderingHolds(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		kind := rapid.SampledFrom([]ProcessResultKind{
			ResultHandled, ResultHandledNeedMoreInput, ResultNotHandled, ResultError,
		}).Draw(t, "resultKind")

		normal := newFakeMode(ModeNormal)
		k := Key('x')
		normal.on(k, ProcessResult{Kind: kind})

		registry := NewModeRegistry()
		registry.Add(normal)
		sink := &RecordingEventSink{}
		e := New(Config{Registry: registry, Table: NewStaticKeyMapTable(), Sink: sink})
		_, _ = e.SwitchMode(ModeNormal, nil)
		sink.Events = nil

		e.Process(k)

		kinds := sink.Kinds()
		if len(kinds) != 3 || kinds[0] != "keyInputStart" || kinds[2] != "keyInputEnd" {
			t.Fatalf("unexpected event sequence %v for result kind %v", kinds, kind)
		}
		if kinds[1] != "keyInputProcessed" {
			t.Fatalf("middle event should be keyInputProcessed (no remap buffering possible with an empty table), got %s", kinds[1])
		}
	})
}
