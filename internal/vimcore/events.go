package vimcore

// EventSink receives the engine's output events, in the fixed order
// spec'd for a single call to Process: KeyInputStart, then zero or more
// mode-switch notifications, then exactly one of KeyInputProcessed or
// KeyInputBuffered, then KeyInputEnd.
//
// Naming and shape are carried over from the teacher's pubsub event
// types, but delivery here is synchronous and unbuffered: a sink's
// methods are called inline, on the goroutine driving Process, and must
// return before Process returns. A host that wants asynchronous fan-out
// (e.g. onto a pubsub.Broker) is expected to do so itself, downstream of
// an EventSink implementation that copies the event fields out first.
type EventSink interface {
	SwitchedMode(prev, cur ModeKind)
	KeyInputStart(k KeyInput)
	KeyInputBuffered(k KeyInput)
	KeyInputProcessed(k KeyInput, result ProcessResult)
	KeyInputEnd(k KeyInput)
	ErrorMessage(msg string)
	WarningMessage(msg string)
	StatusMessage(msg string)
	StatusMessageLong(lines []string)
	Closed()
}

// NoopEventSink discards every event. It is the default when a Config
// is built without a Sink.
type NoopEventSink struct{}

func (NoopEventSink) SwitchedMode(prev, cur ModeKind)               {}
func (NoopEventSink) KeyInputStart(k KeyInput)                      {}
func (NoopEventSink) KeyInputBuffered(k KeyInput)                   {}
func (NoopEventSink) KeyInputProcessed(k KeyInput, r ProcessResult) {}
func (NoopEventSink) KeyInputEnd(k KeyInput)                        {}
func (NoopEventSink) ErrorMessage(msg string)                       {}
func (NoopEventSink) WarningMessage(msg string)                     {}
func (NoopEventSink) StatusMessage(msg string)                      {}
func (NoopEventSink) StatusMessageLong(lines []string)              {}
func (NoopEventSink) Closed()                                       {}

// MultiSink fans a single event out to every sink it wraps, in order.
// Used to attach e.g. vimlog alongside a test's RecordingEventSink.
type MultiSink []EventSink

func (m MultiSink) SwitchedMode(prev, cur ModeKind) {
	for _, s := range m {
		s.SwitchedMode(prev, cur)
	}
}
func (m MultiSink) KeyInputStart(k KeyInput) {
	for _, s := range m {
		s.KeyInputStart(k)
	}
}
func (m MultiSink) KeyInputBuffered(k KeyInput) {
	for _, s := range m {
		s.KeyInputBuffered(k)
	}
}
func (m MultiSink) KeyInputProcessed(k KeyInput, r ProcessResult) {
	for _, s := range m {
		s.KeyInputProcessed(k, r)
	}
}
func (m MultiSink) KeyInputEnd(k KeyInput) {
	for _, s := range m {
		s.KeyInputEnd(k)
	}
}
func (m MultiSink) ErrorMessage(msg string) {
	for _, s := range m {
		s.ErrorMessage(msg)
	}
}
func (m MultiSink) WarningMessage(msg string) {
	for _, s := range m {
		s.WarningMessage(msg)
	}
}
func (m MultiSink) StatusMessage(msg string) {
	for _, s := range m {
		s.StatusMessage(msg)
	}
}
func (m MultiSink) StatusMessageLong(lines []string) {
	for _, s := range m {
		s.StatusMessageLong(lines)
	}
}
func (m MultiSink) Closed() {
	for _, s := range m {
		s.Closed()
	}
}

// EventRecord is one entry captured by a RecordingEventSink, tagged by
// which EventSink method produced it.
type EventRecord struct {
	Kind   string
	Key    KeyInput
	Prev   ModeKind
	Cur    ModeKind
	Result ProcessResult
	Text   string
	Lines  []string
}

// RecordingEventSink captures every event it receives, in order. It
// exists for tests asserting on the exact event sequence a scenario
// produces (spec §8's invariant 3: fixed event ordering per keystroke).
type RecordingEventSink struct {
	Events []EventRecord
}

func (r *RecordingEventSink) SwitchedMode(prev, cur ModeKind) {
	r.Events = append(r.Events, EventRecord{Kind: "switchedMode", Prev: prev, Cur: cur})
}
func (r *RecordingEventSink) KeyInputStart(k KeyInput) {
	r.Events = append(r.Events, EventRecord{Kind: "keyInputStart", Key: k})
}
func (r *RecordingEventSink) KeyInputBuffered(k KeyInput) {
	r.Events = append(r.Events, EventRecord{Kind: "keyInputBuffered", Key: k})
}
func (r *RecordingEventSink) KeyInputProcessed(k KeyInput, result ProcessResult) {
	r.Events = append(r.Events, EventRecord{Kind: "keyInputProcessed", Key: k, Result: result})
}
func (r *RecordingEventSink) KeyInputEnd(k KeyInput) {
	r.Events = append(r.Events, EventRecord{Kind: "keyInputEnd", Key: k})
}
func (r *RecordingEventSink) ErrorMessage(msg string) {
	r.Events = append(r.Events, EventRecord{Kind: "errorMessage", Text: msg})
}
func (r *RecordingEventSink) WarningMessage(msg string) {
	r.Events = append(r.Events, EventRecord{Kind: "warningMessage", Text: msg})
}
func (r *RecordingEventSink) StatusMessage(msg string) {
	r.Events = append(r.Events, EventRecord{Kind: "statusMessage", Text: msg})
}
func (r *RecordingEventSink) StatusMessageLong(lines []string) {
	r.Events = append(r.Events, EventRecord{Kind: "statusMessageLong", Lines: lines})
}
func (r *RecordingEventSink) Closed() {
	r.Events = append(r.Events, EventRecord{Kind: "closed"})
}

// Kinds returns the Kind of each captured event, in order — the common
// shape tests assert against.
func (r *RecordingEventSink) Kinds() []string {
	out := make([]string, len(r.Events))
	for i, e := range r.Events {
		out[i] = e.Kind
	}
	return out
}
