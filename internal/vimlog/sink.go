package vimlog

import "github.com/loamwood/vimengine/internal/vimcore"

// EngineSink adapts the global logger into a vimcore.EventSink, so an
// InputEngine's dispatch events show up in the log stream alongside
// everything else. It never errors and never blocks the engine: Process
// calls it inline (per vimcore.EventSink's synchronous contract), and
// every method here is just a formatted log call at a fixed level.
type EngineSink struct {
	// Name tags every line from this sink, for telling multiple engines
	// apart in one shared log file (e.g. several buffers' engines).
	Name string
}

func (s EngineSink) SwitchedMode(prev, cur vimcore.ModeKind) {
	Info(CatEngine, "mode switch", "engine", s.Name, "from", prev, "to", cur)
}

func (s EngineSink) KeyInputStart(k vimcore.KeyInput) {
	Debug(CatEngine, "key start", "engine", s.Name, "key", k)
}

func (s EngineSink) KeyInputBuffered(k vimcore.KeyInput) {
	Debug(CatRemap, "key buffered awaiting remap", "engine", s.Name, "key", k)
}

func (s EngineSink) KeyInputProcessed(k vimcore.KeyInput, result vimcore.ProcessResult) {
	Debug(CatEngine, "key processed", "engine", s.Name, "key", k, "result", result.Kind)
}

func (s EngineSink) KeyInputEnd(k vimcore.KeyInput) {
	Debug(CatEngine, "key end", "engine", s.Name, "key", k)
}

func (s EngineSink) ErrorMessage(msg string) {
	Error(CatEngine, msg, "engine", s.Name)
}

func (s EngineSink) WarningMessage(msg string) {
	Warn(CatEngine, msg, "engine", s.Name)
}

func (s EngineSink) StatusMessage(msg string) {
	Info(CatEngine, msg, "engine", s.Name)
}

func (s EngineSink) StatusMessageLong(lines []string) {
	for _, line := range lines {
		Info(CatEngine, line, "engine", s.Name)
	}
}

func (s EngineSink) Closed() {
	Info(CatEngine, "engine closed", "engine", s.Name)
}

var _ vimcore.EventSink = EngineSink{}
