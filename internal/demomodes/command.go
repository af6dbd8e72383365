package demomodes

import (
	"github.com/loamwood/vimengine/internal/excmd"
	"github.com/loamwood/vimengine/internal/vimcore"
)

// Command is a minimal Command-line-mode stand-in: it accumulates
// typed text after the leading ":", and on Enter hands it to
// excmd.Parse and applies the handful of command kinds this demo
// harness knows how to act on. It exists to show the engine and the
// ex-command parser working together; the actual command interpreter is
// a host concern the engine (and this harness) never owns.
type Command struct {
	buf    *Buffer
	text   []rune
	Last   *excmd.LineCommand
	LastErr *excmd.ParseError
	quit   bool
}

// NewCommand builds a Command mode operating on buf.
func NewCommand(buf *Buffer) *Command { return &Command{buf: buf} }

func (m *Command) Kind() vimcore.ModeKind { return vimcore.ModeCommand }

func (m *Command) CanProcess(vimcore.KeyInput) bool { return true }

// Quit reports whether the last executed command asked to quit
// (":q", ":wq", or a bang-qualified variant).
func (m *Command) Quit() bool { return m.quit }

// Text returns the command line as typed so far, for display.
func (m *Command) Text() string { return ":" + string(m.text) }

func (m *Command) Process(k vimcore.KeyInput) vimcore.ProcessResult {
	switch k.Code {
	case vimcore.KeyEscape:
		m.text = nil
		return vimcore.Handled(vimcore.SwitchMode(vimcore.ModeNormal))
	case vimcore.KeyEnter:
		m.execute(string(m.text))
		m.text = nil
		return vimcore.Handled(vimcore.SwitchMode(vimcore.ModeNormal))
	case vimcore.KeyBackspace:
		if len(m.text) > 0 {
			m.text = m.text[:len(m.text)-1]
		} else {
			return vimcore.Handled(vimcore.SwitchMode(vimcore.ModeNormal))
		}
	case vimcore.KeyRune:
		m.text = append(m.text, k.Rune)
	default:
		return vimcore.NotHandled()
	}
	return vimcore.Handled(vimcore.NoSwitch())
}

func (m *Command) execute(line string) {
	cmd, err := excmd.Parse(line, excmd.Options{})
	m.Last, m.LastErr = cmd, err
	if err != nil || cmd == nil {
		return
	}
	switch cmd.Kind {
	case excmd.CmdQuit, excmd.CmdWriteQuit:
		m.quit = true
	case excmd.CmdDelete:
		m.buf.DeleteLine()
	case excmd.CmdPut:
		// Demo-only: a bare :put with no register inserts a blank line.
		m.buf.SplitLine()
	default:
		// Every other recognized command (set, map, registers, ...) is
		// parsed successfully but is a host concern this harness doesn't
		// implement; Last/LastErr still let the repl show what was parsed.
	}
}

func (m *Command) OnEnter(any) { m.text = nil; m.quit = false }
func (m *Command) OnLeave()    {}
func (m *Command) OnClose()    {}

var _ vimcore.Mode = (*Command)(nil)
