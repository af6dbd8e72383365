package demomodes

import "github.com/loamwood/vimengine/internal/vimcore"

// Insert is a minimal Insert-mode stand-in: any printable rune, Enter,
// Backspace, and Tab go straight into the buffer; Escape returns to
// Normal. It implements DirectInsertMode so the engine skips the "is
// this a command" question entirely for ordinary typing.
type Insert struct {
	buf *Buffer
}

// NewInsert builds an Insert mode operating on buf.
func NewInsert(buf *Buffer) *Insert { return &Insert{buf: buf} }

func (m *Insert) Kind() vimcore.ModeKind { return vimcore.ModeInsert }

func (m *Insert) CanProcess(vimcore.KeyInput) bool { return true }

func (m *Insert) IsDirectInsert(k vimcore.KeyInput) bool {
	switch k.Code {
	case vimcore.KeyRune, vimcore.KeyEnter, vimcore.KeyBackspace, vimcore.KeyTab:
		return true
	default:
		return false
	}
}

func (m *Insert) Process(k vimcore.KeyInput) vimcore.ProcessResult {
	switch k.Code {
	case vimcore.KeyEscape:
		m.buf.MoveLeft()
		return vimcore.Handled(vimcore.SwitchMode(vimcore.ModeNormal))
	case vimcore.KeyRune:
		m.buf.InsertRune(k.Rune)
	case vimcore.KeyTab:
		m.buf.InsertRune('\t')
	case vimcore.KeyEnter:
		m.buf.SplitLine()
	case vimcore.KeyBackspace:
		m.buf.Backspace()
	default:
		return vimcore.NotHandled()
	}
	return vimcore.Handled(vimcore.NoSwitch())
}

func (m *Insert) OnEnter(any) {}
func (m *Insert) OnLeave()    {}
func (m *Insert) OnClose()    {}

var (
	_ vimcore.Mode            = (*Insert)(nil)
	_ vimcore.DirectInsertMode = (*Insert)(nil)
)
