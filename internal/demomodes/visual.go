package demomodes

import "github.com/loamwood/vimengine/internal/vimcore"

// Visual is a minimal stand-in for both visual-character and
// visual-line mode: it shares the same motions as Normal, plus "d" to
// delete the current line (standing in for "delete the selection") and
// Escape/"v"/"V" to leave back to Normal. kind records which of the two
// visual ModeKinds this instance represents, since the registry's
// previous-mode bookkeeping treats the two as a family.
type Visual struct {
	buf  *Buffer
	kind vimcore.ModeKind
}

// NewVisual builds a Visual mode of the given kind (ModeVisualCharacter
// or ModeVisualLine) operating on buf.
func NewVisual(buf *Buffer, kind vimcore.ModeKind) *Visual {
	return &Visual{buf: buf, kind: kind}
}

func (m *Visual) Kind() vimcore.ModeKind { return m.kind }

func (m *Visual) CanProcess(k vimcore.KeyInput) bool {
	return k.Code == vimcore.KeyRune || k.Code == vimcore.KeyEscape
}

func (m *Visual) Process(k vimcore.KeyInput) vimcore.ProcessResult {
	if k.Code == vimcore.KeyEscape {
		return vimcore.Handled(vimcore.SwitchMode(vimcore.ModeNormal))
	}
	if k.Code != vimcore.KeyRune {
		return vimcore.NotHandled()
	}
	switch k.Rune {
	case 'h':
		m.buf.MoveLeft()
	case 'l':
		m.buf.MoveRight()
	case 'j':
		m.buf.MoveDown()
	case 'k':
		m.buf.MoveUp()
	case 'd', 'x':
		m.buf.DeleteLine()
		return vimcore.Handled(vimcore.SwitchMode(vimcore.ModeNormal))
	case 'v':
		if m.kind == vimcore.ModeVisualCharacter {
			return vimcore.Handled(vimcore.SwitchMode(vimcore.ModeNormal))
		}
		return vimcore.Handled(vimcore.SwitchMode(vimcore.ModeVisualCharacter))
	case 'V':
		if m.kind == vimcore.ModeVisualLine {
			return vimcore.Handled(vimcore.SwitchMode(vimcore.ModeNormal))
		}
		return vimcore.Handled(vimcore.SwitchMode(vimcore.ModeVisualLine))
	default:
		return vimcore.NotHandled()
	}
	return vimcore.Handled(vimcore.NoSwitch())
}

func (m *Visual) OnEnter(any) {}
func (m *Visual) OnLeave()    {}
func (m *Visual) OnClose()    {}

var _ vimcore.Mode = (*Visual)(nil)
