package demomodes

import "github.com/loamwood/vimengine/internal/vimcore"

// Normal is a minimal Normal-mode stand-in: motions (h/j/k/l, 0/$),
// x to delete a rune, i/a to enter Insert, v to enter Visual, : to enter
// Command, and the two-key "dd" delete-line sequence (the only multi-key
// command this demo bothers with, to exercise HandledNeedMoreInput).
type Normal struct {
	buf     *Buffer
	pending rune
}

// NewNormal builds a Normal mode operating on buf.
func NewNormal(buf *Buffer) *Normal { return &Normal{buf: buf} }

func (m *Normal) Kind() vimcore.ModeKind { return vimcore.ModeNormal }

func (m *Normal) CanProcess(k vimcore.KeyInput) bool {
	return k.Code == vimcore.KeyRune || k.Code == vimcore.KeyEscape
}

func (m *Normal) Process(k vimcore.KeyInput) vimcore.ProcessResult {
	if m.pending == 'd' {
		defer func() { m.pending = 0 }()
		if k.Code == vimcore.KeyRune && k.Rune == 'd' {
			m.buf.DeleteLine()
			return vimcore.Handled(vimcore.NoSwitch())
		}
		return vimcore.Handled(vimcore.NoSwitch())
	}

	if k.Code == vimcore.KeyEscape {
		return vimcore.NotHandled()
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
	case '0':
		m.buf.LineStart()
	case '$':
		m.buf.LineEnd()
	case 'x':
		m.buf.DeleteRune()
	case 'd':
		m.pending = 'd'
		return vimcore.HandledNeedMoreInput()
	case 'i':
		return vimcore.Handled(vimcore.SwitchMode(vimcore.ModeInsert))
	case 'a':
		m.buf.MoveRight()
		return vimcore.Handled(vimcore.SwitchMode(vimcore.ModeInsert))
	case 'v':
		return vimcore.Handled(vimcore.SwitchMode(vimcore.ModeVisualCharacter))
	case 'V':
		return vimcore.Handled(vimcore.SwitchMode(vimcore.ModeVisualLine))
	case ':':
		return vimcore.Handled(vimcore.SwitchMode(vimcore.ModeCommand))
	default:
		return vimcore.NotHandled()
	}
	return vimcore.Handled(vimcore.NoSwitch())
}

func (m *Normal) OnEnter(any) { m.pending = 0 }
func (m *Normal) OnLeave()    {}
func (m *Normal) OnClose()    {}

var _ vimcore.Mode = (*Normal)(nil)
