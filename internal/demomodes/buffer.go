// Package demomodes implements a minimal harness around vimcore: a
// line-oriented text buffer and just enough Normal/Insert/Visual/Command
// Mode implementations to drive an InputEngine end to end. None of this
// is part of the engine itself — it exists so cmd/vimengine's repl has
// something concrete to show keystrokes being processed against.
package demomodes

import (
	"strings"

	"github.com/loamwood/vimengine/internal/vimcore"
)

// Buffer is a minimal, line-oriented text buffer with a single cursor.
// It implements vimcore.TextBuffer so it can sit behind an InputEngine,
// and additionally exposes the editing primitives the demo modes need.
type Buffer struct {
	lines  []string
	line   int
	col    int
	onMode []func(kind vimcore.ModeKind, arg any)
}

// NewBuffer builds a buffer seeded with the given lines (at least one).
func NewBuffer(lines ...string) *Buffer {
	if len(lines) == 0 {
		lines = []string{""}
	}
	return &Buffer{lines: lines}
}

// Lines returns the buffer's lines. Caller must not mutate the result.
func (b *Buffer) Lines() []string { return b.lines }

// Cursor returns the current (line, column) position, both zero-based.
func (b *Buffer) Cursor() (int, int) { return b.line, b.col }

func (b *Buffer) currentLine() string { return b.lines[b.line] }

func (b *Buffer) clampCol() {
	maxCol := len([]rune(b.currentLine()))
	if b.col > maxCol {
		b.col = maxCol
	}
	if b.col < 0 {
		b.col = 0
	}
}

// MoveLeft moves the cursor one rune left within the current line.
func (b *Buffer) MoveLeft() {
	if b.col > 0 {
		b.col--
	}
}

// MoveRight moves the cursor one rune right within the current line.
func (b *Buffer) MoveRight() {
	if b.col < len([]rune(b.currentLine())) {
		b.col++
	}
}

// MoveUp moves the cursor up one line, clamping the column.
func (b *Buffer) MoveUp() {
	if b.line > 0 {
		b.line--
		b.clampCol()
	}
}

// MoveDown moves the cursor down one line, clamping the column.
func (b *Buffer) MoveDown() {
	if b.line < len(b.lines)-1 {
		b.line++
		b.clampCol()
	}
}

// LineStart moves the cursor to the first rune of the current line.
func (b *Buffer) LineStart() { b.col = 0 }

// LineEnd moves the cursor to the last rune of the current line.
func (b *Buffer) LineEnd() {
	n := len([]rune(b.currentLine()))
	if n > 0 {
		b.col = n - 1
	}
}

// InsertRune inserts r at the cursor and advances past it.
func (b *Buffer) InsertRune(r rune) {
	runes := []rune(b.currentLine())
	runes = append(runes[:b.col], append([]rune{r}, runes[b.col:]...)...)
	b.lines[b.line] = string(runes)
	b.col++
}

// SplitLine inserts a newline at the cursor, Enter-in-Insert-mode style.
func (b *Buffer) SplitLine() {
	runes := []rune(b.currentLine())
	before, after := string(runes[:b.col]), string(runes[b.col:])
	b.lines[b.line] = before
	tail := append([]string{after}, b.lines[b.line+1:]...)
	b.lines = append(b.lines[:b.line+1], tail...)
	b.line++
	b.col = 0
}

// Backspace deletes the rune before the cursor, joining with the
// previous line if the cursor is at column 0 of a non-first line.
func (b *Buffer) Backspace() {
	if b.col > 0 {
		runes := []rune(b.currentLine())
		runes = append(runes[:b.col-1], runes[b.col:]...)
		b.lines[b.line] = string(runes)
		b.col--
		return
	}
	if b.line > 0 {
		prevLen := len([]rune(b.lines[b.line-1]))
		b.lines[b.line-1] += b.lines[b.line]
		b.lines = append(b.lines[:b.line], b.lines[b.line+1:]...)
		b.line--
		b.col = prevLen
	}
}

// DeleteRune deletes the rune under the cursor ("x" in Normal mode).
func (b *Buffer) DeleteRune() {
	runes := []rune(b.currentLine())
	if b.col >= len(runes) {
		return
	}
	b.lines[b.line] = string(append(runes[:b.col], runes[b.col+1:]...))
	b.clampCol()
}

// DeleteLine removes the current line ("dd"), leaving at least one
// empty line if it was the buffer's last.
func (b *Buffer) DeleteLine() {
	b.lines = append(b.lines[:b.line], b.lines[b.line+1:]...)
	if len(b.lines) == 0 {
		b.lines = []string{""}
	}
	if b.line >= len(b.lines) {
		b.line = len(b.lines) - 1
	}
	b.clampCol()
}

// String renders the whole buffer, newline-joined.
func (b *Buffer) String() string { return strings.Join(b.lines, "\n") }

// OnModeSwitched implements vimcore.TextBuffer. The demo buffer never
// changes mode on its own (no external-edit detection), so this only
// exists to satisfy the interface; it never fires.
func (b *Buffer) OnModeSwitched(fn func(kind vimcore.ModeKind, arg any)) (unsubscribe func()) {
	b.onMode = append(b.onMode, fn)
	idx := len(b.onMode) - 1
	return func() { b.onMode[idx] = nil }
}

// SwitchMode implements vimcore.TextBuffer. The demo buffer has no mode
// of its own to move; it is purely a passive data store the engine's
// modes read and write directly.
func (b *Buffer) SwitchMode(vimcore.ModeKind, any) {}

var _ vimcore.TextBuffer = (*Buffer)(nil)

// JumpList is a no-op vimcore.JumpList sufficient for the demo harness.
type JumpList struct{ cleared int }

func (j *JumpList) Clear() { j.cleared++ }

var _ vimcore.JumpList = (*JumpList)(nil)
