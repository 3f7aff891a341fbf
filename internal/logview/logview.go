// Package logview is the append-only text log shown in the main window.
package logview

import (
	"fmt"
	"strings"
)

// Control is the text surface a Log writes into. Positions are in
// characters of the surface's own encoding.
type Control interface {
	TextLength() int
	SetSelection(start, end int)
	ReplaceSelection(text string)
	ScrollCaret()
}

// Log appends text to the end of a Control and keeps the newest text in view.
// It is owned by the UI thread.
type Log struct {
	ctl Control
}

// New returns a Log writing into ctl.
func New(ctl Control) *Log {
	return &Log{ctl: ctl}
}

// Append inserts text after everything already in the log. The insertion
// point is moved to the end first so a user selection never gets replaced.
func (l *Log) Append(text string) {
	if l == nil || l.ctl == nil || text == "" {
		return
	}
	n := l.ctl.TextLength()
	l.ctl.SetSelection(n, n)
	l.ctl.ReplaceSelection(text)
	n = l.ctl.TextLength()
	l.ctl.SetSelection(n, n)
	l.ctl.ScrollCaret()
}

// Printf formats according to a format specifier and appends the result.
func (l *Log) Printf(format string, args ...any) {
	l.Append(fmt.Sprintf(format, args...))
}

// Buffer is an in-memory Control. The monitors command renders its plain
// log output into one.
type Buffer struct {
	text     []rune
	selStart int
	selEnd   int
	caret    int
	scrolls  int
}

func (b *Buffer) TextLength() int { return len(b.text) }

func (b *Buffer) SetSelection(start, end int) {
	b.selStart = clamp(start, 0, len(b.text))
	b.selEnd = clamp(end, b.selStart, len(b.text))
}

func (b *Buffer) ReplaceSelection(text string) {
	ins := []rune(text)
	out := make([]rune, 0, len(b.text)-(b.selEnd-b.selStart)+len(ins))
	out = append(out, b.text[:b.selStart]...)
	out = append(out, ins...)
	out = append(out, b.text[b.selEnd:]...)
	b.text = out
	b.selStart += len(ins)
	b.selEnd = b.selStart
}

func (b *Buffer) ScrollCaret() {
	b.caret = b.selEnd
	b.scrolls++
}

// String returns the full log text.
func (b *Buffer) String() string { return string(b.text) }

// Lines returns the log split on newlines, without a trailing empty element.
func (b *Buffer) Lines() []string {
	s := strings.TrimSuffix(b.String(), "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

// Caret returns the position the view was last scrolled to.
func (b *Buffer) Caret() int { return b.caret }

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
