// Package ui renders the console form of the monitor report.
package ui

import (
	"fmt"
	"io"
	"strings"
)

// ANSI color codes
const (
	Reset   = "\033[0m"
	Bold    = "\033[1m"
	BrCyan  = "\033[96m"
	BrYell  = "\033[93m"
	White   = "\033[37m"
	BrWhite = "\033[97m"
	DkGray  = "\033[90m"
)

// Unicode symbols
const (
	Diamond = "◆"
	Bullet  = "▪"
	Dot     = "·"
)

const panelWidth = 37

// Console writes styled report text to w.
type Console struct {
	w io.Writer
}

func New(w io.Writer) *Console {
	return &Console{w: w}
}

// Head prints a section header with a diamond bullet.
func (c *Console) Head(text string) {
	fmt.Fprintf(c.w, "\n %s%s%s %s%s%s\n", BrCyan, Diamond, Reset, BrWhite, text, Reset)
}

// Warn prints a warning line.
func (c *Console) Warn(text string) {
	fmt.Fprintf(c.w, "   %s%s %s%s\n", BrYell, Bullet, text, Reset)
}

// Panel prints a bordered box. badge is shown in the top border when set.
func (c *Console) Panel(title, badge string, rows ...string) {
	pad := max(panelWidth-4-len(title), 1)
	badgeStr := ""
	if badge != "" {
		badgeStr = fmt.Sprintf(" %s%s%s%s ", BrYell, Bold, badge, Reset+DkGray)
		pad = max(panelWidth-6-len(title)-len(badge), 1)
	}
	fmt.Fprintf(c.w, "   %s┌─ %s%s%s%s %s%s─┐%s\n",
		DkGray, BrWhite, title, Reset, DkGray+badgeStr, DkGray, strings.Repeat("─", pad), Reset)

	for _, row := range rows {
		fill := max(panelWidth-2-visLen(row), 0)
		fmt.Fprintf(c.w, "   %s│%s  %s%s%s│%s\n", DkGray, Reset, row, strings.Repeat(" ", fill), DkGray, Reset)
	}

	fmt.Fprintf(c.w, "   %s└%s┘%s\n", DkGray, strings.Repeat("─", panelWidth), Reset)
}

// Field formats a label/value row for Panel.
func Field(label, value string) string {
	return fmt.Sprintf("%s%-9s%s %s%s%s", DkGray, label, Reset, White, value, Reset)
}

// visLen returns the printed width of s, ignoring ANSI escapes.
func visLen(s string) int {
	n := 0
	esc := false
	for _, r := range s {
		if r == '\033' {
			esc = true
			continue
		}
		if esc {
			if r == 'm' {
				esc = false
			}
			continue
		}
		n++
	}
	return n
}
