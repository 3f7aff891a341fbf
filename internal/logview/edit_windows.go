//go:build windows

package logview

import (
	"strings"
	"unsafe"

	"github.com/lxn/win"
	"golang.org/x/sys/windows"
)

// Edit adapts a read-only multi-line EDIT control to Control.
type Edit struct {
	hwnd win.HWND
}

// NewEdit wraps an existing EDIT control.
func NewEdit(hwnd win.HWND) *Edit {
	return &Edit{hwnd: hwnd}
}

func (e *Edit) TextLength() int {
	return int(win.SendMessage(e.hwnd, win.WM_GETTEXTLENGTH, 0, 0))
}

func (e *Edit) SetSelection(start, end int) {
	win.SendMessage(e.hwnd, win.EM_SETSEL, uintptr(start), uintptr(end))
}

// ReplaceSelection transcodes text to UTF-16 with CRLF line breaks, which is
// what the EDIT control renders as new lines.
func (e *Edit) ReplaceSelection(text string) {
	text = strings.ReplaceAll(text, "\x00", "")
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\n", "\r\n")
	p, err := windows.UTF16PtrFromString(text)
	if err != nil {
		return
	}
	win.SendMessage(e.hwnd, win.EM_REPLACESEL, 0, uintptr(unsafe.Pointer(p)))
}

func (e *Edit) ScrollCaret() {
	win.SendMessage(e.hwnd, win.EM_SCROLLCARET, 0, 0)
}
