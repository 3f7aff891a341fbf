//go:build windows

package process

import (
	"errors"
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/bcmister/mondpi/internal/dpi"
)

type system struct{}

// System returns the Platform backed by Toolhelp32 and user32.
func System() Platform {
	return system{}
}

func (system) Processes(visit func(Entry) bool) error {
	snapshot, err := windows.CreateToolhelp32Snapshot(windows.TH32CS_SNAPPROCESS, 0)
	if err != nil {
		return fmt.Errorf("CreateToolhelp32Snapshot failed: %w", err)
	}
	defer windows.CloseHandle(snapshot)

	var entry windows.ProcessEntry32
	entry.Size = uint32(unsafe.Sizeof(entry))
	for err = windows.Process32First(snapshot, &entry); err == nil; err = windows.Process32Next(snapshot, &entry) {
		if !visit(Entry{PID: entry.ProcessID, Exe: windows.UTF16ToString(entry.ExeFile[:])}) {
			return nil
		}
	}
	if errors.Is(err, windows.ERROR_NO_MORE_FILES) {
		return nil
	}
	return fmt.Errorf("Process32Next failed: %w", err)
}

func (system) Windows(visit func(hwnd Window, pid uint32) bool) error {
	stopped := false
	callback := windows.NewCallback(func(hwnd windows.HWND, lParam uintptr) uintptr {
		var pid uint32
		windows.GetWindowThreadProcessId(hwnd, &pid)
		if visit(Window(hwnd), pid) {
			return 1
		}
		stopped = true
		return 0
	})

	// EnumWindows reports failure when the callback stops it early.
	if err := windows.EnumWindows(callback, nil); err != nil && !stopped {
		return fmt.Errorf("EnumWindows failed: %w", err)
	}
	return nil
}

func (system) Awareness(hwnd Window) (dpi.Awareness, error) {
	return dpi.WindowAwareness(uintptr(hwnd))
}
