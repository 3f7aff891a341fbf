//go:build windows

package dpi

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	shcore = windows.NewLazySystemDLL("shcore.dll")
	user32 = windows.NewLazySystemDLL("user32.dll")

	procSetProcessDpiAwareness              = shcore.NewProc("SetProcessDpiAwareness")
	procGetProcessDpiAwareness              = shcore.NewProc("GetProcessDpiAwareness")
	procGetDpiForMonitor                    = shcore.NewProc("GetDpiForMonitor")
	procEnableNonClientDpiScaling           = user32.NewProc("EnableNonClientDpiScaling")
	procGetWindowDpiAwarenessContext        = user32.NewProc("GetWindowDpiAwarenessContext")
	procGetAwarenessFromDpiAwarenessContext = user32.NewProc("GetAwarenessFromDpiAwarenessContext")
)

const mdtEffectiveDPI = 0

// SetProcessAwareness registers the process DPI awareness. It must run
// before any call that makes the DWM start virtualizing the process.
func SetProcessAwareness(a ProcessAwareness) error {
	if err := procSetProcessDpiAwareness.Find(); err != nil {
		return fmt.Errorf("SetProcessDpiAwareness: %w", err)
	}
	hr, _, _ := procSetProcessDpiAwareness.Call(uintptr(a))
	if hr != 0 {
		return fmt.Errorf("SetProcessDpiAwareness(%d) failed: HRESULT 0x%08X", int(a), uint32(hr))
	}
	return nil
}

// CurrentProcessAwareness reports the awareness the OS applied to this process.
func CurrentProcessAwareness() (ProcessAwareness, error) {
	if err := procGetProcessDpiAwareness.Find(); err != nil {
		return 0, fmt.Errorf("GetProcessDpiAwareness: %w", err)
	}
	value := int32(-1)
	hr, _, _ := procGetProcessDpiAwareness.Call(0, uintptr(unsafe.Pointer(&value)))
	if hr != 0 {
		return 0, fmt.Errorf("GetProcessDpiAwareness failed: HRESULT 0x%08X", uint32(hr))
	}
	return ProcessAwareness(value), nil
}

// ForMonitor returns the effective DPI of a monitor. On failure the values
// the OS left behind (normally zero) are returned together with the error.
func ForMonitor(hMonitor uintptr) (x, y int, err error) {
	if err := procGetDpiForMonitor.Find(); err != nil {
		return 0, 0, fmt.Errorf("GetDpiForMonitor: %w", err)
	}
	var dx, dy uint32
	hr, _, _ := procGetDpiForMonitor.Call(hMonitor, mdtEffectiveDPI,
		uintptr(unsafe.Pointer(&dx)), uintptr(unsafe.Pointer(&dy)))
	if hr != 0 {
		err = fmt.Errorf("GetDpiForMonitor failed: HRESULT 0x%08X", uint32(hr))
	}
	return int(dx), int(dy), err
}

// EnableNonClientScaling lets the non-client area of hwnd follow DPI
// changes. Only valid while handling WM_NCCREATE.
func EnableNonClientScaling(hwnd uintptr) error {
	if err := procEnableNonClientDpiScaling.Find(); err != nil {
		return fmt.Errorf("EnableNonClientDpiScaling: %w", err)
	}
	r, _, callErr := procEnableNonClientDpiScaling.Call(hwnd)
	if r == 0 {
		return fmt.Errorf("EnableNonClientDpiScaling failed: %v", callErr)
	}
	return nil
}

// WindowAwareness classifies the DPI awareness context of a window owned by
// any process.
func WindowAwareness(hwnd uintptr) (Awareness, error) {
	if err := procGetWindowDpiAwarenessContext.Find(); err != nil {
		return AwarenessInvalid, fmt.Errorf("GetWindowDpiAwarenessContext: %w", err)
	}
	if err := procGetAwarenessFromDpiAwarenessContext.Find(); err != nil {
		return AwarenessInvalid, fmt.Errorf("GetAwarenessFromDpiAwarenessContext: %w", err)
	}
	ctx, _, _ := procGetWindowDpiAwarenessContext.Call(hwnd)
	r, _, _ := procGetAwarenessFromDpiAwarenessContext.Call(ctx)
	return Awareness(int32(r)), nil
}
