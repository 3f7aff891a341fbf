//go:build windows

package monitor

import (
	"fmt"
	"unsafe"

	"github.com/lxn/win"
	"golang.org/x/sys/windows"

	"github.com/bcmister/mondpi/internal/dpi"
)

var (
	user32                  = windows.NewLazySystemDLL("user32.dll")
	procEnumDisplayMonitors = user32.NewProc("EnumDisplayMonitors")
	procGetMonitorInfoW     = user32.NewProc("GetMonitorInfoW")
	procMonitorFromPoint    = user32.NewProc("MonitorFromPoint")
)

const (
	smCMonitors             = 80
	monitorDefaultToNearest = 0x00000002
)

// MONITORINFOEXW structure
type monitorInfoExW struct {
	CbSize    uint32
	RcMonitor win.RECT
	RcWork    win.RECT
	DwFlags   uint32
	SzDevice  [32]uint16
}

type system struct{}

// System returns the Platform backed by user32 and shcore.
func System() Platform {
	return system{}
}

func (system) Each(visit func(Handle) bool) error {
	stopped := false
	callback := windows.NewCallback(func(hMonitor, hdcMonitor, lprcMonitor, dwData uintptr) uintptr {
		if visit(Handle(hMonitor)) {
			return 1 // Continue enumeration
		}
		stopped = true
		return 0
	})

	ret, _, err := procEnumDisplayMonitors.Call(
		0,        // hdc - NULL for all monitors
		0,        // lprcClip - NULL for entire virtual screen
		callback, // lpfnEnum
		0,        // dwData
	)
	if ret == 0 && !stopped {
		return fmt.Errorf("EnumDisplayMonitors failed: %v", err)
	}
	return nil
}

func (system) Info(h Handle) (Monitor, error) {
	var info monitorInfoExW
	info.CbSize = uint32(unsafe.Sizeof(info))

	ret, _, err := procGetMonitorInfoW.Call(uintptr(h), uintptr(unsafe.Pointer(&info)))
	if ret == 0 {
		return Monitor{}, fmt.Errorf("GetMonitorInfoW failed: %v", err)
	}

	return Monitor{
		Device:  windows.UTF16ToString(info.SzDevice[:]),
		Bounds:  fromRECT(info.RcMonitor),
		Work:    fromRECT(info.RcWork),
		Flags:   info.DwFlags,
		Primary: info.DwFlags&MONITORINFOF_PRIMARY != 0,
	}, nil
}

func (system) DPI(h Handle) (int, int, error) {
	return dpi.ForMonitor(uintptr(h))
}

func (system) Count() int {
	return int(win.GetSystemMetrics(smCMonitors))
}

func (system) AtOrigin() Handle {
	return Handle(monitorFromPoint(0, 0, monitorDefaultToNearest))
}

// monitorFromPoint passes POINT by value: one register on 64-bit targets,
// two stack slots on 32-bit ones.
func monitorFromPoint(x, y int32, flags uint32) uintptr {
	var ret uintptr
	if unsafe.Sizeof(uintptr(0)) == 8 {
		pt := uint64(uint32(x)) | uint64(uint32(y))<<32
		ret, _, _ = procMonitorFromPoint.Call(uintptr(pt), uintptr(flags))
	} else {
		ret, _, _ = procMonitorFromPoint.Call(uintptr(x), uintptr(y), uintptr(flags))
	}
	return ret
}

func fromRECT(r win.RECT) Rect {
	return Rect{
		Left:   int(r.Left),
		Top:    int(r.Top),
		Right:  int(r.Right),
		Bottom: int(r.Bottom),
	}
}
