//go:build !windows

package dpi

func SetProcessAwareness(a ProcessAwareness) error { return ErrUnsupported }

func CurrentProcessAwareness() (ProcessAwareness, error) { return 0, ErrUnsupported }

func ForMonitor(hMonitor uintptr) (x, y int, err error) { return 0, 0, ErrUnsupported }

func EnableNonClientScaling(hwnd uintptr) error { return ErrUnsupported }

func WindowAwareness(hwnd uintptr) (Awareness, error) { return AwarenessInvalid, ErrUnsupported }
