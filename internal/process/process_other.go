//go:build !windows

package process

import "github.com/bcmister/mondpi/internal/dpi"

type system struct{}

// System returns a Platform that reports ErrUnsupported.
func System() Platform {
	return system{}
}

func (system) Processes(visit func(Entry) bool) error { return ErrUnsupported }

func (system) Windows(visit func(hwnd Window, pid uint32) bool) error { return ErrUnsupported }

func (system) Awareness(hwnd Window) (dpi.Awareness, error) {
	return dpi.AwarenessInvalid, ErrUnsupported
}
