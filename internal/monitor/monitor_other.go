//go:build !windows

package monitor

type system struct{}

// System returns a Platform that reports ErrUnsupported.
func System() Platform {
	return system{}
}

func (system) Each(visit func(Handle) bool) error { return ErrUnsupported }

func (system) Info(h Handle) (Monitor, error) { return Monitor{}, ErrUnsupported }

func (system) DPI(h Handle) (int, int, error) { return 0, 0, ErrUnsupported }

func (system) Count() int { return 0 }

func (system) AtOrigin() Handle { return 0 }
