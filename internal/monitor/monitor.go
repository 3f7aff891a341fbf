package monitor

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/bcmister/mondpi/internal/dpi"
)

// ErrUnsupported is returned by the system Platform outside Windows.
var ErrUnsupported = errors.New("monitor: enumeration requires Windows")

// MONITORINFOF_PRIMARY marks the primary monitor in Monitor.Flags.
const MONITORINFOF_PRIMARY = 0x00000001

// Rect is a rectangle in virtual-screen coordinates
type Rect struct {
	Left   int `yaml:"left"`
	Top    int `yaml:"top"`
	Right  int `yaml:"right"`
	Bottom int `yaml:"bottom"`
}

func (r Rect) Width() int  { return r.Right - r.Left }
func (r Rect) Height() int { return r.Bottom - r.Top }

func (r Rect) String() string {
	return fmt.Sprintf("(%d,%d)-(%d,%d)", r.Left, r.Top, r.Right, r.Bottom)
}

// Handle identifies a monitor (HMONITOR) while the display layout is unchanged
type Handle uintptr

// Monitor represents a display monitor as seen during one enumeration pass
type Monitor struct {
	Index   int
	Device  string
	Bounds  Rect
	Work    Rect
	Flags   uint32
	Primary bool
	DPIX    int
	DPIY    int
}

// Scale returns the scaling percentage derived from the horizontal DPI
func (m Monitor) Scale() int {
	return dpi.Scale(m.DPIX)
}

// FlagsLabel names the primary bit of Flags
func (m Monitor) FlagsLabel() string {
	if m.Primary {
		return "primary"
	}
	return "non-primary"
}

// Platform is the slice of the OS the enumerator talks to
type Platform interface {
	// Each calls visit for every monitor in system order until visit
	// returns false.
	Each(visit func(Handle) bool) error
	// Info fills in device, rectangles and flags.
	Info(h Handle) (Monitor, error)
	// DPI returns the effective DPI. On failure the returned values are
	// whatever the OS produced.
	DPI(h Handle) (x, y int, err error)
	// Count returns the number of monitors the OS reports.
	Count() int
	// AtOrigin returns the monitor nearest to the screen origin.
	AtOrigin() Handle
}

// Printer receives formatted report text
type Printer interface {
	Printf(format string, args ...any)
}

// Describe queries one monitor. Failures are logged and leave the
// affected fields at their zero values.
func Describe(p Platform, h Handle) Monitor {
	m, err := p.Info(h)
	if err != nil {
		slog.Warn("monitor info unavailable", "handle", uintptr(h), "err", err)
	}
	var dpiErr error
	m.DPIX, m.DPIY, dpiErr = p.DPI(h)
	if dpiErr != nil {
		slog.Debug("monitor DPI unavailable", "handle", uintptr(h), "err", dpiErr)
	}
	return m
}

// Enumerate describes every monitor in system order, numbering them from 0
func Enumerate(p Platform, visit func(Monitor)) error {
	index := 0
	err := p.Each(func(h Handle) bool {
		m := Describe(p, h)
		m.Index = index
		index++
		visit(m)
		return true
	})
	if err != nil {
		return fmt.Errorf("failed to enumerate monitors: %w", err)
	}
	return nil
}

// Detect returns a list of all connected monitors
func Detect(p Platform) ([]Monitor, error) {
	var monitors []Monitor
	err := Enumerate(p, func(m Monitor) {
		monitors = append(monitors, m)
	})
	if err != nil {
		return nil, err
	}
	return monitors, nil
}

// Primary returns the primary monitor, or the first one if none is flagged
func Primary(monitors []Monitor) (*Monitor, error) {
	for i := range monitors {
		if monitors[i].Primary {
			return &monitors[i], nil
		}
	}

	if len(monitors) > 0 {
		return &monitors[0], nil
	}

	return nil, fmt.Errorf("no monitors detected")
}

// Print writes the body of a monitor block.
func (m Monitor) Print(out Printer) {
	out.Printf("Device=%s\n", m.Device)
	out.Printf("Monitor=%s\n", m.Bounds)
	out.Printf("Work=%s\n", m.Work)
	out.Printf("Flags=%d=%s\n", m.Flags, m.FlagsLabel())
	out.Printf("DPI=%d,%d (scaling %d%%)\n", m.DPIX, m.DPIY, m.Scale())
}

// Report writes one headed block per monitor, each followed by a blank line.
func Report(p Platform, out Printer) error {
	return Enumerate(p, func(m Monitor) {
		out.Printf("--- MONITOR #%d ---\n", m.Index)
		m.Print(out)
		out.Printf("\n")
	})
}
