// Package dpi holds the scaling arithmetic and DPI-awareness vocabulary
// shared by the monitor report, the process inspector and the main window.
package dpi

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// ErrUnsupported is returned by the platform calls outside Windows.
var ErrUnsupported = errors.New("dpi: per-monitor DPI requires Windows")

// Base is the DPI Windows treats as 100% scaling.
const Base = 96

// BaseFontSize is the log font height, in pixels, at 100% scaling.
const BaseFontSize = 17

// Scale converts a DPI value into a percentage scale factor, truncating.
func Scale(dpi int) int {
	return 100 * dpi / Base
}

// FontSize returns the log font height for a scale percentage.
func FontSize(scale int) int {
	return BaseFontSize * scale / 100
}

// ScaleLength scales a logical length by a percentage.
func ScaleLength(n, scale int) int {
	return n * scale / 100
}

// ProcessAwareness mirrors PROCESS_DPI_AWARENESS. Values outside the three
// named levels are kept as-is and handed to the OS uninterpreted.
type ProcessAwareness int

const (
	ProcessUnaware          ProcessAwareness = 0
	ProcessSystemAware      ProcessAwareness = 1
	ProcessPerMonitorAware  ProcessAwareness = 2
	DefaultProcessAwareness                  = ProcessPerMonitorAware
)

func (a ProcessAwareness) String() string {
	switch a {
	case ProcessUnaware:
		return "PROCESS_DPI_UNAWARE"
	case ProcessSystemAware:
		return "PROCESS_SYSTEM_DPI_AWARE"
	case ProcessPerMonitorAware:
		return "PROCESS_PER_MONITOR_DPI_AWARE"
	}
	return strconv.Itoa(int(a))
}

// ProcessAwarenessLegend is appended to the numeric awareness in the log.
const ProcessAwarenessLegend = "0=PROCESS_DPI_UNAWARE, 1=PROCESS_SYSTEM_DPI_AWARE, 2=PROCESS_PER_MONITOR_DPI_AWARE"

// ParseProcessAwareness reads the -dpiaware value the way the C runtime's
// atoi does: leading blanks and an optional sign, then as many digits as
// follow. Trailing text is ignored and a value without digits is 0.
func ParseProcessAwareness(s string) ProcessAwareness {
	s = strings.TrimLeft(s, " \t\n\v\f\r")
	neg := false
	if s != "" && (s[0] == '+' || s[0] == '-') {
		neg = s[0] == '-'
		s = s[1:]
	}
	var n int64
	for i := 0; i < len(s) && s[i] >= '0' && s[i] <= '9'; i++ {
		n = n*10 + int64(s[i]-'0')
		if n > math.MaxInt32 {
			n = math.MaxInt32 + 1
		}
	}
	if neg {
		n = -n
	}
	return ProcessAwareness(max(min(n, math.MaxInt32), math.MinInt32))
}

// Awareness mirrors DPI_AWARENESS as returned for a window's awareness context.
type Awareness int

const (
	AwarenessInvalid         Awareness = -1
	AwarenessUnaware         Awareness = 0
	AwarenessSystemAware     Awareness = 1
	AwarenessPerMonitorAware Awareness = 2
)

func (a Awareness) String() string {
	switch a {
	case AwarenessInvalid:
		return "DPI_AWARENESS_INVALID"
	case AwarenessUnaware:
		return "DPI_AWARENESS_UNAWARE"
	case AwarenessSystemAware:
		return "DPI_AWARENESS_SYSTEM_AWARE"
	case AwarenessPerMonitorAware:
		return "DPI_AWARENESS_PER_MONITOR_AWARE"
	}
	return "<unknown>"
}
