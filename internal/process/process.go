// Package process reports the DPI awareness another running process applies
// to its top-level windows.
package process

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/bcmister/mondpi/internal/dpi"
)

var (
	// ErrNotFound means no running process has the requested executable name.
	ErrNotFound = errors.New("process not found")

	// ErrWindowNotFound means the process owns no top-level window.
	ErrWindowNotFound = errors.New("window not found")

	// ErrUnsupported is returned by the system Platform outside Windows.
	ErrUnsupported = errors.New("process: inspection requires Windows")
)

// Entry is one row of a process snapshot.
type Entry struct {
	PID uint32
	Exe string
}

// Window is a top-level window handle.
type Window uintptr

// Platform is the OS surface the inspector reads. All calls are read-only.
type Platform interface {
	Processes(visit func(Entry) bool) error
	Windows(visit func(hwnd Window, pid uint32) bool) error
	Awareness(hwnd Window) (dpi.Awareness, error)
}

// Printer receives the report lines.
type Printer interface {
	Printf(format string, args ...any)
}

// FindPID returns the first process whose executable name equals name,
// ignoring case.
func FindPID(p Platform, name string) (uint32, error) {
	var pid uint32
	err := p.Processes(func(e Entry) bool {
		if strings.EqualFold(e.Exe, name) {
			pid = e.PID
			return false
		}
		return true
	})
	if err != nil {
		return 0, fmt.Errorf("failed to snapshot processes: %w", err)
	}
	if pid == 0 {
		return 0, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	return pid, nil
}

// FindWindow returns the first top-level window owned by pid.
func FindWindow(p Platform, pid uint32) (Window, error) {
	var found Window
	err := p.Windows(func(hwnd Window, owner uint32) bool {
		if owner == pid {
			found = hwnd
			return false
		}
		return true
	})
	if err != nil {
		return 0, fmt.Errorf("failed to enumerate windows: %w", err)
	}
	if found == 0 {
		return 0, fmt.Errorf("%w for pid %d", ErrWindowNotFound, pid)
	}
	return found, nil
}

// Result is what Inspect learned about the target.
type Result struct {
	Name      string
	PID       uint32
	Window    Window
	Awareness dpi.Awareness
}

// Inspector resolves a process name to a window and reports its awareness.
type Inspector struct {
	platform Platform
}

func NewInspector(p Platform) *Inspector {
	return &Inspector{platform: p}
}

// Inspect writes the PROCESS section of the log. Lookup failures are
// reported in the log and returned; they are never fatal to the caller.
func (in *Inspector) Inspect(name string, out Printer) (Result, error) {
	res := Result{Name: name, Awareness: dpi.AwarenessInvalid}

	out.Printf("--- PROCESS ---\n")
	out.Printf("Name=%s\n", name)
	defer out.Printf("\n")

	pid, err := FindPID(in.platform, name)
	if err != nil {
		slog.Info("target process lookup failed", "name", name, "err", err)
		out.Printf("ERROR: Process not found: %s\n", name)
		return res, err
	}
	res.PID = pid
	out.Printf("processID=%d\n", pid)

	hwnd, err := FindWindow(in.platform, pid)
	if err != nil {
		slog.Info("target window lookup failed", "name", name, "pid", pid, "err", err)
		out.Printf("ERROR: Window not found matching process name: %s\n", name)
		return res, err
	}
	res.Window = hwnd
	out.Printf("hWndProcess=0x%X\n", uintptr(hwnd))

	awareness, err := in.platform.Awareness(hwnd)
	if err != nil {
		out.Printf("ERROR: DPI awareness unavailable: %v\n", err)
		return res, err
	}
	res.Awareness = awareness
	out.Printf("DPI_AWARENESS=%s (%d)\n", awareness, int(awareness))
	return res, nil
}
