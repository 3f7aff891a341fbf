package process

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bcmister/mondpi/internal/dpi"
)

type fakeWindow struct {
	hwnd Window
	pid  uint32
}

type fakePlatform struct {
	procs      []Entry
	windows    []fakeWindow
	awareness  map[Window]dpi.Awareness
	windowEnum int
}

func (f *fakePlatform) Processes(visit func(Entry) bool) error {
	for _, e := range f.procs {
		if !visit(e) {
			break
		}
	}
	return nil
}

func (f *fakePlatform) Windows(visit func(Window, uint32) bool) error {
	f.windowEnum++
	for _, w := range f.windows {
		if !visit(w.hwnd, w.pid) {
			break
		}
	}
	return nil
}

func (f *fakePlatform) Awareness(hwnd Window) (dpi.Awareness, error) {
	a, ok := f.awareness[hwnd]
	if !ok {
		return dpi.AwarenessInvalid, errors.New("no context")
	}
	return a, nil
}

type printer struct{ strings.Builder }

func (p *printer) Printf(format string, args ...any) {
	fmt.Fprintf(&p.Builder, format, args...)
}

func desktop() *fakePlatform {
	return &fakePlatform{
		procs: []Entry{
			{PID: 4, Exe: "System"},
			{PID: 812, Exe: "explorer.exe"},
			{PID: 1204, Exe: "Notepad.exe"},
			{PID: 1300, Exe: "notepad.exe"},
		},
		windows: []fakeWindow{
			{hwnd: 0x10010, pid: 812},
			{hwnd: 0x20020, pid: 999},
			{hwnd: 0x30030, pid: 1204},
			{hwnd: 0x40040, pid: 1204},
		},
		awareness: map[Window]dpi.Awareness{
			0x30030: dpi.AwarenessPerMonitorAware,
			0x10010: dpi.AwarenessSystemAware,
		},
	}
}

func TestFindPIDCaseInsensitiveExact(t *testing.T) {
	p := desktop()

	pid, err := FindPID(p, "NOTEPAD.EXE")
	require.NoError(t, err)
	assert.Equal(t, uint32(1204), pid, "first match wins")

	_, err = FindPID(p, "notepad")
	assert.ErrorIs(t, err, ErrNotFound, "prefix must not match")

	_, err = FindPID(p, "explorer.exe.bak")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFindWindowMatchesOwner(t *testing.T) {
	p := desktop()

	hwnd, err := FindWindow(p, 1204)
	require.NoError(t, err)
	assert.Equal(t, Window(0x30030), hwnd, "must skip windows owned by other processes")

	_, err = FindWindow(p, 1300)
	assert.ErrorIs(t, err, ErrWindowNotFound)
}

func TestInspectReportsAwareness(t *testing.T) {
	var out printer
	res, err := NewInspector(desktop()).Inspect("notepad.exe", &out)
	require.NoError(t, err)

	assert.Equal(t, uint32(1204), res.PID)
	assert.Equal(t, Window(0x30030), res.Window)
	assert.Equal(t, dpi.AwarenessPerMonitorAware, res.Awareness)
	assert.Equal(t, "--- PROCESS ---\n"+
		"Name=notepad.exe\n"+
		"processID=1204\n"+
		"hWndProcess=0x30030\n"+
		"DPI_AWARENESS=DPI_AWARENESS_PER_MONITOR_AWARE (2)\n"+
		"\n", out.String())
}

func TestInspectProcessNotFoundSkipsWindowScan(t *testing.T) {
	p := desktop()
	var out printer
	_, err := NewInspector(p).Inspect("missing.exe", &out)

	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, 0, p.windowEnum)
	assert.Contains(t, out.String(), "ERROR: Process not found: missing.exe\n")
	assert.NotContains(t, out.String(), "processID=")
}

func TestInspectWindowNotFound(t *testing.T) {
	p := desktop()
	p.procs = append([]Entry{{PID: 77, Exe: "service.exe"}}, p.procs...)

	var out printer
	_, err := NewInspector(p).Inspect("service.exe", &out)

	assert.ErrorIs(t, err, ErrWindowNotFound)
	assert.Equal(t, 1, p.windowEnum)
	assert.Contains(t, out.String(), "processID=77\n")
	assert.Contains(t, out.String(), "ERROR: Window not found matching process name: service.exe\n")
	assert.True(t, strings.HasSuffix(out.String(), "\n\n"))
}
