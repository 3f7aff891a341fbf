//go:build windows

package window

import (
	"fmt"
	"log/slog"
	"runtime"
	"unsafe"

	"github.com/lxn/win"
	"golang.org/x/sys/windows"

	"github.com/bcmister/mondpi/internal/config"
	"github.com/bcmister/mondpi/internal/dpi"
	"github.com/bcmister/mondpi/internal/logview"
	"github.com/bcmister/mondpi/internal/monitor"
	"github.com/bcmister/mondpi/internal/process"
)

const (
	className   = "mondpi"
	windowTitle = "Monitor DPI"
	fontFace    = "Consolas"

	wmDPIChanged       = 0x02E0
	iccStandardClasses = 0x00004000

	mbOK          = 0x00000000
	mbIconError   = 0x00000010
	mbIconWarning = 0x00000030

	fwNormal          = 400
	defaultCharset    = 1
	outDefaultPrecis  = 0
	clipDefaultPrecis = 0
	cleartypeQuality  = 5
	fixedPitch        = 1

	hwndTop = 0
)

// App owns every piece of UI state. All methods run on the thread that
// called Run.
type App struct {
	opts      config.Options
	instance  win.HINSTANCE
	hwnd      win.HWND
	edit      win.HWND
	fonts     *FontSlot
	scaler    *Scaler
	log       *logview.Log
	monitors  monitor.Platform
	inspector *process.Inspector
	wndProc   uintptr
}

// Run creates the main window, writes the report and services messages
// until the window is destroyed.
func Run(opts config.Options) error {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	a := newApp(opts, monitor.System(), process.NewInspector(process.System()))
	defer a.fonts.Close()

	if err := a.start(); err != nil {
		return err
	}
	a.loop()
	return nil
}

func newApp(opts config.Options, monitors monitor.Platform, inspector *process.Inspector) *App {
	fonts := NewFontSlot(createFont)
	return &App{
		opts:      opts,
		fonts:     fonts,
		scaler:    NewScaler(fonts),
		monitors:  monitors,
		inspector: inspector,
	}
}

func (a *App) start() error {
	WarnUnrecognized(a.opts.Unrecognized, warningBox)

	// Must precede anything that makes the DWM virtualize this process.
	if err := dpi.SetProcessAwareness(a.opts.Awareness); err != nil {
		slog.Warn("could not set process DPI awareness", "awareness", a.opts.Awareness, "err", err)
	}

	a.instance = win.GetModuleHandle(nil)
	if err := a.register(); err != nil {
		return a.fatal("Problem registering window class.", err)
	}

	mainMonitor := a.monitors.AtOrigin()
	dpiX, _, err := a.monitors.DPI(mainMonitor)
	if err != nil {
		slog.Warn("main monitor DPI unavailable", "err", err)
	}
	a.scaler.SetDPI(dpiX)

	if err := a.create(); err != nil {
		return a.fatal("Problem creating window.", fmt.Errorf("%w: %w", ErrCreate, err))
	}

	icc := win.INITCOMMONCONTROLSEX{DwICC: iccStandardClasses}
	icc.DwSize = uint32(unsafe.Sizeof(icc))
	if !win.InitCommonControlsEx(&icc) {
		warningBox("Warning", "Problem initializing common controls.")
	}

	if err := a.createLog(); err != nil {
		return a.fatal("Problem creating log control.", fmt.Errorf("%w: %w", ErrCreate, err))
	}

	a.scaler.Attach(a, a.log)
	if err := a.scaler.UpdateFont(); err != nil {
		slog.Warn("font unavailable", "err", err)
	}

	a.log.Printf("Starting...\n")
	a.log.Printf("\n")

	if a.opts.ProcessName != "" {
		res, err := a.inspector.Inspect(a.opts.ProcessName, a.log)
		if err != nil {
			slog.Info("process inspection incomplete", "name", res.Name, "pid", res.PID, "err", err)
		} else {
			slog.Info("process inspected",
				"name", res.Name,
				"pid", res.PID,
				"window", fmt.Sprintf("0x%X", uintptr(res.Window)),
				"awareness", res.Awareness)
		}
	}

	a.log.Printf("--- MAIN MONITOR ---\n")
	monitor.Describe(a.monitors, mainMonitor).Print(a.log)
	a.log.Printf("\n")

	win.ShowWindow(a.hwnd, win.SW_SHOWDEFAULT)

	return a.diagnose()
}

// diagnose writes the awareness, monitor count and per-monitor report.
func (a *App) diagnose() error {
	a.log.Printf("--- DPI Awareness ---\n")

	awareness, err := dpi.CurrentProcessAwareness()
	if err != nil {
		return a.fatal("GetProcessDpiAwareness failed", err)
	}
	a.log.Printf("ProcessDpiAwareness=%d (%s)\n", int(awareness), dpi.ProcessAwarenessLegend)
	a.log.Printf("Number of monitors = %d\n", a.monitors.Count())
	a.log.Printf("\n")

	if err := monitor.Report(a.monitors, a.log); err != nil {
		slog.Warn("monitor report incomplete", "err", err)
		a.log.Printf("ERROR: %v\n", err)
	}

	a.log.Printf("Done\n")
	return nil
}

func (a *App) register() error {
	a.wndProc = windows.NewCallback(a.windowProc)

	cls, err := windows.UTF16PtrFromString(className)
	if err != nil {
		return err
	}
	wc := win.WNDCLASSEX{
		LpfnWndProc:   a.wndProc,
		HInstance:     a.instance,
		HCursor:       win.LoadCursor(0, win.MAKEINTRESOURCE(win.IDC_ARROW)),
		HbrBackground: win.HBRUSH(win.COLOR_WINDOW + 1),
		LpszClassName: cls,
	}
	wc.CbSize = uint32(unsafe.Sizeof(wc))

	if win.RegisterClassEx(&wc) == 0 {
		return fmt.Errorf("RegisterClassEx failed: %v", windows.GetLastError())
	}
	return nil
}

func (a *App) create() error {
	width, height := a.scaler.WindowSize(LogicalWidth, LogicalHeight)

	cls, _ := windows.UTF16PtrFromString(className)
	title, _ := windows.UTF16PtrFromString(windowTitle)
	a.hwnd = win.CreateWindowEx(
		0, cls, title,
		win.WS_OVERLAPPEDWINDOW,
		win.CW_USEDEFAULT, win.CW_USEDEFAULT,
		int32(width), int32(height),
		0, 0, a.instance, nil,
	)
	if a.hwnd == 0 {
		return fmt.Errorf("CreateWindowEx failed: %v", windows.GetLastError())
	}
	slog.Debug("main window created", "width", width, "height", height, "scale", a.scaler.Scale())
	return nil
}

// createLog adds the read-only, multi-line EDIT control that backs the log.
func (a *App) createLog() error {
	cls, _ := windows.UTF16PtrFromString("Edit")
	empty, _ := windows.UTF16PtrFromString("")
	a.edit = win.CreateWindowEx(
		win.WS_EX_CLIENTEDGE, cls, empty,
		win.WS_CHILD|win.WS_VISIBLE|win.WS_VSCROLL|
			win.ES_LEFT|win.ES_MULTILINE|win.ES_AUTOVSCROLL|win.ES_READONLY,
		0, 0, 0, 0,
		a.hwnd, 0, 0, nil,
	)
	if a.edit == 0 {
		return fmt.Errorf("CreateWindowEx(Edit) failed: %v", windows.GetLastError())
	}
	win.PostMessage(a.edit, win.WM_SETFOCUS, 0, 0)
	a.log = logview.New(logview.NewEdit(a.edit))

	var rc win.RECT
	if win.GetClientRect(a.hwnd, &rc) {
		a.fitLog(rc.Right-rc.Left, rc.Bottom-rc.Top)
	}
	return nil
}

func (a *App) loop() {
	var msg win.MSG
	for win.GetMessage(&msg, 0, 0, 0) > 0 {
		win.TranslateMessage(&msg)
		win.DispatchMessage(&msg)
	}
}

func (a *App) windowProc(hwnd win.HWND, msg uint32, wParam, lParam uintptr) uintptr {
	switch msg {
	case win.WM_DESTROY:
		win.PostQuitMessage(0)
		return 0

	case win.WM_NCCREATE:
		// Allow the non-client area to follow DPI changes
		if err := dpi.EnableNonClientScaling(uintptr(hwnd)); err != nil {
			slog.Debug("non-client DPI scaling unavailable", "err", err)
		}

	case win.WM_SIZE:
		if a.edit != 0 {
			a.fitLog(int32(win.LOWORD(uint32(lParam))), int32(win.HIWORD(uint32(lParam))))
		}

	case wmDPIChanged:
		suggested := (*win.RECT)(unsafe.Pointer(lParam))
		d := int(win.LOWORD(uint32(wParam)))
		slog.Debug("DPI changed", "from", a.scaler.DPI(), "to", d)
		if err := a.scaler.DPIChanged(d, fromRECT(*suggested)); err != nil {
			slog.Warn("DPI change not fully applied", "dpi", d, "err", err)
		}
		if a.edit != 0 {
			win.SendMessage(a.edit, msg, wParam, lParam)
		}

	case win.WM_CTLCOLORSTATIC:
		// Read-only EDIT controls ask for the static colour; match the window.
		return uintptr(win.COLOR_WINDOW + 1)
	}
	return win.DefWindowProc(hwnd, msg, wParam, lParam)
}

func (a *App) fitLog(width, height int32) {
	win.MoveWindow(a.edit, 0, 0, width, height, true)
}

// SetBounds moves the main window to r without changing z-order or focus.
func (a *App) SetBounds(r monitor.Rect) error {
	return setWindowPosition(a.hwnd, r.Left, r.Top, r.Width(), r.Height())
}

func (a *App) SetFont(f Font) {
	gf, ok := f.(*gdiFont)
	if !ok || a.edit == 0 {
		return
	}
	win.SendMessage(a.edit, win.WM_SETFONT, uintptr(gf.handle), 1)
}

// Redraw erases and invalidates the whole window.
func (a *App) Redraw() {
	win.InvalidateRect(a.hwnd, nil, true)
}

// fatal reports an initialization failure in a modal dialog.
func (a *App) fatal(text string, err error) error {
	slog.Error(text, "err", err)
	messageBox("Notification", text, mbOK|mbIconError)
	if a.hwnd != 0 {
		win.DestroyWindow(a.hwnd)
	}
	return fmt.Errorf("%w: %s: %w", ErrInit, text, err)
}

func setWindowPosition(hwnd win.HWND, x, y, width, height int) error {
	ok := win.SetWindowPos(
		hwnd,
		hwndTop,
		int32(x),
		int32(y),
		int32(width),
		int32(height),
		win.SWP_NOZORDER|win.SWP_NOACTIVATE,
	)
	if !ok {
		return fmt.Errorf("SetWindowPos failed: %v", windows.GetLastError())
	}
	return nil
}

// gdiFont is a fixed-pitch GDI font handle.
type gdiFont struct {
	handle win.HFONT
	size   int
}

func createFont(size int) (Font, error) {
	lf := win.LOGFONT{
		LfHeight:         int32(-size),
		LfWeight:         fwNormal,
		LfCharSet:        defaultCharset,
		LfOutPrecision:   outDefaultPrecis,
		LfClipPrecision:  clipDefaultPrecis,
		LfQuality:        cleartypeQuality,
		LfPitchAndFamily: fixedPitch,
	}
	copy(lf.LfFaceName[:len(lf.LfFaceName)-1], windows.StringToUTF16(fontFace))

	h := win.CreateFontIndirect(&lf)
	if h == 0 {
		return nil, fmt.Errorf("CreateFontIndirect failed")
	}
	return &gdiFont{handle: h, size: size}, nil
}

func (f *gdiFont) Size() int { return f.size }

func (f *gdiFont) Release() error {
	if !win.DeleteObject(win.HGDIOBJ(f.handle)) {
		return fmt.Errorf("DeleteObject failed")
	}
	return nil
}

func warningBox(title, text string) {
	messageBox(title, text, mbOK|mbIconWarning)
}

func messageBox(title, text string, flags uint32) {
	t, _ := windows.UTF16PtrFromString(title)
	m, _ := windows.UTF16PtrFromString(text)
	win.MessageBox(0, m, t, flags)
}

func fromRECT(r win.RECT) monitor.Rect {
	return monitor.Rect{
		Left:   int(r.Left),
		Top:    int(r.Top),
		Right:  int(r.Right),
		Bottom: int(r.Bottom),
	}
}
