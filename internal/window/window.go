package window

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/bcmister/mondpi/internal/dpi"
	"github.com/bcmister/mondpi/internal/monitor"
)

var (
	// ErrInit marks failures that stop the program before the message loop runs.
	ErrInit = errors.New("initialization failed")

	// ErrCreate marks a window that could not be created. It is the only
	// initialization failure that ends the process with a non-zero status.
	ErrCreate = errors.New("window creation failed")
)

// UnrecognizedWarning is the text of the dialog shown for unknown arguments.
const UnrecognizedWarning = "Some command-line parameters were not recognized."

// Logical size of the main window at 100% scaling.
const (
	LogicalWidth  = 640
	LogicalHeight = 480
)

// Printer receives log lines.
type Printer interface {
	Printf(format string, args ...any)
}

// Dialog shows a modal message and returns once it is dismissed.
type Dialog func(title, text string)

// WarnUnrecognized shows a single warning for any number of unrecognized
// arguments. It reports whether the dialog was shown; startup goes on
// either way.
func WarnUnrecognized(args []string, show Dialog) bool {
	if len(args) == 0 {
		return false
	}
	slog.Warn("unrecognized arguments", "args", args)
	show("Warning", UnrecognizedWarning)
	return true
}

// Font is a live font object.
type Font interface {
	Size() int
	Release() error
}

// FontFactory creates a font with the given pixel height.
type FontFactory func(size int) (Font, error)

// FontSlot owns at most one live Font.
type FontSlot struct {
	create  FontFactory
	current Font
}

func NewFontSlot(create FontFactory) *FontSlot {
	return &FontSlot{create: create}
}

// Current returns the live font, or nil before the first Replace.
func (s *FontSlot) Current() Font {
	return s.current
}

// Replace releases the live font and then creates one of the given size.
func (s *FontSlot) Replace(size int) (Font, error) {
	s.release()
	f, err := s.create(size)
	if err != nil {
		return nil, fmt.Errorf("failed to create font of size %d: %w", size, err)
	}
	s.current = f
	return f, nil
}

// Close releases the live font.
func (s *FontSlot) Close() {
	s.release()
}

func (s *FontSlot) release() {
	if s.current == nil {
		return
	}
	if err := s.current.Release(); err != nil {
		slog.Warn("failed to release font", "size", s.current.Size(), "err", err)
	}
	s.current = nil
}

// Target is the window a Scaler moves, restyles and repaints.
type Target interface {
	SetBounds(r monitor.Rect) error
	SetFont(f Font)
	Redraw()
}

// Scaler tracks the window's scale percentage and keeps geometry and font
// in step with it.
type Scaler struct {
	dpi    int
	scale  int
	fonts  *FontSlot
	target Target
	log    Printer
}

func NewScaler(fonts *FontSlot) *Scaler {
	return &Scaler{dpi: dpi.Base, scale: 100, fonts: fonts}
}

// Attach connects the scaler to the window and log once both exist, and
// logs the current scale.
func (s *Scaler) Attach(target Target, log Printer) {
	s.target = target
	s.log = log
	s.report()
}

func (s *Scaler) DPI() int   { return s.dpi }
func (s *Scaler) Scale() int { return s.scale }

// SetDPI recomputes the scale percentage from d.
func (s *Scaler) SetDPI(d int) int {
	s.dpi = d
	s.scale = dpi.Scale(d)
	s.report()
	return s.scale
}

// WindowSize scales a logical size by the current percentage.
func (s *Scaler) WindowSize(width, height int) (int, int) {
	return dpi.ScaleLength(width, s.scale), dpi.ScaleLength(height, s.scale)
}

// UpdateFont swaps in a font sized for the current scale.
func (s *Scaler) UpdateFont() error {
	f, err := s.fonts.Replace(dpi.FontSize(s.scale))
	if err != nil {
		return err
	}
	if s.target != nil {
		s.target.SetFont(f)
	}
	return nil
}

// DPIChanged handles a DPI change notification: rescale, move to the
// suggested rectangle, regenerate the font and repaint.
func (s *Scaler) DPIChanged(d int, suggested monitor.Rect) error {
	s.SetDPI(d)
	if s.target != nil {
		if err := s.target.SetBounds(suggested); err != nil {
			return err
		}
	}
	if err := s.UpdateFont(); err != nil {
		return err
	}
	if s.target != nil {
		s.target.Redraw()
	}
	return nil
}

func (s *Scaler) report() {
	if s.log != nil {
		s.log.Printf("Currently: DPI=%d, scaling: %d%%\n", s.dpi, s.scale)
	}
}
