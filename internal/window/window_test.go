package window

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bcmister/mondpi/internal/monitor"
)

type fakeFont struct {
	size     int
	released int
}

func (f *fakeFont) Size() int { return f.size }

func (f *fakeFont) Release() error {
	f.released++
	return nil
}

type fontLog struct {
	created []*fakeFont
	fail    bool
}

func (l *fontLog) create(size int) (Font, error) {
	if l.fail {
		return nil, errors.New("CreateFontIndirect failed")
	}
	// Every earlier font must already be gone when a new one is made.
	for _, f := range l.created {
		if f.released == 0 {
			return nil, fmt.Errorf("font %d still live", f.size)
		}
	}
	f := &fakeFont{size: size}
	l.created = append(l.created, f)
	return f, nil
}

type fakeTarget struct {
	bounds  []monitor.Rect
	fonts   []Font
	redraws int
}

func (t *fakeTarget) SetBounds(r monitor.Rect) error {
	t.bounds = append(t.bounds, r)
	return nil
}

func (t *fakeTarget) SetFont(f Font) { t.fonts = append(t.fonts, f) }

func (t *fakeTarget) Redraw() { t.redraws++ }

type printer struct{ strings.Builder }

func (p *printer) Printf(format string, args ...any) {
	fmt.Fprintf(&p.Builder, format, args...)
}

func TestScalerStartup(t *testing.T) {
	fonts := &fontLog{}
	s := NewScaler(NewFontSlot(fonts.create))
	assert.Equal(t, 100, s.Scale())

	assert.Equal(t, 150, s.SetDPI(144))
	w, h := s.WindowSize(LogicalWidth, LogicalHeight)
	assert.Equal(t, 960, w)
	assert.Equal(t, 720, h)

	var log printer
	target := &fakeTarget{}
	s.Attach(target, &log)
	require.NoError(t, s.UpdateFont())

	assert.Equal(t, "Currently: DPI=144, scaling: 150%\n", log.String())
	require.Len(t, target.fonts, 1)
	assert.Equal(t, 25, target.fonts[0].Size())
}

func TestDPIChanged(t *testing.T) {
	fonts := &fontLog{}
	s := NewScaler(NewFontSlot(fonts.create))
	target := &fakeTarget{}
	var log printer
	s.SetDPI(96)
	s.Attach(target, &log)
	require.NoError(t, s.UpdateFont())
	first := fonts.created[0]
	assert.Equal(t, 17, first.size)

	rect := monitor.Rect{Left: 0, Top: 0, Right: 800, Bottom: 600}
	require.NoError(t, s.DPIChanged(192, rect))

	assert.Equal(t, 200, s.Scale())
	assert.Equal(t, 192, s.DPI())
	assert.Equal(t, []monitor.Rect{rect}, target.bounds)
	require.Len(t, fonts.created, 2)
	assert.Equal(t, 34, fonts.created[1].size)
	assert.Equal(t, 1, first.released, "previous font released exactly once")
	assert.Equal(t, 0, fonts.created[1].released)
	assert.Same(t, fonts.created[1], target.fonts[len(target.fonts)-1])
	assert.Equal(t, 1, target.redraws)
	assert.Contains(t, log.String(), "Currently: DPI=192, scaling: 200%\n")
}

func TestRepeatedDPIChangesKeepOneLiveFont(t *testing.T) {
	fonts := &fontLog{}
	slot := NewFontSlot(fonts.create)
	s := NewScaler(slot)
	s.Attach(&fakeTarget{}, nil)

	for _, d := range []int{96, 120, 144, 192, 96, 168} {
		require.NoError(t, s.DPIChanged(d, monitor.Rect{Right: 100, Bottom: 100}))
	}

	live := 0
	for _, f := range fonts.created {
		switch f.released {
		case 0:
			live++
		case 1:
		default:
			t.Fatalf("font of size %d released %d times", f.size, f.released)
		}
	}
	assert.Equal(t, 1, live)
	assert.Equal(t, 29, slot.Current().Size())

	slot.Close()
	assert.Nil(t, slot.Current())
	for _, f := range fonts.created {
		assert.Equal(t, 1, f.released)
	}
}

func TestFontFailure(t *testing.T) {
	fonts := &fontLog{fail: true}
	s := NewScaler(NewFontSlot(fonts.create))
	target := &fakeTarget{}
	s.Attach(target, nil)

	err := s.DPIChanged(144, monitor.Rect{Right: 10, Bottom: 10})
	require.Error(t, err)
	assert.Equal(t, 150, s.Scale())
	assert.Empty(t, target.fonts)
	assert.Equal(t, 0, target.redraws)
}

type dialogs struct {
	shown []string
}

func (d *dialogs) show(title, text string) {
	d.shown = append(d.shown, title+": "+text)
}

func TestWarnUnrecognizedShowsOneDialog(t *testing.T) {
	var d dialogs

	shown := WarnUnrecognized([]string{"-a", "b", "--c"}, d.show)

	assert.True(t, shown)
	require.Len(t, d.shown, 1, "one dialog for all unrecognized arguments")
	assert.Equal(t, "Warning: "+UnrecognizedWarning, d.shown[0])
}

func TestWarnUnrecognizedSilentWithoutArgs(t *testing.T) {
	var d dialogs

	assert.False(t, WarnUnrecognized(nil, d.show))
	assert.False(t, WarnUnrecognized([]string{}, d.show))
	assert.Empty(t, d.shown)
}
