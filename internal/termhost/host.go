// Package termhost shows a GridView in a terminal. Each character cell
// carries two vertically stacked pixels drawn as an upper half block.
package termhost

import (
	"context"
	"time"

	"cellgrid/internal/app"
	"cellgrid/internal/core"
	"cellgrid/internal/gridview"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

const upperHalf = '▀'

// Host drives a Session from a tcell screen.
type Host struct {
	screen  tcell.Screen
	session *app.Session
	dirty   bool

	pressed bool
	moved   bool
	start   gridview.Point
}

// ViewSize returns the pixel size of a view filling a w×h terminal whose
// last row is the status bar.
func ViewSize(w, h int) (int, int) {
	return max(w, 1), max(2*(h-1), 2)
}

// New wraps screen, which must already be initialized, and sizes the
// session's view to it.
func New(screen tcell.Screen, session *app.Session) *Host {
	h := &Host{screen: screen, session: session, dirty: true}
	session.View.SetObserver(gridview.ObserverFuncs{OnImageChanged: func() { h.dirty = true }})
	h.resize()
	return h
}

func (h *Host) resize() {
	w, rows := h.screen.Size()
	vw, vh := ViewSize(w, rows)
	h.session.View.SetViewSize(vw, vh)
	h.dirty = true
}

// Dirty reports whether the view changed since the last Paint.
func (h *Host) Dirty() bool { return h.dirty }

// Paint copies the view's buffer to the screen and draws the status bar.
func (h *Host) Paint() {
	buf := h.session.View.Buffer()
	w, rows := h.screen.Size()
	bg := h.session.View.State().BackgroundRaw()
	for y := 0; y < rows-1; y++ {
		for x := 0; x < w; x++ {
			top := pixel(buf.At(x, 2*y))
			bottom := pixel(buf.At(x, 2*y+1))
			style := tcell.StyleDefault.
				Foreground(termColor(top, bg)).
				Background(termColor(bottom, bg))
			h.screen.SetContent(x, y, upperHalf, nil, style)
		}
	}
	h.drawStatus(rows-1, w, h.session.Status().Line())
	h.screen.Show()
	h.dirty = false
}

func pixel(c core.Color, ok bool) core.Color {
	if !ok {
		return core.Black
	}
	return c
}

// termColor flattens c over the view background, which is what a
// translucent buffer would show over an opaque window.
func termColor(c, bg core.Color) tcell.Color {
	if c.A() != core.Opaque {
		c = c.WithAlpha(core.Opaque).Lerp(bg.WithAlpha(core.Opaque), float32(c.A())/255)
	}
	return tcell.NewRGBColor(int32(c.R()), int32(c.G()), int32(c.B()))
}

func (h *Host) drawStatus(y, w int, line string) {
	if y < 0 {
		return
	}
	style := tcell.StyleDefault.Foreground(tcell.ColorSilver).Background(tcell.ColorBlack)
	line = runewidth.Truncate(line, w, "…")
	x := 0
	for _, r := range line {
		h.screen.SetContent(x, y, r, nil, style)
		x += max(runewidth.RuneWidth(r), 1)
	}
	for ; x < w; x++ {
		h.screen.SetContent(x, y, ' ', nil, style)
	}
}

// HandleEvent applies one terminal event and reports whether the host
// should keep running.
func (h *Host) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		h.screen.Sync()
		h.resize()
	case *tcell.EventKey:
		h.dirty = true
		return h.handleKey(ev)
	case *tcell.EventMouse:
		h.dirty = true
		h.handleMouse(ev)
	}
	return true
}

func (h *Host) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyLeft:
		return h.session.Apply(app.CmdPanLeft)
	case tcell.KeyRight:
		return h.session.Apply(app.CmdPanRight)
	case tcell.KeyUp:
		return h.session.Apply(app.CmdPanUp)
	case tcell.KeyDown:
		return h.session.Apply(app.CmdPanDown)
	case tcell.KeyEnter:
		return h.session.Apply(app.CmdStep)
	case tcell.KeyRune:
		return h.session.Apply(app.CommandForRune(ev.Rune()))
	}
	return true
}

// handleMouse maps terminal cells to view pixels: one column is one pixel,
// one row two.
func (h *Host) handleMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	p := gridview.Point{X: float64(x), Y: float64(2 * y)}
	a := h.session.Actions
	buttons := ev.Buttons()
	switch {
	case buttons&tcell.WheelUp != 0:
		a.ZoomStep(1)
	case buttons&tcell.WheelDown != 0:
		a.ZoomStep(-1)
	case buttons&tcell.Button1 != 0:
		if !h.pressed {
			h.pressed, h.moved, h.start = true, false, p
			return
		}
		if p != h.start || h.moved {
			if !h.moved {
				a.OnDrag(h.start)
				h.moved = true
			}
			a.OnDrag(p)
		}
	case h.pressed:
		if h.moved {
			a.OnDragEnd(p)
		} else {
			a.OnTap(h.start)
		}
		h.pressed = false
	}
}

// Run polls events and ticks the automation every tick until ctx is done or
// a quit key is pressed.
func (h *Host) Run(ctx context.Context, tick time.Duration) {
	events := make(chan tcell.Event, 16)
	done := make(chan struct{})
	defer close(done)
	go h.pollEvents(events, done)

	ticker := time.NewTicker(tick)
	defer ticker.Stop()
	h.Paint()
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-events:
			if !ok || !h.HandleEvent(ev) {
				return
			}
		case now := <-ticker.C:
			h.session.Automation.Tick(now)
		}
		if h.dirty {
			h.Paint()
		}
	}
}

// pollEvents forwards screen events until the screen is finalized or done
// is closed. events is closed when the screen stops delivering.
func (h *Host) pollEvents(events chan<- tcell.Event, done <-chan struct{}) {
	for {
		ev := h.screen.PollEvent()
		if ev == nil {
			close(events)
			return
		}
		select {
		case events <- ev:
		case <-done:
			return
		}
	}
}
