//go:build ebiten

package app

import (
	"math"
	"time"

	"cellgrid/internal/gridview"
	"cellgrid/internal/render"
	"cellgrid/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// dragThreshold is how far, in logical pixels, a press may move and still
// count as a tap.
const dragThreshold = 4

// Game adapts a Session to the ebiten.Game interface.
type Game struct {
	session *Session
	painter *render.GridPainter
	hud     *ui.HUD
	overlay *ui.Overlay

	press    *pressState
	pinch    *pinchState
	touchIDs []ebiten.TouchID
	chars    []rune
	quit     bool
}

type pressState struct {
	start   gridview.Point
	touch   ebiten.TouchID
	isTouch bool
	moved   bool
}

type pinchState struct {
	a, b     ebiten.TouchID
	distance float64
}

// ebitenScreen reports the monitor's device scale.
type ebitenScreen struct{ w, h int }

func (s ebitenScreen) Scale() float64 { return ebiten.DeviceScaleFactor() }

func (s ebitenScreen) Width() int  { return s.w }
func (s ebitenScreen) Height() int { return s.h }

// New constructs a Game for cfg. The window is sized to the view plus the
// parameter panel.
func New(cfg *Config) (*Game, error) {
	g := &Game{painter: render.NewGridPainter()}
	w, h := ebiten.ScreenSizeInFullscreen()
	observer := gridview.ObserverFuncs{OnImageChanged: g.painter.Invalidate}
	s, err := NewSession(cfg, ebitenScreen{w: w, h: h}, observer)
	if err != nil {
		return nil, err
	}
	g.session = s
	g.hud = ui.NewHUD(s.View, s.Title(), cfg.PanelWidth)
	g.overlay = ui.NewOverlay(func() []string {
		return append(s.Status().Lines(), ui.Help...)
	})
	return g, nil
}

// Session returns the driven session.
func (g *Game) Session() *Session { return g.session }

// WindowSize returns the logical size the window should open at.
func (g *Game) WindowSize() (int, int) {
	l := g.session.View.State().Logical()
	return l.ViewWidth + g.hud.Width(), l.ViewHeight
}

// Update handles per-frame input and advances the automation.
func (g *Game) Update() error {
	if g.quit || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	g.handleKeys()
	if g.quit {
		return ebiten.Termination
	}
	g.overlay.Update()

	viewWidth := g.session.View.State().Logical().ViewWidth
	if !g.hud.Update(viewWidth) {
		g.handleMouse(viewWidth)
	}
	g.handleTouches()
	g.session.Automation.Tick(time.Now())
	g.hud.SetStatus(g.session.Status())
	return nil
}

func (g *Game) handleKeys() {
	keys := map[ebiten.Key]Command{
		ebiten.KeyArrowLeft:  CmdPanLeft,
		ebiten.KeyArrowRight: CmdPanRight,
		ebiten.KeyArrowUp:    CmdPanUp,
		ebiten.KeyArrowDown:  CmdPanDown,
		ebiten.KeyEnter:      CmdStep,
	}
	for k, cmd := range keys {
		if inpututil.IsKeyJustPressed(k) {
			g.session.Apply(cmd)
		}
	}
	g.chars = ebiten.AppendInputChars(g.chars[:0])
	for _, r := range g.chars {
		if !g.session.Apply(CommandForRune(r)) {
			g.quit = true
		}
	}
}

func (g *Game) handleMouse(viewWidth int) {
	_, wheel := ebiten.Wheel()
	if wheel != 0 {
		g.session.Actions.ZoomStep(int(math.Copysign(1, wheel)))
	}

	x, y := ebiten.CursorPosition()
	p := gridview.Point{X: float64(x), Y: float64(y)}
	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		if x < viewWidth {
			g.press = &pressState{start: p}
		}
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
		g.pointerMoved(p, false)
	case inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft):
		g.pointerReleased(p, false)
	}
}

func (g *Game) handleTouches() {
	g.touchIDs = ebiten.AppendTouchIDs(g.touchIDs[:0])
	if len(g.touchIDs) >= 2 {
		g.handlePinch(g.touchIDs[0], g.touchIDs[1])
		return
	}
	if g.pinch != nil {
		g.session.Actions.OnZoomEnd(g.pinchFactor())
		g.pinch = nil
		g.press = nil
		return
	}
	for _, id := range inpututil.AppendJustPressedTouchIDs(nil) {
		x, y := ebiten.TouchPosition(id)
		g.press = &pressState{start: gridview.Point{X: float64(x), Y: float64(y)}, touch: id, isTouch: true}
	}
	if g.press == nil || !g.press.isTouch {
		return
	}
	id := g.press.touch
	if inpututil.IsTouchJustReleased(id) {
		x, y := inpututil.TouchPositionInPreviousTick(id)
		g.pointerReleased(gridview.Point{X: float64(x), Y: float64(y)}, true)
		return
	}
	x, y := ebiten.TouchPosition(id)
	g.pointerMoved(gridview.Point{X: float64(x), Y: float64(y)}, true)
}

func (g *Game) handlePinch(a, b ebiten.TouchID) {
	if g.press != nil && g.press.moved {
		g.session.Actions.OnDragEnd(g.press.start)
	}
	g.press = nil
	ax, ay := ebiten.TouchPosition(a)
	bx, by := ebiten.TouchPosition(b)
	d := math.Hypot(float64(ax-bx), float64(ay-by))
	if g.pinch == nil || g.pinch.a != a || g.pinch.b != b {
		if d <= 0 {
			return
		}
		g.pinch = &pinchState{a: a, b: b, distance: d}
		return
	}
	mid := gridview.Point{X: float64(ax+bx) / 2, Y: float64(ay+by) / 2}
	g.session.Actions.OnZoomAt(d/g.pinch.distance, mid)
}

func (g *Game) pinchFactor() float64 {
	ax, ay := inpututil.TouchPositionInPreviousTick(g.pinch.a)
	bx, by := inpututil.TouchPositionInPreviousTick(g.pinch.b)
	d := math.Hypot(float64(ax-bx), float64(ay-by))
	if d <= 0 || g.pinch.distance <= 0 {
		return 1
	}
	return d / g.pinch.distance
}

func (g *Game) pointerMoved(p gridview.Point, touch bool) {
	if g.press == nil || g.press.isTouch != touch {
		return
	}
	if !g.press.moved {
		if math.Hypot(p.X-g.press.start.X, p.Y-g.press.start.Y) < dragThreshold {
			return
		}
		g.press.moved = true
		g.session.Actions.OnDrag(g.press.start)
	}
	g.session.Actions.OnDrag(p)
}

func (g *Game) pointerReleased(p gridview.Point, touch bool) {
	if g.press == nil || g.press.isTouch != touch {
		return
	}
	if g.press.moved {
		g.session.Actions.OnDragEnd(p)
	} else {
		g.session.Actions.OnTap(g.press.start)
	}
	g.press = nil
}

// Draw renders the view, the panel and the overlay.
func (g *Game) Draw(screen *ebiten.Image) {
	v := g.session.View
	scale := 1.0
	if sc := v.State().Scaler(); sc.Enabled {
		scale = sc.Factor
	}
	g.painter.Blit(screen, v.Buffer(), scale)
	l := v.State().Logical()
	g.hud.Draw(screen, l.ViewWidth, l.ViewHeight)
	g.overlay.Draw(screen)
}

// Layout follows the window: the view takes whatever the panel leaves.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	v := g.session.View
	c := v.Config()
	w := max(outsideWidth-g.hud.Width(), 1)
	if w != c.ViewWidth || outsideHeight != c.ViewHeight {
		v.SetViewSize(w, outsideHeight)
	}
	return outsideWidth, outsideHeight
}
