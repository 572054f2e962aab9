package main

import (
	"errors"
	"image"
	"image/color"
	"image/draw"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	fluffy "github.com/willyclarke/fluffy-palm-tree"
	"github.com/willyclarke/fluffy-palm-tree/fractal"
	"github.com/willyclarke/fluffy-palm-tree/overlay"
)

const constantStep = 0.01

var keyEvents = []struct {
	key ebiten.Key
	ev  fractal.Event
}{
	{ebiten.KeyArrowUp, fractal.ZoomIn()},
	{ebiten.KeyArrowDown, fractal.ZoomOut()},
	{ebiten.KeyD, fractal.Toggle(fractal.EventToggleDeepZoom)},
	{ebiten.KeyA, fractal.Toggle(fractal.EventToggleAutoWalk)},
	{ebiten.KeyG, fractal.Toggle(fractal.EventToggleGrid)},
	{ebiten.KeyQ, fractal.ConstantDelta(-constantStep, 0)},
	{ebiten.KeyE, fractal.ConstantDelta(constantStep, 0)},
	{ebiten.KeyW, fractal.ConstantDelta(0, constantStep)},
	{ebiten.KeyS, fractal.ConstantDelta(0, -constantStep)},
}

// game adapts an Explorer to ebiten.Game.
type game struct {
	ex *fractal.Explorer

	frame   *image.RGBA
	texture *ebiten.Image
	dirty   bool
	stats   fractal.Stats

	// layoutW and layoutH are the latest sizes reported by Layout.
	layoutW, layoutH int

	printer *message.Printer
}

func newGame(ex *fractal.Explorer) *game {
	w, h := ex.View().Size()
	return &game{
		ex:      ex,
		dirty:   true,
		layoutW: w,
		layoutH: h,
		printer: message.NewPrinter(language.English),
	}
}

// events converts this tick's input into explorer events.
func (g *game) events() []fractal.Event {
	var evs []fractal.Event
	if w, h := g.ex.View().Size(); w != g.layoutW || h != g.layoutH {
		evs = append(evs, fractal.Resize(g.layoutW, g.layoutH))
	}
	for _, k := range keyEvents {
		if inpututil.IsKeyJustPressed(k.key) {
			evs = append(evs, k.ev)
		}
	}
	if _, dy := ebiten.Wheel(); dy > 0 {
		evs = append(evs, fractal.ZoomIn())
	} else if dy < 0 {
		evs = append(evs, fractal.ZoomOut())
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		evs = append(evs, fractal.Recenter(float64(x), float64(y)))
	}
	return evs
}

func (g *game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	for _, ev := range g.events() {
		changed, err := g.ex.Apply(ev)
		if err != nil {
			fluffy.Logger().Warn("juliaview: event rejected", "event", ev.Kind, "err", err)
			continue
		}
		g.dirty = g.dirty || changed
	}
	if g.ex.Tick() {
		g.dirty = true
	}
	if !g.dirty {
		return nil
	}
	g.dirty = false
	return g.compose()
}

// compose renders the fractal if needed, places it on a screen-sized image
// and draws the grid over it.
func (g *game) compose() error {
	f, err := g.ex.Frame()
	if err != nil {
		if errors.Is(err, fractal.ErrNonInvertibleTransform) {
			return err
		}
		fluffy.Logger().Warn("juliaview: render skipped", "err", err)
		return nil
	}
	if f.Rendered {
		g.stats = f.Stats
	}

	w, h := g.ex.View().Size()
	if g.frame == nil || g.frame.Bounds().Dx() != w || g.frame.Bounds().Dy() != h {
		g.frame = image.NewRGBA(image.Rect(0, 0, w, h))
		if g.texture != nil {
			g.texture.Deallocate()
		}
		g.texture = ebiten.NewImage(w, h)
	}
	draw.Draw(g.frame, g.frame.Bounds(), image.NewUniform(color.Black), image.Point{}, draw.Src)

	ul := image.Pt(int(f.Canvas.PosUL.X), int(f.Canvas.PosUL.Y))
	dst := image.Rectangle{Min: ul, Max: ul.Add(f.Buffer.Bounds().Size())}
	draw.Draw(g.frame, dst, f.Buffer.Image(), image.Point{}, draw.Src)

	if g.ex.ShowGrid() {
		overlay.Draw(g.frame, g.ex.View().Grid())
	}
	g.texture.WritePixels(g.frame.Pix)
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	if g.texture != nil {
		screen.DrawImage(g.texture, &ebiten.DrawImageOptions{})
	}
	c := g.ex.Constant()
	mode := "normal"
	if g.ex.View().DeepZoom() {
		mode = "deep"
	}
	hud := g.printer.Sprintf("zoom %.1f px/unit (%s)\nc = %.4f %+.4fi\nbands %d  last render %v\nTPS %.1f",
		g.ex.View().PixelsPerUnit().X, mode, c.Re, c.Im,
		g.stats.Threads, g.stats.Elapsed.Round(100*time.Microsecond), ebiten.ActualTPS())
	ebitenutil.DebugPrintAt(screen, hud, 8, 8)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth > 0 && outsideHeight > 0 {
		g.layoutW, g.layoutH = outsideWidth, outsideHeight
	}
	return g.layoutW, g.layoutH
}
