package fractal

import (
	"fmt"
	"math"

	fluffy "github.com/willyclarke/fluffy-palm-tree"
)

// ExplorerOption configures NewExplorer.
type ExplorerOption func(*Explorer)

// WithConstant sets the initial Julia constant.
func WithConstant(c Complex) ExplorerOption {
	return func(e *Explorer) {
		e.c = c
		e.walk.Current = c
	}
}

// WithWalk replaces the automatic constant walk.
func WithWalk(w ConstantWalk) ExplorerOption {
	return func(e *Explorer) {
		e.walk = w
	}
}

// WithRenderOptions passes opts to every render.
func WithRenderOptions(opts ...RenderOption) ExplorerOption {
	return func(e *Explorer) {
		e.renderOpts = append(e.renderOpts, opts...)
	}
}

// WithCanvasOptions passes opts to every canvas configuration.
func WithCanvasOptions(opts ...CanvasOption) ExplorerOption {
	return func(e *Explorer) {
		e.canvasOpts = append(e.canvasOpts, opts...)
	}
}

// Explorer ties a view, a render session and the Julia constant together
// and turns input events into re-renders. It is not safe for concurrent
// use.
type Explorer struct {
	view    *fluffy.View
	session *Session

	c        Complex
	walk     ConstantWalk
	auto     bool
	showGrid bool

	renderOpts []RenderOption
	canvasOpts []CanvasOption
}

// NewExplorer builds the view from cfg.
func NewExplorer(cfg fluffy.ViewConfig, opts ...ExplorerOption) (*Explorer, error) {
	v, err := fluffy.NewView(cfg)
	if err != nil {
		return nil, fmt.Errorf("new explorer: %w", err)
	}
	e := &Explorer{
		view:     v,
		c:        DefaultConstant,
		walk:     DefaultConstantWalk(),
		showGrid: true,
	}
	for _, opt := range opts {
		opt(e)
	}
	e.session = NewSession(e.renderOpts...)
	return e, nil
}

// View returns the underlying view.
func (e *Explorer) View() *fluffy.View { return e.view }

// Constant returns the current Julia constant.
func (e *Explorer) Constant() Complex { return e.c }

// AutoWalk reports whether Tick advances the constant.
func (e *Explorer) AutoWalk() bool { return e.auto }

// ShowGrid reports whether the grid overlay should be drawn.
func (e *Explorer) ShowGrid() bool { return e.showGrid }

// Apply handles one input event and reports whether the frame changed.
func (e *Explorer) Apply(ev Event) (bool, error) {
	switch ev.Kind {
	case EventZoomIn:
		return true, e.view.ZoomIn()
	case EventZoomOut:
		return true, e.view.ZoomOut()
	case EventRecenter:
		moved, err := e.view.Recenter(ev.X, ev.Y)
		if moved {
			e.session.Invalidate()
		}
		return moved, err
	case EventConstantDelta:
		e.c = Complex{Re: e.c.Re + ev.DX, Im: e.c.Im + ev.DY}
		e.walk.Current = e.c
		return true, nil
	case EventToggleAutoWalk:
		e.auto = !e.auto
		return false, nil
	case EventToggleDeepZoom:
		return false, e.view.SetDeepZoom(!e.view.DeepZoom())
	case EventToggleGrid:
		e.showGrid = !e.showGrid
		return true, nil
	case EventResize:
		return true, e.view.Resize(ev.Width, ev.Height)
	default:
		return false, fmt.Errorf("explorer: unknown event %v", ev.Kind)
	}
}

// Tick advances the constant walk when auto mode is on and reports
// whether the constant changed.
func (e *Explorer) Tick() bool {
	if !e.auto {
		return false
	}
	e.c = e.walk.Next()
	return true
}

// Canvas returns the canvas covering the grid, centred on the screen.
func (e *Explorer) Canvas() (PixelCanvas, error) {
	grid := e.view.Grid()
	ppu := e.view.PixelsPerUnit()
	centre := e.view.ScreenCentre()
	w := int(math.Round(grid.GridDimensions.X * ppu.X))
	h := int(math.Round(grid.GridDimensions.Y * ppu.Y))
	res := int(math.Round(ppu.X))
	return ConfigureCanvas(int(centre.X), int(centre.Y), w, h, res, res, e.canvasOpts...)
}

// Frame renders the current view if anything changed since the last call.
func (e *Explorer) Frame() (Frame, error) {
	canvas, err := e.Canvas()
	if err != nil {
		return Frame{}, err
	}
	return e.session.Render(e.view.Grid(), canvas, e.view.PixelsPerUnit(), e.c)
}

// Close releases the render buffer.
func (e *Explorer) Close() {
	e.session.Close()
}
