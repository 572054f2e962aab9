package fluffy

import (
	"fmt"
	"math"
)

// ViewConfig holds the initial screen geometry and the zoom policy.
type ViewConfig struct {
	ScreenWidth  int
	ScreenHeight int

	// PixelsPerUnit is the initial scale, applied to x, y and z alike.
	PixelsPerUnit float64

	MinPixelsPerUnit     float64
	MaxPixelsPerUnit     float64
	DeepMaxPixelsPerUnit float64

	// ZoomStep is the additive step in normal mode.
	ZoomStep float64
	// DeepZoomInFactor and DeepZoomOutFactor are the multiplicative steps
	// in deep-zoom mode.
	DeepZoomInFactor  float64
	DeepZoomOutFactor float64

	Grid GridConfig
}

// DefaultViewConfig returns a 1280x768 screen at 100 pixels per unit.
func DefaultViewConfig() ViewConfig {
	return ViewConfig{
		ScreenWidth:          1280,
		ScreenHeight:         768,
		PixelsPerUnit:        100,
		MinPixelsPerUnit:     50,
		MaxPixelsPerUnit:     1000,
		DeepMaxPixelsPerUnit: 1e7,
		ZoomStep:             10,
		DeepZoomInFactor:     1.1,
		DeepZoomOutFactor:    1.5,
		Grid:                 DefaultGridConfig(),
	}
}

// View tracks the engineering to pixel transform of a screen and applies
// pan and zoom requests to it. A View is not safe for concurrent use.
type View struct {
	cfg    ViewConfig
	width  int
	height int
	ppu    float64
	deep   bool

	grid      GridConfig
	transform Matrix
	inverse   Matrix
}

// NewView validates cfg and builds the initial transform and grid.
func NewView(cfg ViewConfig) (*View, error) {
	if cfg.ScreenWidth <= 0 || cfg.ScreenHeight <= 0 {
		return nil, fmt.Errorf("new view %dx%d: %w", cfg.ScreenWidth, cfg.ScreenHeight, ErrInvalidScreen)
	}
	v := &View{
		cfg:    cfg,
		width:  cfg.ScreenWidth,
		height: cfg.ScreenHeight,
		ppu:    cfg.PixelsPerUnit,
		grid:   cfg.Grid,
	}
	if err := v.rebuild(); err != nil {
		return nil, err
	}
	return v, nil
}

// rebuild recomputes transform, inverse and grid geometry. The
// engineering offset always follows the grid centre so the grid stays
// centred on the screen.
func (v *View) rebuild() error {
	m := BuildTransform(v.grid.GridCenterValue, v.PixelsPerUnit(), v.ScreenCentre())
	if !m.IsInvertible() {
		return fmt.Errorf("rebuild view at %g px/unit: %w", v.ppu, ErrNonInvertibleTransform)
	}
	inv, err := m.Invert()
	if err != nil {
		return fmt.Errorf("rebuild view: %w", err)
	}
	v.transform = m
	v.inverse = inv
	v.grid = RebuildGrid(m, v.grid)
	return nil
}

// ScreenCentre returns the pixel centre of the screen.
func (v *View) ScreenCentre() Vec4 {
	return Point(float64(v.width/2), float64(v.height/2), 0)
}

// PixelsPerUnit returns the current scale as a Vector with equal x, y and z.
func (v *View) PixelsPerUnit() Vec4 {
	return Vector(v.ppu, v.ppu, v.ppu)
}

// Transform returns the engineering to pixel matrix.
func (v *View) Transform() Matrix { return v.transform }

// Inverse returns the pixel to engineering matrix.
func (v *View) Inverse() Matrix { return v.inverse }

// Grid returns the current grid with its pixel geometry.
func (v *View) Grid() GridConfig { return v.grid }

// Size returns the screen size in pixels.
func (v *View) Size() (width, height int) { return v.width, v.height }

// DeepZoom reports whether multiplicative deep-zoom steps are active.
func (v *View) DeepZoom() bool { return v.deep }

// SetDeepZoom switches between additive and multiplicative zoom steps.
// Leaving deep-zoom mode clamps the scale back into the normal range.
func (v *View) SetDeepZoom(on bool) error {
	v.deep = on
	if on {
		return nil
	}
	return v.setScale(v.ppu)
}

// PixelToEngineering maps a pixel position to engineering space.
func (v *View) PixelToEngineering(px, py float64) Vec4 {
	return v.inverse.Apply(Point(px, py, 0))
}

// ZoomIn increases the scale by one step.
func (v *View) ZoomIn() error {
	if v.deep {
		return v.setScale(v.ppu * v.cfg.DeepZoomInFactor)
	}
	return v.setScale(v.ppu + v.cfg.ZoomStep)
}

// ZoomOut decreases the scale by one step.
func (v *View) ZoomOut() error {
	if v.deep {
		return v.setScale(v.ppu / v.cfg.DeepZoomOutFactor)
	}
	return v.setScale(v.ppu - v.cfg.ZoomStep)
}

// setScale clamps ppu, rescales the grid dimensions so that the grid keeps
// its pixel footprint and rebuilds the transform.
func (v *View) setScale(ppu float64) error {
	hi := v.cfg.MaxPixelsPerUnit
	if v.deep {
		hi = v.cfg.DeepMaxPixelsPerUnit
	}
	ppu = math.Max(v.cfg.MinPixelsPerUnit, math.Min(ppu, hi))
	if ppu == v.ppu {
		return nil
	}

	prev := v.ppu
	prevDims := v.grid.GridDimensions
	v.ppu = ppu
	v.grid.GridDimensions = prevDims.Scale(prev / ppu)
	if err := v.rebuild(); err != nil {
		v.ppu = prev
		v.grid.GridDimensions = prevDims
		return err
	}
	return nil
}

// Recenter moves the grid centre to the engineering position under the
// pixel (px, py). Positions outside the grid are ignored and reported as
// false.
func (v *View) Recenter(px, py float64) (bool, error) {
	p := v.PixelToEngineering(px, py)
	if !v.grid.Contains(p) {
		return false, nil
	}
	prev := v.grid.GridCenterValue
	v.grid.GridCenterValue = Point(p.X, p.Y, 0)
	if err := v.rebuild(); err != nil {
		v.grid.GridCenterValue = prev
		return false, err
	}
	return true, nil
}

// Resize changes the screen size. The grid dimensions follow the screen
// proportionally so that the grid keeps covering the same share of it.
func (v *View) Resize(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("resize to %dx%d: %w", width, height, ErrInvalidScreen)
	}
	if width == v.width && height == v.height {
		return nil
	}
	d := v.grid.GridDimensions
	v.grid.GridDimensions = Vector(
		d.X*float64(width)/float64(v.width),
		d.Y*float64(height)/float64(v.height),
		d.Z,
	)
	v.width, v.height = width, height
	return v.rebuild()
}
