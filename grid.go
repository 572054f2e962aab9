package fluffy

import (
	"fmt"
	"image"
)

// Grid defaults.
const (
	DefaultTickDistance = 0.1
	// SubdividerEvery promotes every n-th tick to a labelled sub-divider.
	SubdividerEvery = 5
)

// GridLine is a segment in pixel space with optional axis labels.
type GridLine struct {
	From, To image.Point
	LabelX   string
	LabelY   string
}

// GridConfig describes a grid in engineering space and carries the pixel
// geometry derived from it by RebuildGrid.
type GridConfig struct {
	// TickDistance is the engineering distance between minor ticks.
	TickDistance float64
	// GridDimensions holds length (X) and height (Y) in engineering units.
	GridDimensions Vec4
	// GridCenterValue is the engineering point at the centre of the grid.
	GridCenterValue Vec4

	// Derived by RebuildGrid.
	GridScreenCentre Vec4
	Transform        Matrix
	GridLines        []GridLine
	SubdividerLines  []GridLine
}

// DefaultGridConfig returns an 8x6 grid centred on the engineering origin.
func DefaultGridConfig() GridConfig {
	return GridConfig{
		TickDistance:    DefaultTickDistance,
		GridDimensions:  Vector(8, 6, 0),
		GridCenterValue: Point(0, 0, 0),
	}
}

// GridToEngineering returns the translation from grid space, whose origin
// is the grid centre, to engineering space.
func (g GridConfig) GridToEngineering() Matrix {
	return Translation(g.GridCenterValue)
}

// LowerLeft returns the engineering position of the lower left corner.
func (g GridConfig) LowerLeft() Vec4 {
	return g.GridCenterValue.Sub(g.GridDimensions.Scale(0.5))
}

// UpperLeft returns the engineering position of the upper left corner.
func (g GridConfig) UpperLeft() Vec4 {
	return Point(
		g.GridCenterValue.X-g.GridDimensions.X/2,
		g.GridCenterValue.Y+g.GridDimensions.Y/2,
		g.GridCenterValue.Z,
	)
}

// Contains reports whether the engineering point p lies inside the grid
// rectangle, edges included.
func (g GridConfig) Contains(p Vec4) bool {
	ll := g.LowerLeft()
	return p.X >= ll.X && p.X <= ll.X+g.GridDimensions.X &&
		p.Y >= ll.Y && p.Y <= ll.Y+g.GridDimensions.Y
}

// RebuildGrid returns cfg with its pixel geometry regenerated for
// transform, the engineering to pixel matrix. It does not modify cfg.
//
// GridLines holds the border (left, lower, right, upper), the horizontal
// and vertical centre lines, then the X ticks and the Y ticks.
// SubdividerLines holds one full-span line per labelled tick.
func RebuildGrid(transform Matrix, cfg GridConfig) GridConfig {
	out := cfg
	out.Transform = transform
	out.GridLines = nil
	out.SubdividerLines = nil

	g2e := cfg.GridToEngineering()
	g2p := transform.Multiply(g2e)
	pixel := func(x, y float64) image.Point {
		p := g2p.Apply(Point(x, y, 0))
		return image.Pt(int(p.X), int(p.Y))
	}
	line := func(x0, y0, x1, y1 float64) GridLine {
		return GridLine{From: pixel(x0, y0), To: pixel(x1, y1)}
	}

	w := cfg.GridDimensions.X
	h := cfg.GridDimensions.Y
	llx, lly := -w/2, -h/2

	out.GridLines = append(out.GridLines,
		line(llx, lly, llx, lly+h),
		line(llx, lly, llx+w, lly),
		line(llx+w, lly, llx+w, lly+h),
		line(llx, lly+h, llx+w, lly+h),
		line(llx, lly+h/2, llx+w, lly+h/2),
		line(llx+w/2, lly, llx+w/2, lly+h),
	)

	tick := cfg.TickDistance
	if tick <= 0 {
		out.GridScreenCentre = g2p.Apply(Point(0, 0, 0))
		return out
	}

	numX := int(w / tick)
	for i := range numX {
		x0 := llx + float64(i)*tick
		gl := line(x0, lly+h/2, x0, lly+h/2+tick/2)
		if i != 0 && i%SubdividerEvery == 0 {
			gl.LabelX = fmt.Sprintf("%.1f", g2e.Apply(Point(x0, 0, 0)).X)
			out.SubdividerLines = append(out.SubdividerLines, line(x0, lly, x0, lly+h))
		}
		out.GridLines = append(out.GridLines, gl)
	}

	numY := int(h / tick)
	for i := range numY {
		y0 := lly + float64(i)*tick
		gl := line(llx+w/2, y0, llx+w/2+tick/2, y0)
		if i != 0 && i%SubdividerEvery == 0 {
			gl.LabelY = fmt.Sprintf("%.1f", g2e.Apply(Point(0, y0, 0)).Y)
			out.SubdividerLines = append(out.SubdividerLines, line(llx, y0, llx+w, y0))
		}
		out.GridLines = append(out.GridLines, gl)
	}

	out.GridScreenCentre = g2p.Apply(Point(0, 0, 0))
	return out
}
