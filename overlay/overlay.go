// Package overlay draws the grid lines and axis labels of a
// fluffy.GridConfig on top of a rendered image.
package overlay

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	fluffy "github.com/willyclarke/fluffy-palm-tree"
)

// Option configures Draw.
type Option func(*options)

type options struct {
	line       color.Color
	subdivider color.Color
	label      color.Color
	offset     image.Point
	face       font.Face
}

func defaultOptions() options {
	return options{
		line:       color.RGBA{R: 0xC8, G: 0xC8, B: 0xC8, A: 0xFF},
		subdivider: color.RGBA{R: 0x50, G: 0x50, B: 0x50, A: 0xFF},
		label:      color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF},
		face:       basicfont.Face7x13,
	}
}

// WithLineColor sets the color of the frame, centre lines and ticks.
func WithLineColor(c color.Color) Option {
	return func(o *options) { o.line = c }
}

// WithSubdividerColor sets the color of the full-span sub-divider lines.
func WithSubdividerColor(c color.Color) Option {
	return func(o *options) { o.subdivider = c }
}

// WithLabelColor sets the axis label color.
func WithLabelColor(c color.Color) Option {
	return func(o *options) { o.label = c }
}

// WithOffset shifts every grid coordinate by off before drawing. Use it
// when dst covers only part of the screen, e.g. -canvas.PosUL.
func WithOffset(off image.Point) Option {
	return func(o *options) { o.offset = off }
}

// WithFace replaces the label font face.
func WithFace(f font.Face) Option {
	return func(o *options) { o.face = f }
}

// Draw renders grid onto dst. Sub-dividers go first so that ticks and
// the frame stay on top; labels are drawn last. Anything outside dst's
// bounds is clipped.
func Draw(dst draw.Image, grid fluffy.GridConfig, opts ...Option) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	for _, l := range grid.SubdividerLines {
		line(dst, l.From.Add(o.offset), l.To.Add(o.offset), o.subdivider)
	}
	for _, l := range grid.GridLines {
		line(dst, l.From.Add(o.offset), l.To.Add(o.offset), o.line)
	}

	d := &font.Drawer{Dst: dst, Src: image.NewUniform(o.label), Face: o.face}
	ascent := o.face.Metrics().Ascent.Ceil()
	for _, l := range grid.GridLines {
		from := l.From.Add(o.offset)
		if l.LabelX != "" {
			// Centred under the tick.
			w := d.MeasureString(l.LabelX).Ceil()
			d.Dot = fixed.P(from.X-w/2, from.Y+ascent+2)
			d.DrawString(l.LabelX)
		}
		if l.LabelY != "" {
			to := l.To.Add(o.offset)
			d.Dot = fixed.P(to.X+3, from.Y+ascent/2)
			d.DrawString(l.LabelY)
		}
	}
}

// line draws a one pixel wide segment from a to b, both ends included.
func line(dst draw.Image, a, b image.Point, c color.Color) {
	bounds := dst.Bounds()
	dx := abs(b.X - a.X)
	dy := -abs(b.Y - a.Y)
	sx, sy := 1, 1
	if a.X > b.X {
		sx = -1
	}
	if a.Y > b.Y {
		sy = -1
	}
	err := dx + dy
	x, y := a.X, a.Y
	for {
		if (image.Point{X: x, Y: y}).In(bounds) {
			dst.Set(x, y, c)
		}
		if x == b.X && y == b.Y {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x += sx
		}
		if e2 <= dx {
			err += dx
			y += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
