package fractal

import (
	"fmt"
	"runtime"

	fluffy "github.com/willyclarke/fluffy-palm-tree"
	"github.com/willyclarke/fluffy-palm-tree/internal/parallel"
)

// PixelCanvas is the device-space rectangle a fractal is rendered into,
// together with its row-band layout.
type PixelCanvas struct {
	// Dimension holds width (X) and height (Y) in pixels.
	Dimension fluffy.Vec4

	PosUL, PosUR, PosLL, PosLR fluffy.Vec4

	// ResolutionX and ResolutionY are pixels per engineering unit.
	ResolutionX int
	ResolutionY int

	NThreads int
	// YIncrement is the nominal band height, Height / NThreads.
	YIncrement float64

	// ScreenToPixel is T(centre) * S(resX, -resY, 0). It drops z and is
	// therefore never invertible.
	ScreenToPixel fluffy.Matrix
}

// CanvasOption configures ConfigureCanvas.
type CanvasOption func(*canvasOptions)

type canvasOptions struct {
	threads int
}

// WithThreads fixes the number of worker bands. Values below 1 fall back
// to GOMAXPROCS.
func WithThreads(n int) CanvasOption {
	return func(o *canvasOptions) {
		o.threads = n
	}
}

// ConfigureCanvas lays out a width x height canvas centred at (cx, cy) in
// pixel space. The band count defaults to GOMAXPROCS.
func ConfigureCanvas(cx, cy, width, height, resX, resY int, opts ...CanvasOption) (PixelCanvas, error) {
	if width <= 0 || height <= 0 {
		return PixelCanvas{}, fmt.Errorf("configure canvas %dx%d: %w", width, height, ErrInvalidCanvasDimensions)
	}
	var o canvasOptions
	for _, opt := range opts {
		opt(&o)
	}
	n := o.threads
	if n < 1 {
		n = max(runtime.GOMAXPROCS(0), 1)
	}

	w, h := float64(width), float64(height)
	ul := fluffy.Point(float64(cx-width>>1), float64(cy-height>>1), 0)
	centre := ul.Add(fluffy.Vector(w/2, h/2, 0))

	return PixelCanvas{
		Dimension:   fluffy.Vector(w, h, 0),
		PosUL:       ul,
		PosUR:       ul.Add(fluffy.Vector(w, 0, 0)),
		PosLL:       ul.Add(fluffy.Vector(0, h, 0)),
		PosLR:       ul.Add(fluffy.Vector(w, h, 0)),
		ResolutionX: resX,
		ResolutionY: resY,
		NThreads:    n,
		YIncrement:  h / float64(n),
		ScreenToPixel: fluffy.Translation(centre).
			Multiply(fluffy.Scaling(fluffy.Vector(float64(resX), float64(-resY), 0), false)),
	}, nil
}

// Width returns the canvas width in pixels.
func (c PixelCanvas) Width() int { return int(c.Dimension.X) }

// Height returns the canvas height in pixels.
func (c PixelCanvas) Height() int { return int(c.Dimension.Y) }

// Valid reports whether both dimensions are positive.
func (c PixelCanvas) Valid() bool {
	return c.Width() > 0 && c.Height() > 0
}

// Bands returns the NThreads row bands covering [0, Height). Band i starts
// at row i*Height/NThreads; the last band ends at Height.
func (c PixelCanvas) Bands() []Band {
	return parallel.Partition(c.Height(), c.NThreads)
}

// Band is a half-open row range [Start, End) of a canvas.
type Band = parallel.Band
