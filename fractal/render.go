package fractal

import (
	"errors"
	"fmt"
	"time"

	fluffy "github.com/willyclarke/fluffy-palm-tree"
	"github.com/willyclarke/fluffy-palm-tree/internal/parallel"
)

// RenderState is the phase of a single render request.
type RenderState int

const (
	StateIdle RenderState = iota
	StatePartitioned
	StateRendering
	StateComplete
)

func (s RenderState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StatePartitioned:
		return "partitioned"
	case StateRendering:
		return "rendering"
	case StateComplete:
		return "complete"
	default:
		return fmt.Sprintf("RenderState(%d)", int(s))
	}
}

// Stats describes a finished render.
type Stats struct {
	Threads int
	// Degraded is set when a band could not be started and the canvas was
	// rendered on the calling goroutine.
	Degraded bool
	Elapsed  time.Duration
}

// Window is the engineering rectangle a render covers.
type Window struct {
	UL, UR, LR fluffy.Vec4
}

// WindowFor returns the engineering rectangle centred on the grid centre
// with the grid dimensions.
func WindowFor(grid fluffy.GridConfig) Window {
	c := grid.GridCenterValue
	half := grid.GridDimensions.Scale(0.5)
	return Window{
		UL: fluffy.Point(c.X-half.X, c.Y+half.Y, 0),
		UR: fluffy.Point(c.X+half.X, c.Y+half.Y, 0),
		LR: fluffy.Point(c.X+half.X, c.Y-half.Y, 0),
	}
}

// task is the by-value input of one worker.
type task struct {
	band    Band
	width   int
	step    float64
	left    float64
	right   float64
	top     float64 // engineering y of row 0
	bottom  float64
	c       Complex
	maxIter int
	dst     []uint8
}

// RenderFractal renders the Julia set for constant c into a new buffer
// sized to canvas and blocks until every band is written.
//
// zoom.X is the number of pixels per engineering unit; each pixel steps
// the engineering position by 1/zoom.X in both axes.
func RenderFractal(grid fluffy.GridConfig, canvas PixelCanvas, zoom fluffy.Vec4, c Complex, opts ...RenderOption) (*ColorBuffer, error) {
	if err := validate(grid, canvas, zoom); err != nil {
		return nil, err
	}
	buf, err := NewColorBuffer(canvas.Width(), canvas.Height())
	if err != nil {
		return nil, err
	}
	if _, err := RenderInto(buf, grid, canvas, zoom, c, opts...); err != nil {
		return nil, err
	}
	return buf, nil
}

// RenderInto is RenderFractal writing into an existing buffer, which must
// match the canvas size. The buffer must not be read until RenderInto
// returns.
func RenderInto(buf *ColorBuffer, grid fluffy.GridConfig, canvas PixelCanvas, zoom fluffy.Vec4, c Complex, opts ...RenderOption) (Stats, error) {
	o := buildRenderOptions(opts)
	state := func(s RenderState) {
		if o.stateHook != nil {
			o.stateHook(s)
		}
	}
	state(StateIdle)

	if err := validate(grid, canvas, zoom); err != nil {
		return Stats{}, err
	}
	if buf == nil || buf.Width() != canvas.Width() || buf.Height() != canvas.Height() {
		return Stats{}, fmt.Errorf("render %dx%d: %w", canvas.Width(), canvas.Height(), ErrBufferSize)
	}

	start := time.Now()
	bands := canvas.Bands()
	if err := parallel.Covers(bands, canvas.Height()); err != nil {
		return Stats{}, fmt.Errorf("render: %w", err)
	}
	win := WindowFor(grid)
	tasks := partition(buf, bands, win, canvas, zoom.X, c, o.maxIterations)
	state(StatePartitioned)

	log := fluffy.Logger()
	if o.verbose {
		log.Debug("fractal: partitioned",
			"width", canvas.Width(), "height", canvas.Height(),
			"threads", canvas.NThreads, "y_increment", canvas.YIncrement,
			"block_eng_height", grid.GridDimensions.Y/float64(canvas.NThreads),
			"ul", win.UL, "lr", win.LR, "zoom", zoom.X)
	}

	state(StateRendering)
	stats := Stats{Threads: canvas.NThreads}
	err := o.executor.Run(bands, func(b Band) error {
		t0 := time.Now()
		renderBand(tasks[b.Index])
		if o.verbose {
			log.Debug("fractal: band done", "band", b.Index, "rows", b.Rows(), "elapsed", time.Since(t0))
		}
		return nil
	})
	switch {
	case errors.Is(err, parallel.ErrSpawnRefused):
		log.Warn("fractal: worker spawn refused, rendering single-threaded", "height", canvas.Height())
		full := partition(buf, []Band{{Start: 0, End: canvas.Height()}}, win, canvas, zoom.X, c, o.maxIterations)
		renderBand(full[0])
		stats.Threads = 1
		stats.Degraded = true
	case err != nil:
		return Stats{}, fmt.Errorf("render: %w", err)
	}

	stats.Elapsed = time.Since(start)
	state(StateComplete)
	return stats, nil
}

// validate rejects a configuration before any window or band is computed.
func validate(grid fluffy.GridConfig, canvas PixelCanvas, zoom fluffy.Vec4) error {
	if !grid.Transform.IsInvertible() {
		return fmt.Errorf("render: grid transform: %w", ErrNonInvertibleTransform)
	}
	if !canvas.Valid() {
		return fmt.Errorf("render %dx%d: %w", canvas.Width(), canvas.Height(), ErrInvalidCanvasDimensions)
	}
	if !(zoom.X > 0) {
		return fmt.Errorf("render at zoom %v: %w", zoom.X, ErrInvalidZoom)
	}
	return nil
}

// partition builds one task per band. A band's engineering extent is
// derived from its pixel rows: band i covers (UL.y - End/zoom,
// UL.y - Start/zoom], so adjacent bands share their boundary exactly.
func partition(buf *ColorBuffer, bands []Band, win Window, canvas PixelCanvas, zoom float64, c Complex, maxIter int) []task {
	step := 1 / zoom
	tasks := make([]task, len(bands))
	for i, b := range bands {
		tasks[i] = task{
			band:    b,
			width:   canvas.Width(),
			step:    step,
			left:    win.UL.X,
			right:   win.UR.X,
			top:     win.UL.Y,
			bottom:  max(win.UL.Y-float64(b.End)*step, win.LR.Y),
			c:       c,
			maxIter: maxIter,
			dst:     buf.Rows(b.Start, b.End),
		}
	}
	return tasks
}

// renderBand fills t.dst. Positions are computed from the absolute row and
// column rather than accumulated, which keeps the output independent of
// how the canvas was split.
func renderBand(t task) {
	i := 0
	for row := t.band.Start; row < t.band.End; row++ {
		y := max(t.top-float64(row)*t.step, t.bottom)
		for col := range t.width {
			x := min(t.left+float64(col)*t.step, t.right)
			it := Iterate(Complex{Re: x, Im: y}, t.c, t.maxIter)
			px := ColorFor(it, t.maxIter)
			t.dst[i+0] = px.R
			t.dst[i+1] = px.G
			t.dst[i+2] = px.B
			t.dst[i+3] = px.A
			i += 4
		}
	}
}
