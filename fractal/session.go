package fractal

import (
	"sync"

	fluffy "github.com/willyclarke/fluffy-palm-tree"
)

// Frame is the result of Session.Render.
type Frame struct {
	Buffer *ColorBuffer
	Canvas PixelCanvas
	Stats  Stats
	// Rendered is false when the cached buffer was returned unchanged.
	Rendered bool
}

// renderKey captures every input that changes the pixels of a frame.
type renderKey struct {
	width, height int
	window        Window
	zoom          float64
	c             Complex
	maxIter       int
}

// Session owns the color buffer shared by successive renders of one view.
// It re-renders only when an input changed or Invalidate was called, and
// serialises renders so a new request waits for the one in flight.
type Session struct {
	mu      sync.Mutex
	opts    []RenderOption
	maxIter int

	buf   *ColorBuffer
	key   renderKey
	valid bool
	last  Frame

	// firstRun enables verbose diagnostics for the first render only.
	firstRun bool
}

// NewSession returns a session applying opts to every render.
func NewSession(opts ...RenderOption) *Session {
	return &Session{
		opts:     opts,
		maxIter:  buildRenderOptions(opts).maxIterations,
		firstRun: true,
	}
}

// Render returns a frame for the given inputs, rendering into the session
// buffer when needed. The buffer is allocated on the first request for a
// canvas size and reallocated only when the size changes.
//
// The returned buffer is owned by the session and stays valid until the
// next call to Render or Close.
func (s *Session) Render(grid fluffy.GridConfig, canvas PixelCanvas, zoom fluffy.Vec4, c Complex) (Frame, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := validate(grid, canvas, zoom); err != nil {
		s.valid = false
		return Frame{}, err
	}

	key := renderKey{
		width:   canvas.Width(),
		height:  canvas.Height(),
		window:  WindowFor(grid),
		zoom:    zoom.X,
		c:       c,
		maxIter: s.maxIter,
	}
	if s.valid && key == s.key {
		f := s.last
		f.Rendered = false
		return f, nil
	}

	if s.buf == nil || s.buf.Width() != key.width || s.buf.Height() != key.height {
		buf, err := NewColorBuffer(key.width, key.height)
		if err != nil {
			return Frame{}, err
		}
		fluffy.Logger().Info("fractal: buffer allocated", "width", key.width, "height", key.height)
		s.buf = buf
	}

	opts := s.opts
	if s.firstRun {
		opts = append(opts[:len(opts):len(opts)], WithVerbose(true))
	}
	stats, err := RenderInto(s.buf, grid, canvas, zoom, c, opts...)
	if err != nil {
		s.valid = false
		return Frame{}, err
	}
	s.firstRun = false
	s.key = key
	s.valid = true
	s.last = Frame{Buffer: s.buf, Canvas: canvas, Stats: stats, Rendered: true}
	return s.last, nil
}

// Invalidate forces the next Render to regenerate the buffer.
func (s *Session) Invalidate() {
	s.mu.Lock()
	s.valid = false
	s.mu.Unlock()
}

// Close releases the buffer. The session may be reused afterwards.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.buf != nil {
		fluffy.Logger().Info("fractal: buffer released", "width", s.buf.Width(), "height", s.buf.Height())
	}
	s.buf = nil
	s.valid = false
	s.last = Frame{}
}
