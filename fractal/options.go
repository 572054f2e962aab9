package fractal

import "github.com/willyclarke/fluffy-palm-tree/internal/parallel"

// RenderOption configures a render or a Session.
//
// Example:
//
//	buf, err := fractal.RenderFractal(grid, canvas, zoom, c,
//	    fractal.WithMaxIterations(1000))
type RenderOption func(*renderOptions)

type renderOptions struct {
	maxIterations int
	executor      *parallel.Executor
	stateHook     func(RenderState)
	verbose       bool
}

func defaultRenderOptions() renderOptions {
	return renderOptions{
		maxIterations: DefaultMaxIterations,
		executor:      parallel.NewExecutor(),
	}
}

func buildRenderOptions(opts []RenderOption) renderOptions {
	o := defaultRenderOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithMaxIterations overrides DefaultMaxIterations. Values below 1 are
// ignored.
func WithMaxIterations(n int) RenderOption {
	return func(o *renderOptions) {
		if n > 0 {
			o.maxIterations = n
		}
	}
}

// WithSpawnLimit caps how many band goroutines may run at once. Bands that
// cannot be started cause the whole canvas to be rendered on the calling
// goroutine instead. A limit of 0 forces that path.
func WithSpawnLimit(n int) RenderOption {
	return func(o *renderOptions) {
		o.executor = parallel.NewLimitedExecutor(n)
	}
}

// WithStateHook registers fn to observe state transitions. fn runs on the
// goroutine that called the render.
func WithStateHook(fn func(RenderState)) RenderOption {
	return func(o *renderOptions) {
		o.stateHook = fn
	}
}

// WithVerbose logs the band layout and per-band timings at debug level.
func WithVerbose(on bool) RenderOption {
	return func(o *renderOptions) {
		o.verbose = on
	}
}
