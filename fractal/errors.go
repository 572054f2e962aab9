package fractal

import (
	"errors"

	fluffy "github.com/willyclarke/fluffy-palm-tree"
)

var (
	// ErrInvalidCanvasDimensions is returned for a canvas or buffer with a
	// zero or negative width or height.
	ErrInvalidCanvasDimensions = errors.New("fractal: canvas width and height must be positive")

	// ErrInvalidZoom is returned when the pixels-per-unit resolution is
	// not positive.
	ErrInvalidZoom = errors.New("fractal: zoom resolution must be positive")

	// ErrBufferSize is returned when a buffer does not match its canvas.
	ErrBufferSize = errors.New("fractal: buffer size does not match canvas")

	// ErrNonInvertibleTransform is the root package error, re-exported so
	// callers of this package can test for it without a second import.
	ErrNonInvertibleTransform = fluffy.ErrNonInvertibleTransform
)
