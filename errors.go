package fluffy

import "errors"

var (
	// ErrNonInvertibleTransform is returned when a transform with a zero
	// determinant would have to be inverted. It is fatal to the request
	// that produced it.
	ErrNonInvertibleTransform = errors.New("fluffy: transform is not invertible")

	// ErrInvalidScreen is returned for non-positive screen dimensions.
	ErrInvalidScreen = errors.New("fluffy: screen dimensions must be positive")
)
