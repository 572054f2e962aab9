package fractal

import "image/color"

const (
	// DefaultMaxIterations caps the escape-time loop.
	DefaultMaxIterations = 500
	// EscapeRadius2 is the squared magnitude at which an orbit escapes.
	EscapeRadius2 = 4.0
)

// DefaultConstant is the Julia constant used when none is given.
var DefaultConstant = Complex{Re: -0.4, Im: 0.6}

// Complex is a point of the complex plane.
type Complex struct {
	Re, Im float64
}

// Params bundles the constant of the quadratic map with the iteration cap.
type Params struct {
	C             Complex
	MaxIterations int
}

// DefaultParams returns DefaultConstant with DefaultMaxIterations.
func DefaultParams() Params {
	return Params{C: DefaultConstant, MaxIterations: DefaultMaxIterations}
}

// Next applies one step of z -> z^2 + c.
func Next(z, c Complex) Complex {
	return Complex{
		Re: z.Re*z.Re - z.Im*z.Im + c.Re,
		Im: 2*z.Re*z.Im + c.Im,
	}
}

// Mod2 returns the squared magnitude of z.
func Mod2(z Complex) float64 {
	return z.Re*z.Re + z.Im*z.Im
}

// Iterate returns the escape time of z0 under c: the number of steps taken
// before |z|^2 reaches EscapeRadius2, or maxIter when the orbit stays bounded.
func Iterate(z0, c Complex, maxIter int) int {
	z := z0
	it := 0
	for Mod2(z) < EscapeRadius2 && it < maxIter {
		z = Next(z, c)
		it++
	}
	return it
}

// ColorFor maps an escape time to the packed palette: t = it/maxIter scaled to
// 0xFFFFFF and split into bytes, red lowest. Alpha is always opaque.
func ColorFor(iterations, maxIter int) color.RGBA {
	if maxIter <= 0 {
		return color.RGBA{A: 0xFF}
	}
	t := float64(iterations) / float64(maxIter)
	code := int64(float64(0xFFFFFF) * t)
	return color.RGBA{
		R: uint8(code & 0xFF),
		G: uint8((code >> 8) & 0xFF),
		B: uint8((code >> 16) & 0xFF),
		A: 0xFF,
	}
}
