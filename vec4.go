package fluffy

import "fmt"

// Vec4 is a homogeneous coordinate. W == 1 marks a Point, W == 0 a Vector.
//
// Vector+Vector gives a Vector, Point+Vector a Point and Point-Point a
// Vector. Point+Point and scaled Points are computed but carry no meaning.
type Vec4 struct {
	X, Y, Z, W float64
}

// Point returns a position (W = 1).
func Point(x, y, z float64) Vec4 {
	return Vec4{X: x, Y: y, Z: z, W: 1}
}

// Vector returns a direction (W = 0).
func Vector(x, y, z float64) Vec4 {
	return Vec4{X: x, Y: y, Z: z}
}

// IsPoint reports whether W == 1.
func (v Vec4) IsPoint() bool { return v.W == 1 }

// IsVector reports whether W == 0.
func (v Vec4) IsVector() bool { return v.W == 0 }

// Add returns v + o. The resulting W is capped at 1 so that Point+Vector
// stays a Point.
func (v Vec4) Add(o Vec4) Vec4 {
	return Vec4{
		X: v.X + o.X,
		Y: v.Y + o.Y,
		Z: v.Z + o.Z,
		W: min(1, v.W+o.W),
	}
}

// Sub returns v - o.
func (v Vec4) Sub(o Vec4) Vec4 {
	return Vec4{X: v.X - o.X, Y: v.Y - o.Y, Z: v.Z - o.Z, W: v.W - o.W}
}

// Scale multiplies x, y and z by s and keeps W.
func (v Vec4) Scale(s float64) Vec4 {
	return Vec4{X: v.X * s, Y: v.Y * s, Z: v.Z * s, W: v.W}
}

// Mul multiplies x, y and z component-wise and keeps the W of v.
func (v Vec4) Mul(o Vec4) Vec4 {
	return Vec4{X: v.X * o.X, Y: v.Y * o.Y, Z: v.Z * o.Z, W: v.W}
}

// Dot returns the three-component dot product.
func (v Vec4) Dot(o Vec4) float64 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

// Lerp interpolates between v and o. For t outside [0, 1] it returns the
// zero Vec4.
func (v Vec4) Lerp(o Vec4, t float64) Vec4 {
	if t < 0 || t > 1 {
		return Vec4{}
	}
	return Vec4{
		X: v.X + (o.X-v.X)*t,
		Y: v.Y + (o.Y-v.Y)*t,
		Z: v.Z + (o.Z-v.Z)*t,
		W: v.W + (o.W-v.W)*t,
	}
}

// String returns a fixed-width representation tagged Point or Vector.
func (v Vec4) String() string {
	tag := "Vector"
	if v.IsPoint() {
		tag = "Point "
	}
	return fmt.Sprintf("%s: (%10.3f %10.3f %10.3f %6.2f)", tag, v.X, v.Y, v.Z, v.W)
}
