package fluffy

// BuildTransform returns the engineering to pixel matrix
//
//	T(screenCentre) * S(ppu.X, -ppu.Y, ppu.Z) * T(-engineeringOffset)
//
// The engineering point engineeringOffset lands on screenCentre and Y is
// flipped so that it grows downward in pixel space. A zero component in
// pixelsPerUnit makes the result non-invertible; callers check with
// IsInvertible before inverting.
func BuildTransform(engineeringOffset, pixelsPerUnit, screenCentre Vec4) Matrix {
	toScreen := Translation(screenCentre).
		Multiply(Scaling(Vector(pixelsPerUnit.X, -pixelsPerUnit.Y, pixelsPerUnit.Z), false))
	return toScreen.Multiply(Translation(Vector(-engineeringOffset.X, -engineeringOffset.Y, -engineeringOffset.Z)))
}
