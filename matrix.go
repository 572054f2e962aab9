package fluffy

import (
	"fmt"
	"strings"
)

// Matrix is a 4x4 homogeneous transform stored row-major (M[row][col]).
// Matrices are values; every operation returns a new Matrix.
//
// Applied to a column vector, a product built as A.Multiply(B) applies B
// first and then A:
//
//	A.Multiply(B).Apply(v) == A.Apply(B.Apply(v))
type Matrix struct {
	M [4][4]float64
}

// Identity returns the multiplicative identity.
func Identity() Matrix {
	return Matrix{M: [4][4]float64{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}}
}

// MatrixFromRows builds a matrix from four rows.
func MatrixFromRows(r0, r1, r2, r3 [4]float64) Matrix {
	return Matrix{M: [4][4]float64{r0, r1, r2, r3}}
}

// Translation returns a pure translation by the x, y and z of v.
// The W component of v is ignored.
func Translation(v Vec4) Matrix {
	m := Identity()
	m.M[0][3] = v.X
	m.M[1][3] = v.Y
	m.M[2][3] = v.Z
	return m
}

// Scaling returns a diagonal scale matrix. When reflect is true all three
// scale factors are negated.
func Scaling(v Vec4, reflect bool) Matrix {
	x, y, z := v.X, v.Y, v.Z
	if reflect {
		x, y, z = -x, -y, -z
	}
	return Matrix{M: [4][4]float64{
		{x, 0, 0, 0},
		{0, y, 0, 0},
		{0, 0, z, 0},
		{0, 0, 0, 1},
	}}
}

// Multiply returns the product m * other.
func (m Matrix) Multiply(other Matrix) Matrix {
	var r Matrix
	for row := range 4 {
		for col := range 4 {
			r.M[row][col] = m.M[row][0]*other.M[0][col] +
				m.M[row][1]*other.M[1][col] +
				m.M[row][2]*other.M[2][col] +
				m.M[row][3]*other.M[3][col]
		}
	}
	return r
}

// Add returns the element-wise sum of m and other.
func (m Matrix) Add(other Matrix) Matrix {
	var r Matrix
	for row := range 4 {
		for col := range 4 {
			r.M[row][col] = m.M[row][col] + other.M[row][col]
		}
	}
	return r
}

// Apply returns m * v.
func (m Matrix) Apply(v Vec4) Vec4 {
	return Vec4{
		X: m.M[0][0]*v.X + m.M[0][1]*v.Y + m.M[0][2]*v.Z + m.M[0][3]*v.W,
		Y: m.M[1][0]*v.X + m.M[1][1]*v.Y + m.M[1][2]*v.Z + m.M[1][3]*v.W,
		Z: m.M[2][0]*v.X + m.M[2][1]*v.Y + m.M[2][2]*v.Z + m.M[2][3]*v.W,
		W: m.M[3][0]*v.X + m.M[3][1]*v.Y + m.M[3][2]*v.Z + m.M[3][3]*v.W,
	}
}

// minors holds the twelve 2x2 sub-determinants shared by Determinant and
// Invert. The b0x terms come from the upper two rows, b06-b11 from the
// lower two.
type minors struct {
	b00, b01, b02, b03, b04, b05 float64
	b06, b07, b08, b09, b10, b11 float64
}

func (m Matrix) minors() minors {
	a := &m.M
	return minors{
		b00: a[0][0]*a[1][1] - a[0][1]*a[1][0],
		b01: a[0][0]*a[1][2] - a[0][2]*a[1][0],
		b02: a[0][0]*a[1][3] - a[0][3]*a[1][0],
		b03: a[0][1]*a[1][2] - a[0][2]*a[1][1],
		b04: a[0][1]*a[1][3] - a[0][3]*a[1][1],
		b05: a[0][2]*a[1][3] - a[0][3]*a[1][2],
		b06: a[2][0]*a[3][1] - a[2][1]*a[3][0],
		b07: a[2][0]*a[3][2] - a[2][2]*a[3][0],
		b08: a[2][0]*a[3][3] - a[2][3]*a[3][0],
		b09: a[2][1]*a[3][2] - a[2][2]*a[3][1],
		b10: a[2][1]*a[3][3] - a[2][3]*a[3][1],
		b11: a[2][2]*a[3][3] - a[2][3]*a[3][2],
	}
}

func (b minors) det() float64 {
	return b.b00*b.b11 - b.b01*b.b10 + b.b02*b.b09 + b.b03*b.b08 - b.b04*b.b07 + b.b05*b.b06
}

// Determinant returns the determinant of m.
func (m Matrix) Determinant() float64 {
	return m.minors().det()
}

// IsInvertible reports whether the determinant is non-zero.
// The comparison is exact.
func (m Matrix) IsInvertible() bool {
	return m.Determinant() != 0
}

// Invert returns the inverse of m, or ErrNonInvertibleTransform when the
// determinant is zero.
func (m Matrix) Invert() (Matrix, error) {
	b := m.minors()
	det := b.det()
	if det == 0 {
		return Matrix{}, ErrNonInvertibleTransform
	}
	d := 1 / det
	a := &m.M

	var r Matrix
	r.M[0][0] = (a[1][1]*b.b11 - a[1][2]*b.b10 + a[1][3]*b.b09) * d
	r.M[0][1] = (-a[0][1]*b.b11 + a[0][2]*b.b10 - a[0][3]*b.b09) * d
	r.M[0][2] = (a[3][1]*b.b05 - a[3][2]*b.b04 + a[3][3]*b.b03) * d
	r.M[0][3] = (-a[2][1]*b.b05 + a[2][2]*b.b04 - a[2][3]*b.b03) * d

	r.M[1][0] = (-a[1][0]*b.b11 + a[1][2]*b.b08 - a[1][3]*b.b07) * d
	r.M[1][1] = (a[0][0]*b.b11 - a[0][2]*b.b08 + a[0][3]*b.b07) * d
	r.M[1][2] = (-a[3][0]*b.b05 + a[3][2]*b.b02 - a[3][3]*b.b01) * d
	r.M[1][3] = (a[2][0]*b.b05 - a[2][2]*b.b02 + a[2][3]*b.b01) * d

	r.M[2][0] = (a[1][0]*b.b10 - a[1][1]*b.b08 + a[1][3]*b.b06) * d
	r.M[2][1] = (-a[0][0]*b.b10 + a[0][1]*b.b08 - a[0][3]*b.b06) * d
	r.M[2][2] = (a[3][0]*b.b04 - a[3][1]*b.b02 + a[3][3]*b.b00) * d
	r.M[2][3] = (-a[2][0]*b.b04 + a[2][1]*b.b02 - a[2][3]*b.b00) * d

	r.M[3][0] = (-a[1][0]*b.b09 + a[1][1]*b.b07 - a[1][2]*b.b06) * d
	r.M[3][1] = (a[0][0]*b.b09 - a[0][1]*b.b07 + a[0][2]*b.b06) * d
	r.M[3][2] = (-a[3][0]*b.b03 + a[3][1]*b.b01 - a[3][2]*b.b00) * d
	r.M[3][3] = (a[2][0]*b.b03 - a[2][1]*b.b01 + a[2][2]*b.b00) * d
	return r, nil
}

// IsIdentity returns true if the matrix is the identity matrix.
func (m Matrix) IsIdentity() bool {
	return m == Identity()
}

// IsAffine reports whether the last row is exactly [0 0 0 1].
func (m Matrix) IsAffine() bool {
	return m.M[3] == [4]float64{0, 0, 0, 1}
}

// Diagonal returns the scale terms of m as a Vector.
func (m Matrix) Diagonal() Vec4 {
	return Vector(m.M[0][0], m.M[1][1], m.M[2][2])
}

// TranslationPart returns the translation column of m as a Vector.
func (m Matrix) TranslationPart() Vec4 {
	return Vector(m.M[0][3], m.M[1][3], m.M[2][3])
}

// String formats m as four fixed-width rows.
func (m Matrix) String() string {
	var sb strings.Builder
	for row := range 4 {
		if row > 0 {
			sb.WriteByte('\n')
		}
		fmt.Fprintf(&sb, "|%10.3f %10.3f %10.3f %10.3f|",
			m.M[row][0], m.M[row][1], m.M[row][2], m.M[row][3])
	}
	return sb.String()
}
