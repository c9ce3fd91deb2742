package svgcore

import (
	"fmt"
	"math"
)

// Matrix is an affine transformation matrix in row-major order:
//
//	[a c e]
//	[b d f]
//	[0 0 1]
//
// stored as [2][3]float64{{a, c, e}, {b, d, f}}, mapping a point (x,y) to
// (a*x + c*y + e, b*x + d*y + f). Transformations compose by
// right-multiplication, so m.Translate(x,y).Rotate(deg) first rotates in the
// local frame and then translates.
type Matrix [2][3]float64

// Identity is the identity affine transformation matrix.
var Identity = Matrix{
	{1.0, 0.0, 0.0},
	{0.0, 1.0, 0.0},
}

// NewMatrix composes a matrix from the six SVG matrix() parameters
// (a, b, c, d, e, f).
func NewMatrix(a, b, c, d, e, f float64) Matrix {
	return Matrix{
		{a, c, e},
		{b, d, f},
	}
}

// Mul multiplies the current matrix by the given matrix, ie. they are
// applied in reverse order: m.Mul(q) applies q first and m second.
func (m Matrix) Mul(q Matrix) Matrix {
	return Matrix{{
		m[0][0]*q[0][0] + m[0][1]*q[1][0],
		m[0][0]*q[0][1] + m[0][1]*q[1][1],
		m[0][0]*q[0][2] + m[0][1]*q[1][2] + m[0][2],
	}, {
		m[1][0]*q[0][0] + m[1][1]*q[1][0],
		m[1][0]*q[0][1] + m[1][1]*q[1][1],
		m[1][0]*q[0][2] + m[1][1]*q[1][2] + m[1][2],
	}}
}

// Dot returns the matrix applied to point p.
func (m Matrix) Dot(p Point) Point {
	return Point{
		m[0][0]*p.X + m[0][1]*p.Y + m[0][2],
		m[1][0]*p.X + m[1][1]*p.Y + m[1][2],
	}
}

// Translate adds a translation in the local frame.
func (m Matrix) Translate(x, y float64) Matrix {
	return m.Mul(Matrix{
		{1.0, 0.0, x},
		{0.0, 1.0, y},
	})
}

// Scale adds a scaling in the local frame.
func (m Matrix) Scale(sx, sy float64) Matrix {
	return m.Mul(Matrix{
		{sx, 0.0, 0.0},
		{0.0, sy, 0.0},
	})
}

// Rotate adds a counterclockwise rotation in degrees about the local origin.
// Note that the visual effect is clockwise when the y axis points down.
func (m Matrix) Rotate(deg float64) Matrix {
	sin, cos := math.Sincos(deg * math.Pi / 180.0)
	return m.Mul(Matrix{
		{cos, -sin, 0.0},
		{sin, cos, 0.0},
	})
}

// RotateAbout adds a rotation in degrees about point (x,y) in the local
// frame.
func (m Matrix) RotateAbout(deg, x, y float64) Matrix {
	return m.Translate(x, y).Rotate(deg).Translate(-x, -y)
}

// Shear adds a shearing in the local frame.
func (m Matrix) Shear(sx, sy float64) Matrix {
	return m.Mul(Matrix{
		{1.0, sx, 0.0},
		{sy, 1.0, 0.0},
	})
}

// SkewX adds a skew along the x axis by the given angle in degrees.
func (m Matrix) SkewX(deg float64) Matrix {
	return m.Shear(math.Tan(deg*math.Pi/180.0), 0.0)
}

// SkewY adds a skew along the y axis by the given angle in degrees.
func (m Matrix) SkewY(deg float64) Matrix {
	return m.Shear(0.0, math.Tan(deg*math.Pi/180.0))
}

// Det returns the determinant of the linear part of the matrix.
func (m Matrix) Det() float64 {
	return m[0][0]*m[1][1] - m[0][1]*m[1][0]
}

// IsIdentity returns true if the matrix is the identity within the global
// precision.
func (m Matrix) IsIdentity() bool {
	return m.Equals(Identity)
}

// IsTranslation returns true if the matrix only translates.
func (m Matrix) IsTranslation() bool {
	return Equal(m[0][0], 1.0) && Equal(m[0][1], 0.0) && Equal(m[1][0], 0.0) && Equal(m[1][1], 1.0)
}

// IsRigid returns true if the matrix preserves distances, ie. it is composed
// of rotations, reflections and translations only.
func (m Matrix) IsRigid() bool {
	a := m[0][0]*m[0][0] + m[0][1]*m[0][1]
	b := m[1][0]*m[1][0] + m[1][1]*m[1][1]
	c := m[0][0]*m[1][0] + m[0][1]*m[1][1]
	return Equal(a, 1.0) && Equal(b, 1.0) && Equal(c, 0.0)
}

// Equals returns true if both matrices are equal within the global precision.
func (m Matrix) Equals(q Matrix) bool {
	return Equal(m[0][0], q[0][0]) && Equal(m[0][1], q[0][1]) && Equal(m[0][2], q[0][2]) &&
		Equal(m[1][0], q[1][0]) && Equal(m[1][1], q[1][1]) && Equal(m[1][2], q[1][2])
}

// Inv returns the inverse matrix, or ErrNonInvertible when the determinant
// is too close to zero.
func (m Matrix) Inv() (Matrix, error) {
	det := m.Det()
	if math.Abs(det) < Epsilon {
		return Identity, ErrNonInvertible
	}
	return Matrix{{
		m[1][1] / det,
		-m[0][1] / det,
		-(m[1][1]*m[0][2] - m[0][1]*m[1][2]) / det,
	}, {
		-m[1][0] / det,
		m[0][0] / det,
		-(-m[1][0]*m[0][2] + m[0][0]*m[1][2]) / det,
	}}, nil
}

// Decompose splits the matrix into translation, rotation, skew and scale
// parts such that m = T(tx,ty) R(theta) SkewX(phi) Scale(sx,sy) with angles
// in degrees. The decomposition is best-effort and not unique; for a
// singular matrix the results follow the same formulas with a zero scale
// component.
func (m Matrix) Decompose() (tx, ty, theta, sx, sy, phi float64) {
	tx = m[0][2]
	ty = m[1][2]
	a, b, c, d := m[0][0], m[1][0], m[0][1], m[1][1]

	sx = math.Hypot(a, b)
	det := a*d - b*c
	if !Equal(sx, 0.0) {
		sy = det / sx
	}
	theta = math.Atan2(b, a) * 180.0 / math.Pi
	if !Equal(det, 0.0) {
		phi = math.Atan((a*c+b*d)/det) * 180.0 / math.Pi
	}
	return
}

// Pos returns the translation part of the matrix.
func (m Matrix) Pos() (float64, float64) {
	return m[0][2], m[1][2]
}

// String returns a string representation of the matrix as
// (a, b; c, d; e, f) in SVG parameter order.
func (m Matrix) String() string {
	return fmt.Sprintf("(%g, %g; %g, %g; %g, %g)", m[0][0], m[1][0], m[0][1], m[1][1], m[0][2], m[1][2])
}

// ToSVG returns the matrix as an SVG transform attribute value, either a
// translate() or a matrix() function.
func (m Matrix) ToSVG() string {
	if m.IsTranslation() {
		if Equal(m[0][2], 0.0) && Equal(m[1][2], 0.0) {
			return ""
		}
		return fmt.Sprintf("translate(%v,%v)", num(m[0][2]), num(m[1][2]))
	}
	return fmt.Sprintf("matrix(%v,%v,%v,%v,%v,%v)", num(m[0][0]), num(m[1][0]), num(m[0][1]), num(m[1][1]), num(m[0][2]), num(m[1][2]))
}
