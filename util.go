package svgcore

import (
	"fmt"
	"math"
)

// Epsilon is the smallest number below which we assume the value to be zero.
// It is used to guard degenerate geometry and near-singular matrices.
var Epsilon = 1e-10

// Equal returns true if a and b are equal within the global precision.
func Equal(a, b float64) bool {
	// avoid math.Abs for performance
	if a < b {
		return b-a <= math.Max(math.Abs(a), math.Abs(b))*1e-8 || b-a < Epsilon
	}
	return a-b <= math.Max(math.Abs(a), math.Abs(b))*1e-8 || a-b < Epsilon
}

// Point is a coordinate in 2D space where the positive x axis goes right and
// the positive y axis goes down.
type Point struct {
	X, Y float64
}

// IsZero returns true if both coordinates are zero.
func (p Point) IsZero() bool {
	return p.X == 0.0 && p.Y == 0.0
}

// Equals returns true if both points are equal within the global precision.
func (p Point) Equals(q Point) bool {
	return Equal(p.X, q.X) && Equal(p.Y, q.Y)
}

// Neg negates the point.
func (p Point) Neg() Point {
	return Point{-p.X, -p.Y}
}

// Add adds q to p.
func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

// Sub subtracts q from p.
func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

// Mul multiplies both coordinates by f.
func (p Point) Mul(f float64) Point {
	return Point{f * p.X, f * p.Y}
}

// Dot returns the dot product of both points.
func (p Point) Dot(q Point) float64 {
	return p.X*q.X + p.Y*q.Y
}

// PerpDot returns the cross product of both points, ie. the z component of
// their 3D cross product.
func (p Point) PerpDot(q Point) float64 {
	return p.X*q.Y - p.Y*q.X
}

// Length returns the Euclidean length of the point as a vector.
func (p Point) Length() float64 {
	return math.Hypot(p.X, p.Y)
}

// Angle returns the angle in radians between the positive x axis and the
// point as a vector.
func (p Point) Angle() float64 {
	return math.Atan2(p.Y, p.X)
}

// Rot90CW rotates the point by 90 degrees clockwise.
func (p Point) Rot90CW() Point {
	return Point{-p.Y, p.X}
}

// Rot90CCW rotates the point by 90 degrees counterclockwise.
func (p Point) Rot90CCW() Point {
	return Point{p.Y, -p.X}
}

// Norm scales the point to have the given length. The zero point is returned
// unchanged.
func (p Point) Norm(length float64) Point {
	d := p.Length()
	if Equal(d, 0.0) {
		return Point{}
	}
	return Point{p.X / d * length, p.Y / d * length}
}

// Interpolate returns the point between p and q at t in [0,1].
func (p Point) Interpolate(q Point, t float64) Point {
	return Point{(1-t)*p.X + t*q.X, (1-t)*p.Y + t*q.Y}
}

// String returns a string representation of the point.
func (p Point) String() string {
	return fmt.Sprintf("(%g,%g)", p.X, p.Y)
}

// Rect is an axis-aligned rectangle in 2D defined by its position and size.
// Width or height may be zero; such a rectangle still occupies its boundary.
type Rect struct {
	X, Y, W, H float64
}

// Equals returns true if both rectangles are equal within the global
// precision.
func (r Rect) Equals(q Rect) bool {
	return Equal(r.X, q.X) && Equal(r.Y, q.Y) && Equal(r.W, q.W) && Equal(r.H, q.H)
}

// Translate moves the rectangle.
func (r Rect) Translate(x, y float64) Rect {
	r.X += x
	r.Y += y
	return r
}

// Add returns the union of both rectangles.
func (r Rect) Add(q Rect) Rect {
	x0 := math.Min(r.X, q.X)
	y0 := math.Min(r.Y, q.Y)
	x1 := math.Max(r.X+r.W, q.X+q.W)
	y1 := math.Max(r.Y+r.H, q.Y+q.H)
	return Rect{x0, y0, x1 - x0, y1 - y0}
}

// AddPoint extends the rectangle to contain p.
func (r Rect) AddPoint(p Point) Rect {
	return r.Add(Rect{p.X, p.Y, 0.0, 0.0})
}

// ContainsPoint returns true if p is inside or on the boundary of the
// rectangle.
func (r Rect) ContainsPoint(p Point) bool {
	return r.X <= p.X && p.X <= r.X+r.W && r.Y <= p.Y && p.Y <= r.Y+r.H
}

// Transform returns the axis-aligned rectangle that contains the rectangle
// after transformation by m.
func (r Rect) Transform(m Matrix) Rect {
	p0 := m.Dot(Point{r.X, r.Y})
	p1 := m.Dot(Point{r.X + r.W, r.Y})
	p2 := m.Dot(Point{r.X, r.Y + r.H})
	p3 := m.Dot(Point{r.X + r.W, r.Y + r.H})
	x0 := math.Min(p0.X, math.Min(p1.X, math.Min(p2.X, p3.X)))
	y0 := math.Min(p0.Y, math.Min(p1.Y, math.Min(p2.Y, p3.Y)))
	x1 := math.Max(p0.X, math.Max(p1.X, math.Max(p2.X, p3.X)))
	y1 := math.Max(p0.Y, math.Max(p1.Y, math.Max(p2.Y, p3.Y)))
	return Rect{x0, y0, x1 - x0, y1 - y0}
}

// String returns a string representation of the rectangle.
func (r Rect) String() string {
	return fmt.Sprintf("(%g,%g)-(%g,%g)", r.X, r.Y, r.X+r.W, r.Y+r.H)
}

// solveQuadraticFormula uses the numerically stable Citardauq formula to
// solve ax^2 + bx + c = 0. The roots are returned in ascending order, using
// NaN for roots that do not exist. See
// https://math.stackexchange.com/a/2007723
func solveQuadraticFormula(a, b, c float64) (float64, float64) {
	if Equal(a, 0.0) {
		if Equal(b, 0.0) {
			if Equal(c, 0.0) {
				// all terms disappear, all x satisfy the solution
				return 0.0, math.NaN()
			}
			// no solution
			return math.NaN(), math.NaN()
		}
		// linear equation, x = -c/b
		return -c / b, math.NaN()
	}

	discriminant := b*b - 4.0*a*c
	if discriminant < 0.0 {
		return math.NaN(), math.NaN()
	} else if Equal(discriminant, 0.0) {
		return -b / (2.0 * a), math.NaN()
	}

	// Avoid catastrophic cancellation when b and sqrt are of equal magnitude.
	q := math.Sqrt(discriminant)
	if b < 0.0 {
		q = -q
	}
	q = -(b + q) / 2.0
	x0, x1 := q/a, c/q
	if x1 < x0 {
		x0, x1 = x1, x0
	}
	return x0, x1
}

func cubicBezierPos(p0, p1, p2, p3 Point, t float64) Point {
	p0 = p0.Mul((1 - t) * (1 - t) * (1 - t))
	p1 = p1.Mul(3.0 * t * (1 - t) * (1 - t))
	p2 = p2.Mul(3.0 * t * t * (1 - t))
	p3 = p3.Mul(t * t * t)
	return p0.Add(p1).Add(p2).Add(p3)
}

func cubicBezierDeriv(p0, p1, p2, p3 Point, t float64) Point {
	p0 = p0.Mul(-3.0 * (1 - t) * (1 - t))
	p1 = p1.Mul(3.0 * (1 - t) * (1 - 3*t))
	p2 = p2.Mul(3.0 * t * (2 - 3*t))
	p3 = p3.Mul(3.0 * t * t)
	return p0.Add(p1).Add(p2).Add(p3)
}

// splitCubicBezier splits a cubic bezier at t using De Casteljau's algorithm
// and returns the control points of both halves.
func splitCubicBezier(p0, p1, p2, p3 Point, t float64) (Point, Point, Point, Point, Point, Point, Point, Point) {
	pm := p1.Interpolate(p2, t)

	q0 := p0
	q1 := p0.Interpolate(p1, t)
	q2 := q1.Interpolate(pm, t)

	r3 := p3
	r2 := p2.Interpolate(p3, t)
	r1 := pm.Interpolate(r2, t)

	r0 := q2.Interpolate(r1, t)
	q3 := r0
	return q0, q1, q2, q3, r0, r1, r2, r3
}
