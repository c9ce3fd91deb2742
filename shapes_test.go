package svgcore

import (
	"testing"

	"github.com/tdewolff/test"
)

func TestLineShape(t *testing.T) {
	test.T(t, Line(0, 0, 10, 5), MustParsePath("M0 0L10 5"))
	test.T(t, Line(3, 3, 3, 3), PathData{})
}

func TestRectangleShape(t *testing.T) {
	test.T(t, Rectangle(1, 2, 10, 5), MustParsePath("M1 2L11 2L11 7L1 7Z"))
	test.T(t, Rectangle(0, 0, 0, 5), PathData{})
	test.T(t, Rectangle(0, 0, 10, -5), PathData{})

	bounds, ok := Bounds(Rectangle(1, 2, 10, 5))
	test.That(t, ok)
	test.That(t, bounds.Equals(Rect{1, 2, 10, 5}))
}

func TestRoundedRectangleShape(t *testing.T) {
	test.T(t, RoundedRectangle(0, 0, 10, 5, 0, 0), Rectangle(0, 0, 10, 5))

	p := RoundedRectangle(0, 0, 10, 5, 2, 1)
	bounds, ok := Bounds(p)
	test.That(t, ok)
	test.That(t, bounds.Equals(Rect{0, 0, 10, 5}), "got", bounds)

	// radii clamp to half the size
	p = RoundedRectangle(0, 0, 10, 5, 100, 100)
	bounds, ok = Bounds(p)
	test.That(t, ok)
	test.That(t, bounds.Equals(Rect{0, 0, 10, 5}), "got", bounds)

	test.T(t, RoundedRectangle(0, 0, 0, 5, 1, 1), PathData{})
}

func TestEllipseShape(t *testing.T) {
	p := Ellipse(50, 50, 20, 10)
	bounds, ok := Bounds(p)
	test.That(t, ok)
	test.That(t, bounds.Equals(Rect{30, 40, 40, 20}), "got", bounds)

	test.T(t, Ellipse(0, 0, 0, 10), PathData{})
	test.T(t, Circle(0, 0, 0), PathData{})
}

func TestPolyShapes(t *testing.T) {
	pts := []Point{{0, 0}, {10, 0}, {5, 5}}
	test.T(t, Polyline(pts), MustParsePath("M0 0L10 0L5 5"))
	test.T(t, Polygon(pts), MustParsePath("M0 0L10 0L5 5Z"))
	test.T(t, Polyline([]Point{{1, 1}}), PathData{})
	test.T(t, Polygon(nil), PathData{})
}

func TestShapeBounds(t *testing.T) {
	test.T(t, LineBounds(10, 5, 0, 15), Rect{0, 5, 10, 10})
	test.T(t, RectangleBounds(1, 2, 3, 4), Rect{1, 2, 3, 4})
	test.T(t, EllipseBounds(50, 50, 20, 10), Rect{30, 40, 40, 20})
	test.T(t, CircleBounds(0, 0, 5), Rect{-5, -5, 10, 10})

	bounds, ok := PolylineBounds([]Point{{0, 0}, {10, 0}, {5, 5}})
	test.That(t, ok)
	test.T(t, bounds, Rect{0, 0, 10, 5})
	_, ok = PolylineBounds(nil)
	test.That(t, !ok)

	// the closed forms agree with the path-based query
	pathBounds, ok := Bounds(Ellipse(50, 50, 20, 10))
	test.That(t, ok)
	test.That(t, pathBounds.Equals(EllipseBounds(50, 50, 20, 10)))
}

func TestParsePoints(t *testing.T) {
	pts, err := ParsePoints("850,75 958,137.5 958,262.5")
	test.Error(t, err)
	test.T(t, pts, []Point{{850, 75}, {958, 137.5}, {958, 262.5}})

	pts, err = ParsePoints(" 0 0, 10 0 ,5 5 ")
	test.Error(t, err)
	test.T(t, pts, []Point{{0, 0}, {10, 0}, {5, 5}})

	pts, err = ParsePoints("")
	test.Error(t, err)
	test.T(t, pts, []Point{})

	_, err = ParsePoints("1 2 3")
	test.T(t, err.Error(), "bad points: odd number of coordinates")
	_, err = ParsePoints("1 2 x 4")
	test.T(t, err.Error(), "bad points: expected number at position 4")
}
