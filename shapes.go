package svgcore

import (
	"fmt"
	"math"

	strconvParse "github.com/tdewolff/parse/v2/strconv"
)

// Line returns a path of a single line segment.
func Line(x1, y1, x2, y2 float64) PathData {
	if Equal(x1, x2) && Equal(y1, y2) {
		return PathData{}
	}
	return PathData{
		{MoveTo, false, []float64{x1, y1}},
		{LineTo, false, []float64{x2, y2}},
	}
}

// Rectangle returns a closed path of a rectangle. Rectangles with a zero or
// negative size render nothing and yield an empty path.
func Rectangle(x, y, w, h float64) PathData {
	if w <= 0.0 || h <= 0.0 || Equal(w, 0.0) || Equal(h, 0.0) {
		return PathData{}
	}
	return PathData{
		{MoveTo, false, []float64{x, y}},
		{LineTo, false, []float64{x + w, y}},
		{LineTo, false, []float64{x + w, y + h}},
		{LineTo, false, []float64{x, y + h}},
		{Close, false, []float64{}},
	}
}

// RoundedRectangle returns a closed path of a rectangle with elliptically
// rounded corners. The corner radii clamp to half the rectangle size, and a
// zero radius falls back to a sharp rectangle.
func RoundedRectangle(x, y, w, h, rx, ry float64) PathData {
	if w <= 0.0 || h <= 0.0 || Equal(w, 0.0) || Equal(h, 0.0) {
		return PathData{}
	}
	rx, ry = math.Abs(rx), math.Abs(ry)
	if Equal(rx, 0.0) || Equal(ry, 0.0) {
		return Rectangle(x, y, w, h)
	}
	rx = math.Min(rx, w/2.0)
	ry = math.Min(ry, h/2.0)

	return PathData{
		{MoveTo, false, []float64{x + rx, y}},
		{LineTo, false, []float64{x + w - rx, y}},
		{ArcTo, false, []float64{rx, ry, 0.0, 0.0, 1.0, x + w, y + ry}},
		{LineTo, false, []float64{x + w, y + h - ry}},
		{ArcTo, false, []float64{rx, ry, 0.0, 0.0, 1.0, x + w - rx, y + h}},
		{LineTo, false, []float64{x + rx, y + h}},
		{ArcTo, false, []float64{rx, ry, 0.0, 0.0, 1.0, x, y + h - ry}},
		{LineTo, false, []float64{x, y + ry}},
		{ArcTo, false, []float64{rx, ry, 0.0, 0.0, 1.0, x + rx, y}},
		{Close, false, []float64{}},
	}
}

// Circle returns a closed path of a circle.
func Circle(cx, cy, r float64) PathData {
	return Ellipse(cx, cy, r, r)
}

// Ellipse returns a closed path of an ellipse as two half-turn arcs starting
// at the rightmost point.
func Ellipse(cx, cy, rx, ry float64) PathData {
	rx, ry = math.Abs(rx), math.Abs(ry)
	if Equal(rx, 0.0) || Equal(ry, 0.0) {
		return PathData{}
	}
	return PathData{
		{MoveTo, false, []float64{cx + rx, cy}},
		{ArcTo, false, []float64{rx, ry, 0.0, 1.0, 1.0, cx - rx, cy}},
		{ArcTo, false, []float64{rx, ry, 0.0, 1.0, 1.0, cx + rx, cy}},
		{Close, false, []float64{}},
	}
}

// Polyline returns an open path through the given points.
func Polyline(points []Point) PathData {
	if len(points) < 2 {
		return PathData{}
	}
	p := PathData{{MoveTo, false, []float64{points[0].X, points[0].Y}}}
	for _, pt := range points[1:] {
		p = append(p, Segment{LineTo, false, []float64{pt.X, pt.Y}})
	}
	return p
}

// Polygon returns a closed path through the given points.
func Polygon(points []Point) PathData {
	p := Polyline(points)
	if p.Empty() {
		return p
	}
	return append(p, Segment{Close, false, []float64{}})
}

// LineBounds returns the bounding box of a line segment.
func LineBounds(x1, y1, x2, y2 float64) Rect {
	return Rect{math.Min(x1, x2), math.Min(y1, y2), math.Abs(x2 - x1), math.Abs(y2 - y1)}
}

// RectangleBounds returns the bounding box of a rectangle, which is the
// rectangle itself.
func RectangleBounds(x, y, w, h float64) Rect {
	return Rect{x, y, w, h}
}

// EllipseBounds returns the bounding box of an axis-aligned ellipse in
// closed form.
func EllipseBounds(cx, cy, rx, ry float64) Rect {
	rx, ry = math.Abs(rx), math.Abs(ry)
	return Rect{cx - rx, cy - ry, 2.0 * rx, 2.0 * ry}
}

// CircleBounds returns the bounding box of a circle in closed form.
func CircleBounds(cx, cy, r float64) Rect {
	return EllipseBounds(cx, cy, r, r)
}

// PolylineBounds returns the bounding box of a point sequence. The second
// return value is false when there are no points.
func PolylineBounds(points []Point) (Rect, bool) {
	if len(points) == 0 {
		return Rect{}, false
	}
	bounds := Rect{points[0].X, points[0].Y, 0.0, 0.0}
	for _, pt := range points[1:] {
		bounds = bounds.AddPoint(pt)
	}
	return bounds, true
}

// ParsePoints parses a points attribute value of coordinate pairs separated
// by commas or whitespace, as used by polyline and polygon. An odd number of
// coordinates is an error.
func ParsePoints(s string) ([]Point, error) {
	b := []byte(s)
	points := []Point{}
	i := 0
	for {
		i += skipCommaWhitespace(b[i:])
		if i == len(b) {
			break
		}
		x, n := strconvParse.ParseFloat(b[i:])
		if n == 0 {
			return nil, &MalformedValueError{"points", fmt.Sprintf("expected number at position %d", i)}
		}
		i += n

		i += skipCommaWhitespace(b[i:])
		y, n := strconvParse.ParseFloat(b[i:])
		if n == 0 {
			return nil, &MalformedValueError{"points", "odd number of coordinates"}
		}
		i += n
		points = append(points, Point{x, y})
	}
	return points, nil
}
