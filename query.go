package svgcore

import (
	"math"
	"sort"
)

// Bounds returns the tight axis-aligned bounding box of the path, including
// bare moveto positions. The second return value is false for an empty path,
// which has no bounding box.
func Bounds(p PathData) (Rect, bool) {
	q := Normalize(p)
	if q.Empty() {
		return Rect{}, false
	}

	cur := Point{}
	bounds := Rect{}
	first := true
	add := func(pt Point) {
		if first {
			bounds = Rect{pt.X, pt.Y, 0.0, 0.0}
			first = false
		} else {
			bounds = bounds.AddPoint(pt)
		}
	}

	start := Point{}
	for _, seg := range q {
		switch seg.Cmd {
		case MoveTo:
			cur = Point{seg.Values[0], seg.Values[1]}
			start = cur
			add(cur)
		case LineTo:
			cur = Point{seg.Values[0], seg.Values[1]}
			add(cur)
		case CubeTo:
			p1 := Point{seg.Values[0], seg.Values[1]}
			p2 := Point{seg.Values[2], seg.Values[3]}
			p3 := Point{seg.Values[4], seg.Values[5]}
			add(p3)
			addCubicExtrema(add, cur, p1, p2, p3)
			cur = p3
		case Close:
			cur = start
		}
	}
	if first {
		return Rect{}, false
	}
	return bounds, true
}

// addCubicExtrema adds the interior extrema of a cubic bezier per axis,
// found as the roots of its derivative within (0,1). The endpoints are
// assumed to be added by the caller.
func addCubicExtrema(add func(Point), p0, p1, p2, p3 Point) {
	for axis := 0; axis < 2; axis++ {
		a0, a1, a2, a3 := p0.X, p1.X, p2.X, p3.X
		if axis == 1 {
			a0, a1, a2, a3 = p0.Y, p1.Y, p2.Y, p3.Y
		}
		a := 3.0 * (-a0 + 3.0*a1 - 3.0*a2 + a3)
		b := 6.0 * (a0 - 2.0*a1 + a2)
		c := 3.0 * (a1 - a0)
		t0, t1 := solveQuadraticFormula(a, b, c)
		if !math.IsNaN(t0) && 0.0 < t0 && t0 < 1.0 {
			add(cubicBezierPos(p0, p1, p2, p3, t0))
		}
		if !math.IsNaN(t1) && 0.0 < t1 && t1 < 1.0 {
			add(cubicBezierPos(p0, p1, p2, p3, t1))
		}
	}
}

// lengthTolerance is the relative chord error at which arc length bisection
// stops.
const lengthTolerance = 1e-4

// maxLengthDepth caps the bisection recursion.
const maxLengthDepth = 24

// cubicLength measures the arc length of a cubic bezier by adaptive chord
// bisection: a span is split in half until the summed half chords agree with
// the full chord to within the relative tolerance.
func cubicLength(p0, p1, p2, p3 Point) float64 {
	return cubicLengthTol(p0, p1, p2, p3, lengthTolerance, 0)
}

func cubicLengthTol(p0, p1, p2, p3 Point, tol float64, depth int) float64 {
	chord := p3.Sub(p0).Length()
	q0, q1, q2, q3, r0, r1, r2, r3 := splitCubicBezier(p0, p1, p2, p3, 0.5)
	half := q3.Sub(q0).Length() + r3.Sub(r0).Length()
	if maxLengthDepth <= depth || half-chord <= tol*half {
		return half
	}
	return cubicLengthTol(q0, q1, q2, q3, tol, depth+1) + cubicLengthTol(r0, r1, r2, r3, tol, depth+1)
}

// Length returns the total arc length of the path.
func Length(p PathData) float64 {
	return NewLengthIndex(p).Length()
}

// PointAtLength returns the position at distance d along the path. Building
// a LengthIndex once is cheaper when resolving many distances.
func PointAtLength(p PathData, d float64) Point {
	return NewLengthIndex(p).PointAt(d)
}

// TangentAtLength returns the unit tangent at distance d along the path.
func TangentAtLength(p PathData, d float64) Point {
	return NewLengthIndex(p).TangentAt(d)
}

type indexSeg struct {
	cube           bool
	p0, p1, p2, p3 Point
	length         float64
}

// LengthIndex is a cumulative arc length table over a path, for resolving
// distances along the path to positions and tangents.
type LengthIndex struct {
	start Point
	segs  []indexSeg
	cum   []float64
}

// NewLengthIndex normalizes the path and measures every drawing segment.
func NewLengthIndex(p PathData) *LengthIndex {
	q := Normalize(p)
	idx := &LengthIndex{start: q.StartPos()}

	cur, start := Point{}, Point{}
	total := 0.0
	for _, seg := range q {
		switch seg.Cmd {
		case MoveTo:
			cur = Point{seg.Values[0], seg.Values[1]}
			start = cur
		case LineTo:
			end := Point{seg.Values[0], seg.Values[1]}
			s := indexSeg{p0: cur, p3: end, length: end.Sub(cur).Length()}
			total += s.length
			idx.segs = append(idx.segs, s)
			idx.cum = append(idx.cum, total)
			cur = end
		case CubeTo:
			p1 := Point{seg.Values[0], seg.Values[1]}
			p2 := Point{seg.Values[2], seg.Values[3]}
			p3 := Point{seg.Values[4], seg.Values[5]}
			s := indexSeg{cube: true, p0: cur, p1: p1, p2: p2, p3: p3, length: cubicLength(cur, p1, p2, p3)}
			total += s.length
			idx.segs = append(idx.segs, s)
			idx.cum = append(idx.cum, total)
			cur = p3
		case Close:
			cur = start
		}
	}
	return idx
}

// Length returns the total arc length of the indexed path.
func (idx *LengthIndex) Length() float64 {
	if len(idx.cum) == 0 {
		return 0.0
	}
	return idx.cum[len(idx.cum)-1]
}

// locate finds the segment containing distance d and the local parameter t
// within it. Distances are clamped to [0, Length].
func (idx *LengthIndex) locate(d float64) (indexSeg, float64, bool) {
	if len(idx.segs) == 0 {
		return indexSeg{}, 0.0, false
	}
	if d < 0.0 {
		d = 0.0
	} else if total := idx.Length(); total < d {
		d = total
	}

	i := sort.SearchFloat64s(idx.cum, d)
	if i == len(idx.segs) {
		i = len(idx.segs) - 1
	}
	seg := idx.segs[i]
	local := d
	if 0 < i {
		local -= idx.cum[i-1]
	}
	if seg.length == 0.0 {
		return seg, 0.0, true
	}
	if !seg.cube {
		return seg, local / seg.length, true
	}
	return seg, cubicParamAtLength(seg.p0, seg.p1, seg.p2, seg.p3, local), true
}

// cubicParamAtLength finds t such that the arc length of the bezier over
// [0,t] equals the target, by bisection on t.
func cubicParamAtLength(p0, p1, p2, p3 Point, target float64) float64 {
	lo, hi := 0.0, 1.0
	for i := 0; i < 32; i++ {
		t := (lo + hi) / 2.0
		q0, q1, q2, q3, _, _, _, _ := splitCubicBezier(p0, p1, p2, p3, t)
		if cubicLength(q0, q1, q2, q3) < target {
			lo = t
		} else {
			hi = t
		}
	}
	return (lo + hi) / 2.0
}

// PointAt returns the position at distance d along the path. Distances
// outside [0, Length] clamp to the path ends; an empty path yields its start
// position.
func (idx *LengthIndex) PointAt(d float64) Point {
	seg, t, ok := idx.locate(d)
	if !ok {
		return idx.start
	}
	if !seg.cube {
		return seg.p0.Interpolate(seg.p3, t)
	}
	return cubicBezierPos(seg.p0, seg.p1, seg.p2, seg.p3, t)
}

// TangentAt returns the unit tangent at distance d along the path, or the
// zero point where the tangent is undefined.
func (idx *LengthIndex) TangentAt(d float64) Point {
	seg, t, ok := idx.locate(d)
	if !ok {
		return Point{}
	}
	if !seg.cube {
		return seg.p3.Sub(seg.p0).Norm(1.0)
	}
	return cubicBezierDeriv(seg.p0, seg.p1, seg.p2, seg.p3, t).Norm(1.0)
}
