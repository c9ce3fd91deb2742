package svgcore

import "math"

// Normalize rewrites a path into its canonical form using only absolute
// MoveTo, LineTo, CubeTo and Close segments. Relative offsets are resolved
// against the current point (rotated over the current bearing first),
// horizontal and vertical lines become regular lines, smooth control points
// are reflected, quadratic beziers are raised to cubics and elliptical arcs
// are approximated by cubic beziers of at most a quarter turn each. A Close
// on a subpath whose current point differs from its start gets an explicit
// closing line before it. Bearing segments are consumed and emit nothing.
func Normalize(p PathData) PathData {
	q := make(PathData, 0, len(p))
	cur, start := Point{}, Point{}
	bearing := 0.0
	var lastCube, lastQuad Point // forward-projected control points
	var prevCmd PathCmd = Close

	// abs resolves a coordinate pair of the segment to an absolute point.
	abs := func(seg Segment, i int) Point {
		d := Point{seg.Values[i], seg.Values[i+1]}
		if seg.Relative {
			return relOffset(cur, d, bearing)
		}
		return d
	}

	for _, seg := range p {
		switch seg.Cmd {
		case MoveTo:
			cur = abs(seg, 0)
			start = cur
			q = append(q, Segment{MoveTo, false, []float64{cur.X, cur.Y}})
		case LineTo:
			cur = abs(seg, 0)
			q = append(q, Segment{LineTo, false, []float64{cur.X, cur.Y}})
		case HorizontalTo, VerticalTo:
			cur = seg.End(cur, start, bearing)
			q = append(q, Segment{LineTo, false, []float64{cur.X, cur.Y}})
		case CubeTo:
			cp1, cp2, end := abs(seg, 0), abs(seg, 2), abs(seg, 4)
			q = append(q, Segment{CubeTo, false, []float64{cp1.X, cp1.Y, cp2.X, cp2.Y, end.X, end.Y}})
			cur, lastCube = end, end.Mul(2.0).Sub(cp2)
		case SmoothCubeTo:
			cp1 := cur
			if prevCmd == CubeTo || prevCmd == SmoothCubeTo {
				cp1 = lastCube
			}
			cp2, end := abs(seg, 0), abs(seg, 2)
			q = append(q, Segment{CubeTo, false, []float64{cp1.X, cp1.Y, cp2.X, cp2.Y, end.X, end.Y}})
			cur, lastCube = end, end.Mul(2.0).Sub(cp2)
		case QuadTo:
			cp, end := abs(seg, 0), abs(seg, 2)
			q = append(q, quadToCube(cur, cp, end))
			cur, lastQuad = end, end.Mul(2.0).Sub(cp)
		case SmoothQuadTo:
			cp := cur
			if prevCmd == QuadTo || prevCmd == SmoothQuadTo {
				cp = lastQuad
			}
			end := abs(seg, 0)
			q = append(q, quadToCube(cur, cp, end))
			cur, lastQuad = end, end.Mul(2.0).Sub(cp)
		case ArcTo:
			rx, ry, rot := seg.Values[0], seg.Values[1], seg.Values[2]
			large, sweep := seg.Values[3] != 0.0, seg.Values[4] != 0.0
			end := abs(seg, 5)
			if seg.Relative {
				rot += bearing * 180.0 / math.Pi
			}
			q = arcToCubes(q, cur, rx, ry, rot, large, sweep, end)
			cur = end
		case BearingTo:
			if seg.Relative {
				bearing += seg.Values[0] * math.Pi / 180.0
			} else {
				bearing = seg.Values[0] * math.Pi / 180.0
			}
		case Close:
			if !cur.Equals(start) {
				q = append(q, Segment{LineTo, false, []float64{start.X, start.Y}})
			}
			q = append(q, Segment{Close, false, []float64{}})
			cur = start
		}
		if seg.Cmd != BearingTo {
			prevCmd = seg.Cmd
		}
	}
	return q
}

// quadToCube raises a quadratic bezier to a cubic one.
func quadToCube(p0, p1, p2 Point) Segment {
	cp1 := p0.Interpolate(p1, 2.0/3.0)
	cp2 := p2.Interpolate(p1, 2.0/3.0)
	return Segment{CubeTo, false, []float64{cp1.X, cp1.Y, cp2.X, cp2.Y, p2.X, p2.Y}}
}

// Transform normalizes the path and maps every coordinate through m.
func Transform(p PathData, m Matrix) PathData {
	q := Normalize(p)
	for i, seg := range q {
		for j := 0; j < len(seg.Values); j += 2 {
			t := m.Dot(Point{seg.Values[j], seg.Values[j+1]})
			q[i].Values[j], q[i].Values[j+1] = t.X, t.Y
		}
	}
	return q
}

// ellipsePos returns the position on the ellipse at angle theta.
func ellipsePos(rx, ry, phi, cx, cy, theta float64) Point {
	sintheta, costheta := math.Sincos(theta)
	sinphi, cosphi := math.Sincos(phi)
	x := cx + rx*costheta*cosphi - ry*sintheta*sinphi
	y := cy + rx*costheta*sinphi + ry*sintheta*cosphi
	return Point{x, y}
}

// ellipseDerivAt returns the derivative of the ellipse position with respect
// to theta.
func ellipseDerivAt(rx, ry, phi, theta float64) Point {
	sintheta, costheta := math.Sincos(theta)
	sinphi, cosphi := math.Sincos(phi)
	dx := -rx*sintheta*cosphi - ry*costheta*sinphi
	dy := -rx*sintheta*sinphi + ry*costheta*cosphi
	return Point{dx, dy}
}

// arcToCenter converts the endpoint parameterization of an elliptical arc to
// its center parameterization, returning the center and the start and end
// angles in degrees. Out-of-range radii are scaled up as the specification
// prescribes. See https://www.w3.org/TR/SVG/implnote.html#ArcConversionEndpointToCenter
func arcToCenter(x1, y1, rx, ry, phi float64, large, sweep bool, x2, y2 float64) (float64, float64, float64, float64) {
	if Equal(x1, x2) && Equal(y1, y2) {
		return x1, y1, 0.0, 0.0
	}

	// compute the half distance between the start and end point in the
	// coordinate frame of the unrotated ellipse
	sinphi, cosphi := math.Sincos(phi)
	x1p := cosphi*(x1-x2)/2.0 + sinphi*(y1-y2)/2.0
	y1p := -sinphi*(x1-x2)/2.0 + cosphi*(y1-y2)/2.0

	// scale the radii up if the ellipse cannot reach from start to end
	lambda := x1p*x1p/(rx*rx) + y1p*y1p/(ry*ry)
	if 1.0 < lambda {
		lambda = math.Sqrt(lambda)
		rx *= lambda
		ry *= lambda
	}

	n := rx*rx*ry*ry - rx*rx*y1p*y1p - ry*ry*x1p*x1p
	d := rx*rx*y1p*y1p + ry*ry*x1p*x1p
	f := 0.0
	if !Equal(d, 0.0) {
		f = math.Sqrt(math.Abs(n) / d)
	}
	if large == sweep {
		f = -f
	}

	cxp := f * rx * y1p / ry
	cyp := -f * ry * x1p / rx
	cx := cosphi*cxp - sinphi*cyp + (x1+x2)/2.0
	cy := sinphi*cxp + cosphi*cyp + (y1+y2)/2.0

	theta0 := math.Atan2((y1p-cyp)/ry, (x1p-cxp)/rx)
	theta1 := math.Atan2((-y1p-cyp)/ry, (-x1p-cxp)/rx)
	theta0 *= 180.0 / math.Pi
	theta1 *= 180.0 / math.Pi
	if sweep && theta1 < theta0 {
		theta1 += 360.0
	} else if !sweep && theta0 < theta1 {
		theta1 -= 360.0
	}
	return cx, cy, theta0, theta1
}

// arcToCubes approximates an elliptical arc from start to end by cubic
// beziers of at most a quarter turn each and appends them to q. Arcs with a
// vanishing radius degrade to a straight line per the specification.
func arcToCubes(q PathData, start Point, rx, ry, rot float64, large, sweep bool, end Point) PathData {
	if start.Equals(end) {
		return q
	}
	rx, ry = math.Abs(rx), math.Abs(ry)
	if Equal(rx, 0.0) || Equal(ry, 0.0) {
		return append(q, Segment{LineTo, false, []float64{end.X, end.Y}})
	}

	phi := rot * math.Pi / 180.0
	cx, cy, theta0, theta1 := arcToCenter(start.X, start.Y, rx, ry, phi, large, sweep, end.X, end.Y)

	n := int(math.Ceil(math.Abs(theta1-theta0) / 90.0))
	if n == 0 {
		return append(q, Segment{LineTo, false, []float64{end.X, end.Y}})
	}
	dtheta := (theta1 - theta0) / float64(n) * math.Pi / 180.0
	alpha := 4.0 / 3.0 * math.Tan(dtheta/4.0)

	theta := theta0 * math.Pi / 180.0
	p0 := start
	for i := 0; i < n; i++ {
		thetaNext := theta + dtheta
		p3 := ellipsePos(rx, ry, phi, cx, cy, thetaNext)
		if i == n-1 {
			p3 = end // avoid drift on the final endpoint
		}
		cp1 := p0.Add(ellipseDerivAt(rx, ry, phi, theta).Mul(alpha))
		cp2 := p3.Sub(ellipseDerivAt(rx, ry, phi, thetaNext).Mul(alpha))
		q = append(q, Segment{CubeTo, false, []float64{cp1.X, cp1.Y, cp2.X, cp2.Y, p3.X, p3.Y}})
		theta, p0 = thetaNext, p3
	}
	return q
}
