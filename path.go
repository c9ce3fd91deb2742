package svgcore

import "math"

// PathCmd is a path segment command, one per SVG path grammar production.
type PathCmd uint8

const (
	MoveTo PathCmd = iota
	LineTo
	HorizontalTo
	VerticalTo
	CubeTo
	SmoothCubeTo
	QuadTo
	SmoothQuadTo
	ArcTo
	BearingTo
	Close
)

// cmdLens is the number of parameter values per command.
var cmdLens = [...]int{2, 2, 1, 1, 6, 4, 4, 2, 7, 1, 0}

// Len returns the number of parameter values the command takes per
// repetition.
func (cmd PathCmd) Len() int {
	return cmdLens[cmd]
}

// Letter returns the SVG command letter, uppercase for absolute and
// lowercase for relative.
func (cmd PathCmd) Letter(relative bool) byte {
	letters := [...]byte{'M', 'L', 'H', 'V', 'C', 'S', 'Q', 'T', 'A', 'B', 'Z'}
	letter := letters[cmd]
	if relative {
		letter += 'a' - 'A'
	}
	return letter
}

func (cmd PathCmd) String() string {
	return string(cmd.Letter(false))
}

// Segment is a single parsed path segment: a command, its absolute or
// relative form, and its parameter values. Commands that repeat in the
// source (eg. "L 1,2 3,4") are stored as separate segments.
type Segment struct {
	Cmd      PathCmd
	Relative bool
	Values   []float64
}

// Equals returns true if both segments have the same command, form and
// values within the global precision.
func (seg Segment) Equals(o Segment) bool {
	if seg.Cmd != o.Cmd || seg.Relative != o.Relative || len(seg.Values) != len(o.Values) {
		return false
	}
	for i := range seg.Values {
		if !Equal(seg.Values[i], o.Values[i]) {
			return false
		}
	}
	return true
}

// End returns the coordinate pair the segment ends at given the current
// point, the subpath start and the current bearing in radians. For Close the
// end is the subpath start; BearingTo does not move the current point.
func (seg Segment) End(cur, start Point, bearing float64) Point {
	vals := seg.Values
	switch seg.Cmd {
	case Close:
		return start
	case BearingTo:
		return cur
	case HorizontalTo:
		if seg.Relative {
			return relOffset(cur, Point{vals[0], 0.0}, bearing)
		}
		return Point{vals[0], cur.Y}
	case VerticalTo:
		if seg.Relative {
			return relOffset(cur, Point{0.0, vals[0]}, bearing)
		}
		return Point{cur.X, vals[0]}
	}
	end := Point{vals[len(vals)-2], vals[len(vals)-1]}
	if seg.Relative {
		return relOffset(cur, end, bearing)
	}
	return end
}

// relOffset translates cur by d rotated over the current bearing.
func relOffset(cur, d Point, bearing float64) Point {
	if bearing == 0.0 {
		return cur.Add(d)
	}
	sin, cos := math.Sincos(bearing)
	return Point{cur.X + d.X*cos - d.Y*sin, cur.Y + d.X*sin + d.Y*cos}
}

// PathData is a sequence of parsed path segments.
type PathData []Segment

// Empty returns true if the path has no segments.
func (p PathData) Empty() bool {
	return len(p) == 0
}

// Equals returns true if both paths have the same segments within the global
// precision.
func (p PathData) Equals(q PathData) bool {
	if len(p) != len(q) {
		return false
	}
	for i := range p {
		if !p[i].Equals(q[i]) {
			return false
		}
	}
	return true
}

// Clone returns a deep copy of the path.
func (p PathData) Clone() PathData {
	q := make(PathData, len(p))
	for i, seg := range p {
		q[i] = Segment{seg.Cmd, seg.Relative, append([]float64{}, seg.Values...)}
	}
	return q
}

// StartPos returns the start coordinate of the first subpath, or the zero
// point for an empty path.
func (p PathData) StartPos() Point {
	if len(p) == 0 {
		return Point{}
	}
	seg := p[0]
	if seg.Cmd != MoveTo {
		return Point{}
	}
	return seg.End(Point{}, Point{}, 0.0)
}

// Pos returns the current point after the path, ie. the end coordinate of
// the last drawing segment.
func (p PathData) Pos() Point {
	cur, start := Point{}, Point{}
	bearing := 0.0
	for _, seg := range p {
		switch seg.Cmd {
		case MoveTo:
			cur = seg.End(cur, start, bearing)
			start = cur
		case BearingTo:
			if seg.Relative {
				bearing += seg.Values[0] * math.Pi / 180.0
			} else {
				bearing = seg.Values[0] * math.Pi / 180.0
			}
		default:
			cur = seg.End(cur, start, bearing)
			if seg.Cmd == Close {
				start = cur
			}
		}
	}
	return cur
}

// Coords returns the end coordinate of every segment that moves the current
// point, in order.
func (p PathData) Coords() []Point {
	coords := []Point{}
	cur, start := Point{}, Point{}
	bearing := 0.0
	for _, seg := range p {
		switch seg.Cmd {
		case BearingTo:
			if seg.Relative {
				bearing += seg.Values[0] * math.Pi / 180.0
			} else {
				bearing = seg.Values[0] * math.Pi / 180.0
			}
			continue
		case MoveTo:
			cur = seg.End(cur, start, bearing)
			start = cur
		default:
			cur = seg.End(cur, start, bearing)
			if seg.Cmd == Close {
				start = cur
			}
		}
		coords = append(coords, cur)
	}
	return coords
}
