package svgcore

import (
	"strconv"

	"github.com/tdewolff/minify/v2"
)

// appendNum appends f in its shortest representation. A non-negative prec
// additionally minifies the number to that many significant digits.
func appendNum(b []byte, f float64, prec int) []byte {
	i := len(b)
	b = strconv.AppendFloat(b, f, 'g', -1, 64)
	if 0 <= prec {
		b = b[:i+len(minify.Number(b[i:], prec))]
	}
	return b
}

func num(f float64) string {
	return string(appendNum(nil, f, -1))
}

func (p PathData) text(prec int) string {
	b := []byte{}
	for _, seg := range p {
		b = append(b, seg.Cmd.Letter(seg.Relative))
		for i, v := range seg.Values {
			if 0 < i {
				b = append(b, ' ')
			}
			b = appendNum(b, v, prec)
		}
	}
	return string(b)
}

// String returns the path as SVG path data at full precision, keeping the
// absolute or relative form of every segment.
func (p PathData) String() string {
	return p.text(-1)
}

// Text returns the path as SVG path data with numbers minified to the given
// number of significant digits.
func (p PathData) Text(prec int) string {
	return p.text(prec)
}
