package svgcore

import (
	"fmt"

	strconvParse "github.com/tdewolff/parse/v2/strconv"
)

// ParseMode selects how forgiving the path parser is.
type ParseMode int

const (
	// Strict rejects any deviation from the path grammar.
	Strict ParseMode = iota

	// Lenient additionally accepts path data whose final parameter group is
	// truncated by end of input, dropping the incomplete group. All other
	// errors remain fatal.
	Lenient
)

// ParseOptions configures ParsePath. The zero value parses strictly with the
// standard SVG grammar.
type ParseOptions struct {
	Mode ParseMode

	// ExtendedGrammar enables the SVG 2 bearing commands B and b.
	ExtendedGrammar bool
}

func isWhitespace(c byte) bool {
	return c == ' ' || c == '\n' || c == '\r' || c == '\t' || c == '\f'
}

func skipCommaWhitespace(b []byte) int {
	i := 0
	for i < len(b) && (isWhitespace(b[i]) || b[i] == ',') {
		i++
	}
	return i
}

func commandFromLetter(c byte, extended bool) (PathCmd, bool, bool) {
	relative := 'a' <= c && c <= 'z'
	switch c &^ 0x20 {
	case 'M':
		return MoveTo, relative, true
	case 'L':
		return LineTo, relative, true
	case 'H':
		return HorizontalTo, relative, true
	case 'V':
		return VerticalTo, relative, true
	case 'C':
		return CubeTo, relative, true
	case 'S':
		return SmoothCubeTo, relative, true
	case 'Q':
		return QuadTo, relative, true
	case 'T':
		return SmoothQuadTo, relative, true
	case 'A':
		return ArcTo, relative, true
	case 'B':
		if extended {
			return BearingTo, relative, true
		}
	case 'Z':
		return Close, relative, true
	}
	return 0, false, false
}

// ParsePath parses SVG path data into segments. Parsing is all-or-nothing:
// on error the returned path is nil. Repeated parameter groups are expanded
// into one segment each, with repeated moveto groups becoming lineto
// segments as the grammar prescribes.
func ParsePath(d string, opts ParseOptions) (PathData, error) {
	b := []byte(d)
	i := 0
	for i < len(b) && isWhitespace(b[i]) {
		i++
	}
	if i == len(b) {
		return PathData{}, nil
	}
	if b[i] != 'M' && b[i] != 'm' {
		return nil, &MalformedPathError{i, fmt.Sprintf("expected moveto, got %q", b[i])}
	}

	p := PathData{}
	var prevLetter byte
	for {
		i += skipCommaWhitespace(b[i:])
		if i == len(b) {
			break
		}

		letter := b[i]
		if 'A' <= letter&^0x20 && letter&^0x20 <= 'Z' {
			if _, _, ok := commandFromLetter(letter, opts.ExtendedGrammar); !ok {
				return nil, &MalformedPathError{i, fmt.Sprintf("unknown command %q", letter)}
			}
			i++
		} else {
			// parameters without a command repeat the previous command
			switch prevLetter {
			case 'M':
				letter = 'L'
			case 'm':
				letter = 'l'
			case 'Z', 'z':
				return nil, &MalformedPathError{i, "parameters after closepath"}
			default:
				letter = prevLetter
			}
		}
		cmd, relative, _ := commandFromLetter(letter, opts.ExtendedGrammar)

		vals := make([]float64, 0, cmd.Len())
		for k := 0; k < cmd.Len(); k++ {
			i += skipCommaWhitespace(b[i:])
			if cmd == ArcTo && (k == 3 || k == 4) {
				// flags are single characters and may abut the next number
				if i < len(b) && (b[i] == '0' || b[i] == '1') {
					vals = append(vals, float64(b[i]-'0'))
					i++
					continue
				}
				if i == len(b) && opts.Mode == Lenient {
					return p, nil
				}
				return nil, &MalformedPathError{i, "expected flag"}
			}
			f, n := strconvParse.ParseFloat(b[i:])
			if n == 0 {
				if i == len(b) && opts.Mode == Lenient {
					return p, nil
				}
				return nil, &MalformedPathError{i, "expected number"}
			}
			vals = append(vals, f)
			i += n
		}
		p = append(p, Segment{cmd, relative, vals})
		prevLetter = letter
	}
	return p, nil
}

// MustParsePath parses path data with default options and panics on error.
func MustParsePath(d string) PathData {
	p, err := ParsePath(d, ParseOptions{})
	if err != nil {
		panic(err)
	}
	return p
}
