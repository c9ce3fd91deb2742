package svgcore

import (
	"fmt"

	strconvParse "github.com/tdewolff/parse/v2/strconv"
)

// TransformList is an ordered list of transform functions as matrices, in
// source order.
type TransformList []Matrix

// Compose multiplies the transforms into a single matrix. Transforms apply
// right-to-left, so the first transform in the list is the outermost.
func (ts TransformList) Compose() Matrix {
	m := Identity
	for _, t := range ts {
		m = m.Mul(t)
	}
	return m
}

// ParseTransform parses an SVG transform attribute value. Function names are
// case-sensitive and each function's argument count is checked: matrix takes
// six arguments, translate and scale one or two, rotate one or three, and
// skewX and skewY one. Angles are in degrees.
func ParseTransform(s string) (TransformList, error) {
	b := []byte(s)
	ts := TransformList{}
	i := 0
	for {
		i += skipCommaWhitespace(b[i:])
		if i == len(b) {
			break
		}

		nameStart := i
		for i < len(b) && ('a' <= b[i] && b[i] <= 'z' || 'A' <= b[i] && b[i] <= 'Z') {
			i++
		}
		name := string(b[nameStart:i])
		if name == "" {
			return nil, &MalformedTransformError{i, fmt.Sprintf("unexpected character %q", b[i])}
		}

		for i < len(b) && isWhitespace(b[i]) {
			i++
		}
		if i == len(b) || b[i] != '(' {
			return nil, &MalformedTransformError{i, "expected '('"}
		}
		i++

		args := []float64{}
		for {
			i += skipCommaWhitespace(b[i:])
			if i == len(b) {
				return nil, &MalformedTransformError{i, "expected ')'"}
			}
			if b[i] == ')' {
				i++
				break
			}
			f, n := strconvParse.ParseFloat(b[i:])
			if n == 0 {
				return nil, &MalformedTransformError{i, "expected number"}
			}
			args = append(args, f)
			i += n
		}

		m, err := transformFunc(name, args, nameStart)
		if err != nil {
			return nil, err
		}
		ts = append(ts, m)
	}
	return ts, nil
}

func transformFunc(name string, args []float64, offset int) (Matrix, error) {
	switch name {
	case "matrix":
		if len(args) != 6 {
			return Identity, &MalformedTransformError{offset, fmt.Sprintf("matrix takes 6 arguments, got %d", len(args))}
		}
		return NewMatrix(args[0], args[1], args[2], args[3], args[4], args[5]), nil
	case "translate":
		switch len(args) {
		case 1:
			return Identity.Translate(args[0], 0.0), nil
		case 2:
			return Identity.Translate(args[0], args[1]), nil
		}
	case "scale":
		switch len(args) {
		case 1:
			return Identity.Scale(args[0], args[0]), nil
		case 2:
			return Identity.Scale(args[0], args[1]), nil
		}
	case "rotate":
		switch len(args) {
		case 1:
			return Identity.Rotate(args[0]), nil
		case 3:
			return Identity.RotateAbout(args[0], args[1], args[2]), nil
		}
	case "skewX":
		if len(args) == 1 {
			return Identity.SkewX(args[0]), nil
		}
	case "skewY":
		if len(args) == 1 {
			return Identity.SkewY(args[0]), nil
		}
	default:
		return Identity, &MalformedTransformError{offset, fmt.Sprintf("unknown transform %q", name)}
	}
	return Identity, &MalformedTransformError{offset, fmt.Sprintf("wrong number of arguments for %s: %d", name, len(args))}
}
