package svgcore

import (
	"errors"
	"fmt"
)

var (
	// ErrNonInvertible is returned when a matrix inverse is requested but the
	// determinant is too close to zero.
	ErrNonInvertible = errors.New("matrix is non-invertible")

	// ErrNoViewport is returned when a coordinate resolution needs an
	// established viewport but none exists in the frame chain.
	ErrNoViewport = errors.New("no viewport established")

	// ErrCyclicReference is returned when use-element references form a cycle
	// or exceed the resolver's depth limit.
	ErrCyclicReference = errors.New("cyclic element reference")

	// ErrDegenerateViewBox is returned for viewBox values with zero or
	// negative width or height.
	ErrDegenerateViewBox = errors.New("degenerate viewBox")
)

// MalformedPathError indicates a syntax error in SVG path data. Offset is the
// byte position in the input at which parsing failed.
type MalformedPathError struct {
	Offset int
	Desc   string
}

func (e *MalformedPathError) Error() string {
	return fmt.Sprintf("bad path: %s at position %d", e.Desc, e.Offset)
}

// MalformedTransformError indicates a syntax error in an SVG transform list.
type MalformedTransformError struct {
	Offset int
	Desc   string
}

func (e *MalformedTransformError) Error() string {
	return fmt.Sprintf("bad transform: %s at position %d", e.Desc, e.Offset)
}

// MalformedValueError indicates a syntax error in an SVG attribute value such
// as viewBox, preserveAspectRatio or points.
type MalformedValueError struct {
	Attr string
	Desc string
}

func (e *MalformedValueError) Error() string {
	return fmt.Sprintf("bad %s: %s", e.Attr, e.Desc)
}
