package svgcore

import (
	"fmt"

	strconvParse "github.com/tdewolff/parse/v2/strconv"
)

// ViewBox is the region of user space that a viewport displays.
type ViewBox struct {
	X, Y, W, H float64
}

// Degenerate returns true if the viewBox has a zero or negative size.
func (vb ViewBox) Degenerate() bool {
	return vb.W <= 0.0 || vb.H <= 0.0
}

// Rect returns the viewBox as a rectangle.
func (vb ViewBox) Rect() Rect {
	return Rect{vb.X, vb.Y, vb.W, vb.H}
}

// ParseViewBox parses a viewBox attribute value of four numbers separated by
// commas or whitespace. A zero or negative width or height yields
// ErrDegenerateViewBox.
func ParseViewBox(s string) (ViewBox, error) {
	b := []byte(s)
	var vals [4]float64
	i := 0
	for k := 0; k < 4; k++ {
		i += skipCommaWhitespace(b[i:])
		f, n := strconvParse.ParseFloat(b[i:])
		if n == 0 {
			return ViewBox{}, &MalformedValueError{"viewBox", fmt.Sprintf("expected 4 numbers, got %d", k)}
		}
		vals[k] = f
		i += n
	}
	i += skipCommaWhitespace(b[i:])
	if i != len(b) {
		return ViewBox{}, &MalformedValueError{"viewBox", "trailing characters"}
	}
	vb := ViewBox{vals[0], vals[1], vals[2], vals[3]}
	if vb.Degenerate() {
		return ViewBox{}, ErrDegenerateViewBox
	}
	return vb, nil
}

// Align is the alignment part of preserveAspectRatio.
type Align int

const (
	AlignNone Align = iota
	AlignXMinYMin
	AlignXMidYMin
	AlignXMaxYMin
	AlignXMinYMid
	AlignXMidYMid
	AlignXMaxYMid
	AlignXMinYMax
	AlignXMidYMax
	AlignXMaxYMax
)

var alignNames = map[string]Align{
	"none":     AlignNone,
	"xMinYMin": AlignXMinYMin,
	"xMidYMin": AlignXMidYMin,
	"xMaxYMin": AlignXMaxYMin,
	"xMinYMid": AlignXMinYMid,
	"xMidYMid": AlignXMidYMid,
	"xMaxYMid": AlignXMaxYMid,
	"xMinYMax": AlignXMinYMax,
	"xMidYMax": AlignXMidYMax,
	"xMaxYMax": AlignXMaxYMax,
}

// fractions returns the alignment fractions along x and y, ie. 0, 1/2 or 1
// for Min, Mid and Max respectively.
func (a Align) fractions() (float64, float64) {
	if a == AlignNone {
		return 0.0, 0.0
	}
	i := int(a) - int(AlignXMinYMin)
	return float64(i%3) / 2.0, float64(i/3) / 2.0
}

// PreserveAspectRatio describes how a viewBox is fitted into its viewport.
// The zero value is not the attribute default; use DefaultPreserveAspectRatio
// or ParsePreserveAspectRatio("").
type PreserveAspectRatio struct {
	Align Align
	Slice bool
	Defer bool
}

// DefaultPreserveAspectRatio is the attribute default, xMidYMid meet.
var DefaultPreserveAspectRatio = PreserveAspectRatio{Align: AlignXMidYMid}

// ParsePreserveAspectRatio parses a preserveAspectRatio attribute value. The
// empty string yields the default xMidYMid meet.
func ParsePreserveAspectRatio(s string) (PreserveAspectRatio, error) {
	fields := splitWhitespace(s)
	if len(fields) == 0 {
		return DefaultPreserveAspectRatio, nil
	}

	par := PreserveAspectRatio{}
	if fields[0] == "defer" {
		par.Defer = true
		fields = fields[1:]
		if len(fields) == 0 {
			return PreserveAspectRatio{}, &MalformedValueError{"preserveAspectRatio", "expected alignment after defer"}
		}
	}

	align, ok := alignNames[fields[0]]
	if !ok {
		return PreserveAspectRatio{}, &MalformedValueError{"preserveAspectRatio", fmt.Sprintf("unknown alignment %q", fields[0])}
	}
	par.Align = align
	fields = fields[1:]

	if 0 < len(fields) {
		switch fields[0] {
		case "meet":
		case "slice":
			par.Slice = true
		default:
			return PreserveAspectRatio{}, &MalformedValueError{"preserveAspectRatio", fmt.Sprintf("unknown fit %q", fields[0])}
		}
		fields = fields[1:]
	}
	if 0 < len(fields) {
		return PreserveAspectRatio{}, &MalformedValueError{"preserveAspectRatio", "trailing characters"}
	}
	return par, nil
}

func splitWhitespace(s string) []string {
	fields := []string{}
	start := -1
	for i := 0; i < len(s); i++ {
		if isWhitespace(s[i]) {
			if start != -1 {
				fields = append(fields, s[start:i])
				start = -1
			}
		} else if start == -1 {
			start = i
		}
	}
	if start != -1 {
		fields = append(fields, s[start:])
	}
	return fields
}

// ViewBoxTransform returns the matrix that maps viewBox coordinates into the
// given viewport rectangle, honoring the alignment and meet-or-slice fit of
// preserveAspectRatio. See https://www.w3.org/TR/SVG/coords.html#ComputingAViewportsTransform
func ViewBoxTransform(viewport Rect, vb ViewBox, par PreserveAspectRatio) (Matrix, error) {
	if vb.Degenerate() {
		return Identity, ErrDegenerateViewBox
	}

	sx := viewport.W / vb.W
	sy := viewport.H / vb.H
	if par.Align != AlignNone {
		if par.Slice {
			if sx < sy {
				sx = sy
			} else {
				sy = sx
			}
		} else {
			if sy < sx {
				sx = sy
			} else {
				sy = sx
			}
		}
	}

	fx, fy := par.Align.fractions()
	tx := viewport.X - vb.X*sx + fx*(viewport.W-vb.W*sx)
	ty := viewport.Y - vb.Y*sy + fy*(viewport.H-vb.H*sy)
	return Identity.Translate(tx, ty).Scale(sx, sy), nil
}

// Use is a reference to another element, placed at an offset.
type Use struct {
	X, Y float64
	Href string
}

// ViewportFrame is one element's contribution to the transform chain from
// the root: its transform attribute, the viewport it establishes (if any)
// with an optional viewBox mapping, and a use-element placement. Within a
// frame the transform applies first, then the viewport mapping, then the use
// offset. Note that the zero value carries a zero transform; construct
// frames with NewViewportFrame or set Transform explicitly.
type ViewportFrame struct {
	Transform Matrix
	Viewport  *Rect
	ViewBox   *ViewBox
	Preserve  PreserveAspectRatio
	Use       *Use
}

// NewViewportFrame returns a frame with an identity transform.
func NewViewportFrame() ViewportFrame {
	return ViewportFrame{Transform: Identity}
}

// Screen is the document-level zoom and pan state. A zero Scale is treated
// as 1.
type Screen struct {
	Scale     float64
	Translate Point
}

// Matrix returns the screen state as a matrix.
func (s Screen) Matrix() Matrix {
	scale := s.Scale
	if scale == 0.0 {
		scale = 1.0
	}
	return NewMatrix(scale, 0.0, 0.0, scale, s.Translate.X, s.Translate.Y)
}

// DefaultMaxDepth bounds the frame chain length when Resolver.MaxDepth is
// zero.
const DefaultMaxDepth = 64

// Resolver computes current transformation matrices from viewport frame
// chains, ordered outermost first.
type Resolver struct {
	// MaxDepth limits the chain length; zero means DefaultMaxDepth.
	MaxDepth int
}

// CTM composes the chain into the current transformation matrix. The chain
// must establish at least one viewport or ErrNoViewport is returned. A use
// reference that appears twice, or a chain longer than the depth limit,
// yields ErrCyclicReference.
func (r Resolver) CTM(chain []ViewportFrame) (Matrix, error) {
	maxDepth := r.MaxDepth
	if maxDepth == 0 {
		maxDepth = DefaultMaxDepth
	}
	if maxDepth < len(chain) {
		return Identity, ErrCyclicReference
	}

	hasViewport := false
	seen := map[string]bool{}
	ctm := Identity
	for _, frame := range chain {
		ctm = ctm.Mul(frame.Transform)
		if frame.Viewport != nil {
			hasViewport = true
			if frame.ViewBox != nil {
				m, err := ViewBoxTransform(*frame.Viewport, *frame.ViewBox, frame.Preserve)
				if err != nil {
					return Identity, err
				}
				ctm = ctm.Mul(m)
			} else {
				ctm = ctm.Translate(frame.Viewport.X, frame.Viewport.Y)
			}
		}
		if frame.Use != nil {
			if frame.Use.Href != "" {
				if seen[frame.Use.Href] {
					return Identity, ErrCyclicReference
				}
				seen[frame.Use.Href] = true
			}
			ctm = ctm.Translate(frame.Use.X, frame.Use.Y)
		}
	}
	if !hasViewport {
		return Identity, ErrNoViewport
	}
	return ctm, nil
}

// ScreenCTM composes the chain like CTM and prepends the document zoom and
// pan.
func (r Resolver) ScreenCTM(chain []ViewportFrame, screen Screen) (Matrix, error) {
	ctm, err := r.CTM(chain)
	if err != nil {
		return Identity, err
	}
	return screen.Matrix().Mul(ctm), nil
}
