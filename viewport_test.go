package svgcore

import (
	"testing"

	"github.com/tdewolff/test"
)

func TestParseViewBox(t *testing.T) {
	vb, err := ParseViewBox("0 0 1500 1000")
	test.Error(t, err)
	test.T(t, vb, ViewBox{0, 0, 1500, 1000})

	vb, err = ParseViewBox(" -10,-20, 30,40 ")
	test.Error(t, err)
	test.T(t, vb, ViewBox{-10, -20, 30, 40})

	_, err = ParseViewBox("0 0 100")
	test.T(t, err.Error(), "bad viewBox: expected 4 numbers, got 3")
	_, err = ParseViewBox("0 0 100 100 5")
	test.T(t, err.Error(), "bad viewBox: trailing characters")
	_, err = ParseViewBox("a b c d")
	test.That(t, err != nil)

	_, err = ParseViewBox("0 0 0 100")
	test.T(t, err, ErrDegenerateViewBox)
	_, err = ParseViewBox("0 0 100 -5")
	test.T(t, err, ErrDegenerateViewBox)
}

func TestParsePreserveAspectRatio(t *testing.T) {
	var tts = []struct {
		s    string
		want PreserveAspectRatio
	}{
		{"", DefaultPreserveAspectRatio},
		{"xMidYMid meet", PreserveAspectRatio{Align: AlignXMidYMid}},
		{"xMidYMid", PreserveAspectRatio{Align: AlignXMidYMid}},
		{"none", PreserveAspectRatio{Align: AlignNone}},
		{"xMinYMax slice", PreserveAspectRatio{Align: AlignXMinYMax, Slice: true}},
		{"defer xMaxYMin meet", PreserveAspectRatio{Align: AlignXMaxYMin, Defer: true}},
		{"  xMidYMid   slice  ", PreserveAspectRatio{Align: AlignXMidYMid, Slice: true}},
	}
	for _, tt := range tts {
		t.Run(tt.s, func(t *testing.T) {
			par, err := ParsePreserveAspectRatio(tt.s)
			test.Error(t, err)
			test.T(t, par, tt.want)
		})
	}

	for _, s := range []string{"xmidymid", "xMidYMid fit", "defer", "xMidYMid meet extra"} {
		_, err := ParsePreserveAspectRatio(s)
		test.That(t, err != nil, "for", s)
	}
}

func TestViewBoxTransform(t *testing.T) {
	// uniform fit: a 1500x1000 viewBox into a 300x200 viewport scales by 0.2
	m, err := ViewBoxTransform(Rect{0, 0, 300, 200}, ViewBox{0, 0, 1500, 1000}, DefaultPreserveAspectRatio)
	test.Error(t, err)
	test.That(t, m.Equals(Identity.Scale(0.2, 0.2)))

	// meet letterboxes along the larger axis
	m, err = ViewBoxTransform(Rect{0, 0, 300, 100}, ViewBox{0, 0, 1500, 1000}, DefaultPreserveAspectRatio)
	test.Error(t, err)
	test.That(t, m.Equals(Identity.Translate(75, 0).Scale(0.1, 0.1)))

	// slice overflows instead
	m, err = ViewBoxTransform(Rect{0, 0, 300, 100}, ViewBox{0, 0, 1500, 1000}, PreserveAspectRatio{Align: AlignXMidYMid, Slice: true})
	test.Error(t, err)
	test.That(t, m.Equals(Identity.Translate(0, -50).Scale(0.2, 0.2)))

	// none stretches non-uniformly
	m, err = ViewBoxTransform(Rect{0, 0, 300, 100}, ViewBox{0, 0, 1500, 1000}, PreserveAspectRatio{Align: AlignNone})
	test.Error(t, err)
	test.That(t, m.Equals(Identity.Scale(0.2, 0.1)))

	// alignment picks the fraction along each axis
	m, err = ViewBoxTransform(Rect{0, 0, 300, 100}, ViewBox{0, 0, 1500, 1000}, PreserveAspectRatio{Align: AlignXMaxYMin})
	test.Error(t, err)
	test.That(t, m.Equals(Identity.Translate(150, 0).Scale(0.1, 0.1)))

	// the viewBox origin translates away
	m, err = ViewBoxTransform(Rect{10, 20, 100, 100}, ViewBox{5, 5, 50, 50}, DefaultPreserveAspectRatio)
	test.Error(t, err)
	test.That(t, m.Dot(Point{5, 5}).Equals(Point{10, 20}))
	test.That(t, m.Dot(Point{55, 55}).Equals(Point{110, 120}))

	_, err = ViewBoxTransform(Rect{0, 0, 100, 100}, ViewBox{0, 0, 0, 100}, DefaultPreserveAspectRatio)
	test.T(t, err, ErrDegenerateViewBox)
}

func TestResolverCTM(t *testing.T) {
	r := Resolver{}
	vp := Rect{0, 0, 300, 200}
	vb := ViewBox{0, 0, 1500, 1000}

	m, err := r.CTM([]ViewportFrame{{Transform: Identity, Viewport: &vp, ViewBox: &vb, Preserve: DefaultPreserveAspectRatio}})
	test.Error(t, err)
	test.That(t, m.Equals(Identity.Scale(0.2, 0.2)))

	// without a viewBox the viewport only offsets its content
	inner := Rect{10, 20, 100, 100}
	m, err = r.CTM([]ViewportFrame{
		{Transform: Identity, Viewport: &vp, ViewBox: &vb, Preserve: DefaultPreserveAspectRatio},
		{Transform: Identity, Viewport: &inner},
	})
	test.Error(t, err)
	test.That(t, m.Equals(Identity.Scale(0.2, 0.2).Translate(10, 20)))

	// transforms apply before the frame's viewport mapping
	m, err = r.CTM([]ViewportFrame{
		{Transform: Identity.Translate(5, 5), Viewport: &vp, ViewBox: &vb, Preserve: DefaultPreserveAspectRatio},
	})
	test.Error(t, err)
	test.That(t, m.Equals(Identity.Translate(5, 5).Scale(0.2, 0.2)))

	// use placements offset after the viewport mapping
	m, err = r.CTM([]ViewportFrame{
		{Transform: Identity, Viewport: &vp},
		{Transform: Identity, Use: &Use{X: 3, Y: 4, Href: "#a"}},
	})
	test.Error(t, err)
	test.That(t, m.Equals(Identity.Translate(3, 4)))

	_, err = r.CTM([]ViewportFrame{{Transform: Identity}})
	test.T(t, err, ErrNoViewport)
	_, err = r.CTM(nil)
	test.T(t, err, ErrNoViewport)

	// a degenerate viewBox surfaces as an error
	bad := ViewBox{0, 0, 0, 0}
	_, err = r.CTM([]ViewportFrame{{Transform: Identity, Viewport: &vp, ViewBox: &bad}})
	test.T(t, err, ErrDegenerateViewBox)
}

func TestResolverCycles(t *testing.T) {
	r := Resolver{}
	vp := Rect{0, 0, 100, 100}

	_, err := r.CTM([]ViewportFrame{
		{Transform: Identity, Viewport: &vp},
		{Transform: Identity, Use: &Use{Href: "#a"}},
		{Transform: Identity, Use: &Use{Href: "#b"}},
		{Transform: Identity, Use: &Use{Href: "#a"}},
	})
	test.T(t, err, ErrCyclicReference)

	// chains beyond the depth limit are rejected
	chain := make([]ViewportFrame, DefaultMaxDepth+1)
	for i := range chain {
		chain[i] = ViewportFrame{Transform: Identity, Viewport: &vp}
	}
	_, err = r.CTM(chain)
	test.T(t, err, ErrCyclicReference)

	// a raised limit lets the same chain through
	_, err = Resolver{MaxDepth: len(chain)}.CTM(chain)
	test.Error(t, err)
}

func TestScreenCTM(t *testing.T) {
	r := Resolver{}
	vp := Rect{0, 0, 300, 200}
	vb := ViewBox{0, 0, 1500, 1000}
	chain := []ViewportFrame{{Transform: Identity, Viewport: &vp, ViewBox: &vb, Preserve: DefaultPreserveAspectRatio}}

	// the zero screen state is a no-op
	m, err := r.ScreenCTM(chain, Screen{})
	test.Error(t, err)
	test.That(t, m.Equals(Identity.Scale(0.2, 0.2)))

	m, err = r.ScreenCTM(chain, Screen{Scale: 2, Translate: Point{10, 20}})
	test.Error(t, err)
	test.That(t, m.Equals(Identity.Translate(10, 20).Scale(2, 2).Scale(0.2, 0.2)))

	_, err = r.ScreenCTM(nil, Screen{})
	test.T(t, err, ErrNoViewport)
}
