package svgcore

import (
	"testing"

	"github.com/tdewolff/test"
)

func TestPathString(t *testing.T) {
	var tts = []string{
		"M0 0L10 0",
		"m10 0l10 0z",
		"M0 0H10V20Z",
		"M0 0C1 2 3 4 5 6S7 8 9 10",
		"M0 0Q1 2 3 4T5 6",
		"M0 0A5 5 0 0 1 10 0",
		"M0.5 0L-3 4e-05",
	}
	for _, tt := range tts {
		t.Run(tt, func(t *testing.T) {
			p := MustParsePath(tt)
			test.T(t, MustParsePath(p.String()), p)
		})
	}

	test.String(t, MustParsePath("M0 0 L 10 0 z").String(), "M0 0L10 0z")
	test.String(t, PathData{}.String(), "")
}

func TestPathText(t *testing.T) {
	p := PathData{
		{MoveTo, false, []float64{0.5, 0}},
		{LineTo, false, []float64{0.123456, 10}},
	}
	test.String(t, p.Text(3), "M.5 0L.123 10")

	// full precision keeps every digit
	test.String(t, p.String(), "M0.5 0L0.123456 10")
}
