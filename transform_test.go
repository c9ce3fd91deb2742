package svgcore

import (
	"testing"

	"github.com/tdewolff/test"
)

func TestParseTransform(t *testing.T) {
	var tts = []struct {
		s    string
		want Matrix
	}{
		{"", Identity},
		{"translate(10)", Identity.Translate(10, 0)},
		{"translate(10,20)", Identity.Translate(10, 20)},
		{"translate(10 20)", Identity.Translate(10, 20)},
		{"scale(2)", Identity.Scale(2, 2)},
		{"scale(2,3)", Identity.Scale(2, 3)},
		{"rotate(90)", Identity.Rotate(90)},
		{"rotate(90,5,5)", Identity.RotateAbout(90, 5, 5)},
		{"skewX(45)", Identity.SkewX(45)},
		{"skewY(45)", Identity.SkewY(45)},
		{"matrix(1,2,3,4,5,6)", NewMatrix(1, 2, 3, 4, 5, 6)},
		{"matrix(1 2 3 4 5 6)", NewMatrix(1, 2, 3, 4, 5, 6)},
		{" translate( 10 , 20 ) , scale(2) ", Identity.Translate(10, 20).Scale(2, 2)},
		{"translate(10)rotate(90)", Identity.Translate(10, 0).Rotate(90)},
	}
	for _, tt := range tts {
		t.Run(tt.s, func(t *testing.T) {
			ts, err := ParseTransform(tt.s)
			test.Error(t, err)
			test.That(t, ts.Compose().Equals(tt.want), "for", tt.s)
		})
	}
}

func TestParseTransformOrder(t *testing.T) {
	// "translate scale" scales first in user space, then translates
	ts, err := ParseTransform("translate(10,0) scale(2)")
	test.Error(t, err)
	test.That(t, ts.Compose().Dot(Point{1, 1}).Equals(Point{12, 2}))

	ts, err = ParseTransform("scale(2) translate(10,0)")
	test.Error(t, err)
	test.That(t, ts.Compose().Dot(Point{1, 1}).Equals(Point{22, 2}))

	// each entry stays addressable on its own
	test.T(t, len(ts), 2)
	test.That(t, ts[0].Equals(Identity.Scale(2, 2)))
	test.That(t, ts[1].Equals(Identity.Translate(10, 0)))
}

func TestParseTransformErrors(t *testing.T) {
	var tts = []struct {
		s   string
		err string
	}{
		{"translate", "bad transform: expected '(' at position 9"},
		{"translate 10", "bad transform: expected '(' at position 10"},
		{"translate(10", "bad transform: expected ')' at position 12"},
		{"translate(x)", "bad transform: expected number at position 10"},
		{"translate()", "bad transform: wrong number of arguments for translate: 0 at position 0"},
		{"translate(1,2,3)", "bad transform: wrong number of arguments for translate: 3 at position 0"},
		{"scale(1,2,3)", "bad transform: wrong number of arguments for scale: 3 at position 0"},
		{"rotate(1,2)", "bad transform: wrong number of arguments for rotate: 2 at position 0"},
		{"skewX(1,2)", "bad transform: wrong number of arguments for skewX: 2 at position 0"},
		{"matrix(1,2,3,4,5)", "bad transform: matrix takes 6 arguments, got 5 at position 0"},
		{"Translate(10)", `bad transform: unknown transform "Translate" at position 0`},
		{"frobnicate(1)", `bad transform: unknown transform "frobnicate" at position 0`},
		{"translate(10) 5", `bad transform: unexpected character '5' at position 14`},
	}
	for _, tt := range tts {
		t.Run(tt.s, func(t *testing.T) {
			_, err := ParseTransform(tt.s)
			test.That(t, err != nil)
			test.T(t, err.Error(), tt.err)
		})
	}
}

func TestTransformListCompose(t *testing.T) {
	test.That(t, TransformList{}.Compose().Equals(Identity))
	test.That(t, TransformList{Identity.Rotate(90)}.Compose().Equals(Identity.Rotate(90)))
}
