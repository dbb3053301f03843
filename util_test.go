package pathbool

import (
	"fmt"
	"math"
	"testing"

	"github.com/tdewolff/test"
)

func TestSolveQuadraticFormula(t *testing.T) {
	var tts = []struct {
		a, b, c float64
		xs      []float64
	}{
		{0.0, 0.0, 0.0, []float64{0.0}},
		{0.0, 0.0, 1.0, nil},
		{0.0, 1.0, 1.0, []float64{-1.0}},
		{1.0, 0.0, 0.0, []float64{0.0, 0.0}},
		{1.0, 1.0, 0.0, []float64{0.0, -1.0}},
		{1.0, 0.0, 1.0, nil},
		{2.0, -2.0, -4.0, []float64{-1.0, 2.0}},
		{-4.0, 0.0, 4.0, []float64{-1.0, 1.0}},
	}
	for i, tt := range tts {
		t.Run(fmt.Sprint(i), func(t *testing.T) {
			x1, x2 := solveQuadraticFormula(tt.a, tt.b, tt.c)
			var got []float64
			for _, x := range []float64{x1, x2} {
				if !math.IsNaN(x) {
					got = append(got, x)
				}
			}
			test.T(t, len(got), len(tt.xs))
			for j := range got {
				test.That(t, math.Abs(got[j]-tt.xs[j]) < 1e-8, "root", j, "got", got[j], "want", tt.xs[j])
			}
		})
	}
}

func TestSolveCubicFormula(t *testing.T) {
	var tts = []struct {
		a, b, c, d float64
		xs         []float64
	}{
		{0.0, 1.0, 1.0, 0.0, []float64{0.0, -1.0}},            // quadratic fallback
		{1.0, 0.0, 0.0, 0.0, []float64{0.0}},                  // triple root
		{1.0, -6.0, 11.0, -6.0, []float64{1.0, 2.0, 3.0}},     // (x-1)(x-2)(x-3)
		{1.0, -1.0, 1.0, -1.0, []float64{1.0}},                // (x-1)(x^2+1)
		{2.0, -12.0, 22.0, -12.0, []float64{1.0, 2.0, 3.0}},   // scaled
		{-1.0, 6.0, -11.0, 6.0, []float64{1.0, 2.0, 3.0}},     // negated
		{1.0, 0.0, -7.0, 6.0, []float64{-3.0, 1.0, 2.0}},      // (x+3)(x-1)(x-2)
		{1.0, 3.0, 3.0, 1.0, []float64{-1.0}},                 // (x+1)^3
	}
	for i, tt := range tts {
		t.Run(fmt.Sprint(i), func(t *testing.T) {
			x1, x2, x3 := solveCubicFormula(tt.a, tt.b, tt.c, tt.d)
			var got []float64
			for _, x := range []float64{x1, x2, x3} {
				if !math.IsNaN(x) {
					got = append(got, x)
				}
			}
			test.T(t, len(got), len(tt.xs))
			for j := range got {
				test.That(t, math.Abs(got[j]-tt.xs[j]) < 1e-8, "root", j, "got", got[j], "want", tt.xs[j])
			}
		})
	}
}

func TestPointOps(t *testing.T) {
	p := Point{2.0, 3.0}
	q := Point{-1.0, 1.0}
	test.T(t, p.Add(q), Point{1.0, 4.0})
	test.T(t, p.Sub(q), Point{3.0, 2.0})
	test.T(t, p.Mul(2.0), Point{4.0, 6.0})
	test.T(t, p.Neg(), Point{-2.0, -3.0})
	test.T(t, p.Rot90CW(), Point{3.0, -2.0})
	test.T(t, p.Rot90CCW(), Point{-3.0, 2.0})
	test.Float(t, p.Dot(q), 1.0)
	test.Float(t, p.PerpDot(q), 5.0)
	test.Float(t, Point{3.0, 4.0}.Length(), 5.0)
	test.Float(t, p.Distance(q), math.Sqrt(13.0))
	test.T(t, p.Interpolate(q, 0.0), p)
	test.T(t, p.Interpolate(q, 1.0), q)
	test.That(t, p.Equals(Point{2.0 + 1e-11, 3.0}))
	test.That(t, !p.Equals(q))
}

func TestRect(t *testing.T) {
	r := RectFromPoints(Point{1.0, 1.0}, Point{3.0, 2.0}, Point{2.0, 4.0})
	test.T(t, r, Rect{1.0, 1.0, 2.0, 3.0})

	// a degenerate rectangle is a point, not empty
	q := RectFromPoints(Point{5.0, 5.0})
	test.T(t, r.Extend(q), Rect{1.0, 1.0, 4.0, 4.0})

	test.That(t, r.Overlaps(Rect{2.0, 3.0, 5.0, 5.0}))
	test.That(t, r.Overlaps(Rect{3.0, 1.0, 1.0, 1.0})) // touching counts
	test.That(t, !r.Overlaps(Rect{3.1, 1.0, 1.0, 1.0}))
	test.That(t, r.ContainsPoint(Point{2.0, 2.0}))
	test.That(t, r.ContainsPoint(Point{1.0, 4.0}))
	test.That(t, !r.ContainsPoint(Point{0.0, 2.0}))
}
