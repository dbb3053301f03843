package pathbool

import "math"

// lineIntersection is a crossing between a curve and a line. T is the
// position on the curve, S the position on the line with l0 at 0 and l1 at 1.
type lineIntersection struct {
	T   float64
	S   float64
	Pos Point
}

// lineCoefficients returns (a,b,c) of the implicit line a*x+b*y+c=0 through
// l0 and l1, with (a,b) normalized to unit length so that a*x+b*y+c is the
// signed distance to the line. Returns all zeros for a degenerate line.
func lineCoefficients(l0, l1 Point) (float64, float64, float64) {
	a := l1.Y - l0.Y
	b := l0.X - l1.X
	n := math.Hypot(a, b)
	if n == 0.0 {
		return 0.0, 0.0, 0.0
	}
	a /= n
	b /= n
	return a, b, -(a*l0.X + b*l0.Y)
}

// curveIntersectsLine returns the intersections between the curve and the
// line segment from l0 to l1, with the line parameter clipped to [0,1).
func curveIntersectsLine(c Curve, l0, l1 Point) []lineIntersection {
	return curveLineIntersections(c, l0, l1, true)
}

// curveIntersectsRay returns the intersections between the curve and the
// infinite line through l0 and l1, the line parameter is not clipped.
func curveIntersectsRay(c Curve, l0, l1 Point) []lineIntersection {
	return curveLineIntersections(c, l0, l1, false)
}

func curveLineIntersections(c Curve, l0, l1 Point, clip bool) []lineIntersection {
	a, b, cc := lineCoefficients(l0, l1)
	if a == 0.0 && b == 0.0 {
		return nil
	}

	// signed distance to the line along the curve, as a cubic in t
	p3 := a*(-c.Start.X+3.0*c.CP1.X-3.0*c.CP2.X+c.End.X) + b*(-c.Start.Y+3.0*c.CP1.Y-3.0*c.CP2.Y+c.End.Y)
	p2 := a*(3.0*c.Start.X-6.0*c.CP1.X+3.0*c.CP2.X) + b*(3.0*c.Start.Y-6.0*c.CP1.Y+3.0*c.CP2.Y)
	p1 := a*(-3.0*c.Start.X+3.0*c.CP1.X) + b*(-3.0*c.Start.Y+3.0*c.CP1.Y)
	p0 := a*c.Start.X + b*c.Start.Y + cc

	// drop leading coefficients that vanish up to rounding, which happens for
	// curves that are degenerate lines or quadratics, so that the lower-order
	// solvers take over
	scale := math.Abs(p3) + math.Abs(p2) + math.Abs(p1) + math.Abs(p0)
	if math.Abs(p3) < scale*1e-12 {
		p3 = 0.0
		if math.Abs(p2) < scale*1e-12 {
			p2 = 0.0
		}
	}

	t1, t2, t3 := solveCubicFormula(p3, p2, p1, p0)

	var zs []lineIntersection
	last := math.NaN()
	for _, t := range [3]float64{t1, t2, t3} {
		if math.IsNaN(t) || t < -0.01 || 1.01 < t || t == last {
			continue
		}
		last = t

		// snap near-endpoint roots onto the endpoint when it lies on the line
		if t < 0.01 && math.Abs(a*c.Start.X+b*c.Start.Y+cc) <= onLineDistance {
			t = 0.0
		} else if 0.99 < t && math.Abs(a*c.End.X+b*c.End.Y+cc) <= onLineDistance {
			t = 1.0
		}
		if t < 0.0 || 1.0 < t {
			continue
		}

		pos := c.PointAt(t)
		var s float64
		if 0.01 < math.Abs(b) {
			s = (pos.X - l0.X) / (l1.X - l0.X)
		} else {
			s = (pos.Y - l0.Y) / (l1.Y - l0.Y)
		}
		if clip && (s < 0.0 || 1.0 <= s) {
			continue
		}
		if len(zs) != 0 && zs[len(zs)-1].T == t {
			continue
		}
		zs = append(zs, lineIntersection{t, s, pos})
	}
	return zs
}

////////////////////////////////////////////////////////////////

const (
	pairMiss = iota
	pairMatch
	pairSubdivide
)

// curvePair is a pair of subcurves together with the parameter windows they
// cover on the original curves, as offset and scale.
type curvePair struct {
	c1, c2 Curve
	o1, s1 float64
	o2, s2 float64
}

// curvePairState classifies a subcurve pair: no bounding box overlap, a
// located intersection, or overlap that needs further subdivision. A match is
// found by intersecting one curve with the chord of the other once that
// other's bounding box has collapsed below the accuracy.
func curvePairState(c1, c2 Curve, accuracySq float64) (float64, float64, int) {
	b1 := c1.fastBounds()
	b2 := c2.fastBounds()
	if !b1.Overlaps(b2) {
		return 0.0, 0.0, pairMiss
	}

	if d := b1.W*b1.W + b1.H*b1.H; d <= accuracySq {
		if zs := curveIntersectsLine(c2, c1.Start, c1.End); len(zs) != 0 {
			return 0.5, zs[0].T, pairMatch
		}
		return 0.0, 0.0, pairMiss
	} else if d := b2.W*b2.W + b2.H*b2.H; d <= accuracySq {
		if zs := curveIntersectsLine(c1, c2.Start, c2.End); len(zs) != 0 {
			return zs[0].T, 0.5, pairMatch
		}
		return 0.0, 0.0, pairMiss
	}
	return 0.0, 0.0, pairSubdivide
}

// CurveIntersections returns the (t1,t2) parameter pairs where the two curves
// meet, found by subdividing both curves and discarding pairs whose bounding
// boxes do not overlap. Each intersection is located to within roughly
// accuracy units. When the curves run along each other for a stretch, one
// match is reported per terminal region, which can be many; callers collapse
// nearby matches if needed.
func CurveIntersections(c1, c2 Curve, accuracy float64) [][2]float64 {
	accuracySq := accuracy * accuracy

	var found [][2]float64
	stack := []curvePair{{c1, c2, 0.0, 1.0, 0.0, 1.0}}
	for 0 < len(stack) {
		it := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		c1a, c1b := it.c1.Subdivide(0.5)
		c2a, c2b := it.c2.Subdivide(0.5)
		h1, h2 := it.s1/2.0, it.s2/2.0
		subs := [4]curvePair{
			{c1a, c2a, it.o1, h1, it.o2, h2},
			{c1a, c2b, it.o1, h1, it.o2 + h2, h2},
			{c1b, c2a, it.o1 + h1, h1, it.o2, h2},
			{c1b, c2b, it.o1 + h1, h1, it.o2 + h2, h2},
		}

		// on a match, the remaining siblings are dropped: within one parent
		// region a single intersection is reported, which keeps closely
		// overlapping curves from producing a match per subdivision leaf
		var subdivide []curvePair
		matched := false
		for _, sub := range subs {
			t1, t2, state := curvePairState(sub.c1, sub.c2, accuracySq)
			if state == pairMatch {
				found = append(found, [2]float64{sub.o1 + t1*sub.s1, sub.o2 + t2*sub.s2})
				matched = true
				break
			} else if state == pairSubdivide {
				subdivide = append(subdivide, sub)
			}
		}
		if !matched {
			for i := len(subdivide) - 1; 0 <= i; i-- {
				stack = append(stack, subdivide[i])
			}
		}
	}
	return found
}
