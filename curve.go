package pathbool

import "math"

// Curve is a single cubic Bézier segment from Start to End.
type Curve struct {
	Start, CP1, CP2, End Point
}

// PointAt evaluates the curve at t in [0,1] using De Casteljau's algorithm.
func (c Curve) PointAt(t float64) Point {
	p01 := c.Start.Interpolate(c.CP1, t)
	p12 := c.CP1.Interpolate(c.CP2, t)
	p23 := c.CP2.Interpolate(c.End, t)
	p012 := p01.Interpolate(p12, t)
	p123 := p12.Interpolate(p23, t)
	return p012.Interpolate(p123, t)
}

// TangentAt returns the (unnormalized) tangent direction at t. When the
// derivative vanishes, eg. at a cusp or for coincident control points, the
// chord direction is used instead.
func (c Curve) TangentAt(t float64) Point {
	d0 := c.CP1.Sub(c.Start)
	d1 := c.CP2.Sub(c.CP1)
	d2 := c.End.Sub(c.CP2)
	v := d0.Mul((1.0 - t) * (1.0 - t)).Add(d1.Mul(2.0 * t * (1.0 - t))).Add(d2.Mul(t * t))
	if v.Length() < Epsilon {
		return c.End.Sub(c.Start)
	}
	return v
}

// NormalAt returns the tangent at t rotated 90 degrees CW.
func (c Curve) NormalAt(t float64) Point {
	return c.TangentAt(t).Rot90CW()
}

// Subdivide splits the curve at t into two curves that join at PointAt(t).
func (c Curve) Subdivide(t float64) (Curve, Curve) {
	p01 := c.Start.Interpolate(c.CP1, t)
	p12 := c.CP1.Interpolate(c.CP2, t)
	p23 := c.CP2.Interpolate(c.End, t)
	p012 := p01.Interpolate(p12, t)
	p123 := p12.Interpolate(p23, t)
	p := p012.Interpolate(p123, t)
	return Curve{c.Start, p01, p012, p}, Curve{p, p123, p23, c.End}
}

// Reverse returns the same curve traversed from End to Start.
func (c Curve) Reverse() Curve {
	return Curve{c.End, c.CP2, c.CP1, c.Start}
}

// fastBounds returns the bounding box of the control polygon, which encloses
// the curve but is not tight.
func (c Curve) fastBounds() Rect {
	return RectFromPoints(c.Start, c.CP1, c.CP2, c.End)
}

// BoundingBox returns the exact bounding box of the curve, found by solving
// for the roots of the derivative per axis.
func (c Curve) BoundingBox() Rect {
	x0, x1 := extrema(c.Start.X, c.CP1.X, c.CP2.X, c.End.X)
	y0, y1 := extrema(c.Start.Y, c.CP1.Y, c.CP2.Y, c.End.Y)
	return Rect{x0, y0, x1 - x0, y1 - y0}
}

// extrema returns the minimum and maximum of the cubic Bézier polynomial with
// weights p0..p3 over t in [0,1].
func extrema(p0, p1, p2, p3 float64) (float64, float64) {
	min, max := p0, p0
	if p3 < min {
		min = p3
	} else if max < p3 {
		max = p3
	}

	// derivative is a quadratic in t (common factor 3 divided out)
	a := -p0 + 3.0*p1 - 3.0*p2 + p3
	b := 2.0*p0 - 4.0*p1 + 2.0*p2
	c := p1 - p0
	t1, t2 := solveQuadraticFormula(a, b, c)
	for _, t := range [2]float64{t1, t2} {
		if math.IsNaN(t) || t <= 0.0 || 1.0 <= t {
			continue
		}
		u := 1.0 - t
		v := u*u*u*p0 + 3.0*u*u*t*p1 + 3.0*u*t*t*p2 + t*t*t*p3
		if v < min {
			min = v
		} else if max < v {
			max = v
		}
	}
	return min, max
}

////////////////////////////////////////////////////////////////

// CurveSection is a lightweight view of the parameter range [tmin,tmax] of a
// curve. Subsections compose algebraically against the original curve, so
// that repeatedly narrowing a section does not accumulate error from
// re-deriving control points. The control points themselves are derived
// lazily and memoized; a section must not be shared between goroutines.
type CurveSection struct {
	curve  *Curve
	tc, tm float64 // section t maps to the curve as t*tm+tc
	cps    *[2]Point
}

// Section returns the view of c between tmin and tmax.
func (c *Curve) Section(tmin, tmax float64) *CurveSection {
	return &CurveSection{curve: c, tc: tmin, tm: tmax - tmin}
}

func (s *CurveSection) tForT(t float64) float64 {
	return t*s.tm + s.tc
}

// StartPoint returns the position at the start of the section.
func (s *CurveSection) StartPoint() Point {
	return s.curve.PointAt(s.tForT(0.0))
}

// EndPoint returns the position at the end of the section.
func (s *CurveSection) EndPoint() Point {
	return s.curve.PointAt(s.tForT(1.0))
}

// PointAt evaluates the section at t in [0,1] of the section's own range.
func (s *CurveSection) PointAt(t float64) Point {
	return s.curve.PointAt(s.tForT(t))
}

// ControlPoints returns the two control points of the section when expressed
// as a standalone cubic, derived by subdividing at tmin and then at the
// rescaled tmax.
func (s *CurveSection) ControlPoints() (Point, Point) {
	if s.cps != nil {
		return s.cps[0], s.cps[1]
	}

	tmin := s.tc
	c := s.curve
	wn1 := c.Start.Interpolate(c.CP1, tmin)
	wn2 := c.CP1.Interpolate(c.CP2, tmin)
	wn3 := c.CP2.Interpolate(c.End, tmin)
	wnn1 := wn1.Interpolate(wn2, tmin)
	wnn2 := wn2.Interpolate(wn3, tmin)
	p := wnn1.Interpolate(wnn2, tmin)

	// (p, wnn2, wn3, End) is the curve over [tmin,1], cut it at the rescaled tmax
	tmax := 0.0
	if s.tc != 1.0 {
		tmax = s.tm / (1.0 - s.tc)
	}
	un1 := p.Interpolate(wnn2, tmax)
	un2 := wnn2.Interpolate(wn3, tmax)
	unn1 := un1.Interpolate(un2, tmax)

	s.cps = &[2]Point{un1, unn1}
	return un1, unn1
}

// Curve materializes the section as a standalone cubic curve.
func (s *CurveSection) Curve() Curve {
	cp1, cp2 := s.ControlPoints()
	return Curve{s.StartPoint(), cp1, cp2, s.EndPoint()}
}

// Subsection returns the view of the range [tmin,tmax] of the section itself,
// expressed directly against the original curve.
func (s *CurveSection) Subsection(tmin, tmax float64) *CurveSection {
	return s.curve.Section(s.tForT(tmin), s.tForT(tmax))
}

// OriginalTValues returns the range of the original curve that the section
// covers.
func (s *CurveSection) OriginalTValues() (float64, float64) {
	return s.tc, s.tc + s.tm
}

// SectionTForOriginalT maps a t value on the original curve to the section's
// own parameter space.
func (s *CurveSection) SectionTForOriginalT(t float64) float64 {
	return (t - s.tc) / s.tm
}

// IsTiny returns true if the section covers a negligible parameter range.
func (s *CurveSection) IsTiny() bool {
	return math.Abs(s.tm) < tinySection
}
