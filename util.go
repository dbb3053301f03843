package pathbool

import (
	"fmt"
	"math"
)

const Epsilon = 1e-10

// closeDistance is the distance within which two positions collapse onto the
// same graph node.
const closeDistance = 0.01

// smallDistance is the dead zone used when deciding on which side of a ray a
// point lies.
const smallDistance = 0.001

// onLineDistance accepts a curve endpoint as lying on a line when snapping
// intersection parameters to 0 or 1.
const onLineDistance = 1e-5

// tinySection is the parameter range below which a curve section is
// considered degenerate.
const tinySection = 1e-6

// equal returns true if a and b are equal with tolerance Epsilon.
func equal(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}

func sign(f float64) int {
	if f < 0.0 {
		return -1
	} else if 0.0 < f {
		return 1
	}
	return 0
}

////////////////////////////////////////////////////////////////

// Point is a coordinate in 2D space. OP refers to the line that goes through the origin (0,0) and this point (x,y).
type Point struct {
	X, Y float64
}

// IsZero returns true if P is exactly zero.
func (p Point) IsZero() bool {
	return p.X == 0.0 && p.Y == 0.0
}

// Equals returns true if P and Q are equal with tolerance Epsilon.
func (p Point) Equals(q Point) bool {
	return equal(p.X, q.X) && equal(p.Y, q.Y)
}

// Neg negates x and y.
func (p Point) Neg() Point {
	return Point{-p.X, -p.Y}
}

// Add adds Q to P.
func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

// Sub subtracts Q from P.
func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

// Mul multiplies x and y by f.
func (p Point) Mul(f float64) Point {
	return Point{f * p.X, f * p.Y}
}

// Rot90CW rotates the line OP by 90 degrees CW.
func (p Point) Rot90CW() Point {
	return Point{p.Y, -p.X}
}

// Rot90CCW rotates the line OP by 90 degrees CCW.
func (p Point) Rot90CCW() Point {
	return Point{-p.Y, p.X}
}

// Dot returns the dot product between OP and OQ, ie. zero if perpendicular and |OP|*|OQ| if aligned.
func (p Point) Dot(q Point) float64 {
	return p.X*q.X + p.Y*q.Y
}

// PerpDot returns the perp dot product between OP and OQ, ie. zero if aligned and |OP|*|OQ| if perpendicular.
func (p Point) PerpDot(q Point) float64 {
	return p.X*q.Y - p.Y*q.X
}

// Length returns the length of OP.
func (p Point) Length() float64 {
	return math.Sqrt(p.X*p.X + p.Y*p.Y)
}

// Distance returns the distance between P and Q.
func (p Point) Distance(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// Interpolate returns a point on PQ that is linearly interpolated by t, ie. t=0 returns P and t=1 returns Q.
func (p Point) Interpolate(q Point, t float64) Point {
	return Point{(1-t)*p.X + t*q.X, (1-t)*p.Y + t*q.Y}
}

func (p Point) String() string {
	return fmt.Sprintf("[%g; %g]", p.X, p.Y)
}

////////////////////////////////////////////////////////////////

type Rect struct {
	X, Y, W, H float64
}

// RectFromPoints returns the smallest rectangle that encloses the given points.
func RectFromPoints(ps ...Point) Rect {
	if len(ps) == 0 {
		return Rect{}
	}
	x0, y0 := ps[0].X, ps[0].Y
	x1, y1 := x0, y0
	for _, p := range ps[1:] {
		x0 = math.Min(x0, p.X)
		y0 = math.Min(y0, p.Y)
		x1 = math.Max(x1, p.X)
		y1 = math.Max(y1, p.Y)
	}
	return Rect{x0, y0, x1 - x0, y1 - y0}
}

func (r Rect) Move(p Point) Rect {
	r.X += p.X
	r.Y += p.Y
	return r
}

// Extend returns the smallest rectangle that encloses both r and q. A zero
// width or height does not make a rectangle empty, a point is a valid extent.
func (r Rect) Extend(q Rect) Rect {
	x0 := math.Min(r.X, q.X)
	y0 := math.Min(r.Y, q.Y)
	x1 := math.Max(r.X+r.W, q.X+q.W)
	y1 := math.Max(r.Y+r.H, q.Y+q.H)
	return Rect{x0, y0, x1 - x0, y1 - y0}
}

// Overlaps returns true if r and q overlap or touch.
func (r Rect) Overlaps(q Rect) bool {
	return q.X <= r.X+r.W && r.X <= q.X+q.W && q.Y <= r.Y+r.H && r.Y <= q.Y+q.H
}

// ContainsPoint returns true if p is inside or on the boundary of r.
func (r Rect) ContainsPoint(p Point) bool {
	return r.X <= p.X && p.X <= r.X+r.W && r.Y <= p.Y && p.Y <= r.Y+r.H
}

func (r Rect) String() string {
	return fmt.Sprintf("[%g; %g]--[%g; %g]", r.X, r.Y, r.X+r.W, r.Y+r.H)
}

////////////////////////////////////////////////////////////////

// Numerically stable quadratic formula, lowest root is returned first
// see https://math.stackexchange.com/a/2007723
func solveQuadraticFormula(a, b, c float64) (float64, float64) {
	if a == 0.0 {
		if b == 0.0 {
			if c == 0.0 {
				// all terms disappear, all x satisfy the solution
				return 0.0, math.NaN()
			}
			// linear term disappears, no solutions
			return math.NaN(), math.NaN()
		}
		// quadratic term disappears, solve linear equation
		return -c / b, math.NaN()
	}

	if c == 0.0 {
		// no constant term, one solution at zero and one from solving linearly
		return 0.0, -b / a
	}

	discriminant := b*b - 4.0*a*c
	if discriminant < 0.0 {
		return math.NaN(), math.NaN()
	} else if discriminant == 0.0 {
		return -b / (2.0 * a), math.NaN()
	}

	// Avoid catastrophic cancellation, which occurs when we subtract two nearly equal numbers and causes a large error
	// this can be the case when 4*a*c is small so that sqrt(discriminant) -> b, and the sign of b and in front of the radical are the same
	// instead we calculate x where b and the radical have different signs, and then use this result in the analytical equivalent
	// of the formula, called the Citardauq Formula.
	q := math.Sqrt(discriminant)
	if b < 0.0 {
		// apply sign of b
		q = -q
	}
	x1 := -(b + q) / (2.0 * a)
	x2 := c / (a * x1)
	if x2 < x1 {
		x1, x2 = x2, x1
	}
	return x1, x2
}

// Cubic formula using Cardano's method for a single real root and the
// trigonometric method when all three roots are real. Roots are returned in
// ascending order, missing roots are NaN.
// see https://en.wikipedia.org/wiki/Cubic_equation#Cardano's_formula
func solveCubicFormula(a, b, c, d float64) (float64, float64, float64) {
	if a == 0.0 {
		x1, x2 := solveQuadraticFormula(b, c, d)
		return x1, x2, math.NaN()
	}

	// depress to t^3 + p*t + q with x = t - b/(3a)
	b /= a
	c /= a
	d /= a
	p := c - b*b/3.0
	q := 2.0*b*b*b/27.0 - b*c/3.0 + d
	shift := -b / 3.0

	if p == 0.0 && q == 0.0 {
		// triple root
		return shift, math.NaN(), math.NaN()
	}

	discriminant := q*q/4.0 + p*p*p/27.0
	if 0.0 < discriminant {
		// one real root
		n := math.Sqrt(discriminant)
		u := math.Cbrt(-q/2.0 + n)
		v := math.Cbrt(-q/2.0 - n)
		return u + v + shift, math.NaN(), math.NaN()
	} else if discriminant == 0.0 {
		// a simple root and a double root
		x1 := 3.0*q/p + shift
		x2 := -3.0*q/(2.0*p) + shift
		if x2 < x1 {
			x1, x2 = x2, x1
		}
		return x1, x2, math.NaN()
	}

	// three real roots
	f := 2.0 * math.Sqrt(-p/3.0)
	phi := math.Acos(3.0*q/(2.0*p)*math.Sqrt(-3.0/p)) / 3.0
	x1 := f*math.Cos(phi-2.0*math.Pi/3.0) + shift
	x2 := f*math.Cos(phi-4.0*math.Pi/3.0) + shift
	x3 := f*math.Cos(phi) + shift
	if x2 < x1 {
		x1, x2 = x2, x1
	}
	if x3 < x2 {
		x2, x3 = x3, x2
		if x2 < x1 {
			x1, x2 = x2, x1
		}
	}
	return x1, x2, x3
}
