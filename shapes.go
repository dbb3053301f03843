package pathbool

import "math"

// Circle is a circle described by its center and radius.
type Circle struct {
	Center Point
	Radius float64
}

// Arc is a section of a circle between two angles in radians.
type Arc struct {
	Circle     Circle
	Start, End float64
}

// Arc returns the section of the circle between the two angles.
func (c Circle) Arc(start, end float64) Arc {
	return Arc{c, start, end}
}

// Path approximates the circle with four cubic arcs. The segment joins are
// placed at 45 degree diagonals so that axis-aligned probes meet a segment in
// its interior rather than at a join.
func (c Circle) Path() Path {
	arcs := [4]Arc{
		c.Arc(1.0*math.Pi/4.0, 3.0*math.Pi/4.0),
		c.Arc(3.0*math.Pi/4.0, 5.0*math.Pi/4.0),
		c.Arc(5.0*math.Pi/4.0, 7.0*math.Pi/4.0),
		c.Arc(7.0*math.Pi/4.0, 9.0*math.Pi/4.0),
	}

	p := Path{Start: arcs[0].Curve().Start}
	for _, a := range arcs {
		cv := a.Curve()
		p.Points = append(p.Points, PathPoint{cv.CP1, cv.CP2, cv.End})
	}
	// the last arc ends where the first began, up to rounding; close exactly
	p.Points[3].End = p.Start
	return p
}

// Curve approximates the arc with a single cubic. The approximation is good
// for sweeps up to a quarter circle and degrades beyond a half circle.
// see https://www.spaceroots.org/documents/ellipse/ for error bounds
func (a Arc) Curve() Curve {
	theta := a.End - a.Start

	// unit arc of sweep theta centered on the X axis
	x0, y0 := math.Cos(theta/2.0), math.Sin(theta/2.0)
	x1 := (4.0 - x0) / 3.0
	y1 := (1.0 - x0) * (3.0 - x0) / (3.0 * y0)

	// rotate into place; the unit arc runs from angle theta/2 down to
	// -theta/2, so the rotation maps its start onto the start angle
	phi := -(math.Pi/2.0 - theta/2.0) + a.Start
	sinp, cosp := math.Sincos(phi)
	rotate := func(x, y float64) Point {
		return Point{
			a.Circle.Center.X + a.Circle.Radius*(x*cosp+y*sinp),
			a.Circle.Center.Y + a.Circle.Radius*(-x*sinp+y*cosp),
		}
	}

	return Curve{
		Start: rotate(x0, y0),
		CP1:   rotate(x1, y1),
		CP2:   rotate(x1, -y1),
		End:   rotate(x0, -y0),
	}
}

// Rectangle returns an axis-aligned rectangular path with its corner at
// (x,y), traversing the corners in order of increasing angle.
func Rectangle(x, y, w, h float64) Path {
	return BuildPath(Point{x, y}).
		LineTo(Point{x + w, y}).
		LineTo(Point{x + w, y + h}).
		LineTo(Point{x, y + h}).
		Close().
		Build()
}
