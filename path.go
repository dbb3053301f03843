package pathbool

// PathPoint is one cubic segment of a path: the two control points leading to
// the segment's end point. The segment's start is the previous end point.
type PathPoint struct {
	CP1, CP2, End Point
}

// BezierPath is a single closed loop of cubic Bézier segments. The loop is
// implicitly closed: when the final segment does not return to StartPoint,
// operations treat the path as if a straight closing segment were present.
type BezierPath interface {
	StartPoint() Point
	PathPoints() []PathPoint
}

// Path is the concrete BezierPath used for operation results.
type Path struct {
	Start  Point
	Points []PathPoint
}

func (p Path) StartPoint() Point {
	return p.Start
}

func (p Path) PathPoints() []PathPoint {
	return p.Points
}

// Curves expands the path into standalone curves.
func (p Path) Curves() []Curve {
	return Curves(p)
}

// BoundingBox returns the exact bounding box of the path.
func (p Path) BoundingBox() Rect {
	return PathBoundingBox(p)
}

// IsClockwise returns true if the path winds clockwise in a Y-up coordinate
// system.
func (p Path) IsClockwise() bool {
	return IsClockwise(p)
}

// Reverse returns the path traversed in the opposite direction.
func (p Path) Reverse() Path {
	n := len(p.Points)
	if n == 0 {
		return Path{Start: p.Start}
	}

	q := Path{Start: p.Points[n-1].End, Points: make([]PathPoint, 0, n)}
	for i := n - 1; 0 <= i; i-- {
		start := p.Start
		if 0 < i {
			start = p.Points[i-1].End
		}
		q.Points = append(q.Points, PathPoint{p.Points[i].CP2, p.Points[i].CP1, start})
	}
	return q
}

// Curves expands any BezierPath into standalone curves. The closing segment
// is not synthesized, paths are expected to end at their start point.
func Curves(p BezierPath) []Curve {
	pts := p.PathPoints()
	cs := make([]Curve, 0, len(pts))
	prev := p.StartPoint()
	for _, pt := range pts {
		cs = append(cs, Curve{prev, pt.CP1, pt.CP2, pt.End})
		prev = pt.End
	}
	return cs
}

// PathBoundingBox returns the exact bounding box of a path.
func PathBoundingBox(p BezierPath) Rect {
	cs := Curves(p)
	if len(cs) == 0 {
		start := p.StartPoint()
		return Rect{start.X, start.Y, 0.0, 0.0}
	}
	bounds := cs[0].BoundingBox()
	for _, c := range cs[1:] {
		bounds = bounds.Extend(c.BoundingBox())
	}
	return bounds
}

// fastPathBounds returns the bounding box of all of the path's on-curve and
// control points.
func fastPathBounds(p BezierPath) Rect {
	bounds := RectFromPoints(p.StartPoint())
	for _, pt := range p.PathPoints() {
		bounds = bounds.Extend(RectFromPoints(pt.CP1, pt.CP2, pt.End))
	}
	return bounds
}

// IsClockwise returns true if the path winds clockwise in a Y-up coordinate
// system, using the shoelace formula over the on-curve points.
func IsClockwise(p BezierPath) bool {
	area := 0.0
	prev := p.StartPoint()
	for _, pt := range p.PathPoints() {
		area += prev.X*pt.End.Y - pt.End.X*prev.Y
		prev = pt.End
	}
	start := p.StartPoint()
	area += prev.X*start.Y - start.X*prev.Y
	return area < 0.0
}

// PathLineIntersection is a crossing between one of a path's segments and a
// line. Segment indexes into Curves(path), T is the position on that segment.
type PathLineIntersection struct {
	Segment int
	T       float64
	Pos     Point
}

// PathIntersectsLine returns the crossings between the path's segments and
// the line from l0 to l1.
func PathIntersectsLine(p BezierPath, l0, l1 Point) []PathLineIntersection {
	var zs []PathLineIntersection
	for i, c := range Curves(p) {
		for _, z := range curveIntersectsLine(c, l0, l1) {
			zs = append(zs, PathLineIntersection{i, z.T, z.Pos})
		}
	}
	return zs
}

// PathIntersection is a crossing between segments of two paths.
type PathIntersection struct {
	Segment1, Segment2 int
	T1, T2             float64
}

// PathIntersectsPath returns the crossings between the segments of two paths,
// located to within roughly accuracy units.
func PathIntersectsPath(p1, p2 BezierPath, accuracy float64) []PathIntersection {
	var zs []PathIntersection
	for i, c1 := range Curves(p1) {
		b1 := c1.fastBounds()
		for j, c2 := range Curves(p2) {
			if !b1.Overlaps(c2.fastBounds()) {
				continue
			}
			for _, ts := range CurveIntersections(c1, c2, accuracy) {
				zs = append(zs, PathIntersection{i, j, ts[0], ts[1]})
			}
		}
	}
	return zs
}

// Transcribe converts operation results into a caller-defined path
// representation.
func Transcribe[T any](loops []Path, from func(start Point, points []PathPoint) T) []T {
	out := make([]T, 0, len(loops))
	for _, loop := range loops {
		out = append(out, from(loop.Start, loop.Points))
	}
	return out
}

func toPaths(paths []BezierPath) []Path {
	out := make([]Path, 0, len(paths))
	for _, p := range paths {
		out = append(out, Path{
			Start:  p.StartPoint(),
			Points: append([]PathPoint(nil), p.PathPoints()...),
		})
	}
	return out
}

////////////////////////////////////////////////////////////////

// PathBuilder assembles a Path segment by segment.
type PathBuilder struct {
	p Path
}

// BuildPath starts a new path at the given point.
func BuildPath(start Point) *PathBuilder {
	return &PathBuilder{Path{Start: start}}
}

func (b *PathBuilder) last() Point {
	if len(b.p.Points) == 0 {
		return b.p.Start
	}
	return b.p.Points[len(b.p.Points)-1].End
}

// LineTo appends a straight segment, expressed as a cubic with control points
// at one and two thirds along the line.
func (b *PathBuilder) LineTo(end Point) *PathBuilder {
	start := b.last()
	b.p.Points = append(b.p.Points, PathPoint{
		CP1: start.Interpolate(end, 1.0/3.0),
		CP2: start.Interpolate(end, 2.0/3.0),
		End: end,
	})
	return b
}

// CurveTo appends a cubic segment.
func (b *PathBuilder) CurveTo(cp1, cp2, end Point) *PathBuilder {
	b.p.Points = append(b.p.Points, PathPoint{cp1, cp2, end})
	return b
}

// Close appends a straight segment back to the start point, unless the path
// already ends there.
func (b *PathBuilder) Close() *PathBuilder {
	if !b.last().Equals(b.p.Start) {
		b.LineTo(b.p.Start)
	}
	return b
}

// Build returns the assembled path.
func (b *PathBuilder) Build() Path {
	return b.p
}
