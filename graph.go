package pathbool

import (
	"math"
	"sort"
)

// PathSource identifies which operand of a boolean operation an edge came
// from.
type PathSource int

const (
	SourcePath1 PathSource = iota
	SourcePath2
)

// PathDirection is the winding direction of a source path.
type PathDirection int

const (
	Clockwise PathDirection = iota
	Anticlockwise
)

// PathLabel identifies the operand and winding direction of the source loop
// an edge belongs to.
type PathLabel struct {
	Source    PathSource
	Direction PathDirection
}

// EdgeKind is the classification of an edge relative to the result region.
type EdgeKind int

const (
	EdgeUndefined EdgeKind = iota
	EdgeExterior
	EdgeInterior
)

// graphEdge is one cubic segment between two graph nodes. next is the edge
// that follows this one along its source loop.
type graphEdge struct {
	start, end int
	cp1, cp2   Point
	label      PathLabel
	kind       EdgeKind
	next       int
}

// GraphPath is a planar graph of cubic edges between shared nodes. Nodes and
// edges live in flat arenas and refer to each other by index.
type GraphPath struct {
	nodes []Point
	edges []graphEdge

	out  [][]int // outgoing edge indices per node
	prev []int   // inverse of the next pointers
}

// NewGraphPath builds a graph from a set of closed paths that all belong to
// the same operand. Endpoints within closeDistance of an existing node
// collapse onto it, and a path whose final point does not return to its start
// is closed with a straight edge.
func NewGraphPath(source PathSource, paths ...BezierPath) *GraphPath {
	g := &GraphPath{}
	for _, p := range paths {
		label := PathLabel{source, Clockwise}
		if !IsClockwise(p) {
			label.Direction = Anticlockwise
		}
		g.addPath(p, label)
	}
	g.rebuild()
	return g
}

func (g *GraphPath) addPath(p BezierPath, label PathLabel) {
	pts := p.PathPoints()
	if len(pts) == 0 {
		return
	}

	first := len(g.edges)
	start := g.findOrAddNode(p.StartPoint())
	prev := start
	for _, pt := range pts {
		end := g.findOrAddNode(pt.End)
		g.edges = append(g.edges, graphEdge{
			start: prev, end: end,
			cp1: pt.CP1, cp2: pt.CP2,
			label: label,
			next:  len(g.edges) + 1,
		})
		prev = end
	}
	if prev != start {
		// close the gap with a straight edge
		a := g.nodes[prev]
		b := g.nodes[start]
		g.edges = append(g.edges, graphEdge{
			start: prev, end: start,
			cp1: a.Interpolate(b, 1.0/3.0), cp2: a.Interpolate(b, 2.0/3.0),
			label: label,
			next:  len(g.edges) + 1,
		})
	}
	g.edges[len(g.edges)-1].next = first
}

func (g *GraphPath) findOrAddNode(p Point) int {
	for i, q := range g.nodes {
		if p.Distance(q) < closeDistance {
			return i
		}
	}
	g.nodes = append(g.nodes, p)
	return len(g.nodes) - 1
}

// rebuild recomputes the adjacency indexes after a structural change.
func (g *GraphPath) rebuild() {
	g.out = make([][]int, len(g.nodes))
	g.prev = make([]int, len(g.edges))
	for i, e := range g.edges {
		g.out[e.start] = append(g.out[e.start], i)
		g.prev[e.next] = i
	}
}

func (g *GraphPath) edgeCurve(i int) Curve {
	e := g.edges[i]
	return Curve{g.nodes[e.start], e.cp1, e.cp2, g.nodes[e.end]}
}

// Merge adds all nodes and edges of other to g as a disjoint union, without
// looking for intersections or coincident nodes.
func (g *GraphPath) Merge(other *GraphPath) *GraphPath {
	nodeOffset := len(g.nodes)
	edgeOffset := len(g.edges)
	g.nodes = append(g.nodes, other.nodes...)
	for _, e := range other.edges {
		e.start += nodeOffset
		e.end += nodeOffset
		e.next += edgeOffset
		g.edges = append(g.edges, e)
	}
	g.rebuild()
	return g
}

// Collide merges other into g and splits the edges of both sides wherever
// they cross, so that every crossing becomes a node shared by the split
// edges of both paths.
func (g *GraphPath) Collide(other *GraphPath, accuracy float64) *GraphPath {
	edgeOffset := len(g.edges)
	g.Merge(other)
	g.detectCollisions(0, edgeOffset, edgeOffset, len(g.edges), accuracy)
	return g
}

// SelfCollide splits the graph's edges wherever they cross each other.
func (g *GraphPath) SelfCollide(accuracy float64) {
	g.detectCollisions(0, len(g.edges), 0, len(g.edges), accuracy)
}

type edgeCollision struct {
	t    float64
	node int
}

func (g *GraphPath) detectCollisions(fromLo, fromHi, toLo, toHi int, accuracy float64) {
	self := fromLo == toLo && fromHi == toHi

	type pairCollision struct {
		e1, e2 int
		t1, t2 float64
	}
	var collisions []pairCollision
	for i := fromLo; i < fromHi; i++ {
		c1 := g.edgeCurve(i)
		b1 := c1.fastBounds()
		lo := toLo
		if self {
			lo = i + 1
		}
		for j := lo; j < toHi; j++ {
			c2 := g.edgeCurve(j)
			if !b1.Overlaps(c2.fastBounds()) {
				continue
			}
			for _, ts := range CurveIntersections(c1, c2, accuracy) {
				collisions = append(collisions, pairCollision{i, j, ts[0], ts[1]})
			}
		}
	}

	// resolve every crossing to a node shared by both edges before splitting
	splits := make(map[int][]edgeCollision, 2*len(collisions))
	for _, col := range collisions {
		pos := g.edgeCurve(col.e1).PointAt(col.t1)
		node := g.findOrAddNode(pos)
		splits[col.e1] = append(splits[col.e1], edgeCollision{col.t1, node})
		splits[col.e2] = append(splits[col.e2], edgeCollision{col.t2, node})
	}
	for e, list := range splits {
		g.splitEdge(e, list)
	}
	g.rebuild()
}

// splitEdge cuts the edge at each collision, preserving the original
// geometry across the pieces and keeping the next chain intact. Collisions
// that resolve to the edge's current endpoints need no cut.
func (g *GraphPath) splitEdge(e int, list []edgeCollision) {
	sort.Slice(list, func(i, j int) bool { return list[i].t < list[j].t })

	curve := g.edgeCurve(e)
	origEnd := g.edges[e].end
	origNext := g.edges[e].next
	label := g.edges[e].label
	cur := e
	prevT := 0.0
	for _, col := range list {
		if col.node == g.edges[cur].start || col.node == origEnd {
			continue
		}
		t := (col.t - prevT) / (1.0 - prevT)
		if t <= tinySection || 1.0-tinySection <= t {
			continue
		}

		left, right := curve.Subdivide(t)
		g.edges[cur].cp1 = left.CP1
		g.edges[cur].cp2 = left.CP2
		g.edges[cur].end = col.node
		g.edges[cur].next = len(g.edges)
		g.edges = append(g.edges, graphEdge{
			start: col.node, end: origEnd,
			cp1: right.CP1, cp2: right.CP2,
			label: label,
			next:  origNext,
		})
		cur = len(g.edges) - 1
		curve = right
		prevT = col.t
	}
}

////////////////////////////////////////////////////////////////

// rayCollision is a crossing between a cast ray and a graph edge. When the
// crossing coincides with a node where several edges meet, atNode is set and
// the crossing counts toward the tallies but classifies no edge.
type rayCollision struct {
	edge   int
	t, s   float64
	pos    Point
	atNode bool
}

// rayCollisions returns the crossings between the infinite ray through l0
// and l1 and all edges, ordered along the ray. Edges that run along the ray
// are skipped, crossings at a node are deduplicated to one per arriving
// loop, and grazes where a loop touches the ray without crossing it are
// dropped.
func (g *GraphPath) rayCollisions(l0, l1 Point) []rayCollision {
	a, b, c := lineCoefficients(l0, l1)
	side := func(p Point) int {
		d := a*p.X + b*p.Y + c
		if d < -smallDistance {
			return -1
		} else if smallDistance < d {
			return 1
		}
		return 0
	}

	var cols []rayCollision
	for i := range g.edges {
		cv := g.edgeCurve(i)
		s0, s1, s2, s3 := side(cv.Start), side(cv.CP1), side(cv.CP2), side(cv.End)
		if s0 == 0 && s1 == 0 && s2 == 0 && s3 == 0 {
			// runs along the ray
			continue
		}
		if s0+s1+s2+s3 == 4 || s0+s1+s2+s3 == -4 {
			// entirely on one side
			continue
		}
		for _, z := range curveIntersectsRay(cv, l0, l1) {
			cols = append(cols, rayCollision{edge: i, t: z.T, s: z.S, pos: z.Pos})
		}
	}

	// snap crossings at the tail of an edge onto the head of the next edge,
	// so that a crossing through a node is always seen at edge starts
	for k := range cols {
		e := cols[k].edge
		if 0.99999 < cols[k].t && cols[k].pos.Distance(g.nodes[g.edges[e].end]) < closeDistance {
			cols[k].edge = g.edges[e].next
			cols[k].t = 0.0
			cols[k].pos = g.nodes[g.edges[cols[k].edge].start]
		} else if cols[k].t < 0.00001 && cols[k].pos.Distance(g.nodes[g.edges[e].start]) < closeDistance {
			cols[k].t = 0.0
			cols[k].pos = g.nodes[g.edges[e].start]
		}
	}

	seen := make(map[int]bool)
	kept := cols[:0]
	for _, col := range cols {
		if col.t == 0.0 {
			if seen[col.edge] {
				continue
			}
			seen[col.edge] = true

			// a loop that touches the ray at a node and leaves on the same
			// side has not crossed it
			in := g.prev[col.edge]
			if side(g.edges[in].cp2) == side(g.edges[col.edge].cp1) {
				continue
			}
			col.atNode = 1 < len(g.out[g.edges[col.edge].start])
		}
		kept = append(kept, col)
	}

	sort.Slice(kept, func(i, j int) bool { return kept[i].s < kept[j].s })
	return kept
}

////////////////////////////////////////////////////////////////

// ResetEdgeKinds marks every edge as unclassified.
func (g *GraphPath) ResetEdgeKinds() {
	for i := range g.edges {
		g.edges[i].kind = EdgeUndefined
	}
}

// outsidePoint returns a point guaranteed to be outside all edges, placed
// diagonally off the bounding box corner so that rays from it are oblique to
// axis-aligned geometry.
func (g *GraphPath) outsidePoint() Point {
	x, y := math.Inf(1), math.Inf(1)
	for _, n := range g.nodes {
		x = math.Min(x, n.X)
		y = math.Min(y, n.Y)
	}
	for _, e := range g.edges {
		x = math.Min(x, math.Min(e.cp1.X, e.cp2.X))
		y = math.Min(y, math.Min(e.cp1.Y, e.cp2.Y))
	}
	if math.IsInf(x, 1) {
		return Point{}
	}
	return Point{x - 1.0, y - 1.0}
}

// SetEdgeKindsByRayCasting classifies every edge as interior or exterior to
// the result region. isInside decides membership from the signed crossing
// tallies of the two operands; an edge is exterior exactly when membership
// flips across it. Rays are cast from outside the graph through the midpoint
// of each still-unclassified edge, and every non-node crossing along a ray is
// classified in passing.
func (g *GraphPath) SetEdgeKindsByRayCasting(isInside func(count1, count2 int) bool) {
	outside := g.outsidePoint()
	for i := range g.edges {
		if g.edges[i].kind != EdgeUndefined {
			continue
		}
		mid := g.edgeCurve(i).PointAt(0.5)
		g.castAndClassify(outside, mid, isInside)
		if g.edges[i].kind == EdgeUndefined {
			// degenerate edge the ray never hit; try a second angle before
			// giving up on it
			g.castAndClassify(outside.Add(Point{0.0, 0.5}), mid, isInside)
			if g.edges[i].kind == EdgeUndefined {
				logger().Debug("ray casting failed to classify edge, marking interior",
					"edge", i, "midpoint", mid)
				g.edges[i].kind = EdgeInterior
			}
		}
	}
}

func (g *GraphPath) castAndClassify(l0, l1 Point, isInside func(count1, count2 int) bool) {
	rayDir := l1.Sub(l0)
	cols := g.rayCollisions(l0, l1)
	if len(cols)%2 != 0 {
		logger().Debug("odd ray crossing count", "from", l0, "to", l1, "count", len(cols))
	}

	count1, count2 := 0, 0
	for _, col := range cols {
		e := &g.edges[col.edge]
		was := isInside(count1, count2)

		dir := sign(rayDir.Dot(g.edgeCurve(col.edge).NormalAt(col.t)))
		if e.label.Direction == Anticlockwise {
			dir = -dir
		}
		if e.label.Source == SourcePath1 {
			count1 += dir
		} else {
			count2 += dir
		}

		if !col.atNode && e.kind == EdgeUndefined {
			if was != isInside(count1, count2) {
				e.kind = EdgeExterior
			} else {
				e.kind = EdgeInterior
			}
		}
	}
}

// HealExteriorGaps merges nodes that carry exterior edges and lie within the
// given distance of each other, so that loop extraction can close over small
// gaps left by intersection inaccuracy.
func (g *GraphPath) HealExteriorGaps(maxGap float64) {
	gap := math.Max(maxGap, closeDistance)
	hasExterior := func(n int) bool {
		for _, e := range g.out[n] {
			if g.edges[e].kind == EdgeExterior {
				return true
			}
		}
		for i := range g.edges {
			if g.edges[i].end == n && g.edges[i].kind == EdgeExterior {
				return true
			}
		}
		return false
	}

	merged := false
	for i := 0; i < len(g.nodes); i++ {
		if !hasExterior(i) {
			continue
		}
		for j := i + 1; j < len(g.nodes); j++ {
			if g.nodes[i].Distance(g.nodes[j]) <= gap && hasExterior(j) {
				for k := range g.edges {
					if g.edges[k].start == j {
						g.edges[k].start = i
					}
					if g.edges[k].end == j {
						g.edges[k].end = i
					}
				}
				merged = true
			}
		}
	}
	if merged {
		g.rebuild()
	}
}

// ExteriorPaths walks the exterior edges and returns the closed loops they
// form. At each node the walk prefers continuing along the same source loop,
// then any unused exterior edge leaving the node, and finally an unused
// exterior edge arriving at the node traversed in reverse; subtraction
// results traverse the subtrahend's edges backwards.
func (g *GraphPath) ExteriorPaths() []Path {
	used := make([]bool, len(g.edges))
	var out []Path
	for i := range g.edges {
		if g.edges[i].kind != EdgeExterior || used[i] {
			continue
		}

		startNode := g.edges[i].start
		var pts []PathPoint
		cur, reversed := i, false
		node := startNode
		closed := false
		for {
			e := g.edges[cur]
			used[cur] = true
			if !reversed {
				pts = append(pts, PathPoint{e.cp1, e.cp2, g.nodes[e.end]})
				node = e.end
			} else {
				pts = append(pts, PathPoint{e.cp2, e.cp1, g.nodes[e.start]})
				node = e.start
			}
			if node == startNode {
				closed = true
				break
			}

			next, rev, ok := g.nextExteriorEdge(cur, reversed, node, used)
			if !ok {
				logger().Debug("exterior loop failed to close", "node", node, "pos", g.nodes[node])
				break
			}
			cur, reversed = next, rev
		}
		if closed {
			out = append(out, Path{Start: g.nodes[startNode], Points: pts})
		}
	}
	return out
}

func (g *GraphPath) nextExteriorEdge(cur int, reversed bool, node int, used []bool) (int, bool, bool) {
	if !reversed {
		if n := g.edges[cur].next; g.edges[n].kind == EdgeExterior && !used[n] && g.edges[n].start == node {
			return n, false, true
		}
	}
	for _, e := range g.out[node] {
		if g.edges[e].kind == EdgeExterior && !used[e] {
			return e, false, true
		}
	}
	for e := range g.edges {
		if g.edges[e].kind == EdgeExterior && !used[e] && g.edges[e].end == node {
			return e, true, true
		}
	}
	return 0, false, false
}
