package pathbool

import (
	"testing"

	"github.com/tdewolff/test"
)

func TestNewGraphPath(t *testing.T) {
	square := Rectangle(1.0, 1.0, 4.0, 4.0)
	g := NewGraphPath(SourcePath1, square)
	test.T(t, len(g.nodes), 4)
	test.T(t, len(g.edges), 4)

	// the next pointers form a single cycle back to the first edge
	e := 0
	for i := 0; i < 4; i++ {
		test.T(t, g.edges[e].end, g.edges[g.edges[e].next].start)
		e = g.edges[e].next
	}
	test.T(t, e, 0)
}

func TestGraphPathClosesGap(t *testing.T) {
	// a path that stops short of its start point gets a closing edge
	open := BuildPath(Point{0.0, 0.0}).
		LineTo(Point{4.0, 0.0}).
		LineTo(Point{4.0, 4.0}).
		LineTo(Point{0.0, 4.0}).
		Build()
	g := NewGraphPath(SourcePath1, open)
	test.T(t, len(g.edges), 4)
	test.T(t, g.edges[3].start, 3)
	test.T(t, g.edges[3].end, 0)
}

func TestGraphPathCoincidentNodes(t *testing.T) {
	// endpoints within the node tolerance collapse onto one node
	p := BuildPath(Point{0.0, 0.0}).
		LineTo(Point{4.0, 0.0}).
		LineTo(Point{4.0, 4.0}).
		LineTo(Point{0.005, 0.002}).
		Build()
	g := NewGraphPath(SourcePath1, p)
	test.T(t, len(g.nodes), 3)
	test.T(t, len(g.edges), 3)
}

func TestGraphPathMerge(t *testing.T) {
	g := NewGraphPath(SourcePath1, Rectangle(0.0, 0.0, 2.0, 2.0))
	g.Merge(NewGraphPath(SourcePath2, Rectangle(1.0, 1.0, 2.0, 2.0)))

	// disjoint union, no nodes shared and no edges split
	test.T(t, len(g.nodes), 8)
	test.T(t, len(g.edges), 8)
	for _, e := range g.edges[4:] {
		test.T(t, e.label.Source, SourcePath2)
	}
}

func TestGraphPathCollide(t *testing.T) {
	g := NewGraphPath(SourcePath1, Rectangle(1.0, 1.0, 4.0, 4.0))
	g.Collide(NewGraphPath(SourcePath2, Rectangle(4.0, 4.0, 2.0, 2.0)), 0.01)

	// the boundaries cross at (5,4) and (4,5), adding two shared nodes and
	// splitting one edge of each path at each crossing
	test.T(t, len(g.nodes), 10)
	test.T(t, len(g.edges), 12)

	var at54, at45 int = -1, -1
	for i, n := range g.nodes[8:] {
		if n.Distance(Point{5.0, 4.0}) < 0.05 {
			at54 = 8 + i
		} else if n.Distance(Point{4.0, 5.0}) < 0.05 {
			at45 = 8 + i
		}
	}
	test.That(t, at54 != -1, "crossing node near (5,4)")
	test.That(t, at45 != -1, "crossing node near (4,5)")

	// each crossing node joins both paths
	for _, n := range []int{at54, at45} {
		var sources [2]bool
		for _, e := range g.edges {
			if e.start == n || e.end == n {
				sources[e.label.Source] = true
			}
		}
		test.That(t, sources[SourcePath1] && sources[SourcePath2])
	}
}

func TestGraphPathSelfCollide(t *testing.T) {
	// a bowtie crosses itself once in the middle
	bowtie := BuildPath(Point{0.0, 0.0}).
		LineTo(Point{4.0, 3.0}).
		LineTo(Point{4.0, 0.0}).
		LineTo(Point{0.0, 3.0}).
		Close().
		Build()
	g := NewGraphPath(SourcePath1, bowtie)
	g.SelfCollide(0.01)

	test.T(t, len(g.nodes), 5)
	test.T(t, len(g.edges), 6)
	near(t, g.nodes[4], Point{2.0, 1.5}, 0.05)

	// a simple path is unchanged by self collision
	g = NewGraphPath(SourcePath1, Rectangle(0.0, 0.0, 2.0, 2.0))
	g.SelfCollide(0.01)
	test.T(t, len(g.nodes), 4)
	test.T(t, len(g.edges), 4)
}

func TestGraphPathRayCollisions(t *testing.T) {
	g := NewGraphPath(SourcePath1, Rectangle(1.0, 1.0, 4.0, 4.0))

	// an oblique ray from outside crosses the boundary an even number of times
	cols := g.rayCollisions(Point{0.0, 0.0}, Point{3.0, 2.0})
	test.T(t, len(cols), 2)
	test.That(t, cols[0].s < cols[1].s)
	near(t, cols[0].pos, Point{1.5, 1.0}, 0.01) // enters through the bottom edge
	near(t, cols[1].pos, Point{5.0, 10.0 / 3.0}, 0.01)
}

func TestGraphPathClassifyAndExtract(t *testing.T) {
	g := NewGraphPath(SourcePath1, Rectangle(1.0, 1.0, 4.0, 4.0))
	g.SetEdgeKindsByRayCasting(insideNonzero)
	for i := range g.edges {
		test.T(t, g.edges[i].kind, EdgeExterior)
	}

	g.HealExteriorGaps(0.01)
	loops := g.ExteriorPaths()
	test.T(t, len(loops), 1)
	test.T(t, loops[0].Start, Point{1.0, 1.0})
	test.T(t, len(loops[0].Points), 4)
	test.T(t, loops[0].Points[3].End, loops[0].Start)
}

func TestGraphPathResetEdgeKinds(t *testing.T) {
	g := NewGraphPath(SourcePath1, Rectangle(0.0, 0.0, 1.0, 1.0))
	g.SetEdgeKindsByRayCasting(insideNonzero)
	g.ResetEdgeKinds()
	for i := range g.edges {
		test.T(t, g.edges[i].kind, EdgeUndefined)
	}
}
