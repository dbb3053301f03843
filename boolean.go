package pathbool

// The edge classifiers below receive the signed number of times a ray has
// crossed edges of each operand, and decide whether that tally is inside the
// result region. An edge belongs to the result boundary exactly when the
// decision flips across the edge.

func insideUnion(c1, c2 int) bool {
	return c1&1 != 0 || c2&1 != 0
}

func insideIntersection(c1, c2 int) bool {
	return c1&1 != 0 && c2&1 != 0
}

func insideDifference(c1, c2 int) bool {
	return c1&1 != 0 && c2&1 == 0
}

func insideNonzero(c1, c2 int) bool {
	return c1 != 0 || c2 != 0
}

// Add returns the union of the regions enclosed by the two sets of closed
// paths, located to within roughly accuracy units.
func Add(path1, path2 []BezierPath, accuracy float64) []Path {
	if len(path1) == 0 {
		return toPaths(path2)
	} else if len(path2) == 0 {
		return toPaths(path1)
	}
	g := collidedGraph(path1, path2, accuracy)
	return classify(g, insideUnion, accuracy)
}

// Intersect returns the region common to the two sets of closed paths.
func Intersect(path1, path2 []BezierPath, accuracy float64) []Path {
	if len(path1) == 0 || len(path2) == 0 {
		return nil
	}
	g := collidedGraph(path1, path2, accuracy)
	return classify(g, insideIntersection, accuracy)
}

// Subtract returns the region enclosed by path1 with the region enclosed by
// path2 removed. Subtracting from nothing yields nothing.
func Subtract(path1, path2 []BezierPath, accuracy float64) []Path {
	if len(path1) == 0 {
		return nil
	} else if len(path2) == 0 {
		return toPaths(path1)
	}
	g := collidedGraph(path1, path2, accuracy)
	return classify(g, insideDifference, accuracy)
}

// RemoveInteriorPoints returns the outline of the region covered by the
// paths, removing points of self-overlap: loops that cross themselves or
// each other are replaced by their merged outer boundary under the nonzero
// winding rule.
func RemoveInteriorPoints(paths []BezierPath, accuracy float64) []Path {
	if len(paths) == 0 {
		return nil
	}
	g := NewGraphPath(SourcePath1, paths...)
	g.SelfCollide(accuracy)
	loops := classify(g, insideNonzero, accuracy)
	if len(loops) == 0 {
		logger().Debug("interior point removal eliminated every loop", "paths", len(paths))
	}
	return loops
}

func collidedGraph(path1, path2 []BezierPath, accuracy float64) *GraphPath {
	g := NewGraphPath(SourcePath1, path1...)
	return g.Collide(NewGraphPath(SourcePath2, path2...), accuracy)
}

func classify(g *GraphPath, isInside func(count1, count2 int) bool, accuracy float64) []Path {
	g.SetEdgeKindsByRayCasting(isInside)
	g.HealExteriorGaps(accuracy)
	return g.ExteriorPaths()
}

////////////////////////////////////////////////////////////////

type regionMode int

const (
	regionUnclassified regionMode = iota
	regionIntersection
	regionSubtraction
)

// Region computes the intersection and subtraction of two path sets from a
// single collided graph. Building the graph, which dominates the cost of a
// boolean operation, happens once; switching between the two results only
// reclassifies the edges. The last requested mode is cached, so alternating
// queries pay for reclassification while repeated ones are free.
type Region struct {
	graph    *GraphPath
	accuracy float64
	mode     regionMode
	loops    []Path
}

// NewRegion builds the collided graph for the two path sets.
func NewRegion(path1, path2 []BezierPath, accuracy float64) *Region {
	return &Region{
		graph:    collidedGraph(path1, path2, accuracy),
		accuracy: accuracy,
	}
}

// Intersection returns the region common to both path sets.
func (r *Region) Intersection() []Path {
	return r.classify(regionIntersection, insideIntersection)
}

// Subtraction returns the first path set's region with the second removed.
func (r *Region) Subtraction() []Path {
	return r.classify(regionSubtraction, insideDifference)
}

func (r *Region) classify(mode regionMode, isInside func(count1, count2 int) bool) []Path {
	if r.mode == mode {
		return r.loops
	}
	r.graph.ResetEdgeKinds()
	r.loops = classify(r.graph, isInside, r.accuracy)
	r.mode = mode
	return r.loops
}
