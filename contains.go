package pathbool

import "sort"

// rayEndSlack extends the ray parameter cutoff slightly past the query point
// so that a crossing at the point itself, found with rounding error on
// either side of 1, is still counted.
const rayEndSlack = 1e-6

// Contains reports whether the point lies inside the region enclosed by the
// path, under the nonzero winding rule. It casts a ray from outside the
// path's bounding box to the point and sums the signed crossings up to the
// point; the point is inside when the sum is nonzero.
func Contains(path BezierPath, pt Point) bool {
	bounds := fastPathBounds(path)
	if !bounds.ContainsPoint(pt) {
		return false
	}

	// diagonal off the bbox corner, oblique to axis-aligned edges
	from := Point{bounds.X - 1.0, bounds.Y - 1.0}
	rayDir := pt.Sub(from)

	type crossing struct {
		s   float64
		dir int
	}
	var crossings []crossing
	for _, c := range Curves(path) {
		for _, z := range curveIntersectsRay(c, from, pt) {
			crossings = append(crossings, crossing{z.S, sign(rayDir.Dot(c.NormalAt(z.T)))})
		}
	}
	sort.Slice(crossings, func(i, j int) bool { return crossings[i].s < crossings[j].s })

	total := 0
	for _, c := range crossings {
		if 1.0+rayEndSlack < c.s {
			// the ray has passed the query point
			break
		}
		total += c.dir
	}
	return total != 0
}
