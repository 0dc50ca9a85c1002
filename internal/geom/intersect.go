package geom

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// dominantAxisEpsilon decides whether a face is horizontal enough to be
// projected onto the XY plane for 2D point-in-triangle tests.
const dominantAxisEpsilon = 1e-6

// SegmentPlaneIntersection solves for the point where the segment
// crosses the plane. The valid root range is 0 < t <= 1: the start
// point is excluded so a point already resting on a plane is not
// reported as a fresh collision, while the end point counts.
//
// A denominator of exactly zero means the segment is parallel to the
// plane (or degenerate) and reports no intersection. This is an exact
// compare, not an epsilon one; grazing segments with a tiny but nonzero
// denominator still produce a root.
func SegmentPlaneIntersection(plane Plane, segment LineSegment) (rl.Vector3, bool) {
	denominator := rl.Vector3DotProduct(plane.Normal, segment.Delta())
	if denominator == 0.0 {
		return rl.Vector3{}, false
	}

	t := rl.Vector3DotProduct(plane.Normal, rl.Vector3Subtract(plane.Point, segment.P0)) / denominator
	if t <= 0.0 || t > 1.0 {
		return rl.Vector3{}, false
	}

	point := rl.Vector3Add(rl.Vector3Scale(segment.P0, 1.0-t), rl.Vector3Scale(segment.P1, t))
	return point, true
}

// BoundedSegmentPlaneIntersection is SegmentPlaneIntersection with the
// hit additionally required to fall strictly inside the rectangle.
func BoundedSegmentPlaneIntersection(plane Plane, segment LineSegment, bounds PlaneBoundaries) (rl.Vector3, bool) {
	point, ok := SegmentPlaneIntersection(plane, segment)
	if !ok || !bounds.Contains(point) {
		return rl.Vector3{}, false
	}
	return point, true
}

// RayPlaneIntersection is the unbounded-ray version of the same
// formula. The returned t may be negative (intersection behind the
// origin); callers filter. A zero denominator reports no intersection.
func RayPlaneIntersection(origin, direction rl.Vector3, plane Plane) (float32, rl.Vector3, bool) {
	denominator := rl.Vector3DotProduct(direction, plane.Normal)
	if denominator == 0.0 {
		return 0, rl.Vector3{}, false
	}

	t := rl.Vector3DotProduct(rl.Vector3Subtract(plane.Point, origin), plane.Normal) / denominator
	point := rl.Vector3Add(origin, rl.Vector3Scale(direction, t))
	return t, point, true
}

// PointPlaneDistance returns the signed distance from the point to the
// plane; positive is on the side the normal points toward.
func PointPlaneDistance(point rl.Vector3, plane Plane) float32 {
	return rl.Vector3DotProduct(plane.Normal, rl.Vector3Subtract(point, plane.Point))
}

// edgeSign is the 2D edge test for PointInTriangle2D.
func edgeSign(test, p0, p1 rl.Vector2) float32 {
	return (test.X-p1.X)*(p0.Y-p1.Y) - (p0.X-p1.X)*(test.Y-p1.Y)
}

// PointInTriangle2D reports whether p lies inside the triangle (a,b,c)
// in 2D. A point is inside iff the three edge signs do not disagree;
// zero signs (point on an edge or degenerate triangle) count as inside.
// The result is invariant under a consistent winding of (a,b,c).
func PointInTriangle2D(p, a, b, c rl.Vector2) bool {
	d1 := edgeSign(p, a, b)
	d2 := edgeSign(p, b, c)
	d3 := edgeSign(p, c, a)

	hasNeg := d1 < 0.0 || d2 < 0.0 || d3 < 0.0
	hasPos := d1 > 0.0 || d2 > 0.0 || d3 > 0.0

	return !(hasNeg && hasPos)
}

// ClosestPointOnSegment projects query onto the segment p0-p1 and
// clamps the result to the segment's extent. A degenerate segment
// returns p0.
func ClosestPointOnSegment(query, p0, p1 rl.Vector3) rl.Vector3 {
	d := rl.Vector3Subtract(p1, p0)
	lengthSq := rl.Vector3DotProduct(d, d)
	if lengthSq == 0.0 {
		return p0
	}

	t := clamp(rl.Vector3DotProduct(rl.Vector3Subtract(query, p0), d)/lengthSq, 0.0, 1.0)
	return rl.Vector3Add(p0, rl.Vector3Scale(d, t))
}

// ProjectDominant2D drops the triangle normal's dominant axis and
// returns the 2D projections of a point and the triangle's vertices.
// Near-horizontal faces drop Z; otherwise the larger of |X| and |Y|
// is dropped so the projected triangle keeps the most area.
func ProjectDominant2D(p rl.Vector3, tri Triangle) (test, a, b, c rl.Vector2) {
	n := tri.Normal
	switch {
	case abs(n.Z) > dominantAxisEpsilon && abs(n.Z) >= abs(n.X) && abs(n.Z) >= abs(n.Y):
		return rl.Vector2{X: p.X, Y: p.Y},
			rl.Vector2{X: tri.A.X, Y: tri.A.Y},
			rl.Vector2{X: tri.B.X, Y: tri.B.Y},
			rl.Vector2{X: tri.C.X, Y: tri.C.Y}
	case abs(n.X) >= abs(n.Y):
		return rl.Vector2{X: p.Y, Y: p.Z},
			rl.Vector2{X: tri.A.Y, Y: tri.A.Z},
			rl.Vector2{X: tri.B.Y, Y: tri.B.Z},
			rl.Vector2{X: tri.C.Y, Y: tri.C.Z}
	default:
		return rl.Vector2{X: p.X, Y: p.Z},
			rl.Vector2{X: tri.A.X, Y: tri.A.Z},
			rl.Vector2{X: tri.B.X, Y: tri.B.Z},
			rl.Vector2{X: tri.C.X, Y: tri.C.Z}
	}
}

// ClosestPointOnTriangle returns the point on the triangle nearest to
// query and the distance to it. The query is projected onto the
// triangle's plane first; if the projection lands inside the 2D
// footprint the perpendicular projection is the answer, otherwise the
// result is clamped to the globally nearest of the three edges.
func ClosestPointOnTriangle(query rl.Vector3, tri Triangle) (float32, rl.Vector3) {
	plane := tri.Plane()
	dist := PointPlaneDistance(query, plane)
	projected := rl.Vector3Subtract(query, rl.Vector3Scale(plane.Normal, dist))

	test, a2, b2, c2 := ProjectDominant2D(projected, tri)
	if PointInTriangle2D(test, a2, b2, c2) {
		return abs(dist), projected
	}

	edges := [3][2]rl.Vector3{
		{tri.A, tri.B},
		{tri.B, tri.C},
		{tri.C, tri.A},
	}

	best := float32(math.Inf(1))
	var bestPoint rl.Vector3
	for _, e := range edges {
		p := ClosestPointOnSegment(query, e[0], e[1])
		d := rl.Vector3Distance(query, p)
		if d < best {
			best = d
			bestPoint = p
		}
	}
	return best, bestPoint
}
