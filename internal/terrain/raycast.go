package terrain

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"mesawalk/internal/geom"
)

// RayHit is the nearest terrain face struck by a ray.
type RayHit struct {
	TriangleIndex int
	Point         rl.Vector3
	Distance      float32
}

// Raycast scans every triangle for the nearest intersection in front of
// the origin. This is a brute-force O(triangle count) pass on purpose;
// callers adding a spatial index must produce identical hits.
func Raycast(t *Terrain, origin, direction rl.Vector3) (RayHit, bool) {
	smallest := float32(math.Inf(1))
	var best RayHit
	hit := false

	for i := 0; i < t.TriangleCount(); i++ {
		tri := t.Triangle(i)

		// A zero denominator means the ray is parallel to this face.
		dist, point, ok := geom.RayPlaneIntersection(origin, direction, tri.Plane())
		if !ok || dist <= 0.0 || dist >= smallest {
			continue
		}

		test, a, b, c := geom.ProjectDominant2D(point, tri)
		if !geom.PointInTriangle2D(test, a, b, c) {
			continue
		}

		smallest = dist
		best = RayHit{TriangleIndex: i, Point: point, Distance: dist}
		hit = true
	}

	return best, hit
}
