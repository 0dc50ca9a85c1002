package geom

import (
	"math"
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func approx(t *testing.T, got, want, tol float32, field string) {
	t.Helper()
	if float32(math.Abs(float64(got-want))) > tol {
		t.Fatalf("%s = %v, want %v (tol=%v)", field, got, want, tol)
	}
}

func approxVec3(t *testing.T, got, want rl.Vector3, tol float32, field string) {
	t.Helper()
	if rl.Vector3Distance(got, want) > tol {
		t.Fatalf("%s = %+v, want %+v (tol=%v)", field, got, want, tol)
	}
}

var floorPlane = Plane{Point: rl.Vector3{}, Normal: rl.Vector3{Z: 1}}

func TestSegmentPlaneIntersection_Hit(t *testing.T) {
	segment := LineSegment{
		P0: rl.Vector3{X: 1, Y: 2, Z: 3},
		P1: rl.Vector3{X: 1, Y: 2, Z: -1},
	}

	point, ok := SegmentPlaneIntersection(floorPlane, segment)
	if !ok {
		t.Fatal("expected an intersection")
	}

	// The hit lies on the plane and between the endpoints.
	approx(t, PointPlaneDistance(point, floorPlane), 0, 1e-6, "distance to plane")
	approxVec3(t, point, rl.Vector3{X: 1, Y: 2, Z: 0}, 1e-6, "intersection point")
}

func TestSegmentPlaneIntersection_RootRange(t *testing.T) {
	tests := []struct {
		name    string
		segment LineSegment
		hit     bool
	}{
		{
			// t=0: a point already resting on the plane is not a fresh collision.
			name:    "start point on plane excluded",
			segment: LineSegment{P0: rl.Vector3{}, P1: rl.Vector3{Z: 1}},
			hit:     false,
		},
		{
			// t=1: the end point counts.
			name:    "end point on plane included",
			segment: LineSegment{P0: rl.Vector3{Z: 1}, P1: rl.Vector3{}},
			hit:     true,
		},
		{
			name:    "crossing beyond the end excluded",
			segment: LineSegment{P0: rl.Vector3{Z: 3}, P1: rl.Vector3{Z: 1}},
			hit:     false,
		},
		{
			name:    "parallel segment misses",
			segment: LineSegment{P0: rl.Vector3{Z: 1}, P1: rl.Vector3{X: 5, Z: 1}},
			hit:     false,
		},
		{
			name:    "zero-length segment misses",
			segment: LineSegment{P0: rl.Vector3{Z: 1}, P1: rl.Vector3{Z: 1}},
			hit:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, ok := SegmentPlaneIntersection(floorPlane, tt.segment); ok != tt.hit {
				t.Errorf("hit = %v, want %v", ok, tt.hit)
			}
		})
	}
}

func TestBoundedSegmentPlaneIntersection(t *testing.T) {
	bounds := PlaneBoundaries{XMin: -1, XMax: 1, YMin: -1, YMax: 1}
	down := rl.Vector3{Z: -2}

	inside := LineSegment{P0: rl.Vector3{X: 0.5, Y: 0.5, Z: 1}, P1: rl.Vector3Add(rl.Vector3{X: 0.5, Y: 0.5, Z: 1}, down)}
	if _, ok := BoundedSegmentPlaneIntersection(floorPlane, inside, bounds); !ok {
		t.Error("crossing inside the bounds should hit")
	}

	outside := LineSegment{P0: rl.Vector3{X: 2, Y: 0, Z: 1}, P1: rl.Vector3Add(rl.Vector3{X: 2, Y: 0, Z: 1}, down)}
	if _, ok := BoundedSegmentPlaneIntersection(floorPlane, outside, bounds); ok {
		t.Error("crossing outside the bounds should miss")
	}

	// The rim comparison is strict: exactly on the boundary is out.
	rim := LineSegment{P0: rl.Vector3{X: 1, Y: 0, Z: 1}, P1: rl.Vector3Add(rl.Vector3{X: 1, Y: 0, Z: 1}, down)}
	if _, ok := BoundedSegmentPlaneIntersection(floorPlane, rim, bounds); ok {
		t.Error("crossing exactly on the rim should miss")
	}
}

func TestRayPlaneIntersection(t *testing.T) {
	// Behind-the-origin intersections still report; callers filter t.
	dist, point, ok := RayPlaneIntersection(rl.Vector3{Z: 2}, rl.Vector3{Z: 1}, floorPlane)
	if !ok {
		t.Fatal("expected a root")
	}
	approx(t, dist, -2, 1e-6, "t")
	approxVec3(t, point, rl.Vector3{}, 1e-6, "point")

	if _, _, ok := RayPlaneIntersection(rl.Vector3{Z: 2}, rl.Vector3{X: 1}, floorPlane); ok {
		t.Error("parallel ray should report no intersection")
	}
}

func TestPointPlaneDistance_Signed(t *testing.T) {
	approx(t, PointPlaneDistance(rl.Vector3{Z: 3}, floorPlane), 3, 1e-6, "above")
	approx(t, PointPlaneDistance(rl.Vector3{Z: -2}, floorPlane), -2, 1e-6, "below")
	approx(t, PointPlaneDistance(rl.Vector3{X: 7}, floorPlane), 0, 1e-6, "on plane")
}

func TestPointInTriangle2D(t *testing.T) {
	a := rl.Vector2{X: 0, Y: 0}
	b := rl.Vector2{X: 4, Y: 0}
	c := rl.Vector2{X: 0, Y: 4}
	centroid := rl.Vector2{X: (a.X + b.X + c.X) / 3, Y: (a.Y + b.Y + c.Y) / 3}

	if !PointInTriangle2D(centroid, a, b, c) {
		t.Error("centroid should be inside")
	}
	// Invariant under the opposite winding.
	if !PointInTriangle2D(centroid, c, b, a) {
		t.Error("centroid should be inside regardless of winding")
	}
	if PointInTriangle2D(rl.Vector2{X: 5, Y: 5}, a, b, c) {
		t.Error("far point should be outside")
	}
	// Zero edge signs count as inside.
	if !PointInTriangle2D(rl.Vector2{X: 2, Y: 0}, a, b, c) {
		t.Error("point on an edge should count as inside")
	}
	if !PointInTriangle2D(a, a, b, c) {
		t.Error("vertex should count as inside")
	}
}

func TestClosestPointOnSegment(t *testing.T) {
	p0 := rl.Vector3{X: 0}
	p1 := rl.Vector3{X: 10}

	tests := []struct {
		name  string
		query rl.Vector3
		want  rl.Vector3
	}{
		{"projects onto the middle", rl.Vector3{X: 4, Y: 3}, rl.Vector3{X: 4}},
		{"clamps to the start", rl.Vector3{X: -5, Y: 1}, p0},
		{"clamps to the end", rl.Vector3{X: 15, Y: 1}, p1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			approxVec3(t, ClosestPointOnSegment(tt.query, p0, p1), tt.want, 1e-6, "closest point")
		})
	}

	// Degenerate segment returns its only point.
	approxVec3(t, ClosestPointOnSegment(rl.Vector3{X: 3}, p0, p0), p0, 1e-6, "degenerate segment")
}

func TestClosestPointOnTriangle_InsideFootprint(t *testing.T) {
	tri := Triangle{
		A:      rl.Vector3{X: -5, Y: -5},
		B:      rl.Vector3{X: 5, Y: -5},
		C:      rl.Vector3{X: 0, Y: 5},
		Normal: rl.Vector3{Z: 1},
	}

	// A query above the footprint gets the exact perpendicular distance.
	dist, point := ClosestPointOnTriangle(rl.Vector3{X: 0, Y: 0, Z: 2.5}, tri)
	approx(t, dist, 2.5, 1e-6, "perpendicular distance")
	approxVec3(t, point, rl.Vector3{}, 1e-6, "projection")
}

func TestClosestPointOnTriangle_EdgeClamp(t *testing.T) {
	tri := Triangle{
		A:      rl.Vector3{X: 0, Y: 0},
		B:      rl.Vector3{X: 4, Y: 0},
		C:      rl.Vector3{X: 0, Y: 4},
		Normal: rl.Vector3{Z: 1},
	}

	// Outside the footprint, past edge AB.
	dist, point := ClosestPointOnTriangle(rl.Vector3{X: 2, Y: -3, Z: 0}, tri)
	approx(t, dist, 3, 1e-6, "edge distance")
	approxVec3(t, point, rl.Vector3{X: 2}, 1e-6, "edge clamp")

	// Past vertex A the clamp lands on the vertex itself.
	dist, point = ClosestPointOnTriangle(rl.Vector3{X: -3, Y: -4, Z: 0}, tri)
	approx(t, dist, 5, 1e-6, "vertex distance")
	approxVec3(t, point, tri.A, 1e-6, "vertex clamp")
}

func TestClosestPointOnTriangle_VertexBound(t *testing.T) {
	tri := Triangle{
		A:      rl.Vector3{X: 1, Y: 0, Z: 2},
		B:      rl.Vector3{X: -1, Y: 3, Z: 2},
		C:      rl.Vector3{X: 0, Y: -2, Z: 4},
		Normal: rl.Vector3Normalize(rl.Vector3CrossProduct(
			rl.Vector3Subtract(rl.Vector3{X: -1, Y: 3, Z: 2}, rl.Vector3{X: 1, Y: 0, Z: 2}),
			rl.Vector3Subtract(rl.Vector3{X: 0, Y: -2, Z: 4}, rl.Vector3{X: 1, Y: 0, Z: 2}),
		)),
	}

	queries := []rl.Vector3{
		{X: 0, Y: 0, Z: 0},
		{X: 5, Y: 5, Z: 5},
		{X: -2, Y: 1, Z: 3},
		{X: 0.5, Y: 0.5, Z: 2.5},
	}

	// The distance never beats the distance to every vertex.
	for _, q := range queries {
		dist, _ := ClosestPointOnTriangle(q, tri)
		for _, v := range []rl.Vector3{tri.A, tri.B, tri.C} {
			if dist > rl.Vector3Distance(q, v)+1e-5 {
				t.Errorf("query %+v: distance %v exceeds distance to vertex %+v", q, dist, v)
			}
		}
	}
}
