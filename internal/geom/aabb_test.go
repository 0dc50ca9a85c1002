package geom

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var box = AABB{
	Position: rl.Vector3{X: 10, Y: -5, Z: 2},
	Width:    3,
	Depth:    1,
	Height:   2,
}

func TestAABB_Extents(t *testing.T) {
	approx(t, box.MinZ(), 0, 1e-6, "MinZ")
	approx(t, box.MaxZ(), 4, 1e-6, "MaxZ")

	b := box.Boundaries()
	if b.XMin != 7 || b.XMax != 13 || b.YMin != -6 || b.YMax != -4 {
		t.Errorf("Boundaries() = %+v", b)
	}
}

func TestAABB_TopAndBottomPlanes(t *testing.T) {
	top, bounds := box.TopPlane()
	approxVec3(t, top.Point, rl.Vector3{X: 10, Y: -5, Z: 4}, 1e-6, "top point")
	approxVec3(t, top.Normal, rl.Vector3{Z: 1}, 1e-6, "top normal")
	if bounds != box.Boundaries() {
		t.Errorf("top bounds = %+v", bounds)
	}

	bottom, _ := box.BottomPlane()
	approxVec3(t, bottom.Point, rl.Vector3{X: 10, Y: -5, Z: 0}, 1e-6, "bottom point")
	approxVec3(t, bottom.Normal, rl.Vector3{Z: -1}, 1e-6, "bottom normal")
}

func TestAABB_FacePlanes(t *testing.T) {
	planes := box.FacePlanes()
	if len(planes) != 6 {
		t.Fatalf("got %d planes", len(planes))
	}

	// Every plane faces away from the center, and its point sits on the
	// matching face.
	for i, plane := range planes {
		out := rl.Vector3DotProduct(rl.Vector3Subtract(plane.Point, box.Position), plane.Normal)
		if out <= 0 {
			t.Errorf("plane %d normal points inward (dot=%v)", i, out)
		}
	}

	// An exterior point is in front of exactly one face plane per axis
	// it exceeds.
	outside := rl.Vector3{X: 20, Y: -5, Z: 2}
	front := 0
	for _, plane := range planes {
		if PointPlaneDistance(outside, plane) > 0 {
			front++
		}
	}
	if front != 1 {
		t.Errorf("point past one face is in front of %d planes, want 1", front)
	}
}

func TestAABB_ClosestPoint(t *testing.T) {
	tests := []struct {
		name  string
		query rl.Vector3
		want  rl.Vector3
	}{
		{"interior point is its own answer", rl.Vector3{X: 10, Y: -5, Z: 2}, rl.Vector3{X: 10, Y: -5, Z: 2}},
		{"clamps on one axis", rl.Vector3{X: 20, Y: -5, Z: 2}, rl.Vector3{X: 13, Y: -5, Z: 2}},
		{"clamps on all axes", rl.Vector3{X: -1, Y: 4, Z: 9}, rl.Vector3{X: 7, Y: -4, Z: 4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			approxVec3(t, box.ClosestPoint(tt.query), tt.want, 1e-6, "closest point")
		})
	}
}

func TestAABB_ClosestPointXY(t *testing.T) {
	got := box.ClosestPointXY(rl.Vector3{X: 20, Y: 4, Z: 99})
	approxVec3(t, got, rl.Vector3{X: 13, Y: -4, Z: 0}, 1e-6, "footprint clamp")
}
