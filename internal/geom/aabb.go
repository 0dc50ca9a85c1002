package geom

import rl "github.com/gen2brain/raylib-go/raylib"

// AABB is a static axis-aligned box given by its center and half
// extents: the box spans Position.X ± Width, Position.Y ± Depth and
// Position.Z ± Height. Boxes are created at stage-build time and never
// mutated.
type AABB struct {
	Position rl.Vector3
	Width    float32
	Depth    float32
	Height   float32
}

// MinZ returns the Z coordinate of the box's bottom face.
func (a AABB) MinZ() float32 {
	return a.Position.Z - a.Height
}

// MaxZ returns the Z coordinate of the box's top face.
func (a AABB) MaxZ() float32 {
	return a.Position.Z + a.Height
}

// Boundaries returns the box's footprint as a plane clip rectangle.
func (a AABB) Boundaries() PlaneBoundaries {
	return PlaneBoundaries{
		XMin: a.Position.X - a.Width,
		XMax: a.Position.X + a.Width,
		YMin: a.Position.Y - a.Depth,
		YMax: a.Position.Y + a.Depth,
	}
}

// TopPlane returns the box's top face as a bounded upward-facing plane.
func (a AABB) TopPlane() (Plane, PlaneBoundaries) {
	point := a.Position
	point.Z += a.Height
	return Plane{Point: point, Normal: rl.Vector3{Z: 1}}, a.Boundaries()
}

// BottomPlane returns the box's bottom face as a bounded downward-facing plane.
func (a AABB) BottomPlane() (Plane, PlaneBoundaries) {
	point := a.Position
	point.Z -= a.Height
	return Plane{Point: point, Normal: rl.Vector3{Z: -1}}, a.Boundaries()
}

// FacePlanes returns the six outward-facing bounding planes of the box.
// Used as the tunneling fallback when a moving sphere's center ends up
// inside the box in a single tick.
func (a AABB) FacePlanes() [6]Plane {
	p := a.Position
	return [6]Plane{
		{Point: rl.Vector3Add(p, rl.Vector3{X: a.Width}), Normal: rl.Vector3{X: 1}},
		{Point: rl.Vector3Add(p, rl.Vector3{X: -a.Width}), Normal: rl.Vector3{X: -1}},
		{Point: rl.Vector3Add(p, rl.Vector3{Y: a.Depth}), Normal: rl.Vector3{Y: 1}},
		{Point: rl.Vector3Add(p, rl.Vector3{Y: -a.Depth}), Normal: rl.Vector3{Y: -1}},
		{Point: rl.Vector3Add(p, rl.Vector3{Z: a.Height}), Normal: rl.Vector3{Z: 1}},
		{Point: rl.Vector3Add(p, rl.Vector3{Z: -a.Height}), Normal: rl.Vector3{Z: -1}},
	}
}

// ClosestPoint clamps p into the box's extent on every axis, yielding
// the nearest point on (or in) the box.
func (a AABB) ClosestPoint(p rl.Vector3) rl.Vector3 {
	return rl.Vector3{
		X: clamp(p.X, a.Position.X-a.Width, a.Position.X+a.Width),
		Y: clamp(p.Y, a.Position.Y-a.Depth, a.Position.Y+a.Depth),
		Z: clamp(p.Z, a.Position.Z-a.Height, a.Position.Z+a.Height),
	}
}

// ClosestPointXY clamps p's footprint into the box's footprint,
// ignoring Z. Player side collision reduces to circle vs rectangle in
// the XY plane.
func (a AABB) ClosestPointXY(p rl.Vector3) rl.Vector3 {
	return rl.Vector3{
		X: clamp(p.X, a.Position.X-a.Width, a.Position.X+a.Width),
		Y: clamp(p.Y, a.Position.Y-a.Depth, a.Position.Y+a.Depth),
		Z: 0,
	}
}
