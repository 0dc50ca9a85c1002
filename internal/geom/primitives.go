// Package geom holds the collision primitives and the intersection and
// distance queries built on them. The stage uses a Z-up convention:
// gravity acts along -Z and "floor-like" means a normal close to +Z.
package geom

import rl "github.com/gen2brain/raylib-go/raylib"

// Up is the world up axis.
var Up = rl.Vector3{X: 0, Y: 0, Z: 1}

// LineSegment is a directed segment from P0 to P1. A tick's motion of a
// point, or the player's head-to-foot extent, is expressed as one of
// these. Zero-length segments are legal and simply never intersect
// anything (the plane-test denominator is zero).
type LineSegment struct {
	P0, P1 rl.Vector3
}

// Delta returns the vector from P0 to P1.
func (s LineSegment) Delta() rl.Vector3 {
	return rl.Vector3Subtract(s.P1, s.P0)
}

// Length returns the length of the segment.
func (s LineSegment) Length() float32 {
	return rl.Vector3Length(s.Delta())
}

// Translate returns the segment shifted by v.
func (s LineSegment) Translate(v rl.Vector3) LineSegment {
	return LineSegment{
		P0: rl.Vector3Add(s.P0, v),
		P1: rl.Vector3Add(s.P1, v),
	}
}

// Plane is an infinite plane defined by a point on it and its normal.
// Construction accepts any normal, but the intersection and distance
// functions assume it is unit length; normalize before storing.
type Plane struct {
	Point  rl.Vector3
	Normal rl.Vector3
}

// PlaneBoundaries clips an otherwise infinite plane to a rectangle in
// the XY frame, used to bound a plane to a box face.
type PlaneBoundaries struct {
	XMin, XMax float32
	YMin, YMax float32
}

// Contains reports whether p falls strictly inside the rectangle.
// The comparison is strict on purpose: a point exactly on the rim of a
// box face does not count as being on the face.
func (b PlaneBoundaries) Contains(p rl.Vector3) bool {
	return p.X > b.XMin && p.X < b.XMax && p.Y > b.YMin && p.Y < b.YMax
}

// Sphere is a center point and radius. The camera collides as one of
// these, and the capsule caps reduce to sphere tests.
type Sphere struct {
	Focus  rl.Vector3
	Radius float32
}

// Capsule is a vertical swept sphere: the segment runs from the foot up
// to a point Radius above head contact.
type Capsule struct {
	Segment LineSegment
	Radius  float32
}

// Triangle is a single face with its precomputed normal. Triangles are
// derived views over terrain index data, constructed on demand and
// never stored.
type Triangle struct {
	A, B, C rl.Vector3
	Normal  rl.Vector3
}

// Centroid returns the triangle's centroid.
func (t Triangle) Centroid() rl.Vector3 {
	sum := rl.Vector3Add(rl.Vector3Add(t.A, t.B), t.C)
	return rl.Vector3Scale(sum, 1.0/3.0)
}

// Plane returns the triangle's supporting plane, anchored at vertex A.
func (t Triangle) Plane() Plane {
	return Plane{Point: t.A, Normal: t.Normal}
}

// clamp restricts a value to a range
func clamp(v, min, max float32) float32 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
