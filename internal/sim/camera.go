package sim

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"mesawalk/internal/geom"
)

// StepCamera integrates the camera by the given velocity and resolves
// it against the floor and the box obstacles.
func (w *World) StepCamera(c *Camera, velocity rl.Vector3, dt float32) {
	c.LastPosition = c.Position
	c.Position = rl.Vector3Add(c.Position, rl.Vector3Scale(velocity, dt))
	w.ResolveCamera(c)
}

// ResolveCamera pushes the camera sphere out of every box it overlaps
// and clamps it above the floor. Unlike the player there is no movement
// state; the camera only ever gets displaced.
func (w *World) ResolveCamera(c *Camera) {
	// The camera never dips below its own radius.
	if c.Position.Z < c.HitRadius {
		c.Position.Z = c.HitRadius
	}

	for _, box := range w.Boxes {
		closest := box.ClosestPoint(c.Position)
		distance := rl.Vector3Distance(c.Position, closest)

		if distance > 0 && distance < c.HitRadius {
			dir := rl.Vector3Normalize(rl.Vector3Subtract(c.Position, closest))
			c.Position = rl.Vector3Add(c.Position, rl.Vector3Scale(dir, c.HitRadius-distance))
		} else if distance == 0 {
			// The center is inside the box: the camera moved fast
			// enough to tunnel in one tick. Recover by intersecting the
			// previous-to-current segment with the six face planes and
			// pushing out along the first one crossed.
			segment := geom.LineSegment{P0: c.LastPosition, P1: c.Position}
			for _, plane := range box.FacePlanes() {
				if _, ok := geom.SegmentPlaneIntersection(plane, segment); ok {
					dist := geom.PointPlaneDistance(c.Position, plane)
					c.Position = rl.Vector3Add(c.Position, rl.Vector3Scale(plane.Normal, c.HitRadius-dist))
					break
				}
			}
		}
	}
}
