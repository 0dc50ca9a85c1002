package sim

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"mesawalk/internal/geom"
)

// resolveSideBoxes pushes the player's footprint circle out of each
// box's footprint rectangle in the XY plane. Boxes whose top is at or
// below the player are walkable surfaces, not walls, and are skipped.
func (w *World) resolveSideBoxes(p *Player, local geom.LineSegment) {
	foot := rl.Vector3Add(local.P1, p.Position)
	focus := rl.Vector3{X: foot.X, Y: foot.Y}

	for _, box := range w.Boxes {
		if p.Position.Z+sideEpsilon >= box.MaxZ() {
			continue
		}

		closest := box.ClosestPointXY(foot)
		distance := rl.Vector3Distance(closest, focus)
		if distance > 0 && distance < p.Radius {
			dir := rl.Vector3Normalize(rl.Vector3Subtract(focus, closest))
			p.Position = rl.Vector3Add(p.Position, rl.Vector3Scale(dir, p.Radius-distance))
		}
	}
}

// resolveCapsuleTerrain runs the capsule against every terrain triangle
// once. Floor-like face contacts snap the player onto the surface and
// ground the state machine; steeper faces depenetrate without touching
// velocity or jumps; edge and vertex contacts push along the contact
// direction. Corrections accumulate across the single pass, so each
// triangle sees the position as already adjusted by its predecessors.
func (w *World) resolveCapsuleTerrain(p *Player, local geom.LineSegment) {
	if w.Terrain == nil {
		return
	}

	for i := 0; i < w.Terrain.TriangleCount(); i++ {
		tri := w.Terrain.Triangle(i)
		plane := tri.Plane()

		foot := rl.Vector3Add(local.P1, p.Position)
		head := rl.Vector3Add(local.P0, p.Position)
		top := rl.Vector3Add(head, rl.Vector3Scale(geom.Up, p.Radius))

		// The capsule's vertical axis as a ray from the foot upward. A
		// zero denominator means the face is exactly vertical; classify
		// by the foot's perpendicular projection instead.
		var inside bool
		var reference rl.Vector3
		if _, axisHit, ok := geom.RayPlaneIntersection(foot, geom.Up, plane); ok {
			test, a2, b2, c2 := geom.ProjectDominant2D(axisHit, tri)
			inside = geom.PointInTriangle2D(test, a2, b2, c2)
			reference = axisHit
			if !inside {
				_, reference = geom.ClosestPointOnTriangle(axisHit, tri)
			}
		} else {
			projected := rl.Vector3Subtract(foot, rl.Vector3Scale(plane.Normal, geom.PointPlaneDistance(foot, plane)))
			test, a2, b2, c2 := geom.ProjectDominant2D(projected, tri)
			inside = geom.PointInTriangle2D(test, a2, b2, c2)
			reference = projected
			if !inside {
				_, reference = geom.ClosestPointOnTriangle(projected, tri)
			}
		}

		capsuleRef := geom.ClosestPointOnSegment(reference, foot, top)
		distance := geom.PointPlaneDistance(capsuleRef, plane)

		if inside {
			if absf(distance) >= p.Radius {
				continue
			}
			slope := rl.Vector3DotProduct(plane.Normal, geom.Up)
			if slope >= floorNormalDot {
				// Floor face: move vertically so the capsule just
				// touches the plane, then ground the state machine.
				snap := (rl.Vector3DotProduct(plane.Normal, rl.Vector3Subtract(tri.A, capsuleRef)) + p.Radius) / slope
				p.Position.Z += snap
				p.Velocity.Z = 0
				p.JumpsRemaining = w.Params.MaxJumps
				p.State = StateGrounded
				p.ContactNormal = plane.Normal
			} else {
				// Wall or ceiling: pure depenetration, not a landing.
				p.Position = rl.Vector3Add(p.Position, rl.Vector3Scale(plane.Normal, p.Radius-distance))
			}
			continue
		}

		// Edge or vertex contact.
		d, closest := geom.ClosestPointOnTriangle(capsuleRef, tri)
		if d >= p.Radius || d == 0 {
			// An exactly-zero distance has no push direction; skip
			// rather than divide by zero in the normalize.
			continue
		}
		dir := rl.Vector3Normalize(rl.Vector3Subtract(capsuleRef, closest))
		p.Position = rl.Vector3Add(p.Position, rl.Vector3Scale(dir, p.Radius-d))
		if rl.Vector3DotProduct(dir, geom.Up) >= floorNormalDot {
			p.Velocity.Z = 0
			p.JumpsRemaining = w.Params.MaxJumps
			p.ContactNormal = dir
		}
	}
}

// resolveStanding is the supporting-surface search that owns the
// Grounded/Falling transitions. It is independent of the per-triangle
// pass above: a vertical probe segment is tested against every terrain
// triangle and every box top, and the tallest crossing wins, so a tick
// that crosses several stacked surfaces stands on the highest one.
func (w *World) resolveStanding(p *Player, local geom.LineSegment, prevFoot rl.Vector3) {
	foot := rl.Vector3Add(local.P1, p.Position)

	switch p.State {
	case StateFalling:
		// Probe from slightly above the previous foot down to the
		// current one, so fast falls cannot tunnel past a surface.
		probe := geom.LineSegment{
			P0: rl.Vector3Add(prevFoot, rl.Vector3{Z: 0.05}),
			P1: foot,
		}
		point, normal, ok := w.tallestSupport(probe)
		if ok && rl.Vector3DotProduct(normal, geom.Up) >= floorNormalDot {
			p.Velocity.Z = 0
			p.Position = rl.Vector3Add(p.Position, rl.Vector3Subtract(point, foot))
			p.JumpsRemaining = w.Params.MaxJumps
			p.State = StateGrounded
			p.ContactNormal = normal
		}

	case StateGrounded:
		// Re-find the support under the foot; stepping off it costs a
		// jump and starts the fall.
		probe := geom.LineSegment{
			P0: rl.Vector3Add(foot, rl.Vector3{Z: 0.5}),
			P1: rl.Vector3Subtract(foot, rl.Vector3{Z: 0.2}),
		}
		point, normal, ok := w.tallestSupport(probe)
		if ok {
			p.Velocity.Z = 0
			p.Position = rl.Vector3Add(p.Position, rl.Vector3Subtract(point, foot))
			p.ContactNormal = normal
		} else {
			if p.JumpsRemaining > 0 {
				p.JumpsRemaining--
			}
			p.State = StateFalling
		}
	}
}

// tallestSupport intersects the probe against every terrain triangle
// whose footprint contains the probe's end point, and against every
// box's top plane. Among all crossings the one with the greatest Z
// wins; ties between terrain and boxes resolve the same way.
func (w *World) tallestSupport(probe geom.LineSegment) (point, normal rl.Vector3, found bool) {
	maxHeight := float32(math.Inf(-1))

	if w.Terrain != nil {
		foot := rl.Vector2{X: probe.P1.X, Y: probe.P1.Y}
		for i := 0; i < w.Terrain.TriangleCount(); i++ {
			tri := w.Terrain.Triangle(i)
			a := rl.Vector2{X: tri.A.X, Y: tri.A.Y}
			b := rl.Vector2{X: tri.B.X, Y: tri.B.Y}
			c := rl.Vector2{X: tri.C.X, Y: tri.C.Y}
			if !geom.PointInTriangle2D(foot, a, b, c) {
				continue
			}
			if pt, ok := geom.SegmentPlaneIntersection(tri.Plane(), probe); ok && pt.Z > maxHeight {
				maxHeight = pt.Z
				point, normal, found = pt, tri.Normal, true
			}
		}
	}

	for _, box := range w.Boxes {
		plane, bounds := box.TopPlane()
		if pt, ok := geom.BoundedSegmentPlaneIntersection(plane, probe, bounds); ok && pt.Z > maxHeight {
			maxHeight = pt.Z
			point, normal, found = pt, plane.Normal, true
		}
	}

	return point, normal, found
}

func absf(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
