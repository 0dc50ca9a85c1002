// Package sim is the per-tick collision and movement-resolution core.
// Each tick is a synchronous, single-threaded pass over the static
// terrain triangles and box obstacles: candidate motion goes in,
// corrected position, velocity and movement state come out. Nothing
// here blocks, allocates beyond transient working values, or touches
// the terrain.
package sim

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"mesawalk/internal/geom"
	"mesawalk/internal/terrain"
)

// floorNormalDot is the floor-likeness threshold: a surface counts as
// floor when its normal's dot with up is at least this (within 60° of
// vertical-up). Steeper faces are walls and only depenetrate.
const floorNormalDot = 0.5

// stickDeadzone is the stick magnitude under which horizontal input is
// treated as zero.
const stickDeadzone = 0.1

// sideEpsilon keeps the player's horizontal box check from triggering
// when standing exactly on top of a box.
const sideEpsilon = 1e-7

// Params are the simulation constants for a stage.
type Params struct {
	Gravity         float32
	MoveSpeed       float32
	JumpSpeed       float32
	RiseVelocityCap float32
	MaxJumps        int
	Spawn           rl.Vector3
}

// World is the static collision scene: the terrain mesh plus a dense
// arena of box obstacles. Both are read-only for the whole lifetime of
// the world; only Player and Camera aggregates mutate.
type World struct {
	Terrain *terrain.Terrain
	Boxes   []geom.AABB
	Params  Params
}

// NewWorld assembles a world from its static pieces.
func NewWorld(t *terrain.Terrain, boxes []geom.AABB, params Params) *World {
	return &World{Terrain: t, Boxes: boxes, Params: params}
}

// Step advances the player one tick: input is shaped into velocity,
// gravity applies while falling, the candidate position is integrated,
// and the collision passes correct it. The returned events describe
// this tick's transitions.
func (w *World) Step(p *Player, in Input, dt float32) Events {
	before := p.State

	jumped := w.applyInput(p, in)

	if p.State == StateFalling {
		p.Velocity.Z -= w.Params.Gravity * dt
		// One-directional clamp: only the upward component is capped,
		// which matters while still rising after a jump.
		if p.Velocity.Z > w.Params.RiseVelocityCap {
			p.Velocity.Z = w.Params.RiseVelocityCap
		}
	}

	// Candidate position for this tick; the passes below correct it.
	p.Position = rl.Vector3Add(p.Position, rl.Vector3Scale(p.Velocity, dt))

	prevFoot := p.Segment.P1

	w.resolveSideBoxes(p, in.Segment)
	w.resolveCapsuleTerrain(p, in.Segment)
	w.resolveStanding(p, in.Segment, prevFoot)

	p.LastSegment = p.Segment
	p.Segment = in.Segment.Translate(p.Position)

	return Events{
		Jumped:     jumped,
		Landed:     before == StateFalling && p.State == StateGrounded,
		LeftGround: before == StateGrounded && p.State == StateFalling,
	}
}

// applyInput shapes stick input into horizontal velocity and handles
// the jump control's edges. Reports whether a jump launched.
func (w *World) applyInput(p *Player, in Input) bool {
	magnitude := rl.Vector2Length(in.Move)
	if magnitude < stickDeadzone {
		p.Velocity.X = 0
		p.Velocity.Y = 0
	} else {
		dir := rl.Vector3Normalize(rl.Vector3{X: in.Move.X, Y: in.Move.Y})
		p.Velocity.X = dir.X * w.Params.MoveSpeed * magnitude
		p.Velocity.Y = dir.Y * w.Params.MoveSpeed * magnitude
	}

	jumped := false
	if in.Jump && !p.jumpHeld {
		if p.JumpsRemaining > 0 {
			p.JumpsRemaining--
			p.Velocity.Z = w.Params.JumpSpeed
			p.State = StateFalling
			jumped = true
		}
	} else if !in.Jump && p.jumpHeld && p.Velocity.Z > 0 {
		// Releasing the control early halves the remaining ascent.
		p.Velocity.Z /= 2
	}
	p.jumpHeld = in.Jump

	return jumped
}

// Reset teleports the player back to spawn with velocity zeroed, all
// jumps restored and ground contact assumed.
func (w *World) Reset(p *Player) {
	p.Position = w.Params.Spawn
	p.Velocity = rl.Vector3Zero()
	p.State = StateGrounded
	p.JumpsRemaining = w.Params.MaxJumps
	p.Segment = standingSegment(p.Height).Translate(w.Params.Spawn)
	p.LastSegment = p.Segment
	p.ContactNormal = rl.Vector3{}
}
