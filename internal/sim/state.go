package sim

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"mesawalk/internal/geom"
)

// MoveState classifies the player's relationship to the ground. The
// resolution pass is the sole writer; callers read it for animation and
// audio cues.
type MoveState int

const (
	// StateGrounded means a supporting surface was found under the
	// capsule this tick; gravity is suspended.
	StateGrounded MoveState = iota
	// StateFalling means no support was found; gravity applies.
	StateFalling
)

func (s MoveState) String() string {
	switch s {
	case StateGrounded:
		return "grounded"
	case StateFalling:
		return "falling"
	default:
		return "unknown"
	}
}

// Player is the mutable aggregate the tick loop owns: tracking-space
// position and velocity, the tracked capsule segment for the current
// and previous tick, and the movement state machine.
type Player struct {
	Position rl.Vector3 // tracking-space translation
	Velocity rl.Vector3
	Radius   float32
	Height   float32

	// Segment is the world-space capsule segment after the latest
	// resolution, P0 at the head and P1 at the foot. LastSegment is the
	// previous tick's, kept for the tunneling-safe landing probe.
	Segment     geom.LineSegment
	LastSegment geom.LineSegment

	JumpsRemaining int
	State          MoveState

	// ContactNormal is the surface normal from the most recent
	// floor-likeness check, for animation and audio cues.
	ContactNormal rl.Vector3

	jumpHeld bool
}

// NewPlayer creates a player standing at spawn with all jumps available.
func NewPlayer(spawn rl.Vector3, radius, height float32, maxJumps int) *Player {
	segment := standingSegment(height).Translate(spawn)
	return &Player{
		Position:       spawn,
		Radius:         radius,
		Height:         height,
		Segment:        segment,
		LastSegment:    segment,
		JumpsRemaining: maxJumps,
		State:          StateGrounded,
	}
}

// standingSegment is the default head-to-foot capsule segment in
// tracking space, used until the caller supplies a tracked one.
func standingSegment(height float32) geom.LineSegment {
	return geom.LineSegment{
		P0: rl.Vector3{Z: height},
		P1: rl.Vector3{},
	}
}

// Camera is the free-floating spherical camera. It has no movement
// state; it only gets pushed out of geometry.
type Camera struct {
	Position     rl.Vector3
	LastPosition rl.Vector3
	HitRadius    float32
}

// NewCamera creates a camera at the given position.
func NewCamera(position rl.Vector3, hitRadius float32) *Camera {
	return &Camera{
		Position:     position,
		LastPosition: position,
		HitRadius:    hitRadius,
	}
}

// Input is one tick's worth of control state.
type Input struct {
	// Move is the stick vector in the XY plane, unit range. Magnitudes
	// under the deadzone zero the horizontal velocity.
	Move rl.Vector2
	// Jump is true while the jump control is held; only the rising edge
	// triggers a jump, and releasing early halves the remaining ascent.
	Jump bool
	// Segment is the tracked capsule segment in tracking space, P0 at
	// the head and P1 at the foot. The world-space segment is this
	// translated by the player's position.
	Segment geom.LineSegment
}

// StandingInput returns an input with the default standing capsule for
// the given player and no controls held.
func StandingInput(p *Player) Input {
	return Input{Segment: standingSegment(p.Height)}
}

// Events reports the transitions of one tick, for animation and audio.
type Events struct {
	Jumped     bool
	Landed     bool
	LeftGround bool
}
