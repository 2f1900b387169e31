// pkg/entity/collision.go
package entity

import "github.com/colindj1120/Games/pkg/physics"

// CollisionKind is the closed set of contact pairings the engine resolves.
type CollisionKind int

const (
	BallBall CollisionKind = iota
	BallWall
	WallWall
)

// String returns a human-readable name for the kind.
func (k CollisionKind) String() string {
	switch k {
	case BallBall:
		return "ball_ball"
	case BallWall:
		return "ball_wall"
	case WallWall:
		return "wall_wall"
	default:
		return "unknown"
	}
}

// Collision is an immutable predicted contact produced during detection.
// Time is tick-relative: seconds from the start of the current tick.
// Participant pointers are non-owning; resolving mutates the live objects.
// A Collision lives for at most one tick: it is created during detection and
// either resolved or superseded by a partial advance before the tick ends.
type Collision struct {
	Time  float64
	Point physics.Coordinate
	Kind  CollisionKind

	BallA *Ball
	BallB *Ball
	WallA *Wall
	WallB *Wall
}

// Resolve applies the response for this contact kind to the participants:
// ball-ball reflects both velocities about the center normal, ball-wall
// reflects the ball across the wall's axis, and wall-wall halts growth on
// both walls.
func (c Collision) Resolve() {
	switch c.Kind {
	case BallBall:
		c.BallA.ResolveCollision(c.BallB)
	case BallWall:
		c.BallA.BounceOffWall(c.WallA)
	case WallWall:
		c.WallA.StopGrowing()
		c.WallB.StopGrowing()
	}
}

// PartialAdvance moves the participants forward by dt without resolving the
// contact: balls advance along their direction, growing walls grow.
func (c Collision) PartialAdvance(dt float64) {
	for _, ball := range []*Ball{c.BallA, c.BallB} {
		if ball != nil {
			ball.Advance(dt)
		}
	}
	for _, wall := range []*Wall{c.WallA, c.WallB} {
		if wall != nil && wall.IsGrowing() {
			wall.Grow(dt)
		}
	}
}

// Participants returns the identifiers of the objects this contact involves.
func (c Collision) Participants() []uint64 {
	var ids []uint64
	for _, ball := range []*Ball{c.BallA, c.BallB} {
		if ball != nil {
			ids = append(ids, ball.ID())
		}
	}
	for _, wall := range []*Wall{c.WallA, c.WallB} {
		if wall != nil {
			ids = append(ids, wall.ID())
		}
	}
	return ids
}
