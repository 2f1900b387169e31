// pkg/entity/ball.go
package entity

import (
	"math"
	"sync"

	"github.com/EngoEngine/ecs"

	"github.com/colindj1120/Games/pkg/physics"
)

// Ball is a moving circle in the arena. Position and direction mutate as the
// engine advances the simulation and applies collision responses; speed,
// radius, and mass are fixed at construction. Mass is carried for game rules
// but does not weight any response formula.
type Ball struct {
	ecs.BasicEntity

	mu        sync.Mutex
	position  physics.Coordinate
	direction float64 // radians, normalized to [0, 2π)

	speed  float64
	radius float64
	mass   float64
}

// NewBall constructs a ball with the given initial state. The direction is
// normalized into [0, 2π).
func NewBall(position physics.Coordinate, speed, direction, radius, mass float64) *Ball {
	return &Ball{
		BasicEntity: ecs.NewBasic(),
		position:    position,
		direction:   normalizeAngle(direction),
		speed:       speed,
		radius:      radius,
		mass:        mass,
	}
}

// Position returns the ball's center.
func (b *Ball) Position() physics.Coordinate {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.position
}

// SetPosition moves the ball's center.
func (b *Ball) SetPosition(position physics.Coordinate) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.position = position
}

// Direction returns the movement angle in radians, within [0, 2π).
func (b *Ball) Direction() float64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.direction
}

// SetDirection sets the movement angle, normalizing into [0, 2π).
func (b *Ball) SetDirection(direction float64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.direction = normalizeAngle(direction)
}

// Speed returns the ball's constant speed.
func (b *Ball) Speed() float64 { return b.speed }

// Radius returns the ball's radius.
func (b *Ball) Radius() float64 { return b.radius }

// Mass returns the ball's mass.
func (b *Ball) Mass() float64 { return b.mass }

// Velocity returns the current velocity vector.
func (b *Ball) Velocity() physics.Vector2D {
	b.mu.Lock()
	defer b.mu.Unlock()
	return physics.FromAngle(b.direction, b.speed)
}

// Kind identifies the ball to the spatial index.
func (b *Ball) Kind() physics.Kind { return physics.KindBall }

// IntersectsRect reports whether the circle overlaps the region, using the
// closest point on the rectangle to the center.
func (b *Ball) IntersectsRect(r physics.Rect) bool {
	pos := b.Position()

	closestX := math.Max(r.X, math.Min(pos.X, r.X+r.Width))
	closestY := math.Max(r.Y, math.Min(pos.Y, r.Y+r.Height))

	dx := pos.X - closestX
	dy := pos.Y - closestY

	return dx*dx+dy*dy < b.radius*b.radius
}

// Bounds returns the circle's bounding box.
func (b *Ball) Bounds() physics.AABB {
	pos := b.Position()
	return physics.AABB{
		MinX: pos.X - b.radius,
		MinY: pos.Y - b.radius,
		MaxX: pos.X + b.radius,
		MaxY: pos.Y + b.radius,
	}
}

// Advance moves the ball along its current direction for dt seconds.
func (b *Ball) Advance(dt float64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	v := physics.FromAngle(b.direction, b.speed)
	b.position = physics.Coordinate{
		X: b.position.X + v.X*dt,
		Y: b.position.Y + v.Y*dt,
	}
}

// Equal reports whether two balls carry the same state. Positions compare
// within tolerance; the remaining attributes compare exactly.
func (b *Ball) Equal(other *Ball) bool {
	if b == other {
		return true
	}
	if other == nil {
		return false
	}
	return b.Position().Equals(other.Position()) &&
		b.Direction() == other.Direction() &&
		b.speed == other.speed &&
		b.radius == other.radius &&
		b.mass == other.mass
}

// WillCollideWith predicts the first future contact with another ball as a
// moving-circle pair. Reports ok=false when the balls already overlap, when
// there is no relative motion, when the quadratic has no real root, or when
// both roots lie in the past.
func (b *Ball) WillCollideWith(other *Ball) (Collision, bool) {
	p1 := b.Position()
	p2 := other.Position()

	dx := p2.X - p1.X
	dy := p2.Y - p1.Y
	sumRadii := b.radius + other.radius

	// Interpenetration is not an imminent-collision signal.
	if math.Hypot(dx, dy) < sumRadii {
		return Collision{}, false
	}

	v1 := b.Velocity()
	v2 := other.Velocity()

	// Velocity of the other ball relative to this one.
	dvx := v2.X - v1.X
	dvy := v2.Y - v1.Y

	// |d + dv·t| = sumRadii as a quadratic a·t² + q·t + c = 0.
	a := dvx*dvx + dvy*dvy
	if a == 0 {
		return Collision{}, false
	}
	q := 2 * (dx*dvx + dy*dvy)
	c := dx*dx + dy*dy - sumRadii*sumRadii

	discriminant := q*q - 4*a*c
	if discriminant < 0 {
		return Collision{}, false
	}

	sqrtDisc := math.Sqrt(discriminant)
	t1 := (-q + sqrtDisc) / (2 * a)
	t2 := (-q - sqrtDisc) / (2 * a)

	t := math.Min(t1, t2)
	if t < 0 {
		t = math.Max(t1, t2)
	}
	if t < 0 {
		return Collision{}, false
	}

	point := physics.Coordinate{
		X: p1.X + v1.X*t,
		Y: p1.Y + v1.Y*t,
	}
	return Collision{
		Time:  t,
		Point: point,
		Kind:  BallBall,
		BallA: b,
		BallB: other,
	}, true
}

// WillCollideWithWall predicts the first future contact with a wall. A
// stationary wall is a 1D sweep against its radius-inflated band across the
// perpendicular axis. A growing wall is a discretized search: each end is
// stepped from its current position toward its target in growth-rate
// increments, and the first sample the ball reaches no later than the wall
// does is the contact. The temporal resolution of the growing case is bounded
// by the growth-rate step size.
func (b *Ball) WillCollideWithWall(wall *Wall) (Collision, bool) {
	pos := b.Position()
	v := b.Velocity()
	horizontal := wall.Orientation() == Horizontal

	if !wall.IsGrowing() || wall.GrowthRate() <= 0 {
		return b.collideStationaryWall(wall, pos, v, horizontal)
	}
	return b.collideGrowingWall(wall, pos, v, horizontal)
}

func (b *Ball) collideStationaryWall(wall *Wall, pos physics.Coordinate, v physics.Vector2D, horizontal bool) (Collision, bool) {
	half := wall.Size() / 2
	anchor := wall.Position()

	var t float64
	var ok bool
	var point physics.Coordinate
	if horizontal {
		bandMin := anchor.Y - half
		t, ok = timeToPaddedBand(bandMin, anchor.Y+half, pos.Y, v.Y, b.radius)
		point = physics.Coordinate{X: pos.X + v.X*t, Y: bandMin}
	} else {
		bandMin := anchor.X - half
		t, ok = timeToPaddedBand(bandMin, anchor.X+half, pos.X, v.X, b.radius)
		point = physics.Coordinate{X: bandMin, Y: pos.Y + v.Y*t}
	}
	if !ok {
		return Collision{}, false
	}
	return Collision{
		Time:  t,
		Point: point,
		Kind:  BallWall,
		BallA: b,
		WallA: wall,
	}, true
}

func (b *Ball) collideGrowingWall(wall *Wall, pos physics.Coordinate, v physics.Vector2D, horizontal bool) (Collision, bool) {
	rate := wall.GrowthRate()
	half := wall.Size() / 2

	axisCoord := pos.X
	axisVel := v.X
	if !horizontal {
		axisCoord = pos.Y
		axisVel = v.Y
	}

	best := Collision{Time: math.Inf(1)}
	found := false

	check := func(current, target float64) {
		step := rate
		if target < current {
			step = -rate
		}
		for sample := current; (step > 0 && sample <= target) || (step < 0 && sample >= target); sample += step {
			wallTime := math.Abs(sample-current) / rate
			ballTime, ok := timeToPaddedBand(sample-half, sample+half, axisCoord, axisVel, b.radius)
			if !ok || ballTime > wallTime {
				continue
			}
			if ballTime < best.Time {
				var point physics.Coordinate
				if horizontal {
					point = physics.Coordinate{X: sample - half, Y: pos.Y + v.Y*ballTime}
				} else {
					point = physics.Coordinate{X: pos.X + v.X*ballTime, Y: sample - half}
				}
				best = Collision{
					Time:  ballTime,
					Point: point,
					Kind:  BallWall,
					BallA: b,
					WallA: wall,
				}
				found = true
			}
			return
		}
	}

	if horizontal {
		check(wall.CurrentEnd1().X, wall.Target1().X)
		check(wall.CurrentEnd2().X, wall.Target2().X)
	} else {
		check(wall.CurrentEnd1().Y, wall.Target1().Y)
		check(wall.CurrentEnd2().Y, wall.Target2().Y)
	}

	if !found {
		return Collision{}, false
	}
	return best, true
}

// timeToPaddedBand sweeps a point with the given 1D velocity against the band
// [bandMin, bandMax] inflated by radius, returning the arrival time at the
// near padded edge. No contact is reported when the point is not moving,
// already inside the padded band, or moving away.
func timeToPaddedBand(bandMin, bandMax, coord, velocity, radius float64) (float64, bool) {
	if velocity == 0 {
		return 0, false
	}
	t1 := (bandMin - radius - coord) / velocity
	t2 := (bandMax + radius - coord) / velocity

	entry := math.Min(t1, t2)
	exit := math.Max(t1, t2)

	if entry >= 0 && entry <= exit {
		return entry, true
	}
	return 0, false
}

// ResolveCollision reflects both balls' velocities about the unit normal
// joining their centers, keeping each ball's speed constant. Mass is not a
// weighting factor.
func (b *Ball) ResolveCollision(other *Ball) {
	p1 := b.Position()
	p2 := other.Position()

	v1 := b.Velocity()
	v2 := other.Velocity()

	normal := physics.Vector2D{X: p2.X - p1.X, Y: p2.Y - p1.Y}.Normalize()

	reflected1 := v1.Sub(normal.Scale(2 * v1.Dot(normal)))
	reflected2 := v2.Sub(normal.Scale(2 * v2.Dot(normal)))

	b.SetDirection(reflected1.Angle())
	other.SetDirection(reflected2.Angle())
}

// BounceOffWall reflects the ball's direction across the wall's axis:
// θ → (2π − θ) for a horizontal wall, θ → (π − θ) for a vertical one.
func (b *Ball) BounceOffWall(wall *Wall) {
	current := b.Direction()
	if wall.Orientation() == Horizontal {
		b.SetDirection(2*math.Pi - current)
	} else {
		b.SetDirection(math.Pi - current)
	}
}

// normalizeAngle maps an angle into [0, 2π).
func normalizeAngle(angle float64) float64 {
	normalized := math.Mod(angle, 2*math.Pi)
	if normalized < 0 {
		normalized += 2 * math.Pi
	}
	return normalized
}
