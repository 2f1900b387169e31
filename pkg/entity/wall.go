// pkg/entity/wall.go
package entity

import (
	"errors"
	"math"
	"sync"

	"github.com/EngoEngine/ecs"

	"github.com/colindj1120/Games/pkg/physics"
)

// Orientation is the axis a wall lies along.
type Orientation int

const (
	Horizontal Orientation = iota
	Vertical
)

var (
	// ErrMisalignedWall is returned when a wall's start and targets do not
	// share a row or a column within tolerance.
	ErrMisalignedWall = errors.New("entity: wall endpoints must be aligned on a shared axis")

	// ErrInvalidGrowthRate is returned when a growing wall is constructed
	// with a non-positive growth rate, which would make the growing-wall
	// searches non-terminating.
	ErrInvalidGrowthRate = errors.New("entity: growing wall requires a positive growth rate")
)

// Wall is an axis-aligned segment that may be stationary or actively growing
// from its start point toward two target endpoints. The two current ends
// mutate independently as the wall grows; targets, size, and start stay
// fixed. Orientation is derived from the endpoint alignment on every read so
// it can never go stale; the bounding box is cached and invalidated whenever
// an end moves.
type Wall struct {
	ecs.BasicEntity

	mu          sync.Mutex
	start       physics.Coordinate
	currentEnd1 physics.Coordinate
	currentEnd2 physics.Coordinate
	growing     bool
	growthRate  float64

	target1 physics.Coordinate
	target2 physics.Coordinate
	size    float64

	// Identifiers of the neighboring walls each end grows into, resolved
	// through the engine's wall registry. Zero means no neighbor.
	end1CollideInto uint64
	end2CollideInto uint64

	cachedBounds *physics.AABB
}

// NewWall constructs a wall anchored at start with the given thickness. The
// start and both targets must be mutually row-aligned or column-aligned; a
// growing wall must have a positive growth rate. A growing wall's ends begin
// at start; a stationary wall is complete, its ends already at the targets.
func NewWall(start physics.Coordinate, size, growthRate float64, growing bool, target1, target2 physics.Coordinate) (*Wall, error) {
	rowAligned := start.SameRow(target1) && start.SameRow(target2)
	columnAligned := start.SameColumn(target1) && start.SameColumn(target2)
	if !rowAligned && !columnAligned {
		return nil, ErrMisalignedWall
	}
	if growing && growthRate <= 0 {
		return nil, ErrInvalidGrowthRate
	}

	end1, end2 := start, start
	if !growing {
		end1, end2 = target1, target2
	}
	return &Wall{
		BasicEntity: ecs.NewBasic(),
		start:       start,
		currentEnd1: end1,
		currentEnd2: end2,
		growing:     growing,
		growthRate:  growthRate,
		target1:     target1,
		target2:     target2,
		size:        size,
	}, nil
}

// SetNeighbors records the walls each end grows into, by identifier.
func (w *Wall) SetNeighbors(end1CollideInto, end2CollideInto uint64) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.end1CollideInto = end1CollideInto
	w.end2CollideInto = end2CollideInto
}

// End1CollideInto returns the identifier of the wall end 1 grows into, or
// zero when there is none.
func (w *Wall) End1CollideInto() uint64 {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.end1CollideInto
}

// End2CollideInto returns the identifier of the wall end 2 grows into, or
// zero when there is none.
func (w *Wall) End2CollideInto() uint64 {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.end2CollideInto
}

// Position returns the wall's start point.
func (w *Wall) Position() physics.Coordinate {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.start
}

// SetPosition moves the wall's start point.
func (w *Wall) SetPosition(position physics.Coordinate) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.start = position
	w.cachedBounds = nil
}

// CurrentEnd1 returns the first end's current position.
func (w *Wall) CurrentEnd1() physics.Coordinate {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.currentEnd1
}

// CurrentEnd2 returns the second end's current position.
func (w *Wall) CurrentEnd2() physics.Coordinate {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.currentEnd2
}

// Target1 returns the first end's target.
func (w *Wall) Target1() physics.Coordinate { return w.target1 }

// Target2 returns the second end's target.
func (w *Wall) Target2() physics.Coordinate { return w.target2 }

// Size returns the wall's thickness across the perpendicular axis.
func (w *Wall) Size() float64 { return w.size }

// IsGrowing reports whether the wall is actively growing.
func (w *Wall) IsGrowing() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.growing
}

// GrowthRate returns the current growth rate in units per second.
func (w *Wall) GrowthRate() float64 {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.growthRate
}

// StopGrowing halts growth and forces the rate to zero.
func (w *Wall) StopGrowing() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.growing = false
	w.growthRate = 0
}

// Orientation reports whether the wall lies along a row or a column. The
// value is derived fresh from the start and targets on every call, so it can
// never go stale; construction guarantees the alignment it reads.
func (w *Wall) Orientation() Orientation {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.orientationLocked()
}

func (w *Wall) orientationLocked() Orientation {
	if w.start.SameRow(w.target1) && w.start.SameRow(w.target2) {
		return Horizontal
	}
	return Vertical
}

// Kind identifies the wall to the spatial index.
func (w *Wall) Kind() physics.Kind { return physics.KindWall }

// Bounds returns the wall's bounding box: long-axis extent from the current
// ends, cross-axis extent from the start's cross coordinate plus or minus
// half the thickness. The result is cached until an end moves.
func (w *Wall) Bounds() physics.AABB {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.boundsLocked()
}

func (w *Wall) boundsLocked() physics.AABB {
	if w.cachedBounds != nil {
		return *w.cachedBounds
	}

	var box physics.AABB
	if w.orientationLocked() == Horizontal {
		box = physics.AABB{
			MinX: physics.MinX(w.currentEnd1, w.currentEnd2),
			MinY: w.start.Y - w.size/2,
			MaxX: physics.MaxX(w.currentEnd1, w.currentEnd2),
			MaxY: w.start.Y + w.size/2,
		}
	} else {
		box = physics.AABB{
			MinX: w.start.X - w.size/2,
			MinY: physics.MinY(w.currentEnd1, w.currentEnd2),
			MaxX: w.start.X + w.size/2,
			MaxY: physics.MaxY(w.currentEnd1, w.currentEnd2),
		}
	}
	w.cachedBounds = &box
	return box
}

// IntersectsRect reports whether the wall's footprint overlaps the region.
func (w *Wall) IntersectsRect(r physics.Rect) bool {
	return r.Intersects(w.Bounds())
}

// HasReachedEnd1 reports whether the first end sits at its target within
// tolerance.
func (w *Wall) HasReachedEnd1() bool {
	return w.CurrentEnd1().Equals(w.target1)
}

// HasReachedEnd2 reports whether the second end sits at its target within
// tolerance.
func (w *Wall) HasReachedEnd2() bool {
	return w.CurrentEnd2().Equals(w.target2)
}

// Grow advances each end that has not yet reached its target by
// growthRate·dt toward it, the two ends moving in opposite directions along
// the wall's long axis. Ends clamp at their targets and growth never stops
// itself: a caller must detect both ends arriving and call StopGrowing.
func (w *Wall) Grow(dt float64) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.growing {
		return
	}

	amount := w.growthRate * dt
	if !w.currentEnd1.Equals(w.target1) {
		w.currentEnd1 = stepToward(w.currentEnd1, w.target1, amount)
		w.cachedBounds = nil
	}
	if !w.currentEnd2.Equals(w.target2) {
		w.currentEnd2 = stepToward(w.currentEnd2, w.target2, amount)
		w.cachedBounds = nil
	}
}

// stepToward moves current by amount along the axis toward target, clamping
// at the target.
func stepToward(current, target physics.Coordinate, amount float64) physics.Coordinate {
	next := current
	switch {
	case target.X > current.X:
		next.X = math.Min(current.X+amount, target.X)
	case target.X < current.X:
		next.X = math.Max(current.X-amount, target.X)
	case target.Y > current.Y:
		next.Y = math.Min(current.Y+amount, target.Y)
	case target.Y < current.Y:
		next.Y = math.Max(current.Y-amount, target.Y)
	}
	return next
}

// TimeToBecomeStationary returns how long until both ends reach their
// targets at the current rate: zero when already there, +Inf when the wall
// is not growing.
func (w *Wall) TimeToBecomeStationary() float64 {
	if w.HasReachedEnd1() && w.HasReachedEnd2() {
		return 0
	}

	rate := w.GrowthRate()
	if rate <= 0 {
		return math.Inf(1)
	}

	var distance1, distance2 float64
	if !w.HasReachedEnd1() {
		distance1 = euclideanDistance(w.CurrentEnd1(), w.target1)
	}
	if !w.HasReachedEnd2() {
		distance2 = euclideanDistance(w.CurrentEnd2(), w.target2)
	}
	return math.Max(distance1/rate, distance2/rate)
}

func euclideanDistance(a, b physics.Coordinate) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

// WillCollideWithEnd1 predicts the contact between this wall's first end and
// the other wall, modelling both ends as 1D points on the shared long axis.
func (w *Wall) WillCollideWithEnd1(other *Wall) (Collision, bool) {
	return w.willCollideEnd(other, w.CurrentEnd1(), other.CurrentEnd1())
}

// WillCollideWithEnd2 predicts the contact between this wall's second end
// and the other wall.
func (w *Wall) WillCollideWithEnd2(other *Wall) (Collision, bool) {
	return w.willCollideEnd(other, w.CurrentEnd2(), other.CurrentEnd2())
}

func (w *Wall) willCollideEnd(other *Wall, thisEnd, otherEnd physics.Coordinate) (Collision, bool) {
	// Closing only when the other end's rate falls short of ours.
	relativeVelocity := other.GrowthRate() - w.GrowthRate()
	if relativeVelocity >= 0 {
		return Collision{}, false
	}

	var relativePosition float64
	if w.Orientation() == Horizontal {
		relativePosition = otherEnd.X - thisEnd.X
	} else {
		relativePosition = otherEnd.Y - thisEnd.Y
	}

	t := relativePosition / relativeVelocity
	if t < 0 {
		return Collision{}, false
	}

	point := physics.Coordinate{
		X: thisEnd.X + (otherEnd.X-thisEnd.X)*t,
		Y: thisEnd.Y + (otherEnd.Y-thisEnd.Y)*t,
	}
	return Collision{
		Time:  t,
		Point: point,
		Kind:  WallWall,
		WallA: w,
		WallB: other,
	}, true
}

// Equal reports whether two walls carry the same state. Coordinates compare
// within tolerance; the remaining attributes compare exactly.
func (w *Wall) Equal(other *Wall) bool {
	if w == other {
		return true
	}
	if other == nil {
		return false
	}
	return w.size == other.size &&
		w.GrowthRate() == other.GrowthRate() &&
		w.IsGrowing() == other.IsGrowing() &&
		w.Position().Equals(other.Position()) &&
		w.CurrentEnd1().Equals(other.CurrentEnd1()) &&
		w.CurrentEnd2().Equals(other.CurrentEnd2()) &&
		w.target1.Equals(other.target1) &&
		w.target2.Equals(other.target2)
}
