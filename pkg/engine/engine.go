// pkg/engine/engine.go
package engine

import (
	"container/heap"
	"context"
	"errors"

	"github.com/colindj1120/Games/pkg/config"
	"github.com/colindj1120/Games/pkg/entity"
	"github.com/colindj1120/Games/pkg/event"
	"github.com/colindj1120/Games/pkg/logging"
	"github.com/colindj1120/Games/pkg/physics"
)

var (
	// ErrNilEntity is returned when registering a nil ball or wall.
	ErrNilEntity = errors.New("engine: nil entity")

	// ErrDuplicateEntity is returned when an object's identifier is already
	// registered.
	ErrDuplicateEntity = errors.New("engine: entity already registered")
)

// Engine orchestrates the per-tick detect, order, resolve pipeline over the
// registered balls and walls. The pipeline is strictly single-threaded per
// instance: no two ticks overlap, and registered objects must not be mutated
// externally while a tick is in progress.
type Engine struct {
	currentTime float64
	targetTime  float64
	subStep     float64

	tree  *physics.QuadTree
	balls map[uint64]*entity.Ball
	walls map[uint64]*entity.Wall

	queue collisionQueue
	seq   uint64

	bus *event.Bus
	log *logging.Logger
}

// New creates an engine over the world described by cfg. Resolved contacts
// and wall lifecycle changes are published on bus.
func New(cfg *config.Config, bus *event.Bus, log *logging.Logger) *Engine {
	return &Engine{
		currentTime: cfg.Simulation.StartTime,
		targetTime:  cfg.Simulation.TargetTime,
		subStep:     cfg.Simulation.SubStep,
		tree: physics.NewQuadTree(0, physics.Rect{
			X:      0,
			Y:      0,
			Width:  cfg.World.Width,
			Height: cfg.World.Height,
		}),
		balls: make(map[uint64]*entity.Ball),
		walls: make(map[uint64]*entity.Wall),
		bus:   bus,
		log:   log,
	}
}

// AddBall registers a ball with the engine and the spatial index.
func (e *Engine) AddBall(ball *entity.Ball) error {
	if ball == nil {
		return ErrNilEntity
	}
	if _, exists := e.balls[ball.ID()]; exists {
		return ErrDuplicateEntity
	}
	e.balls[ball.ID()] = ball
	e.tree.Insert(ball)
	return nil
}

// AddWall registers a wall with the engine and the spatial index.
func (e *Engine) AddWall(wall *entity.Wall) error {
	if wall == nil {
		return ErrNilEntity
	}
	if _, exists := e.walls[wall.ID()]; exists {
		return ErrDuplicateEntity
	}
	e.walls[wall.ID()] = wall
	e.tree.Insert(wall)
	return nil
}

// CurrentTime returns the simulation clock.
func (e *Engine) CurrentTime() float64 { return e.currentTime }

// TargetTime returns the informational end time of the simulation.
func (e *Engine) TargetTime() float64 { return e.targetTime }

// SubStep returns the configured sub-step size.
func (e *Engine) SubStep() float64 { return e.subStep }

// Ball looks up a registered ball by identifier.
func (e *Engine) Ball(id uint64) (*entity.Ball, bool) {
	ball, ok := e.balls[id]
	return ball, ok
}

// Wall looks up a registered wall by identifier.
func (e *Engine) Wall(id uint64) (*entity.Wall, bool) {
	wall, ok := e.walls[id]
	return wall, ok
}

// Balls returns all registered balls.
func (e *Engine) Balls() []*entity.Ball {
	balls := make([]*entity.Ball, 0, len(e.balls))
	for _, ball := range e.balls {
		balls = append(balls, ball)
	}
	return balls
}

// Walls returns all registered walls.
func (e *Engine) Walls() []*entity.Wall {
	walls := make([]*entity.Wall, 0, len(e.walls))
	for _, wall := range e.walls {
		walls = append(walls, wall)
	}
	return walls
}

// Update advances the simulation by deltaTime seconds: it detects predicted
// contacts across the registered objects, resolves them in ascending time
// order up to the tick boundary, partially advances the participants of the
// first contact beyond the boundary, and moves everything else the full
// step. With no registered objects only the clock advances.
func (e *Engine) Update(ctx context.Context, deltaTime float64) {
	e.currentTime += deltaTime
	if deltaTime <= 0 || (len(e.balls) == 0 && len(e.walls) == 0) {
		return
	}

	e.rebuildIndex()
	e.detectCollisions()
	advanced := e.resolveCollisions(ctx, deltaTime)

	for id, ball := range e.balls {
		if rest := deltaTime - advanced[id]; rest > 0 {
			ball.Advance(rest)
		}
	}
	for id, wall := range e.walls {
		if rest := deltaTime - advanced[id]; rest > 0 {
			wall.Grow(rest)
		}
	}

	e.haltFinishedWalls(ctx)
}

// rebuildIndex reinserts every object so the broad phase sees current
// positions. Objects moved since the last tick, so the partition from the
// previous tick is stale.
func (e *Engine) rebuildIndex() {
	e.tree.Clear()
	for _, ball := range e.balls {
		e.tree.Insert(ball)
	}
	for _, wall := range e.walls {
		e.tree.Insert(wall)
	}
}

// detectCollisions runs narrow-phase prediction over the candidate pairs the
// broad phase cannot rule out, plus the wall-wall pairs linked by neighbor
// identifiers, pushing every predicted contact onto the time-ordered queue.
func (e *Engine) detectCollisions() {
	e.tree.QueryPairs(func(a, b physics.Spatial) {
		switch {
		case a.Kind() == physics.KindBall && b.Kind() == physics.KindBall:
			if col, ok := e.balls[a.ID()].WillCollideWith(e.balls[b.ID()]); ok {
				e.push(col)
			}
		case a.Kind() == physics.KindBall && b.Kind() == physics.KindWall:
			if col, ok := e.balls[a.ID()].WillCollideWithWall(e.walls[b.ID()]); ok {
				e.push(col)
			}
		case a.Kind() == physics.KindWall && b.Kind() == physics.KindBall:
			if col, ok := e.balls[b.ID()].WillCollideWithWall(e.walls[a.ID()]); ok {
				e.push(col)
			}
		}
	})

	for _, wall := range e.walls {
		if !wall.IsGrowing() {
			continue
		}
		if other, ok := e.walls[wall.End1CollideInto()]; ok {
			if col, ok := wall.WillCollideWithEnd1(other); ok {
				e.push(col)
			}
		}
		if other, ok := e.walls[wall.End2CollideInto()]; ok {
			if col, ok := wall.WillCollideWithEnd2(other); ok {
				e.push(col)
			}
		}
	}
}

func (e *Engine) push(col entity.Collision) {
	e.seq++
	heap.Push(&e.queue, &queuedCollision{collision: col, seq: e.seq})
}

// resolveCollisions pops contacts in ascending time order. Contacts inside
// the tick window advance their participants to the contact time and apply
// the response. The first contact beyond the window advances its
// participants to the tick boundary and the remaining queue is discarded,
// to be rediscovered fresh next tick. Returns per-object seconds already
// applied within this tick.
func (e *Engine) resolveCollisions(ctx context.Context, deltaTime float64) map[uint64]float64 {
	advanced := make(map[uint64]float64)

	for e.queue.Len() > 0 {
		item := heap.Pop(&e.queue).(*queuedCollision)
		col := item.collision

		if col.Time > deltaTime {
			e.advanceParticipants(col, deltaTime, advanced)
			e.queue = e.queue[:0]
			break
		}

		e.advanceParticipants(col, col.Time, advanced)
		col.Resolve()
		e.publishResolved(col)
		e.log.Debug(ctx, "collision resolved",
			"kind", col.Kind.String(),
			"time", col.Time,
			"x", col.Point.X,
			"y", col.Point.Y,
		)
	}
	return advanced
}

// advanceParticipants brings every participant of col up to upTo seconds
// into the tick, so consecutive contacts involving the same object compose.
func (e *Engine) advanceParticipants(col entity.Collision, upTo float64, advanced map[uint64]float64) {
	for _, ball := range []*entity.Ball{col.BallA, col.BallB} {
		if ball == nil {
			continue
		}
		if dt := upTo - advanced[ball.ID()]; dt > 0 {
			ball.Advance(dt)
			advanced[ball.ID()] = upTo
		}
	}
	for _, wall := range []*entity.Wall{col.WallA, col.WallB} {
		if wall == nil {
			continue
		}
		if dt := upTo - advanced[wall.ID()]; dt > 0 {
			wall.Grow(dt)
			advanced[wall.ID()] = upTo
		}
	}
}

func (e *Engine) publishResolved(col entity.Collision) {
	switch col.Kind {
	case entity.BallBall:
		e.bus.Publish(event.NewCollisionEvent(event.BallsCollided, e,
			col.BallA.ID(), col.BallB.ID(), col.Time, col.Point.X, col.Point.Y))
	case entity.BallWall:
		e.bus.Publish(event.NewCollisionEvent(event.BallBounced, e,
			col.BallA.ID(), col.WallA.ID(), col.Time, col.Point.X, col.Point.Y))
	case entity.WallWall:
		e.bus.Publish(event.NewCollisionEvent(event.WallsCollided, e,
			col.WallA.ID(), col.WallB.ID(), col.Time, col.Point.X, col.Point.Y))
	}
}

// haltFinishedWalls stops growth on walls whose both ends have reached their
// targets. Growth never stops itself, so the engine performs the check once
// per tick.
func (e *Engine) haltFinishedWalls(ctx context.Context) {
	for _, wall := range e.walls {
		if wall.IsGrowing() && wall.HasReachedEnd1() && wall.HasReachedEnd2() {
			wall.StopGrowing()
			e.bus.Publish(event.NewWallEvent(event.WallStopped, e, wall.ID()))
			e.log.Info(ctx, "wall stopped growing", "wall_id", wall.ID())
		}
	}
}
