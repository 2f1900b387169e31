// pkg/engine/queue.go
package engine

import "github.com/colindj1120/Games/pkg/entity"

// queuedCollision pairs a predicted contact with its insertion sequence so
// that equal predicted times pop in insertion order, keeping resolution
// deterministic.
type queuedCollision struct {
	collision entity.Collision
	seq       uint64
}

// collisionQueue is a min-heap ordered by predicted time, then sequence.
type collisionQueue []*queuedCollision

func (q collisionQueue) Len() int { return len(q) }

func (q collisionQueue) Less(i, j int) bool {
	if q[i].collision.Time != q[j].collision.Time {
		return q[i].collision.Time < q[j].collision.Time
	}
	return q[i].seq < q[j].seq
}

func (q collisionQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *collisionQueue) Push(x any) { *q = append(*q, x.(*queuedCollision)) }

func (q *collisionQueue) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*q = old[:n-1]
	return item
}
