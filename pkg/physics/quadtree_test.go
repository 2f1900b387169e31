// pkg/physics/quadtree_test.go
package physics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubSpatial is a fixed-box object for index tests.
type stubSpatial struct {
	id   uint64
	box  AABB
	kind Kind
}

func (s *stubSpatial) ID() uint64                  { return s.id }
func (s *stubSpatial) Position() Coordinate        { return Coordinate{X: s.box.MinX, Y: s.box.MinY} }
func (s *stubSpatial) SetPosition(Coordinate)      {}
func (s *stubSpatial) IntersectsRect(r Rect) bool  { return r.Intersects(s.box) }
func (s *stubSpatial) Bounds() AABB                { return s.box }
func (s *stubSpatial) Kind() Kind                  { return s.kind }

var nextStubID uint64

func stubAt(minX, minY, size float64, kind Kind) *stubSpatial {
	nextStubID++
	return &stubSpatial{
		id:   nextStubID,
		box:  AABB{MinX: minX, MinY: minY, MaxX: minX + size, MaxY: minY + size},
		kind: kind,
	}
}

func TestQuadTree_InsertKeepsObjectsUntilOverflow(t *testing.T) {
	qt := NewQuadTree(0, Rect{X: 0, Y: 0, Width: 1000, Height: 1000})

	for i := 0; i < MaxObjectsPerNode; i++ {
		qt.Insert(stubAt(10+float64(i)*20, 10, 5, KindBall))
	}

	assert.Len(t, qt.objects, MaxObjectsPerNode)
	assert.Nil(t, qt.children)
}

func TestQuadTree_OverflowSplitsAndRehomes(t *testing.T) {
	qt := NewQuadTree(0, Rect{X: 0, Y: 0, Width: 1000, Height: 1000})

	// All eleven objects fit strictly inside the NW quadrant but straddle
	// that child's own midline, so re-homing stops at the child.
	for i := 0; i < MaxObjectsPerNode+1; i++ {
		qt.Insert(stubAt(245, 10+float64(i)*20, 10, KindBall))
	}

	require.NotNil(t, qt.children)
	assert.Empty(t, qt.objects)
	assert.Len(t, qt.children[quadNW].objects, MaxObjectsPerNode+1)
}

func TestQuadTree_StraddlerStaysAtParent(t *testing.T) {
	qt := NewQuadTree(0, Rect{X: 0, Y: 0, Width: 1000, Height: 1000})

	// Crosses the vertical midline at x=500.
	straddler := stubAt(495, 10, 10, KindBall)
	qt.Insert(straddler)
	for i := 0; i < MaxObjectsPerNode; i++ {
		qt.Insert(stubAt(10+float64(i)*20, 10, 5, KindBall))
	}

	require.NotNil(t, qt.children)
	require.Len(t, qt.objects, 1)
	assert.Same(t, straddler, qt.objects[0])
	assert.Len(t, qt.children[quadNW].objects, MaxObjectsPerNode)
}

func TestQuadTree_InsertDescendsIntoExistingChildren(t *testing.T) {
	qt := NewQuadTree(0, Rect{X: 0, Y: 0, Width: 1000, Height: 1000})

	for i := 0; i < MaxObjectsPerNode+1; i++ {
		qt.Insert(stubAt(10+float64(i)*20, 10, 5, KindBall))
	}
	require.NotNil(t, qt.children)

	// A later insert into the SE quadrant goes straight to the child.
	qt.Insert(stubAt(700, 700, 5, KindWall))
	assert.Empty(t, qt.objects)
	assert.Len(t, qt.children[quadSE].objects, 1)
}

func TestQuadTree_MaxDepthStopsSplitting(t *testing.T) {
	qt := NewQuadTree(MaxLevels, Rect{X: 0, Y: 0, Width: 10, Height: 10})

	for i := 0; i < MaxObjectsPerNode+5; i++ {
		qt.Insert(stubAt(1, 1, 0.5, KindBall))
	}

	assert.Nil(t, qt.children)
	assert.Len(t, qt.objects, MaxObjectsPerNode+5)
}

func TestQuadTree_QueryTypeIsNodeLocal(t *testing.T) {
	qt := NewQuadTree(0, Rect{X: 0, Y: 0, Width: 1000, Height: 1000})

	straddler := stubAt(495, 495, 10, KindWall)
	qt.Insert(straddler)
	for i := 0; i < MaxObjectsPerNode+1; i++ {
		qt.Insert(stubAt(245, 10+float64(i)*20, 10, KindBall))
	}
	require.NotNil(t, qt.children)

	// Only the straddling wall remains at the root; the balls now live in
	// the NW child and are invisible to a root-level query.
	assert.Empty(t, qt.QueryType(KindBall))

	walls := qt.QueryType(KindWall)
	require.Len(t, walls, 1)
	assert.Same(t, straddler, walls[0].(*stubSpatial))

	assert.Len(t, qt.children[quadNW].QueryType(KindBall), MaxObjectsPerNode+1)
}

func TestQuadTree_QueryRange(t *testing.T) {
	qt := NewQuadTree(0, Rect{X: 0, Y: 0, Width: 1000, Height: 1000})

	inside := stubAt(100, 100, 10, KindBall)
	outside := stubAt(800, 800, 10, KindBall)
	wrongKind := stubAt(110, 110, 10, KindWall)
	qt.Insert(inside)
	qt.Insert(outside)
	qt.Insert(wrongKind)

	found := qt.QueryRange(50, 50, 200, 200, KindBall)
	require.Len(t, found, 1)
	assert.Same(t, inside, found[0].(*stubSpatial))
}

func TestQuadTree_Clear(t *testing.T) {
	qt := NewQuadTree(0, Rect{X: 0, Y: 0, Width: 1000, Height: 1000})
	for i := 0; i < MaxObjectsPerNode+1; i++ {
		qt.Insert(stubAt(10+float64(i)*20, 10, 5, KindBall))
	}
	require.NotNil(t, qt.children)

	qt.Clear()
	assert.Empty(t, qt.objects)
	assert.Nil(t, qt.children)
}

func TestQuadTree_QueryPairs(t *testing.T) {
	t.Run("same node pairs each combination once", func(t *testing.T) {
		qt := NewQuadTree(0, Rect{X: 0, Y: 0, Width: 1000, Height: 1000})
		for i := 0; i < 3; i++ {
			qt.Insert(stubAt(100+float64(i)*50, 100, 5, KindBall))
		}

		count := 0
		qt.QueryPairs(func(a, b Spatial) {
			assert.NotEqual(t, a.ID(), b.ID())
			count++
		})
		assert.Equal(t, 3, count)
	})

	t.Run("ancestor pairs with descendants", func(t *testing.T) {
		qt := NewQuadTree(0, Rect{X: 0, Y: 0, Width: 1000, Height: 1000})

		straddler := stubAt(495, 495, 10, KindWall)
		qt.Insert(straddler)
		for i := 0; i < MaxObjectsPerNode+1; i++ {
			qt.Insert(stubAt(245, 10+float64(i)*20, 10, KindBall))
		}

		// 11 balls in the NW child pair among themselves (55) and each
		// pairs with the straddling wall at the root (11).
		count := 0
		qt.QueryPairs(func(a, b Spatial) { count++ })
		assert.Equal(t, 66, count)
	})

	t.Run("disjoint quadrants never pair", func(t *testing.T) {
		qt := NewQuadTree(0, Rect{X: 0, Y: 0, Width: 1000, Height: 1000})
		for i := 0; i < MaxObjectsPerNode; i++ {
			qt.Insert(stubAt(10+float64(i)*20, 10, 5, KindBall))
		}
		qt.Insert(stubAt(700, 700, 5, KindBall)) // triggers split, lands in SE

		count := 0
		qt.QueryPairs(func(a, b Spatial) {
			if a.Kind() == KindBall && b.Kind() == KindBall {
				nwA := a.Bounds().MaxX < 500
				nwB := b.Bounds().MaxX < 500
				assert.Equal(t, nwA, nwB, "objects from disjoint quadrants paired")
			}
			count++
		})
		// 10 NW balls pair among themselves only.
		assert.Equal(t, 45, count)
	})
}
