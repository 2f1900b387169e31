// pkg/physics/quadtree.go
package physics

// Node capacity and depth limits for the quad-partition.
const (
	MaxObjectsPerNode = 10
	MaxLevels         = 5
)

type quadrant int

const (
	quadNW quadrant = iota
	quadNE
	quadSW
	quadSE
)

// QuadTree recursively subdivides a rectangular region into quadrants so the
// engine can prune candidate pairs before running exact time-of-impact math.
// An object is stored at exactly one node: the deepest node whose boundary
// strictly contains its bounds on both axes. Objects straddling a midline
// stay at the ancestor rather than being split across children.
type QuadTree struct {
	level    int
	boundary Rect
	objects  []Spatial
	children map[quadrant]*QuadTree
}

// NewQuadTree creates a node at the given depth covering boundary.
func NewQuadTree(level int, boundary Rect) *QuadTree {
	return &QuadTree{
		level:    level,
		boundary: boundary,
	}
}

// Clear drops this node's object list and releases its children, discarding
// the whole subtree.
func (qt *QuadTree) Clear() {
	qt.objects = nil
	qt.children = nil
}

func (qt *QuadTree) split() {
	subWidth := qt.boundary.Width / 2
	subHeight := qt.boundary.Height / 2
	x := qt.boundary.X
	y := qt.boundary.Y

	qt.children = map[quadrant]*QuadTree{
		quadNW: NewQuadTree(qt.level+1, Rect{X: x, Y: y, Width: subWidth, Height: subHeight}),
		quadNE: NewQuadTree(qt.level+1, Rect{X: x + subWidth, Y: y, Width: subWidth, Height: subHeight}),
		quadSW: NewQuadTree(qt.level+1, Rect{X: x, Y: y + subHeight, Width: subWidth, Height: subHeight}),
		quadSE: NewQuadTree(qt.level+1, Rect{X: x + subWidth, Y: y + subHeight, Width: subWidth, Height: subHeight}),
	}
}

// Insert stores obj at this node or, when this node has already split and the
// object fits strictly inside a single child quadrant, recurses into that
// child. Exceeding the node capacity below the depth limit triggers a split
// and re-homes every object that fits entirely within one child; straddlers
// remain here.
func (qt *QuadTree) Insert(obj Spatial) {
	if qt.children != nil {
		if q, ok := qt.index(obj); ok {
			qt.children[q].Insert(obj)
			return
		}
	}

	qt.objects = append(qt.objects, obj)
	if len(qt.objects) > MaxObjectsPerNode && qt.level < MaxLevels {
		if qt.children == nil {
			qt.split()
		}
		qt.partitionObjects()
	}
}

// partitionObjects moves objects from this node into child nodes where their
// bounds allow it.
func (qt *QuadTree) partitionObjects() {
	kept := qt.objects[:0]
	for _, obj := range qt.objects {
		if q, ok := qt.index(obj); ok {
			qt.children[q].Insert(obj)
		} else {
			kept = append(kept, obj)
		}
	}
	qt.objects = kept
}

// index returns the child quadrant that strictly contains the object's
// bounds, or ok=false when the object straddles a midline or touches the
// boundary edge. Strict containment is exclusive, so at most one child
// matches.
func (qt *QuadTree) index(obj Spatial) (quadrant, bool) {
	box := obj.Bounds()
	for q, child := range qt.children {
		if child.boundary.ContainsAABB(box) {
			return q, true
		}
	}
	return 0, false
}

// QueryType returns the objects of the given kind stored at this node. The
// lookup is intentionally local and non-recursive: callers that need a
// region's full contents must walk the tree themselves.
func (qt *QuadTree) QueryType(kind Kind) []Spatial {
	var found []Spatial
	for _, obj := range qt.objects {
		if obj.Kind() == kind {
			found = append(found, obj)
		}
	}
	return found
}

// QueryRange returns the objects of the given kind stored at this node whose
// footprint overlaps the box spanning (x1,y1) to (x2,y2). Like QueryType, the
// lookup filters this node's own list only.
func (qt *QuadTree) QueryRange(x1, y1, x2, y2 float64, kind Kind) []Spatial {
	rng := RectFromCorners(x1, y1, x2, y2)

	var found []Spatial
	for _, obj := range qt.objects {
		if obj.Kind() == kind && obj.IntersectsRect(rng) {
			found = append(found, obj)
		}
	}
	return found
}

// QueryPairs calls fn once for every candidate pair the partition cannot rule
// out: both objects at the same node, or one at a node and the other anywhere
// in that node's subtree. Objects in disjoint quadrants are never paired.
func (qt *QuadTree) QueryPairs(fn func(a, b Spatial)) {
	qt.queryPairs(nil, fn)
}

func (qt *QuadTree) queryPairs(ancestors []Spatial, fn func(a, b Spatial)) {
	for i, a := range qt.objects {
		for _, b := range qt.objects[i+1:] {
			fn(a, b)
		}
		for _, b := range ancestors {
			fn(b, a)
		}
	}

	if qt.children == nil {
		return
	}
	ancestors = append(ancestors, qt.objects...)
	for _, child := range qt.children {
		child.queryPairs(ancestors, fn)
	}
}
