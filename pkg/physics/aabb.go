// pkg/physics/aabb.go
package physics

import "errors"

// ErrInvalidAABB is returned when a bounding box is constructed with a
// minimum coordinate greater than the corresponding maximum.
var ErrInvalidAABB = errors.New("physics: minimum coordinates must not exceed maximum coordinates")

// AABB is an axis-aligned bounding box. The min <= max invariant per axis is
// enforced by NewAABB; a violation is a structural error, never clamped.
type AABB struct {
	MinX float64
	MinY float64
	MaxX float64
	MaxY float64
}

// NewAABB constructs a bounding box, rejecting inverted extents.
func NewAABB(minX, minY, maxX, maxY float64) (AABB, error) {
	if minX > maxX || minY > maxY {
		return AABB{}, ErrInvalidAABB
	}
	return AABB{MinX: minX, MinY: minY, MaxX: maxX, MaxY: maxY}, nil
}

// Intersects reports whether the two boxes overlap.
func (b AABB) Intersects(other AABB) bool {
	return b.MinX <= other.MaxX && b.MaxX >= other.MinX &&
		b.MinY <= other.MaxY && b.MaxY >= other.MinY
}

// Rect is an axis-aligned rectangular region anchored at its top-left corner.
type Rect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// RectFromCorners builds a Rect spanning (x1,y1) to (x2,y2).
func RectFromCorners(x1, y1, x2, y2 float64) Rect {
	return Rect{X: x1, Y: y1, Width: x2 - x1, Height: y2 - y1}
}

// Contains reports whether the point lies inside the rectangle.
func (r Rect) Contains(p Coordinate) bool {
	return p.X >= r.X && p.X < r.X+r.Width &&
		p.Y >= r.Y && p.Y < r.Y+r.Height
}

// ContainsAABB reports whether the box lies strictly inside the rectangle,
// touching no edge.
func (r Rect) ContainsAABB(box AABB) bool {
	return box.MinX > r.X && box.MaxX < r.X+r.Width &&
		box.MinY > r.Y && box.MaxY < r.Y+r.Height
}

// Intersects reports whether the rectangle overlaps the bounding box.
func (r Rect) Intersects(box AABB) bool {
	return r.X <= box.MaxX && r.X+r.Width >= box.MinX &&
		r.Y <= box.MaxY && r.Y+r.Height >= box.MinY
}
