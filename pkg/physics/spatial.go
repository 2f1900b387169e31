// pkg/physics/spatial.go
package physics

// Kind distinguishes the concrete object types stored in the spatial index.
type Kind int

const (
	KindBall Kind = iota
	KindWall
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindBall:
		return "ball"
	case KindWall:
		return "wall"
	default:
		return "unknown"
	}
}

// Spatial is the contract for objects that occupy the 2D arena. It is
// implemented by balls and walls so the broad-phase index and the engine can
// treat them uniformly.
type Spatial interface {
	// ID returns the object's stable unique identifier.
	ID() uint64

	// Position returns the object's reference point. For a ball this is its
	// center; for a wall its start point.
	Position() Coordinate

	// SetPosition moves the object's reference point.
	SetPosition(Coordinate)

	// IntersectsRect reports whether the object overlaps the given region.
	IntersectsRect(Rect) bool

	// Bounds returns the object's axis-aligned bounding box.
	Bounds() AABB

	// Kind identifies the concrete type for index queries.
	Kind() Kind
}
