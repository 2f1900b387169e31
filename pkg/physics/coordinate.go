// pkg/physics/coordinate.go
package physics

import "math"

// Tolerance is the comparison slack used for coordinate equality and axis
// alignment. Iterative growth and movement accumulate floating-point error,
// so exact comparison would report spurious mismatches.
const Tolerance = 1e-4

// Coordinate is an immutable 2D point in arena space.
type Coordinate struct {
	X float64
	Y float64
}

// Equals reports whether both components match within Tolerance.
func (c Coordinate) Equals(other Coordinate) bool {
	return math.Abs(c.X-other.X) <= Tolerance && math.Abs(c.Y-other.Y) <= Tolerance
}

// SameRow reports whether the points share a y coordinate within Tolerance.
func (c Coordinate) SameRow(other Coordinate) bool {
	return math.Abs(c.Y-other.Y) <= Tolerance
}

// SameColumn reports whether the points share an x coordinate within Tolerance.
func (c Coordinate) SameColumn(other Coordinate) bool {
	return math.Abs(c.X-other.X) <= Tolerance
}

// Vector returns the point as a Vector2D from the origin.
func (c Coordinate) Vector() Vector2D {
	return Vector2D{X: c.X, Y: c.Y}
}

// MinX returns the smaller x component of the two points.
func MinX(a, b Coordinate) float64 {
	return math.Min(a.X, b.X)
}

// MaxX returns the larger x component of the two points.
func MaxX(a, b Coordinate) float64 {
	return math.Max(a.X, b.X)
}

// MinY returns the smaller y component of the two points.
func MinY(a, b Coordinate) float64 {
	return math.Min(a.Y, b.Y)
}

// MaxY returns the larger y component of the two points.
func MaxY(a, b Coordinate) float64 {
	return math.Max(a.Y, b.Y)
}
