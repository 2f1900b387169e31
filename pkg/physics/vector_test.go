// pkg/physics/vector_test.go
package physics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVector2D_Arithmetic(t *testing.T) {
	a := Vector2D{X: 3, Y: 4}
	b := Vector2D{X: 1, Y: -2}

	assert.Equal(t, Vector2D{X: 4, Y: 2}, a.Add(b))
	assert.Equal(t, Vector2D{X: 2, Y: 6}, a.Sub(b))
	assert.Equal(t, Vector2D{X: 6, Y: 8}, a.Scale(2))
	assert.Equal(t, 5.0, a.Length())
	assert.Equal(t, -5.0, a.Dot(b))
}

func TestVector2D_Normalize(t *testing.T) {
	v := Vector2D{X: 3, Y: 4}.Normalize()
	assert.InDelta(t, 0.6, v.X, 1e-12)
	assert.InDelta(t, 0.8, v.Y, 1e-12)

	// Zero vectors normalize to zero rather than NaN.
	assert.Equal(t, Vector2D{}, Vector2D{}.Normalize())
}

func TestFromAngle(t *testing.T) {
	v := FromAngle(math.Pi/2, 10)
	assert.InDelta(t, 0, v.X, 1e-9)
	assert.InDelta(t, 10, v.Y, 1e-9)

	assert.InDelta(t, math.Pi/2, v.Angle(), 1e-9)
}

func TestVector2D_Distance(t *testing.T) {
	a := Vector2D{X: 0, Y: 0}
	b := Vector2D{X: 3, Y: 4}

	assert.Equal(t, 5.0, a.Distance(b))
}
