// pkg/physics/coordinate_test.go
package physics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCoordinate_Equals(t *testing.T) {
	tests := []struct {
		name string
		a    Coordinate
		b    Coordinate
		want bool
	}{
		{
			name: "identical points",
			a:    Coordinate{X: 1.0, Y: 2.0},
			b:    Coordinate{X: 1.0, Y: 2.0},
			want: true,
		},
		{
			name: "within tolerance",
			a:    Coordinate{X: 1.00005, Y: 2.0},
			b:    Coordinate{X: 1.0, Y: 2.0},
			want: true,
		},
		{
			name: "outside tolerance",
			a:    Coordinate{X: 1.001, Y: 2.0},
			b:    Coordinate{X: 1.0, Y: 2.0},
			want: false,
		},
		{
			name: "y outside tolerance",
			a:    Coordinate{X: 1.0, Y: 2.01},
			b:    Coordinate{X: 1.0, Y: 2.0},
			want: false,
		},
		{
			name: "both axes at tolerance boundary",
			a:    Coordinate{X: 1.0001, Y: 2.0001},
			b:    Coordinate{X: 1.0, Y: 2.0},
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Equals(tt.b))
		})
	}
}

func TestCoordinate_Alignment(t *testing.T) {
	a := Coordinate{X: 1.0, Y: 5.0}

	assert.True(t, a.SameRow(Coordinate{X: 100.0, Y: 5.00005}))
	assert.False(t, a.SameRow(Coordinate{X: 1.0, Y: 5.1}))

	assert.True(t, a.SameColumn(Coordinate{X: 1.00005, Y: 100.0}))
	assert.False(t, a.SameColumn(Coordinate{X: 1.1, Y: 5.0}))
}

func TestCoordinate_MinMax(t *testing.T) {
	a := Coordinate{X: 3, Y: 9}
	b := Coordinate{X: 7, Y: 2}

	assert.Equal(t, 3.0, MinX(a, b))
	assert.Equal(t, 7.0, MaxX(a, b))
	assert.Equal(t, 2.0, MinY(a, b))
	assert.Equal(t, 9.0, MaxY(a, b))
}
