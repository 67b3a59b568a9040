package internal

import (
	"math"
	"testing"

	"github.com/osuushi/earcut/fixture"
	"github.com/stretchr/testify/require"
)

// Fixture files live in the fixture package. This file adds a few shapes
// specified in code, and loads named fixtures in their flat form.

func loadFixture(t *testing.T, name string) (fixture.Case, Flat) {
	t.Helper()
	c, err := fixture.Named(name)
	require.NoError(t, err)
	return c, Flatten(c.Coordinates)
}

func starRing(x, y, outerRadius, innerRadius float64) [][]float64 {
	var points [][]float64
	for i := 0; i < 10; i++ {
		r := outerRadius
		if i%2 == 1 {
			r = innerRadius
		}
		angle := 2 * math.Pi * float64(i) / 10
		points = append(points, []float64{x + r*math.Cos(angle), y + r*math.Sin(angle)})
	}
	return points
}

func reversed(ring [][]float64) [][]float64 {
	out := make([][]float64, len(ring))
	for i, p := range ring {
		out[len(ring)-1-i] = p
	}
	return out
}

func SimpleStar() Flat {
	return Flatten([][][]float64{starRing(0, 0, 5, 2)})
}

func SquareWithHole() Flat {
	return Flatten([][][]float64{
		{{-5, -5}, {5, -5}, {5, 5}, {-5, 5}},
		{{-2, -2}, {-2, 2}, {2, 2}, {2, -2}},
	})
}

// A star with a star-shaped hole, wound the other way
func StarOutline() Flat {
	return Flatten([][][]float64{
		starRing(0, 0, 10, 5),
		reversed(starRing(0, 0, 8, 3)),
	})
}

// Two holes given right to left, so they must be reordered before bridging
func TwoHolesOutOfOrder() Flat {
	return Flatten([][][]float64{
		{{0, 0}, {20, 0}, {20, 10}, {0, 10}},
		{{12, 2.5}, {16, 2.5}, {16, 6.5}, {12, 6.5}},
		{{2, 3}, {6, 3}, {6, 7}, {2, 7}},
	})
}

// A convex polygon with enough vertices to use the Z-order index
func RegularPolygon(n int, radius float64) Flat {
	ring := make([][]float64, n)
	for i := range ring {
		angle := 2 * math.Pi * float64(i) / float64(n)
		ring[i] = []float64{radius * math.Cos(angle), radius * math.Sin(angle)}
	}
	return Flatten([][][]float64{ring})
}
