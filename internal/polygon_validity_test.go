package internal

// This contains no actual tests. It is just a helper for testing triangulation
// validity.

import (
	"math"
	"testing"

	"github.com/kr/pretty"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Helper to check that a triangulation is valid. The rules are:
// 1. The index list is made of whole triangles.
// 2. Every index refers to a vertex of the polygon.
// 3. No triangle uses the same vertex twice.
// 4. The sum of the areas of all triangles is equal to the area of the polygon.
func AssertValidTriangulation(t *testing.T, data []float64, holeIndices []int, dim int, triangles []int) {
	t.Helper()
	require.Zero(t, len(triangles)%3, "triangle list is not made of triples: %v", triangles)

	vertices := len(data) / dim
	for k := 0; k < len(triangles); k += 3 {
		a, b, c := triangles[k], triangles[k+1], triangles[k+2]
		for _, v := range []int{a, b, c} {
			require.True(t, v >= 0 && v < vertices, "index %d out of range in triangle %d", v, k/3)
		}
		require.True(t, a != b && b != c && c != a, "triangle %d reuses a vertex: %v", k/3, triangles[k:k+3])
	}

	deviation := Deviation(data, holeIndices, dim, triangles)
	require.InDelta(t, 0, deviation, 1e-12, "sum of the areas of all triangles is not the area of the polygon\n%s", pretty.Sprint(triangles))
}

// Sample a grid over the polygon's bounding box, and check that each sample
// lies in some triangle exactly when it lies in the polygon by the even-odd
// rule. The grid is offset by an irrational fraction of a step so that
// samples avoid landing on edges.
func validateTrianglesBySampling(t *testing.T, data []float64, holeIndices []int, dim int, triangles []int) {
	t.Helper()
	minX, minY, maxX, maxY := math.Inf(1), math.Inf(1), math.Inf(-1), math.Inf(-1)
	for i := 0; i < len(data); i += dim {
		minX = math.Min(minX, data[i])
		minY = math.Min(minY, data[i+1])
		maxX = math.Max(maxX, data[i])
		maxY = math.Max(maxY, data[i+1])
	}

	// Pad the bounding box by 10%
	xPadding := (maxX - minX) * 0.1
	yPadding := (maxY - minY) * 0.1
	minX -= xPadding
	minY -= yPadding
	maxX += xPadding
	maxY += yPadding

	// Compute the step size
	step := math.Max(maxX-minX, maxY-minY) / 50
	offset := step * (math.Sqrt2 - 1)

	for y := minY + offset; y <= maxY; y += step {
		for x := minX + offset; x <= maxX; x += step {
			actual := trianglesContainPoint(data, dim, triangles, x, y)
			if ringsContainPointByEvenOdd(data, holeIndices, dim, x, y) {
				assert.True(t, actual, "point (%g, %g) should be covered by a triangle", x, y)
			} else {
				assert.False(t, actual, "point (%g, %g) should not be covered by any triangle", x, y)
			}
		}
	}
}

func trianglesContainPoint(data []float64, dim int, triangles []int, x, y float64) bool {
	for k := 0; k < len(triangles); k += 3 {
		a, b, c := triangles[k]*dim, triangles[k+1]*dim, triangles[k+2]*dim
		ax, ay := data[a], data[a+1]
		bx, by := data[b], data[b+1]
		cx, cy := data[c], data[c+1]
		// Accept either winding
		if pointInTriangle(ax, ay, bx, by, cx, cy, x, y) || pointInTriangle(ax, ay, cx, cy, bx, by, x, y) {
			return true
		}
	}
	return false
}

func ringsContainPointByEvenOdd(data []float64, holeIndices []int, dim int, x, y float64) bool {
	inside := false
	starts := append([]int{0}, holeIndices...)
	for k, start := range starts {
		end := len(data) / dim
		if k+1 < len(starts) {
			end = starts[k+1]
		}
		for i := start; i < end; i++ {
			j := i + 1
			if j == end {
				j = start
			}
			x1, y1 := data[i*dim], data[i*dim+1]
			x2, y2 := data[j*dim], data[j*dim+1]
			if (y1 > y) != (y2 > y) && x < (x2-x1)*(y-y1)/(y2-y1)+x1 {
				inside = !inside
			}
		}
	}
	return inside
}
