package internal

import "math"

// Deviation compares the area of the polygon (outer ring minus holes) with the
// summed area of the triangles, and returns the relative error. It is a
// correctness measure for tests and tooling; triangulation never consults it.
func Deviation(data []float64, holeIndices []int, dim int, triangles []int) float64 {
	validateInput(data, holeIndices, dim)
	validateTriangles(triangles, len(data)/dim)

	hasHoles := len(holeIndices) > 0
	outerLen := len(data)
	if hasHoles {
		outerLen = holeIndices[0] * dim
	}

	polygonArea := math.Abs(SignedArea(data, 0, outerLen, dim))
	for i, holeIndex := range holeIndices {
		start := holeIndex * dim
		end := len(data)
		if i < len(holeIndices)-1 {
			end = holeIndices[i+1] * dim
		}
		polygonArea -= math.Abs(SignedArea(data, start, end, dim))
	}

	var trianglesArea float64
	for i := 0; i < len(triangles); i += 3 {
		a := triangles[i] * dim
		b := triangles[i+1] * dim
		c := triangles[i+2] * dim
		trianglesArea += math.Abs(
			(data[a]-data[c])*(data[b+1]-data[a+1]) -
				(data[a]-data[b])*(data[c+1]-data[a+1]))
	}

	if polygonArea == 0 && trianglesArea == 0 {
		return 0
	}
	return math.Abs((trianglesArea - polygonArea) / polygonArea)
}

func validateTriangles(triangles []int, vertices int) {
	if len(triangles)%3 != 0 {
		throw(ErrInvalidTriangles, "%d indices is not a multiple of 3", len(triangles))
	}
	for k, v := range triangles {
		if v < 0 || v >= vertices {
			throw(ErrInvalidTriangles, "index %d at position %d is outside [0, %d)", v, k, vertices)
		}
	}
}
