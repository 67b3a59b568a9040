// Ear-clipping polygon triangulation for Go.
//
// This package turns a simple polygon, which may be non-convex and may contain
// holes, into a set of triangles using only the polygon's own vertices. The
// polygon is given as a flat coordinate array, and the triangles come back as
// indices into it, which is the shape GPU index buffers want.
//
// Self-intersecting and degenerate input is handled on a best effort basis:
// triangulation never fails on geometry, and Deviation measures how well the
// result covers the polygon.
package earcut

import (
	"log/slog"

	"github.com/osuushi/earcut/advanced"
)

type Flat = advanced.Flat

var (
	ErrInvalidDimension   = advanced.ErrInvalidDimension
	ErrInvalidHoleIndices = advanced.ErrInvalidHoleIndices
	ErrInvalidTriangles   = advanced.ErrInvalidTriangles
	ErrMixedDimension     = advanced.ErrMixedDimension
)

// Triangulate a polygon and return a flat list of vertex index triples.
//
// coordinates holds dimension components per vertex (x and y first; any
// further components, such as z, are carried along but ignored). The outer
// ring comes first; holeIndices gives the vertex offset where each hole
// starts, in increasing order. A dimension of 0 means 2.
//
// Rings may wind either way. Degenerate input yields no triangles rather than
// an error; errors are only returned for malformed arguments.
func Triangulate(coordinates []float64, holeIndices []int, dimension int) ([]int, error) {
	if dimension == 0 {
		dimension = 2
	}
	result, err := advanced.Triangulate(coordinates, holeIndices, dimension, nil)
	if err != nil {
		return nil, err
	}
	return result.Triangles, nil
}

// Deviation returns |trianglesArea - polygonArea| / polygonArea, or 0 when
// both are 0. Useful for verifying a triangulation.
func Deviation(coordinates []float64, holeIndices []int, dimension int, triangles []int) (float64, error) {
	if dimension == 0 {
		dimension = 2
	}
	return advanced.Deviation(coordinates, holeIndices, dimension, triangles)
}

// Flatten turns a polygon given as rings of points, outer ring first, into
// the arguments Triangulate takes.
func Flatten(rings [][][]float64) (Flat, error) {
	return advanced.Flatten(rings)
}

// SetLogger enables logging of triangulation diagnostics. By default nothing
// is logged. Pass nil to silence it again.
func SetLogger(l *slog.Logger) {
	advanced.SetLogger(l)
}

func Logger() *slog.Logger {
	return advanced.Logger()
}
