// Package advanced exposes the triangulator's tuning knobs and run
// statistics. Most callers want the root earcut package instead.
package advanced

import (
	"log/slog"

	"github.com/osuushi/earcut/internal"
)

type Stats = internal.Stats
type Flat = internal.Flat

var (
	ErrInvalidDimension   = internal.ErrInvalidDimension
	ErrInvalidHoleIndices = internal.ErrInvalidHoleIndices
	ErrInvalidTriangles   = internal.ErrInvalidTriangles
	ErrMixedDimension     = internal.ErrMixedDimension
	ErrUnresolvableHole   = internal.ErrUnresolvableHole
)

const DefaultHashThreshold = internal.DefaultHashThreshold

type Options struct {
	// Inputs with more than this many vertices use the Z-order index for ear
	// tests. Zero means DefaultHashThreshold; negative never uses the index.
	HashThreshold int

	// Return ErrUnresolvableHole rather than silently dropping a hole that no
	// bridge to the outer ring can be found for.
	StrictHoles bool

	// Logger for this call. Nil uses the logger set with SetLogger.
	Logger *slog.Logger
}

func DefaultOptions() *Options {
	return &Options{HashThreshold: DefaultHashThreshold}
}

type Result struct {
	// Flat list of vertex index triples
	Triangles []int
	Stats     Stats
}

// Number of triangles
func (r *Result) Len() int {
	return len(r.Triangles) / 3
}

// The k-th triangle's vertex indices
func (r *Result) Triangle(k int) [3]int {
	return [3]int{r.Triangles[3*k], r.Triangles[3*k+1], r.Triangles[3*k+2]}
}

// Triangulate a polygon given as a flat coordinate array (dimension components
// per vertex, only the first two used for geometry) with holes starting at the
// given vertex offsets.
//
// Degenerate or self-intersecting geometry is not an error: the result simply
// has fewer triangles, or none. Errors are returned only for malformed
// arguments, and for unbridgeable holes in strict mode.
func Triangulate(coordinates []float64, holeIndices []int, dimension int, opts *Options) (result *Result, err error) {
	defer func() {
		recoveredErr := internal.HandleTriangulatePanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()

	if opts == nil {
		opts = DefaultOptions()
	}
	triangles, stats := internal.Triangulate(coordinates, holeIndices, dimension, internal.Config{
		HashThreshold: opts.HashThreshold,
		StrictHoles:   opts.StrictHoles,
		Logger:        opts.Logger,
	})
	return &Result{Triangles: triangles, Stats: stats}, nil
}

// Deviation returns the relative difference between the polygon's area and
// the total area of the triangles. Zero means a perfect triangulation.
func Deviation(coordinates []float64, holeIndices []int, dimension int, triangles []int) (deviation float64, err error) {
	defer func() {
		recoveredErr := internal.HandleTriangulatePanicRecover(recover())
		if recoveredErr != nil {
			deviation = 0
			err = recoveredErr
		}
	}()
	return internal.Deviation(coordinates, holeIndices, dimension, triangles), nil
}

// Flatten converts rings of points (outer ring first, then holes) into the
// flat form Triangulate takes.
func Flatten(rings [][][]float64) (flat Flat, err error) {
	defer func() {
		recoveredErr := internal.HandleTriangulatePanicRecover(recover())
		if recoveredErr != nil {
			flat = Flat{}
			err = recoveredErr
		}
	}()
	return internal.Flatten(rings), nil
}

// SetLogger sets the logger used when Options.Logger is nil. Nil silences
// logging, which is the default.
func SetLogger(l *slog.Logger) {
	internal.SetLogger(l)
}

func Logger() *slog.Logger {
	return internal.Logger()
}
