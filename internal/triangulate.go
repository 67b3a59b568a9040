package internal

import (
	"context"
	"log/slog"

	"github.com/golang/geo/r2"
)

// DefaultHashThreshold is the vertex count above which ear tests go through
// the Z-order index instead of scanning the whole ring.
const DefaultHashThreshold = 80

type Config struct {
	// Use the Z-order index when the input has more than this many vertices.
	// Zero means DefaultHashThreshold; negative disables the index.
	HashThreshold int

	// Fail with ErrUnresolvableHole instead of dropping a hole that cannot be
	// bridged to the outer ring.
	StrictHoles bool

	// Logger overrides the package logger for this run.
	Logger *slog.Logger
}

// Stats describes what a triangulation run had to do to finish.
type Stats struct {
	// Whether ear tests used the Z-order index
	Hashed bool
	// How many times each recovery pass ran: point filtering, local
	// intersection curing, and polygon splitting.
	Passes [3]int
	// Triangles emitted while curing local self-intersections
	CuredIntersections int
	// Diagonals the polygon was split along
	Splits int
	// Ordinals (0 = first hole) of the holes that could not be bridged
	DroppedHoles []int
	// Number of nodes allocated, including bridge and split duplicates
	Nodes int
}

type triangulator struct {
	arena *Arena
	dim   int

	// Bounding box origin and inverse size for Z-order keys. A zero invSize
	// means the index is off.
	minX, minY, invSize float64

	triangles []int
	stats     *Stats
	log       *slog.Logger
}

// Triangulate a polygon given as a flat coordinate array, where the outer ring
// is followed by the holes starting at the given vertex offsets. The result is
// a flat list of vertex index triples.
//
// Malformed arguments panic with a TriangulateError. Degenerate geometry never
// does; it simply produces fewer (or no) triangles.
func Triangulate(data []float64, holeIndices []int, dim int, config Config) ([]int, Stats) {
	validateInput(data, holeIndices, dim)

	logger := config.Logger
	if logger == nil {
		logger = Logger()
	}

	var stats Stats
	t := &triangulator{
		arena: NewArena(len(data)/dim + 2*len(holeIndices) + 2),
		dim:   dim,
		stats: &stats,
		log:   logger,
	}

	hasHoles := len(holeIndices) > 0
	outerLen := len(data)
	if hasHoles {
		outerLen = holeIndices[0] * dim
	}

	outer := t.arena.buildRing(data, 0, outerLen, dim, true)
	if outer == NilNode || t.arena.Nodes[outer].Next == t.arena.Nodes[outer].Prev {
		stats.Nodes = t.arena.Len()
		return []int{}, stats
	}

	t.triangles = make([]int, 0, 3*(len(data)/dim))

	if hasHoles {
		outer = t.eliminateHoles(data, holeIndices, outer)
		if config.StrictHoles && len(stats.DroppedHoles) > 0 {
			throw(ErrUnresolvableHole, "hole %d", stats.DroppedHoles[0])
		}
	}

	threshold := config.HashThreshold
	if threshold == 0 {
		threshold = DefaultHashThreshold
	}

	// If the shape is not too simple, use the Z-order index. The bounding box
	// only covers the outer ring, since holes lie inside it.
	if threshold > 0 && len(data) > threshold*dim {
		bounds := r2.RectFromPoints(r2.Point{X: data[0], Y: data[1]})
		for i := dim; i < outerLen; i += dim {
			bounds = bounds.AddPoint(r2.Point{X: data[i], Y: data[i+1]})
		}
		t.minX = bounds.X.Lo
		t.minY = bounds.Y.Lo

		size := bounds.Size()
		if s := max(size.X, size.Y); s != 0 {
			t.invSize = 1 / s
			stats.Hashed = true
		}
		if logger.Enabled(context.Background(), slog.LevelDebug) {
			logger.Debug("earcut: z-order index enabled",
				slog.Int("vertices", len(data)/dim),
				slog.Bool("degenerate", t.invSize == 0),
			)
		}
	}

	t.triangulateLinked(outer, passInitial)

	stats.Nodes = t.arena.Len()
	return t.triangles, stats
}

func validateInput(data []float64, holeIndices []int, dim int) {
	if dim < 2 {
		throw(ErrInvalidDimension, "dimension %d", dim)
	}
	if len(data)%dim != 0 {
		throw(ErrInvalidDimension, "%d coordinates is not a multiple of dimension %d", len(data), dim)
	}
	// Empty holes are tolerated; they produce no ring.
	n := len(data) / dim
	last := 0
	for k, h := range holeIndices {
		if h < last || h > n {
			throw(ErrInvalidHoleIndices, "hole %d starts at vertex %d (vertices: %d, previous start: %d)", k, h, n, last)
		}
		last = h
	}
}
