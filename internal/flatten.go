package internal

// Flat is the representation Triangulate consumes: one coordinate array, the
// vertex offsets at which holes start, and the number of components per
// vertex.
type Flat struct {
	Coordinates []float64
	HoleIndices []int
	Dimension   int
}

// Flatten a polygon given as rings of points (outer ring first, then holes,
// as in GeoJSON) into its flat form. The dimension is taken from the first
// point; every other point must agree with it.
func Flatten(rings [][][]float64) Flat {
	var flat Flat
	if len(rings) == 0 || len(rings[0]) == 0 {
		flat.Dimension = 2
		flat.Coordinates = []float64{}
		flat.HoleIndices = []int{}
		return flat
	}

	flat.Dimension = len(rings[0][0])
	if flat.Dimension < 2 {
		throw(ErrInvalidDimension, "first point has %d components", flat.Dimension)
	}

	vertices := 0
	for _, ring := range rings {
		vertices += len(ring)
	}
	flat.Coordinates = make([]float64, 0, vertices*flat.Dimension)
	flat.HoleIndices = make([]int, 0, len(rings)-1)

	holeIndex := 0
	for i, ring := range rings {
		for j, point := range ring {
			if len(point) != flat.Dimension {
				throw(ErrMixedDimension, "ring %d point %d has %d components, expected %d", i, j, len(point), flat.Dimension)
			}
			flat.Coordinates = append(flat.Coordinates, point...)
		}
		if i > 0 {
			holeIndex += len(rings[i-1])
			flat.HoleIndices = append(flat.HoleIndices, holeIndex)
		}
	}
	return flat
}
