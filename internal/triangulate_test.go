package internal

import (
	"testing"

	"github.com/osuushi/earcut/fixture"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func triangulate(flat Flat) ([]int, Stats) {
	return Triangulate(flat.Coordinates, flat.HoleIndices, flat.Dimension, Config{})
}

func TestTriangulate_Quad(t *testing.T) {
	triangles, stats := Triangulate([]float64{10, 0, 0, 50, 60, 60, 70, 10}, nil, 2, Config{})
	assert.Equal(t, []int{1, 0, 3, 3, 2, 1}, triangles)
	assert.False(t, stats.Hashed)
	assert.Equal(t, [3]int{}, stats.Passes)
	assert.Equal(t, 4, stats.Nodes)
}

func TestTriangulate_ThirdDimensionIsCarried(t *testing.T) {
	triangles, _ := Triangulate([]float64{10, 0, 1, 0, 50, 2, 60, 60, 3, 70, 10, 4}, nil, 3, Config{})
	assert.Equal(t, []int{1, 0, 3, 3, 2, 1}, triangles)
}

func TestTriangulate_Degenerate(t *testing.T) {
	tests := []struct {
		name string
		data []float64
	}{
		{"empty", []float64{}},
		{"nil", nil},
		{"single point", []float64{1, 1}},
		{"two points", []float64{0, 0, 1, 1}},
		{"duplicate points", []float64{1, 1, 1, 1}},
		{"collinear", []float64{0, 0, 1, 0, 2, 0}},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			triangles, _ := Triangulate(test.data, nil, 2, Config{})
			assert.NotNil(t, triangles)
			assert.Empty(t, triangles)
		})
	}
}

func TestTriangulate_Collinear(t *testing.T) {
	// The only ear candidates are flat, so the filter pass runs and leaves
	// nothing to clip
	_, stats := Triangulate([]float64{0, 0, 1, 0, 2, 0}, nil, 2, Config{})
	assert.Equal(t, [3]int{1, 0, 0}, stats.Passes)
}

func TestTriangulate_Star(t *testing.T) {
	shape := SimpleStar()
	triangles, _ := triangulate(shape)
	assert.Len(t, triangles, 8*3)
	AssertValidTriangulation(t, shape.Coordinates, shape.HoleIndices, shape.Dimension, triangles)
	validateTrianglesBySampling(t, shape.Coordinates, shape.HoleIndices, shape.Dimension, triangles)
}

func TestTriangulate_SquareWithHole(t *testing.T) {
	shape := SquareWithHole()
	triangles, _ := triangulate(shape)
	assert.Len(t, triangles, 8*3)
	AssertValidTriangulation(t, shape.Coordinates, shape.HoleIndices, shape.Dimension, triangles)
	validateTrianglesBySampling(t, shape.Coordinates, shape.HoleIndices, shape.Dimension, triangles)
}

func TestTriangulate_StarOutline(t *testing.T) {
	shape := StarOutline()
	triangles, _ := triangulate(shape)
	assert.Len(t, triangles, 20*3)
	AssertValidTriangulation(t, shape.Coordinates, shape.HoleIndices, shape.Dimension, triangles)
	validateTrianglesBySampling(t, shape.Coordinates, shape.HoleIndices, shape.Dimension, triangles)
}

func TestTriangulate_HolesOutOfOrder(t *testing.T) {
	shape := TwoHolesOutOfOrder()
	triangles, stats := triangulate(shape)
	assert.Len(t, triangles, 14*3)
	assert.Empty(t, stats.DroppedHoles)
	AssertValidTriangulation(t, shape.Coordinates, shape.HoleIndices, shape.Dimension, triangles)
	validateTrianglesBySampling(t, shape.Coordinates, shape.HoleIndices, shape.Dimension, triangles)
}

func TestTriangulate_Spiral(t *testing.T) {
	_, shape := loadFixture(t, "spiral")
	triangles, _ := triangulate(shape)
	AssertValidTriangulation(t, shape.Coordinates, shape.HoleIndices, shape.Dimension, triangles)
	validateTrianglesBySampling(t, shape.Coordinates, shape.HoleIndices, shape.Dimension, triangles)
}

func TestTriangulate_Perforated(t *testing.T) {
	_, shape := loadFixture(t, "perforated")
	triangles, _ := triangulate(shape)
	AssertValidTriangulation(t, shape.Coordinates, shape.HoleIndices, shape.Dimension, triangles)
	validateTrianglesBySampling(t, shape.Coordinates, shape.HoleIndices, shape.Dimension, triangles)
}

func TestTriangulate_WindingDoesNotMatter(t *testing.T) {
	ccw := []float64{0, 0, 10, 0, 10, 10, 0, 10}
	cw := []float64{0, 10, 10, 10, 10, 0, 0, 0}

	a, _ := Triangulate(ccw, nil, 2, Config{})
	b, _ := Triangulate(cw, nil, 2, Config{})
	assert.Len(t, a, 6)
	assert.Len(t, b, 6)
	AssertValidTriangulation(t, cw, nil, 2, b)
}

func TestTriangulate_Hashed(t *testing.T) {
	shape := RegularPolygon(100, 100)

	triangles, stats := triangulate(shape)
	assert.True(t, stats.Hashed)
	assert.Len(t, triangles, 98*3)
	AssertValidTriangulation(t, shape.Coordinates, shape.HoleIndices, shape.Dimension, triangles)

	unhashed, stats := Triangulate(shape.Coordinates, nil, 2, Config{HashThreshold: -1})
	assert.False(t, stats.Hashed)
	assert.Len(t, unhashed, 98*3)
}

func TestTriangulate_HashThreshold(t *testing.T) {
	shape := SimpleStar()

	_, stats := Triangulate(shape.Coordinates, nil, 2, Config{HashThreshold: 10})
	assert.False(t, stats.Hashed, "10 vertices is not more than 10")

	triangles, stats := Triangulate(shape.Coordinates, nil, 2, Config{HashThreshold: 9})
	assert.True(t, stats.Hashed)
	AssertValidTriangulation(t, shape.Coordinates, nil, 2, triangles)
}

// Every fixture must come out the same with and without the Z-order index
func TestTriangulate_Fixtures(t *testing.T) {
	cases, err := fixture.Builtin()
	require.NoError(t, err)

	for _, c := range cases {
		flat := Flatten(c.Coordinates)
		for _, threshold := range []int{0, -1, 1} {
			triangles, _ := Triangulate(flat.Coordinates, flat.HoleIndices, flat.Dimension, Config{HashThreshold: threshold})
			assert.Len(t, triangles, c.Triangles*3, "%s (threshold %d)", c.Name, threshold)
			deviation := Deviation(flat.Coordinates, flat.HoleIndices, flat.Dimension, triangles)
			assert.LessOrEqual(t, deviation, c.Errors, "%s (threshold %d)", c.Name, threshold)
		}
	}
}

func TestTriangulate_SteinerPoint(t *testing.T) {
	_, shape := loadFixture(t, "steiner")
	triangles, _ := triangulate(shape)
	assert.Equal(t, []int{3, 0, 4, 4, 0, 1, 2, 3, 4, 4, 1, 2}, triangles)
	AssertValidTriangulation(t, shape.Coordinates, shape.HoleIndices, shape.Dimension, triangles)
}

func TestTriangulate_CureLocalIntersections(t *testing.T) {
	_, shape := loadFixture(t, "tangle")
	triangles, stats := Triangulate(shape.Coordinates, nil, 2, Config{HashThreshold: -1})
	assert.Equal(t, []int{1, 2, 3, 3, 4, 5, 5, 6, 0}, triangles)
	assert.Equal(t, [3]int{1, 1, 1}, stats.Passes)
	assert.Equal(t, 1, stats.CuredIntersections)
	assert.Zero(t, stats.Splits)
}

func TestTriangulate_Split(t *testing.T) {
	data := []float64{3, 2, 9, 3, 5, 0, 8, 3, 3, 2, 7, 6, 8, 3, 10, 3}
	triangles, stats := Triangulate(data, nil, 2, Config{HashThreshold: -1})
	assert.Equal(t, []int{1, 0, 7, 2, 1, 3, 5, 4, 6}, triangles)
	assert.Equal(t, [3]int{1, 1, 1}, stats.Passes)
	assert.Equal(t, 1, stats.Splits)
	assert.Zero(t, stats.CuredIntersections)

	// Both ends of the diagonal are duplicated
	assert.Equal(t, 10, stats.Nodes)
}

func TestTriangulate_SelfIntersecting(t *testing.T) {
	// A bowtie has no proper triangulation. All passes run, and one of the
	// lobes survives.
	triangles, stats := Triangulate([]float64{0, 0, 10, 10, 10, 0, 0, 10}, nil, 2, Config{})
	assert.Equal(t, []int{3, 2, 1}, triangles)
	assert.Equal(t, [3]int{1, 1, 1}, stats.Passes)
}

func TestTriangulate_DroppedHole(t *testing.T) {
	c, shape := loadFixture(t, "outside-hole")
	triangles, stats := triangulate(shape)
	assert.Len(t, triangles, c.Triangles*3)
	assert.Equal(t, []int{0}, stats.DroppedHoles)

	err := func() (err error) {
		defer func() {
			err = HandleTriangulatePanicRecover(recover())
		}()
		Triangulate(shape.Coordinates, shape.HoleIndices, shape.Dimension, Config{StrictHoles: true})
		return nil
	}()
	assert.True(t, errors.Is(err, ErrUnresolvableHole))
	assert.EqualError(t, err, "hole 0: unresolvable hole")
}

func TestTriangulate_EmptyHoles(t *testing.T) {
	data := []float64{0, 0, 10, 0, 10, 10, 0, 10}

	// Empty hole ranges, including one at the very end, are skipped
	triangles, stats := Triangulate(data, []int{4, 4}, 2, Config{})
	assert.Len(t, triangles, 6)
	assert.Empty(t, stats.DroppedHoles)
}

func TestTriangulate_InvalidArguments(t *testing.T) {
	tests := []struct {
		name        string
		data        []float64
		holeIndices []int
		dim         int
		err         error
	}{
		{"dimension 1", []float64{0, 0, 1, 1}, nil, 1, ErrInvalidDimension},
		{"dimension 0", []float64{0, 0, 1, 1}, nil, 0, ErrInvalidDimension},
		{"ragged", []float64{0, 0, 1, 1, 2}, nil, 2, ErrInvalidDimension},
		{"hole past end", []float64{0, 0, 1, 0, 1, 1}, []int{4}, 2, ErrInvalidHoleIndices},
		{"negative hole", []float64{0, 0, 1, 0, 1, 1}, []int{-1}, 2, ErrInvalidHoleIndices},
		{"decreasing holes", []float64{0, 0, 1, 0, 1, 1, 2, 2}, []int{3, 2}, 2, ErrInvalidHoleIndices},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := func() (err error) {
				defer func() {
					err = HandleTriangulatePanicRecover(recover())
				}()
				Triangulate(test.data, test.holeIndices, test.dim, Config{})
				return nil
			}()
			assert.True(t, errors.Is(err, test.err), "got %v", err)
		})
	}
}
