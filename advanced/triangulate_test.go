package advanced

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()
	assert.Equal(t, DefaultHashThreshold, opts.HashThreshold)
	assert.False(t, opts.StrictHoles)
	assert.Nil(t, opts.Logger)
}

func TestTriangulate(t *testing.T) {
	result, err := Triangulate([]float64{10, 0, 0, 50, 60, 60, 70, 10}, nil, 2, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Len())
	assert.Equal(t, [3]int{1, 0, 3}, result.Triangle(0))
	assert.Equal(t, [3]int{3, 2, 1}, result.Triangle(1))
	assert.Equal(t, 4, result.Stats.Nodes)
}

func TestTriangulate_Options(t *testing.T) {
	var buf bytes.Buffer
	square := make([]float64, 0, 8)
	for _, p := range [][2]float64{{0, 0}, {40, 0}, {40, 40}, {0, 40}} {
		square = append(square, p[0], p[1])
	}

	result, err := Triangulate(square, nil, 2, &Options{
		HashThreshold: 3,
		Logger:        slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})),
	})
	require.NoError(t, err)
	assert.True(t, result.Stats.Hashed)
	assert.Equal(t, 2, result.Len())
	assert.Contains(t, buf.String(), "z-order index enabled")
}

func TestTriangulate_StrictHoles(t *testing.T) {
	coordinates := []float64{0, 0, 10, 0, 10, 10, 0, 10, 20, 20, 30, 20, 30, 30}

	result, err := Triangulate(coordinates, []int{4}, 2, nil)
	require.NoError(t, err)
	assert.Equal(t, []int{0}, result.Stats.DroppedHoles)

	result, err = Triangulate(coordinates, []int{4}, 2, &Options{StrictHoles: true})
	assert.Nil(t, result)
	assert.True(t, errors.Is(err, ErrUnresolvableHole), "got %v", err)
}

func TestTriangulate_Errors(t *testing.T) {
	result, err := Triangulate([]float64{0, 0, 1, 1}, nil, 1, nil)
	assert.Nil(t, result)
	assert.True(t, errors.Is(err, ErrInvalidDimension), "got %v", err)

	_, err = Triangulate([]float64{0, 0, 1, 0, 1, 1}, []int{7}, 2, nil)
	assert.True(t, errors.Is(err, ErrInvalidHoleIndices), "got %v", err)
}

func TestDeviation(t *testing.T) {
	square := []float64{0, 0, 10, 0, 10, 10, 0, 10}

	deviation, err := Deviation(square, nil, 2, []int{1, 0, 3, 3, 2, 1})
	require.NoError(t, err)
	assert.Zero(t, deviation)

	_, err = Deviation(square, nil, 2, []int{0, 1, 9})
	assert.True(t, errors.Is(err, ErrInvalidTriangles), "got %v", err)
}

func TestFlatten(t *testing.T) {
	flat, err := Flatten([][][]float64{
		{{0, 0}, {10, 0}, {10, 10}, {0, 10}},
		{{2, 2}, {4, 2}, {4, 4}},
	})
	require.NoError(t, err)
	assert.Equal(t, []int{4}, flat.HoleIndices)

	result, err := Triangulate(flat.Coordinates, flat.HoleIndices, flat.Dimension, nil)
	require.NoError(t, err)
	deviation, err := Deviation(flat.Coordinates, flat.HoleIndices, flat.Dimension, result.Triangles)
	require.NoError(t, err)
	assert.Zero(t, deviation)

	_, err = Flatten([][][]float64{{{0, 0}, {1, 0, 1}}})
	assert.True(t, errors.Is(err, ErrMixedDimension), "got %v", err)
}

func TestSetLogger(t *testing.T) {
	defer SetLogger(nil)

	assert.False(t, Logger().Enabled(context.Background(), slog.LevelError))
	SetLogger(slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)))
	assert.True(t, Logger().Enabled(context.Background(), slog.LevelInfo))
}
