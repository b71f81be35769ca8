package grains_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lauegraph/grains"
)

// TestSpotsFromArrays_Validation rejects mismatched and empty arrays at the
// boundary, before any matrix construction.
func TestSpotsFromArrays_Validation(t *testing.T) {
	_, err := grains.SpotsFromArrays([]float64{1, 2}, []float64{1}, []float64{1, 2})
	assert.ErrorIs(t, err, grains.ErrLengthMismatch)

	_, err = grains.SpotsFromArrays([]float64{1}, []float64{1}, []float64{})
	assert.ErrorIs(t, err, grains.ErrLengthMismatch)

	_, err = grains.SpotsFromArrays(nil, nil, nil)
	assert.ErrorIs(t, err, grains.ErrNoSpots)
}

// TestSpotsFromArrays_Maps checks the column-to-field mapping.
func TestSpotsFromArrays_Maps(t *testing.T) {
	spots, err := grains.SpotsFromArrays(
		[]float64{10, 20},
		[]float64{-5, 15},
		[]float64{100, 50},
	)
	require.NoError(t, err)
	assert.Equal(t, grains.Spot{Theta: 10, Chi: -5, Intensity: 100}, spots[0])
	assert.Equal(t, grains.Spot{Theta: 20, Chi: 15, Intensity: 50}, spots[1])
}

// TestSelectBrightest covers top-K, the -1 "all spots" convention and
// stability on equal intensities.
func TestSelectBrightest(t *testing.T) {
	spots := spotFixture(t)

	top2 := grains.SelectBrightest(spots, 2)
	require.Len(t, top2, 2)
	assert.Equal(t, 90.0, top2[0].Intensity)
	assert.Equal(t, 70.0, top2[1].Intensity)

	all := grains.SelectBrightest(spots, grains.AllSpots)
	require.Len(t, all, len(spots))
	assert.Equal(t, 90.0, all[0].Intensity)
	assert.Equal(t, 10.0, all[len(all)-1].Intensity)

	// More requested than available behaves like "all".
	assert.Len(t, grains.SelectBrightest(spots, 99), len(spots))

	// Ties keep original relative order: the two 70s preserve Chi order 1, 2.
	ties := grains.SelectBrightest([]grains.Spot{
		{Chi: 1, Intensity: 70},
		{Chi: 2, Intensity: 70},
		{Chi: 3, Intensity: 90},
	}, grains.AllSpots)
	assert.Equal(t, []float64{3, 1, 2}, []float64{ties[0].Chi, ties[1].Chi, ties[2].Chi})
}

// spotFixture builds a small unsorted intensity fixture.
func spotFixture(t *testing.T) []grains.Spot {
	t.Helper()
	return []grains.Spot{
		{Theta: 1, Intensity: 10},
		{Theta: 2, Intensity: 90},
		{Theta: 3, Intensity: 70},
		{Theta: 4, Intensity: 40},
	}
}
