package grains_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lauegraph/grains"
)

const spotFile = `2theta chi X Y I
20.0  5.0  101.2  88.3  1500
60.0 -3.5  205.9  47.0   300

44.2 12.0   17.4  93.1  9000
`

// TestReadSpots_DefaultLayout parses the classic five-column file:
// header skipped, blank line ignored, θ halved from 2θ.
func TestReadSpots_DefaultLayout(t *testing.T) {
	spots, err := grains.ReadSpots(strings.NewReader(spotFile), grains.DefaultFileLayout())
	require.NoError(t, err)
	require.Len(t, spots, 3)

	assert.Equal(t, grains.Spot{Theta: 10, Chi: 5, Intensity: 1500}, spots[0])
	assert.Equal(t, grains.Spot{Theta: 30, Chi: -3.5, Intensity: 300}, spots[1])
	assert.Equal(t, grains.Spot{Theta: 22.1, Chi: 12, Intensity: 9000}, spots[2])
}

// TestReadSpots_CustomLayout reads intensity from a different column with
// no header.
func TestReadSpots_CustomLayout(t *testing.T) {
	layout := grains.FileLayout{TwoThetaCol: 1, ChiCol: 0, IntensityCol: 2}

	spots, err := grains.ReadSpots(strings.NewReader("7.5 30 42\n"), layout)
	require.NoError(t, err)
	require.Len(t, spots, 1)
	assert.Equal(t, grains.Spot{Theta: 15, Chi: 7.5, Intensity: 42}, spots[0])
}

// TestReadSpots_BadRecords covers short rows and non-numeric fields, with
// the offending line number attached.
func TestReadSpots_BadRecords(t *testing.T) {
	layout := grains.DefaultFileLayout()

	_, err := grains.ReadSpots(strings.NewReader("header\n1 2 3\n"), layout)
	require.ErrorIs(t, err, grains.ErrBadRecord, "too few columns")
	assert.Contains(t, err.Error(), "line 2")

	_, err = grains.ReadSpots(strings.NewReader("header\n20 x 1 2 300\n"), layout)
	require.ErrorIs(t, err, grains.ErrBadRecord, "non-numeric chi")
	assert.Contains(t, err.Error(), "line 2")
}

// TestReadSpots_Empty yields ErrNoSpots for header-only input.
func TestReadSpots_Empty(t *testing.T) {
	_, err := grains.ReadSpots(strings.NewReader("only a header\n"), grains.DefaultFileLayout())
	assert.ErrorIs(t, err, grains.ErrNoSpots)
}
