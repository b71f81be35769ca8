// Package grains defines the reflection model, file layout options and
// sentinel errors for the indexing pipeline.
package grains

import "errors"

// Sentinel errors for grains operations.
var (
	// ErrLengthMismatch indicates theta, chi and intensity sequences of
	// differing lengths at the pipeline boundary.
	ErrLengthMismatch = errors.New("grains: theta, chi and intensity must have the same length")
	// ErrNoSpots indicates an empty reflection set where at least one
	// spot is required.
	ErrNoSpots = errors.New("grains: no spots")
	// ErrBadRecord indicates a spot-file row that cannot be parsed.
	ErrBadRecord = errors.New("grains: malformed spot record")
)

// Spot is one observed reflection. Theta and Chi are the angular position
// in degrees (θ = 2θ/2 for file input); Intensity is used only for
// selecting and ordering the most intense reflections before indexing.
// Spots are immutable once loaded.
type Spot struct {
	Theta     float64
	Chi       float64
	Intensity float64
}

// AllSpots is the selection-count convention for "use every reflection".
const AllSpots = -1

// FileLayout describes the column layout of a text spot file:
// whitespace-separated columns, SkipRows header lines ignored.
//
// Fields:
//   - TwoThetaCol  — column index of the 2θ angle (degrees).
//   - ChiCol       — column index of the χ angle (degrees).
//   - IntensityCol — column index of the integrated intensity.
//   - SkipRows     — leading header rows to skip.
type FileLayout struct {
	TwoThetaCol  int
	ChiCol       int
	IntensityCol int
	SkipRows     int
}

// DefaultFileLayout matches the historical .cor format:
// columns 2θ, χ, X, Y, I with a single header row.
func DefaultFileLayout() FileLayout {
	return FileLayout{
		TwoThetaCol:  0,
		ChiCol:       1,
		IntensityCol: 4,
		SkipRows:     1,
	}
}
