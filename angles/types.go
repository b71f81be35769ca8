// Package angles defines sentinel errors and shared constants for the
// angular-distance layer of github.com/katalvlaran/lauegraph.
package angles

import (
	"errors"
	"math"
)

// Sentinel errors for angles operations.
var (
	// ErrEmptyInput indicates an empty or nil vector set or angle sequence.
	ErrEmptyInput = errors.New("angles: input must contain at least one vector")
	// ErrBadShape indicates vectors without exactly three components,
	// or a metric tensor that is not 3×3.
	ErrBadShape = errors.New("angles: vectors and metric must be three-dimensional")
	// ErrLengthMismatch indicates theta and chi sequences of differing lengths.
	ErrLengthMismatch = errors.New("angles: theta and chi must have the same length")
	// ErrZeroVector indicates a direction with non-positive squared norm
	// under the metric; such a vector has no defined direction.
	ErrZeroVector = errors.New("angles: zero-norm vector under metric")
)

const (
	// vectorDim is the fixed dimensionality of direction vectors.
	vectorDim = 3

	// degPerRad converts radians to degrees.
	degPerRad = 180.0 / math.Pi

	// radPerDeg converts degrees to radians.
	radPerDeg = math.Pi / 180.0
)
