// SPDX-License-Identifier: MIT
// Package adjacency: sentinel error set. All public operations return these
// sentinels (optionally wrapped with fmt.Errorf("ctx: %w", ...) at outer
// boundaries); tests match them via errors.Is. Panics are reserved for
// programmer errors in private helpers.

package adjacency

import "errors"

var (
	// ErrNilMatrix indicates a nil distance matrix was passed to Build.
	ErrNilMatrix = errors.New("adjacency: distance matrix is nil")

	// ErrNonSquare indicates the distance matrix is not square.
	ErrNonSquare = errors.New("adjacency: distance matrix must be square")

	// ErrNegativeTolerance indicates ang_tol < 0; zero is legal and means
	// exact-match only.
	ErrNegativeTolerance = errors.New("adjacency: angular tolerance must be non-negative")

	// ErrTableRange indicates a reference angle outside [0,180] or non-finite.
	ErrTableRange = errors.New("adjacency: reference angles must be finite and within [0,180]")

	// ErrSnapshotVersion indicates a persisted table snapshot with an
	// unsupported version field.
	ErrSnapshotVersion = errors.New("adjacency: unsupported snapshot version")
)
