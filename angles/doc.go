// Package angles computes mutual angular distances between direction
// vectors, the numeric ground layer for grain indexing.
//
// What:
//
//   - Pairwise: N1×N2 matrix of angles (degrees) between two sets of
//     3-component row vectors under an arbitrary symmetric metric tensor
//     (identity for plain Euclidean directions, a reciprocal metric tensor
//     for crystallographic Miller indices).
//   - FromThetaChi: N×N mutual angular distance matrix from measured
//     scattering angles (θ, χ), via the spherical law of cosines.
//   - FromMiller: Pairwise convenience for integer Miller-index triples.
//
// Why:
//
//   - Grain indexing: distances between observed reflections feed the
//     adjacency builder (package adjacency).
//   - Harmonic deduplication: identity-metric distances expose exactly
//     parallel lattice directions (package harmonics).
//
// Numerics:
//
//   - The arccos argument is always clamped to [-1,1]; exact parallel or
//     antiparallel pairs never raise a domain error.
//   - All matrices are gonum mat.Dense; the metric is a mat.SymDense.
//
// Complexity:
//
//   - Pairwise:     O(N1·N2) after two O(N·9) metric products.
//   - FromThetaChi: O(N²).
//
// Errors:
//
//   - ErrEmptyInput: a vector set or angle sequence is empty or nil.
//   - ErrBadShape: vectors are not 3-component, or the metric is not 3×3.
//   - ErrLengthMismatch: theta and chi sequences differ in length.
//   - ErrZeroVector: a vector has non-positive squared norm under the metric.
package angles
