// Package harmonics deduplicates Miller-index vectors that point along the
// same lattice direction, keeping one canonical representative per
// direction.
//
// What:
//
//   - A harmonic reflection (2h,2k,2l), (3h,3k,3l), ... is literally
//     parallel to its fundamental (h,k,l): the angle between them under
//     the identity metric is exactly zero. Filter detects such groups and
//     collapses each to the member with the smallest |h|+|k|+|l|.
//   - Parallelism is treated as transitive — groups are connected
//     components of the zero-angle relation, not merely pairwise matches.
//   - Antiparallel vectors (180° apart) are never grouped: (h,k,l) and
//     (-h,-k,-l) both survive, they index different scattering geometry.
//
// Why:
//
//   - Harmonics describe the same lattice plane; feeding them to the
//     indexer would inflate candidate grains with redundant reflections.
//
// Numerics:
//
//   - Angles are computed with package angles (identity metric) and
//     rounded to 9 decimal digits before the zero test, absorbing float
//     noise without ever mistaking a near-parallel pair for a harmonic.
//
// Guarantees:
//
//   - Input order is preserved in the filtered output.
//   - Filter is idempotent: filtering its own output changes nothing.
//
// Complexity: O(N²) angles + O(N + pairs) component grouping.
//
// Errors:
//
//   - ErrNoVectors: empty input.
//   - Degenerate (0,0,0) triples surface angles.ErrZeroVector.
package harmonics
