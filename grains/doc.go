// Package grains ties the indexing pipeline together: observed reflections
// in, candidate grains out.
//
// What:
//
//   - Spot models one observed reflection: angular position (θ, χ in
//     degrees) plus intensity, immutable once loaded.
//   - SpotsFromArrays adapts the parsed column arrays of an experiment
//     file; SelectBrightest picks the top-K most intense spots (-1 = all).
//   - ReadSpots parses the classic whitespace-column spot file
//     (2θ, χ, ..., intensity; one header row).
//   - Finder owns the session-wide reference table, tolerance and clique
//     budget — constructed once, read-only thereafter — and runs
//     reflections → distance matrix → adjacency matrix → best cliques.
//
// Data flow:
//
//	spots ──FromThetaChi──▶ DistanceMatrix ──Build──▶ Adjacency ──BestClique──▶ grains
//
// A grain candidate is an ascending sequence of indices into the spot
// slice handed to the query (after any selection), one per queried node.
//
// Concurrency: Finder is immutable after construction; concurrent queries
// against it need no locking.
//
// Errors:
//
//   - ErrLengthMismatch: theta/chi/intensity arrays of differing lengths.
//   - ErrBadRecord: a spot file row that cannot be parsed.
//   - Everything downstream surfaces the adjacency/clique sentinels
//     (adjacency.ErrNegativeTolerance, clique.ErrNodeOutOfRange, ...).
package grains
