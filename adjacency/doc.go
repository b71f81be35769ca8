// SPDX-License-Identifier: MIT

// Package adjacency turns a matrix of observed mutual angular distances into
// a boolean consistency graph by matching each distance against a reference
// table of theoretically allowed inter-planar angles.
//
// 🚀 What is adjacency?
//
//	Two observed reflections may belong to the same crystal grain only if
//	the angle between them is one the lattice can actually produce. The
//	package encodes exactly that: cell (i,j) of the adjacency Matrix is
//	true iff distance[i][j] lies within a tolerance of some entry of the
//	ReferenceTable. The resulting graph feeds clique extraction
//	(package clique), whose dense subsets are candidate grains.
//
// ✨ Key features:
//   - ReferenceTable: immutable, sorted, deduplicated angle table with
//     O(log R) nearest lookup — constructed once, shared read-only.
//   - Cubic(): the built-in table of inter-planar angles of an undistorted
//     cubic structure up to the {321} plane family.
//   - Versioned JSON snapshots for persisting and reloading tables.
//   - Build: pairwise-independent, symmetric adjacency construction;
//     each cell is decided on its own, tolerance 0 means exact match,
//     and an empty table degrades to an edgeless graph.
//
// ⚙️ Usage:
//
//	table := adjacency.Cubic()
//	adj, err := adjacency.Build(dist, table, 0.05)
//	if err != nil { ... }
//	adj.HasEdge(3, 7) // are spots 3 and 7 lattice-consistent?
//
// Performance:
//
//   - Build:   O(N²·log R) for N reflections, R table entries.
//   - Nearest: O(log R).
//
// Errors: see errors.go; all are sentinels matched via errors.Is.
package adjacency
