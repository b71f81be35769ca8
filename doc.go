// Package lauegraph identifies candidate crystal grains among observed
// diffraction reflections of a polycrystalline sample.
//
// 🚀 What is lauegraph?
//
//	A pure-Go indexing engine that compares all mutual angular distances
//	between reflections against a reference table of theoretically allowed
//	inter-planar angles, builds a boolean consistency graph, and extracts
//	its densest node subsets — cliques — as grain candidates:
//		• Angular distances: pairwise angles under arbitrary metric tensors
//		• Adjacency: tolerance-based matching against a sorted angle table
//		• Cliques: deterministic, budget-capped, node-scoped Bron–Kerbosch
//		• Harmonics: collapse parallel Miller-index vectors to fundamentals
//
// ✨ Why choose lauegraph?
//
//   - Deterministic – fixed enumeration and tie-break order, run after run
//   - Node-scoped – clique search never explodes beyond a local neighborhood
//   - Immutable cores – tables and matrices are read-only after construction,
//     concurrent queries need no locks
//   - Graceful – empty tables, exact-match tolerances and isolated spots all
//     degrade cleanly instead of erroring
//
// Everything is organized under five subpackages and one command:
//
//	angles/    — pairwise angular distance matrices (metric tensors, θ/χ)
//	adjacency/ — reference tables, snapshots & the consistency graph builder
//	clique/    — maximal-clique extraction through a query node
//	harmonics/ — parallel-reflection deduplication
//	grains/    — the spot model, file reading & the indexing pipeline
//	cmd/lauegraph — the command-line indexer
//
// Quick ASCII example:
//
//	spots ──angles──▶ D[i][j] ──adjacency──▶ G ──clique──▶ {grains}
//
// Dive into the per-package docs for contracts, complexity and errors.
//
//	go get github.com/katalvlaran/lauegraph
package lauegraph
