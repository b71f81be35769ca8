// Package clique extracts densely-connected node subsets — candidate
// grains — from a boolean consistency graph.
//
// 🚀 What is clique?
//
//	A grain shows up as a set of reflections that are ALL pairwise
//	consistent with the lattice geometry, i.e. a clique of the adjacency
//	graph. The package enumerates the maximal cliques containing a query
//	node and selects the largest one as the best grain candidate.
//
// ✨ Key features:
//   - Node-scoped search: Bron–Kerbosch with pivoting restricted to the
//     query node's neighborhood — never whole-graph enumeration, so the
//     exponential worst case is bounded by local density, not by N.
//   - Deterministic: candidates are scanned in ascending index order and
//     ties resolve to the first clique found; identical inputs always
//     yield identical results.
//   - Budgeted: a configurable expansion cap turns pathological subgraphs
//     into a reported ErrSearchBudget instead of a hang.
//   - Graph-agnostic: any type with Order and HasEdge plugs in;
//     adjacency.Matrix satisfies the interface directly.
//
// ⚙️ Usage:
//
//	best, err := clique.BestClique(adj, 0, clique.DefaultOptions())
//	if err != nil {
//	  // ErrNodeOutOfRange or ErrSearchBudget
//	}
//	fmt.Println("grain candidate:", best) // ascending node indices
//
// Performance:
//
//   - Time: exponential in the size of the query node's neighborhood in
//     the worst case (clique listing is NP-hard); O(d·3^(d/3)) maximal
//     cliques for a neighborhood of d nodes, usually far fewer.
//   - Memory: O(d²) for the recursion plus the output.
//
// Errors:
//
//   - ErrNilGraph: the graph argument is nil.
//   - ErrNodeOutOfRange: query node outside [0, Order).
//   - ErrSearchBudget: the expansion cap was hit; results are discarded,
//     the condition is reported, nothing hangs.
package clique
