package clique

import (
	"fmt"
	"sort"
)

// CliquesContaining — all maximal cliques through one query node.
//
// Description:
//
//	A maximal clique containing node consists of node plus a maximal
//	clique of the subgraph induced by node's neighborhood (any vertex
//	adjacent to the whole clique is in particular adjacent to node).
//	The search therefore runs Bron–Kerbosch with pivoting seeded with
//	R={node}, P=N(node), X=∅ — it never touches the rest of the graph,
//	which bounds the exponential worst case to the local neighborhood.
//
//	An isolated node yields the singleton [[node]]. Each returned clique
//	is sorted ascending; the slice order is the fixed depth-first
//	discovery order of the enumeration.
//
// Complexity:
//
//	Time   = exponential in |N(node)| worst case, budget-capped.
//	Memory = O(|N(node)|²) recursion + output.
//
// Errors:
//   - ErrNilGraph       — g is nil.
//   - ErrNodeOutOfRange — node outside [0, Order).
//   - ErrSearchBudget   — opts.MaxExpansions exhausted.
func CliquesContaining(g Graph, node int, opts Options) ([][]int, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if node < 0 || node >= g.Order() {
		return nil, fmt.Errorf("%w: node %d, order %d", ErrNodeOutOfRange, node, g.Order())
	}

	budget := opts.MaxExpansions
	if budget <= 0 {
		budget = DefaultMaxExpansions
	}

	// P = N(node), ascending.
	var p []int
	for v := 0; v < g.Order(); v++ {
		if g.HasEdge(node, v) {
			p = append(p, v)
		}
	}

	s := &searcher{g: g, budget: budget}
	if err := s.expand([]int{node}, p, nil); err != nil {
		return nil, err
	}

	for _, c := range s.found {
		sort.Ints(c)
	}

	return s.found, nil
}

// BestClique returns the maximum-cardinality clique among
// CliquesContaining(g, node): the best grain candidate anchored at node.
// On equal sizes the first clique in enumeration order wins — a fixed,
// documented tie-break, not a semantic preference. The result is an
// ascending sequence of node indices; an isolated node yields [node].
func BestClique(g Graph, node int, opts Options) ([]int, error) {
	cliques, err := CliquesContaining(g, node, opts)
	if err != nil {
		return nil, err
	}

	best := cliques[0]
	for _, c := range cliques[1:] {
		if len(c) > len(best) {
			best = c
		}
	}

	return best, nil
}

// BestCliques applies BestClique independently to each queried node,
// preserving input order; results for different nodes may overlap.
// The first failing node aborts the batch with its node index attached.
func BestCliques(g Graph, nodes []int, opts Options) ([][]int, error) {
	out := make([][]int, 0, len(nodes))
	for _, node := range nodes {
		best, err := BestClique(g, node, opts)
		if err != nil {
			return nil, fmt.Errorf("node %d: %w", node, err)
		}
		out = append(out, best)
	}

	return out, nil
}
