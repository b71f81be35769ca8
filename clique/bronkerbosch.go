package clique

// bronkerbosch.go holds the recursive core of the neighborhood-scoped
// maximal-clique enumeration. All candidate sets are kept as ascending
// sorted index slices, which fixes the enumeration order and makes every
// query reproducible.

// searcher carries one query's state: the graph, the remaining expansion
// budget, and the cliques found so far.
type searcher struct {
	g      Graph
	budget int
	found  [][]int
}

// expand is Bron–Kerbosch with pivoting.
//
// Invariants on entry:
//   - r is a clique (pairwise connected);
//   - p holds nodes adjacent to all of r that may still extend it;
//   - x holds nodes adjacent to all of r already reported elsewhere;
//   - p and x are sorted ascending.
//
// Every call consumes one unit of budget; exhaustion aborts the whole
// enumeration with ErrSearchBudget.
func (s *searcher) expand(r, p, x []int) error {
	if s.budget <= 0 {
		return ErrSearchBudget
	}
	s.budget--

	if len(p) == 0 && len(x) == 0 {
		s.found = append(s.found, append([]int(nil), r...))
		return nil
	}

	// Pivot on the vertex of P∪X covering most of P; only candidates
	// outside the pivot's neighborhood need expansion.
	pivot := s.choosePivot(p, x)
	candidates := make([]int, 0, len(p))
	for _, v := range p {
		if !s.g.HasEdge(pivot, v) {
			candidates = append(candidates, v)
		}
	}

	for _, v := range candidates {
		nextR := append(append(make([]int, 0, len(r)+1), r...), v)
		if err := s.expand(nextR, s.restrict(p, v), s.restrict(x, v)); err != nil {
			return err
		}
		p = removeSorted(p, v)
		x = insertSorted(x, v)
	}

	return nil
}

// choosePivot returns the vertex of P∪X with the most neighbors in P.
// Ties resolve to the earliest vertex in ascending P-then-X scan order,
// keeping enumeration deterministic.
func (s *searcher) choosePivot(p, x []int) int {
	best, bestCover := -1, -1
	consider := func(u int) {
		cover := 0
		for _, v := range p {
			if s.g.HasEdge(u, v) {
				cover++
			}
		}
		if cover > bestCover {
			best, bestCover = u, cover
		}
	}
	for _, u := range p {
		consider(u)
	}
	for _, u := range x {
		consider(u)
	}

	return best
}

// restrict returns the members of sorted set adjacent to v, preserving order.
func (s *searcher) restrict(set []int, v int) []int {
	out := make([]int, 0, len(set))
	for _, u := range set {
		if s.g.HasEdge(v, u) {
			out = append(out, u)
		}
	}

	return out
}

// removeSorted deletes v from a sorted slice, preserving order.
func removeSorted(set []int, v int) []int {
	for i, u := range set {
		if u == v {
			return append(set[:i:i], set[i+1:]...)
		}
	}

	return set
}

// insertSorted adds v to a sorted slice, preserving order.
func insertSorted(set []int, v int) []int {
	i := 0
	for i < len(set) && set[i] < v {
		i++
	}
	out := make([]int, 0, len(set)+1)
	out = append(out, set[:i]...)
	out = append(out, v)

	return append(out, set[i:]...)
}
