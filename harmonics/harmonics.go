package harmonics

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/lauegraph/angles"
)

// ErrNoVectors indicates an empty input sequence.
var ErrNoVectors = errors.New("harmonics: input must contain at least one vector")

// roundScale fixes the precision (9 decimal digits) at which an angle is
// compared against zero.
const roundScale = 1e9

// Filter — collapse parallel Miller-index vectors to one representative.
//
// Description:
//
//  1. Compute the N×N angular distance matrix of hkl under the identity
//     metric, each entry rounded to 9 decimals.
//  2. Connect i~j iff the rounded angle is exactly 0 (i≠j) and take the
//     connected components of that relation — "same lattice direction"
//     is transitive, so components, not pairwise cliques.
//  3. In every component of size > 1 keep the member minimizing
//     |h|+|k|+|l| (ties to the lowest original index) and drop the rest.
//
// The filtered sequence preserves input order; removed reports the dropped
// original indices ascending (empty when nothing was dropped). A single
// vector passes through unchanged. Antiparallel pairs are 180° apart and
// therefore never grouped.
//
// Complexity:
//
//	Time   = O(N²)
//	Memory = O(N²) for the distance matrix.
//
// Errors:
//   - ErrNoVectors          — empty input.
//   - angles.ErrZeroVector  — a (0,0,0) triple has no direction.
func Filter(hkl [][3]int) (kept [][3]int, removed []int, err error) {
	n := len(hkl)
	if n == 0 {
		return nil, nil, ErrNoVectors
	}
	if n == 1 {
		return append([][3]int(nil), hkl...), nil, nil
	}

	dist, err := angles.FromMiller(hkl, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("harmonics: %w", err)
	}

	parallel := func(i, j int) bool {
		return math.Round(dist.At(i, j)*roundScale) == 0
	}

	drop := make([]bool, n)
	seen := make([]bool, n)
	for start := 0; start < n; start++ {
		if seen[start] {
			continue
		}
		comp := component(start, n, seen, parallel)
		if len(comp) < 2 {
			continue
		}

		rep := canonical(hkl, comp)
		for _, idx := range comp {
			if idx != rep {
				drop[idx] = true
			}
		}
	}

	kept = make([][3]int, 0, n)
	for i, v := range hkl {
		if drop[i] {
			removed = append(removed, i)
			continue
		}
		kept = append(kept, v)
	}
	sort.Ints(removed)

	return kept, removed, nil
}

// component collects, by BFS over the parallel relation, the connected
// component of start among indices 0..n-1, marking members as seen.
// The result is ascending because candidates are scanned in index order.
func component(start, n int, seen []bool, parallel func(i, j int) bool) []int {
	queue := []int{start}
	seen[start] = true
	var comp []int

	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		comp = append(comp, u)
		for v := 0; v < n; v++ {
			if !seen[v] && v != u && parallel(u, v) {
				seen[v] = true
				queue = append(queue, v)
			}
		}
	}
	sort.Ints(comp)

	return comp
}

// canonical picks the component member with the minimal |h|+|k|+|l|;
// comp is ascending, so ties resolve to the lowest original index.
func canonical(hkl [][3]int, comp []int) int {
	best, bestSum := comp[0], math.MaxInt
	for _, idx := range comp {
		v := hkl[idx]
		sum := absInt(v[0]) + absInt(v[1]) + absInt(v[2])
		if sum < bestSum {
			best, bestSum = idx, sum
		}
	}

	return best
}

// absInt returns the absolute value of an int.
func absInt(x int) int {
	if x < 0 {
		return -x
	}

	return x
}
