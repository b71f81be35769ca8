// SPDX-License-Identifier: MIT

package adjacency

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Matrix is an immutable symmetric boolean N×N adjacency matrix over
// reflection indices 0..N-1. The diagonal is always false: a reflection is
// never its own neighbor. Matrix is safe for concurrent read-only use.
type Matrix struct {
	n     int
	cells []bool // row-major n×n
}

// Order reports the number of nodes N.
func (m *Matrix) Order() int { return m.n }

// HasEdge reports whether nodes u and v are connected. Out-of-range indices
// and the diagonal report false rather than panicking, so edge probes are
// total.
func (m *Matrix) HasEdge(u, v int) bool {
	if u < 0 || v < 0 || u >= m.n || v >= m.n || u == v {
		return false
	}

	return m.cells[u*m.n+v]
}

// Neighbors returns the ascending list of nodes adjacent to u.
// An out-of-range u yields nil.
func (m *Matrix) Neighbors(u int) []int {
	if u < 0 || u >= m.n {
		return nil
	}

	var nbrs []int
	row := m.cells[u*m.n : (u+1)*m.n]
	for v, connected := range row {
		if connected {
			nbrs = append(nbrs, v)
		}
	}

	return nbrs
}

// Degree reports the number of neighbors of u; 0 when u is out of range.
func (m *Matrix) Degree(u int) int { return len(m.Neighbors(u)) }

// Build — adjacency matrix from observed distances and a reference table.
//
// Description:
//
//	For every unordered pair (i,j), i≠j, Build locates the ReferenceTable
//	entry nearest to dist[i][j] by binary search and sets both (i,j) and
//	(j,i) iff |nearest − dist[i][j]| ≤ angTol. Every cell is decided
//	independently of all others; only the upper triangle of dist is read,
//	so the result is symmetric even for numerically asymmetric input.
//
//	angTol == 0 is legal and means exact match. An empty table produces an
//	all-false matrix: every reflection degrades to its own singleton grain
//	downstream.
//
// Complexity:
//
//	Time   = O(N²·log R)
//	Memory = O(N²)
//
// Errors:
//   - ErrNilMatrix         — dist is nil.
//   - ErrNonSquare         — dist is not N×N.
//   - ErrNegativeTolerance — angTol < 0.
func Build(dist *mat.Dense, table ReferenceTable, angTol float64) (*Matrix, error) {
	if dist == nil {
		return nil, ErrNilMatrix
	}
	r, c := dist.Dims()
	if r != c {
		return nil, ErrNonSquare
	}
	if angTol < 0 {
		return nil, ErrNegativeTolerance
	}

	adj := &Matrix{n: r, cells: make([]bool, r*r)}
	if table.Len() == 0 {
		return adj, nil
	}

	for i := 0; i < r; i++ {
		for j := i + 1; j < r; j++ {
			d := dist.At(i, j)
			nearest, ok := table.Nearest(d)
			if ok && math.Abs(nearest-d) <= angTol {
				adj.cells[i*r+j] = true
				adj.cells[j*r+i] = true
			}
		}
	}

	return adj, nil
}
