package grains

import (
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lauegraph/adjacency"
	"github.com/katalvlaran/lauegraph/angles"
	"github.com/katalvlaran/lauegraph/clique"
)

// Finder runs the indexing pipeline against one session-wide configuration:
// reference table, angular tolerance and clique search budget. It is
// immutable after construction — the explicit replacement for a cached
// module-level table — and safe for concurrent queries.
type Finder struct {
	table  adjacency.ReferenceTable
	angTol float64
	opts   clique.Options
}

// NewFinder validates the configuration once. angTol must be ≥ 0
// (0 = exact matching); adjacency.ErrNegativeTolerance otherwise.
func NewFinder(table adjacency.ReferenceTable, angTol float64, opts clique.Options) (*Finder, error) {
	if angTol < 0 {
		return nil, adjacency.ErrNegativeTolerance
	}

	return &Finder{table: table, angTol: angTol, opts: opts}, nil
}

// DistanceMatrix computes the mutual angular distance matrix of spots from
// their (θ, χ) positions.
func (f *Finder) DistanceMatrix(spots []Spot) (*mat.Dense, error) {
	if len(spots) == 0 {
		return nil, ErrNoSpots
	}

	theta := make([]float64, len(spots))
	chi := make([]float64, len(spots))
	for i, s := range spots {
		theta[i] = s.Theta
		chi[i] = s.Chi
	}

	return angles.FromThetaChi(theta, chi)
}

// Adjacency builds the lattice-consistency graph of spots under the
// finder's reference table and tolerance.
func (f *Finder) Adjacency(spots []Spot) (*adjacency.Matrix, error) {
	dist, err := f.DistanceMatrix(spots)
	if err != nil {
		return nil, err
	}

	return adjacency.Build(dist, f.table, f.angTol)
}

// BestGrain returns the largest internally consistent grain candidate
// containing the spot at index node, as ascending spot indices.
func (f *Finder) BestGrain(spots []Spot, node int) ([]int, error) {
	adj, err := f.Adjacency(spots)
	if err != nil {
		return nil, err
	}

	return clique.BestClique(adj, node, f.opts)
}

// BestGrains answers several node queries against one adjacency matrix,
// building it only once. One grain per queried node, input order preserved.
func (f *Finder) BestGrains(spots []Spot, nodes []int) ([][]int, error) {
	adj, err := f.Adjacency(spots)
	if err != nil {
		return nil, err
	}

	return clique.BestCliques(adj, nodes, f.opts)
}
