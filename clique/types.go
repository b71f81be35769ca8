// Package clique defines the graph contract, options, and sentinel errors
// for clique extraction in github.com/katalvlaran/lauegraph.
package clique

import "errors"

// Sentinel errors for clique operations.
var (
	// ErrNilGraph indicates a nil Graph was passed in.
	ErrNilGraph = errors.New("clique: graph is nil")
	// ErrNodeOutOfRange indicates a query node outside [0, Order).
	ErrNodeOutOfRange = errors.New("clique: node index out of range")
	// ErrSearchBudget indicates the expansion budget was exhausted before
	// enumeration finished. Recoverable: re-query with a larger budget or a
	// tighter tolerance upstream.
	ErrSearchBudget = errors.New("clique: expansion budget exceeded")
)

// Graph is the read-only view clique search needs. Implementations must be
// symmetric (HasEdge(u,v) == HasEdge(v,u)) and report false on the diagonal
// and for out-of-range indices. adjacency.Matrix satisfies Graph.
type Graph interface {
	// Order reports the number of nodes; valid indices are 0..Order()-1.
	Order() int
	// HasEdge reports whether u and v are connected.
	HasEdge(u, v int) bool
}

// DefaultMaxExpansions caps recursive search expansions per query.
// Generous for realistic reflection sets (tens to a few hundred spots)
// while still bounding pathologically dense neighborhoods.
const DefaultMaxExpansions = 1 << 20

// Options configures a single clique query.
//
// Fields:
//   - MaxExpansions — safety cap on recursive expansions; values ≤ 0 fall
//     back to DefaultMaxExpansions. When the cap is hit the query returns
//     ErrSearchBudget instead of running unbounded.
type Options struct {
	MaxExpansions int
}

// DefaultOptions returns the default query configuration.
func DefaultOptions() Options {
	return Options{MaxExpansions: DefaultMaxExpansions}
}
