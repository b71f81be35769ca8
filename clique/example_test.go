// File: clique/example_test.go
package clique_test

import (
	"fmt"

	"github.com/katalvlaran/lauegraph/clique"
)

////////////////////////////////////////////////////////////////////////////////
// Example: BestClique
////////////////////////////////////////////////////////////////////////////////

// ExampleBestClique demonstrates grain-candidate extraction on a small graph.
// Scenario:
//
//   - Nodes 0..3 are pairwise consistent (one grain), node 4 also matches
//     node 0 by a chance coincidence.
//   - The best clique through node 0 is the full 4-node grain, not the
//     accidental pair.
func ExampleBestClique() {
	g := newEdgeGraph(5,
		[2]int{0, 1}, [2]int{0, 2}, [2]int{0, 3},
		[2]int{1, 2}, [2]int{1, 3}, [2]int{2, 3},
		[2]int{0, 4}, // coincidental match
	)

	best, err := clique.BestClique(g, 0, clique.DefaultOptions())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("grain candidate:", best)

	// Output:
	// grain candidate: [0 1 2 3]
}
