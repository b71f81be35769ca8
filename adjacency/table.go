// SPDX-License-Identifier: MIT

package adjacency

import (
	"math"
	"sort"
)

// dedupEpsilon is the spacing below which two reference angles are
// considered the same entry during construction.
const dedupEpsilon = 1e-9

// maxAngle bounds every meaningful angular distance in degrees.
const maxAngle = 180.0

// ReferenceTable is an immutable sorted ascending sequence of unique angles
// (degrees) that the assumed lattice symmetry can produce between plane
// normals. It is constructed once per session and shared read-only across
// all queries; there is no ambient global table.
type ReferenceTable struct {
	values []float64
}

// NewReferenceTable builds a table from arbitrary angle values: the input is
// copied, sorted ascending and deduplicated (spacing < 1e-9 collapses).
// Values must be finite and within [0,180]; otherwise ErrTableRange.
// An empty input yields a legal empty table (edgeless graphs downstream).
func NewReferenceTable(values []float64) (ReferenceTable, error) {
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 || v > maxAngle {
			return ReferenceTable{}, ErrTableRange
		}
	}

	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)

	unique := sorted[:0]
	for i, v := range sorted {
		if i == 0 || v-unique[len(unique)-1] >= dedupEpsilon {
			unique = append(unique, v)
		}
	}

	return ReferenceTable{values: unique}, nil
}

// Len reports the number of distinct reference angles.
func (t ReferenceTable) Len() int { return len(t.values) }

// Values returns a copy of the sorted angle sequence.
func (t ReferenceTable) Values() []float64 {
	return append([]float64(nil), t.values...)
}

// Nearest returns the table entry closest to x and true, or (0,false) when
// the table is empty. Exactly equidistant neighbors resolve to the lower
// entry, which keeps lookups deterministic.
//
// Time: O(log R).
func (t ReferenceTable) Nearest(x float64) (float64, bool) {
	n := len(t.values)
	if n == 0 {
		return 0, false
	}

	i := sort.SearchFloat64s(t.values, x)
	switch {
	case i == 0:
		return t.values[0], true
	case i == n:
		return t.values[n-1], true
	}

	lo, hi := t.values[i-1], t.values[i]
	if x-lo <= hi-x {
		return lo, true
	}

	return hi, true
}
