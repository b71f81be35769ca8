package grains

import "sort"

// SpotsFromArrays adapts three equal-length parsed column arrays into a
// spot slice. Mismatched lengths are rejected before any matrix is built;
// an empty input yields ErrNoSpots.
func SpotsFromArrays(theta, chi, intensity []float64) ([]Spot, error) {
	if len(theta) != len(chi) || len(theta) != len(intensity) {
		return nil, ErrLengthMismatch
	}
	if len(theta) == 0 {
		return nil, ErrNoSpots
	}

	spots := make([]Spot, len(theta))
	for i := range spots {
		spots[i] = Spot{Theta: theta[i], Chi: chi[i], Intensity: intensity[i]}
	}

	return spots, nil
}

// SelectBrightest returns the n most intense spots in descending intensity
// order. n = AllSpots (or any negative value) selects every spot; n larger
// than the set selects every spot too. Equal intensities keep their original
// relative order, so selection is deterministic.
//
// Grain indices returned by Finder queries refer to positions in the
// SELECTED slice, mirroring how the spots entered the distance matrix.
func SelectBrightest(spots []Spot, n int) []Spot {
	sorted := append([]Spot(nil), spots...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Intensity > sorted[j].Intensity
	})

	if n < 0 || n > len(sorted) {
		return sorted
	}

	return sorted[:n]
}
