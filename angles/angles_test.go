package angles_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lauegraph/angles"
)

// vecs builds an N×3 row-vector matrix from triples.
func vecs(rows ...[3]float64) *mat.Dense {
	m := mat.NewDense(len(rows), 3, nil)
	for i, r := range rows {
		m.Set(i, 0, r[0])
		m.Set(i, 1, r[1])
		m.Set(i, 2, r[2])
	}
	return m
}

// TestPairwise_EmptyAndShape verifies input validation:
// nil/empty sets and non-3D vectors must be rejected.
func TestPairwise_EmptyAndShape(t *testing.T) {
	_, err := angles.Pairwise(nil, vecs([3]float64{1, 0, 0}), nil)
	assert.ErrorIs(t, err, angles.ErrEmptyInput, "nil first set should error")

	bad := mat.NewDense(1, 2, []float64{1, 0})
	_, err = angles.Pairwise(bad, bad, nil)
	assert.ErrorIs(t, err, angles.ErrBadShape, "2-component vectors must error")

	wrongMetric := mat.NewSymDense(2, []float64{1, 0, 0, 1})
	good := vecs([3]float64{1, 0, 0})
	_, err = angles.Pairwise(good, good, wrongMetric)
	assert.ErrorIs(t, err, angles.ErrBadShape, "non-3×3 metric must error")
}

// TestPairwise_ZeroVector ensures a zero triple is rejected:
// it has no direction under any metric.
func TestPairwise_ZeroVector(t *testing.T) {
	a := vecs([3]float64{0, 0, 0}, [3]float64{1, 0, 0})
	_, err := angles.Pairwise(a, a, nil)
	assert.ErrorIs(t, err, angles.ErrZeroVector)
}

// TestPairwise_SelfAndOpposite checks the fundamental identities:
// angle(v,v)=0, angle(v,-v)=180, angle(a,b)=angle(b,a).
func TestPairwise_SelfAndOpposite(t *testing.T) {
	set := vecs(
		[3]float64{1, 1, 1},
		[3]float64{-1, -1, -1},
		[3]float64{2, 0, 1},
	)
	d, err := angles.Pairwise(set, set, nil)
	require.NoError(t, err)

	n, _ := d.Dims()
	for i := 0; i < n; i++ {
		assert.InDelta(t, 0, d.At(i, i), 1e-9, "self-angle must be zero")
		for j := 0; j < n; j++ {
			assert.Equal(t, d.At(i, j), d.At(j, i), "matrix must be symmetric")
		}
	}
	assert.InDelta(t, 180, d.At(0, 1), 1e-9, "antiparallel vectors are 180° apart")
}

// TestPairwise_KnownAngles verifies textbook angles under the identity metric:
// orthogonal axes at 90°, (1,0,0) vs (1,1,0) at 45°.
func TestPairwise_KnownAngles(t *testing.T) {
	a := vecs([3]float64{1, 0, 0})
	b := vecs([3]float64{0, 1, 0}, [3]float64{1, 1, 0})

	d, err := angles.Pairwise(a, b, angles.Identity())
	require.NoError(t, err)
	assert.InDelta(t, 90, d.At(0, 0), 1e-9)
	assert.InDelta(t, 45, d.At(0, 1), 1e-9)
}

// TestPairwise_MetricTensor checks that a non-identity metric changes angles:
// under a tetragonal reciprocal metric diag(1,1,1/4), the directions (1,0,1)
// and (1,0,0) close up relative to the Euclidean 45°.
func TestPairwise_MetricTensor(t *testing.T) {
	g := mat.NewSymDense(3, []float64{
		1, 0, 0,
		0, 1, 0,
		0, 0, 0.25,
	})
	a := vecs([3]float64{1, 0, 1})
	b := vecs([3]float64{1, 0, 0})

	d, err := angles.Pairwise(a, b, g)
	require.NoError(t, err)
	// cos = 1/√1.25 ⇒ ≈ 26.565°
	assert.InDelta(t, 26.565051177, d.At(0, 0), 1e-6)
}

// TestFromThetaChi_Basics verifies the spherical-distance matrix:
// coincident spots at distance 0, spots on the same meridian separated by Δθ.
func TestFromThetaChi_Basics(t *testing.T) {
	theta := []float64{30, 30, 50}
	chi := []float64{10, 10, 10}

	d, err := angles.FromThetaChi(theta, chi)
	require.NoError(t, err)

	assert.InDelta(t, 0, d.At(0, 1), 1e-9, "identical positions coincide")
	assert.InDelta(t, 20, d.At(0, 2), 1e-9, "same chi: distance is Δθ")
	assert.InDelta(t, 0, d.At(2, 2), 1e-9, "diagonal is zero")
	assert.Equal(t, d.At(0, 2), d.At(2, 0), "symmetry")
}

// TestFromThetaChi_Validation covers length mismatch and empty input.
func TestFromThetaChi_Validation(t *testing.T) {
	_, err := angles.FromThetaChi([]float64{1, 2}, []float64{1})
	assert.ErrorIs(t, err, angles.ErrLengthMismatch)

	_, err = angles.FromThetaChi(nil, nil)
	assert.ErrorIs(t, err, angles.ErrEmptyInput)
}

// TestFromMiller_MatchesPairwise checks the integer convenience wrapper
// against the float entry point.
func TestFromMiller_MatchesPairwise(t *testing.T) {
	hkl := [][3]int{{1, 0, 0}, {1, 1, 0}, {1, 1, 1}}

	d, err := angles.FromMiller(hkl, nil)
	require.NoError(t, err)

	want, err := angles.Pairwise(
		vecs([3]float64{1, 0, 0}, [3]float64{1, 1, 0}, [3]float64{1, 1, 1}),
		vecs([3]float64{1, 0, 0}, [3]float64{1, 1, 0}, [3]float64{1, 1, 1}),
		nil,
	)
	require.NoError(t, err)
	assert.True(t, mat.EqualApprox(d, want, 1e-12))

	_, err = angles.FromMiller(nil, nil)
	assert.ErrorIs(t, err, angles.ErrEmptyInput)
}

// TestPairwise_ClampNoDomainError feeds nearly-parallel unit vectors whose
// raw cosine exceeds 1 by rounding; Acos must still return a finite angle.
func TestPairwise_ClampNoDomainError(t *testing.T) {
	a := vecs([3]float64{0.1, 0.1, 0.1}, [3]float64{0.3, 0.3, 0.3})
	d, err := angles.Pairwise(a, a, nil)
	require.NoError(t, err)
	assert.False(t, math.IsNaN(d.At(0, 1)), "angle must not be NaN")
	assert.InDelta(t, 0, d.At(0, 1), 1e-6, "parallel vectors at zero distance")
}
