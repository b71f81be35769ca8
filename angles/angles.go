package angles

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Identity returns the 3×3 identity metric tensor, the metric of plain
// Euclidean direction vectors. A fresh value is returned on every call so
// callers may not accidentally share mutable state.
func Identity() *mat.SymDense {
	return mat.NewSymDense(vectorDim, []float64{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	})
}

// Pairwise — angular distances between two vector sets under a metric.
//
// Description:
//
//	Given row-vector sets a (N1×3) and b (N2×3) and a symmetric metric
//	tensor M (3×3; nil means identity), Pairwise returns the N1×N2
//	matrix D with
//
//	    D[i][j] = arccos( (aᵢᵗ M bⱼ) / √((aᵢᵗ M aᵢ)(bⱼᵗ M bⱼ)) )
//
//	expressed in degrees. The arccos argument is clamped to [-1,1] before
//	inversion, so exact parallel/antiparallel pairs produced by floating
//	rounding never raise a domain error. When a and b are the same set the
//	result is symmetric with a zero diagonal.
//
// Complexity:
//
//	Time   = O(N1·N2) dot products after two O(N·9) metric applications.
//	Memory = O(N1·N2) for the result.
//
// Errors:
//   - ErrEmptyInput     — a or b is nil or has no rows.
//   - ErrBadShape       — a column count other than 3, or a non-3×3 metric.
//   - ErrZeroVector     — some vector has vᵗMv ≤ 0 (no direction).
func Pairwise(a, b *mat.Dense, metric *mat.SymDense) (*mat.Dense, error) {
	if a == nil || b == nil {
		return nil, ErrEmptyInput
	}
	n1, ca := a.Dims()
	n2, cb := b.Dims()
	if n1 == 0 || n2 == 0 {
		return nil, ErrEmptyInput
	}
	if ca != vectorDim || cb != vectorDim {
		return nil, ErrBadShape
	}
	if metric == nil {
		metric = Identity()
	}
	if metric.SymmetricDim() != vectorDim {
		return nil, ErrBadShape
	}

	// ga[i] = aᵢᵗM and gb[j] = bⱼᵗM, reused for both norms and cross terms.
	var ga, gb mat.Dense
	ga.Mul(a, metric)
	gb.Mul(b, metric)

	normA, err := metricNorms(&ga, a)
	if err != nil {
		return nil, err
	}
	normB, err := metricNorms(&gb, b)
	if err != nil {
		return nil, err
	}

	out := mat.NewDense(n1, n2, nil)
	for i := 0; i < n1; i++ {
		gi := ga.RowView(i)
		for j := 0; j < n2; j++ {
			cosv := clampCosine(mat.Dot(gi, b.RowView(j)) / (normA[i] * normB[j]))
			out.Set(i, j, degPerRad*math.Acos(cosv))
		}
	}

	return out, nil
}

// FromThetaChi builds the N×N mutual angular distance matrix (degrees) of
// reflections given by their scattering angles theta and chi (degrees),
// using the spherical law of cosines:
//
//	cos d = sin θ₁ sin θ₂ + cos θ₁ cos θ₂ · cos(χ₁ − χ₂)
//
// The result is symmetric with a zero diagonal; entries lie in [0,180].
//
// Errors: ErrLengthMismatch if the sequences differ in length,
// ErrEmptyInput if they are empty.
func FromThetaChi(theta, chi []float64) (*mat.Dense, error) {
	if len(theta) != len(chi) {
		return nil, ErrLengthMismatch
	}
	n := len(theta)
	if n == 0 {
		return nil, ErrEmptyInput
	}

	sinT := make([]float64, n)
	cosT := make([]float64, n)
	chiRad := make([]float64, n)
	for i := 0; i < n; i++ {
		sinT[i] = math.Sin(theta[i] * radPerDeg)
		cosT[i] = math.Cos(theta[i] * radPerDeg)
		chiRad[i] = chi[i] * radPerDeg
	}

	out := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			arg := clampCosine(sinT[i]*sinT[j] + cosT[i]*cosT[j]*math.Cos(chiRad[i]-chiRad[j]))
			d := degPerRad * math.Acos(arg)
			out.Set(i, j, d)
			out.Set(j, i, d)
		}
	}

	return out, nil
}

// FromMiller computes the pairwise angle matrix of a single set of integer
// Miller-index triples under metric (nil means identity). It is the
// crystallographic entry point: with a reciprocal metric tensor the result
// contains inter-planar angles of the lattice.
func FromMiller(hkl [][3]int, metric *mat.SymDense) (*mat.Dense, error) {
	if len(hkl) == 0 {
		return nil, ErrEmptyInput
	}
	v := mat.NewDense(len(hkl), vectorDim, nil)
	for i, h := range hkl {
		v.Set(i, 0, float64(h[0]))
		v.Set(i, 1, float64(h[1]))
		v.Set(i, 2, float64(h[2]))
	}

	return Pairwise(v, v, metric)
}

// metricNorms returns √(vᵢᵗMvᵢ) per row, where gv holds the precomputed
// rows vᵢᵗM. Non-positive squared norms are rejected.
func metricNorms(gv, v *mat.Dense) ([]float64, error) {
	n, _ := v.Dims()
	norms := make([]float64, n)
	for i := 0; i < n; i++ {
		q := mat.Dot(gv.RowView(i), v.RowView(i))
		if q <= 0 {
			return nil, ErrZeroVector
		}
		norms[i] = math.Sqrt(q)
	}

	return norms, nil
}

// clampCosine clips x to the arccos domain [-1,1].
func clampCosine(x float64) float64 {
	if x > 1 {
		return 1
	}
	if x < -1 {
		return -1
	}

	return x
}
