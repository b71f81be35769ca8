// SPDX-License-Identifier: MIT

package adjacency

// cubicAngles lists every inter-planar angle (degrees, ≤90) between plane
// families of an undistorted cubic structure from {100} and {110} up to the
// {321} type. Values carry the single-precision rounding of the historical
// table they were measured against, which keeps persisted snapshots of older
// runs matching bit-for-bit.
var cubicAngles = []float64{
	8.13000011, 10.02499962, 10.89299965, 11.48999977,
	14.76299953, 15.79300022, 17.02400017, 17.54800034,
	17.71500015, 18.43499947, 19.10700035, 19.2859993,
	19.47100067, 21.61700058, 21.78700066, 22.20800018,
	24.09499931, 25.23900032, 25.35199928, 25.84199905,
	26.56500053, 27.0170002, 27.26600075, 29.20599937,
	29.49600029, 30.0, 31.00300026, 31.48200035,
	31.94799995, 32.31200027, 32.51300049, 33.21099854,
	33.55699921, 35.09700012, 35.26399994, 36.31000137,
	36.69900131, 36.86999893, 38.94200134, 39.23199844,
	40.20299911, 40.29100037, 40.47900009, 40.89300156,
	41.81000137, 42.39199829, 42.45000076, 43.0890007,
	44.41500092, 45.0, 45.28900146, 47.12400055,
	47.45899963, 47.60800171, 47.86999893, 48.18999863,
	49.10699844, 49.79700089, 49.86000061, 49.99499893,
	50.47900009, 50.76800156, 51.88700104, 53.13000107,
	53.30099869, 53.39599991, 53.72900009, 54.73600006,
	55.10499954, 55.4620018, 56.78900146, 56.93799973,
	57.68799973, 58.19400024, 58.51800156, 58.9090004,
	59.52999878, 59.83300018, 60.0, 60.50400162,
	61.08599854, 61.43899918, 61.87400055, 62.9640007,
	63.43500137, 63.54899979, 63.61199951, 64.6230011,
	64.76100159, 64.89600372, 65.00299835, 65.06199646,
	65.90499878, 66.13899994, 66.42199707, 67.58000183,
	67.79199982, 68.58300018, 68.98799896, 69.07499695,
	70.52899933, 70.89299774, 71.19599915, 71.56500244,
	72.02500153, 72.45200348, 72.54199982, 72.65399933,
	73.22100067, 73.39800262, 73.56999969, 74.20700073,
	74.49900055, 75.03700256, 75.31300354, 75.7480011,
	76.36699677, 77.07900238, 77.39600372, 78.46299744,
	78.90399933, 79.00700378, 79.10700226, 79.48000336,
	79.73699951, 79.97499847, 80.40599823, 80.72599792,
	81.78700256, 81.87000275, 82.17900085, 82.25099945,
	82.58200073, 83.13500214, 83.6210022, 83.9489975,
	84.23200226, 84.26100159, 84.78399658, 84.88899994,
	85.15200043, 85.90399933, 90.0,
}

// Cubic returns the built-in reference table for an undistorted cubic
// lattice. A fresh ReferenceTable is returned per call; the backing data is
// already sorted and unique.
func Cubic() ReferenceTable {
	t, err := NewReferenceTable(cubicAngles)
	if err != nil {
		// The table is a compile-time constant; failing here is a
		// programmer error.
		panic(err)
	}

	return t
}
