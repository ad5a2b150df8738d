// Package stats provides the statistical primitives the planning formulas
// are built on. All standard deviation calculations use population stddev
// (divide by n, not n-1), matching the demand-variability model.
package stats

import "math"

// Mean returns the arithmetic mean of values.
// Returns 0 for an empty slice.
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}

	var sum float64
	for _, v := range values {
		sum += v
	}

	return sum / float64(len(values))
}

// StdDev returns the population standard deviation of values.
// Returns 0 for an empty slice.
func StdDev(values []float64) float64 {
	_, stddev := MeanStdDev(values)
	return stddev
}

// MeanStdDev returns the arithmetic mean and population standard deviation.
// Returns (0, 0) for an empty slice.
func MeanStdDev(values []float64) (mean, stddev float64) {
	count := len(values)
	if count == 0 {
		return 0, 0
	}

	mean = Mean(values)

	var sumSq float64
	for _, v := range values {
		diff := v - mean
		sumSq += diff * diff
	}

	return mean, math.Sqrt(sumSq / float64(count))
}

// NormalQuantile returns the z-score for a given probability p, i.e. the
// inverse CDF of the standard normal distribution.
// Returns -Inf for p <= 0 and +Inf for p >= 1.
func NormalQuantile(p float64) float64 {
	if p <= 0 {
		return math.Inf(-1)
	}
	if p >= 1 {
		return math.Inf(1)
	}

	// For p in (0,1): z = sqrt(2) * erfinv(2p - 1)
	return math.Sqrt2 * math.Erfinv(2*p-1)
}

// NormalCDF returns the standard normal CDF at x.
func NormalCDF(x float64) float64 {
	return 0.5 * (1 + math.Erf(x/math.Sqrt2))
}
