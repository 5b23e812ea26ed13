// Package stats provides the sample statistics used to judge the generator:
// summary moments, z-score normalization, and the two-sample
// Kolmogorov-Smirnov test.
package stats

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// minStd guards z-score normalization against degenerate samples.
const minStd = 1e-10

// Summary holds the basic moments of a sample.
type Summary struct {
	N    int
	Mean float64
	Std  float64
	Min  float64
	Max  float64
}

// Summarize computes population moments of xs. An empty sample yields the
// zero Summary.
func Summarize(xs []float64) Summary {
	if len(xs) == 0 {
		return Summary{}
	}

	s := Summary{
		N:    len(xs),
		Mean: stat.Mean(xs, nil),
		Min:  xs[0],
		Max:  xs[0],
	}
	for _, x := range xs {
		s.Min = math.Min(s.Min, x)
		s.Max = math.Max(s.Max, x)
	}

	// Population variance to match how the comparison record is defined.
	var sq float64
	for _, x := range xs {
		d := x - s.Mean
		sq += d * d
	}
	s.Std = math.Sqrt(sq / float64(s.N))

	return s
}

// Normalize returns the z-scores of xs. A zero standard deviation is lifted
// to a tiny floor so constant samples normalize without dividing by zero.
func Normalize(xs []float64) []float64 {
	s := Summarize(xs)
	std := s.Std
	if std < minStd {
		std = minStd
	}

	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = (x - s.Mean) / std
	}
	return out
}

// KolmogorovSmirnov runs the two-sample KS test and returns the statistic
// with its asymptotic two-sided p-value. Inputs need not be sorted. Empty
// inputs return the indeterminate 0.5, 0.5 pair rather than an error.
func KolmogorovSmirnov(a, b []float64) (statistic, pValue float64) {
	if len(a) == 0 || len(b) == 0 {
		return 0.5, 0.5
	}

	as := append([]float64(nil), a...)
	bs := append([]float64(nil), b...)
	sort.Float64s(as)
	sort.Float64s(bs)

	d := stat.KolmogorovSmirnov(as, nil, bs, nil)

	ne := float64(len(a)) * float64(len(b)) / float64(len(a)+len(b))
	return d, ksPValue(d, ne)
}

// ksPValue evaluates the Kolmogorov distribution tail with Stephens'
// small-sample correction. The alternating series converges quickly except
// near d = 0, where the probability is 1 anyway.
func ksPValue(d, ne float64) float64 {
	if d <= 0 {
		return 1
	}

	lambda := (math.Sqrt(ne) + 0.12 + 0.11/math.Sqrt(ne)) * d

	sum := 0.0
	sign := 1.0
	prev := 0.0
	for j := 1; j <= 100; j++ {
		term := sign * 2 * math.Exp(-2*lambda*lambda*float64(j)*float64(j))
		sum += term
		if math.Abs(term) <= 0.001*prev || math.Abs(term) <= 1e-8*math.Abs(sum) {
			return clamp01(sum)
		}
		prev = math.Abs(term)
		sign = -sign
	}
	// No convergence means lambda is tiny; the distributions are
	// indistinguishable at this sample size.
	return 1
}

// clamp01 bounds a probability to [0, 1]. The alternating series can
// overshoot 1 for small lambda before its tail cancels.
func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Histogram counts xs into bins equal-width cells over [lo, hi]. Values
// outside the range land in the edge cells.
func Histogram(xs []float64, bins int, lo, hi float64) []int {
	if bins <= 0 || hi <= lo {
		return nil
	}

	counts := make([]int, bins)
	width := (hi - lo) / float64(bins)
	for _, x := range xs {
		i := int((x - lo) / width)
		if i < 0 {
			i = 0
		}
		if i >= bins {
			i = bins - 1
		}
		counts[i]++
	}
	return counts
}
