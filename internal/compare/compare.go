// Package compare validates the pendulum generator against the operating
// system's entropy source with a two-sample Kolmogorov-Smirnov test.
package compare

import (
	"log/slog"
	"math"

	"github.com/yatoub/tych/internal/rng"
	"github.com/yatoub/tych/internal/stats"
)

// Options configures one comparison run.
type Options struct {
	N          int // sample size; <= 0 is promoted to rng.DefaultN
	Pendulums  int
	NoiseLevel float64
	PlotPath   string // optional; empty disables the figure
}

// Result is the comparison record. Every field is finite; the KS pair is in
// [0, 1].
type Result struct {
	KSStatistic            float64 `json:"ks_statistic"`
	KSPValue               float64 `json:"ks_p_value"`
	PendulumMean           float64 `json:"pendulum_mean"`
	PendulumStd            float64 `json:"pendulum_std"`
	URandomMean            float64 `json:"urandom_mean"`
	URandomStd             float64 `json:"urandom_std"`
	PendulumNormalizedMean float64 `json:"pendulum_normalized_mean"`
	PendulumNormalizedStd  float64 `json:"pendulum_normalized_std"`
	URandomNormalizedMean  float64 `json:"urandom_normalized_mean"`
	URandomNormalizedStd   float64 `json:"urandom_normalized_std"`
}

// Run generates a pendulum sample and a urandom reference sample of the same
// size, z-normalizes both, and compares their distributions. Scale is
// deliberately removed first so the test judges shape only. Comparison never
// fails: degenerate inputs fall back to defaults and plot errors are logged,
// not returned.
func Run(opts Options) *Result {
	n := opts.N
	if n <= 0 {
		n = rng.DefaultN
	}

	pend := rng.Generate(n, opts.Pendulums, opts.NoiseLevel)
	ref := Sample(n)

	pendNorm := stats.Normalize(pend)
	refNorm := stats.Normalize(ref)

	ksStat, ksP := stats.KolmogorovSmirnov(pendNorm, refNorm)
	if math.IsNaN(ksStat) || math.IsNaN(ksP) {
		ksStat, ksP = 0.5, 0.5
	}

	if opts.PlotPath != "" {
		if err := renderPlot(pend, ref, pendNorm, refNorm, opts.PlotPath); err != nil {
			slog.Warn("comparison plot failed", "path", opts.PlotPath, "error", err)
		}
	}

	ps := stats.Summarize(pend)
	rs := stats.Summarize(ref)
	pn := stats.Summarize(pendNorm)
	rn := stats.Summarize(refNorm)

	return &Result{
		KSStatistic:            ksStat,
		KSPValue:               ksP,
		PendulumMean:           ps.Mean,
		PendulumStd:            ps.Std,
		URandomMean:            rs.Mean,
		URandomStd:             rs.Std,
		PendulumNormalizedMean: pn.Mean,
		PendulumNormalizedStd:  pn.Std,
		URandomNormalizedMean:  rn.Mean,
		URandomNormalizedStd:   rn.Std,
	}
}
