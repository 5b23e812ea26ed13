package compare

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	. "github.com/onsi/gomega"
)

func TestRunResultFields(t *testing.T) {
	g := NewGomegaWithT(t)

	res := Run(Options{N: 300, Pendulums: 3, NoiseLevel: 0.2})

	fields := map[string]float64{
		"ks_statistic":             res.KSStatistic,
		"ks_p_value":               res.KSPValue,
		"pendulum_mean":            res.PendulumMean,
		"pendulum_std":             res.PendulumStd,
		"urandom_mean":             res.URandomMean,
		"urandom_std":              res.URandomStd,
		"pendulum_normalized_mean": res.PendulumNormalizedMean,
		"pendulum_normalized_std":  res.PendulumNormalizedStd,
		"urandom_normalized_mean":  res.URandomNormalizedMean,
		"urandom_normalized_std":   res.URandomNormalizedStd,
	}
	for name, v := range fields {
		g.Expect(math.IsNaN(v) || math.IsInf(v, 0)).To(BeFalse(), "%s is not finite: %g", name, v)
	}

	g.Expect(res.KSStatistic).To(And(BeNumerically(">=", 0.0), BeNumerically("<=", 1.0)))
	g.Expect(res.KSPValue).To(And(BeNumerically(">=", 0.0), BeNumerically("<=", 1.0)))
	g.Expect(res.PendulumStd).To(BeNumerically(">", 0.0))
	g.Expect(res.URandomStd).To(BeNumerically(">", 0.0))
}

func TestRunNormalizedMoments(t *testing.T) {
	g := NewGomegaWithT(t)

	res := Run(Options{N: 500, Pendulums: 3, NoiseLevel: 0.2})

	g.Expect(res.PendulumNormalizedMean).To(BeNumerically("~", 0.0, 1e-9))
	g.Expect(res.PendulumNormalizedStd).To(BeNumerically("~", 1.0, 1e-6))
	g.Expect(res.URandomNormalizedMean).To(BeNumerically("~", 0.0, 1e-9))
	g.Expect(res.URandomNormalizedStd).To(BeNumerically("~", 1.0, 1e-6))
}

func TestRunDefaultsDegenerateN(t *testing.T) {
	g := NewGomegaWithT(t)

	// n <= 0 falls back to the default sample size instead of failing.
	res := Run(Options{N: -3, Pendulums: 2, NoiseLevel: 0.1})

	g.Expect(res.PendulumStd).To(BeNumerically(">", 0.0))
}

func TestRunWritesPlot(t *testing.T) {
	g := NewGomegaWithT(t)

	path := filepath.Join(t.TempDir(), "comparison.png")
	Run(Options{N: 200, Pendulums: 3, NoiseLevel: 0.2, PlotPath: path})

	info, err := os.Stat(path)
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(info.Size()).To(BeNumerically(">", 0))
}

func TestSample(t *testing.T) {
	g := NewGomegaWithT(t)

	s := Sample(1000)

	g.Expect(s).To(HaveLen(1000))
	for _, v := range s {
		g.Expect(v).To(And(BeNumerically(">=", 0.0), BeNumerically("<=", 1.0)))
	}

	distinct := make(map[float64]bool, len(s))
	for _, v := range s {
		distinct[v] = true
	}
	g.Expect(len(distinct)).To(BeNumerically(">", 990))
}

func TestSampleDegenerate(t *testing.T) {
	g := NewGomegaWithT(t)

	g.Expect(Sample(0)).To(BeEmpty())
	g.Expect(Sample(-1)).To(BeEmpty())
}

func TestFallbackSampleDeterministic(t *testing.T) {
	g := NewGomegaWithT(t)

	a := fallbackSample(100)
	b := fallbackSample(100)

	g.Expect(a).To(Equal(b))
	for _, v := range a {
		g.Expect(v).To(And(BeNumerically(">=", 0.0), BeNumerically("<", 1.0)))
	}
}
