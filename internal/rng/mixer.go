package rng

import (
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/yatoub/tych/internal/pendulum"
)

// maxMix bounds the combined signal before extraction.
const maxMix = 1000.0

// Mixer folds a bank's per-tick states into one bounded scalar signal.
type Mixer struct {
	noise distuv.Normal
	rng   *rand.Rand
}

// NewMixer builds a mixer adding Normal(0, noiseLevel) to each tick's
// signal. Negative or non-finite noise levels are treated as zero.
func NewMixer(noiseLevel float64, r *rand.Rand) *Mixer {
	if noiseLevel < 0 || math.IsNaN(noiseLevel) || math.IsInf(noiseLevel, 0) {
		noiseLevel = 0
	}
	return &Mixer{
		noise: distuv.Normal{Mu: 0, Sigma: noiseLevel, Src: r},
		rng:   r,
	}
}

// Combine sums a bounded trigonometric projection of every state and adds
// one noise draw. The result is finite and within [-maxMix, maxMix]; an
// empty slice contributes zero signal, leaving pure noise.
func (m *Mixer) Combine(states []pendulum.State) float64 {
	mix := 0.0
	for _, s := range states {
		mix += math.Sin(s.Theta1) + math.Cos(s.Theta2) +
			0.1*math.Sin(s.Omega1) + 0.1*math.Cos(s.Omega2)
	}

	if m.noise.Sigma > 0 {
		mix += m.noise.Rand()
	}

	if math.IsNaN(mix) || math.IsInf(mix, 0) {
		mix = -1 + 2*m.rng.Float64()
	}
	return clamp(mix, -maxMix, maxMix)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
