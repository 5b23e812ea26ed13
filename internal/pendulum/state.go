package pendulum

import (
	"math"
	"math/rand/v2"
)

// Physical parameters and numerical guards, fixed for every run.
const (
	Mass1   = 1.0
	Mass2   = 1.0
	Length1 = 1.0
	Length2 = 1.0
	Gravity = 9.81

	// Dt is the integration timestep. Small enough that the clamps below
	// rarely fire.
	Dt = 0.0005

	// Damping bleeds a little energy each tick so the bank does not wind
	// itself up to the velocity limit.
	Damping = 0.999

	MaxOmega        = 50.0
	MaxAcceleration = 1000.0
	MinDenominator  = 1e-6
)

// State holds the instantaneous configuration of one double pendulum.
type State struct {
	Theta1, Theta2 float64 // link angles, rad
	Omega1, Omega2 float64 // angular velocities, rad/s
}

// Finite reports whether every field is a finite number.
func (s State) Finite() bool {
	for _, v := range [...]float64{s.Theta1, s.Theta2, s.Omega1, s.Omega2} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Stable reports whether the state is finite and within the velocity bounds.
func (s State) Stable() bool {
	return s.Finite() &&
		math.Abs(s.Omega1) <= MaxOmega &&
		math.Abs(s.Omega2) <= MaxOmega
}

// NewRandom draws starting conditions: angles anywhere on the circle,
// moderate velocities.
func NewRandom(r *rand.Rand) State {
	return State{
		Theta1: uniform(r, -math.Pi, math.Pi),
		Theta2: uniform(r, -math.Pi, math.Pi),
		Omega1: uniform(r, -5, 5),
		Omega2: uniform(r, -5, 5),
	}
}

// NewCalm draws the narrower distribution used to replace a diverged
// pendulum. Recovery is intentionally calmer than startup; the output
// distribution was tuned against this asymmetry.
func NewCalm(r *rand.Rand) State {
	return State{
		Theta1: uniform(r, -math.Pi/2, math.Pi/2),
		Theta2: uniform(r, -math.Pi/2, math.Pi/2),
		Omega1: uniform(r, -2, 2),
		Omega2: uniform(r, -2, 2),
	}
}

func uniform(r *rand.Rand, lo, hi float64) float64 {
	return lo + (hi-lo)*r.Float64()
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
