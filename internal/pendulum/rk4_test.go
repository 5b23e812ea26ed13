package pendulum

import (
	"math"
	"testing"
)

func TestStepEquilibrium(t *testing.T) {
	s := Step(State{}, Dt)

	if s != (State{}) {
		t.Errorf("equilibrium moved: %+v", s)
	}
}

func TestStepDeterministic(t *testing.T) {
	s0 := State{Theta1: 0.7, Theta2: -0.3, Omega1: 1.2, Omega2: -0.8}

	a := Step(s0, Dt)
	b := Step(s0, Dt)

	if a != b {
		t.Errorf("same input produced different steps: %+v vs %+v", a, b)
	}
}

func TestStepConvergence(t *testing.T) {
	// One full step and two half steps should agree to the integrator's
	// order; a large gap would indicate a broken stage combination.
	s0 := State{Theta1: 0.5, Theta2: 0.5, Omega1: 0.5, Omega2: -0.5}
	dt := 0.01

	full := Step(s0, dt)
	half := Step(Step(s0, dt/2), dt/2)

	diff := math.Abs(full.Theta1-half.Theta1) +
		math.Abs(full.Theta2-half.Theta2) +
		math.Abs(full.Omega1-half.Omega1) +
		math.Abs(full.Omega2-half.Omega2)

	if diff > 1e-6 {
		t.Errorf("half-step disagreement too large: %g", diff)
	}
}

func TestStepSmallOscillation(t *testing.T) {
	// A slightly displaced pendulum should swing back toward the vertical,
	// not blow up.
	s := State{Theta1: 0.05, Theta2: 0.05}

	for i := 0; i < 5000; i++ {
		s = Step(s, Dt)
		if !s.Finite() {
			t.Fatalf("state became non-finite at step %d: %+v", i, s)
		}
	}

	if math.Abs(s.Theta1) > 0.2 || math.Abs(s.Theta2) > 0.3 {
		t.Errorf("small oscillation grew unexpectedly: %+v", s)
	}
}
