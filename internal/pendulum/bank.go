package pendulum

import (
	"math"
	"math/rand/v2"
)

// Bank owns a set of independent double pendulums and advances them tick by
// tick. Pendulums never interact. A pendulum that fails the stability check
// is replaced with a calm random state and sits the tick out.
type Bank struct {
	states []State
	live   []State
	rng    *rand.Rand
	resets int
}

// NewBank creates n independently randomized pendulums drawing from r.
// n <= 0 yields an empty bank that contributes nothing each tick.
func NewBank(n int, r *rand.Rand) *Bank {
	if n < 0 {
		n = 0
	}
	states := make([]State, n)
	for i := range states {
		states[i] = NewRandom(r)
	}
	return &Bank{
		states: states,
		live:   make([]State, 0, n),
		rng:    r,
	}
}

// Step advances every pendulum by one Dt tick: stability pre-check, RK4
// step, velocity damping, angle wrap, velocity clamp, stability post-check.
// It returns the states that completed the tick; pendulums reset on either
// check are excluded so they contribute no signal until the next tick. The
// returned slice is reused across calls.
func (b *Bank) Step() []State {
	b.live = b.live[:0]
	for i := range b.states {
		if !b.states[i].Stable() {
			b.states[i] = NewCalm(b.rng)
			b.resets++
			continue
		}

		s := Step(b.states[i], Dt)

		s.Omega1 *= Damping
		s.Omega2 *= Damping

		s.Theta1 = wrapAngle(s.Theta1)
		s.Theta2 = wrapAngle(s.Theta2)

		s.Omega1 = clamp(s.Omega1, -MaxOmega, MaxOmega)
		s.Omega2 = clamp(s.Omega2, -MaxOmega, MaxOmega)

		if !s.Stable() {
			b.states[i] = NewCalm(b.rng)
			b.resets++
			continue
		}

		b.states[i] = s
		b.live = append(b.live, s)
	}
	return b.live
}

// wrapAngle maps an angle into [-pi, pi).
func wrapAngle(theta float64) float64 {
	w := math.Mod(theta+math.Pi, 2*math.Pi)
	if w < 0 {
		w += 2 * math.Pi
	}
	if w >= 2*math.Pi {
		w = 0
	}
	return w - math.Pi
}

// Size returns the number of pendulums the bank owns.
func (b *Bank) Size() int { return len(b.states) }

// States exposes the bank's backing storage, including pendulums reset this
// tick. Mutating it changes the trajectory.
func (b *Bank) States() []State { return b.states }

// Resets reports how many pendulum replacements have happened so far.
func (b *Bank) Resets() int { return b.resets }
