package pendulum

import "math"

// derive evaluates the double-pendulum equations of motion:
// dTheta_i = Omega_i, dOmega_i = alpha_i. Returned in State form so the
// integrator can combine stages with plain field arithmetic.
func derive(s State) State {
	delta := s.Theta2 - s.Theta1
	sinD, cosD := math.Sin(delta), math.Cos(delta)

	den1 := safeDenominator((Mass1+Mass2)*Length1 - Mass2*Length1*cosD*cosD)
	den2 := safeDenominator((Length2 / Length1) * den1)

	alpha1 := (Mass2*Length1*s.Omega1*s.Omega1*sinD*cosD +
		Mass2*Gravity*math.Sin(s.Theta2)*cosD +
		Mass2*Length2*s.Omega2*s.Omega2*sinD -
		(Mass1+Mass2)*Gravity*math.Sin(s.Theta1)) / den1

	alpha2 := (-Mass2*Length2*s.Omega2*s.Omega2*sinD*cosD +
		(Mass1+Mass2)*Gravity*math.Sin(s.Theta1)*cosD -
		(Mass1+Mass2)*Length1*s.Omega1*s.Omega1*sinD -
		(Mass1+Mass2)*Gravity*math.Sin(s.Theta2)) / den2

	alpha1 = clamp(alpha1, -MaxAcceleration, MaxAcceleration)
	alpha2 = clamp(alpha2, -MaxAcceleration, MaxAcceleration)
	if !finite(alpha1) || !finite(alpha2) {
		alpha1, alpha2 = 0, 0
	}

	return State{Theta1: s.Omega1, Theta2: s.Omega2, Omega1: alpha1, Omega2: alpha2}
}

// safeDenominator keeps a Lagrangian denominator at least MinDenominator in
// magnitude, preserving sign. Zero counts as positive.
func safeDenominator(den float64) float64 {
	if math.Abs(den) >= MinDenominator {
		return den
	}
	if den < 0 {
		return -MinDenominator
	}
	return MinDenominator
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
