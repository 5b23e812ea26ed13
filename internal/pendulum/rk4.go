package pendulum

// Step advances a state by one 4th-order Runge-Kutta step of length dt.
func Step(s State, dt float64) State {
	k1 := derive(s)
	k2 := derive(shift(s, k1, dt*0.5))
	k3 := derive(shift(s, k2, dt*0.5))
	k4 := derive(shift(s, k3, dt))

	h := dt / 6.0
	return State{
		Theta1: s.Theta1 + h*(k1.Theta1+2*k2.Theta1+2*k3.Theta1+k4.Theta1),
		Theta2: s.Theta2 + h*(k1.Theta2+2*k2.Theta2+2*k3.Theta2+k4.Theta2),
		Omega1: s.Omega1 + h*(k1.Omega1+2*k2.Omega1+2*k3.Omega1+k4.Omega1),
		Omega2: s.Omega2 + h*(k1.Omega2+2*k2.Omega2+2*k3.Omega2+k4.Omega2),
	}
}

func shift(s, k State, h float64) State {
	return State{
		Theta1: s.Theta1 + h*k.Theta1,
		Theta2: s.Theta2 + h*k.Theta2,
		Omega1: s.Omega1 + h*k.Omega1,
		Omega2: s.Omega2 + h*k.Omega2,
	}
}
