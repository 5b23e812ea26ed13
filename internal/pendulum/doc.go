// Package pendulum simulates a bank of independent double pendulums, the
// chaotic source behind the generator.
//
// Each pendulum is a [State] advanced by a fixed-step RK4 integration of the
// standard double-pendulum Lagrangian equations. The integration is
// deliberately fail-soft: denominators are kept away from zero,
// accelerations are clamped, and a pendulum that still manages to diverge is
// replaced with a fresh calm state rather than stopping the run. Sensitivity
// to initial conditions is the product here, so no attempt is made to keep
// trajectories physically accurate over long horizons.
package pendulum
