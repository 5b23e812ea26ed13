// Package rng turns the chaotic motion of a pendulum bank into a sequence
// of decorrelated floats in [0, 1].
//
// The pipeline per tick is bank step -> mix -> extract: the bank's states
// collapse into one bounded scalar with a little Gaussian noise folded in,
// and a cryptographic hash of that scalar's decimal form yields the output
// value. The hash is what removes the serial correlation of the continuous
// trajectory; without it adjacent outputs would be nearly identical.
//
// The generator is an experimental entropy source, not a cryptographic one,
// and two runs never reproduce each other: every [Generator] owns a private
// PCG stream seeded from the operating system.
package rng
