package rng

import (
	crand "crypto/rand"
	"encoding/binary"
	"math"
	"math/rand/v2"
	"time"

	"github.com/yatoub/tych/internal/pendulum"
)

// Default generation parameters.
const (
	DefaultN         = 1000
	DefaultPendulums = 3
	DefaultNoise     = 0.2
)

// Generator produces uniform pseudo-random values from the simulated motion
// of a bank of double pendulums. It is not safe for concurrent use; each
// call site should own its generator.
type Generator struct {
	bank  *pendulum.Bank
	mixer *Mixer
	ext   *Extractor
	rng   *rand.Rand
}

// New builds a generator seeded from the operating system. Two generators
// never share state and runs are not reproducible.
func New(nPendulums int, noiseLevel float64) *Generator {
	var b [16]byte
	if _, err := crand.Read(b[:]); err != nil {
		// crypto/rand read failures are effectively fatal platform
		// problems; a wall-clock seed at least keeps runs distinct.
		binary.LittleEndian.PutUint64(b[:8], uint64(time.Now().UnixNano()))
	}
	return NewSeeded(nPendulums, noiseLevel,
		binary.LittleEndian.Uint64(b[:8]),
		binary.LittleEndian.Uint64(b[8:]))
}

// NewSeeded builds a generator with a fixed PCG seed. Initial conditions,
// resets, noise and the final shuffle all draw from this one stream, so a
// seeded generator is fully deterministic. Intended for tests.
func NewSeeded(nPendulums int, noiseLevel float64, seed1, seed2 uint64) *Generator {
	r := rand.New(rand.NewPCG(seed1, seed2))
	return &Generator{
		bank:  pendulum.NewBank(nPendulums, r),
		mixer: NewMixer(noiseLevel, r),
		ext:   NewExtractor(r),
		rng:   r,
	}
}

// Sample is one tick's output together with the raw signal that produced it.
type Sample struct {
	Value float64
	Mix   float64
}

// Next runs a single tick: advance the bank, mix the surviving states,
// extract one value.
func (g *Generator) Next() Sample {
	mix := g.mixer.Combine(g.bank.Step())
	return Sample{Value: g.ext.Extract(mix), Mix: mix}
}

// Generate returns n values in [0, 1]. Ticks execute strictly in order,
// since each depends on the bank state the previous one left behind; the
// closing shuffle removes that ordering from the caller-visible sequence.
// n <= 0 returns an empty slice, by contract rather than as an error.
func (g *Generator) Generate(n int) []float64 {
	if n <= 0 {
		return []float64{}
	}

	values := make([]float64, n)
	for i := range values {
		values[i] = g.Next().Value
	}

	g.repair(values)
	g.rng.Shuffle(len(values), func(i, j int) {
		values[i], values[j] = values[j], values[i]
	})
	return values
}

// repair replaces anything non-finite with a fresh uniform draw and clamps
// to [0, 1].
func (g *Generator) repair(values []float64) {
	for i, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			v = g.rng.Float64()
		}
		values[i] = clamp(v, 0, 1)
	}
}

// Pendulums returns the size of the underlying bank.
func (g *Generator) Pendulums() int { return g.bank.Size() }

// Resets reports how many pendulum replacements the bank has performed.
func (g *Generator) Resets() int { return g.bank.Resets() }

// Generate is the package entry point used by the CLI and the comparison
// collaborator: a one-shot sequence from a fresh, OS-seeded generator.
func Generate(n, nPendulums int, noiseLevel float64) []float64 {
	return New(nPendulums, noiseLevel).Generate(n)
}
