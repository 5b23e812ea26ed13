package compare

import (
	crand "crypto/rand"
	"encoding/binary"
	"log/slog"
	"math"
	"math/rand/v2"
)

// fallbackSeed makes the substitute sample reproducible when the OS source
// is unavailable, so repeated comparisons stay consistent.
const fallbackSeed = 42

// Sample reads n words from the OS entropy source and normalizes them to
// [0, 1]. If the source cannot be read, a seeded uniform sample is
// substituted and the substitution logged; the comparison must keep going
// rather than fail on a platform problem.
func Sample(n int) []float64 {
	if n <= 0 {
		return []float64{}
	}

	buf := make([]byte, n*8)
	if _, err := crand.Read(buf); err != nil {
		slog.Warn("entropy source unavailable, substituting seeded uniform sample", "error", err)
		return fallbackSample(n)
	}

	out := make([]float64, n)
	for i := range out {
		word := binary.LittleEndian.Uint64(buf[i*8:])
		out[i] = float64(word) / float64(math.MaxUint64)
	}
	return out
}

func fallbackSample(n int) []float64 {
	r := rand.New(rand.NewPCG(fallbackSeed, 0))
	out := make([]float64, n)
	for i := range out {
		out[i] = r.Float64()
	}
	return out
}
