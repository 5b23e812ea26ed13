package rng

import (
	"crypto/sha256"
	"encoding/hex"
	"math"
	"math/rand/v2"
	"strconv"
)

// Extractor whitens the chaotic signal: hashing the decimal rendering of a
// mix value destroys whatever structure the trajectory left in it. This is
// the step the whole generator leans on.
type Extractor struct {
	rng *rand.Rand
}

func NewExtractor(r *rand.Rand) *Extractor {
	return &Extractor{rng: r}
}

// Extract maps a mix value to [0, 1): sha256 over the shortest decimal
// representation, first eight hex digits as an integer, scaled by 2^32-1.
// A conversion failure falls back to a plain uniform draw.
func (e *Extractor) Extract(mix float64) float64 {
	digest := sha256.Sum256([]byte(strconv.FormatFloat(mix, 'g', -1, 64)))
	word, err := strconv.ParseUint(hex.EncodeToString(digest[:])[:8], 16, 64)
	if err != nil {
		return e.rng.Float64()
	}
	return math.Mod(math.Abs(float64(word)/0xFFFFFFFF), 1.0)
}
