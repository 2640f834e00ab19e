package utils

import "math/rand"

// Source yields uniform random draws. Services take a Source instead of
// calling the global RNG so outcome resolution is deterministic under test.
type Source interface {
	// Float64 returns a uniform random value in [0.0, 1.0)
	Float64() float64

	// Intn returns a uniform random value in [0, n)
	Intn(n int) int
}

type mathSource struct{}

func (mathSource) Float64() float64 {
	return rand.Float64() //nolint:gosec // Game logic randomness, not security critical
}

func (mathSource) Intn(n int) int {
	return rand.Intn(n) //nolint:gosec // Game logic randomness, not security critical
}

// DefaultSource returns the process-wide math/rand backed source
func DefaultSource() Source {
	return mathSource{}
}

// RandomInt returns a random integer between min and max (inclusive)
func RandomInt(src Source, min, max int) int {
	if min >= max {
		return min
	}
	return src.Intn(max-min+1) + min
}
