package domain

import "math/rand/v2"

const (
	coastNoiseMean   = 50.0
	coastNoiseStdDev = 20.0
)

// NoiseSource yields standard normal samples. *rand.Rand satisfies it.
type NoiseSource interface {
	NormFloat64() float64
}

// NewNoiseSource returns a PCG-backed generator. A nil seed picks a random
// one, so output differs between runs.
func NewNoiseSource(seed *uint64) *rand.Rand {
	if seed == nil {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return rand.New(rand.NewPCG(*seed, *seed))
}
