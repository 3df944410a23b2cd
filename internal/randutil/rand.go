// internal/randutil/rand.go
//
// Random sources for target selection.
// Responsibilities:
//   - Derive a PCG source from one int64 seed, so a fixed RANDOM_SEED
//     reproduces the same sequence of targets.
//   - Fall back to a randomly seeded source when the seed is 0.

package randutil

import rand "math/rand/v2"

const (
	goldenRatio64 = 0x9e3779b97f4a7c15
)

// New returns a *rand.Rand seeded deterministically from the provided int64.
func New(seed int64) *rand.Rand {
	u := uint64(seed)
	return rand.New(rand.NewPCG(mix(u), mix(u+goldenRatio64)))
}

// FromConfig returns New(seed) for a non-zero seed and a randomly seeded
// source otherwise.
func FromConfig(seed int64) *rand.Rand {
	if seed != 0 {
		return New(seed)
	}
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
