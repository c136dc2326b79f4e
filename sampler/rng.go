package sampler

import "math/rand"

// defaultRNGSeed is the fixed “zero” seed used when callers pass seed==0.
// The value is arbitrary but stable to keep reproducible defaults.
const defaultRNGSeed int64 = 1

// deriveSeed mixes a parent seed and a stream identifier into a new 64-bit
// seed with a SplitMix64-style finalizer, so neighboring trial indices get
// uncorrelated streams.
//
// Complexity: O(1).
func deriveSeed(parent int64, stream uint64) int64 {
	var x uint64
	x = uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}

// seededFactory returns a SourceFactory whose trial t draws from a private
// *rand.Rand seeded with deriveSeed(seed, t).
// Policy: seed==0 ⇒ use defaultRNGSeed.
//
// math/rand.Rand is NOT goroutine-safe; each call builds a new one, so
// workers never share a stream.
func seededFactory(seed int64) SourceFactory {
	if seed == 0 {
		seed = defaultRNGSeed
	}
	return func(trial int) RandomSource {
		return rand.New(rand.NewSource(deriveSeed(seed, uint64(trial))))
	}
}

// NewSource returns the deterministic stream New would use for trial under
// seed. Seed 0 maps to the fixed default seed.
func NewSource(seed int64, trial int) RandomSource {
	return seededFactory(seed)(trial)
}
