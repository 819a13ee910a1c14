// Package montecarlo - RNG construction for stochastic solves.
//
// Policy:
//   - Seeded params ⇒ deterministic PCG stream derived from the seed.
//   - Unseeded params ⇒ a fresh seed from the runtime's global generator.
//   - One source per Solve call; sources are never shared across goroutines.
package montecarlo

import (
	"math/rand/v2"

	"github.com/katalvlaran/integ/core"
)

// pcgStream is the stream selector mixed into the second PCG word.
const pcgStream uint64 = 1

// newSource returns the PCG source for one solve and the seed it used.
//
// Complexity: O(1).
func newSource(p core.Params) (*rand.PCG, uint64) {
	seed := p.Seed
	if !p.Seeded {
		seed = rand.Uint64()
	}

	return rand.NewPCG(seed, deriveSeed(seed, pcgStream)), seed
}

// deriveSeed mixes a parent seed and a stream identifier into a new 64-bit
// word with the SplitMix64 finalizer, so that nearby seeds give unrelated
// PCG increments.
//
// Complexity: O(1).
func deriveSeed(parent, stream uint64) uint64 {
	x := parent ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return x
}
