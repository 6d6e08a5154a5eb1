package aco

import "math/rand"

// fallbackSeed replaces Config.Seed == 0 so an unseeded solver still replays.
const fallbackSeed int64 = 1

// golden is the 64-bit golden-ratio increment of the SplitMix64 generator.
const golden uint64 = 0x9e3779b97f4a7c15

// antStreams owns the colony's randomness: one base source plus one private
// source per ant.
//
// Every iteration, reseed takes exactly one value from base and gives ant i
// the seed mix(parent, i). The ant sources are therefore fixed before any
// construction starts, and a tour depends only on the ant index, never on
// which worker builds it or in what order.
//
// math/rand.Rand is not safe for concurrent use; each ant source is touched
// by a single goroutine per iteration.
type antStreams struct {
	base *rand.Rand
	ants []*rand.Rand
}

// newAntStreams seeds base from seed (0 selects fallbackSeed) unless an
// explicit base is given, and allocates n ant sources.
//
// Complexity: O(n).
func newAntStreams(seed int64, base *rand.Rand, n int) *antStreams {
	if base == nil {
		if seed == 0 {
			seed = fallbackSeed
		}
		base = rand.New(rand.NewSource(seed))
	}
	s := &antStreams{base: base, ants: make([]*rand.Rand, n)}
	for i := range s.ants {
		s.ants[i] = rand.New(rand.NewSource(fallbackSeed))
	}

	return s
}

// reseed prepares the ant sources for the next iteration.
//
// Complexity: O(n).
func (s *antStreams) reseed() {
	parent := uint64(s.base.Int63())
	for i, r := range s.ants {
		r.Seed(int64(mix(parent, uint64(i))))
	}
}

// mix combines a parent value and an ant index into a decorrelated seed:
// the index is spread by the golden increment, then avalanched.
func mix(parent, index uint64) uint64 {
	return avalanche(parent ^ (index*golden + golden))
}

// avalanche is the SplitMix64 output finalizer.
func avalanche(x uint64) uint64 {
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb

	return x ^ (x >> 31)
}
