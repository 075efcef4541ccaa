// Package rng provides the deterministic random stream that drives map
// generation.
//
// Every generation run owns exactly one [Stream], threaded explicitly through
// all passes. Two runs constructed with the same seed and making the same
// sequence of calls produce bit-identical values, which is the reproducibility
// contract the whole generator is built on: a (seed, config) pair always
// yields the same layout.
//
// The stream is a Lehmer linear congruential generator with its state reduced
// modulo the Mersenne prime 2^31-1. The exact generator is part of the output
// format - swapping in a different PRNG changes every layout ever generated.
package rng

// Park-Miller LCG parameters.
const (
	modulus    = 2147483647 // 2^31 - 1
	multiplier = 16807
)

// Stream is a seeded pseudo-random sequence.
// It is not safe for concurrent use; each generation run owns its own Stream.
type Stream struct {
	state int64
}

// New creates a stream from an integer seed.
// The seed is reduced into [1, modulus-1]; zero is the generator's absorbing
// state, so seeds that reduce to it are moved off it deterministically.
func New(seed int64) *Stream {
	s := seed % modulus
	if s < 0 {
		s += modulus
	}
	if s == 0 {
		s = 1
	}
	return &Stream{state: s}
}

// next advances the generator and returns the raw state in [1, modulus-1].
func (s *Stream) next() int64 {
	s.state = s.state * multiplier % modulus
	return s.state
}

// Float returns the next value in [0, 1).
func (s *Stream) Float() float64 {
	return float64(s.next()-1) / float64(modulus-1)
}

// IntBetween returns the next integer in [min, max] inclusive.
// Returns min when min > max.
func (s *Stream) IntBetween(min, max int) int {
	if min > max {
		return min
	}
	return min + int(s.Float()*float64(max-min+1))
}

// Shuffle permutes vals in place with a Fisher-Yates walk driven by Float.
func Shuffle[T any](s *Stream, vals []T) {
	for i := len(vals) - 1; i > 0; i-- {
		j := int(s.Float() * float64(i+1))
		vals[i], vals[j] = vals[j], vals[i]
	}
}
