// Package games holds the pure rules for every wager command. Nothing here
// touches storage; randomness comes from an injected Source.
package games

import "math/rand/v2"

// Source is the randomness a game draws from. *rand.Rand satisfies it.
type Source interface {
	// Float64 returns a value in [0.0, 1.0)
	Float64() float64
	// IntN returns a value in [0, n)
	IntN(n int) int
}

type globalSource struct{}

func (globalSource) Float64() float64 { return rand.Float64() }
func (globalSource) IntN(n int) int   { return rand.IntN(n) }

// DefaultSource returns a goroutine-safe source backed by the runtime's global generator
func DefaultSource() Source {
	return globalSource{}
}

// NewSeededSource returns a reproducible source. It is not safe for concurrent use.
func NewSeededSource(seed uint64) Source {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
