package core

import "math/rand"

// DefaultBreakerOdds makes one block in four a breaker.
const DefaultBreakerOdds = 4

// Rand is the random source used to draw colors and pieces.
// *rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// sharedRand draws from the top-level math/rand functions,
// which are safe for concurrent use.
type sharedRand struct{}

func (sharedRand) Intn(n int) int {
	return rand.Intn(n)
}

// Shared is the process-wide random source.
// Games should prefer their own seeded *rand.Rand for reproducibility.
var Shared Rand = sharedRand{}

// oneIn reports true with probability 1/n. n <= 0 never succeeds.
func oneIn(r Rand, n int) bool {
	if n <= 0 {
		return false
	}
	return r.Intn(n) == 0
}
