package generation

import (
	"math/rand"
	"time"
)

// Rand is the single source of randomness for the generator: template
// picks, joke picks, tone markers, and the continuation coin flip all draw
// from it. Tests inject a fixed implementation to pin exact outputs.
// *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
	Float64() float64
}

func newDefaultRand() Rand {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}
