package dlp

import (
	"math/big"
	"math/rand"
)

var seedMask = new(big.Int).SetUint64(1<<63 - 1)

// newRand builds the generator owned by one search attempt.
// rand.NewSource takes an int64, so the low 63 bits of the seed select
// the stream; incrementing the seed still changes it.
func newRand(seed *big.Int) *rand.Rand {
	return rand.New(rand.NewSource(new(big.Int).And(seed, seedMask).Int64()))
}

// RandRange returns a uniform random integer in [start, stop).
// Requires start < stop and both non-negative.
func RandRange(rnd *rand.Rand, start, stop *big.Int) *big.Int {
	below := new(big.Int).Rand(rnd, new(big.Int).Sub(stop, start))
	return below.Add(below, start)
}
