package dlp

import (
	"fmt"
	"math/big"
)

const primalityRounds = 20

// Params bundles the group parameters of one discrete-log instance:
// find x with Base^x = Y (mod P) in the subgroup of prime order N.
// The fields are read-only for the duration of a search.
type Params struct {
	Base *big.Int
	P    *big.Int
	N    *big.Int
	Y    *big.Int
}

// Validate checks the range invariants and, probabilistically, the
// primality of P and N. The solver never calls it on its own; callers
// that cannot trust their inputs should.
func (prm *Params) Validate() error {
	if prm.Base == nil || prm.P == nil || prm.N == nil || prm.Y == nil {
		return fmt.Errorf("group parameter is nil")
	}
	if prm.P.Sign() <= 0 || prm.N.Sign() <= 0 {
		return fmt.Errorf("modulus and order must be positive")
	}
	if prm.Base.Sign() < 0 || prm.Base.Cmp(prm.P) >= 0 {
		return fmt.Errorf("base %v out of range [0, p)", prm.Base)
	}
	if prm.Y.Sign() < 0 || prm.Y.Cmp(prm.P) >= 0 {
		return fmt.Errorf("target %v out of range [0, p)", prm.Y)
	}
	if !prm.P.ProbablyPrime(primalityRounds) {
		return fmt.Errorf("modulus %v is not prime", prm.P)
	}
	if !prm.N.ProbablyPrime(primalityRounds) {
		return fmt.Errorf("order %v is not prime", prm.N)
	}
	return nil
}

// Solve runs the retry driver on the bundled parameters.
func (prm *Params) Solve(limit uint, seed *big.Int) (*big.Int, bool, error) {
	return Solve(limit, seed, prm.Base, prm.Y, prm.P, prm.N)
}
