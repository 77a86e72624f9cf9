// Package dlp solves the discrete logarithm problem base^x = y (mod p)
// in a cyclic subgroup of prime order n, using Pollard's rho algorithm
// with Floyd cycle detection. See Handbook of Applied Cryptography,
// section 3.6.3.
package dlp

import (
	"errors"
	"math/big"
)

var (
	big0 = big.NewInt(0)
	big1 = big.NewInt(1)
	big2 = big.NewInt(2)
	big3 = big.NewInt(3)
)

// ErrMapping reports a walk position whose residue class mod 3 fell
// outside {0,1,2}. Unreachable unless the walk state is corrupted; a
// search hitting it must abort, not retry.
var ErrMapping = errors.New("error in mapping functions")

// funcF advances the walk position by one step, partitioned on the
// residue class of the current position mod 3.
func funcF(xi, base, y, p *big.Int) (*big.Int, error) {
	switch new(big.Int).Mod(xi, big3).Int64() {
	case 0:
		return new(big.Int).Exp(xi, big2, p), nil
	case 1:
		return EuclidMod(new(big.Int).Mul(base, xi), p), nil
	case 2:
		return EuclidMod(new(big.Int).Mul(y, xi), p), nil
	}
	return nil, ErrMapping
}

// funcG advances the exponent of base kept alongside the position.
func funcG(a, n, xi *big.Int) (*big.Int, error) {
	switch new(big.Int).Mod(xi, big3).Int64() {
	case 0:
		return EuclidMod(new(big.Int).Lsh(a, 1), n), nil
	case 1:
		return EuclidMod(new(big.Int).Add(a, big1), n), nil
	case 2:
		return new(big.Int).Set(a), nil
	}
	return nil, ErrMapping
}

// funcH advances the exponent of y, symmetric to funcG.
func funcH(b, n, xi *big.Int) (*big.Int, error) {
	switch new(big.Int).Mod(xi, big3).Int64() {
	case 0:
		return EuclidMod(new(big.Int).Lsh(b, 1), n), nil
	case 1:
		return new(big.Int).Set(b), nil
	case 2:
		return EuclidMod(new(big.Int).Add(b, big1), n), nil
	}
	return nil, ErrMapping
}
