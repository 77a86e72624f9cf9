package dlp

import "math/big"

// SolveCongruence recovers the discrete log from the exponents of two
// colliding walk positions. A collision x_i == x_2i means
//
//	base^(a1) * y^(b1) = base^(a2) * y^(b2)  (mod p)
//	==> (b1 - b2) * x = (a2 - a1)            (mod n)
//
// so with r = (b1 - b2) mod n the log is x = r^(-1) * (a2 - a1) mod n
// whenever r is invertible. r == 0 yields nothing; the caller retries
// with a fresh walk.
//
// When gcd(r, n) > 1, which only happens for composite n, the
// congruence is divided through by the gcd and solved in the shrunken
// modulus n/gcd. The returned value then solves the reduced congruence
// only; the full congruence has gcd candidate solutions mod n and
// lifting is the caller's problem.
func SolveCongruence(a1, b1, a2, b2, n *big.Int) (*big.Int, bool) {
	r := EuclidMod(new(big.Int).Sub(b1, b2), n)
	if r.Sign() == 0 {
		return nil, false
	}

	if inv := new(big.Int).ModInverse(r, n); inv != nil {
		dif := new(big.Int).Sub(a2, a1)
		return EuclidMod(inv.Mul(inv, dif), n), true
	}

	div := new(big.Int).GCD(nil, nil, r, n)
	var rem big.Int
	resR, _ := new(big.Int).QuoRem(new(big.Int).Sub(a2, a1), div, &rem)
	if rem.Sign() != 0 {
		// gcd does not divide the right-hand side: no solution.
		return nil, false
	}
	n1 := FloorDiv(n, div)
	resL := EuclidMod(FloorDiv(new(big.Int).Sub(b1, b2), div), n1)
	inv := new(big.Int).ModInverse(resL, n1)
	if inv == nil {
		return nil, false
	}
	return EuclidMod(inv.Mul(inv, resR), n1), true
}
