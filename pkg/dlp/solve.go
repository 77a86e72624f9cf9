package dlp

import "math/big"

// Solve recovers x with base^x = y (mod p) in the subgroup of prime
// order n generated by base. Primality of n is the caller's obligation;
// Params.Validate checks it on demand. A failed attempt mutates the
// seed by one and restarts the walk, up to limit extra attempts.
func Solve(limit uint, seed, base, y, p, n *big.Int) (*big.Int, bool, error) {
	current := new(big.Int).Set(seed)
	for i := uint(0); ; i++ {
		key, found, err := SearchOnce(current, base, y, p, n)
		if err != nil {
			return nil, false, err
		}
		if found {
			return key, true, nil
		}
		if i >= limit {
			return nil, false, nil
		}
		current.Add(current, big1)
	}
}

// SolveOrZero is the legacy entry point: zero when no key is found
// within the retry limit. Zero is also a legitimate discrete log, so
// callers that cannot verify the result independently should use Solve
// and its explicit found flag instead.
func SolveOrZero(limit uint, seed, base, y, p, n *big.Int) (*big.Int, error) {
	key, found, err := Solve(limit, seed, base, y, p, n)
	if err != nil {
		return nil, err
	}
	if !found {
		return new(big.Int), nil
	}
	return key, nil
}
