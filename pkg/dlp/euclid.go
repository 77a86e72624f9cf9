package dlp

import "math/big"

// EuclidMod returns a mod m with the result in [0, m) for m > 0,
// whatever the sign of a.
func EuclidMod(a, m *big.Int) *big.Int {
	return new(big.Int).Mod(a, m)
}

// FloorDiv returns floor(x / y) for any signs of x and y.
func FloorDiv(x, y *big.Int) *big.Int {
	var r big.Int
	q, _ := new(big.Int).QuoRem(x, y, &r)
	if (r.Sign() == 1 && y.Sign() == -1) || (r.Sign() == -1 && y.Sign() == 1) {
		q.Sub(q, big.NewInt(1))
	}
	return q
}
