package dlp

import "math/big"

// walk is one point of the pseudo-random walk together with the
// exponents that express it: x = base^a * y^b (mod p). The mapping
// functions keep that identity at every step.
type walk struct {
	x, a, b *big.Int
}

func newWalk(x, a, b *big.Int) *walk {
	return &walk{
		x: new(big.Int).Set(x),
		a: new(big.Int).Set(a),
		b: new(big.Int).Set(b),
	}
}

// step applies one application of the mapping functions. The exponents
// advance on the old position, then the position itself moves.
func (w *walk) step(base, y, p, n *big.Int) error {
	a, err := funcG(w.a, n, w.x)
	if err != nil {
		return err
	}
	b, err := funcH(w.b, n, w.x)
	if err != nil {
		return err
	}
	x, err := funcF(w.x, base, y, p)
	if err != nil {
		return err
	}
	w.a, w.b, w.x = a, b, x
	return nil
}

// SearchOnce runs a single Pollard rho attempt with the given seed.
// The tortoise advances one step per iteration and the hare two; a
// position collision hands the four exponents to SolveCongruence and
// its outcome is the attempt's outcome. If no collision shows up within
// n iterations the attempt reports not found. A non-nil error means the
// walk state was corrupted and retrying is pointless.
func SearchOnce(seed, base, y, p, n *big.Int) (*big.Int, bool, error) {
	rnd := newRand(seed)
	a0 := RandRange(rnd, big0, n)
	b0 := RandRange(rnd, big0, n)

	x0 := new(big.Int).Exp(base, a0, p)
	x0.Mul(x0, new(big.Int).Exp(y, b0, p))
	x0 = EuclidMod(x0, p)

	tortoise := newWalk(x0, a0, b0)
	hare := newWalk(x0, a0, b0)

	for i := new(big.Int); i.Cmp(n) < 0; i.Add(i, big1) {
		if err := tortoise.step(base, y, p, n); err != nil {
			return nil, false, err
		}
		if err := hare.step(base, y, p, n); err != nil {
			return nil, false, err
		}
		if err := hare.step(base, y, p, n); err != nil {
			return nil, false, err
		}
		if tortoise.x.Cmp(hare.x) == 0 {
			key, ok := SolveCongruence(tortoise.a, tortoise.b, hare.a, hare.b, n)
			return key, ok, nil
		}
	}
	return nil, false, nil
}
