package dlp

import (
	"math/big"
	"testing"
)

func TestFuncF(t *testing.T) {
	p, base, y := big.NewInt(101), big.NewInt(7), big.NewInt(11)

	// class 0: squaring
	got, err := funcF(big.NewInt(6), base, y, p)
	if err != nil || got.Cmp(big.NewInt(36)) != 0 {
		t.Errorf("funcF class 0: got %v, %v, want 36", got, err)
	}
	// class 1: multiply by base
	got, err = funcF(big.NewInt(7), base, y, p)
	if err != nil || got.Cmp(big.NewInt(49)) != 0 {
		t.Errorf("funcF class 1: got %v, %v, want 49", got, err)
	}
	// class 2: multiply by y
	got, err = funcF(big.NewInt(8), base, y, p)
	if err != nil || got.Cmp(big.NewInt(88)) != 0 {
		t.Errorf("funcF class 2: got %v, %v, want 88", got, err)
	}
}

func TestFuncG(t *testing.T) {
	n, a := big.NewInt(97), big.NewInt(5)

	got, err := funcG(a, n, big.NewInt(6))
	if err != nil || got.Cmp(big.NewInt(10)) != 0 {
		t.Errorf("funcG class 0: got %v, %v, want 10", got, err)
	}
	got, err = funcG(a, n, big.NewInt(7))
	if err != nil || got.Cmp(big.NewInt(6)) != 0 {
		t.Errorf("funcG class 1: got %v, %v, want 6", got, err)
	}
	got, err = funcG(a, n, big.NewInt(8))
	if err != nil || got.Cmp(big.NewInt(5)) != 0 {
		t.Errorf("funcG class 2: got %v, %v, want 5", got, err)
	}
	if got == a {
		t.Error("funcG class 2 must copy, not alias, the exponent")
	}
}

func TestFuncH(t *testing.T) {
	n, b := big.NewInt(97), big.NewInt(5)

	got, err := funcH(b, n, big.NewInt(6))
	if err != nil || got.Cmp(big.NewInt(10)) != 0 {
		t.Errorf("funcH class 0: got %v, %v, want 10", got, err)
	}
	got, err = funcH(b, n, big.NewInt(7))
	if err != nil || got.Cmp(big.NewInt(5)) != 0 {
		t.Errorf("funcH class 1: got %v, %v, want 5", got, err)
	}
	got, err = funcH(b, n, big.NewInt(8))
	if err != nil || got.Cmp(big.NewInt(6)) != 0 {
		t.Errorf("funcH class 2: got %v, %v, want 6", got, err)
	}
}

// the exponents wrap into [0, n)
func TestMappingReduction(t *testing.T) {
	n := big.NewInt(7)
	got, err := funcG(big.NewInt(6), n, big.NewInt(3)) // class 0: 12 mod 7
	if err != nil || got.Cmp(big.NewInt(5)) != 0 {
		t.Errorf("funcG reduction: got %v, %v, want 5", got, err)
	}
	got, err = funcH(big.NewInt(6), n, big.NewInt(5)) // class 2: 7 mod 7
	if err != nil || got.Sign() != 0 {
		t.Errorf("funcH reduction: got %v, %v, want 0", got, err)
	}
}
