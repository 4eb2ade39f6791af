package logexp

import (
	"math/big"
	"testing"
)

// floorLogRef computes floor(log_base(a^e * num/den)) exactly: the
// largest r with base^r <= a^e * num/den.
func floorLogRef(t *testing.T, base, a int64, e int, num, den int64) int {
	t.Helper()
	// value = a^e * num/den
	vNum := big.NewInt(num)
	vDen := big.NewInt(den)
	ab := big.NewInt(a)
	if e >= 0 {
		vNum.Mul(vNum, new(big.Int).Exp(ab, big.NewInt(int64(e)), nil))
	} else {
		vDen.Mul(vDen, new(big.Int).Exp(ab, big.NewInt(int64(-e)), nil))
	}
	b := big.NewInt(base)

	// Walk r up from zero past the value, then back down; ranges here are
	// small enough for this simple search.
	r := 0
	cmp := func(r int) int {
		// compare base^r with value
		lhsNum := big.NewInt(1)
		lhsDen := big.NewInt(1)
		if r >= 0 {
			lhsNum.Exp(b, big.NewInt(int64(r)), nil)
		} else {
			lhsDen.Exp(b, big.NewInt(int64(-r)), nil)
		}
		lhs := new(big.Int).Mul(lhsNum, vDen)
		rhs := new(big.Int).Mul(vNum, lhsDen)
		return lhs.Cmp(rhs)
	}
	for cmp(r) <= 0 {
		r++
	}
	for cmp(r) > 0 {
		r--
	}
	return r
}

func TestFloorLog10Pow2(t *testing.T) {
	t.Parallel()
	for e := -1700; e <= 1700; e++ {
		if got, want := FloorLog10Pow2(e), floorLogRef(t, 10, 2, e, 1, 1); got != want {
			t.Fatalf("FloorLog10Pow2(%d) = %d, want %d", e, got, want)
		}
	}
}

func TestFloorLog10Pow5(t *testing.T) {
	t.Parallel()
	for e := -2620; e <= 2620; e += 7 {
		if got, want := FloorLog10Pow5(e), floorLogRef(t, 10, 5, e, 1, 1); got != want {
			t.Fatalf("FloorLog10Pow5(%d) = %d, want %d", e, got, want)
		}
	}
}

func TestFloorLog2Pow5(t *testing.T) {
	t.Parallel()
	for e := -1764; e <= 1764; e++ {
		if got, want := FloorLog2Pow5(e), floorLogRef(t, 2, 5, e, 1, 1); got != want {
			t.Fatalf("FloorLog2Pow5(%d) = %d, want %d", e, got, want)
		}
	}
}

func TestFloorLog2Pow10(t *testing.T) {
	t.Parallel()
	for e := -1233; e <= 1233; e++ {
		if got, want := FloorLog2Pow10(e), floorLogRef(t, 2, 10, e, 1, 1); got != want {
			t.Fatalf("FloorLog2Pow10(%d) = %d, want %d", e, got, want)
		}
	}
}

func TestFloorLog5Pow2(t *testing.T) {
	t.Parallel()
	for e := -1492; e <= 1492; e++ {
		if got, want := FloorLog5Pow2(e), floorLogRef(t, 5, 2, e, 1, 1); got != want {
			t.Fatalf("FloorLog5Pow2(%d) = %d, want %d", e, got, want)
		}
	}
}

func TestFloorLog5Pow2MinusLog5Of3(t *testing.T) {
	t.Parallel()
	// floor(log5(2^e / 3)).
	for e := -2427; e <= 2427; e++ {
		if got, want := FloorLog5Pow2MinusLog5Of3(e), floorLogRef(t, 5, 2, e, 1, 3); got != want {
			t.Fatalf("FloorLog5Pow2MinusLog5Of3(%d) = %d, want %d", e, got, want)
		}
	}
}

func TestFloorLog10Pow2MinusLog10Of4Over3(t *testing.T) {
	t.Parallel()
	// floor(log10(2^e * 3/4)).
	for e := -1700; e <= 1700; e++ {
		if got, want := FloorLog10Pow2MinusLog10Of4Over3(e), floorLogRef(t, 10, 2, e, 3, 4); got != want {
			t.Fatalf("FloorLog10Pow2MinusLog10Of4Over3(%d) = %d, want %d", e, got, want)
		}
	}
}

func TestOutOfRangePanics(t *testing.T) {
	t.Parallel()
	defer func() {
		if recover() == nil {
			t.Fatal("expected a panic for an out-of-range exponent")
		}
	}()
	FloorLog10Pow2(1701)
}
