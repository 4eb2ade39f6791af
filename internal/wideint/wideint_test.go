package wideint

import (
	"math/big"
	"math/rand"
	"testing"
)

func big128(u Uint128) *big.Int {
	v := new(big.Int).SetUint64(u.Hi)
	v.Lsh(v, 64)
	return v.Or(v, new(big.Int).SetUint64(u.Lo))
}

func big192(u Uint192) *big.Int {
	v := new(big.Int).SetUint64(u.Hi)
	v.Lsh(v, 64)
	v.Or(v, new(big.Int).SetUint64(u.Mid))
	v.Lsh(v, 64)
	return v.Or(v, new(big.Int).SetUint64(u.Lo))
}

func big96(u Uint96) *big.Int {
	v := new(big.Int).SetUint64(uint64(u.Hi))
	v.Lsh(v, 64)
	return v.Or(v, new(big.Int).SetUint64(uint64(u.Mid)<<32|uint64(u.Lo)))
}

func TestUmul128(t *testing.T) {
	t.Parallel()
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 2000; i++ {
		x, y := rng.Uint64(), rng.Uint64()
		got := big128(Umul128(x, y))
		want := new(big.Int).Mul(new(big.Int).SetUint64(x), new(big.Int).SetUint64(y))
		if got.Cmp(want) != 0 {
			t.Fatalf("Umul128(%#x, %#x) = %v, want %v", x, y, got, want)
		}
		hi := Umul128Upper64(x, y)
		if hi != new(big.Int).Rsh(want, 64).Uint64() {
			t.Fatalf("Umul128Upper64(%#x, %#x) = %#x", x, y, hi)
		}
	}
}

func TestUmul192(t *testing.T) {
	t.Parallel()
	rng := rand.New(rand.NewSource(2))
	for i := 0; i < 2000; i++ {
		x := rng.Uint64()
		y := Uint128{Hi: rng.Uint64(), Lo: rng.Uint64()}
		prod := new(big.Int).Mul(new(big.Int).SetUint64(x), big128(y))

		if got, want := Umul192Upper64(x, y), new(big.Int).Rsh(prod, 128).Uint64(); got != want {
			t.Fatalf("Umul192Upper64(%#x, %v) = %#x, want %#x", x, y, got, want)
		}

		mid := new(big.Int).Rsh(prod, 64)
		mid.And(mid, new(big.Int).SetUint64(^uint64(0)))
		if got := Umul192Middle64(x, y); got != mid.Uint64() {
			t.Fatalf("Umul192Middle64(%#x, %v) = %#x, want %#x", x, y, got, mid.Uint64())
		}
	}
}

func TestUmul256(t *testing.T) {
	t.Parallel()
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 2000; i++ {
		x := rng.Uint64()
		y := Uint192{Hi: rng.Uint64(), Mid: rng.Uint64(), Lo: rng.Uint64()}
		prod := new(big.Int).Mul(new(big.Int).SetUint64(x), big192(y))

		upper128 := new(big.Int).Rsh(prod, 128)
		if got := big128(Umul256Upper128(x, y)); got.Cmp(upper128) != 0 {
			t.Fatalf("Umul256Upper128(%#x, %v) = %v, want %v", x, y, got, upper128)
		}

		upper192 := new(big.Int).Rsh(prod, 64)
		if got := big192(Umul256Upper192(x, y)); got.Cmp(upper192) != 0 {
			t.Fatalf("Umul256Upper192(%#x, %v) = %v, want %v", x, y, got, upper192)
		}
	}
}

func TestUmul256UpperMiddle64(t *testing.T) {
	t.Parallel()
	rng := rand.New(rand.NewSource(4))
	for i := 0; i < 2000; i++ {
		x := Uint128{Hi: rng.Uint64(), Lo: rng.Uint64()}
		y := Uint128{Hi: rng.Uint64(), Lo: rng.Uint64()}
		prod := new(big.Int).Mul(big128(x), big128(y))
		want := new(big.Int).Rsh(prod, 128)
		want.And(want, new(big.Int).SetUint64(^uint64(0)))
		if got := Umul256UpperMiddle64(x, y); got != want.Uint64() {
			t.Fatalf("Umul256UpperMiddle64(%v, %v) = %#x, want %#x", x, y, got, want.Uint64())
		}
	}
}

func TestUmul96(t *testing.T) {
	t.Parallel()
	rng := rand.New(rand.NewSource(5))
	for i := 0; i < 2000; i++ {
		x := rng.Uint32()
		y := rng.Uint64()
		prod := new(big.Int).Mul(new(big.Int).SetUint64(uint64(x)), new(big.Int).SetUint64(y))
		if got, want := Umul96Upper32(x, y), uint32(new(big.Int).Rsh(prod, 64).Uint64()); got != want {
			t.Fatalf("Umul96Upper32(%#x, %#x) = %#x, want %#x", x, y, got, want)
		}
		if got := Umul96Lower64(x, y); got != uint64(x)*y {
			t.Fatalf("Umul96Lower64(%#x, %#x) = %#x", x, y, got)
		}

		y96 := Uint96{Hi: rng.Uint32(), Mid: rng.Uint32(), Lo: rng.Uint32()}
		prod96 := new(big.Int).Mul(new(big.Int).SetUint64(uint64(x)), big96(y96))
		if got, want := Umul128Upper64From96(x, y96), new(big.Int).Rsh(prod96, 64).Uint64(); got != want {
			t.Fatalf("Umul128Upper64From96(%#x, %v) = %#x, want %#x", x, y96, got, want)
		}
	}
}

func TestShiftAndAdd(t *testing.T) {
	t.Parallel()
	u := Uint128{Hi: 0x0123456789ABCDEF, Lo: 0xFEDCBA9876543210}
	if got := u.ShiftRight(4); got.Hi != 0x00123456789ABCDE || got.Lo != 0xFFEDCBA987654321 {
		t.Fatalf("ShiftRight(4) = %+v", got)
	}
	if got := u.ShiftRight(0); got != u {
		t.Fatalf("ShiftRight(0) = %+v", got)
	}
	carry := Uint128{Hi: 1, Lo: ^uint64(0)}
	if got := carry.AddUint64(1); got.Hi != 2 || got.Lo != 0 {
		t.Fatalf("AddUint64 carry = %+v", got)
	}
}
