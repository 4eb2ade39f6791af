// Package divisor implements the modular-inverse divisibility tests and
// small magic-constant divisions shared by the converters. Divisibility of
// x by 5^k is answered with one multiply and one compare against
// precomputed tables of inverses of 5^k modulo 2^w; divisibility by 2^k is
// a trailing-zero count.
package divisor

import (
	"math/bits"

	"github.com/agbru/fpconv/internal/wideint"
)

// Entry32 and Entry64 pair the modular inverse of 5^k with the largest quotient that
// certifies divisibility.
type Entry32 struct {
	ModInv      uint32
	MaxQuotient uint32
}

type Entry64 struct {
	ModInv      uint64
	MaxQuotient uint64
}

// Pow5Table32 holds entries for 5^0 .. 5^(n-1) over uint32 arithmetic.
// Thirteen entries cover the largest power-of-5 factor a binary32 product
// can carry.
var Pow5Table32 = buildTable32(13)

// Pow5Table64 holds entries for 5^0 .. 5^(n-1) over uint64 arithmetic.
// Twenty-four entries cover the largest power-of-5 factor a binary64
// product can carry, plus one for the table-exhausted sentinel.
var Pow5Table64 = buildTable64(25)

func buildTable32(n int) []Entry32 {
	// 5^(2^31 - 1) mod 2^32 via square-and-multiply; see modularInverse64.
	inv := uint32(modularInverse64(5))
	table := make([]Entry32, n)
	powInv, pow := uint32(1), uint32(1)
	for i := range table {
		table[i] = Entry32{ModInv: powInv, MaxQuotient: ^uint32(0) / pow}
		powInv *= inv
		pow *= 5
	}
	return table
}

func buildTable64(n int) []Entry64 {
	inv := modularInverse64(5)
	table := make([]Entry64, n)
	powInv, pow := uint64(1), uint64(1)
	for i := range table {
		table[i] = Entry64{ModInv: powInv, MaxQuotient: ^uint64(0) / pow}
		powInv *= inv
		pow *= 5
	}
	return table
}

// modularInverse64 returns the inverse of a modulo 2^64. By Euler's
// theorem a^(2^63 - 1) inverts any odd a.
func modularInverse64(a uint64) uint64 {
	inv := uint64(1)
	for i := 1; i < 64; i++ {
		inv = inv * inv * a
	}
	return inv
}

// DivisibleByPow5_32 reports whether x is divisible by 5^k.
// k must be within the table.
func DivisibleByPow5_32(x uint32, k int) bool {
	e := Pow5Table32[k]
	return x*e.ModInv <= e.MaxQuotient
}

// DivisibleByPow5_64 reports whether x is divisible by 5^k.
// k must be within the table.
func DivisibleByPow5_64(x uint64, k int) bool {
	e := Pow5Table64[k]
	return x*e.ModInv <= e.MaxQuotient
}

// DivisibleByPow2_32 reports whether x is divisible by 2^k.
// x must be nonzero and k >= 1.
func DivisibleByPow2_32(x uint32, k int) bool {
	return bits.TrailingZeros32(x) >= k
}

// DivisibleByPow2_64 reports whether x is divisible by 2^k.
// x must be nonzero and k >= 1.
func DivisibleByPow2_64(x uint64, k int) bool {
	return bits.TrailingZeros64(x) >= k
}

// DivideByPow10_1 computes n / 10 by the magic-constant multiply.
// Precondition: n <= 100.
func DivideByPow10_1(n uint32) uint32 {
	return (n * 0xCCCD) >> 19
}

// DivideByPow10_2 computes n / 100 by the magic-constant multiply.
// Precondition: n <= 1000.
func DivideByPow10_2(n uint32) uint32 {
	return (n * 0xA3D8) >> 22
}

// DivideByPow10_3_64 computes n / 1000 for a 64-bit n whose magnitude
// satisfies the shortest-decimal bounds (n < 2^70 / 2^...; the callers pass
// z values below 2^(significand_bits + kappa + 2) * 5^(kappa + 1), for
// which the single multiply-high is exact).
func DivideByPow10_3_64(n uint64) uint64 {
	return wideint.Umul128Upper64(n, 0x83126E978D4FDF3C) >> 9
}

// CheckDivisibilityAndDivideByPow5_1 replaces n by n/5 and reports whether
// n was divisible by 5. Precondition: n <= 50.
func CheckDivisibilityAndDivideByPow5_1(n *uint32) bool {
	*n *= 0xCCCD
	divisible := (*n & 0xFFFF) <= 0x3333
	*n >>= 18
	return divisible
}

// CheckDivisibilityAndDivideByPow5_2 replaces n by n/25 and reports whether
// n was divisible by 25. Precondition: n <= 250.
func CheckDivisibilityAndDivideByPow5_2(n *uint32) bool {
	*n *= 0xA429
	divisible := (*n & 0xFF) <= 0x0A
	*n >>= 20
	return divisible
}
