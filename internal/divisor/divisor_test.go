package divisor

import (
	"math/rand"
	"testing"
)

func pow5_64(k int) uint64 {
	p := uint64(1)
	for i := 0; i < k; i++ {
		p *= 5
	}
	return p
}

func TestDivisibleByPow5(t *testing.T) {
	t.Parallel()
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 5000; i++ {
		x64 := rng.Uint64()
		for k := 0; k < len(Pow5Table64); k++ {
			want := x64%pow5_64(k) == 0
			if got := DivisibleByPow5_64(x64, k); got != want {
				t.Fatalf("DivisibleByPow5_64(%d, %d) = %v, want %v", x64, k, got, want)
			}
		}
		x32 := rng.Uint32()
		for k := 0; k < len(Pow5Table32); k++ {
			want := uint64(x32)%pow5_64(k) == 0
			if got := DivisibleByPow5_32(x32, k); got != want {
				t.Fatalf("DivisibleByPow5_32(%d, %d) = %v, want %v", x32, k, got, want)
			}
		}
	}
	// Exact multiples must also pass.
	for k := 1; k < 13; k++ {
		if !DivisibleByPow5_32(uint32(pow5_64(k)), k) {
			t.Fatalf("5^%d not reported divisible by itself", k)
		}
	}
}

func TestDivisibleByPow2(t *testing.T) {
	t.Parallel()
	for k := 1; k <= 40; k++ {
		x := uint64(1) << uint(k)
		if !DivisibleByPow2_64(x, k) {
			t.Fatalf("2^%d not divisible by 2^%d", k, k)
		}
		if DivisibleByPow2_64(x|1<<uint(k-1), k) {
			t.Fatalf("2^%d + 2^%d reported divisible by 2^%d", k, k-1, k)
		}
	}
	if !DivisibleByPow2_32(64, 6) || DivisibleByPow2_32(96, 6) {
		t.Fatal("DivisibleByPow2_32 basic cases failed")
	}
}

func TestSmallDivisions(t *testing.T) {
	t.Parallel()
	for n := uint32(0); n <= 100; n++ {
		if got := DivideByPow10_1(n); got != n/10 {
			t.Fatalf("DivideByPow10_1(%d) = %d", n, got)
		}
	}
	for n := uint32(0); n <= 1000; n++ {
		if got := DivideByPow10_2(n); got != n/100 {
			t.Fatalf("DivideByPow10_2(%d) = %d", n, got)
		}
	}
}

func TestDivideByPow10_3_64(t *testing.T) {
	t.Parallel()
	rng := rand.New(rand.NewSource(2))
	// The specialization is exact for the magnitudes the shortest-decimal
	// search feeds it: below 2^(52 + 2 + 2) * 5^3.
	limit := uint64(1) << 56 * 125
	for i := 0; i < 200000; i++ {
		n := rng.Uint64() % limit
		if got := DivideByPow10_3_64(n); got != n/1000 {
			t.Fatalf("DivideByPow10_3_64(%d) = %d, want %d", n, got, n/1000)
		}
	}
}

func TestCheckDivisibilityAndDivideByPow5(t *testing.T) {
	t.Parallel()
	for n := uint32(0); n <= 50; n++ {
		v := n
		got := CheckDivisibilityAndDivideByPow5_1(&v)
		if got != (n%5 == 0) || v != n/5 {
			t.Fatalf("pow5_1(%d) = (%v, %d)", n, got, v)
		}
	}
	for n := uint32(0); n <= 250; n++ {
		v := n
		got := CheckDivisibilityAndDivideByPow5_2(&v)
		if got != (n%25 == 0) || v != n/25 {
			t.Fatalf("pow5_2(%d) = (%v, %d)", n, got, v)
		}
	}
}
